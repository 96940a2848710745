// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"encoding/json"
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles/units"
)

// LineStyle has style properties for drawing a line.
type LineStyle struct {

	// Color is the stroke color image; stroking is off if nil.
	Color image.Image

	// Width is the line width, with dots defaulting to 1.
	Width units.Value

	// Dashes are the dashes of the stroke. Each pair of values
	// specifies the amount to paint and then the amount to skip.
	Dashes []float32
}

func (ls *LineStyle) Defaults() {
	ls.Color = colors.Uniform(colors.Black)
	ls.Width.Dp(1)
}

// SetStroke sets the stroke style in the paint context, returning
// false if the line is off (nil color).
func (ls *LineStyle) SetStroke(pc *paint.Context) bool {
	if ls.Color == nil {
		return false
	}
	pc.StrokeStyle.Width = ls.Width
	pc.StrokeStyle.Color = ls.Color
	pc.StrokeStyle.Width.ToDots(&pc.UnitContext)
	pc.StrokeStyle.Dashes = ls.Dashes
	return true
}

// Draw strokes a line from start to end, doing nothing if the line
// style is off.
func (ls *LineStyle) Draw(pc *paint.Context, start, end math32.Vector2) {
	if !ls.SetStroke(pc) {
		return
	}
	pc.MoveTo(start.X, start.Y)
	pc.LineTo(end.X, end.Y)
	pc.Stroke()
}

// Equal reports whether the two line styles resolve to the same
// appearance. Color images compare by their uniform color.
func (ls *LineStyle) Equal(other *LineStyle) bool {
	if !imagesEqual(ls.Color, other.Color) {
		return false
	}
	if ls.Width.Value != other.Width.Value || ls.Width.Unit != other.Width.Unit {
		return false
	}
	if len(ls.Dashes) != len(other.Dashes) {
		return false
	}
	for i, d := range ls.Dashes {
		if other.Dashes[i] != d {
			return false
		}
	}
	return true
}

// lineStyleJSON is the persisted form of a [LineStyle]: a uniform
// color and the width in dots ([units.Value] itself carries a custom
// dots function and does not round-trip through JSON).
type lineStyleJSON struct {
	Color  *color.RGBA `json:"color"`
	Width  float32     `json:"width"`
	Dashes []float32   `json:"dashes,omitempty"`
}

func (ls LineStyle) MarshalJSON() ([]byte, error) {
	lj := lineStyleJSON{Color: uniformJSON(ls.Color), Width: ls.Width.Value, Dashes: ls.Dashes}
	return json.Marshal(lj)
}

func (ls *LineStyle) UnmarshalJSON(b []byte) error {
	var lj lineStyleJSON
	if err := json.Unmarshal(b, &lj); err != nil {
		return err
	}
	ls.Color = uniformFromJSON(lj.Color)
	ls.Width.Dp(lj.Width)
	ls.Dashes = lj.Dashes
	return nil
}

// PointStyle has style properties for drawing item marker shapes.
type PointStyle struct {

	// Fill is the marker fill color image; filling is off if nil.
	Fill image.Image

	// Color is the marker outline color image; the outline is off if nil.
	Color image.Image

	// Width is the marker outline width, with dots defaulting to 1.
	Width units.Value
}

func (ps *PointStyle) Defaults() {
	ps.Fill = colors.Uniform(colors.Black)
	ps.Color = colors.Uniform(colors.Black)
	ps.Width.Dp(1)
}

// SetFill sets the fill style in the paint context, returning false
// if filling is off.
func (ps *PointStyle) SetFill(pc *paint.Context) bool {
	if ps.Fill == nil {
		return false
	}
	pc.FillStyle.Color = ps.Fill
	return true
}

// SetStroke sets the outline stroke style in the paint context,
// returning false if the outline is off.
func (ps *PointStyle) SetStroke(pc *paint.Context) bool {
	if ps.Color == nil {
		return false
	}
	pc.StrokeStyle.Width = ps.Width
	pc.StrokeStyle.Color = ps.Color
	pc.StrokeStyle.Width.ToDots(&pc.UnitContext)
	pc.StrokeStyle.Dashes = nil
	return true
}

// Equal reports whether the two point styles resolve to the same
// appearance.
func (ps *PointStyle) Equal(other *PointStyle) bool {
	return imagesEqual(ps.Fill, other.Fill) && imagesEqual(ps.Color, other.Color) &&
		ps.Width.Value == other.Width.Value && ps.Width.Unit == other.Width.Unit
}

type pointStyleJSON struct {
	Fill  *color.RGBA `json:"fill"`
	Color *color.RGBA `json:"color"`
	Width float32     `json:"width"`
}

func (ps PointStyle) MarshalJSON() ([]byte, error) {
	pj := pointStyleJSON{Fill: uniformJSON(ps.Fill), Color: uniformJSON(ps.Color), Width: ps.Width.Value}
	return json.Marshal(pj)
}

func (ps *PointStyle) UnmarshalJSON(b []byte) error {
	var pj pointStyleJSON
	if err := json.Unmarshal(b, &pj); err != nil {
		return err
	}
	ps.Fill = uniformFromJSON(pj.Fill)
	ps.Color = uniformFromJSON(pj.Color)
	ps.Width.Dp(pj.Width)
	return nil
}

// imagesEqual compares two color images by resolved uniform color.
// Non-uniform images (gradients) compare by identity.
func imagesEqual(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return colors.ToUniform(a) == colors.ToUniform(b)
}

func uniformJSON(img image.Image) *color.RGBA {
	if img == nil {
		return nil
	}
	c := colors.ToUniform(img)
	return &c
}

func uniformFromJSON(c *color.RGBA) image.Image {
	if c == nil {
		return nil
	}
	return colors.Uniform(*c)
}
