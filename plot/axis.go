// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles/units"
)

// AxisMapper converts data values to device coordinates within a data
// area. It is the contract renderers draw against; [Axis] is the stock
// linear implementation.
type AxisMapper interface {
	// ValueToDevice returns the device coordinate of the given data
	// value along the given edge of the area: an x coordinate for Top
	// and Bottom edges, a y coordinate for Left and Right (inverted,
	// so larger values are higher up). It returns NaN for non-finite
	// input or an empty axis range; out-of-range values map linearly
	// beyond the area.
	ValueToDevice(v float64, area math32.Box2, edge Edge) float32
}

// Axis is a linear axis over a fixed data range.
type Axis struct {

	// Min and Max are the data range of the axis.
	Min, Max float64

	// Inverted flips the direction of increasing data values.
	Inverted bool

	// Label is the optional axis label.
	Label Text

	// Line is the style of the axis line.
	Line LineStyle

	// TickLine is the style of the tick marks.
	TickLine LineStyle

	// TickLength is the length of tick marks. Default is 4dp.
	TickLength units.Value

	// TickText is the text element used to draw tick labels.
	TickText Text

	// NTicks is the desired number of ticks. Default is 5.
	NTicks int
}

func (ax *Axis) Defaults() {
	ax.Min = 0
	ax.Max = 1
	ax.Line.Defaults()
	ax.TickLine.Defaults()
	ax.TickLength.Dp(4)
	ax.NTicks = 5
	ax.Label.Defaults()
	ax.TickText.Defaults()
}

// SanitizeRange ensures that the range is not empty or infinite.
func (ax *Axis) SanitizeRange() {
	if math.IsInf(ax.Min, 0) || math.IsNaN(ax.Min) {
		ax.Min = 0
	}
	if math.IsInf(ax.Max, 0) || math.IsNaN(ax.Max) {
		ax.Max = 0
	}
	if ax.Min > ax.Max {
		ax.Min, ax.Max = ax.Max, ax.Min
	}
	if ax.Min == ax.Max {
		ax.Min--
		ax.Max++
	}
}

// Norm returns the value normalized to the axis range, 0 at Min and 1
// at Max (flipped when Inverted).
func (ax *Axis) Norm(v float64) float64 {
	if ax.Max == ax.Min {
		return 0
	}
	f := (v - ax.Min) / (ax.Max - ax.Min)
	if ax.Inverted {
		f = 1 - f
	}
	return f
}

// ValueToDevice implements [AxisMapper] with a linear mapping.
func (ax *Axis) ValueToDevice(v float64, area math32.Box2, edge Edge) float32 {
	if math.IsNaN(v) || math.IsInf(v, 0) || ax.Max == ax.Min {
		return math32.NaN()
	}
	f := float32(ax.Norm(v))
	switch edge {
	case Top, Bottom:
		return area.Min.X + f*(area.Max.X-area.Min.X)
	default:
		return area.Max.Y - f*(area.Max.Y-area.Min.Y)
	}
}

// Ticks returns evenly spaced tick values covering the axis range.
func (ax *Axis) Ticks() []float64 {
	n := ax.NTicks
	if n < 2 {
		n = 2
	}
	tks := make([]float64, n)
	step := (ax.Max - ax.Min) / float64(n-1)
	for i := range tks {
		tks[i] = ax.Min + float64(i)*step
	}
	return tks
}

// draw renders the axis along the given edge of the data area. Only
// the Bottom and Left edges are used by the two plot orientations.
func (ax *Axis) draw(pt *XYPlot, area math32.Box2, edge Edge) {
	pc := pt.Paint
	ax.TickLength.ToDots(&pc.UnitContext)
	ln := ax.TickLength.Dots
	switch edge {
	case Bottom:
		y := area.Max.Y
		ax.Line.Draw(pc, math32.Vec2(area.Min.X, y), math32.Vec2(area.Max.X, y))
		for _, t := range ax.Ticks() {
			x := ax.ValueToDevice(t, area, Bottom)
			if math32.IsNaN(x) {
				continue
			}
			ax.TickLine.Draw(pc, math32.Vec2(x, y), math32.Vec2(x, y+ln))
			ax.TickText.Text = fmt.Sprintf("%g", t)
			ax.TickText.Config(pt)
			tsz := ax.TickText.Size()
			ax.TickText.Draw(pt, math32.Vec2(x-0.5*tsz.X, y+ln))
		}
	case Left:
		x := area.Min.X
		ax.Line.Draw(pc, math32.Vec2(x, area.Min.Y), math32.Vec2(x, area.Max.Y))
		for _, t := range ax.Ticks() {
			y := ax.ValueToDevice(t, area, Left)
			if math32.IsNaN(y) {
				continue
			}
			ax.TickLine.Draw(pc, math32.Vec2(x-ln, y), math32.Vec2(x, y))
			ax.TickText.Text = fmt.Sprintf("%g", t)
			ax.TickText.Config(pt)
			tsz := ax.TickText.Size()
			ax.TickText.Draw(pt, math32.Vec2(x-ln-tsz.X, y-0.5*tsz.Y))
		}
	}
}
