// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package renderers provides the stock [plot.ItemRenderer]
// implementations.
package renderers

import (
	"image"
	"slices"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"

	"github.com/chartkit/chartkit/plot"
	"github.com/chartkit/chartkit/shapes"
)

// SeriesStyle bundles the per-series visual settings a renderer draws
// with. Zero-value fields fall back to the renderer defaults.
type SeriesStyle struct {

	// Line is the style of the series line.
	Line plot.LineStyle

	// Fill is the fill color for filled areas and legend samples.
	Fill image.Image

	// Outline is the style for shape outlines.
	Outline plot.LineStyle

	// Text is the style for item labels.
	Text plot.TextStyle

	// Visible overrides the renderer default for drawing this series.
	Visible plot.DefaultOffOn

	// Labels overrides the renderer default for drawing item labels.
	Labels plot.DefaultOffOn
}

func (ss *SeriesStyle) Defaults() {
	ss.Line.Defaults()
	ss.Outline.Defaults()
	ss.Text.Defaults()
}

// ItemLabeler generates the label text for an individual item.
type ItemLabeler interface {
	ItemLabel(data plot.XYDataset, series, item int) string
}

// Base carries the state and behavior common to item renderers:
// per-series styles, labelers, the owning plot, and change
// notification. Renderers embed it.
type Base struct {

	// Styles are explicit per-series styles. Series beyond the end of
	// the list rotate through palette colors.
	Styles []SeriesStyle

	// DefaultStyle supplies settings for series without an explicit style.
	DefaultStyle SeriesStyle

	// ItemLabeler generates item labels when labels are enabled for a
	// series. Nil disables item labels.
	ItemLabeler ItemLabeler

	// LegendLabeler generates legend labels. Default is
	// [plot.KeyLabeler].
	LegendLabeler plot.LegendLabeler

	// TooltipLabeler and URLLabeler generate the optional interactive
	// legend texts. Nil leaves them empty.
	TooltipLabeler plot.TooltipLabeler
	URLLabeler     plot.URLLabeler

	// SeriesVisible and SeriesLabels are the renderer-wide defaults
	// for series visibility and item labels.
	SeriesVisible bool
	SeriesLabels  bool

	plt       *plot.XYPlot
	listeners []func()
}

func (b *Base) BaseDefaults() {
	b.DefaultStyle.Defaults()
	b.LegendLabeler = plot.KeyLabeler{}
	b.SeriesVisible = true
	b.SeriesLabels = false
}

// SetPlot attaches the renderer to its plot.
func (b *Base) SetPlot(plt *plot.XYPlot) { b.plt = plt }

// Plot returns the plot the renderer is attached to, nil if none.
func (b *Base) Plot() *plot.XYPlot { return b.plt }

// OnChange registers a function called whenever a renderer setting
// changes in a way that requires a redraw.
func (b *Base) OnChange(fn func()) {
	b.listeners = append(b.listeners, fn)
}

// NotifyChange calls all registered change listeners, in order.
func (b *Base) NotifyChange() {
	for _, fn := range b.listeners {
		fn()
	}
}

// SeriesStyle returns the effective style for a series, filling unset
// fields from the defaults and the palette.
func (b *Base) SeriesStyle(series int) SeriesStyle {
	var ss SeriesStyle
	if series >= 0 && series < len(b.Styles) {
		ss = b.Styles[series]
	}
	if ss.Line.Color == nil {
		ss.Line = b.DefaultStyle.Line
		ss.Line.Color = colors.Uniform(colors.Spaced(series))
	}
	if ss.Fill == nil {
		ss.Fill = b.DefaultStyle.Fill
		if ss.Fill == nil {
			ss.Fill = colors.Uniform(colors.Spaced(series))
		}
	}
	if ss.Outline.Color == nil {
		ss.Outline = b.DefaultStyle.Outline
	}
	if ss.Text.Color == nil {
		ss.Text = b.DefaultStyle.Text
	}
	return ss
}

// Style sets the explicit style for a series through the given
// function, extending the style list as needed, and notifies change
// listeners.
func (b *Base) Style(series int, fn func(ss *SeriesStyle)) {
	for len(b.Styles) <= series {
		var ss SeriesStyle
		ss.Defaults()
		ss.Line.Color = nil
		ss.Fill = nil
		ss.Outline.Color = nil
		ss.Text.Color = nil
		b.Styles = append(b.Styles, ss)
	}
	fn(&b.Styles[series])
	b.NotifyChange()
}

// SeriesIsVisible reports whether a series should be drawn.
func (b *Base) SeriesIsVisible(series int) bool {
	if series >= 0 && series < len(b.Styles) {
		return b.Styles[series].Visible.Resolve(b.SeriesVisible)
	}
	return b.SeriesVisible
}

// ItemVisible reports whether an individual item should be drawn.
// Item granularity is not styled separately, so this follows the
// series visibility.
func (b *Base) ItemVisible(series, item int) bool {
	return b.SeriesIsVisible(series)
}

// ItemLabelsVisible reports whether item labels are drawn for a series.
func (b *Base) ItemLabelsVisible(series int) bool {
	if b.ItemLabeler == nil {
		return false
	}
	if series >= 0 && series < len(b.Styles) {
		return b.Styles[series].Labels.Resolve(b.SeriesLabels)
	}
	return b.SeriesLabels
}

// DrawItemLabel draws the label for one item near the given device
// position. negative shifts the label below the point, for items whose
// value is negative.
func (b *Base) DrawItemLabel(pc *paint.Context, plt *plot.XYPlot, data plot.XYDataset, series, item int, pos math32.Vector2, negative bool) {
	if b.ItemLabeler == nil {
		return
	}
	lbl := b.ItemLabeler.ItemLabel(data, series, item)
	if lbl == "" {
		return
	}
	var txt plot.Text
	txt.Text = lbl
	txt.Style = b.SeriesStyle(series).Text
	txt.Config(plt)
	sz := txt.Size()
	off := math32.Vec2(-0.5*sz.X, -sz.Y-2)
	if negative {
		off.Y = 2
	}
	txt.Draw(plt, pos.Add(off))
}

// UpdateCrosshair records an item in the crosshair state. It is nil
// safe on every pointer argument.
func (b *Base) UpdateCrosshair(cross *plot.CrosshairState, x, y float64, datasetIndex int, deviceX, deviceY float32, orient plot.Orientation) {
	if cross == nil {
		return
	}
	cross.Update(x, y, datasetIndex, deviceX, deviceY, orient)
}

// AddEntity records a hit-test entity for an item when the info has an
// entity collection.
func (b *Base) AddEntity(info *plot.RenderInfo, sh shapes.Shape, data plot.XYDataset, series, item int, x, y float32) {
	if info == nil || info.Entities == nil {
		return
	}
	info.Entities.Add(plot.Entity{
		Shape:   sh,
		Dataset: data,
		Series:  series,
		Item:    item,
		X:       x,
		Y:       y,
	})
}

// Equal reports whether two base renderers have the same settings.
// Listeners and the attached plot are not compared.
func (b *Base) Equal(other *Base) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	if b.SeriesVisible != other.SeriesVisible || b.SeriesLabels != other.SeriesLabels {
		return false
	}
	if len(b.Styles) != len(other.Styles) {
		return false
	}
	for i := range b.Styles {
		if !seriesStyleEqual(&b.Styles[i], &other.Styles[i]) {
			return false
		}
	}
	return seriesStyleEqual(&b.DefaultStyle, &other.DefaultStyle)
}

// seriesStyleEqual compares every persisted setting of a series
// style. Text styles are excluded: they are not persisted and
// re-default on load.
func seriesStyleEqual(a, b *SeriesStyle) bool {
	return a.Line.Equal(&b.Line) && fillsEqual(a.Fill, b.Fill) &&
		a.Outline.Equal(&b.Outline) &&
		a.Visible == b.Visible && a.Labels == b.Labels
}

// fillsEqual compares two fill images by resolved uniform color.
// Non-uniform images (gradients) compare by identity.
func fillsEqual(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return colors.ToUniform(a) == colors.ToUniform(b)
}

// CloneBase returns a deep copy of the base settings. Listeners and
// the attached plot are not carried over.
func (b *Base) CloneBase() Base {
	nb := *b
	nb.Styles = slices.Clone(b.Styles)
	nb.plt = nil
	nb.listeners = nil
	return nb
}
