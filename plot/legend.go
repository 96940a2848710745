// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles/units"

	"github.com/chartkit/chartkit/shapes"
)

// LegendLabeler generates the legend label for a series.
type LegendLabeler interface {
	Label(data XYDataset, series int) string
}

// TooltipLabeler generates the legend tooltip text for a series.
type TooltipLabeler interface {
	Tooltip(data XYDataset, series int) string
}

// URLLabeler generates the legend URL text for a series.
type URLLabeler interface {
	URL(data XYDataset, series int) string
}

// KeyLabeler labels a series by its series key. It is the default
// [LegendLabeler].
type KeyLabeler struct{}

func (KeyLabeler) Label(data XYDataset, series int) string {
	return data.SeriesKey(series)
}

// LegendItem describes one legend entry: the texts, the marker shape
// sample, and the line sample, with everything needed to draw them and
// to find the series behind the entry.
type LegendItem struct {

	// Label is the legend text. Description defaults to Label.
	Label       string
	Description string

	// ToolTipText and URLText are optional interactive texts.
	ToolTipText string
	URLText     string

	// Shape is the marker shape sample; it is only drawn when
	// ShapeVisible is set.
	ShapeVisible   bool
	Shape          shapes.Shape
	ShapeFilled    bool
	Fill           image.Image
	OutlineVisible bool
	Outline        LineStyle

	// Line is the line sample, centered on the origin; it is drawn
	// with LineStyle when LineVisible is set.
	LineVisible bool
	Line        shapes.Shape
	LineStyle   LineStyle

	// Text is the style for the legend label text.
	Text TextStyle

	// SeriesKey, SeriesIndex, DatasetIndex and Dataset identify the
	// series for downstream lookup.
	SeriesKey    string
	SeriesIndex  int
	DatasetIndex int
	Dataset      XYDataset
}

// Legend is the legend block of a plot, drawn stacked in the top right
// corner of the data area.
type Legend struct {

	// TextStyle is the style applied to item labels without one.
	TextStyle TextStyle

	// Pad is the padding around and between entries. Default 4dp.
	Pad units.Value

	// SampleWidth is the width allotted to the line / shape sample.
	// Default 20dp.
	SampleWidth units.Value

	// Items are the legend entries, normally built from the renderers
	// by [XYPlot.BuildLegend].
	Items []LegendItem
}

func (lg *Legend) Defaults() {
	lg.TextStyle.Defaults()
	lg.Pad.Dp(4)
	lg.SampleWidth.Dp(20)
}

// Add appends an entry to the legend.
func (lg *Legend) Add(item LegendItem) {
	lg.Items = append(lg.Items, item)
}

// Reset removes all entries.
func (lg *Legend) Reset() {
	lg.Items = nil
}

// Draw renders the legend entries into the top right of the data area.
func (lg *Legend) Draw(pt *XYPlot) {
	if len(lg.Items) == 0 {
		return
	}
	pc := pt.Paint
	lg.Pad.ToDots(&pc.UnitContext)
	lg.SampleWidth.ToDots(&pc.UnitContext)
	pad := lg.Pad.Dots
	smp := lg.SampleWidth.Dots
	area := pt.DataArea()

	// lay the labels out first to get the block width
	wmax := float32(0)
	hts := make([]float32, len(lg.Items))
	txts := make([]Text, len(lg.Items))
	for i, it := range lg.Items {
		txts[i].Text = it.Label
		txts[i].Style = it.Text
		if txts[i].Style.Color == nil {
			txts[i].Style = lg.TextStyle
		}
		txts[i].Config(pt)
		sz := txts[i].Size()
		wmax = math32.Max(wmax, sz.X)
		hts[i] = math32.Max(sz.Y, 12)
	}

	x := area.Max.X - wmax - smp - 3*pad
	y := area.Min.Y + pad
	for i, it := range lg.Items {
		mid := y + 0.5*hts[i]
		if it.LineVisible && it.Line != nil {
			ln := it.Line.Translate(math32.Vec2(x+0.5*smp, mid))
			if it.LineStyle.SetStroke(pc) {
				ln.Draw(pc)
				pc.Stroke()
			}
		}
		if it.ShapeVisible && it.Shape != nil {
			sh := it.Shape.Translate(math32.Vec2(x+0.5*smp, mid))
			if it.ShapeFilled && it.Fill != nil {
				pc.FillStyle.Color = it.Fill
				sh.Draw(pc)
				pc.Fill()
			}
			if it.OutlineVisible && it.Outline.SetStroke(pc) {
				sh.Draw(pc)
				pc.Stroke()
			}
		}
		txts[i].Draw(pt, math32.Vec2(x+smp+pad, y))
		y += hts[i] + pad
	}
}
