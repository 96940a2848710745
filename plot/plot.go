// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides an XY plotting framework: datasets, axes,
// item renderers that draw one data item at a time in one or more
// passes, a legend, and interactive outputs such as entities and
// crosshair tracking.
package plot

import (
	"image"
	"log/slog"
	"math"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
)

// XYPlot is a two-axis plot. Datasets are paired with the renderers
// that draw them; rendering goes bottom up through the dataset list,
// each renderer making as many passes over its dataset as it asks for.
type XYPlot struct {

	// Title is the optional plot title, drawn centered at the top.
	Title Text

	// Orientation selects which screen direction the domain axis
	// runs in. Default is [Vertical]: domain along the bottom,
	// range up the left side.
	Orientation Orientation

	// X is the domain axis, Y the range axis.
	X, Y Axis

	// Background is the background fill. Default is white.
	Background image.Image

	// Legend is the plot legend.
	Legend Legend

	// StdTextStyle is the standard text line layout style.
	StdTextStyle styles.Text

	// Size is the size of the rendered image in pixels.
	Size image.Point

	// Pixels is the image the plot is rendered onto.
	Pixels *image.RGBA `json:"-"`

	// Paint is the painting context for rendering.
	Paint *paint.Context

	// Crosshair is the crosshair tracking state, updated by
	// renderers as items are drawn.
	Crosshair CrosshairState

	// Pad is the padding, in dots, around the data area.
	Pad float32

	datasets  []XYDataset
	renderers []ItemRenderer
}

// New returns a new plot with default styles and a standard size.
func New() *XYPlot {
	pt := &XYPlot{}
	pt.Defaults()
	return pt
}

func (pt *XYPlot) Defaults() {
	pt.Title.Defaults()
	pt.Title.Style.Size.Dp(24)
	pt.Orientation = Vertical
	pt.X.Defaults()
	pt.Y.Defaults()
	pt.Background = colors.Uniform(colors.White)
	pt.Legend.Defaults()
	pt.StdTextStyle.Defaults()
	pt.StdTextStyle.WhiteSpace = styles.WhiteSpaceNowrap
	pt.Pad = 10
	pt.Size = image.Point{1280, 1024}
}

// AddDataset appends a dataset together with the renderer that draws
// it, and attaches the renderer to this plot.
func (pt *XYPlot) AddDataset(data XYDataset, r ItemRenderer) {
	pt.datasets = append(pt.datasets, data)
	pt.renderers = append(pt.renderers, r)
	if r != nil {
		r.SetPlot(pt)
	}
}

// DatasetCount returns the number of datasets added to the plot.
func (pt *XYPlot) DatasetCount() int { return len(pt.datasets) }

// Dataset returns the dataset at the given index, nil if out of range.
func (pt *XYPlot) Dataset(idx int) XYDataset {
	if idx < 0 || idx >= len(pt.datasets) {
		return nil
	}
	return pt.datasets[idx]
}

// Renderer returns the renderer at the given index, nil if out of range.
func (pt *XYPlot) Renderer(idx int) ItemRenderer {
	if idx < 0 || idx >= len(pt.renderers) {
		return nil
	}
	return pt.renderers[idx]
}

// IndexOf returns the index of the given dataset, -1 if not present.
func (pt *XYPlot) IndexOf(data XYDataset) int {
	for i, d := range pt.datasets {
		if d == data {
			return i
		}
	}
	return -1
}

// DomainAxisEdge returns the screen edge the domain axis is drawn
// along for the current orientation.
func (pt *XYPlot) DomainAxisEdge() Edge {
	if pt.Orientation == Horizontal {
		return Left
	}
	return Bottom
}

// RangeAxisEdge returns the screen edge the range axis is drawn along
// for the current orientation.
func (pt *XYPlot) RangeAxisEdge() Edge {
	if pt.Orientation == Horizontal {
		return Bottom
	}
	return Left
}

// Resize sets the render size in pixels, reallocating the image and
// paint context as needed.
func (pt *XYPlot) Resize(sz image.Point) {
	if pt.Pixels != nil && pt.Pixels.Bounds().Size() == sz {
		return
	}
	pt.Paint = paint.NewContext(sz.X, sz.Y)
	pt.Pixels = pt.Paint.Image
	pt.Size = sz
}

// DataArea returns the data area rectangle in dots, the render size
// inset by the padding and the axis label space.
func (pt *XYPlot) DataArea() math32.Box2 {
	sz := math32.Vec2(float32(pt.Size.X), float32(pt.Size.Y))
	off := math32.Vec2(pt.Pad+40, pt.Pad)
	return math32.B2(off.X, off.Y, sz.X-pt.Pad, sz.Y-pt.Pad-30)
}

// UpdateRange sets the axis ranges from the data extents of all
// datasets, leaving axes with non-default ranges alone only in the
// sense of sanitizing degenerate results.
func (pt *XYPlot) UpdateRange() {
	pt.X.Min, pt.X.Max = math.Inf(1), math.Inf(-1)
	pt.Y.Min, pt.Y.Max = math.Inf(1), math.Inf(-1)
	for _, data := range pt.datasets {
		xmin, xmax, ymin, ymax := DataRange(data)
		pt.X.Min = math.Min(pt.X.Min, xmin)
		pt.X.Max = math.Max(pt.X.Max, xmax)
		pt.Y.Min = math.Min(pt.Y.Min, ymin)
		pt.Y.Max = math.Max(pt.Y.Max, ymax)
	}
	pt.X.SanitizeRange()
	pt.Y.SanitizeRange()
}

// Draw renders the plot into its image, collecting no render info.
// It resizes to [XYPlot.Size] if the image has not been allocated.
func (pt *XYPlot) Draw() {
	pt.DrawInfo(nil)
}

// DrawInfo renders the plot into its image, recording entities and
// other outputs into the given info when non-nil.
func (pt *XYPlot) DrawInfo(info *RenderInfo) {
	if pt.Pixels == nil {
		pt.Resize(pt.Size)
	}
	if info == nil {
		info = &RenderInfo{}
	}
	pc := pt.Paint
	ptw := float32(pt.Size.X)
	pth := float32(pt.Size.Y)

	pc.FillBox(math32.Vector2{}, math32.Vec2(ptw, pth), pt.Background)

	if pt.Title.Text != "" {
		pt.Title.Config(pt)
		sz := pt.Title.Size()
		pt.Title.Draw(pt, math32.Vec2(0.5*(ptw-sz.X), pt.Pad))
	}

	area := pt.DataArea()
	pt.X.draw(pt, area, pt.DomainAxisEdge())
	pt.Y.draw(pt, area, pt.RangeAxisEdge())

	pt.render(area, info)

	pt.BuildLegend()
	pt.Legend.Draw(pt)
}

// render runs every renderer over its dataset, pass by pass, series by
// series, item by item. The crosshair state is reset once per run.
func (pt *XYPlot) render(area math32.Box2, info *RenderInfo) {
	pt.Crosshair.Reset()
	pc := pt.Paint
	for di, data := range pt.datasets {
		r := pt.renderers[di]
		if data == nil || r == nil {
			slog.Error("plot: dataset and renderer must both be non-nil", "dataset", di)
			continue
		}
		state := r.Initialise(pc, area, pt, data, info)
		passes := r.PassCount()
		for p := 0; p < passes; p++ {
			pass := Pass(p)
			for s := 0; s < data.SeriesCount(); s++ {
				n := data.ItemCount(s)
				if n == 0 {
					continue
				}
				state.StartSeriesPass(data, s, 0, n-1, pass, passes)
				for item := 0; item < n; item++ {
					r.DrawItem(pc, state, area, pt, &pt.X, &pt.Y, data, s, item, &pt.Crosshair, pass)
				}
			}
		}
	}
}

// BuildLegend rebuilds the legend entries from the renderers.
func (pt *XYPlot) BuildLegend() {
	pt.Legend.Reset()
	for di, data := range pt.datasets {
		r := pt.renderers[di]
		if data == nil || r == nil {
			continue
		}
		for s := 0; s < data.SeriesCount(); s++ {
			if it := r.LegendItem(di, s); it != nil {
				pt.Legend.Add(*it)
			}
		}
	}
}
