// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderers

import (
	"errors"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"

	"github.com/chartkit/chartkit/plot"
	"github.com/chartkit/chartkit/shapes"
)

// SeriesPath renders each series of an XY dataset as a single
// connected line, drawn in two passes: the first pass accumulates one
// path per series and strokes it whole, the second draws per-item
// markers, labels, crosshair updates and entities on top of the lines.
//
// Items with a NaN coordinate break the line: the path is not extended
// through them, so a gap appears and the line resumes at the next good
// point.
type SeriesPath struct {
	Base

	// Marker is the style markers are drawn with in the second pass.
	// Default is a solid black fill with a one dot black outline.
	Marker plot.PointStyle

	legendLine shapes.Shape
}

// NewSeriesPath returns a new series path renderer with default
// settings.
func NewSeriesPath() *SeriesPath {
	sp := &SeriesPath{}
	sp.Defaults()
	return sp
}

func (sp *SeriesPath) Defaults() {
	sp.BaseDefaults()
	sp.Marker.Defaults()
	sp.legendLine = shapes.NewLine(-7, 0, 7, 0)
}

// State is the render state of [SeriesPath]: the path being
// accumulated for the current series and whether the previous item
// produced a good point.
type State struct {
	plot.BaseState

	// SeriesPath is the line path of the current series.
	SeriesPath Path

	lastPointGood bool
}

// StartSeriesPass resets the series path and the good-point flag so
// each series starts a fresh line.
func (st *State) StartSeriesPass(data plot.XYDataset, series, firstItem, lastItem int, pass plot.Pass, passCount int) {
	st.SeriesPath.Reset()
	st.lastPointGood = false
	st.BaseState.StartSeriesPass(data, series, firstItem, lastItem, pass, passCount)
}

// PassCount returns 2: lines first, then items.
func (sp *SeriesPath) PassCount() int { return 2 }

func (sp *SeriesPath) Initialise(pc *paint.Context, area math32.Box2, plt *plot.XYPlot, data plot.XYDataset, info *plot.RenderInfo) plot.RenderState {
	return &State{BaseState: plot.NewBaseState(info)}
}

func (sp *SeriesPath) DrawItem(pc *paint.Context, state plot.RenderState, area math32.Box2, plt *plot.XYPlot, domain, rng plot.AxisMapper, data plot.XYDataset, series, item int, cross *plot.CrosshairState, pass plot.Pass) {
	if !sp.ItemVisible(series, item) {
		return
	}
	st := state.(*State)
	switch pass {
	case plot.LinePass:
		sp.drawPrimaryLine(pc, st, area, plt, domain, rng, data, series, item)
	case plot.ItemPass:
		sp.drawSecondaryPass(pc, st, area, plt, domain, rng, data, series, item, cross)
	}
}

// devicePoint maps one item to device coordinates, swapping the axes
// for horizontal orientation. Either coordinate is NaN when the data
// value is NaN or not mappable.
func devicePoint(area math32.Box2, plt *plot.XYPlot, domain, rng plot.AxisMapper, x, y float64) math32.Vector2 {
	td := domain.ValueToDevice(x, area, plt.DomainAxisEdge())
	tr := rng.ValueToDevice(y, area, plt.RangeAxisEdge())
	if plt.Orientation == plot.Horizontal {
		return math32.Vec2(tr, td)
	}
	return math32.Vec2(td, tr)
}

// drawPrimaryLine extends the series path by one item, breaking the
// path at NaN values, and strokes the whole path when the last item of
// the series has been processed.
func (sp *SeriesPath) drawPrimaryLine(pc *paint.Context, st *State, area math32.Box2, plt *plot.XYPlot, domain, rng plot.AxisMapper, data plot.XYDataset, series, item int) {
	pt := devicePoint(area, plt, domain, rng, data.XValue(series, item), data.YValue(series, item))
	if math32.IsNaN(pt.X) || math32.IsNaN(pt.Y) {
		st.lastPointGood = false
	} else {
		if st.lastPointGood {
			st.SeriesPath.LineTo(pt)
		} else {
			st.SeriesPath.MoveTo(pt)
		}
		st.lastPointGood = true
	}
	if item == st.LastItemIndex() {
		sp.drawFirstPassShape(pc, series, st)
	}
}

// drawFirstPassShape strokes the accumulated series path with the
// series line style.
func (sp *SeriesPath) drawFirstPassShape(pc *paint.Context, series int, st *State) {
	if st.SeriesPath.IsEmpty() {
		return
	}
	ls := sp.SeriesStyle(series).Line
	if ls.SetStroke(pc) {
		st.SeriesPath.Draw(pc)
		pc.Stroke()
	}
}

// drawSecondaryPass draws the item-level decorations for one item: the
// marker shape when the dataset supplies one, the item label, the
// crosshair update, and the hit-test entity. Items with a NaN
// coordinate are skipped entirely.
func (sp *SeriesPath) drawSecondaryPass(pc *paint.Context, st *State, area math32.Box2, plt *plot.XYPlot, domain, rng plot.AxisMapper, data plot.XYDataset, series, item int, cross *plot.CrosshairState) {
	x := data.XValue(series, item)
	y := data.YValue(series, item)
	anchor := devicePoint(area, plt, domain, rng, x, y)
	if math32.IsNaN(anchor.X) || math32.IsNaN(anchor.Y) {
		return
	}

	var sh shapes.Shape
	if shaper, ok := data.(plot.ItemShaper); ok {
		if is := shaper.ItemShape(series, item); is != nil {
			sh = is.Translate(anchor)
			if sh.Bounds().IntersectsBox(area) {
				sp.drawMarker(pc, sh)
			}
		}
	}

	if sp.ItemLabelsVisible(series) {
		sp.DrawItemLabel(pc, plt, data, series, item, anchor, y < 0)
	}

	sp.UpdateCrosshair(cross, x, y, plt.IndexOf(data), anchor.X, anchor.Y, plt.Orientation)

	if area.ContainsPoint(anchor) {
		hot := sh
		if hot == nil {
			hot = shapes.NewRect(anchor.X-2, anchor.Y-2, 4, 4)
		}
		sp.AddEntity(st.Info(), hot, data, series, item, anchor.X, anchor.Y)
	}
}

// drawMarker fills and outlines one marker shape with the marker style.
func (sp *SeriesPath) drawMarker(pc *paint.Context, sh shapes.Shape) {
	if sp.Marker.SetFill(pc) {
		sh.Draw(pc)
		pc.Fill()
	}
	if sp.Marker.SetStroke(pc) {
		sh.Draw(pc)
		pc.Stroke()
	}
}

// LegendItem returns the legend entry for a series: no shape sample,
// a visible line sample using the legend line glyph and the series
// line style. It returns nil when the renderer has no plot, the plot
// has no dataset at the given index, or the series is not visible.
func (sp *SeriesPath) LegendItem(datasetIndex, series int) *plot.LegendItem {
	plt := sp.Plot()
	if plt == nil {
		return nil
	}
	data := plt.Dataset(datasetIndex)
	if data == nil {
		return nil
	}
	if !sp.ItemVisible(series, 0) {
		return nil
	}
	ss := sp.SeriesStyle(series)
	lbl := data.SeriesKey(series)
	if sp.LegendLabeler != nil {
		lbl = sp.LegendLabeler.Label(data, series)
	}
	it := &plot.LegendItem{
		Label:        lbl,
		Description:  lbl,
		ShapeVisible: false,
		Shape:        shapes.NewRect(-4, -4, 8, 8),
		ShapeFilled:  true,
		Fill:         ss.Fill,
		Outline:      ss.Outline,
		LineVisible:  true,
		Line:         sp.legendLine.Clone(),
		LineStyle:    ss.Line,
		Text:         ss.Text,
		SeriesKey:    data.SeriesKey(series),
		SeriesIndex:  series,
		DatasetIndex: datasetIndex,
		Dataset:      data,
	}
	if sp.TooltipLabeler != nil {
		it.ToolTipText = sp.TooltipLabeler.Tooltip(data, series)
	}
	if sp.URLLabeler != nil {
		it.URLText = sp.URLLabeler.URL(data, series)
	}
	return it
}

// LegendLine returns the glyph drawn as the line sample in legend
// entries.
func (sp *SeriesPath) LegendLine() shapes.Shape { return sp.legendLine }

// SetLegendLine sets the legend line glyph and notifies change
// listeners. A nil shape is rejected and leaves the glyph unchanged.
func (sp *SeriesPath) SetLegendLine(sh shapes.Shape) error {
	if sh == nil {
		return errors.New("renderers: legend line shape must not be nil")
	}
	sp.legendLine = sh
	sp.NotifyChange()
	return nil
}

// Clone returns a deep copy of the renderer. The clone shares no
// mutable state with the original: styles and the legend line glyph
// are copied, and change listeners and the plot attachment are not
// carried over.
func (sp *SeriesPath) Clone() *SeriesPath {
	nsp := &SeriesPath{
		Base:   sp.CloneBase(),
		Marker: sp.Marker,
	}
	if sp.legendLine != nil {
		nsp.legendLine = sp.legendLine.Clone()
	}
	return nsp
}

// Equal reports whether two renderers have the same settings,
// including the legend line glyph. Plot attachment and listeners are
// not compared.
func (sp *SeriesPath) Equal(other *SeriesPath) bool {
	if sp == other {
		return true
	}
	if sp == nil || other == nil {
		return false
	}
	return sp.Base.Equal(&other.Base) && sp.Marker.Equal(&other.Marker) &&
		shapes.Equal(sp.legendLine, other.legendLine)
}
