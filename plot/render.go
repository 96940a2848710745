// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
)

// RenderInfo collects optional outputs of a render run, such as the
// entities generated for interactive hit testing. Any field may be nil
// when the caller does not want that output.
type RenderInfo struct {

	// Entities receives one entity per visible item, when non-nil.
	Entities EntityCollection
}

// RenderState is the per-render working state that an [ItemRenderer]
// carries between item draws. Renderers embed [BaseState] and extend
// it with whatever per-series accumulation they need.
type RenderState interface {

	// StartSeriesPass is called before the items of a series are
	// processed in a given pass, so state from the previous series
	// can be reset.
	StartSeriesPass(data XYDataset, series, firstItem, lastItem int, pass Pass, passCount int)

	// FirstItemIndex returns the index of the first item of the
	// current series pass.
	FirstItemIndex() int

	// LastItemIndex returns the index of the last item of the
	// current series pass.
	LastItemIndex() int

	// Info returns the render info for this run, never nil.
	Info() *RenderInfo
}

// BaseState is the default [RenderState]. It records the item range of
// the current series pass and carries the render info.
type BaseState struct {
	info      *RenderInfo
	firstItem int
	lastItem  int
}

// NewBaseState returns a BaseState for the given render info,
// substituting an empty info when nil is passed.
func NewBaseState(info *RenderInfo) BaseState {
	if info == nil {
		info = &RenderInfo{}
	}
	return BaseState{info: info}
}

func (st *BaseState) StartSeriesPass(data XYDataset, series, firstItem, lastItem int, pass Pass, passCount int) {
	st.firstItem = firstItem
	st.lastItem = lastItem
}

func (st *BaseState) FirstItemIndex() int { return st.firstItem }
func (st *BaseState) LastItemIndex() int  { return st.lastItem }
func (st *BaseState) Info() *RenderInfo   { return st.info }

// ItemRenderer draws the items of a dataset onto a plot, one item at a
// time, in one or more passes over the full dataset.
type ItemRenderer interface {

	// PassCount returns the number of passes this renderer needs.
	PassCount() int

	// Initialise is called once per render run, before any passes,
	// and returns the state threaded through subsequent DrawItem
	// calls.
	Initialise(pc *paint.Context, area math32.Box2, plt *XYPlot, data XYDataset, info *RenderInfo) RenderState

	// DrawItem draws one item of one series in the given pass.
	// domain and rng map data coordinates onto the data area.
	DrawItem(pc *paint.Context, state RenderState, area math32.Box2, plt *XYPlot, domain, rng AxisMapper, data XYDataset, series, item int, cross *CrosshairState, pass Pass)

	// LegendItem returns the legend entry for a series, or nil when
	// the series should not appear in the legend.
	LegendItem(datasetIndex, series int) *LegendItem

	// SetPlot attaches the renderer to its plot. It is called by
	// [XYPlot.AddDataset].
	SetPlot(plt *XYPlot)
}
