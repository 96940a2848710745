// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"math"

	"github.com/chartkit/chartkit/shapes"
)

// XYDataset supplies (x, y) samples organized as series of items.
// Either value of a sample may be NaN, which marks a missing sample.
type XYDataset interface {
	// SeriesCount returns the number of series.
	SeriesCount() int

	// ItemCount returns the number of items in the given series.
	ItemCount(series int) int

	// XValue returns the x value of the given item.
	XValue(series, item int) float64

	// YValue returns the y value of the given item.
	YValue(series, item int) float64

	// SeriesKey returns the name of the given series.
	SeriesKey(series int) string
}

// ItemShaper is an optional capability of a dataset: per-item marker
// shapes, in device units relative to the item position. Renderers
// probe for it with a type assertion; datasets without it simply have
// no markers.
type ItemShaper interface {
	// ItemShape returns the marker shape for the given item,
	// or nil if the item has none.
	ItemShape(series, item int) shapes.Shape
}

// XY is one data sample.
type XY struct {
	X, Y float64
}

// XYs is a slice of samples.
type XYs []XY

// XYer is the minimal interface for a sequence of samples.
type XYer interface {
	// Len returns the number of samples.
	Len() int

	// XY returns the sample at the given index.
	XY(i int) (x, y float64)
}

func (xys XYs) Len() int                { return len(xys) }
func (xys XYs) XY(i int) (x, y float64) { return xys[i].X, xys[i].Y }

// CopyXYs copies the given data, returning an error if it is empty.
// NaN values pass through; they mark gaps.
func CopyXYs(data XYer) (XYs, error) {
	if data == nil || data.Len() == 0 {
		return nil, errors.New("plot.CopyXYs: no data")
	}
	cpy := make(XYs, data.Len())
	for i := range cpy {
		cpy[i].X, cpy[i].Y = data.XY(i)
	}
	return cpy, nil
}

// XYRange returns the finite range of the given data.
func XYRange(data XYer) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := 0; i < data.Len(); i++ {
		x, y := data.XY(i)
		if !math.IsNaN(x) {
			xmin = math.Min(xmin, x)
			xmax = math.Max(xmax, x)
		}
		if !math.IsNaN(y) {
			ymin = math.Min(ymin, y)
			ymax = math.Max(ymax, y)
		}
	}
	return
}

// XYSeries is a named sequence of samples with optional per-item
// marker shapes.
type XYSeries struct {

	// Key is the series name, used in legends.
	Key string

	// XYs are the samples.
	XYs XYs

	// Shapes, if non-nil, holds an optional marker shape per item,
	// indexed in parallel with XYs. Nil entries have no marker.
	Shapes []shapes.Shape
}

// SeriesCollection is the standard [XYDataset], a list of [XYSeries].
// It also implements [ItemShaper] for series that carry shapes.
type SeriesCollection struct {
	Series []*XYSeries
}

// NewSeriesCollection returns a collection over the given series.
func NewSeriesCollection(series ...*XYSeries) *SeriesCollection {
	return &SeriesCollection{Series: series}
}

// Add appends a series to the collection.
func (sc *SeriesCollection) Add(s *XYSeries) {
	sc.Series = append(sc.Series, s)
}

func (sc *SeriesCollection) SeriesCount() int { return len(sc.Series) }

func (sc *SeriesCollection) ItemCount(series int) int {
	if series < 0 || series >= len(sc.Series) {
		return 0
	}
	return len(sc.Series[series].XYs)
}

func (sc *SeriesCollection) XValue(series, item int) float64 {
	return sc.Series[series].XYs[item].X
}

func (sc *SeriesCollection) YValue(series, item int) float64 {
	return sc.Series[series].XYs[item].Y
}

func (sc *SeriesCollection) SeriesKey(series int) string {
	if series < 0 || series >= len(sc.Series) {
		return ""
	}
	return sc.Series[series].Key
}

func (sc *SeriesCollection) ItemShape(series, item int) shapes.Shape {
	if series < 0 || series >= len(sc.Series) {
		return nil
	}
	shp := sc.Series[series].Shapes
	if shp == nil || item < 0 || item >= len(shp) {
		return nil
	}
	return shp[item]
}

// DataRange returns the finite data range across all series of the
// dataset, for configuring axes.
func DataRange(data XYDataset) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for s := 0; s < data.SeriesCount(); s++ {
		for i := 0; i < data.ItemCount(s); i++ {
			x := data.XValue(s, i)
			y := data.YValue(s, i)
			if !math.IsNaN(x) {
				xmin = math.Min(xmin, x)
				xmax = math.Max(xmax, x)
			}
			if !math.IsNaN(y) {
				ymin = math.Min(ymin, y)
				ymax = math.Max(ymax, y)
			}
		}
	}
	return
}
