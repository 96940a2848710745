// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderers

import (
	"math"
	"os"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"github.com/stretchr/testify/assert"

	"github.com/chartkit/chartkit/plot"
	"github.com/chartkit/chartkit/shapes"
)

func TestMain(m *testing.M) {
	paint.FontLibrary.InitFontPaths(paint.FontPaths...)
	os.Exit(m.Run())
}

// scaleMapper maps data values by an affine function, for driving
// DrawItem directly without a full axis.
type scaleMapper struct {
	mul, add float64
}

func (sm scaleMapper) ValueToDevice(v float64, area math32.Box2, edge plot.Edge) float32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math32.NaN()
	}
	return float32(sm.mul*v + sm.add)
}

// testPlot returns a plot with an allocated paint context, a renderer
// attached to it, and the area used by the direct DrawItem tests.
func testPlot(sp *SeriesPath) (*plot.XYPlot, math32.Box2) {
	plt := plot.New()
	plt.Resize(plt.Size)
	if sp != nil {
		sp.SetPlot(plt)
	}
	return plt, math32.B2(0, 0, 100, 100)
}

// runPass drives one full pass over one series the way the plot render
// loop does.
func runPass(sp *SeriesPath, st plot.RenderState, plt *plot.XYPlot, area math32.Box2, domain, rng plot.AxisMapper, data plot.XYDataset, series int, pass plot.Pass) {
	n := data.ItemCount(series)
	st.StartSeriesPass(data, series, 0, n-1, pass, sp.PassCount())
	for item := 0; item < n; item++ {
		sp.DrawItem(plt.Paint, st, area, plt, domain, rng, data, series, item, &plt.Crosshair, pass)
	}
}

func TestPassCount(t *testing.T) {
	assert.Equal(t, 2, NewSeriesPath().PassCount())
}

func TestLinePassNaNGap(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	data := plot.NewSeriesCollection(&plot.XYSeries{Key: "a", XYs: plot.XYs{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: math.NaN()}, {X: 3, Y: 3}, {X: 4, Y: 4},
	}})
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: 10}

	st := sp.Initialise(plt.Paint, area, plt, data, nil).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.LinePass)

	subs := st.SeriesPath.Subpaths()
	assert.Equal(t, 2, len(subs))
	assert.Equal(t, 2, len(subs[0]))
	assert.Equal(t, 2, len(subs[1]))
	assert.Equal(t, math32.Vec2(30, 30), subs[1][0])
}

func TestLinePassSingleSubpath(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	data := plot.NewSeriesCollection(&plot.XYSeries{Key: "a", XYs: plot.XYs{
		{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30},
	}})
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: -1, add: 100}

	st := sp.Initialise(plt.Paint, area, plt, data, nil).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.LinePass)

	subs := st.SeriesPath.Subpaths()
	assert.Equal(t, 1, len(subs))
	assert.Equal(t, []math32.Vector2{{X: 10, Y: 90}, {X: 20, Y: 80}, {X: 30, Y: 70}}, subs[0])
}

func TestStartSeriesPassResets(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	data := plot.NewSeriesCollection(
		&plot.XYSeries{Key: "a", XYs: plot.XYs{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		&plot.XYSeries{Key: "b", XYs: plot.XYs{{X: 3, Y: 3}}},
	)
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: 10}

	st := sp.Initialise(plt.Paint, area, plt, data, nil).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.LinePass)
	runPass(sp, st, plt, area, dm, rm, data, 1, plot.LinePass)

	subs := st.SeriesPath.Subpaths()
	assert.Equal(t, 1, len(subs))
	assert.Equal(t, math32.Vec2(30, 30), subs[0][0])
}

func TestHorizontalOrientationSwapsAxes(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	plt.Orientation = plot.Horizontal
	data := plot.NewSeriesCollection(&plot.XYSeries{Key: "a", XYs: plot.XYs{{X: 1, Y: 2}}})
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: 100}

	st := sp.Initialise(plt.Paint, area, plt, data, nil).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.LinePass)

	subs := st.SeriesPath.Subpaths()
	assert.Equal(t, 1, len(subs))
	// range value on the device x axis, domain value on y
	assert.Equal(t, math32.Vec2(200, 10), subs[0][0])
}

func TestItemPassCrosshairAndEntities(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	data := plot.NewSeriesCollection(&plot.XYSeries{Key: "a", XYs: plot.XYs{
		{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30},
	}})
	plt.AddDataset(data, sp)
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: -1, add: 100}

	var ents plot.Entities
	info := &plot.RenderInfo{Entities: &ents}
	st := sp.Initialise(plt.Paint, area, plt, data, info).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.LinePass)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.ItemPass)

	assert.Equal(t, 3, plt.Crosshair.Updates)
	assert.Equal(t, 3.0, plt.Crosshair.X)
	assert.Equal(t, 30.0, plt.Crosshair.Y)
	assert.Equal(t, float32(30), plt.Crosshair.DeviceX)
	assert.Equal(t, float32(70), plt.Crosshair.DeviceY)
	assert.Equal(t, plt.IndexOf(data), plt.Crosshair.DatasetIndex)

	assert.Equal(t, 3, len(ents))
	assert.Equal(t, 1, ents[1].Item)
	assert.Equal(t, float32(20), ents[1].X)
	assert.Equal(t, float32(80), ents[1].Y)
}

func TestItemPassEntityBoundedToArea(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	data := plot.NewSeriesCollection(&plot.XYSeries{Key: "a", XYs: plot.XYs{
		{X: 5, Y: 50}, {X: 20, Y: 50}, // second item maps outside the area
	}})
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: 1}

	var ents plot.Entities
	info := &plot.RenderInfo{Entities: &ents}
	st := sp.Initialise(plt.Paint, area, plt, data, info).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.ItemPass)

	assert.Equal(t, 1, len(ents))
	assert.Equal(t, 0, ents[0].Item)
}

func TestItemPassNaNSkipped(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	data := plot.NewSeriesCollection(&plot.XYSeries{Key: "a", XYs: plot.XYs{
		{X: 1, Y: math.NaN()}, {X: math.NaN(), Y: 2},
	}})
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: 10}

	var ents plot.Entities
	info := &plot.RenderInfo{Entities: &ents}
	st := sp.Initialise(plt.Paint, area, plt, data, info).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.ItemPass)

	assert.Equal(t, 0, plt.Crosshair.Updates)
	assert.Equal(t, 0, len(ents))
}

func TestItemPassMarkerShape(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	s := &plot.XYSeries{Key: "a", XYs: plot.XYs{{X: 5, Y: 50}}}
	s.Shapes = []shapes.Shape{shapes.NewCircle(0, 0, 4)}
	data := plot.NewSeriesCollection(s)
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: 1}

	var ents plot.Entities
	info := &plot.RenderInfo{Entities: &ents}
	st := sp.Initialise(plt.Paint, area, plt, data, info).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.ItemPass)

	// the entity hotspot is the translated marker shape
	assert.Equal(t, 1, len(ents))
	b := ents[0].Shape.Bounds()
	assert.Equal(t, math32.Vec2(46, 46), b.Min)
	assert.Equal(t, math32.Vec2(54, 54), b.Max)
}

func TestLegendLineDefault(t *testing.T) {
	sp := NewSeriesPath()
	assert.True(t, shapes.Equal(sp.LegendLine(), shapes.NewLine(-7, 0, 7, 0)))
}

func TestSetLegendLine(t *testing.T) {
	sp := NewSeriesPath()
	orig := sp.LegendLine()

	err := sp.SetLegendLine(nil)
	assert.Error(t, err)
	assert.True(t, shapes.Equal(orig, sp.LegendLine()))

	ln := shapes.NewLine(-5, -5, 5, 5)
	assert.NoError(t, sp.SetLegendLine(ln))
	assert.True(t, shapes.Equal(ln, sp.LegendLine()))
}

func TestSetLegendLineNotifiesOnce(t *testing.T) {
	sp := NewSeriesPath()
	count := 0
	sp.OnChange(func() { count++ })

	sp.SetLegendLine(shapes.NewLine(-5, 0, 5, 0))
	assert.Equal(t, 1, count)

	sp.SetLegendLine(nil)
	assert.Equal(t, 1, count)
}

func TestLegendItem(t *testing.T) {
	sp := NewSeriesPath()
	assert.Nil(t, sp.LegendItem(0, 0))

	plt, _ := testPlot(sp)
	assert.Nil(t, sp.LegendItem(3, 0))

	data := plot.NewSeriesCollection(&plot.XYSeries{Key: "alpha", XYs: plot.XYs{{X: 1, Y: 1}}})
	plt.AddDataset(data, sp)
	di := plt.IndexOf(data)

	it := sp.LegendItem(di, 0)
	assert.NotNil(t, it)
	assert.Equal(t, "alpha", it.Label)
	assert.Equal(t, "alpha", it.SeriesKey)
	assert.False(t, it.ShapeVisible)
	assert.True(t, it.LineVisible)
	assert.True(t, shapes.Equal(sp.LegendLine(), it.Line))
	assert.Equal(t, di, it.DatasetIndex)
	assert.Equal(t, 0, it.SeriesIndex)

	sp.Style(0, func(ss *SeriesStyle) { ss.Visible = plot.Off })
	assert.Nil(t, sp.LegendItem(di, 0))
}

func TestSeriesVisibilityGatesDrawing(t *testing.T) {
	sp := NewSeriesPath()
	plt, area := testPlot(sp)
	data := plot.NewSeriesCollection(&plot.XYSeries{Key: "a", XYs: plot.XYs{{X: 1, Y: 1}, {X: 2, Y: 2}}})
	dm := scaleMapper{mul: 10}
	rm := scaleMapper{mul: 10}

	sp.Style(0, func(ss *SeriesStyle) { ss.Visible = plot.Off })
	st := sp.Initialise(plt.Paint, area, plt, data, nil).(*State)
	runPass(sp, st, plt, area, dm, rm, data, 0, plot.LinePass)
	assert.True(t, st.SeriesPath.IsEmpty())
}

func TestCloneAndEqual(t *testing.T) {
	sp := NewSeriesPath()
	sp.Style(0, func(ss *SeriesStyle) {
		ss.Line.Color = colors.Uniform(colors.Red)
	})
	sp.SetLegendLine(shapes.NewLine(-6, 0, 6, 0))

	cl := sp.Clone()
	assert.True(t, sp.Equal(cl))
	assert.True(t, cl.Equal(sp))

	// the clone shares no state with the original
	cl.SetLegendLine(shapes.NewLine(0, -6, 0, 6))
	assert.False(t, sp.Equal(cl))
	assert.True(t, shapes.Equal(sp.LegendLine(), shapes.NewLine(-6, 0, 6, 0)))

	cl = sp.Clone()
	cl.Style(0, func(ss *SeriesStyle) {
		ss.Line.Color = colors.Uniform(colors.Blue)
	})
	assert.False(t, sp.Equal(cl))
}

func TestEqualComparesFill(t *testing.T) {
	sp := NewSeriesPath()
	other := NewSeriesPath()
	sp.Style(0, func(ss *SeriesStyle) { ss.Fill = colors.Uniform(colors.Red) })
	other.Style(0, func(ss *SeriesStyle) { ss.Fill = colors.Uniform(colors.Blue) })
	assert.False(t, sp.Equal(other))

	other.Style(0, func(ss *SeriesStyle) { ss.Fill = colors.Uniform(colors.Red) })
	assert.True(t, sp.Equal(other))

	other.Style(0, func(ss *SeriesStyle) { ss.Fill = nil })
	assert.False(t, sp.Equal(other))
}

func TestSeriesPathJSON(t *testing.T) {
	sp := NewSeriesPath()
	sp.SeriesLabels = true
	sp.Marker.Fill = colors.Uniform(colors.Red)
	sp.Style(1, func(ss *SeriesStyle) {
		ss.Line.Color = colors.Uniform(colors.Blue)
		ss.Line.Width.Dp(2)
		ss.Labels = plot.On
	})
	sp.SetLegendLine(shapes.NewLine(-9, 0, 9, 0))

	dir := t.TempDir()
	fn := dir + "/seriespath.json"
	assert.NoError(t, sp.Save(fn))

	got := NewSeriesPath()
	assert.NoError(t, got.Open(fn))
	assert.True(t, sp.Equal(got))
	assert.True(t, shapes.Equal(sp.LegendLine(), got.LegendLine()))
}

func ExampleSeriesPath() {
	plt := plot.New()
	plt.Title.Text = "Monthly Throughput"
	data := plot.NewSeriesCollection(
		&plot.XYSeries{Key: "east", XYs: plot.XYs{
			{X: 0, Y: 12}, {X: 1, Y: 19}, {X: 2, Y: math.NaN()}, {X: 3, Y: 28}, {X: 4, Y: 31},
		}},
		&plot.XYSeries{Key: "west", XYs: plot.XYs{
			{X: 0, Y: 8}, {X: 1, Y: 11}, {X: 2, Y: 17}, {X: 3, Y: 16}, {X: 4, Y: 22},
		}},
	)
	sp := NewSeriesPath()
	plt.AddDataset(data, sp)
	plt.UpdateRange()
	plt.Draw()
	imagex.Save(plt.Pixels, "testdata/ex_seriespath.png")
	// Output:
}
