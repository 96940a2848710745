// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes provides the device-space geometric shapes used for
// chart markers, legend glyphs and interactive hit regions.
package shapes

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
)

// Shape is a geometric figure in device coordinates. Shapes are
// immutable values: Translate returns a moved copy and Clone returns an
// independent deep copy.
type Shape interface {
	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() math32.Box2

	// Translate returns a copy of the shape moved by the given offset.
	Translate(off math32.Vector2) Shape

	// Draw adds the shape to the current path of the paint context.
	// The caller fills and / or strokes the result.
	Draw(pc *paint.Context)

	// Equal reports whether the shape is geometrically equal to other.
	Equal(other Shape) bool

	// Clone returns an independent copy of the shape.
	Clone() Shape
}

// Equal reports whether two possibly-nil shapes are geometrically equal.
func Equal(a, b Shape) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Line is a straight line segment.
type Line struct {
	Start math32.Vector2
	End   math32.Vector2
}

// NewLine returns a line segment between the two given points.
func NewLine(x0, y0, x1, y1 float32) Line {
	return Line{Start: math32.Vec2(x0, y0), End: math32.Vec2(x1, y1)}
}

func (ln Line) Bounds() math32.Box2 {
	b := math32.B2Empty()
	b.ExpandByPoint(ln.Start)
	b.ExpandByPoint(ln.End)
	return b
}

func (ln Line) Translate(off math32.Vector2) Shape {
	return Line{Start: ln.Start.Add(off), End: ln.End.Add(off)}
}

func (ln Line) Draw(pc *paint.Context) {
	pc.MoveTo(ln.Start.X, ln.Start.Y)
	pc.LineTo(ln.End.X, ln.End.Y)
}

func (ln Line) Equal(other Shape) bool {
	ol, ok := other.(Line)
	return ok && ln == ol
}

func (ln Line) Clone() Shape { return ln }

// Rect is an axis-aligned rectangle.
type Rect struct {
	Box math32.Box2
}

// NewRect returns a rectangle with the given origin and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Box: math32.B2(x, y, x+w, y+h)}
}

func (rt Rect) Bounds() math32.Box2 { return rt.Box }

func (rt Rect) Translate(off math32.Vector2) Shape {
	return Rect{Box: rt.Box.Translate(off)}
}

func (rt Rect) Draw(pc *paint.Context) {
	sz := rt.Box.Size()
	pc.DrawRectangle(rt.Box.Min.X, rt.Box.Min.Y, sz.X, sz.Y)
}

func (rt Rect) Equal(other Shape) bool {
	or, ok := other.(Rect)
	return ok && rt == or
}

func (rt Rect) Clone() Shape { return rt }

// Ellipse is an axis-aligned ellipse given by its center and radii.
type Ellipse struct {
	Center math32.Vector2
	Radii  math32.Vector2
}

// NewEllipse returns an ellipse centered at (x, y) with radii rx, ry.
func NewEllipse(x, y, rx, ry float32) Ellipse {
	return Ellipse{Center: math32.Vec2(x, y), Radii: math32.Vec2(rx, ry)}
}

// NewCircle returns a circle centered at (x, y) with radius r.
func NewCircle(x, y, r float32) Ellipse {
	return NewEllipse(x, y, r, r)
}

func (el Ellipse) Bounds() math32.Box2 {
	return math32.Box2{Min: el.Center.Sub(el.Radii), Max: el.Center.Add(el.Radii)}
}

func (el Ellipse) Translate(off math32.Vector2) Shape {
	return Ellipse{Center: el.Center.Add(off), Radii: el.Radii}
}

func (el Ellipse) Draw(pc *paint.Context) {
	pc.DrawEllipse(el.Center.X, el.Center.Y, el.Radii.X, el.Radii.Y)
}

func (el Ellipse) Equal(other Shape) bool {
	oe, ok := other.(Ellipse)
	return ok && el == oe
}

func (el Ellipse) Clone() Shape { return el }

// Polygon is a closed polygon.
type Polygon struct {
	Points []math32.Vector2
}

// NewPolygon returns a polygon over the given points.
func NewPolygon(points ...math32.Vector2) Polygon {
	return Polygon{Points: points}
}

func (pg Polygon) Bounds() math32.Box2 {
	b := math32.B2Empty()
	b.SetFromPoints(pg.Points)
	return b
}

func (pg Polygon) Translate(off math32.Vector2) Shape {
	pts := make([]math32.Vector2, len(pg.Points))
	for i, p := range pg.Points {
		pts[i] = p.Add(off)
	}
	return Polygon{Points: pts}
}

func (pg Polygon) Draw(pc *paint.Context) {
	if len(pg.Points) == 0 {
		return
	}
	pc.MoveTo(pg.Points[0].X, pg.Points[0].Y)
	for _, p := range pg.Points[1:] {
		pc.LineTo(p.X, p.Y)
	}
	pc.ClosePath()
}

func (pg Polygon) Equal(other Shape) bool {
	op, ok := other.(Polygon)
	return ok && slices.Equal(pg.Points, op.Points)
}

func (pg Polygon) Clone() Shape {
	return Polygon{Points: slices.Clone(pg.Points)}
}
