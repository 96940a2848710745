// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	off := math32.Vec2(10, -5)

	ln := NewLine(-7, 0, 7, 0)
	assert.Equal(t, NewLine(3, -5, 17, -5), ln.Translate(off))

	rt := NewRect(0, 0, 4, 2)
	assert.Equal(t, Rect{Box: math32.B2(10, -5, 14, -3)}, rt.Translate(off))

	el := NewCircle(1, 1, 3)
	assert.Equal(t, NewCircle(11, -4, 3), el.Translate(off))

	pg := NewPolygon(math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(0, 1))
	moved := pg.Translate(off).(Polygon)
	assert.Equal(t, math32.Vec2(10, -5), moved.Points[0])
	// source polygon unchanged
	assert.Equal(t, math32.Vec2(0, 0), pg.Points[0])
}

func TestBounds(t *testing.T) {
	assert.Equal(t, math32.B2(-7, 0, 7, 0), NewLine(-7, 0, 7, 0).Bounds())
	assert.Equal(t, math32.B2(-2, -2, 4, 4), NewEllipse(1, 1, 3, 3).Bounds())

	area := math32.B2(0, 0, 100, 100)
	assert.True(t, NewCircle(99, 50, 3).Bounds().IntersectsBox(area))
	assert.False(t, NewCircle(120, 50, 3).Bounds().IntersectsBox(area))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(NewLine(0, 0, 1, 1), nil))
	assert.False(t, Equal(NewLine(0, 0, 1, 1), NewRect(0, 0, 1, 1)))
	assert.True(t, Equal(NewLine(0, 0, 1, 1), NewLine(0, 0, 1, 1)))
	assert.False(t, Equal(NewLine(0, 0, 1, 1), NewLine(0, 0, 1, 2)))
}

func TestCloneIndependence(t *testing.T) {
	pg := NewPolygon(math32.Vec2(0, 0), math32.Vec2(1, 0))
	cl := pg.Clone().(Polygon)
	cl.Points[0] = math32.Vec2(9, 9)
	assert.Equal(t, math32.Vec2(0, 0), pg.Points[0])
}

func TestJSONRoundTrip(t *testing.T) {
	for _, s := range []Shape{
		NewLine(-7, 0, 7, 0),
		NewRect(1, 2, 3, 4),
		NewEllipse(0, 0, 2, 3),
		NewPolygon(math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(0, 1)),
	} {
		b, err := Marshal(s)
		assert.NoError(t, err)
		got, err := Unmarshal(b)
		assert.NoError(t, err)
		assert.True(t, Equal(s, got), "round trip of %T", s)
	}

	b, err := Marshal(nil)
	assert.NoError(t, err)
	got, err := Unmarshal(b)
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = Unmarshal([]byte(`{"kind":"blob"}`))
	assert.Error(t, err)
}
