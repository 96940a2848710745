// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestAxisValueToDevice(t *testing.T) {
	var ax Axis
	ax.Defaults()
	ax.Min = 0
	ax.Max = 10
	area := math32.B2(0, 0, 100, 200)

	assert.Equal(t, float32(0), ax.ValueToDevice(0, area, Bottom))
	assert.Equal(t, float32(50), ax.ValueToDevice(5, area, Bottom))
	assert.Equal(t, float32(100), ax.ValueToDevice(10, area, Bottom))

	// left edge is a y coordinate, inverted so larger values are higher
	assert.Equal(t, float32(200), ax.ValueToDevice(0, area, Left))
	assert.Equal(t, float32(0), ax.ValueToDevice(10, area, Left))

	// out of range values map linearly beyond the area
	assert.Equal(t, float32(-50), ax.ValueToDevice(-5, area, Bottom))
	assert.Equal(t, float32(150), ax.ValueToDevice(15, area, Bottom))
}

func TestAxisValueToDeviceNaN(t *testing.T) {
	var ax Axis
	ax.Defaults()
	ax.Min = 0
	ax.Max = 10
	area := math32.B2(0, 0, 100, 100)

	assert.True(t, math32.IsNaN(ax.ValueToDevice(math.NaN(), area, Bottom)))
	assert.True(t, math32.IsNaN(ax.ValueToDevice(math.Inf(1), area, Bottom)))

	ax.Max = ax.Min
	assert.True(t, math32.IsNaN(ax.ValueToDevice(5, area, Bottom)))
}

func TestAxisInverted(t *testing.T) {
	var ax Axis
	ax.Defaults()
	ax.Min = 0
	ax.Max = 10
	ax.Inverted = true
	area := math32.B2(0, 0, 100, 100)

	assert.Equal(t, float32(100), ax.ValueToDevice(0, area, Bottom))
	assert.Equal(t, float32(0), ax.ValueToDevice(10, area, Bottom))
}

func TestAxisSanitizeRange(t *testing.T) {
	var ax Axis
	ax.Defaults()

	ax.Min, ax.Max = math.Inf(1), math.Inf(-1)
	ax.SanitizeRange()
	assert.True(t, ax.Min < ax.Max)

	ax.Min, ax.Max = 3, 3
	ax.SanitizeRange()
	assert.Equal(t, 2.0, ax.Min)
	assert.Equal(t, 4.0, ax.Max)

	ax.Min, ax.Max = 7, 2
	ax.SanitizeRange()
	assert.Equal(t, 2.0, ax.Min)
	assert.Equal(t, 7.0, ax.Max)
}

func TestCrosshairUpdate(t *testing.T) {
	var cs CrosshairState
	cs.Reset()
	assert.Equal(t, 0, cs.Updates)

	cs.Update(3, 4, 1, 30, 40, Vertical)
	cs.Update(5, 6, 1, 50, 60, Vertical)
	assert.Equal(t, 2, cs.Updates)
	assert.Equal(t, 5.0, cs.X)
	assert.Equal(t, 6.0, cs.Y)
	assert.Equal(t, 1, cs.DatasetIndex)
	assert.Equal(t, float32(50), cs.DeviceX)
	assert.Equal(t, float32(60), cs.DeviceY)
}
