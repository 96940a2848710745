// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// CrosshairState tracks the most recently drawn item during a render,
// for interactive highlighting by the host. It is reset at the start
// of each draw and updated once per visible item.
type CrosshairState struct {

	// X, Y are the data values of the last item.
	X, Y float64

	// DatasetIndex is the plot index of the dataset the item came from.
	DatasetIndex int

	// DeviceX, DeviceY are the on-screen device coordinates of the
	// item, already swapped for horizontal orientation.
	DeviceX, DeviceY float32

	// Orientation records the plot orientation at update time, so the
	// host can interpret the device coordinates.
	Orientation Orientation

	// Updates counts the updates since the last Reset.
	Updates int
}

// Reset clears the state for a new draw.
func (cs *CrosshairState) Reset() {
	*cs = CrosshairState{}
}

// Update records the given item as the current crosshair target.
func (cs *CrosshairState) Update(x, y float64, datasetIndex int, deviceX, deviceY float32, orient Orientation) {
	cs.X = x
	cs.Y = y
	cs.DatasetIndex = datasetIndex
	cs.DeviceX = deviceX
	cs.DeviceY = deviceY
	cs.Orientation = orient
	cs.Updates++
}
