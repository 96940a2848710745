// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Orientation specifies the direction of the domain axis of a plot.
type Orientation int32 //enums:enum

const (
	// Vertical lays the domain axis out horizontally along the bottom
	// and the range axis vertically along the left (the default).
	Vertical Orientation = iota

	// Horizontal transposes the device axes: the domain axis runs
	// vertically along the left and the range axis along the bottom.
	Horizontal
)

// Edge is the side of the data area that an axis occupies. The edge
// determines which device coordinate an axis mapping produces.
type Edge int32 //enums:enum

const (
	// Top is the top edge; values map to device x coordinates.
	Top Edge = iota

	// Bottom is the bottom edge; values map to device x coordinates.
	Bottom

	// Left is the left edge; values map to device y coordinates,
	// with larger values higher up (smaller device y).
	Left

	// Right is the right edge; values map like Left.
	Right
)

// Pass identifies one full sweep over the data during rendering.
// Renderers report how many passes they need via
// [ItemRenderer.PassCount] and the plot drives them in order.
type Pass int32 //enums:enum

const (
	// LinePass draws the connecting lines behind the items.
	LinePass Pass = iota

	// ItemPass draws the per-item markers, labels and entities on top.
	ItemPass
)

// DefaultOffOn specifies whether to use the default value for a bool
// option, or to override the default and set Off or On.
type DefaultOffOn int32 //enums:enum

const (
	// Default means use the default value.
	Default DefaultOffOn = iota

	// Off means to override the default and turn Off.
	Off

	// On means to override the default and turn On.
	On
)

// Resolve returns the effective bool value given the default.
func (df DefaultOffOn) Resolve(def bool) bool {
	switch df {
	case Off:
		return false
	case On:
		return true
	}
	return def
}
