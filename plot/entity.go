// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/chartkit/chartkit/shapes"

// Entity is an interactive region recorded for one drawn item, used by
// hosts for tooltips and click-through.
type Entity struct {

	// Shape is the hit region in device coordinates, or nil when only
	// the anchor point is known.
	Shape shapes.Shape

	// Dataset, Series and Item identify the data behind the region.
	Dataset XYDataset
	Series  int
	Item    int

	// X, Y are the device-space anchor coordinates of the item.
	X, Y float32
}

// EntityCollection receives entities as items are drawn.
type EntityCollection interface {
	Add(e Entity)
}

// Entities is the slice-backed standard [EntityCollection].
type Entities []Entity

func (es *Entities) Add(e Entity) {
	*es = append(*es, e)
}
