// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderers

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
)

// Path accumulates polyline subpaths in device coordinates. MoveTo
// starts a new subpath; LineTo extends the current one. The subpaths
// remain inspectable after accumulation, and Draw replays them onto a
// paint context.
type Path struct {
	subs [][]math32.Vector2
}

// Reset discards all accumulated subpaths.
func (p *Path) Reset() {
	p.subs = p.subs[:0]
}

// IsEmpty reports whether the path has no points.
func (p *Path) IsEmpty() bool {
	return len(p.subs) == 0
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(pt math32.Vector2) {
	p.subs = append(p.subs, []math32.Vector2{pt})
}

// LineTo extends the current subpath to the given point, starting a
// new subpath when there is none.
func (p *Path) LineTo(pt math32.Vector2) {
	if len(p.subs) == 0 {
		p.MoveTo(pt)
		return
	}
	n := len(p.subs) - 1
	p.subs[n] = append(p.subs[n], pt)
}

// Subpaths returns the accumulated subpaths. The returned slices are
// the path's own storage and are invalidated by Reset.
func (p *Path) Subpaths() [][]math32.Vector2 {
	return p.subs
}

// Draw replays the path onto the paint context. The caller sets the
// stroke style and strokes afterwards.
func (p *Path) Draw(pc *paint.Context) {
	for _, sub := range p.subs {
		for i, pt := range sub {
			if i == 0 {
				pc.MoveTo(pt.X, pt.Y)
			} else {
				pc.LineTo(pt.X, pt.Y)
			}
		}
	}
}
