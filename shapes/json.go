// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cogentcore.org/core/math32"
)

// shapeJSON is the type-tagged wire form of a [Shape]. Shapes are an
// interface, so generic geometry cannot round-trip through
// encoding/json without a tag.
type shapeJSON struct {
	Kind   string           `json:"kind"`
	Points []math32.Vector2 `json:"points"`
}

// Marshal encodes a shape as type-tagged JSON. A nil shape encodes as
// JSON null.
func Marshal(s Shape) ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var sj shapeJSON
	switch sh := s.(type) {
	case Line:
		sj = shapeJSON{Kind: "line", Points: []math32.Vector2{sh.Start, sh.End}}
	case Rect:
		sj = shapeJSON{Kind: "rect", Points: []math32.Vector2{sh.Box.Min, sh.Box.Max}}
	case Ellipse:
		sj = shapeJSON{Kind: "ellipse", Points: []math32.Vector2{sh.Center, sh.Radii}}
	case Polygon:
		sj = shapeJSON{Kind: "polygon", Points: sh.Points}
	default:
		return nil, fmt.Errorf("shapes.Marshal: unknown shape type %T", s)
	}
	return json.Marshal(sj)
}

// Unmarshal decodes a shape from its type-tagged JSON form. JSON null
// decodes as a nil shape.
func Unmarshal(data []byte) (Shape, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	var sj shapeJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return nil, err
	}
	two := func() error {
		if len(sj.Points) != 2 {
			return fmt.Errorf("shapes.Unmarshal: %q needs 2 points, got %d", sj.Kind, len(sj.Points))
		}
		return nil
	}
	switch sj.Kind {
	case "line":
		if err := two(); err != nil {
			return nil, err
		}
		return Line{Start: sj.Points[0], End: sj.Points[1]}, nil
	case "rect":
		if err := two(); err != nil {
			return nil, err
		}
		return Rect{Box: math32.Box2{Min: sj.Points[0], Max: sj.Points[1]}}, nil
	case "ellipse":
		if err := two(); err != nil {
			return nil, err
		}
		return Ellipse{Center: sj.Points[0], Radii: sj.Points[1]}, nil
	case "polygon":
		return Polygon{Points: sj.Points}, nil
	}
	return nil, fmt.Errorf("shapes.Unmarshal: unknown shape kind %q", sj.Kind)
}
