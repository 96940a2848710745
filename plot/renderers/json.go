// Copyright (c) 2025, Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderers

import (
	"encoding/json"
	"image"
	"image/color"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/colors"

	"github.com/chartkit/chartkit/plot"
	"github.com/chartkit/chartkit/shapes"
)

// seriesStyleJSON is the persisted form of [SeriesStyle]. Fill is
// stored as a flat color and the text style is not persisted.
type seriesStyleJSON struct {
	Line    plot.LineStyle    `json:"line"`
	Fill    *color.RGBA       `json:"fill"`
	Outline plot.LineStyle    `json:"outline"`
	Visible plot.DefaultOffOn `json:"visible"`
	Labels  plot.DefaultOffOn `json:"labels"`
}

func (ss SeriesStyle) MarshalJSON() ([]byte, error) {
	sj := seriesStyleJSON{
		Line:    ss.Line,
		Fill:    flatColor(ss.Fill),
		Outline: ss.Outline,
		Visible: ss.Visible,
		Labels:  ss.Labels,
	}
	return json.Marshal(sj)
}

func (ss *SeriesStyle) UnmarshalJSON(b []byte) error {
	var sj seriesStyleJSON
	if err := json.Unmarshal(b, &sj); err != nil {
		return err
	}
	ss.Line = sj.Line
	ss.Outline = sj.Outline
	ss.Visible = sj.Visible
	ss.Labels = sj.Labels
	ss.Fill = nil
	if sj.Fill != nil {
		ss.Fill = colors.Uniform(*sj.Fill)
	}
	ss.Text.Defaults()
	return nil
}

func flatColor(img image.Image) *color.RGBA {
	if img == nil {
		return nil
	}
	c := colors.ToUniform(img)
	return &c
}

// seriesPathJSON is the persisted form of [SeriesPath]. The legend
// line glyph uses the type-tagged shape encoding.
type seriesPathJSON struct {
	Styles        []SeriesStyle   `json:"styles,omitempty"`
	DefaultStyle  SeriesStyle     `json:"defaultStyle"`
	SeriesVisible bool            `json:"seriesVisible"`
	SeriesLabels  bool            `json:"seriesLabels"`
	Marker        plot.PointStyle `json:"marker"`
	LegendLine    json.RawMessage `json:"legendLine"`
}

func (sp SeriesPath) MarshalJSON() ([]byte, error) {
	ll, err := shapes.Marshal(sp.legendLine)
	if err != nil {
		return nil, err
	}
	sj := seriesPathJSON{
		Styles:        sp.Styles,
		DefaultStyle:  sp.DefaultStyle,
		SeriesVisible: sp.SeriesVisible,
		SeriesLabels:  sp.SeriesLabels,
		Marker:        sp.Marker,
		LegendLine:    ll,
	}
	return json.Marshal(sj)
}

func (sp *SeriesPath) UnmarshalJSON(b []byte) error {
	sp.Defaults()
	var sj seriesPathJSON
	if err := json.Unmarshal(b, &sj); err != nil {
		return err
	}
	sp.Styles = sj.Styles
	sp.DefaultStyle = sj.DefaultStyle
	sp.SeriesVisible = sj.SeriesVisible
	sp.SeriesLabels = sj.SeriesLabels
	sp.Marker = sj.Marker
	if len(sj.LegendLine) > 0 {
		ll, err := shapes.Unmarshal(sj.LegendLine)
		if err != nil {
			return err
		}
		if ll != nil {
			sp.legendLine = ll
		}
	}
	return nil
}

// Save writes the renderer settings to a JSON file.
func (sp *SeriesPath) Save(filename string) error {
	return jsonx.Save(sp, filename)
}

// Open reads renderer settings from a JSON file.
func (sp *SeriesPath) Open(filename string) error {
	return jsonx.Open(sp, filename)
}
