// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import "fmt"

// StyleConfig controls the class/id metadata attached to rendered
// elements. It makes output styleable with CSS and lets snapshot
// tests address elements without depending on pixel coordinates.
type StyleConfig struct {
	// Enabled turns element metadata on. When false, no ids,
	// classes, or data attributes are emitted.
	Enabled bool

	// IDs and Classes control whether elements get an id and a
	// class attribute, respectively.
	IDs, Classes bool

	// IDPrefix is prepended to every generated id, so several
	// charts can share one document.
	IDPrefix string

	// DataAttrs adds data-* attributes carrying the element's
	// source row and group, for tooltip-style consumers.
	DataAttrs bool
}

// DefaultStyle returns the style configuration used when the caller
// supplies none: ids and classes on, no prefix, no data attributes.
func DefaultStyle() StyleConfig {
	return StyleConfig{Enabled: true, IDs: true, Classes: true}
}

// A RenderContext carries the mutable state of one render call: the
// active layer, the active facet panel, and per-layer element
// counters for id generation. It is created at the top of a render
// and discarded at the end; it must never be shared between
// concurrent renders. Everything else in the pipeline is immutable,
// so sharing compiled LayerSpecs and trained scales across renders
// is safe.
type RenderContext struct {
	// Layer is the index of the layer being rendered.
	Layer int

	// PanelRow and PanelCol locate the facet panel being
	// rendered. Both are 0 when the chart is not faceted.
	PanelRow, PanelCol int

	// Faceted records whether the chart has more than one panel;
	// element ids include the panel coordinates when it does.
	Faceted bool

	// Style is the element metadata configuration.
	Style StyleConfig

	counts map[string]int
}

// NewRenderContext returns a context for one render call.
func NewRenderContext(style StyleConfig) *RenderContext {
	return &RenderContext{Style: style, counts: make(map[string]int)}
}

// NextIndex returns the next element index for the active layer,
// panel, and geometry name. Indices are deterministic and
// monotonically increasing regardless of whether ids are enabled, so
// enabling styling never renumbers elements.
func (c *RenderContext) NextIndex(geom string) int {
	key := fmt.Sprintf("%d/%d/%d/%s", c.Layer, c.PanelRow, c.PanelCol, geom)
	n := c.counts[key]
	c.counts[key] = n + 1
	return n
}

// ElementID builds the stable identifier for the next element of
// geom: "layer-{i}-{geom}-{n}", extended with "-panel-{row}-{col}"
// when the chart is faceted, and prefixed with Style.IDPrefix. It
// returns "" when ids are disabled (the element index is still
// consumed).
func (c *RenderContext) ElementID(geom string) string {
	n := c.NextIndex(geom)
	if !c.Style.Enabled || !c.Style.IDs {
		return ""
	}
	id := fmt.Sprintf("%slayer-%d-%s-%d", c.Style.IDPrefix, c.Layer, geom, n)
	if c.Faceted {
		id += fmt.Sprintf("-panel-%d-%d", c.PanelRow, c.PanelCol)
	}
	return id
}

// Class returns the style class for elements of geom, or "" when
// classes are disabled.
func (c *RenderContext) Class(geom string) string {
	if !c.Style.Enabled || !c.Style.Classes {
		return ""
	}
	return "gg-" + geom
}
