// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vg defines the tree of vector-graphics nodes produced by
// the chart pipeline.
//
// The tree is a plain data structure: rendering builds it up and
// WriteSVG serializes it. Consumers that want some other output
// format (rasterization, a GUI canvas) can walk the tree themselves;
// nothing in the pipeline depends on the SVG serialization.
package vg

import (
	"fmt"
	"sort"
	"strconv"
)

// Attrs holds presentation attributes (fill, stroke, transform, data-*
// attributes and so on) for a node. Serialization emits attributes in
// sorted key order so output is stable.
type Attrs map[string]string

// A Node is one element of the graphics tree. The set of node kinds
// is closed: Group, Path, Rect, Circle, Line, and Text.
type Node interface {
	attrs() []string
}

// A Group is a container node. Identifiers and style classes for
// compound marks attach to the group, not to its children.
type Group struct {
	ID, Class string
	Attr      Attrs
	Children  []Node
}

// Append adds children to the group and returns it.
func (g *Group) Append(ns ...Node) *Group {
	g.Children = append(g.Children, ns...)
	return g
}

// A Path is a filled and/or stroked path described by SVG path data.
type Path struct {
	ID, Class string
	D         string
	Attr      Attrs
}

// A Rect is an axis-aligned rectangle.
type Rect struct {
	ID, Class  string
	X, Y, W, H float64
	Attr       Attrs
}

// A Circle is a circle centered at (CX, CY).
type Circle struct {
	ID, Class string
	CX, CY, R float64
	Attr      Attrs
}

// A Line is a single line segment.
type Line struct {
	ID, Class      string
	X1, Y1, X2, Y2 float64
	Attr           Attrs
}

// A Text is a text label anchored at (X, Y).
type Text struct {
	ID, Class string
	X, Y      float64
	Text      string
	Attr      Attrs
}

// Num formats a coordinate for path data and attributes. It uses %g
// formatting at six significant digits, which strips trailing zeros
// so output is compact and stable for snapshot comparison.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// attrStrings flattens id, class, and attrs into `key="value"`
// strings in deterministic order.
func attrStrings(id, class string, attr Attrs) []string {
	var out []string
	if id != "" {
		out = append(out, fmt.Sprintf(`id="%s"`, id))
	}
	if class != "" {
		out = append(out, fmt.Sprintf(`class="%s"`, class))
	}
	keys := make([]string, 0, len(attr))
	for k := range attr {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, fmt.Sprintf(`%s="%s"`, k, attr[k]))
	}
	return out
}

func (g *Group) attrs() []string  { return attrStrings(g.ID, g.Class, g.Attr) }
func (p *Path) attrs() []string   { return attrStrings(p.ID, p.Class, p.Attr) }
func (r *Rect) attrs() []string   { return attrStrings(r.ID, r.Class, r.Attr) }
func (c *Circle) attrs() []string { return attrStrings(c.ID, c.Class, c.Attr) }
func (l *Line) attrs() []string   { return attrStrings(l.ID, l.Class, l.Attr) }
func (t *Text) attrs() []string   { return attrStrings(t.ID, t.Class, t.Attr) }

// Walk visits n and all of its descendants in document order.
func Walk(n Node, visit func(Node)) {
	visit(n)
	if g, ok := n.(*Group); ok {
		for _, c := range g.Children {
			Walk(c, visit)
		}
	}
}

// Count returns the number of nodes in the tree rooted at n that
// satisfy pred. A nil pred counts all nodes.
func Count(n Node, pred func(Node) bool) int {
	c := 0
	Walk(n, func(n Node) {
		if pred == nil || pred(n) {
			c++
		}
	})
	return c
}

// Find returns the first node in document order for which pred
// returns true, or nil.
func Find(n Node, pred func(Node) bool) Node {
	var found Node
	Walk(n, func(n Node) {
		if found == nil && pred(n) {
			found = n
		}
	})
	return found
}
