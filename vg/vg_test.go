// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vg

import (
	"strings"
	"testing"
)

func TestNum(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{2.0, "2"},
		{-3.25, "-3.25"},
		{1.0 / 3, "0.333333"},
		{100000, "100000"},
	}
	for _, tt := range tests {
		if got := Num(tt.v); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestAttrOrder(t *testing.T) {
	r := &Rect{
		ID:    "e1",
		Class: "gg-bar",
		Attr:  Attrs{"stroke": "black", "fill": "red"},
	}
	got := strings.Join(r.attrs(), " ")
	want := `id="e1" class="gg-bar" fill="red" stroke="black"`
	if got != want {
		t.Errorf("attrs = %q, want %q", got, want)
	}
}

func TestWalkOrder(t *testing.T) {
	tree := (&Group{ID: "root"}).Append(
		&Circle{ID: "a"},
		(&Group{ID: "g"}).Append(&Line{ID: "b"}),
		&Text{ID: "c"},
	)
	var order []string
	Walk(tree, func(n Node) {
		switch n := n.(type) {
		case *Group:
			order = append(order, n.ID)
		case *Circle:
			order = append(order, n.ID)
		case *Line:
			order = append(order, n.ID)
		case *Text:
			order = append(order, n.ID)
		}
	})
	want := "root a g b c"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("walk order %q, want %q", got, want)
	}

	if n := Count(tree, nil); n != 5 {
		t.Errorf("Count = %d, want 5", n)
	}
	found := Find(tree, func(n Node) bool {
		l, ok := n.(*Line)
		return ok && l.ID == "b"
	})
	if found == nil {
		t.Error("Find missed the line node")
	}
}

func TestWriteSVG(t *testing.T) {
	tree := (&Group{ID: "chart"}).Append(
		&Rect{X: 0.5, Y: 1, W: 10, H: 20, Attr: Attrs{"fill": "none"}},
		&Circle{CX: 3, CY: 4, R: 2.5},
		&Text{X: 1, Y: 2, Text: "a < b & c"},
	)
	var buf strings.Builder
	if err := WriteSVG(&buf, 100, 50, tree); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`width="100"`,
		`id="chart"`,
		`<rect x="0.5" y="1" width="10" height="20" fill="none" />`,
		`r="2.5"`,
		"a &lt; b &amp; c",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSVGDeterministic(t *testing.T) {
	tree := &Rect{Attr: Attrs{"b": "2", "a": "1", "c": "3"}}
	var first string
	for i := 0; i < 10; i++ {
		var buf strings.Builder
		if err := WriteSVG(&buf, 10, 10, tree); err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			first = buf.String()
		} else if buf.String() != first {
			t.Fatal("serialization not deterministic across runs")
		}
	}
	if !strings.Contains(first, `a="1" b="2" c="3"`) {
		t.Errorf("attributes not in sorted order:\n%s", first)
	}
}
