// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"errors"
	"math"
	"testing"

	"github.com/Alipsa/matrix-gg/table"
)

func TestMappingCompile(t *testing.T) {
	tab := new(table.Builder).
		AddFloats("mpg", []float64{21, 22.8}).
		AddStrings("cyl", []string{"6", "4"}).
		MustDone()

	m := Mapping{
		"x":     Col("mpg"),
		"color": Col("cyl"),
		"size":  Const(2.5),
		"y":     Expr{Name: "mpg2", Fn: func(i int, t *table.Table) interface{} { v, _ := t.Float("mpg", i); return v * 2 }},
	}
	acc, err := m.Compile(tab)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if v := acc["x"](1); v != 22.8 {
		t.Errorf("x(1) = %v, want 22.8", v)
	}
	if v := acc["color"](0); v != "6" {
		t.Errorf("color(0) = %v, want 6", v)
	}
	if v := acc["size"](1); v != 2.5 {
		t.Errorf("size(1) = %v, want 2.5", v)
	}
	if v := acc["y"](0); v != 42.0 {
		t.Errorf("y(0) = %v, want 42", v)
	}
}

func TestMappingCompileMissingColumn(t *testing.T) {
	tab := new(table.Builder).AddFloats("x", []float64{1}).MustDone()
	_, err := Mapping{"y": Col("nope")}.Compile(tab)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Compile = %v, want *ValidationError", err)
	}
	if verr.Field != "aes.y" || verr.Value != "nope" {
		t.Errorf("error carries %q=%v, want aes.y=nope", verr.Field, verr.Value)
	}
}

func TestLayerValidate(t *testing.T) {
	tests := []struct {
		name string
		l    LayerSpec
		ok   bool
	}{
		{"point ok", LayerSpec{Geom: GeomPoint, Aes: Mapping{"x": Col("a"), "y": Col("b")}}, true},
		{"point missing y", LayerSpec{Geom: GeomPoint, Aes: Mapping{"x": Col("a")}}, false},
		{"histogram: bin provides y", LayerSpec{Geom: GeomBar, Stat: StatBin, Aes: Mapping{"x": Col("a")}}, true},
		{"smooth needs y", LayerSpec{Geom: GeomLine, Stat: StatSmooth, Aes: Mapping{"x": Col("a")}}, false},
		{"ribbon after smooth", LayerSpec{Geom: GeomRibbon, Stat: StatSmooth, Aes: Mapping{"x": Col("a"), "y": Col("b")}}, true},
		{"segment needs ends", LayerSpec{Geom: GeomSegment, Aes: Mapping{"x": Col("a"), "y": Col("b")}}, false},
		{"spoke provides ends", LayerSpec{Geom: GeomSegment, Stat: StatSpoke, Aes: Mapping{"x": Col("a"), "y": Col("b")}}, true},
	}
	for _, test := range tests {
		err := test.l.Validate()
		if (err == nil) != test.ok {
			t.Errorf("%s: Validate() = %v, want ok=%v", test.name, err, test.ok)
		}
	}
}

func TestParseKinds(t *testing.T) {
	if k, err := ParseGeom("point"); err != nil || k != GeomPoint {
		t.Errorf("ParseGeom(point) = %v, %v", k, err)
	}
	if k, err := ParseStat("bin"); err != nil || k != StatBin {
		t.Errorf("ParseStat(bin) = %v, %v", k, err)
	}
	if k, err := ParsePosition("dodge"); err != nil || k != PositionDodge {
		t.Errorf("ParsePosition(dodge) = %v, %v", k, err)
	}
	if _, err := ParseGeom("blob"); err == nil {
		t.Errorf("ParseGeom(blob) = nil error, want validation error")
	}
}

func TestDatum(t *testing.T) {
	d := NewDatum()
	if Set(d.X) || Set(d.Size) || d.Row != -1 {
		t.Errorf("NewDatum() not blank: %+v", d)
	}
	d.SetMeta("density", 0.25)
	c := d.Clone()
	c.SetMeta("density", 1)
	if d.GetMeta("density") != 0.25 {
		t.Errorf("Clone shares Meta: %v", d.GetMeta("density"))
	}
	if !math.IsNaN(d.GetMeta("missing")) {
		t.Errorf("GetMeta(missing) = %v, want NaN", d.GetMeta("missing"))
	}
}

func TestParams(t *testing.T) {
	p := Params{"bins": 10, "method": "lm", "se": false, "level": "0.9", "taus": []interface{}{0.25, 0.75}}
	if v := p.Int("bins", 30); v != 10 {
		t.Errorf("Int(bins) = %v, want 10", v)
	}
	if v := p.Int("nope", 30); v != 30 {
		t.Errorf("Int(nope) = %v, want default 30", v)
	}
	if v := p.String("method", "loess"); v != "lm" {
		t.Errorf("String(method) = %v, want lm", v)
	}
	if v := p.Bool("se", true); v {
		t.Errorf("Bool(se) = true, want false")
	}
	if v := p.Float("level", 0.95); v != 0.9 {
		t.Errorf("Float(level) = %v, want 0.9 (string coercion)", v)
	}
	if v := p.Floats("taus", nil); len(v) != 2 || v[0] != 0.25 || v[1] != 0.75 {
		t.Errorf("Floats(taus) = %v, want [0.25 0.75]", v)
	}
}

func TestRenderContextIDs(t *testing.T) {
	c := NewRenderContext(DefaultStyle())
	if id := c.ElementID("point"); id != "layer-0-point-0" {
		t.Errorf("first id = %q, want layer-0-point-0", id)
	}
	if id := c.ElementID("point"); id != "layer-0-point-1" {
		t.Errorf("second id = %q, want layer-0-point-1", id)
	}
	c.Layer = 2
	if id := c.ElementID("point"); id != "layer-2-point-0" {
		t.Errorf("new layer id = %q, want layer-2-point-0", id)
	}

	c.Faceted = true
	c.PanelRow, c.PanelCol = 1, 3
	if id := c.ElementID("bar"); id != "layer-2-bar-0-panel-1-3" {
		t.Errorf("faceted id = %q, want layer-2-bar-0-panel-1-3", id)
	}

	c.Style.IDPrefix = "p1-"
	if id := c.ElementID("bar"); id != "p1-layer-2-bar-1-panel-1-3" {
		t.Errorf("prefixed id = %q, want p1-layer-2-bar-1-panel-1-3", id)
	}
}

func TestRenderContextDisabled(t *testing.T) {
	c := NewRenderContext(StyleConfig{})
	if id := c.ElementID("point"); id != "" {
		t.Errorf("disabled id = %q, want \"\"", id)
	}
	if cl := c.Class("point"); cl != "" {
		t.Errorf("disabled class = %q, want \"\"", cl)
	}
	// Indices advance even with ids off, so turning styling on
	// later does not renumber elements.
	if n := c.NextIndex("point"); n != 1 {
		t.Errorf("NextIndex = %d, want 1", n)
	}
}
