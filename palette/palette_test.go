// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"testing"
)

func TestGradientEndpoints(t *testing.T) {
	g := RGBGradient{Colors: []color.RGBA{
		{0, 0, 0, 255},
		{100, 100, 100, 255},
		{200, 200, 200, 255},
	}}
	if c := g.Map(0); c != g.Colors[0] {
		t.Errorf("Map(0) = %v, want first anchor %v", c, g.Colors[0])
	}
	if c := g.Map(1); c != g.Colors[2] {
		t.Errorf("Map(1) = %v, want last anchor %v", c, g.Colors[2])
	}
	if c := g.Map(-5); c != g.Colors[0] {
		t.Errorf("Map(-5) = %v, want clamp to first anchor", c)
	}
	if c := g.Map(5); c != g.Colors[2] {
		t.Errorf("Map(5) = %v, want clamp to last anchor", c)
	}
}

func TestGradientMidpoint(t *testing.T) {
	g := RGBGradient{Colors: []color.RGBA{
		{0, 0, 0, 255},
		{200, 100, 50, 255},
	}}
	c := g.Map(0.5)
	want := color.RGBA{100, 50, 25, 255}
	if c != want {
		t.Errorf("Map(0.5) = %v, want %v", c, want)
	}
}

func TestHexAlpha(t *testing.T) {
	c := color.RGBA{0x12, 0xab, 0xef, 0xff}
	if got := Hex(c); got != "#12abef" {
		t.Errorf("Hex = %q, want %q", got, "#12abef")
	}
	if got := WithAlpha("#12abef", 1); got != "#12abef" {
		t.Errorf("WithAlpha(1) = %q, want unchanged", got)
	}
	if got := WithAlpha("#12abef", 0.5); got != "#12abef80" {
		t.Errorf("WithAlpha(0.5) = %q, want %q", got, "#12abef80")
	}
	if got := WithAlpha("#12abef", 0); got != "#12abef00" {
		t.Errorf("WithAlpha(0) = %q, want %q", got, "#12abef00")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 255}, true},
		{"red", color.RGBA{255, 0, 0, 255}, true},
		{"SteelBlue", color.RGBA{0x46, 0x82, 0xb4, 255}, true},
		{"#12", color.RGBA{}, false},
		{"notacolor", color.RGBA{}, false},
	}
	for _, test := range tests {
		got, ok := Parse(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("Parse(%q) = %v, %v, want %v, %v", test.in, got, ok, test.want, test.ok)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "viridis", "A", "magma", "inferno", "plasma", "cividis"} {
		if _, ok := ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("jet"); ok {
		t.Errorf("ByName(jet) found; want unknown")
	}
}

func TestBrewer(t *testing.T) {
	set1, ok := Brewer("Set1")
	if !ok || len(set1) != 9 {
		t.Errorf("Brewer(Set1) = %d colors, %v; want 9, true", len(set1), ok)
	}
	if _, ok := Brewer("NopeSet"); ok {
		t.Errorf("Brewer(NopeSet) found; want unknown")
	}
}
