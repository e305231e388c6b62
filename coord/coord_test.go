// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"math"
	"testing"

	"github.com/Alipsa/matrix-gg/gg"
)

var panel = Panel{X: 0, Y: 0, W: 200, H: 100}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCartesian(t *testing.T) {
	c := gg.DefaultCoord()
	for _, tc := range []struct{ xn, yn, px, py float64 }{
		{0, 0, 0, 100},
		{1, 1, 200, 0},
		{0.5, 0.5, 100, 50},
	} {
		px, py := Map(&c, tc.xn, tc.yn, panel)
		if !approx(px, tc.px) || !approx(py, tc.py) {
			t.Errorf("Map(%g, %g) = (%g, %g), want (%g, %g)", tc.xn, tc.yn, px, py, tc.px, tc.py)
		}
	}
}

func TestCartesianClip(t *testing.T) {
	c := gg.DefaultCoord()
	c.Clip = true
	px, py := Map(&c, -0.5, 1.5, panel)
	if px != 0 || py != 0 {
		t.Errorf("clipped Map = (%g, %g), want (0, 0)", px, py)
	}
}

func TestPolarTwelveOClock(t *testing.T) {
	c := gg.CoordSpec{Kind: gg.CoordPolar, Theta: "x", Direction: 1}
	if err := c.Normalize(); err != nil {
		t.Fatal(err)
	}
	cx, cy := panel.Center()
	maxR := panel.MaxRadius()
	// Angle zero points at 12 o'clock for any radius.
	for _, rn := range []float64{0.25, 0.5, 1} {
		px, py := Map(&c, 0, rn, panel)
		if !approx(px, cx) {
			t.Errorf("theta=0 r=%g maps to x=%g, want center %g", rn, px, cx)
		}
		if py >= cy {
			t.Errorf("theta=0 r=%g maps to y=%g, want above center %g", rn, py, cy)
		}
	}
	px, py := Map(&c, 0, 1, panel)
	if !approx(px, cx) || !approx(py, cy-maxR) {
		t.Errorf("theta=0 r=1 = (%g, %g), want (%g, %g)", px, py, cx, cy-maxR)
	}
}

func TestPolarQuarterTurn(t *testing.T) {
	c := gg.CoordSpec{Kind: gg.CoordPolar, Theta: "x", Direction: 1}
	if err := c.Normalize(); err != nil {
		t.Fatal(err)
	}
	cx, cy := panel.Center()
	maxR := panel.MaxRadius()
	// A quarter of the sweep lands at 3 o'clock; reversing the
	// direction lands at 9 o'clock.
	px, py := Map(&c, 0.25, 1, panel)
	if !approx(px, cx+maxR) || !approx(py, cy) {
		t.Errorf("quarter turn = (%g, %g), want (%g, %g)", px, py, cx+maxR, cy)
	}
	c.Direction = -1
	px, py = Map(&c, 0.25, 1, panel)
	if !approx(px, cx-maxR) || !approx(py, cy) {
		t.Errorf("reversed quarter turn = (%g, %g), want (%g, %g)", px, py, cx-maxR, cy)
	}
}

func TestPolarThetaY(t *testing.T) {
	c := gg.CoordSpec{Kind: gg.CoordPolar, Theta: "y", Direction: 1}
	if err := c.Normalize(); err != nil {
		t.Fatal(err)
	}
	// With theta on y, the x norm bears the radius.
	cx, cy := panel.Center()
	px, py := Map(&c, 0, 0.5, panel)
	if !approx(px, cx) || !approx(py, cy) {
		t.Errorf("zero radius = (%g, %g), want center (%g, %g)", px, py, cx, cy)
	}
}

func TestRadialSector(t *testing.T) {
	// A half-circle sector from 12 o'clock: theta=1 lands at 6
	// o'clock.
	c := gg.CoordSpec{Kind: gg.CoordRadial, Start: 0, End: math.Pi, Direction: 1, Theta: "x"}
	if err := c.Normalize(); err != nil {
		t.Fatal(err)
	}
	cx, cy := panel.Center()
	maxR := panel.MaxRadius()
	px, py := Map(&c, 1, 1, panel)
	if !approx(px, cx) || !approx(py, cy+maxR) {
		t.Errorf("sector end = (%g, %g), want (%g, %g)", px, py, cx, cy+maxR)
	}
}

func TestInnerRadius(t *testing.T) {
	c := gg.CoordSpec{Kind: gg.CoordPolar, Theta: "x", Direction: 1, InnerRadius: 0.5}
	if err := c.Normalize(); err != nil {
		t.Fatal(err)
	}
	cx, cy := panel.Center()
	maxR := panel.MaxRadius()
	// Radius zero starts at the donut hole edge, not the center.
	px, py := Map(&c, 0, 0, panel)
	if !approx(px, cx) || !approx(py, cy-maxR/2) {
		t.Errorf("hole edge = (%g, %g), want (%g, %g)", px, py, cx, cy-maxR/2)
	}
}

func TestTextAngleUpright(t *testing.T) {
	c := gg.CoordSpec{Kind: gg.CoordPolar, Theta: "x", Direction: 1}
	if err := c.Normalize(); err != nil {
		t.Fatal(err)
	}
	// Upper hemisphere keeps the raw angle.
	if a := TextAngle(&c, 0.125, 1, panel); !approx(a, 45) {
		t.Errorf("upper angle = %g, want 45", a)
	}
	// Lower hemisphere flips a half turn to stay upright.
	if a := TextAngle(&c, 0.5, 1, panel); !approx(a, 360) {
		t.Errorf("lower angle = %g, want 360", a)
	}
	cart := gg.DefaultCoord()
	if a := TextAngle(&cart, 0.5, 0.5, panel); a != 0 {
		t.Errorf("cartesian angle = %g, want 0", a)
	}
}

func TestNormalizeValidation(t *testing.T) {
	c := gg.CoordSpec{Kind: gg.CoordPolar, Theta: "z"}
	if err := c.Normalize(); err == nil {
		t.Error("theta z accepted")
	}
	c = gg.CoordSpec{Kind: gg.CoordPolar, InnerRadius: 1.5}
	if err := c.Normalize(); err == nil {
		t.Error("innerRadius 1.5 accepted")
	}
	c = gg.CoordSpec{Kind: gg.CoordPolar, Direction: 2}
	if err := c.Normalize(); err == nil {
		t.Error("direction 2 accepted")
	}
}
