// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggscale

import (
	"math"
	"reflect"
	"testing"
)

func TestTransformRoundTrip(t *testing.T) {
	// invert(apply(v)) == v for every registered transform,
	// wherever apply is defined.
	values := []float64{0.001, 0.5, 1, 2, 10, 12345.678}
	for id := range transforms {
		trans, err := TransformByID(id)
		if err != nil {
			t.Fatalf("TransformByID(%q): %v", id, err)
		}
		for _, v := range values {
			got, ok := trans.Apply(v)
			if !ok {
				continue
			}
			back := trans.Invert(got)
			if math.Abs(back-v) > 1e-9*math.Abs(v) {
				t.Errorf("%s: Invert(Apply(%g)) = %g", id, v, back)
			}
		}
	}
}

func TestLog10Domain(t *testing.T) {
	trans, _ := TransformByID("log10")
	if _, ok := trans.Apply(0); ok {
		t.Errorf("log10(0) ok, want domain failure")
	}
	if _, ok := trans.Apply(-3); ok {
		t.Errorf("log10(-3) ok, want domain failure")
	}
	if v, ok := trans.Apply(100); !ok || v != 2 {
		t.Errorf("log10(100) = %v, %v, want 2, true", v, ok)
	}
}

func TestSqrtDomain(t *testing.T) {
	trans, _ := TransformByID("sqrt")
	if _, ok := trans.Apply(-1); ok {
		t.Errorf("sqrt(-1) ok, want domain failure")
	}
	if v, ok := trans.Apply(9); !ok || v != 3 {
		t.Errorf("sqrt(9) = %v, %v, want 3, true", v, ok)
	}
}

func TestTransformByIDUnknown(t *testing.T) {
	if _, err := TransformByID("log2"); err == nil {
		t.Errorf("TransformByID(log2) = nil error, want validation error")
	}
	if tr, err := TransformByID(""); err != nil || tr.ID() != "identity" {
		t.Errorf("TransformByID(\"\") = %v, %v, want identity", tr, err)
	}
}

func TestCustomFunc(t *testing.T) {
	double := Func{
		Name: "double",
		Fwd:  func(v float64) (float64, bool) { return 2 * v, true },
		Inv:  func(v float64) float64 { return v / 2 },
	}
	if v, _ := double.Apply(21); v != 42 {
		t.Errorf("Apply(21) = %v, want 42", v)
	}
	if v := double.Invert(42); v != 21 {
		t.Errorf("Invert(42) = %v, want 21", v)
	}
}

func TestContinuousTraining(t *testing.T) {
	s := New("x")
	s.ExpandMult, s.ExpandAdd = 0, 0
	s.TrainFloats(5, 1, math.NaN(), 9, math.Inf(1))
	if s.Min != 1 || s.Max != 9 {
		t.Errorf("domain = [%g, %g], want [1, 9]", s.Min, s.Max)
	}
	if n := s.Norm(5); n != 0.5 {
		t.Errorf("Norm(5) = %v, want 0.5", n)
	}
	if v := s.Invert(0.5); v != 5 {
		t.Errorf("Invert(0.5) = %v, want 5", v)
	}
}

func TestContinuousExpansion(t *testing.T) {
	s := New("x")
	s.ExpandMult, s.ExpandAdd = 0.05, 0
	s.TrainFloats(0, 10)
	// Expanded domain is [-0.5, 10.5].
	if n := s.Norm(-0.5); math.Abs(n) > 1e-12 {
		t.Errorf("Norm(-0.5) = %v, want 0", n)
	}
	if n := s.Norm(10.5); math.Abs(n-1) > 1e-12 {
		t.Errorf("Norm(10.5) = %v, want 1", n)
	}
}

func TestLogScaleNorm(t *testing.T) {
	s := New("y")
	s.ExpandMult, s.ExpandAdd = 0, 0
	s.Trans, _ = TransformByID("log10")
	s.TrainFloats(1, 100, -5) // -5 is out of domain and ignored
	if s.Min != 0 || s.Max != 2 {
		t.Errorf("domain = [%g, %g], want [0, 2]", s.Min, s.Max)
	}
	if n := s.Norm(10); n != 0.5 {
		t.Errorf("Norm(10) = %v, want 0.5", n)
	}
	if !math.IsNaN(s.Norm(-1)) {
		t.Errorf("Norm(-1) = %v, want NaN", s.Norm(-1))
	}
	if v := s.Invert(0.5); math.Abs(v-10) > 1e-9 {
		t.Errorf("Invert(0.5) = %v, want 10", v)
	}
}

func TestDiscreteFirstEncounterOrder(t *testing.T) {
	s := New("x")
	s.TrainCats("b", "a", "c", "a")
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(s.Levels, want) {
		t.Errorf("Levels = %v, want %v", s.Levels, want)
	}
}

func TestDiscreteBandCenters(t *testing.T) {
	s := New("x")
	s.ExpandAdd = 0 // no padding: centers at (i+0.5)/n
	s.TrainCats("a", "b")
	s.ExpandAdd = 0
	if n, ok := s.NormCat("a"); !ok || n != 0.25 {
		t.Errorf("NormCat(a) = %v, %v, want 0.25", n, ok)
	}
	if n, ok := s.NormCat("b"); !ok || n != 0.75 {
		t.Errorf("NormCat(b) = %v, %v, want 0.75", n, ok)
	}
	if _, ok := s.NormCat("z"); ok {
		t.Errorf("NormCat(z) ok, want untrained category to fail")
	}
	if w := s.BandWidth(); w != 0.5 {
		t.Errorf("BandWidth = %v, want 0.5", w)
	}
}

func TestReverseScale(t *testing.T) {
	s := New("x")
	s.ExpandMult = 0
	s.Trans, _ = TransformByID("reverse")
	s.TrainFloats(0, 10)
	if n := s.Norm(0); n != 1 {
		t.Errorf("Norm(0) = %v, want 1 under reverse", n)
	}
	if n := s.Norm(10); n != 0 {
		t.Errorf("Norm(10) = %v, want 0 under reverse", n)
	}
}

func TestColorScaleDiscrete(t *testing.T) {
	c, err := NewColorScale("color", "", "")
	if err != nil {
		t.Fatalf("NewColorScale: %v", err)
	}
	c.Train("setosa", 0, false)
	c.Train("versicolor", 0, false)
	c.Train("setosa", 0, false)

	got1, ok1 := c.Map("setosa", 0, false)
	got2, ok2 := c.Map("versicolor", 0, false)
	if !ok1 || !ok2 {
		t.Fatalf("Map failed: %v %v", ok1, ok2)
	}
	// Set1 order: first category red, second blue.
	if got1 != "#e41a1c" {
		t.Errorf("first category = %q, want #e41a1c", got1)
	}
	if got2 != "#377eb8" {
		t.Errorf("second category = %q, want #377eb8", got2)
	}
}

func TestColorScaleLiteralPassThrough(t *testing.T) {
	c, err := NewColorScale("fill", "", "")
	if err != nil {
		t.Fatalf("NewColorScale: %v", err)
	}
	c.Train("red", 0, false) // literal: must not become a category
	if len(c.Domain.Levels) != 0 {
		t.Errorf("literal trained a category: %v", c.Domain.Levels)
	}
	got, ok := c.Map("red", 0, false)
	if !ok || got != "#ff0000" {
		t.Errorf("Map(red) = %q, %v, want #ff0000", got, ok)
	}
}

func TestColorScaleContinuous(t *testing.T) {
	c, err := NewColorScale("color", "", "viridis")
	if err != nil {
		t.Fatalf("NewColorScale: %v", err)
	}
	c.Domain.ExpandMult = 0
	c.Train("", 0, true)
	c.Train("", 10, true)

	lo, ok := c.Map("", 0, true)
	hi, ok2 := c.Map("", 10, true)
	if !ok || !ok2 {
		t.Fatalf("Map failed")
	}
	if lo != "#440154" {
		t.Errorf("low end = %q, want viridis start #440154", lo)
	}
	if hi != "#fde725" {
		t.Errorf("high end = %q, want viridis end #fde725", hi)
	}

	// Direction -1 flips the ends.
	c.Direction = -1
	flipped, _ := c.Map("", 0, true)
	if flipped != "#fde725" {
		t.Errorf("flipped low end = %q, want #fde725", flipped)
	}
}

func TestColorScaleAlphaSuffix(t *testing.T) {
	c, err := NewColorScale("fill", "", "")
	if err != nil {
		t.Fatalf("NewColorScale: %v", err)
	}
	c.Alpha = 0.5
	got, ok := c.Map("black", 0, false)
	if !ok || got != "#00000080" {
		t.Errorf("Map(black) with alpha = %q, %v, want #00000080", got, ok)
	}
}

func TestContinuousTicks(t *testing.T) {
	s := New("x")
	s.ExpandMult = 0
	s.TrainFloats(0, 10)
	values, norms, labels := s.Ticks(6)
	if len(values) == 0 || len(values) != len(norms) || len(values) != len(labels) {
		t.Fatalf("ticks: %d values, %d norms, %d labels", len(values), len(norms), len(labels))
	}
	// Round values inside the domain, at their normalized spots.
	for i, v := range values {
		if v < 0 || v > 10 {
			t.Errorf("tick %g outside [0, 10]", v)
		}
		if want := v / 10; math.Abs(norms[i]-want) > 1e-9 {
			t.Errorf("tick %g at norm %g, want %g", v, norms[i], want)
		}
	}
	if labels[0] != "0" {
		t.Errorf("first label %q, want 0", labels[0])
	}
}

func TestLogScaleTicks(t *testing.T) {
	s := New("y")
	s.ExpandMult = 0
	tr, err := TransformByID("log10")
	if err != nil {
		t.Fatal(err)
	}
	s.Trans = tr
	s.TrainFloats(1, 1000)
	values, _, _ := s.Ticks(5)
	if len(values) == 0 {
		t.Fatal("no ticks")
	}
	// Ticks land on powers of ten in data space.
	for _, v := range values {
		l := math.Log10(v)
		if math.Abs(l-math.Round(l)) > 1e-9 {
			t.Errorf("log tick %g is not a power of ten", v)
		}
	}
}

func TestDiscreteTicks(t *testing.T) {
	s := New("x")
	s.TrainCats("b", "a", "c")
	_, norms, labels := s.Ticks(10)
	if len(labels) != 3 || labels[0] != "b" || labels[1] != "a" || labels[2] != "c" {
		t.Fatalf("labels = %v, want first-encounter order [b a c]", labels)
	}
	for i := 1; i < len(norms); i++ {
		if norms[i] <= norms[i-1] {
			t.Errorf("norms not increasing: %v", norms)
		}
	}
}
