// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggscale

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/Alipsa/matrix-gg/gg"
)

// A Scale is a trained per-aesthetic mapping from data-space values
// to normalized [0, 1] drawing-space values. A scale is either
// continuous (Min/Max domain in transformed space) or discrete
// (ordered category levels); training decides which on first use.
//
// Once trained, a Scale is read-only and safe to share between
// concurrent renders.
type Scale struct {
	// Aes is the aesthetic this scale serves ("x", "y", "color",
	// ...).
	Aes string

	// Trans is the transform applied to continuous values before
	// normalization. Nil means identity.
	Trans Transform

	// Min and Max are the trained continuous domain, in
	// transformed space. Both are NaN until numeric data is
	// trained.
	Min, Max float64

	// Levels are the trained discrete categories in
	// first-encounter order. Source data is read in row order, so
	// this preserves the reading order of the data; categories
	// are deliberately not sorted.
	Levels []string

	// ExpandMult and ExpandAdd expand the continuous domain
	// symmetrically: each side grows by span*ExpandMult +
	// ExpandAdd. For discrete scales ExpandAdd is the padding on
	// each side in units of one band.
	ExpandMult, ExpandAdd float64

	index map[string]int
}

// New returns an untrained scale for aes with the default expansion
// for positional scales (5% multiplicative for continuous data, 0.6
// of a band for discrete data, applied at normalization).
func New(aes string) *Scale {
	return &Scale{
		Aes:        aes,
		Trans:      Identity,
		Min:        math.NaN(),
		Max:        math.NaN(),
		ExpandMult: 0.05,
		ExpandAdd:  0,
	}
}

// Discrete reports whether the scale trained on categorical data.
func (s *Scale) Discrete() bool {
	return len(s.Levels) > 0
}

// TrainFloats extends the continuous domain to cover vs. Values are
// transformed first; NaN, infinite, and out-of-domain values are
// skipped rather than corrupting the domain.
func (s *Scale) TrainFloats(vs ...float64) {
	for _, v := range vs {
		t, ok := s.Trans.Apply(v)
		if !ok || math.IsNaN(t) || math.IsInf(t, 0) {
			continue
		}
		if math.IsNaN(s.Min) || t < s.Min {
			s.Min = t
		}
		if math.IsNaN(s.Max) || t > s.Max {
			s.Max = t
		}
	}
}

// Include is TrainFloats for a single bound the caller wants covered
// (for example, forcing a bar chart's baseline of 0 into the
// domain).
func (s *Scale) Include(v float64) {
	s.TrainFloats(v)
}

// TrainCats extends the discrete domain with any categories in vs
// not yet seen, preserving first-encounter order. Empty strings are
// skipped.
func (s *Scale) TrainCats(vs ...string) {
	for _, v := range vs {
		if v == "" {
			continue
		}
		if s.index == nil {
			s.index = make(map[string]int)
			// Discrete scales default to band padding rather
			// than proportional expansion.
			if s.ExpandMult == 0.05 && s.ExpandAdd == 0 {
				s.ExpandMult, s.ExpandAdd = 0, 0.6
			}
		}
		if _, ok := s.index[v]; !ok {
			s.index[v] = len(s.Levels)
			s.Levels = append(s.Levels, v)
		}
	}
}

// domain returns the expanded continuous domain in transformed
// space.
func (s *Scale) domain() (lo, hi float64) {
	lo, hi = s.Min, s.Max
	if math.IsNaN(lo) {
		// Untrained; pick a harmless default.
		return -1, 1
	}
	pad := (hi-lo)*s.ExpandMult + s.ExpandAdd
	return lo - pad, hi + pad
}

// Norm maps a continuous data-space value to [0, 1]. Out-of-domain
// values for the transform yield NaN; callers drop those rows.
// Values beyond the trained domain extrapolate outside [0, 1]
// rather than clamping, so coordinate clipping stays a coordinate
// concern.
func (s *Scale) Norm(v float64) float64 {
	t, ok := s.Trans.Apply(v)
	if !ok {
		return math.NaN()
	}
	lo, hi := s.domain()
	if hi == lo {
		return 0.5
	}
	return (t - lo) / (hi - lo)
}

// Invert maps a normalized [0, 1] value back to data space. For all
// v accepted by the transform, Invert(Norm(v)) == v up to floating
// point error.
func (s *Scale) Invert(norm float64) float64 {
	lo, hi := s.domain()
	return s.Trans.Invert(lo + norm*(hi-lo))
}

// NormCat maps a category to the center of its band in [0, 1]. ok
// is false for categories the scale never trained on.
func (s *Scale) NormCat(c string) (float64, bool) {
	i, ok := s.index[c]
	if !ok {
		return math.NaN(), false
	}
	n := float64(len(s.Levels))
	return (float64(i) + 0.5 + s.ExpandAdd) / (n + 2*s.ExpandAdd), true
}

// LevelIndex returns the position of category c in the trained
// order, or -1.
func (s *Scale) LevelIndex(c string) int {
	if i, ok := s.index[c]; ok {
		return i
	}
	return -1
}

// BandWidth returns the normalized width of one discrete band
// (before any within-band spacing a geometry applies).
func (s *Scale) BandWidth() float64 {
	n := float64(len(s.Levels))
	if n == 0 {
		return 0
	}
	return 1 / (n + 2*s.ExpandAdd)
}

// Ticks returns up to max tick positions in data space together
// with their normalized positions and labels. For discrete scales it
// returns one tick per level; for continuous scales it picks round
// values in transformed space, so a log10 axis ticks at powers of
// ten.
func (s *Scale) Ticks(max int) (values []float64, norms []float64, labels []string) {
	if s.Discrete() {
		for _, l := range s.Levels {
			n, _ := s.NormCat(l)
			values = append(values, math.NaN())
			norms = append(norms, n)
			labels = append(labels, l)
		}
		return values, norms, labels
	}
	if math.IsNaN(s.Min) {
		return nil, nil, nil
	}
	lin := scale.Linear{Min: s.Min, Max: s.Max}
	major, _ := lin.Ticks(scale.TickOptions{Max: max})
	lo, hi := s.domain()
	for _, t := range major {
		v := s.Trans.Invert(t)
		values = append(values, v)
		if hi == lo {
			norms = append(norms, 0.5)
		} else {
			norms = append(norms, (t-lo)/(hi-lo))
		}
		labels = append(labels, fmt.Sprintf("%.6g", v))
	}
	return values, norms, labels
}

// TrainLayers trains one scale per positional aesthetic across all
// layers' data, so that layers share a common domain. The returned
// map has entries for "x" and "y" always, and for any aesthetic in
// aesthetics that occurs in the data.
func TrainLayers(layers [][]gg.Datum, xTrans, yTrans Transform) map[string]*Scale {
	x, y := New("x"), New("y")
	if xTrans != nil {
		x.Trans = xTrans
	}
	if yTrans != nil {
		y.Trans = yTrans
	}
	for _, rows := range layers {
		for i := range rows {
			d := &rows[i]
			if d.XCat != "" {
				x.TrainCats(d.XCat)
			} else {
				x.TrainFloats(d.X, d.XEnd, d.XMin, d.XMax)
			}
			if d.YCat != "" {
				y.TrainCats(d.YCat)
			} else {
				y.TrainFloats(d.Y, d.YEnd, d.YMin, d.YMax)
			}
		}
	}
	return map[string]*Scale{"x": x, "y": y}
}
