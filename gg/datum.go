// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import "math"

// A Datum is one materialized observation flowing through the
// pipeline. Numeric fields use NaN for "unset"; string fields use
// "". Stages never mutate a Datum in place: they copy (see Clone)
// and build new slices, so already-computed stages can be reused
// safely.
type Datum struct {
	// Positional aesthetics in data space before the scale
	// transform, in normalized [0, 1] space after it, and in
	// pixel space after the coordinate transform.
	X, Y       float64
	XEnd, YEnd float64
	XMin, XMax float64
	YMin, YMax float64

	// XCat and YCat hold the category value when the mapped
	// column is not numeric. A trained discrete scale turns them
	// into band-center positions in X and Y.
	XCat, YCat string

	// Non-positional aesthetics. Color and Fill hold the
	// data-space value (a category or a color literal) before the
	// scale transform and a CSS color after it.
	Color, Fill string
	Size, Alpha float64
	LineType    string
	Shape       string
	Label       string

	// Group is the series key. Connected geometries start a new
	// shape whenever it changes.
	Group string

	// Row is the index of the source row this datum derives
	// from, or -1 for synthetic rows produced by a statistic.
	Row int

	// Meta carries statistic-specific extra fields (binStart,
	// density, level, quantile, ...).
	Meta map[string]float64
}

// NewDatum returns a Datum with all numeric fields unset and no
// source row.
func NewDatum() Datum {
	nan := math.NaN()
	return Datum{
		X: nan, Y: nan,
		XEnd: nan, YEnd: nan,
		XMin: nan, XMax: nan,
		YMin: nan, YMax: nan,
		Size: nan, Alpha: nan,
		Row: -1,
	}
}

// Clone returns a copy of d with its own Meta map.
func (d Datum) Clone() Datum {
	if d.Meta != nil {
		m := make(map[string]float64, len(d.Meta))
		for k, v := range d.Meta {
			m[k] = v
		}
		d.Meta = m
	}
	return d
}

// SetMeta sets key in d's Meta bag, allocating it if needed.
func (d *Datum) SetMeta(key string, v float64) {
	if d.Meta == nil {
		d.Meta = make(map[string]float64)
	}
	d.Meta[key] = v
}

// GetMeta returns Meta[key], or NaN if unset.
func (d *Datum) GetMeta(key string) float64 {
	if v, ok := d.Meta[key]; ok {
		return v
	}
	return math.NaN()
}

// Set reports whether v carries a value (is not NaN).
func Set(v float64) bool {
	return !math.IsNaN(v)
}

// Finite reports whether v is a usable coordinate: set and not
// infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
