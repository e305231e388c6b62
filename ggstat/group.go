// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"math"

	"github.com/Alipsa/matrix-gg/gg"
)

func nan() float64 { return math.NaN() }

// seriesKey returns the series a datum belongs to: group, else
// color, else fill; first non-empty wins. Statistics that fit per
// series and connected geometries both use this rule, so a color
// change starts a new fit and a new polyline.
func seriesKey(d *gg.Datum) string {
	switch {
	case d.Group != "":
		return d.Group
	case d.Color != "":
		return d.Color
	case d.Fill != "":
		return d.Fill
	}
	return ""
}

// groupRows splits rows into series in first-seen order.
func groupRows(rows []gg.Datum) (keys []string, groups map[string][]gg.Datum) {
	groups = make(map[string][]gg.Datum)
	for _, d := range rows {
		k := seriesKey(&d)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], d)
	}
	return keys, groups
}

// xCatKey groups rows by their categorical x value, falling back to
// the numeric x rendered through the series key when x is not
// categorical. Used by per-category statistics (ydensity, boxplot).
func xCatKey(d *gg.Datum) string {
	if d.XCat != "" {
		return d.XCat
	}
	return seriesKey(d)
}

// groupByXCat splits rows per categorical x in first-seen order.
func groupByXCat(rows []gg.Datum) (keys []string, groups map[string][]gg.Datum) {
	groups = make(map[string][]gg.Datum)
	for _, d := range rows {
		k := xCatKey(&d)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], d)
	}
	return keys, groups
}

// finiteX collects the finite x values of rows, dropping rows whose
// x is unset or not numeric.
func finiteX(rows []gg.Datum) []float64 {
	out := make([]float64, 0, len(rows))
	for i := range rows {
		if gg.Finite(rows[i].X) {
			out = append(out, rows[i].X)
		}
	}
	return out
}

// finiteY collects the finite y values of rows.
func finiteY(rows []gg.Datum) []float64 {
	out := make([]float64, 0, len(rows))
	for i := range rows {
		if gg.Finite(rows[i].Y) {
			out = append(out, rows[i].Y)
		}
	}
	return out
}

// finiteXY collects rows where both x and y are finite.
func finiteXY(rows []gg.Datum) (xs, ys []float64) {
	for i := range rows {
		if gg.Finite(rows[i].X) && gg.Finite(rows[i].Y) {
			xs = append(xs, rows[i].X)
			ys = append(ys, rows[i].Y)
		}
	}
	return xs, ys
}

// derived returns a synthetic datum inheriting the series identity
// (group, color, fill) of template.
func derived(template *gg.Datum) gg.Datum {
	d := gg.NewDatum()
	d.Group = template.Group
	d.Color = template.Color
	d.Fill = template.Fill
	return d
}
