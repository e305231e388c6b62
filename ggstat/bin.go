// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/Alipsa/matrix-gg/gg"
)

// MaxBins caps the number of bins any binning request may produce.
// A pathological binwidth could otherwise allocate without bound;
// exceeding the cap is a fatal LimitError, never a hang.
const MaxBins = 10000

// Bin bins continuous x values into counts, for histograms.
//
// Breaks are computed once from all rows combined and counts are
// accumulated per series, so grouped histograms share bin edges and
// can be stacked.
//
// Each emitted datum has x at the bin center and y at the count, and
// carries binStart, binEnd, count, and density (count/(n*width)) in
// its meta bag.
//
// Bins are closed on the right: a value exactly on a shared edge
// belongs to the bin below it. Edge comparison uses a relative
// epsilon of 1e-9 so that values computed to land on an edge do not
// flip bins over floating point noise.
type Bin struct {
	// Bins is the requested number of bins. If both Bins and
	// Width are 0, it defaults to 30.
	Bins int

	// Width is an explicit bin width. If nonzero it takes
	// precedence over Bins.
	Width float64

	// Boundary aligns bin edges so that one edge falls on the
	// given value. NaN means no alignment.
	Boundary float64
}

const binEdgeEps = 1e-9

func (b Bin) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	all := finiteX(rows)
	if len(all) == 0 {
		return nil, nil
	}
	min, max := stats.Bounds(all)

	width := b.Width
	nbins := b.Bins
	if width <= 0 {
		if nbins <= 0 {
			nbins = 30
		}
		if max == min {
			width = 1
		} else {
			width = (max - min) / float64(nbins)
		}
	}

	// Align the origin to the requested boundary.
	origin := min
	if !math.IsNaN(b.Boundary) {
		origin = b.Boundary + math.Floor((min-b.Boundary)/width)*width
	}

	nbins = int(math.Ceil((max - origin) / width))
	if nbins < 1 {
		nbins = 1
	}
	if nbins > MaxBins {
		return nil, &gg.LimitError{
			Op:  "bin",
			Msg: fmt.Sprintf("binwidth %g over range [%g, %g] needs %d bins (max %d)", width, min, max, nbins, MaxBins),
		}
	}

	// Closed-right bin assignment.
	index := func(v float64) int {
		u := (v - origin) / width
		i := int(math.Floor(u))
		if frac := u - math.Floor(u); frac <= binEdgeEps*math.Max(1, math.Abs(u)) && i > 0 {
			i--
		}
		if i < 0 {
			i = 0
		} else if i >= nbins {
			i = nbins - 1
		}
		return i
	}

	keys, groups := groupRows(rows)
	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		counts := make([]int, nbins)
		n := 0
		for i := range grows {
			if !gg.Finite(grows[i].X) {
				continue
			}
			counts[index(grows[i].X)]++
			n++
		}
		if n == 0 {
			continue
		}
		for i, c := range counts {
			d := derived(&grows[0])
			lo := origin + float64(i)*width
			d.X = lo + width/2
			d.Y = float64(c)
			d.SetMeta("binStart", lo)
			d.SetMeta("binEnd", lo+width)
			d.SetMeta("count", float64(c))
			d.SetMeta("density", float64(c)/(float64(n)*width))
			out = append(out, d)
		}
	}
	return out, nil
}

// Count counts rows per categorical x value within each series, for
// bar charts. Categories keep first-encounter order.
type Count struct{}

func (Count) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	keys, groups := groupRows(rows)
	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		var cats []string
		counts := make(map[string]int)
		templates := make(map[string]*gg.Datum)
		for i := range grows {
			c := grows[i].XCat
			if c == "" {
				if !gg.Finite(grows[i].X) {
					continue
				}
				// Numeric x counts as its own category
				// rendered at its value.
				c = fmt.Sprintf("%g", grows[i].X)
			}
			if _, ok := counts[c]; !ok {
				cats = append(cats, c)
				templates[c] = &grows[i]
			}
			counts[c]++
		}
		for _, c := range cats {
			d := derived(templates[c])
			d.XCat = templates[c].XCat
			d.X = templates[c].X
			d.Y = float64(counts[c])
			d.SetMeta("count", float64(counts[c]))
			out = append(out, d)
		}
	}
	return out, nil
}
