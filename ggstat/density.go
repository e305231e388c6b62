// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	"github.com/Alipsa/matrix-gg/gg"
)

// Density estimates the probability density of x per series using
// kernel density estimation. The sampling domain is computed from
// all series combined (widened by three bandwidths on each side) so
// grouped densities can be compared and stacked.
//
// Emitted data have x at the evaluation point and y at the density
// estimate, which is also stored as meta density.
type Density struct {
	// N is the number of points to sample the estimate at. If N
	// is 0, it defaults to 200.
	N int

	// Bandwidth is the kernel bandwidth. If it is 0, Scott's
	// rule computes one per series.
	Bandwidth float64

	// Adjust scales the (computed or given) bandwidth, as in
	// ggplot. If it is 0, it defaults to 1.
	Adjust float64
}

func (s Density) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	if s.N == 0 {
		s.N = 200
	}
	if s.Adjust == 0 {
		s.Adjust = 1
	}
	const widen = 3

	keys, groups := groupRows(rows)

	// Combined sampling bounds across series.
	min, max := nan(), nan()
	bws := make(map[string]float64)
	for _, key := range keys {
		xs := finiteX(groups[key])
		if len(xs) == 0 {
			continue
		}
		sample := stats.Sample{Xs: xs}
		bw := s.Bandwidth
		if bw == 0 {
			bw = stats.BandwidthScott(sample)
		}
		bw *= s.Adjust
		bws[key] = bw
		smin, smax := stats.Bounds(xs)
		smin, smax = smin-widen*bw, smax+widen*bw
		if smin < min || math.IsNaN(min) {
			min = smin
		}
		if smax > max || math.IsNaN(max) {
			max = smax
		}
	}
	if math.IsNaN(min) {
		return nil, nil
	}

	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		xs := finiteX(grows)
		if len(xs) == 0 {
			continue
		}
		kde := stats.KDE{
			Sample:    stats.Sample{Xs: xs},
			Bandwidth: bws[key],
		}
		for _, x := range vec.Linspace(min, max, s.N) {
			d := derived(&grows[0])
			d.X = x
			d.Y = kde.PDF(x)
			d.SetMeta("density", d.Y)
			d.SetMeta("n", float64(len(xs)))
			out = append(out, d)
		}
	}
	return out, nil
}

// YDensity estimates the density of y within each x category, for
// violin-style layers. Each category's estimate is sampled over that
// category's own y range and carries both the raw density and the
// density scaled to a maximum of 1 (meta scaled), which violin
// widths use.
type YDensity struct {
	// N is the number of points to sample the estimate at per
	// category. If N is 0, it defaults to 100.
	N int

	// Bandwidth is the kernel bandwidth. If it is 0, Scott's
	// rule computes one per category.
	Bandwidth float64
}

func (s YDensity) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	if s.N == 0 {
		s.N = 100
	}
	const widen = 3

	keys, groups := groupByXCat(rows)
	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		ys := finiteY(grows)
		if len(ys) == 0 {
			continue
		}
		sample := stats.Sample{Xs: ys}
		bw := s.Bandwidth
		if bw == 0 {
			bw = stats.BandwidthScott(sample)
		}
		kde := stats.KDE{Sample: sample, Bandwidth: bw}

		min, max := stats.Bounds(ys)
		evals := vec.Linspace(min-widen*bw, max+widen*bw, s.N)
		dens := vec.Map(kde.PDF, evals)
		peak := 0.0
		for _, v := range dens {
			if v > peak {
				peak = v
			}
		}

		for i, y := range evals {
			d := derived(&grows[0])
			d.XCat = grows[0].XCat
			d.X = grows[0].X
			d.Y = y
			d.SetMeta("density", dens[i])
			if peak > 0 {
				d.SetMeta("scaled", dens[i]/peak)
			}
			out = append(out, d)
		}
	}
	return out, nil
}
