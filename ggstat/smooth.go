// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/gonum/matrix/mat64"

	"github.com/Alipsa/matrix-gg/gg"
)

// Smooth fits a least-squares polynomial of y on x per series and
// samples it at N evenly spaced points, optionally with a Student-t
// confidence band for the mean response.
//
// Emitted data have x at the evaluation point and y at the fitted
// value. When a band is computed, ymin/ymax hold fit minus/plus the
// halfwidth, and the halfwidth itself is stored as meta se.
//
// Degenerate input degrades instead of failing: a series with fewer
// points than Degree+1 is passed through unchanged, and a series
// whose design matrix is singular (all x equal) is passed through
// unchanged. Zero residual variance just produces a zero-width band.
type Smooth struct {
	// Degree is the polynomial degree. If it is 0, it defaults
	// to 1 (a straight line).
	Degree int

	// Level is the confidence level of the band. If it is 0, it
	// defaults to 0.95.
	Level float64

	// SE controls whether the confidence band is computed.
	SE bool

	// N is the number of points to sample the fit at. If N is 0,
	// it defaults to 80.
	N int
}

func (s Smooth) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	if s.Degree <= 0 {
		s.Degree = 1
	}
	if s.Level == 0 {
		s.Level = 0.95
	}
	if s.N == 0 {
		s.N = 80
	}

	keys, groups := groupRows(rows)
	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		fitted, ok := s.fitGroup(grows)
		if !ok {
			// No fit possible; pass the series through
			// unmodified.
			out = append(out, grows...)
			continue
		}
		out = append(out, fitted...)
	}
	return out, nil
}

func (s Smooth) fitGroup(grows []gg.Datum) ([]gg.Datum, bool) {
	xs, ys := finiteXY(grows)
	n, p := len(xs), s.Degree+1
	if n < p {
		return nil, false
	}

	// Design matrix and normal equations.
	design := mat64.NewDense(n, p, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j < p; j++ {
			design.Set(i, j, v)
			v *= x
		}
	}
	var xtx mat64.Dense
	xtx.Mul(design.T(), design)
	var inv mat64.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, false
	}
	yv := mat64.NewDense(n, 1, ys)
	var xty, beta mat64.Dense
	xty.Mul(design.T(), yv)
	beta.Mul(&inv, &xty)

	poly := func(x float64) float64 {
		y, v := 0.0, 1.0
		for j := 0; j < p; j++ {
			y += beta.At(j, 0) * v
			v *= x
		}
		return y
	}

	// Residual variance for the band.
	sigma2, df := 0.0, float64(n-p)
	for i, x := range xs {
		r := ys[i] - poly(x)
		sigma2 += r * r
	}
	band := s.SE && df > 0
	if band {
		sigma2 /= df
	}

	tcrit := 0.0
	if band {
		tcrit = tCritical(df, s.Level)
	}

	minx, maxx := stats.Bounds(xs)
	var out []gg.Datum
	for _, x := range vec.Linspace(minx, maxx, s.N) {
		d := derived(&grows[0])
		d.X = x
		d.Y = poly(x)
		if band {
			// Leverage term x0' (X'X)^-1 x0 for the mean
			// response at x.
			x0 := mat64.NewDense(p, 1, nil)
			v := 1.0
			for j := 0; j < p; j++ {
				x0.Set(j, 0, v)
				v *= x
			}
			var tmp, lev mat64.Dense
			tmp.Mul(&inv, x0)
			lev.Mul(x0.T(), &tmp)
			half := tcrit * math.Sqrt(sigma2*lev.At(0, 0))
			d.YMin = d.Y - half
			d.YMax = d.Y + half
			d.SetMeta("se", half)
		}
		d.SetMeta("level", s.Level)
		out = append(out, d)
	}
	return out, true
}

// tCritical returns the two-sided critical value of the Student-t
// distribution with df degrees of freedom at the given confidence
// level, found by bisecting the CDF to 0.5 + level/2.
func tCritical(df, level float64) float64 {
	dist := stats.TDist{V: df}
	target := 0.5 + level/2
	lo, hi := 0.0, 1000.0
	for i := 0; i < 200 && hi-lo > 1e-10; i++ {
		mid := (lo + hi) / 2
		if dist.CDF(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
