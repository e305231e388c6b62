// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/gonum/matrix/mat64"

	"github.com/Alipsa/matrix-gg/gg"
)

// Quantile fits linear quantile regressions of y on x per series, one
// line per requested quantile, by iteratively reweighted least
// squares. Each fit is sampled at N evenly spaced points; the emitted
// rows carry meta quantile and a per-quantile group suffix so line
// geometries draw each quantile separately.
//
// A series with fewer than 2 points, or with all x equal, is passed
// through unchanged.
type Quantile struct {
	// Quantiles are the quantiles to fit. If it is empty, it
	// defaults to the quartiles 0.25, 0.5, 0.75.
	Quantiles []float64

	// N is the number of points to sample each fit at. If N is 0,
	// it defaults to 100.
	N int
}

func (q Quantile) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	taus := q.Quantiles
	if len(taus) == 0 {
		taus = []float64{0.25, 0.5, 0.75}
	}
	n := q.N
	if n == 0 {
		n = 100
	}

	keys, groups := groupRows(rows)
	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		xs, ys := finiteXY(grows)
		fits := make(map[float64][2]float64)
		ok := len(xs) >= 2
		for _, tau := range taus {
			if !ok {
				break
			}
			b0, b1, fitOK := fitQuantile(xs, ys, tau)
			if !fitOK {
				ok = false
				break
			}
			fits[tau] = [2]float64{b0, b1}
		}
		if !ok {
			out = append(out, grows...)
			continue
		}

		minx, maxx := stats.Bounds(xs)
		for _, tau := range taus {
			beta := fits[tau]
			for _, x := range vec.Linspace(minx, maxx, n) {
				d := derived(&grows[0])
				d.X = x
				d.Y = beta[0] + beta[1]*x
				d.Group = fmt.Sprintf("%s-q%g", grows[0].Group, tau)
				d.SetMeta("quantile", tau)
				out = append(out, d)
			}
		}
	}
	return out, nil
}

// fitQuantile fits y = b0 + b1*x minimizing the tau-quantile check
// loss by IRLS: each pass solves a weighted least squares with
// weights tau/|r| above the line and (1-tau)/|r| below it, with the
// residual floored to keep weights bounded.
func fitQuantile(xs, ys []float64, tau float64) (b0, b1 float64, ok bool) {
	const (
		iters = 30
		rEps  = 1e-6
	)
	n := len(xs)
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	for iter := 0; iter < iters; iter++ {
		// Weighted normal equations for a 2-parameter model.
		var sw, swx, swxx, swy, swxy float64
		for i := 0; i < n; i++ {
			sw += w[i]
			swx += w[i] * xs[i]
			swxx += w[i] * xs[i] * xs[i]
			swy += w[i] * ys[i]
			swxy += w[i] * xs[i] * ys[i]
		}
		a := mat64.NewDense(2, 2, []float64{sw, swx, swx, swxx})
		b := mat64.NewDense(2, 1, []float64{swy, swxy})
		var sol mat64.Dense
		if err := sol.Solve(a, b); err != nil {
			return 0, 0, false
		}
		b0, b1 = sol.At(0, 0), sol.At(1, 0)

		for i := 0; i < n; i++ {
			r := ys[i] - (b0 + b1*xs[i])
			ar := math.Abs(r)
			if ar < rEps {
				ar = rEps
			}
			if r >= 0 {
				w[i] = tau / ar
			} else {
				w[i] = (1 - tau) / ar
			}
		}
	}
	return b0, b1, true
}
