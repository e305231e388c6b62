// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"sort"

	"github.com/Alipsa/matrix-gg/gg"
)

// ECDF computes the empirical cumulative distribution of x per
// series: the sorted x values paired with y = (i+1)/n, so the final
// point always reaches 1. Duplicated x values each get their own
// step, which a step geometry collapses visually.
type ECDF struct {
	// Pad adds a leading point at (min x, 0) so the step curve
	// starts on the axis. No trailing point is needed; the last
	// data point already reaches y = 1.
	Pad bool
}

func (e ECDF) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	keys, groups := groupRows(rows)
	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		xs := finiteX(grows)
		if len(xs) == 0 {
			continue
		}
		sort.Float64s(xs)
		n := float64(len(xs))

		if e.Pad {
			d := derived(&grows[0])
			d.X, d.Y = xs[0], 0
			out = append(out, d)
		}
		for i, x := range xs {
			d := derived(&grows[0])
			d.X = x
			d.Y = float64(i+1) / n
			d.SetMeta("n", n)
			out = append(out, d)
		}
	}
	return out, nil
}
