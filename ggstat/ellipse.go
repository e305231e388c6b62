// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/Alipsa/matrix-gg/gg"
)

// Ellipse traces a normal-theory confidence ellipse per series,
// centered on the series means with axis-aligned radii of the x and y
// standard deviations scaled by the normal quantile for Level.
//
// It emits Segments+1 points (the first repeated to close the ring)
// in polygon drawing order, each with meta level. A series with fewer
// than 2 points, or with a zero standard deviation on either axis, is
// skipped.
type Ellipse struct {
	// Level is the confidence level. If it is 0, it defaults to
	// 0.95.
	Level float64

	// Segments is the number of arc segments. If it is 0, it
	// defaults to 51.
	Segments int
}

func (e Ellipse) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	if e.Level == 0 {
		e.Level = 0.95
	}
	if e.Segments == 0 {
		e.Segments = 51
	}
	mult := stats.StdNormal.InvCDF(0.5 + e.Level/2)

	keys, groups := groupRows(rows)
	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		xs, ys := finiteXY(grows)
		if len(xs) < 2 {
			continue
		}
		xsamp := stats.Sample{Xs: xs}
		ysamp := stats.Sample{Xs: ys}
		mx, my := xsamp.Mean(), ysamp.Mean()
		rx, ry := mult*xsamp.StdDev(), mult*ysamp.StdDev()
		if rx == 0 || ry == 0 {
			continue
		}
		for i := 0; i <= e.Segments; i++ {
			theta := 2 * math.Pi * float64(i) / float64(e.Segments)
			d := derived(&grows[0])
			d.X = mx + rx*math.Cos(theta)
			d.Y = my + ry*math.Sin(theta)
			d.SetMeta("level", e.Level)
			out = append(out, d)
		}
	}
	return out, nil
}
