// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"math"
	"sort"

	"github.com/Alipsa/matrix-gg/gg"
)

// QuantileType7 computes the p quantile of sorted using the type-7
// interpolation R and NumPy default to: h = (n-1)p + 1, linearly
// interpolated between the order statistics at floor(h) and ceil(h).
// sorted must be in ascending order and non-empty.
func QuantileType7(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1)*p + 1
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	frac := h - float64(lo)
	return sorted[lo-1] + frac*(sorted[hi-1]-sorted[lo-1])
}

// Boxplot computes the five-number summary of y per x category:
// first, second, and third quartiles (type-7), whiskers at the most
// extreme data within Coef interquartile ranges of the box, and the
// remaining points as outliers.
//
// Each summary datum carries lower, middle, and upper in its meta
// bag and the whisker ends in YMin/YMax. Outlier rows follow their
// summary with meta outlier=1, keeping their source row index.
type Boxplot struct {
	// Coef is the whisker length in units of the IQR. If it is
	// 0, it defaults to 1.5.
	Coef float64
}

func (b Boxplot) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	coef := b.Coef
	if coef <= 0 {
		coef = 1.5
	}
	keys, groups := groupByXCat(rows)
	var out []gg.Datum
	for _, key := range keys {
		grows := groups[key]
		type yrow struct {
			y   float64
			row int
		}
		var ys []float64
		var yrows []yrow
		for i := range grows {
			if gg.Finite(grows[i].Y) {
				ys = append(ys, grows[i].Y)
				yrows = append(yrows, yrow{grows[i].Y, grows[i].Row})
			}
		}
		if len(ys) == 0 {
			continue
		}
		sort.Float64s(ys)

		q1 := QuantileType7(ys, 0.25)
		q2 := QuantileType7(ys, 0.5)
		q3 := QuantileType7(ys, 0.75)
		iqr := q3 - q1
		loFence, hiFence := q1-coef*iqr, q3+coef*iqr

		// Whiskers reach the most extreme data inside the
		// fences.
		whLo, whHi := math.NaN(), math.NaN()
		for _, y := range ys {
			if y < loFence || y > hiFence {
				continue
			}
			if math.IsNaN(whLo) || y < whLo {
				whLo = y
			}
			if math.IsNaN(whHi) || y > whHi {
				whHi = y
			}
		}

		d := derived(&grows[0])
		d.XCat = grows[0].XCat
		d.X = grows[0].X
		d.YMin = whLo
		d.YMax = whHi
		d.SetMeta("lower", q1)
		d.SetMeta("middle", q2)
		d.SetMeta("upper", q3)
		d.SetMeta("n", float64(len(ys)))
		out = append(out, d)

		for _, yr := range yrows {
			if yr.y >= loFence && yr.y <= hiFence {
				continue
			}
			o := derived(&grows[0])
			o.XCat = grows[0].XCat
			o.X = grows[0].X
			o.Y = yr.y
			o.Row = yr.row
			o.SetMeta("outlier", 1)
			out = append(out, o)
		}
	}
	return out, nil
}
