// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"github.com/Alipsa/matrix-gg/gg"
)

// applyPosition resolves overlapping marks after the statistic runs.
// Stacking accumulates y per x position in row order, so the first
// series sits at the bottom; fill rescales each stack to 1; dodge
// only annotates each row with its series slot, leaving the actual
// offset to the scale transform where the band width is known.
func applyPosition(kind gg.PositionKind, rows []gg.Datum) []gg.Datum {
	switch kind {
	case gg.PositionStack:
		return stackRows(rows, false)
	case gg.PositionFill:
		return stackRows(rows, true)
	case gg.PositionDodge:
		return dodgeRows(rows)
	}
	return rows
}

// xKey identifies the x position a row stacks or dodges at.
func xKey(d *gg.Datum) string {
	if d.XCat != "" {
		return d.XCat
	}
	return fmt.Sprintf("%g", d.X)
}

func stackRows(rows []gg.Datum, fill bool) []gg.Datum {
	out := make([]gg.Datum, len(rows))
	cum := make(map[string]float64)
	for i := range rows {
		d := rows[i].Clone()
		if gg.Finite(d.Y) {
			k := xKey(&d)
			d.YMin = cum[k]
			d.YMax = cum[k] + d.Y
			d.Y = d.YMax
			cum[k] = d.YMax
		}
		out[i] = d
	}
	if fill {
		for i := range out {
			d := &out[i]
			total := cum[xKey(d)]
			if !gg.Finite(d.Y) || total == 0 {
				continue
			}
			d.YMin /= total
			d.YMax /= total
			d.Y /= total
		}
	}
	return out
}

// dodgeRows assigns each series a slot index within its band. The
// scale transform turns the slot into xmin/xmax offsets.
func dodgeRows(rows []gg.Datum) []gg.Datum {
	var order []string
	index := make(map[string]int)
	for i := range rows {
		k := seriesOf(&rows[i])
		if _, ok := index[k]; !ok {
			index[k] = len(order)
			order = append(order, k)
		}
	}
	out := make([]gg.Datum, len(rows))
	for i := range rows {
		d := rows[i].Clone()
		d.SetMeta("dodgeIndex", float64(index[seriesOf(&d)]))
		d.SetMeta("dodgeCount", float64(len(order)))
		out[i] = d
	}
	return out
}

// seriesOf mirrors the series identity the statistics and geometries
// use: group, else color, else fill.
func seriesOf(d *gg.Datum) string {
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
