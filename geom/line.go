// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"sort"
	"strings"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/vg"
)

// renderLine draws one polyline per series. Line geometries sort each
// series by x first; path geometries connect rows in data order. Step
// geometries move horizontally then vertically between points.
func renderLine(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group, sortX, step bool) {
	name := "line"
	if step {
		name = "step"
	} else if !sortX {
		name = "path"
	}
	for _, series := range splitSeries(rows) {
		pts := finitePoints(series)
		if len(pts) < 2 {
			continue
		}
		if sortX {
			sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		}
		d := pathData(pts, step)
		attr := dataAttrs(ctx, &series[0], strokeAttrs(&series[0], opt))
		out.Append(&vg.Path{
			ID:    ctx.ElementID(name),
			Class: ctx.Class(name),
			D:     d,
			Attr:  attr,
		})
	}
}

// finitePoints keeps the rows of a series whose x and y are both
// drawable.
func finitePoints(series []gg.Datum) []gg.Datum {
	out := make([]gg.Datum, 0, len(series))
	for i := range series {
		if gg.Finite(series[i].X) && gg.Finite(series[i].Y) {
			out = append(out, series[i])
		}
	}
	return out
}

// pathData builds SVG path data connecting pts, stepping
// horizontal-then-vertical when step is set.
func pathData(pts []gg.Datum, step bool) string {
	var b strings.Builder
	b.WriteString("M")
	b.WriteString(vg.Num(pts[0].X))
	b.WriteString(" ")
	b.WriteString(vg.Num(pts[0].Y))
	for i := 1; i < len(pts); i++ {
		if step {
			b.WriteString("L")
			b.WriteString(vg.Num(pts[i].X))
			b.WriteString(" ")
			b.WriteString(vg.Num(pts[i-1].Y))
		}
		b.WriteString("L")
		b.WriteString(vg.Num(pts[i].X))
		b.WriteString(" ")
		b.WriteString(vg.Num(pts[i].Y))
	}
	return b.String()
}
