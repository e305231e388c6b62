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

// renderArea draws one filled region per series between the series'
// y values and a lower edge: each row's ymin when set (stacked
// areas), else the option baseline.
func renderArea(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group) {
	for _, series := range splitSeries(rows) {
		pts := finitePoints(series)
		if len(pts) < 2 {
			continue
		}
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		lower := func(d *gg.Datum) float64 {
			if gg.Set(d.YMin) {
				return d.YMin
			}
			return opt.Baseline
		}
		d := bandPath(pts, func(d *gg.Datum) float64 { return d.Y }, lower)
		attr := dataAttrs(ctx, &series[0], fillAttrs(&series[0]))
		out.Append(&vg.Path{
			ID:    ctx.ElementID("area"),
			Class: ctx.Class("area"),
			D:     d,
			Attr:  attr,
		})
	}
}

// renderRibbon draws one filled band per series between each row's
// ymin and ymax, for confidence bands.
func renderRibbon(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group) {
	for _, series := range splitSeries(rows) {
		var pts []gg.Datum
		for i := range series {
			if gg.Finite(series[i].X) && gg.Finite(series[i].YMin) && gg.Finite(series[i].YMax) {
				pts = append(pts, series[i])
			}
		}
		if len(pts) < 2 {
			continue
		}
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		d := bandPath(pts,
			func(d *gg.Datum) float64 { return d.YMax },
			func(d *gg.Datum) float64 { return d.YMin })
		attr := dataAttrs(ctx, &series[0], fillAttrs(&series[0]))
		out.Append(&vg.Path{
			ID:    ctx.ElementID("ribbon"),
			Class: ctx.Class("ribbon"),
			D:     d,
			Attr:  attr,
		})
	}
}

// renderPolygon draws one closed shape per series connecting rows in
// data order, for ellipses and contour fills.
func renderPolygon(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group) {
	for _, series := range splitSeries(rows) {
		pts := finitePoints(series)
		if len(pts) < 3 {
			continue
		}
		d := pathData(pts, false) + "Z"
		attr := dataAttrs(ctx, &series[0], fillAttrs(&series[0]))
		out.Append(&vg.Path{
			ID:    ctx.ElementID("polygon"),
			Class: ctx.Class("polygon"),
			D:     d,
			Attr:  attr,
		})
	}
}

// bandPath builds a closed path tracing the upper edge of pts left to
// right and the lower edge back right to left.
func bandPath(pts []gg.Datum, upper, lower func(*gg.Datum) float64) string {
	var b strings.Builder
	for i := range pts {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString("L")
		}
		b.WriteString(vg.Num(pts[i].X))
		b.WriteString(" ")
		b.WriteString(vg.Num(upper(&pts[i])))
	}
	for i := len(pts) - 1; i >= 0; i-- {
		b.WriteString("L")
		b.WriteString(vg.Num(pts[i].X))
		b.WriteString(" ")
		b.WriteString(vg.Num(lower(&pts[i])))
	}
	b.WriteString("Z")
	return b.String()
}
