// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/vg"
)

// renderBoxplot draws one box-and-whiskers mark per summary row: the
// interquartile box between meta lower and upper, a median line at
// meta middle, whisker strokes out to ymin/ymax, and a circle per
// outlier row. The whole mark is a single group carrying the element
// metadata.
//
// Summary rows and their outliers arrive interleaved from the
// boxplot statistic; outlier rows (meta outlier=1) attach to the most
// recent summary's group.
func renderBoxplot(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group) {
	var g *vg.Group
	var stroke string
	for i := range rows {
		d := &rows[i]
		if d.GetMeta("outlier") == 1 {
			if g == nil || !gg.Finite(d.X) || !gg.Finite(d.Y) {
				continue
			}
			g.Append(&vg.Circle{
				CX: d.X, CY: d.Y, R: opt.PointRadius,
				Attr: vg.Attrs{"fill": "none", "stroke": stroke},
			})
			continue
		}

		lower, middle, upper := d.GetMeta("lower"), d.GetMeta("middle"), d.GetMeta("upper")
		if !gg.Finite(d.X) || !gg.Finite(lower) || !gg.Finite(upper) {
			g = nil
			continue
		}
		x0, x1 := d.XMin, d.XMax
		if !gg.Set(x0) || !gg.Set(x1) {
			x0, x1 = d.X-opt.BarWidth/2, d.X+opt.BarWidth/2
		}
		stroke = strokeColor(d)
		line := vg.Attrs{"stroke": stroke, "stroke-width": vg.Num(opt.LineWidth)}

		attr := dataAttrs(ctx, d, nil)
		g = &vg.Group{
			ID:    ctx.ElementID("boxplot"),
			Class: ctx.Class("boxplot"),
			Attr:  attr,
		}
		g.Append(&vg.Rect{
			X: x0, Y: math.Min(lower, upper),
			W: x1 - x0, H: math.Abs(upper - lower),
			Attr: vg.Attrs{
				"fill":         fillColor(d),
				"stroke":       stroke,
				"stroke-width": vg.Num(opt.LineWidth),
			},
		})
		if gg.Finite(middle) {
			g.Append(&vg.Line{X1: x0, Y1: middle, X2: x1, Y2: middle, Attr: line})
		}
		// Each whisker runs from the nearer box edge to its end,
		// which works whichever way the y axis points.
		cx := (x0 + x1) / 2
		top, bot := math.Min(lower, upper), math.Max(lower, upper)
		for _, w := range []float64{d.YMin, d.YMax} {
			if !gg.Finite(w) {
				continue
			}
			edge := top
			if w > bot {
				edge = bot
			}
			g.Append(&vg.Line{X1: cx, Y1: edge, X2: cx, Y2: w, Attr: line})
		}
		out.Append(g)
	}
}
