// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/vg"
)

// renderPoint draws one mark per row. The mark shape comes from the
// row's shape aesthetic: circle (the default), square, diamond,
// triangle, plus, or cross. Plus and cross are compound marks built
// from two line segments wrapped in a single group so the id, class,
// and data attributes address the whole mark.
func renderPoint(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group) {
	for i := range rows {
		d := &rows[i]
		if !gg.Finite(d.X) || !gg.Finite(d.Y) {
			continue
		}
		r := d.Size
		if !gg.Set(r) || r <= 0 {
			r = opt.PointRadius
		}
		id, class := ctx.ElementID("point"), ctx.Class("point")

		fill := strokeColor(d)
		attr := vg.Attrs{"fill": fill}
		if gg.Set(d.Alpha) {
			attr["fill-opacity"] = vg.Num(d.Alpha)
		}
		attr = dataAttrs(ctx, d, attr)

		switch d.Shape {
		case "", "circle":
			out.Append(&vg.Circle{ID: id, Class: class, CX: d.X, CY: d.Y, R: r, Attr: attr})
		case "square":
			out.Append(&vg.Rect{ID: id, Class: class, X: d.X - r, Y: d.Y - r, W: 2 * r, H: 2 * r, Attr: attr})
		case "diamond":
			out.Append(&vg.Path{ID: id, Class: class, D: diamondPath(d.X, d.Y, r), Attr: attr})
		case "triangle":
			out.Append(&vg.Path{ID: id, Class: class, D: trianglePath(d.X, d.Y, r), Attr: attr})
		case "plus":
			out.Append(crossMark(id, class, d, r, false, attr, fill))
		case "cross":
			out.Append(crossMark(id, class, d, r, true, attr, fill))
		default:
			gg.Warning.Printf("unknown point shape %q; drawing circle", d.Shape)
			out.Append(&vg.Circle{ID: id, Class: class, CX: d.X, CY: d.Y, R: r, Attr: attr})
		}
	}
}

func diamondPath(x, y, r float64) string {
	return fmt.Sprintf("M%s %sL%s %sL%s %sL%s %sZ",
		vg.Num(x), vg.Num(y-r),
		vg.Num(x+r), vg.Num(y),
		vg.Num(x), vg.Num(y+r),
		vg.Num(x-r), vg.Num(y))
}

func trianglePath(x, y, r float64) string {
	return fmt.Sprintf("M%s %sL%s %sL%s %sZ",
		vg.Num(x), vg.Num(y-r),
		vg.Num(x+r), vg.Num(y+r),
		vg.Num(x-r), vg.Num(y+r))
}

// crossMark builds a plus (axis-aligned) or cross (diagonal) mark:
// two strokes inside one group. The group carries the element
// metadata; the inner lines carry only paint.
func crossMark(id, class string, d *gg.Datum, r float64, diagonal bool, attr vg.Attrs, stroke string) *vg.Group {
	line := vg.Attrs{"stroke": stroke, "stroke-width": vg.Num(1.5)}
	if op, ok := attr["fill-opacity"]; ok {
		line["stroke-opacity"] = op
	}
	g := &vg.Group{ID: id, Class: class, Attr: attr}
	delete(g.Attr, "fill")
	delete(g.Attr, "fill-opacity")
	if diagonal {
		g.Append(
			&vg.Line{X1: d.X - r, Y1: d.Y - r, X2: d.X + r, Y2: d.Y + r, Attr: line},
			&vg.Line{X1: d.X - r, Y1: d.Y + r, X2: d.X + r, Y2: d.Y - r, Attr: line},
		)
	} else {
		g.Append(
			&vg.Line{X1: d.X - r, Y1: d.Y, X2: d.X + r, Y2: d.Y, Attr: line},
			&vg.Line{X1: d.X, Y1: d.Y - r, X2: d.X, Y2: d.Y + r, Attr: line},
		)
	}
	return g
}
