// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/vg"
)

// renderBar draws one rectangle per row from the row's y down to its
// lower edge: the row's ymin when set (stacked bars), else the option
// baseline. Horizontal extent comes from xmin/xmax when the position
// stage set them (dodging), else BarWidth centered on x.
func renderBar(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group) {
	for i := range rows {
		d := &rows[i]
		if !gg.Finite(d.X) || !gg.Finite(d.Y) {
			continue
		}
		x0, x1 := d.XMin, d.XMax
		if !gg.Set(x0) || !gg.Set(x1) {
			x0, x1 = d.X-opt.BarWidth/2, d.X+opt.BarWidth/2
		}
		y1 := d.YMin
		if !gg.Set(y1) {
			y1 = opt.Baseline
		}
		top := math.Min(d.Y, y1)
		attr := dataAttrs(ctx, d, fillAttrs(d))
		out.Append(&vg.Rect{
			ID:    ctx.ElementID("bar"),
			Class: ctx.Class("bar"),
			X:     x0,
			Y:     top,
			W:     x1 - x0,
			H:     math.Abs(d.Y - y1),
			Attr:  attr,
		})
	}
}
