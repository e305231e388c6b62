// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/vg"
)

// renderSegment draws one line per row from (x, y) to (xend, yend),
// for spokes and contour strokes.
func renderSegment(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group) {
	for i := range rows {
		d := &rows[i]
		if !gg.Finite(d.X) || !gg.Finite(d.Y) || !gg.Finite(d.XEnd) || !gg.Finite(d.YEnd) {
			continue
		}
		attr := dataAttrs(ctx, d, strokeAttrs(d, opt))
		delete(attr, "fill")
		out.Append(&vg.Line{
			ID:    ctx.ElementID("segment"),
			Class: ctx.Class("segment"),
			X1:    d.X,
			Y1:    d.Y,
			X2:    d.XEnd,
			Y2:    d.YEnd,
			Attr:  attr,
		})
	}
}
