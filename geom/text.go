// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/vg"
)

// renderText draws one label per row, middle-anchored at (x, y). A
// rotate meta value (set by the polar pipeline so labels track their
// radius while staying upright) becomes a rotation about the anchor.
func renderText(ctx *gg.RenderContext, rows []gg.Datum, opt Options, out *vg.Group) {
	for i := range rows {
		d := &rows[i]
		if !gg.Finite(d.X) || !gg.Finite(d.Y) || d.Label == "" {
			continue
		}
		size := d.Size
		if !gg.Set(size) || size <= 0 {
			size = opt.FontSize
		}
		attr := vg.Attrs{
			"fill":        strokeColor(d),
			"font-size":   vg.Num(size),
			"text-anchor": "middle",
		}
		if gg.Set(d.Alpha) {
			attr["fill-opacity"] = vg.Num(d.Alpha)
		}
		if rot := d.GetMeta("rotate"); gg.Set(rot) && rot != 0 {
			attr["transform"] = fmt.Sprintf("rotate(%s,%s,%s)", vg.Num(rot), vg.Num(d.X), vg.Num(d.Y))
		}
		attr = dataAttrs(ctx, d, attr)
		out.Append(&vg.Text{
			ID:    ctx.ElementID("text"),
			Class: ctx.Class("text"),
			X:     d.X,
			Y:     d.Y,
			Text:  d.Label,
			Attr:  attr,
		})
	}
}
