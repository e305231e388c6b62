// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom renders pixel-space rows into vector-graphics nodes.
//
// Rows arrive with positional fields already in pixel space and color
// fields already resolved to CSS colors; geometries only decide shape
// and structure. Every visible element gets a deterministic id and a
// style class through the render context, with compound marks
// (multi-primitive point shapes, boxplots) wrapped in one group that
// carries the metadata for the whole mark.
package geom

import (
	"strconv"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/vg"
)

// Options carries the size defaults geometries fall back to when a
// row does not set its own.
type Options struct {
	// PointRadius is the default point mark radius in pixels.
	PointRadius float64

	// LineWidth is the default stroke width in pixels.
	LineWidth float64

	// BarWidth is the default bar and box width in pixels, used
	// when a row has no xmin/xmax extent.
	BarWidth float64

	// Baseline is the pixel y of the zero line bars and areas
	// drop to, used when a row has no ymin.
	Baseline float64

	// FontSize is the label font size in pixels.
	FontSize float64
}

// DefaultOptions returns the sizes used when the caller supplies
// none.
func DefaultOptions() Options {
	return Options{PointRadius: 2.5, LineWidth: 1, BarWidth: 20, FontSize: 11}
}

// Render renders one layer's rows into out, dispatching on the
// layer's geometry kind. Like the statistic registry, the kind set is
// closed and an out-of-range kind degrades to a diagnostic, not a
// failure.
func Render(ctx *gg.RenderContext, l *gg.LayerSpec, rows []gg.Datum, opt Options, out *vg.Group) {
	switch l.Geom {
	case gg.GeomPoint:
		renderPoint(ctx, rows, opt, out)
	case gg.GeomLine:
		renderLine(ctx, rows, opt, out, true, false)
	case gg.GeomPath:
		renderLine(ctx, rows, opt, out, false, false)
	case gg.GeomStep:
		renderLine(ctx, rows, opt, out, true, true)
	case gg.GeomBar:
		renderBar(ctx, rows, opt, out)
	case gg.GeomArea:
		renderArea(ctx, rows, opt, out)
	case gg.GeomRibbon:
		renderRibbon(ctx, rows, opt, out)
	case gg.GeomSegment:
		renderSegment(ctx, rows, opt, out)
	case gg.GeomText:
		renderText(ctx, rows, opt, out)
	case gg.GeomPolygon:
		renderPolygon(ctx, rows, opt, out)
	case gg.GeomBoxplot:
		renderBoxplot(ctx, rows, opt, out)
	default:
		gg.Warning.Printf("unknown geom kind %d; layer not rendered", l.Geom)
	}
}

// seriesKey is the series identity used to split connected shapes:
// group, else color, else fill. It matches the grouping the
// statistics use, so a fitted series draws as one polyline.
func seriesKey(d *gg.Datum) string {
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

// splitSeries partitions rows by series key in first-seen order.
func splitSeries(rows []gg.Datum) [][]gg.Datum {
	var keys []string
	byKey := make(map[string][]gg.Datum)
	for i := range rows {
		k := seriesKey(&rows[i])
		if _, ok := byKey[k]; !ok {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], rows[i])
	}
	out := make([][]gg.Datum, len(keys))
	for i, k := range keys {
		out[i] = byKey[k]
	}
	return out
}

const (
	defaultStroke = "black"
	defaultFill   = "#4682b4"
)

// strokeColor resolves a row's stroke color.
func strokeColor(d *gg.Datum) string {
	if d.Color != "" {
		return d.Color
	}
	return defaultStroke
}

// fillColor resolves a row's fill color: fill, else color, else the
// default fill.
func fillColor(d *gg.Datum) string {
	if d.Fill != "" {
		return d.Fill
	}
	if d.Color != "" {
		return d.Color
	}
	return defaultFill
}

// dashArray maps a linetype name to an SVG dash pattern, or "" for a
// solid stroke.
func dashArray(lt string) string {
	switch lt {
	case "dashed":
		return "6,4"
	case "dotted":
		return "2,3"
	case "dotdash":
		return "2,3,6,3"
	case "longdash":
		return "10,4"
	}
	return ""
}

// strokeAttrs builds the presentation attributes of a stroked,
// unfilled element.
func strokeAttrs(d *gg.Datum, opt Options) vg.Attrs {
	w := d.Size
	if !gg.Set(w) || w <= 0 {
		w = opt.LineWidth
	}
	a := vg.Attrs{
		"stroke":       strokeColor(d),
		"stroke-width": vg.Num(w),
		"fill":         "none",
	}
	if da := dashArray(d.LineType); da != "" {
		a["stroke-dasharray"] = da
	}
	if gg.Set(d.Alpha) {
		a["stroke-opacity"] = vg.Num(d.Alpha)
	}
	return a
}

// fillAttrs builds the presentation attributes of a filled element.
func fillAttrs(d *gg.Datum) vg.Attrs {
	a := vg.Attrs{"fill": fillColor(d)}
	if gg.Set(d.Alpha) {
		a["fill-opacity"] = vg.Num(d.Alpha)
	}
	return a
}

// dataAttrs adds the source row and series to attrs when the style
// configuration asks for data attributes.
func dataAttrs(ctx *gg.RenderContext, d *gg.Datum, a vg.Attrs) vg.Attrs {
	if !ctx.Style.Enabled || !ctx.Style.DataAttrs {
		return a
	}
	if a == nil {
		a = vg.Attrs{}
	}
	if d.Row >= 0 {
		a["data-row"] = strconv.Itoa(d.Row)
	}
	if d.Group != "" {
		a["data-group"] = d.Group
	}
	return a
}
