// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/Alipsa/matrix-gg/coord"
	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/ggscale"
)

// trainColors trains the color and fill scales from every layer's
// rows. Literal colors train nothing and later pass through the
// scales untouched.
func trainColors(layers [][]gg.Datum, cs, fs *ggscale.ColorScale) {
	for _, rows := range layers {
		for i := range rows {
			d := &rows[i]
			cn, fn := d.GetMeta("colorNum"), d.GetMeta("fillNum")
			cs.Train(d.Color, cn, gg.Set(cn))
			fs.Train(d.Fill, fn, gg.Set(fn))
		}
	}
}

// needsBand reports whether a geometry occupies a band of the x
// axis, so discrete scales should hand it xmin/xmax extents.
func needsBand(k gg.GeomKind) bool {
	return k == gg.GeomBar || k == gg.GeomBoxplot
}

// normalizeRows maps one layer's rows from data space into
// normalized [0, 1] space: positions through the trained scales,
// categories to band centers, colors to CSS colors. Rows with
// categories the scales never saw, or with values outside a
// transform's domain on a required axis, are dropped here.
func normalizeRows(rows []gg.Datum, l *gg.LayerSpec, xs, ys *ggscale.Scale, cs, fs *ggscale.ColorScale) []gg.Datum {
	out := make([]gg.Datum, 0, len(rows))
	for i := range rows {
		d := rows[i].Clone()

		if d.XCat != "" {
			n, ok := xs.NormCat(d.XCat)
			if !ok {
				continue
			}
			d.X = n
		} else if gg.Set(d.X) {
			d.X = xs.Norm(d.X)
		}
		if d.YCat != "" {
			n, ok := ys.NormCat(d.YCat)
			if !ok {
				continue
			}
			d.Y = n
		} else if gg.Set(d.Y) {
			d.Y = ys.Norm(d.Y)
		}

		for _, f := range []*float64{&d.XEnd, &d.XMin, &d.XMax} {
			if gg.Set(*f) {
				*f = xs.Norm(*f)
			}
		}
		for _, f := range []*float64{&d.YEnd, &d.YMin, &d.YMax} {
			if gg.Set(*f) {
				*f = ys.Norm(*f)
			}
		}

		// Histogram bars span their bin, not a default width.
		if bs := d.GetMeta("binStart"); gg.Set(bs) {
			d.XMin = xs.Norm(bs)
		}
		if be := d.GetMeta("binEnd"); gg.Set(be) {
			d.XMax = xs.Norm(be)
		}

		// Box edges ride the y scale like any other y value.
		for _, key := range []string{"lower", "middle", "upper"} {
			if v := d.GetMeta(key); gg.Set(v) {
				d.SetMeta(key, ys.Norm(v))
			}
		}

		// Discrete x bands: dodged rows get their slot of the
		// band, band geometries get the whole band.
		if xs.Discrete() && d.XCat != "" {
			band := xs.BandWidth() * barBandShare
			if cnt := d.GetMeta("dodgeCount"); gg.Set(cnt) && cnt > 0 {
				w := band / cnt
				d.XMin = d.X - band/2 + d.GetMeta("dodgeIndex")*w
				d.XMax = d.XMin + w
				d.X = d.XMin + w/2
			} else if needsBand(l.Geom) && !gg.Set(d.XMin) {
				d.XMin = d.X - band/2
				d.XMax = d.X + band/2
			}
		}

		cn, fn := d.GetMeta("colorNum"), d.GetMeta("fillNum")
		if css, ok := cs.Map(d.Color, cn, gg.Set(cn)); ok {
			d.Color = css
		}
		if css, ok := fs.Map(d.Fill, fn, gg.Set(fn)); ok {
			d.Fill = css
		}

		out = append(out, d)
	}
	return out
}

// toPixels maps one layer's normalized rows into pixel space within
// the panel rectangle. Paired fields (xend/yend, xmin/ymin,
// xmax/ymax) map as points so they stay meaningful under polar
// coordinates; an unset half of a pair borrows the row's x or y.
func toPixels(rows []gg.Datum, l *gg.LayerSpec, cs *gg.CoordSpec, rect coord.Panel) []gg.Datum {
	out := make([]gg.Datum, len(rows))
	for i := range rows {
		d := rows[i].Clone()
		xn, yn := d.X, d.Y

		for _, key := range []string{"lower", "middle", "upper"} {
			if v := d.GetMeta(key); gg.Set(v) {
				_, py := coord.Map(cs, xn, v, rect)
				d.SetMeta(key, py)
			}
		}
		if l.Geom == gg.GeomText && cs.Kind != gg.CoordCartesian {
			d.SetMeta("rotate", coord.TextAngle(cs, xn, yn, rect))
		}

		mapPair(cs, rect, &d.XEnd, &d.YEnd, xn, yn)
		mapPair(cs, rect, &d.XMin, &d.YMin, xn, yn)
		mapPair(cs, rect, &d.XMax, &d.YMax, xn, yn)

		px, py := coord.Map(cs, xn, yn, rect)
		if gg.Set(xn) {
			d.X = px
		}
		if gg.Set(yn) {
			d.Y = py
		}
		out[i] = d
	}
	return out
}

// mapPair maps the point (*xf, *yf) into pixels, substituting the
// row's own x or y for an unset half, and writes back only the
// halves that were set.
func mapPair(cs *gg.CoordSpec, rect coord.Panel, xf, yf *float64, xn, yn float64) {
	if !gg.Set(*xf) && !gg.Set(*yf) {
		return
	}
	x, y := *xf, *yf
	if !gg.Set(x) {
		x = xn
	}
	if !gg.Set(y) {
		y = yn
	}
	px, py := coord.Map(cs, x, y, rect)
	if gg.Set(*xf) {
		*xf = px
	}
	if gg.Set(*yf) {
		*yf = py
	}
}
