// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/Alipsa/matrix-gg/coord"
	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/ggscale"
	"github.com/Alipsa/matrix-gg/vg"
)

const (
	axisColor    = "#333333"
	gridColor    = "#dddddd"
	axisFontSize = 10
	titleGap     = 4
)

// renderPanelChrome draws a panel's border, gridlines, tick marks,
// and tick labels. The x axis runs along the panel bottom, the y
// axis along the left edge.
func renderPanelChrome(pg *vg.Group, rect coord.Panel, xs, ys *ggscale.Scale, size SizeConfig, style *gg.StyleConfig) {
	cls := func(s string) string {
		if style.Enabled && style.Classes {
			return s
		}
		return ""
	}

	pg.Append(&vg.Rect{
		Class: cls("gg-border"),
		X:     rect.X, Y: rect.Y, W: rect.W, H: rect.H,
		Attr: vg.Attrs{"fill": "none", "stroke": axisColor},
	})

	axes := &vg.Group{Class: cls("gg-axis")}
	_, xNorms, xLabels := xs.Ticks(size.TickCount)
	for i, n := range xNorms {
		if n < 0 || n > 1 {
			continue
		}
		px := rect.X + n*rect.W
		axes.Append(
			&vg.Line{X1: px, Y1: rect.Y, X2: px, Y2: rect.Y + rect.H,
				Attr: vg.Attrs{"stroke": gridColor}},
			&vg.Line{X1: px, Y1: rect.Y + rect.H, X2: px, Y2: rect.Y + rect.H + size.TickLength,
				Attr: vg.Attrs{"stroke": axisColor}},
			&vg.Text{X: px, Y: rect.Y + rect.H + size.TickLength + axisFontSize,
				Text: xLabels[i],
				Attr: vg.Attrs{
					"fill":        axisColor,
					"font-size":   vg.Num(axisFontSize),
					"text-anchor": "middle",
				}},
		)
	}
	_, yNorms, yLabels := ys.Ticks(size.TickCount)
	for i, n := range yNorms {
		if n < 0 || n > 1 {
			continue
		}
		py := rect.Y + (1-n)*rect.H
		axes.Append(
			&vg.Line{X1: rect.X, Y1: py, X2: rect.X + rect.W, Y2: py,
				Attr: vg.Attrs{"stroke": gridColor}},
			&vg.Line{X1: rect.X - size.TickLength, Y1: py, X2: rect.X, Y2: py,
				Attr: vg.Attrs{"stroke": axisColor}},
			&vg.Text{X: rect.X - size.TickLength - 2, Y: py + axisFontSize/2 - 1,
				Text: yLabels[i],
				Attr: vg.Attrs{
					"fill":        axisColor,
					"font-size":   vg.Num(axisFontSize),
					"text-anchor": "end",
				}},
		)
	}
	pg.Append(axes)
}

// renderPanelTitle draws the facet value above the panel.
func renderPanelTitle(pg *vg.Group, rect coord.Panel, title string, style *gg.StyleConfig) {
	cls := ""
	if style.Enabled && style.Classes {
		cls = "gg-panel-title"
	}
	pg.Append(&vg.Text{
		Class: cls,
		X:     rect.X + rect.W/2,
		Y:     rect.Y - titleGap,
		Text:  title,
		Attr: vg.Attrs{
			"fill":        axisColor,
			"font-size":   vg.Num(axisFontSize),
			"text-anchor": "middle",
		},
	})
}

// legendWidth returns the pixels reserved for the color legend, or 0
// when no legend is drawn: legends exist only for trained discrete
// color or fill scales, and only when the size config places one.
func legendWidth(size SizeConfig, cs, fs *ggscale.ColorScale) float64 {
	if size.Legend != "right" {
		return 0
	}
	if cs.Domain.Discrete() || fs.Domain.Discrete() {
		return 90
	}
	return 0
}

// renderLegend draws swatches and labels for the discrete color (or
// fill) scale down the right edge of the chart.
func renderLegend(root *vg.Group, size SizeConfig, cs, fs *ggscale.ColorScale, style *gg.StyleConfig) {
	scale := cs
	if !scale.Domain.Discrete() {
		scale = fs
	}
	cls := ""
	if style.Enabled && style.Classes {
		cls = "gg-legend"
	}
	const (
		swatch  = 10
		rowStep = 16
	)
	x := float64(size.Width) - size.MarginRight - 80
	y := size.MarginTop + 10
	lg := &vg.Group{Class: cls}
	for _, level := range scale.Domain.Levels {
		css, ok := scale.Map(level, 0, false)
		if !ok {
			continue
		}
		lg.Append(
			&vg.Rect{X: x, Y: y, W: swatch, H: swatch, Attr: vg.Attrs{"fill": css}},
			&vg.Text{X: x + swatch + 4, Y: y + swatch - 1, Text: level,
				Attr: vg.Attrs{"fill": axisColor, "font-size": vg.Num(axisFontSize)}},
		)
		y += rowStep
	}
	root.Append(lg)
}
