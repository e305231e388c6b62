// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"github.com/Alipsa/matrix-gg/coord"
	"github.com/Alipsa/matrix-gg/gg"
)

// A panel is one facet of the chart: its grid position, its title
// (the facet value), and its share of every layer's rows.
type panel struct {
	row, col int
	title    string
	rows     [][]gg.Datum
}

// facetPanels partitions each layer's mapped rows into panels by the
// facet column. Facet levels keep first-encounter order from the
// data; without a facet column there is a single untitled panel.
// Returns the panels and the grid dimensions.
func facetPanels(p *Plot, mapped [][]gg.Datum) ([]*panel, int, int) {
	if p.FacetBy == "" || p.Data == nil || !p.Data.HasColumn(p.FacetBy) {
		return []*panel{{rows: mapped}}, 1, 1
	}

	var levels []string
	index := make(map[string]int)
	for i := 0; i < p.Data.Len(); i++ {
		v := p.Data.String(p.FacetBy, i)
		if _, ok := index[v]; !ok {
			index[v] = len(levels)
			levels = append(levels, v)
		}
	}
	if len(levels) == 0 {
		return []*panel{{rows: mapped}}, 1, 1
	}

	ncol := p.FacetCols
	if ncol <= 0 {
		ncol = int(math.Ceil(math.Sqrt(float64(len(levels)))))
	}
	if ncol > len(levels) {
		ncol = len(levels)
	}
	nrow := (len(levels) + ncol - 1) / ncol

	panels := make([]*panel, len(levels))
	for i, l := range levels {
		panels[i] = &panel{
			row:   i / ncol,
			col:   i % ncol,
			title: l,
			rows:  make([][]gg.Datum, len(mapped)),
		}
	}
	for li, rows := range mapped {
		for i := range rows {
			d := &rows[i]
			if d.Row < 0 || d.Row >= p.Data.Len() {
				continue
			}
			pi := index[p.Data.String(p.FacetBy, d.Row)]
			panels[pi].rows[li] = append(panels[pi].rows[li], *d)
		}
	}
	return panels, nrow, ncol
}

// A grid lays out panel rectangles inside the plot area.
type grid struct {
	x0, y0  float64
	pw, ph  float64
	spacing float64
}

// panelLayout splits the plot area left after margins and the legend
// into an nrow by ncol grid.
func panelLayout(size SizeConfig, nrow, ncol int, legendW float64) grid {
	w := float64(size.Width) - size.MarginLeft - size.MarginRight - legendW
	h := float64(size.Height) - size.MarginTop - size.MarginBottom
	g := grid{
		x0:      size.MarginLeft,
		y0:      size.MarginTop,
		spacing: size.PanelSpacing,
	}
	g.pw = (w - float64(ncol-1)*g.spacing) / float64(ncol)
	g.ph = (h - float64(nrow-1)*g.spacing) / float64(nrow)
	return g
}

func (g grid) rect(row, col int) coord.Panel {
	return coord.Panel{
		X: g.x0 + float64(col)*(g.pw+g.spacing),
		Y: g.y0 + float64(row)*(g.ph+g.spacing),
		W: g.pw,
		H: g.ph,
	}
}
