// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot is the render orchestrator: it compiles a chart
// description into layers, threads the rows of each layer through
// mapping, statistics, position adjustment, scale training, scale
// transform, and coordinate transform, and renders the result as a
// vector-graphics tree.
package plot

import (
	"io"

	"github.com/Alipsa/matrix-gg/coord"
	"github.com/Alipsa/matrix-gg/geom"
	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/ggscale"
	"github.com/Alipsa/matrix-gg/ggstat"
	"github.com/Alipsa/matrix-gg/table"
	"github.com/Alipsa/matrix-gg/vg"
)

// SizeConfig is the pixel geometry of a rendered chart.
type SizeConfig struct {
	Width, Height int

	MarginTop, MarginRight, MarginBottom, MarginLeft float64

	// PanelSpacing is the gap between facet panels.
	PanelSpacing float64

	// TickCount is the maximum number of axis ticks per axis.
	TickCount int

	// TickLength is the axis tick mark length.
	TickLength float64

	// PointRadius is the default point mark radius.
	PointRadius float64

	// Legend places the discrete color legend: "right" or "none".
	Legend string
}

// DefaultSize returns the size configuration used when the caller
// supplies none.
func DefaultSize() SizeConfig {
	return SizeConfig{
		Width: 640, Height: 480,
		MarginTop: 10, MarginRight: 10, MarginBottom: 35, MarginLeft: 45,
		PanelSpacing: 10,
		TickCount:    5,
		TickLength:   4,
		PointRadius:  2.5,
		Legend:       "right",
	}
}

// A Plot is a complete chart description: the data source, the
// layers, and the chart-wide scale, coordinate, facet, style, and
// size configuration. Build it once, then Render it; a rendered Plot
// is not mutated and may be rendered again, concurrently if desired.
type Plot struct {
	Data   *table.Table
	Layers []gg.LayerSpec

	Coord gg.CoordSpec

	// XTransform and YTransform are transform registry ids
	// ("log10", "sqrt", ...). Empty means identity.
	XTransform, YTransform string

	// DiscretePalette and ContinuousPalette name the color
	// palettes ("Set2", "magma", ...). Empty picks the defaults.
	DiscretePalette, ContinuousPalette string

	// FacetBy is a column name to facet panels by. Empty means a
	// single panel. FacetCols caps the number of panel columns; 0
	// picks a near-square grid.
	FacetBy   string
	FacetCols int

	Style gg.StyleConfig
	Size  SizeConfig
}

// New returns a Plot over data with default coordinates, style, and
// size.
func New(data *table.Table) *Plot {
	return &Plot{
		Data:  data,
		Coord: gg.DefaultCoord(),
		Style: gg.DefaultStyle(),
		Size:  DefaultSize(),
	}
}

// Add appends a layer and returns the plot, for chained building.
func (p *Plot) Add(l gg.LayerSpec) *Plot {
	p.Layers = append(p.Layers, l)
	return p
}

// Render runs the full pipeline and returns the root of the graphics
// tree. Validation problems surface as errors before anything is
// rendered; rows with unusable data are dropped along the way, so a
// data-quality problem shows up as a sparser chart, never a failure.
func (p *Plot) Render() (*vg.Group, error) {
	if len(p.Layers) == 0 {
		return nil, &gg.ValidationError{Field: "layers", Msg: "plot has no layers"}
	}
	cs := p.Coord
	if err := cs.Normalize(); err != nil {
		return nil, err
	}
	xTrans, err := ggscale.TransformByID(p.XTransform)
	if err != nil {
		return nil, err
	}
	yTrans, err := ggscale.TransformByID(p.YTransform)
	if err != nil {
		return nil, err
	}
	colorScale, err := ggscale.NewColorScale("color", p.DiscretePalette, p.ContinuousPalette)
	if err != nil {
		return nil, err
	}
	fillScale, err := ggscale.NewColorScale("fill", p.DiscretePalette, p.ContinuousPalette)
	if err != nil {
		return nil, err
	}

	// Mapping: materialize each layer's rows from the data.
	mapped := make([][]gg.Datum, len(p.Layers))
	for i := range p.Layers {
		l := &p.Layers[i]
		if err := l.Validate(); err != nil {
			return nil, err
		}
		rows, err := materialize(p.Data, l)
		if err != nil {
			return nil, err
		}
		mapped[i] = rows
	}

	// Facet partition, then statistics and position adjustment
	// per panel so every panel is computed from its own rows.
	panels, nrow, ncol := facetPanels(p, mapped)
	for _, pn := range panels {
		for li := range p.Layers {
			l := &p.Layers[li]
			rows, err := ggstat.Compute(l, pn.rows[li])
			if err != nil {
				return nil, err
			}
			pn.rows[li] = applyPosition(l.Position, rows)
		}
	}

	// Train positional scales across all panels and layers so
	// axes are shared, then the color scales.
	var all [][]gg.Datum
	for _, pn := range panels {
		all = append(all, pn.rows...)
	}
	scales := ggscale.TrainLayers(all, xTrans, yTrans)
	xs, ys := scales["x"], scales["y"]
	for i := range p.Layers {
		switch p.Layers[i].Geom {
		case gg.GeomBar, gg.GeomArea:
			if !ys.Discrete() {
				ys.Include(0)
			}
		}
	}
	trainColors(all, colorScale, fillScale)

	root := &vg.Group{Class: chartClass(&p.Style)}
	layout := panelLayout(p.Size, nrow, ncol, legendWidth(p.Size, colorScale, fillScale))
	ctx := gg.NewRenderContext(p.Style)
	ctx.Faceted = len(panels) > 1

	for _, pn := range panels {
		ctx.PanelRow, ctx.PanelCol = pn.row, pn.col
		rect := layout.rect(pn.row, pn.col)
		pg := &vg.Group{Class: panelClass(&p.Style)}
		renderPanelChrome(pg, rect, xs, ys, p.Size, &p.Style)
		if pn.title != "" {
			renderPanelTitle(pg, rect, pn.title, &p.Style)
		}

		baseline := baselinePixel(&cs, ys, rect)
		for li := range p.Layers {
			l := &p.Layers[li]
			ctx.Layer = li
			rows := normalizeRows(pn.rows[li], l, xs, ys, colorScale, fillScale)
			rows = toPixels(rows, l, &cs, rect)
			opt := geomOptions(p.Size, l, xs, rect, baseline)
			geom.Render(ctx, l, rows, opt, pg)
		}
		root.Append(pg)
	}

	if legendWidth(p.Size, colorScale, fillScale) > 0 {
		renderLegend(root, p.Size, colorScale, fillScale, &p.Style)
	}
	return root, nil
}

// WriteSVG renders the plot and serializes it as SVG.
func (p *Plot) WriteSVG(w io.Writer) error {
	root, err := p.Render()
	if err != nil {
		return err
	}
	return vg.WriteSVG(w, p.Size.Width, p.Size.Height, root)
}

func chartClass(s *gg.StyleConfig) string {
	if s.Enabled && s.Classes {
		return "gg-chart"
	}
	return ""
}

func panelClass(s *gg.StyleConfig) string {
	if s.Enabled && s.Classes {
		return "gg-panel"
	}
	return ""
}

// baselinePixel returns the pixel y of the y axis zero line (clamped
// to the panel), which bars and areas drop to.
func baselinePixel(cs *gg.CoordSpec, ys *ggscale.Scale, rect coord.Panel) float64 {
	n := 0.0
	if !ys.Discrete() {
		n = ys.Norm(0)
		if n < 0 {
			n = 0
		} else if n > 1 {
			n = 1
		}
	}
	_, by := coord.Map(cs, 0, n, rect)
	return by
}

// geomOptions sizes a layer's marks: the bar width follows the
// discrete x band when there is one.
func geomOptions(size SizeConfig, l *gg.LayerSpec, xs *ggscale.Scale, rect coord.Panel, baseline float64) geom.Options {
	opt := geom.DefaultOptions()
	opt.PointRadius = size.PointRadius
	opt.Baseline = baseline
	if xs.Discrete() {
		opt.BarWidth = xs.BandWidth() * barBandShare * rect.W
	}
	return opt
}

// barBandShare is how much of a discrete band a bar occupies.
const barBandShare = 0.9
