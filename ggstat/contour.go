// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/Alipsa/matrix-gg/gg"
)

// grid2d is the shared 2D count grid behind Bin2D and Contour. Counts
// come from all rows combined; cells use the same closed-right edge
// policy as Bin.
type grid2d struct {
	nx, ny         int
	xmin, ymin     float64
	xwidth, ywidth float64
	counts         []float64
	maxCount       float64
}

func (g *grid2d) at(ix, iy int) float64 { return g.counts[iy*g.nx+ix] }

// cellX and cellY return a cell's center coordinates.
func (g *grid2d) cellX(ix int) float64 { return g.xmin + (float64(ix)+0.5)*g.xwidth }
func (g *grid2d) cellY(iy int) float64 { return g.ymin + (float64(iy)+0.5)*g.ywidth }

func makeGrid(rows []gg.Datum, bins int) (*grid2d, error) {
	xs, ys := finiteXY(rows)
	if len(xs) == 0 {
		return nil, nil
	}
	if bins <= 0 {
		bins = 30
	}
	if bins*bins > MaxBins {
		return nil, &gg.LimitError{
			Op:  "bin2d",
			Msg: fmt.Sprintf("%d x %d grid needs %d cells (max %d)", bins, bins, bins*bins, MaxBins),
		}
	}
	xmin, xmax := stats.Bounds(xs)
	ymin, ymax := stats.Bounds(ys)
	xw, yw := (xmax-xmin)/float64(bins), (ymax-ymin)/float64(bins)
	if xw == 0 {
		xw = 1
	}
	if yw == 0 {
		yw = 1
	}
	g := &grid2d{
		nx: bins, ny: bins,
		xmin: xmin, ymin: ymin,
		xwidth: xw, ywidth: yw,
		counts: make([]float64, bins*bins),
	}
	index := func(v, origin, width float64, n int) int {
		u := (v - origin) / width
		i := int(math.Floor(u))
		if frac := u - math.Floor(u); frac <= binEdgeEps*math.Max(1, math.Abs(u)) && i > 0 {
			i--
		}
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
		return i
	}
	for i := range xs {
		ix := index(xs[i], xmin, xw, bins)
		iy := index(ys[i], ymin, yw, bins)
		g.counts[iy*bins+ix]++
	}
	for _, c := range g.counts {
		if c > g.maxCount {
			g.maxCount = c
		}
	}
	return g, nil
}

// Bin2D bins (x, y) pairs into a square grid of counts, for heatmap
// layers. Empty cells are not emitted. Each cell datum has x/y at the
// cell center, xmin/xmax/ymin/ymax at the cell edges, and count and
// density (count normalized to the fullest cell) in its meta bag.
type Bin2D struct {
	// Bins is the grid resolution per axis. If it is 0, it
	// defaults to 30.
	Bins int
}

func (b Bin2D) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	g, err := makeGrid(rows, b.Bins)
	if g == nil || err != nil {
		return nil, err
	}
	var out []gg.Datum
	for iy := 0; iy < g.ny; iy++ {
		for ix := 0; ix < g.nx; ix++ {
			c := g.at(ix, iy)
			if c == 0 {
				continue
			}
			d := derived(&rows[0])
			d.X = g.cellX(ix)
			d.Y = g.cellY(iy)
			d.XMin = g.xmin + float64(ix)*g.xwidth
			d.XMax = d.XMin + g.xwidth
			d.YMin = g.ymin + float64(iy)*g.ywidth
			d.YMax = d.YMin + g.ywidth
			d.SetMeta("count", c)
			d.SetMeta("density", c/g.maxCount)
			out = append(out, d)
		}
	}
	return out, nil
}

// Contour traces iso-count lines over the 2D bin grid by marching
// squares: for each of several evenly spaced levels of the normalized
// count surface it emits the line segments where the surface crosses
// that level, interpolated between cell centers. Each segment datum
// has x/y and xend/yend, meta level, and a per-level group so line
// geometries draw each level as its own set of strokes.
type Contour struct {
	// Bins is the grid resolution per axis. If it is 0, it
	// defaults to 30.
	Bins int
}

// contourLevels are the normalized count levels traced, chosen to
// match the bands ggplot draws for modest grids.
var contourLevels = []float64{0.1, 0.25, 0.5, 0.75, 0.9}

func (c Contour) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	g, err := makeGrid(rows, c.Bins)
	if g == nil || err != nil {
		return nil, err
	}
	var out []gg.Datum
	for _, level := range contourLevels {
		thresh := level * g.maxCount
		for iy := 0; iy+1 < g.ny; iy++ {
			for ix := 0; ix+1 < g.nx; ix++ {
				out = append(out, marchCell(g, rows, ix, iy, thresh, level)...)
			}
		}
	}
	return out, nil
}

// marchCell applies marching squares to the square of four grid cell
// centers whose lower-left is (ix, iy) and returns the contour
// segments crossing it at thresh.
func marchCell(g *grid2d, rows []gg.Datum, ix, iy int, thresh, level float64) []gg.Datum {
	// Corner values, counterclockwise from lower-left.
	v00 := g.at(ix, iy)
	v10 := g.at(ix+1, iy)
	v11 := g.at(ix+1, iy+1)
	v01 := g.at(ix, iy+1)

	x0, x1 := g.cellX(ix), g.cellX(ix+1)
	y0, y1 := g.cellY(iy), g.cellY(iy+1)

	// interp finds where the threshold crossing falls between two
	// corner positions.
	interp := func(p0, p1, va, vb float64) float64 {
		if va == vb {
			return (p0 + p1) / 2
		}
		return p0 + (p1-p0)*(thresh-va)/(vb-va)
	}

	type pt struct{ x, y float64 }
	// Edge crossing points, indexed bottom, right, top, left.
	edge := func(i int) pt {
		switch i {
		case 0:
			return pt{interp(x0, x1, v00, v10), y0}
		case 1:
			return pt{x1, interp(y0, y1, v10, v11)}
		case 2:
			return pt{interp(x0, x1, v01, v11), y1}
		}
		return pt{x0, interp(y0, y1, v00, v01)}
	}

	code := 0
	if v00 >= thresh {
		code |= 1
	}
	if v10 >= thresh {
		code |= 2
	}
	if v11 >= thresh {
		code |= 4
	}
	if v01 >= thresh {
		code |= 8
	}

	// Edge pairs each case connects. Saddle cases (5, 10) split
	// using the cell mean.
	var pairs [][2]int
	switch code {
	case 0, 15:
	case 1, 14:
		pairs = [][2]int{{3, 0}}
	case 2, 13:
		pairs = [][2]int{{0, 1}}
	case 3, 12:
		pairs = [][2]int{{3, 1}}
	case 4, 11:
		pairs = [][2]int{{1, 2}}
	case 6, 9:
		pairs = [][2]int{{0, 2}}
	case 7, 8:
		pairs = [][2]int{{3, 2}}
	case 5, 10:
		mean := (v00 + v10 + v11 + v01) / 4
		if (code == 5) == (mean >= thresh) {
			pairs = [][2]int{{3, 2}, {0, 1}}
		} else {
			pairs = [][2]int{{3, 0}, {1, 2}}
		}
	}

	var out []gg.Datum
	for _, pr := range pairs {
		a, b := edge(pr[0]), edge(pr[1])
		d := derived(&rows[0])
		d.X, d.Y = a.x, a.y
		d.XEnd, d.YEnd = b.x, b.y
		d.Group = fmt.Sprintf("level-%g", level)
		d.SetMeta("level", level)
		out = append(out, d)
	}
	return out
}
