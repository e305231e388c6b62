// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggstat implements the statistical transforms of the chart
// pipeline.
//
// Each statistic is a struct whose fields are its parameters; all
// fields have usable zero values. A statistic consumes the layer's
// mapped rows and produces derived rows; it never mutates its input.
// Rows whose required fields are not numeric are dropped, never
// propagated as errors. The only fatal errors are resource limits
// (see Bin's cap) and those surface as explicit errors.
package ggstat

import (
	"github.com/Alipsa/matrix-gg/gg"
)

// A Stat transforms the mapped rows of one layer into derived rows.
type Stat interface {
	Apply(rows []gg.Datum) ([]gg.Datum, error)
}

// ForLayer resolves the statistic for a layer from its kind and
// parameter map. The kind set is closed; a kind value outside it
// (possible only through arithmetic on the enum) falls back to
// identity with a diagnostic, not a failure.
func ForLayer(l *gg.LayerSpec) Stat {
	p := l.Params
	switch l.Stat {
	case gg.StatIdentity:
		return Identity{}
	case gg.StatBin:
		return Bin{
			Bins:     p.Int("bins", 0),
			Width:    p.Float("binwidth", 0),
			Boundary: p.Float("boundary", nan()),
		}
	case gg.StatCount:
		return Count{}
	case gg.StatBoxplot:
		return Boxplot{Coef: p.Float("coef", 0)}
	case gg.StatDensity:
		return Density{
			N:         p.Int("n", 0),
			Bandwidth: p.Float("bw", 0),
			Adjust:    p.Float("adjust", 0),
		}
	case gg.StatYDensity:
		return YDensity{
			N:         p.Int("n", 0),
			Bandwidth: p.Float("bw", 0),
		}
	case gg.StatSmooth:
		return Smooth{
			Degree: smoothDegree(p),
			Level:  p.Float("level", 0),
			SE:     p.Bool("se", true),
			N:      p.Int("n", 0),
		}
	case gg.StatBin2D:
		return Bin2D{
			Bins: p.Int("bins", 0),
		}
	case gg.StatContour:
		return Contour{
			Bins: p.Int("bins", 0),
		}
	case gg.StatEllipse:
		return Ellipse{
			Level:    p.Float("level", 0),
			Segments: p.Int("segments", 0),
		}
	case gg.StatQuantile:
		return Quantile{
			Quantiles: p.Floats("quantiles", nil),
			N:         p.Int("n", 0),
		}
	case gg.StatECDF:
		return ECDF{Pad: p.Bool("pad", false)}
	case gg.StatSpoke:
		return Spoke{
			Angle:  p.Float("angle", 0),
			Radius: p.Float("radius", 1),
		}
	case gg.StatUnique:
		return Unique{}
	}
	gg.Warning.Printf("unknown stat kind %d; passing data through", l.Stat)
	return Identity{}
}

// smoothDegree resolves the polynomial degree from the "method" and
// "degree" parameters: method "lm" (the default) is degree 1, "poly"
// takes its degree from the "degree" parameter.
func smoothDegree(p gg.Params) int {
	deg := p.Int("degree", 0)
	if deg > 0 {
		return deg
	}
	if p.String("method", "lm") == "poly" {
		return 2
	}
	return 1
}

// Compute runs the layer's statistic over rows. This is the stat
// engine's entry point for the orchestrator.
func Compute(l *gg.LayerSpec, rows []gg.Datum) ([]gg.Datum, error) {
	return ForLayer(l).Apply(rows)
}

// Identity passes rows through unchanged.
type Identity struct{}

func (Identity) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	out := make([]gg.Datum, len(rows))
	copy(out, rows)
	return out, nil
}

// Unique drops rows that duplicate an earlier row's position,
// series, and paint, preserving first-seen order.
type Unique struct{}

func (Unique) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	type key struct {
		x, y               float64
		xcat, ycat         string
		group, color, fill string
	}
	seen := make(map[key]bool)
	var out []gg.Datum
	for _, d := range rows {
		k := key{d.X, d.Y, d.XCat, d.YCat, d.Group, d.Color, d.Fill}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d.Clone())
	}
	return out, nil
}
