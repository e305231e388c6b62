// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

// A LayerSpec describes one visual layer of a chart: which geometry
// to draw, which statistic to run first, how to resolve overlap, and
// how data columns map onto aesthetics. A LayerSpec is built once
// per chart and never mutated afterwards, so compiled specs can be
// shared across renders.
type LayerSpec struct {
	Geom     GeomKind
	Stat     StatKind
	Position PositionKind
	Params   Params
	Aes      Mapping
}

// statRequires lists the aesthetics a statistic consumes.
var statRequires = map[StatKind][]string{
	StatBin:      {"x"},
	StatCount:    {"x"},
	StatBoxplot:  {"y"},
	StatDensity:  {"x"},
	StatYDensity: {"y"},
	StatSmooth:   {"x", "y"},
	StatBin2D:    {"x", "y"},
	StatContour:  {"x", "y"},
	StatEllipse:  {"x", "y"},
	StatQuantile: {"x", "y"},
	StatECDF:     {"x"},
	StatSpoke:    {"x", "y"},
}

// geomRequires lists the aesthetics a geometry consumes.
var geomRequires = map[GeomKind][]string{
	GeomPoint:   {"x", "y"},
	GeomLine:    {"x", "y"},
	GeomPath:    {"x", "y"},
	GeomStep:    {"x", "y"},
	GeomBar:     {"x"},
	GeomArea:    {"x", "y"},
	GeomRibbon:  {"x", "ymin", "ymax"},
	GeomSegment: {"x", "y", "xend", "yend"},
	GeomText:    {"x", "y", "label"},
	GeomPolygon: {"x", "y"},
	GeomBoxplot: {"y"},
}

// statProvides lists the aesthetics a statistic synthesizes, which
// the mapping therefore need not supply.
var statProvides = map[StatKind][]string{
	StatBin:      {"y"},
	StatCount:    {"y"},
	StatDensity:  {"y"},
	StatYDensity: {"x"},
	StatECDF:     {"y"},
	StatSmooth:   {"ymin", "ymax"},
	StatSpoke:    {"xend", "yend"},
	StatBoxplot:  {"ymin", "ymax"},
}

// Validate checks that the mapping supplies every aesthetic the
// layer's statistic and geometry require. It returns a
// ValidationError naming the first missing aesthetic.
func (l *LayerSpec) Validate() error {
	has := func(aes string) bool {
		_, ok := l.Aes[aes]
		return ok
	}
	for _, aes := range statRequires[l.Stat] {
		if !has(aes) {
			return &ValidationError{Field: "aes." + aes, Msg: "required by stat " + l.Stat.String()}
		}
	}
	provided := make(map[string]bool)
	for _, aes := range statProvides[l.Stat] {
		provided[aes] = true
	}
	for _, aes := range geomRequires[l.Geom] {
		if !has(aes) && !provided[aes] {
			return &ValidationError{Field: "aes." + aes, Msg: "required by geom " + l.Geom.String()}
		}
	}
	return nil
}
