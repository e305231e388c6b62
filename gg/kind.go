// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

// GeomKind identifies a geometry renderer. The set is closed;
// dispatch is by exhaustive switch, never by reflection.
type GeomKind int

const (
	GeomPoint GeomKind = iota
	GeomLine
	GeomPath
	GeomStep
	GeomBar
	GeomArea
	GeomRibbon
	GeomSegment
	GeomText
	GeomPolygon
	GeomBoxplot
)

var geomNames = map[GeomKind]string{
	GeomPoint:   "point",
	GeomLine:    "line",
	GeomPath:    "path",
	GeomStep:    "step",
	GeomBar:     "bar",
	GeomArea:    "area",
	GeomRibbon:  "ribbon",
	GeomSegment: "segment",
	GeomText:    "text",
	GeomPolygon: "polygon",
	GeomBoxplot: "boxplot",
}

func (k GeomKind) String() string {
	if n, ok := geomNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseGeom resolves a geometry name. Unknown names are a validation
// error.
func ParseGeom(name string) (GeomKind, error) {
	for k, n := range geomNames {
		if n == name {
			return k, nil
		}
	}
	return 0, &ValidationError{Field: "geom", Value: name, Msg: "unknown geometry"}
}

// StatKind identifies a statistical transform.
type StatKind int

const (
	StatIdentity StatKind = iota
	StatBin
	StatCount
	StatBoxplot
	StatDensity
	StatYDensity
	StatSmooth
	StatBin2D
	StatContour
	StatEllipse
	StatQuantile
	StatECDF
	StatSpoke
	StatUnique
)

var statNames = map[StatKind]string{
	StatIdentity: "identity",
	StatBin:      "bin",
	StatCount:    "count",
	StatBoxplot:  "boxplot",
	StatDensity:  "density",
	StatYDensity: "ydensity",
	StatSmooth:   "smooth",
	StatBin2D:    "bin2d",
	StatContour:  "contour",
	StatEllipse:  "ellipse",
	StatQuantile: "quantile",
	StatECDF:     "ecdf",
	StatSpoke:    "spoke",
	StatUnique:   "unique",
}

func (k StatKind) String() string {
	if n, ok := statNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseStat resolves a statistic name. Unknown names are a
// validation error.
func ParseStat(name string) (StatKind, error) {
	for k, n := range statNames {
		if n == name {
			return k, nil
		}
	}
	return 0, &ValidationError{Field: "stat", Value: name, Msg: "unknown statistic"}
}

// PositionKind identifies a position adjustment for overlapping
// marks.
type PositionKind int

const (
	PositionIdentity PositionKind = iota
	PositionStack
	PositionFill
	PositionDodge
)

var positionNames = map[PositionKind]string{
	PositionIdentity: "identity",
	PositionStack:    "stack",
	PositionFill:     "fill",
	PositionDodge:    "dodge",
}

func (k PositionKind) String() string {
	if n, ok := positionNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParsePosition resolves a position adjustment name. Unknown names
// are a validation error.
func ParsePosition(name string) (PositionKind, error) {
	for k, n := range positionNames {
		if n == name {
			return k, nil
		}
	}
	return 0, &ValidationError{Field: "position", Value: name, Msg: "unknown position adjustment"}
}
