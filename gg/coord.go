// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import "math"

// CoordKind selects the coordinate system of a chart.
type CoordKind int

const (
	// CoordCartesian maps normalized positions straight into the
	// panel rectangle.
	CoordCartesian CoordKind = iota

	// CoordPolar wraps one axis around a full circle.
	CoordPolar

	// CoordRadial is polar over a bounded angular sector.
	CoordRadial
)

var coordNames = [...]string{"cartesian", "polar", "radial"}

func (k CoordKind) String() string {
	if int(k) < len(coordNames) {
		return coordNames[k]
	}
	return "coord?"
}

// ParseCoord resolves a coordinate kind by name.
func ParseCoord(s string) (CoordKind, error) {
	for i, n := range coordNames {
		if n == s {
			return CoordKind(i), nil
		}
	}
	return 0, &ValidationError{Field: "coord", Value: s, Msg: "unknown coordinate kind"}
}

// A CoordSpec holds the coordinate-system parameters of a chart.
// There is one per chart, shared by all layers and panels.
type CoordSpec struct {
	Kind CoordKind

	// Theta names the angle-bearing axis for polar and radial
	// coordinates, "x" or "y". The other axis bears the radius.
	Theta string

	// Start and End bound the angular sector in radians, measured
	// clockwise from 12 o'clock. Polar ignores End and always
	// sweeps a full circle from Start.
	Start, End float64

	// Direction is the angular direction, +1 for clockwise and -1
	// for counterclockwise.
	Direction int

	// InnerRadius is the donut hole radius as a fraction of the
	// panel radius, in [0, 1).
	InnerRadius float64

	// Clip clamps normalized positions into [0, 1] before
	// mapping, keeping out-of-domain data inside the panel.
	Clip bool
}

// DefaultCoord returns a Cartesian CoordSpec. The polar defaults
// (theta on x, a full clockwise sweep from 12 o'clock) are filled in
// by Normalize when the kind changes.
func DefaultCoord() CoordSpec {
	return CoordSpec{Kind: CoordCartesian, Theta: "x", Direction: 1, End: 2 * math.Pi}
}

// Normalize fills zero-valued fields with their defaults and returns
// a ValidationError for parameters outside their documented ranges.
func (c *CoordSpec) Normalize() error {
	if c.Theta == "" {
		c.Theta = "x"
	}
	if c.Theta != "x" && c.Theta != "y" {
		return &ValidationError{Field: "coord.theta", Value: c.Theta, Msg: "must be x or y"}
	}
	if c.Direction == 0 {
		c.Direction = 1
	}
	if c.Direction != 1 && c.Direction != -1 {
		return &ValidationError{Field: "coord.direction", Value: c.Direction, Msg: "must be 1 or -1"}
	}
	if c.InnerRadius < 0 || c.InnerRadius >= 1 {
		return &ValidationError{Field: "coord.innerRadius", Value: c.InnerRadius, Msg: "must be in [0, 1)"}
	}
	switch c.Kind {
	case CoordPolar:
		c.End = c.Start + 2*math.Pi
	case CoordRadial:
		if c.End == 0 {
			c.End = c.Start + 2*math.Pi
		}
	}
	return nil
}
