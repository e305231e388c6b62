// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord maps normalized [0, 1] positions into pixel space
// within a panel, in Cartesian, polar, or radial coordinates.
package coord

import (
	"math"

	"github.com/Alipsa/matrix-gg/gg"
)

// A Panel is the pixel rectangle a chart panel draws into. Y grows
// downward, as in SVG.
type Panel struct {
	X, Y, W, H float64
}

// Center returns the panel's center point.
func (p Panel) Center() (cx, cy float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// MaxRadius returns the largest circle radius that fits the panel.
func (p Panel) MaxRadius() float64 {
	return math.Min(p.W, p.H) / 2
}

// Map maps a normalized position into pixel space. Cartesian flips y
// so that larger values draw higher; polar and radial treat the
// theta-bearing axis as an angle within the spec's sector and the
// other as a radius from the donut hole outward, with angle 0 at 12
// o'clock.
func Map(c *gg.CoordSpec, xn, yn float64, p Panel) (px, py float64) {
	if c.Clip {
		xn, yn = clamp01(xn), clamp01(yn)
	}
	if c.Kind == gg.CoordCartesian {
		return p.X + xn*p.W, p.Y + (1-yn)*p.H
	}

	angle, radius := angleRadius(c, xn, yn, p)
	cx, cy := p.Center()
	return cx + radius*math.Sin(angle), cy - radius*math.Cos(angle)
}

// TextAngle returns the rotation, in degrees, that keeps a label at
// the given position aligned with its radius while staying upright:
// the raw angle is flipped a half turn in the lower hemisphere so
// text never renders upside down.
func TextAngle(c *gg.CoordSpec, xn, yn float64, p Panel) float64 {
	if c.Kind == gg.CoordCartesian {
		return 0
	}
	angle, _ := angleRadius(c, xn, yn, p)
	if math.Cos(angle) < 0 {
		angle += math.Pi
	}
	return angle * 180 / math.Pi
}

func angleRadius(c *gg.CoordSpec, xn, yn float64, p Panel) (angle, radius float64) {
	thetaNorm, rNorm := xn, yn
	if c.Theta == "y" {
		thetaNorm, rNorm = yn, xn
	}
	angle = c.Start + float64(c.Direction)*thetaNorm*(c.End-c.Start)
	maxR := p.MaxRadius()
	inner := c.InnerRadius * maxR
	radius = inner + rNorm*(maxR-inner)
	return angle, radius
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
