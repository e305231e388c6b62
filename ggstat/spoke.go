// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"math"

	"github.com/Alipsa/matrix-gg/gg"
)

// Spoke turns each point into a segment radiating from it: xend =
// x + radius*cos(angle), yend = y + radius*sin(angle). Angle and
// radius come from the row's meta bag (the angle and radius
// aesthetics) when mapped, else from the parameters. Angles are in
// radians.
type Spoke struct {
	// Angle is the default angle for rows without a mapped angle.
	Angle float64

	// Radius is the default radius for rows without a mapped
	// radius. The zero value is a zero-length spoke, so callers
	// normally set it.
	Radius float64
}

func (s Spoke) Apply(rows []gg.Datum) ([]gg.Datum, error) {
	var out []gg.Datum
	for i := range rows {
		d := rows[i].Clone()
		if !gg.Finite(d.X) || !gg.Finite(d.Y) {
			continue
		}
		angle := d.GetMeta("angle")
		if !gg.Set(angle) {
			angle = s.Angle
		}
		radius := d.GetMeta("radius")
		if !gg.Set(radius) {
			radius = s.Radius
		}
		d.XEnd = d.X + radius*math.Cos(angle)
		d.YEnd = d.Y + radius*math.Sin(angle)
		out = append(out, d)
	}
	return out, nil
}
