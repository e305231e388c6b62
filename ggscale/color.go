// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggscale

import (
	"image/color"
	"math"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/palette"
)

// A ColorScale maps the color or fill aesthetic to CSS colors. It
// trains like any other scale: categorical values get a discrete
// palette, numeric values get a continuous palette over the trained
// domain, and values that already parse as colors ("red", "#1f78b4")
// pass through untouched.
type ColorScale struct {
	// Domain carries the trained domain; its Trans applies to
	// numeric values before palette lookup.
	Domain *Scale

	// Discrete is the palette for categorical data. Categories
	// beyond its length cycle.
	Discrete []color.RGBA

	// Continuous is the palette for numeric data.
	Continuous palette.Continuous

	// Begin and End restrict the continuous palette to a
	// sub-interval, and Direction = -1 flips it. The zero value
	// means the full palette, forward.
	Begin, End float64
	Direction  int

	// Alpha, when set (not NaN), is applied to every produced
	// color as a hex-alpha suffix.
	Alpha float64
}

// NewColorScale returns a color scale for aes using the named
// palettes. discreteName is a brewer set name ("" means Set1);
// continuousName is a viridis-family name ("" means viridis).
// Unknown palette names are a validation error.
func NewColorScale(aes, discreteName, continuousName string) (*ColorScale, error) {
	if discreteName == "" {
		discreteName = "Set1"
	}
	disc, ok := palette.Brewer(discreteName)
	if !ok {
		return nil, &gg.ValidationError{Field: "palette", Value: discreteName, Msg: "unknown discrete palette"}
	}
	cont, ok := palette.ByName(continuousName)
	if !ok {
		return nil, &gg.ValidationError{Field: "palette", Value: continuousName, Msg: "unknown continuous palette"}
	}
	return &ColorScale{
		Domain:     New(aes),
		Discrete:   disc,
		Continuous: cont,
		Begin:      0,
		End:        1,
		Direction:  1,
		Alpha:      math.NaN(),
	}, nil
}

// Gradient replaces the continuous palette with a two-color
// gradient. low and high are color literals; bad literals are a
// validation error.
func (c *ColorScale) Gradient(low, high string) error {
	lo, ok := palette.Parse(low)
	if !ok {
		return &gg.ValidationError{Field: "gradient.low", Value: low, Msg: "not a color"}
	}
	hi, ok := palette.Parse(high)
	if !ok {
		return &gg.ValidationError{Field: "gradient.high", Value: high, Msg: "not a color"}
	}
	c.Continuous = palette.RGBGradient{Colors: []color.RGBA{lo, hi}}
	return nil
}

// Train extends the scale with one data-space value. Color literals
// train nothing (they bypass the palette); numeric strings train
// the continuous domain; everything else is a category.
func (c *ColorScale) Train(v string, numeric float64, isNumeric bool) {
	if v != "" {
		if _, ok := palette.Parse(v); ok {
			return
		}
		c.Domain.TrainCats(v)
		return
	}
	if isNumeric {
		c.Domain.TrainFloats(numeric)
	}
}

// Map resolves one data-space value to a CSS color. Literal colors
// pass through (with alpha applied); categories use the discrete
// palette in trained order; numerics normalize over the trained
// domain and interpolate the continuous palette. ok is false when
// the value carries nothing.
func (c *ColorScale) Map(v string, numeric float64, isNumeric bool) (string, bool) {
	if v != "" {
		if lit, ok := palette.Parse(v); ok {
			return c.hex(lit), true
		}
		if i := c.Domain.LevelIndex(v); i >= 0 {
			return c.hex(c.Discrete[i%len(c.Discrete)]), true
		}
		return "", false
	}
	if !isNumeric || math.IsNaN(numeric) {
		return "", false
	}
	norm := c.Domain.Norm(numeric)
	if math.IsNaN(norm) {
		return "", false
	}
	return c.hex(c.Continuous.Map(c.adjust(norm))), true
}

// adjust applies begin/end and direction to a normalized palette
// position and clamps to [0, 1].
func (c *ColorScale) adjust(x float64) float64 {
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	begin, end := c.Begin, c.End
	if begin == 0 && end == 0 {
		end = 1
	}
	if c.Direction < 0 {
		x = 1 - x
	}
	return begin + x*(end-begin)
}

func (c *ColorScale) hex(col color.RGBA) string {
	return palette.WithAlpha(palette.Hex(col), c.Alpha)
}
