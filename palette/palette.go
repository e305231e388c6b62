// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides discrete and continuous color palettes
// and ways to map values onto them.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// A Continuous palette is a function from [0, 1] to colors. It may
// be sequential or diverging.
type Continuous interface {
	Map(x float64) color.RGBA
}

// RGBGradient is a Continuous palette that linearly interpolates
// between a sequence of evenly spaced sRGB anchor colors.
type RGBGradient struct {
	Colors []color.RGBA
}

// Map returns the color at position x in [0, 1]. Values outside
// [0, 1] clamp to the first or last anchor.
func (g RGBGradient) Map(x float64) color.RGBA {
	if len(g.Colors) == 1 || math.IsNaN(x) || x <= 0 {
		return g.Colors[0]
	}
	if x >= 1 {
		return g.Colors[len(g.Colors)-1]
	}
	n := x * float64(len(g.Colors)-1)
	ip, fr := math.Modf(n)
	i := int(ip)
	if i >= len(g.Colors)-1 {
		return g.Colors[len(g.Colors)-1]
	}
	return blendRGBA(g.Colors[i], g.Colors[i+1], fr)
}

// blendRGBA linearly interpolates between two sRGB colors. The
// pipeline only blends between neighboring anchors of the same
// palette, so plain componentwise interpolation is close enough and
// keeps the mapping cheap and exactly reproducible.
func blendRGBA(a, b color.RGBA, x float64) color.RGBA {
	blend8 := func(a, b uint8) uint8 {
		c := float64(a)*(1-x) + float64(b)*x
		if c <= 0 {
			return 0
		} else if c >= 255 {
			return 255
		}
		return uint8(c + 0.5)
	}
	return color.RGBA{
		blend8(a.R, b.R),
		blend8(a.G, b.G),
		blend8(a.B, b.B),
		blend8(a.A, b.A),
	}
}

// Hex returns the #rrggbb form of c. The alpha channel is ignored;
// opacity is applied separately as a hex suffix (see WithAlpha) so
// that styles stay in CSS2-compatible color forms unless the caller
// asks for alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha appends a two-digit hex alpha channel to a #rrggbb
// color. alpha is clamped to [0, 1]. If alpha is 1 or NaN, hex is
// returned unchanged.
func WithAlpha(hex string, alpha float64) string {
	if math.IsNaN(alpha) || alpha >= 1 {
		return hex
	}
	if alpha < 0 {
		alpha = 0
	}
	return fmt.Sprintf("%s%02x", hex, uint8(alpha*255+0.5))
}

// Parse resolves a color literal: "#rgb" and "#rrggbb" forms, or an
// SVG 1.1 color name ("red", "steelblue"). ok is false for anything
// else.
func Parse(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		hexDigit := func(b byte) (uint8, bool) {
			switch {
			case '0' <= b && b <= '9':
				return b - '0', true
			case 'a' <= b && b <= 'f':
				return b - 'a' + 10, true
			}
			return 0, false
		}
		switch len(s) {
		case 4:
			var out [3]uint8
			for i := 0; i < 3; i++ {
				d, ok := hexDigit(s[i+1])
				if !ok {
					return color.RGBA{}, false
				}
				out[i] = d<<4 | d
			}
			return color.RGBA{out[0], out[1], out[2], 255}, true
		case 7:
			var out [3]uint8
			for i := 0; i < 3; i++ {
				hi, ok1 := hexDigit(s[2*i+1])
				lo, ok2 := hexDigit(s[2*i+2])
				if !ok1 || !ok2 {
					return color.RGBA{}, false
				}
				out[i] = hi<<4 | lo
			}
			return color.RGBA{out[0], out[1], out[2], 255}, true
		}
		return color.RGBA{}, false
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return color.RGBA{}, false
}
