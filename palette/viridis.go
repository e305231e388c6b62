// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"strings"
)

// Anchor colors for the matplotlib viridis-family colormaps, sampled
// at nine evenly spaced positions. Intermediate values interpolate
// between neighboring anchors.

// Viridis is the default perceptually uniform sequential palette.
var Viridis = RGBGradient{Colors: []color.RGBA{
	{0x44, 0x01, 0x54, 0xff},
	{0x46, 0x2f, 0x7c, 0xff},
	{0x3b, 0x52, 0x8b, 0xff},
	{0x2c, 0x71, 0x8e, 0xff},
	{0x21, 0x90, 0x8c, 0xff},
	{0x27, 0xad, 0x81, 0xff},
	{0x5e, 0xc9, 0x62, 0xff},
	{0xaa, 0xdc, 0x32, 0xff},
	{0xfd, 0xe7, 0x25, 0xff},
}}

// Magma is a sequential palette running black-purple-orange-ivory.
var Magma = RGBGradient{Colors: []color.RGBA{
	{0x00, 0x00, 0x04, 0xff},
	{0x1d, 0x11, 0x47, 0xff},
	{0x51, 0x12, 0x7c, 0xff},
	{0x82, 0x20, 0x81, 0xff},
	{0xb5, 0x36, 0x7a, 0xff},
	{0xe5, 0x51, 0x64, 0xff},
	{0xfb, 0x84, 0x61, 0xff},
	{0xfe, 0xc2, 0x87, 0xff},
	{0xfc, 0xfd, 0xbf, 0xff},
}}

// Inferno is a sequential palette running black-red-yellow.
var Inferno = RGBGradient{Colors: []color.RGBA{
	{0x00, 0x00, 0x04, 0xff},
	{0x1f, 0x0c, 0x48, 0xff},
	{0x55, 0x0f, 0x6d, 0xff},
	{0x88, 0x22, 0x6a, 0xff},
	{0xba, 0x37, 0x55, 0xff},
	{0xe3, 0x58, 0x32, 0xff},
	{0xf9, 0x8c, 0x0a, 0xff},
	{0xf9, 0xc9, 0x32, 0xff},
	{0xfc, 0xff, 0xa4, 0xff},
}}

// Plasma is a sequential palette running blue-magenta-yellow.
var Plasma = RGBGradient{Colors: []color.RGBA{
	{0x0d, 0x08, 0x87, 0xff},
	{0x47, 0x03, 0xa8, 0xff},
	{0x79, 0x02, 0xa8, 0xff},
	{0xa8, 0x23, 0x96, 0xff},
	{0xcc, 0x4a, 0x76, 0xff},
	{0xe9, 0x74, 0x58, 0xff},
	{0xfb, 0xa2, 0x3b, 0xff},
	{0xfc, 0xd2, 0x24, 0xff},
	{0xf0, 0xf9, 0x21, 0xff},
}}

// Cividis is a color-vision-deficiency-friendly sequential palette.
var Cividis = RGBGradient{Colors: []color.RGBA{
	{0x00, 0x20, 0x51, 0xff},
	{0x23, 0x3e, 0x6c, 0xff},
	{0x4c, 0x56, 0x6c, 0xff},
	{0x6c, 0x6e, 0x72, 0xff},
	{0x8a, 0x88, 0x77, 0xff},
	{0xaa, 0xa2, 0x70, 0xff},
	{0xcc, 0xbe, 0x61, 0xff},
	{0xef, 0xdb, 0x48, 0xff},
	{0xff, 0xe9, 0x45, 0xff},
}}

// ByName resolves a continuous palette by its conventional option
// name ("viridis", "magma", "inferno", "plasma", "cividis"), the
// single-letter codes used by ggplot's scale_*_viridis ("A".."E"),
// or "" for the default. ok is false for unknown names.
func ByName(name string) (Continuous, bool) {
	switch strings.ToLower(name) {
	case "", "d", "viridis":
		return Viridis, true
	case "a", "magma":
		return Magma, true
	case "b", "inferno":
		return Inferno, true
	case "c", "plasma":
		return Plasma, true
	case "e", "cividis":
		return Cividis, true
	}
	return nil, false
}
