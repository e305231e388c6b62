// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "image/color"

// Discrete palettes in the style of Cynthia Brewer's ColorBrewer
// qualitative sets. A discrete scale assigns category i the ith
// color; callers with more categories than colors cycle.

var brewer = map[string][]color.RGBA{
	"Set1": {
		{0xe4, 0x1a, 0x1c, 0xff},
		{0x37, 0x7e, 0xb8, 0xff},
		{0x4d, 0xaf, 0x4a, 0xff},
		{0x98, 0x4e, 0xa3, 0xff},
		{0xff, 0x7f, 0x00, 0xff},
		{0xff, 0xff, 0x33, 0xff},
		{0xa6, 0x56, 0x28, 0xff},
		{0xf7, 0x81, 0xbf, 0xff},
		{0x99, 0x99, 0x99, 0xff},
	},
	"Set2": {
		{0x66, 0xc2, 0xa5, 0xff},
		{0xfc, 0x8d, 0x62, 0xff},
		{0x8d, 0xa0, 0xcb, 0xff},
		{0xe7, 0x8a, 0xc3, 0xff},
		{0xa6, 0xd8, 0x54, 0xff},
		{0xff, 0xd9, 0x2f, 0xff},
		{0xe5, 0xc4, 0x94, 0xff},
		{0xb3, 0xb3, 0xb3, 0xff},
	},
	"Set3": {
		{0x8d, 0xd3, 0xc7, 0xff},
		{0xff, 0xff, 0xb3, 0xff},
		{0xbe, 0xba, 0xda, 0xff},
		{0xfb, 0x80, 0x72, 0xff},
		{0x80, 0xb1, 0xd3, 0xff},
		{0xfd, 0xb4, 0x62, 0xff},
		{0xb3, 0xde, 0x69, 0xff},
		{0xfc, 0xcd, 0xe5, 0xff},
		{0xd9, 0xd9, 0xd9, 0xff},
		{0xbc, 0x80, 0xbd, 0xff},
		{0xcc, 0xeb, 0xc5, 0xff},
		{0xff, 0xed, 0x6f, 0xff},
	},
	"Dark2": {
		{0x1b, 0x9e, 0x77, 0xff},
		{0xd9, 0x5f, 0x02, 0xff},
		{0x75, 0x70, 0xb3, 0xff},
		{0xe7, 0x29, 0x8a, 0xff},
		{0x66, 0xa6, 0x1e, 0xff},
		{0xe6, 0xab, 0x02, 0xff},
		{0xa6, 0x76, 0x1d, 0xff},
		{0x66, 0x66, 0x66, 0xff},
	},
	"Paired": {
		{0xa6, 0xce, 0xe3, 0xff},
		{0x1f, 0x78, 0xb4, 0xff},
		{0xb2, 0xdf, 0x8a, 0xff},
		{0x33, 0xa0, 0x2c, 0xff},
		{0xfb, 0x9a, 0x99, 0xff},
		{0xe3, 0x1a, 0x1c, 0xff},
		{0xfd, 0xbf, 0x6f, 0xff},
		{0xff, 0x7f, 0x00, 0xff},
		{0xca, 0xb2, 0xd6, 0xff},
		{0x6a, 0x3d, 0x9a, 0xff},
		{0xff, 0xff, 0x99, 0xff},
		{0xb1, 0x59, 0x28, 0xff},
	},
	"Pastel1": {
		{0xfb, 0xb4, 0xae, 0xff},
		{0xb3, 0xcd, 0xe3, 0xff},
		{0xcc, 0xeb, 0xc5, 0xff},
		{0xde, 0xcb, 0xe4, 0xff},
		{0xfe, 0xd9, 0xa6, 0xff},
		{0xff, 0xff, 0xcc, 0xff},
		{0xe5, 0xd8, 0xbd, 0xff},
		{0xfd, 0xda, 0xec, 0xff},
		{0xf2, 0xf2, 0xf2, 0xff},
	},
	"Accent": {
		{0x7f, 0xc9, 0x7f, 0xff},
		{0xbe, 0xae, 0xd4, 0xff},
		{0xfd, 0xc0, 0x86, 0xff},
		{0xff, 0xff, 0x99, 0xff},
		{0x38, 0x6c, 0xb0, 0xff},
		{0xf0, 0x02, 0x7f, 0xff},
		{0xbf, 0x5b, 0x17, 0xff},
		{0x66, 0x66, 0x66, 0xff},
	},
}

// Brewer returns the named qualitative palette. Unknown names report
// ok == false; callers typically fall back to Brewer("Set1").
func Brewer(name string) (colors []color.RGBA, ok bool) {
	colors, ok = brewer[name]
	return
}
