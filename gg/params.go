// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import "github.com/Alipsa/matrix-gg/table"

// Params is the free-form parameter map of a layer ("bins",
// "method", "level", ...). Getters take a default and return it when
// the key is absent or has an unusable type, so stats stay usable
// with zero configuration.
type Params map[string]interface{}

// Float returns the parameter key as a float64, or def.
func (p Params) Float(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		if f, ok := table.ToFloat(v); ok {
			return f
		}
	}
	return def
}

// Int returns the parameter key as an int, or def.
func (p Params) Int(key string, def int) int {
	if v, ok := p[key]; ok {
		if f, ok := table.ToFloat(v); ok {
			return int(f)
		}
	}
	return def
}

// String returns the parameter key as a string, or def.
func (p Params) String(key, def string) string {
	if v, ok := p[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Bool returns the parameter key as a bool, or def.
func (p Params) Bool(key string, def bool) bool {
	if v, ok := p[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Floats returns the parameter key as a []float64, or def. It
// accepts []float64 directly or any []interface{} whose elements
// coerce to numbers.
func (p Params) Floats(key string, def []float64) []float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch v := v.(type) {
	case []float64:
		return v
	case []interface{}:
		out := make([]float64, 0, len(v))
		for _, e := range v {
			f, ok := table.ToFloat(e)
			if !ok {
				return def
			}
			out = append(out, f)
		}
		return out
	}
	return def
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}
