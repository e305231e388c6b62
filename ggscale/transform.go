// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggscale implements the scale engine: training domains from
// data, transform strategies, and the mapping of data-space values
// to normalized drawing-space values.
package ggscale

import (
	"math"

	"github.com/Alipsa/matrix-gg/gg"
)

// A Transform is a pluggable forward/inverse value transformation
// applied by a continuous scale before normalization. Implementations
// are value objects; a scale holds one rather than there being one
// scale type per transform.
//
// Apply reports ok == false for values outside the transform's
// domain (log10 of a non-positive value, sqrt of a negative value).
// Such values are dropped from the stage output rather than mapped.
// For every v with Apply(v) ok, Invert(Apply(v)) == v up to floating
// point error.
type Transform interface {
	// ID returns the registry name of this transform.
	ID() string

	Apply(v float64) (float64, bool)
	Invert(v float64) float64
}

type identityTrans struct{}

func (identityTrans) ID() string                      { return "identity" }
func (identityTrans) Apply(v float64) (float64, bool) { return v, true }
func (identityTrans) Invert(v float64) float64        { return v }

type log10Trans struct{}

func (log10Trans) ID() string { return "log10" }

func (log10Trans) Apply(v float64) (float64, bool) {
	if v <= 0 {
		return math.NaN(), false
	}
	return math.Log10(v), true
}

func (log10Trans) Invert(v float64) float64 { return math.Pow(10, v) }

type sqrtTrans struct{}

func (sqrtTrans) ID() string { return "sqrt" }

func (sqrtTrans) Apply(v float64) (float64, bool) {
	if v < 0 {
		return math.NaN(), false
	}
	return math.Sqrt(v), true
}

func (sqrtTrans) Invert(v float64) float64 { return v * v }

type reverseTrans struct{}

func (reverseTrans) ID() string                      { return "reverse" }
func (reverseTrans) Apply(v float64) (float64, bool) { return -v, true }
func (reverseTrans) Invert(v float64) float64        { return -v }

// dateTrans is an identity at the numeric level: date values reach
// the scale already coerced to seconds. Formatting dates is a
// rendering concern, not a scale concern.
type dateTrans struct{}

func (dateTrans) ID() string                      { return "date" }
func (dateTrans) Apply(v float64) (float64, bool) { return v, true }
func (dateTrans) Invert(v float64) float64        { return v }

// Func is a user-supplied transform built from a forward/inverse
// function pair. Fwd may report ok == false for out-of-domain
// values; Inv must invert Fwd wherever Fwd is defined.
type Func struct {
	Name string
	Fwd  func(v float64) (float64, bool)
	Inv  func(v float64) float64
}

func (f Func) ID() string { return f.Name }

func (f Func) Apply(v float64) (float64, bool) { return f.Fwd(v) }

func (f Func) Invert(v float64) float64 { return f.Inv(v) }

// Identity is the default transform.
var Identity Transform = identityTrans{}

var transforms = map[string]Transform{
	"identity": identityTrans{},
	"log10":    log10Trans{},
	"sqrt":     sqrtTrans{},
	"reverse":  reverseTrans{},
	"date":     dateTrans{},
}

// TransformByID resolves a transform by registry name. Unknown names
// are a validation error.
func TransformByID(id string) (Transform, error) {
	if id == "" {
		return Identity, nil
	}
	if t, ok := transforms[id]; ok {
		return t, nil
	}
	return nil, &gg.ValidationError{Field: "transform", Value: id, Msg: "unknown transform"}
}
