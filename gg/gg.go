// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gg defines the data model shared by every stage of the
// chart pipeline: layer specifications, the per-row datum records
// that flow between stages, and the render-call-scoped context.
//
// The model follows the Grammar of Graphics: a chart is a set of
// layers, each combining a geometry, a statistical transform, a
// position adjustment, and a mapping from data columns to aesthetics.
// Stages are pure functions over slices of Datum; none of them
// mutates its input.
package gg

import (
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent
// the production of a chart, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[gg] ", log.Lshortfile)
