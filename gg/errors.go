// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import "fmt"

// A ValidationError reports a problem in a chart specification:
// a missing required aesthetic, an unknown kind or transform name,
// or an unsupported parameter combination. Validation errors are
// fatal and surface to the caller before any rendering happens; they
// always carry the offending field and value for diagnosis.
type ValidationError struct {
	Field string
	Value interface{}
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid spec: %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("invalid spec: %s=%v: %s", e.Field, e.Value, e.Msg)
}

// A LimitError reports that a computation would exceed a hard
// resource bound (for example, a binning request that would produce
// a pathological number of bins). Limit errors are fatal and include
// the parameters that caused them.
type LimitError struct {
	Op  string
	Msg string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}
