// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides the tabular data source consumed by the
// chart pipeline.
//
// A Table is a set of named, ordered columns of equal length. Values
// are untyped; consumers that need numbers use the best-effort
// coercion in ToFloat, which reports failure instead of panicking so
// that rows with bad data can be dropped rather than aborting a
// render.
package table

import (
	"fmt"
	"strconv"
	"time"
)

// A Table is an immutable set of named columns. Columns keep the
// order in which they were added, and every column has the same
// number of rows.
type Table struct {
	cols  []string
	data  map[string][]interface{}
	nrows int
}

// A Builder constructs a Table column by column.
type Builder struct {
	t   Table
	err error
}

// Add adds a column named name with the given values. If a column
// with a different number of rows was already added, the error is
// reported by Done.
func (b *Builder) Add(name string, values []interface{}) *Builder {
	if b.t.data == nil {
		b.t.data = make(map[string][]interface{})
	}
	if _, ok := b.t.data[name]; ok {
		b.err = fmt.Errorf("table: duplicate column %q", name)
		return b
	}
	if len(b.t.cols) > 0 && len(values) != b.t.nrows {
		b.err = fmt.Errorf("table: column %q has %d rows; want %d", name, len(values), b.t.nrows)
		return b
	}
	b.t.cols = append(b.t.cols, name)
	b.t.data[name] = values
	b.t.nrows = len(values)
	return b
}

// AddFloats adds a numeric column.
func (b *Builder) AddFloats(name string, values []float64) *Builder {
	vs := make([]interface{}, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return b.Add(name, vs)
}

// AddStrings adds a string column.
func (b *Builder) AddStrings(name string, values []string) *Builder {
	vs := make([]interface{}, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return b.Add(name, vs)
}

// Done returns the constructed Table.
func (b *Builder) Done() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := b.t
	b.t = Table{}
	return &t, nil
}

// MustDone is like Done but panics on error. It is intended for
// tests and literal tables.
func (b *Builder) MustDone() *Table {
	t, err := b.Done()
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.nrows
}

// Columns returns the column names in the order they were added.
func (t *Table) Columns() []string {
	return t.cols
}

// HasColumn reports whether the table has a column named name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.data[name]
	return ok
}

// Column returns the values of column name, or nil if there is no
// such column.
func (t *Table) Column(name string) []interface{} {
	return t.data[name]
}

// Value returns the value at column name, row i, or nil if the
// column does not exist.
func (t *Table) Value(name string, i int) interface{} {
	col, ok := t.data[name]
	if !ok {
		return nil
	}
	return col[i]
}

// Float returns the value at column name, row i coerced to float64.
// ok is false if the column is missing or the value is not numeric.
func (t *Table) Float(name string, i int) (v float64, ok bool) {
	return ToFloat(t.Value(name, i))
}

// String returns the value at column name, row i rendered as a
// string. Missing columns and nil values yield "".
func (t *Table) String(name string, i int) string {
	v := t.Value(name, i)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ToFloat converts v to a float64 if possible. Numeric types convert
// directly, numeric strings are parsed, and time values convert to
// Unix seconds. Anything else reports ok == false.
func ToFloat(v interface{}) (f float64, ok bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case time.Time:
		return float64(v.Unix()), true
	case nil:
		return 0, false
	}
	return 0, false
}
