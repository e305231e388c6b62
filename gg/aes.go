// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import "github.com/Alipsa/matrix-gg/table"

// An Aes is one binding in an aesthetic mapping. It is either a
// ColumnRef, a Literal, or an Expr; the set is closed. Bindings are
// resolved once, at layer compile time, into an accessor function,
// never re-dispatched per row.
type Aes interface {
	aes()
}

// A ColumnRef binds an aesthetic to a named column of the data
// source.
type ColumnRef struct {
	Column string
}

// A Literal binds an aesthetic to a constant value for every row.
type Literal struct {
	Value interface{}
}

// An Expr binds an aesthetic to a computed value. Fn is called with
// the row index and the data source and must be deterministic. Name
// is used in diagnostics.
type Expr struct {
	Name string
	Fn   func(i int, t *table.Table) interface{}
}

func (ColumnRef) aes() {}
func (Literal) aes()   {}
func (Expr) aes()      {}

// Col returns a ColumnRef for column name.
func Col(name string) ColumnRef { return ColumnRef{Column: name} }

// Const returns a Literal binding for val.
func Const(val interface{}) Literal { return Literal{Value: val} }

// Mapping maps aesthetic names ("x", "y", "color", "fill", "size",
// "alpha", "shape", "linetype", "label", "group", "xend", "yend",
// "xmin", "xmax", "ymin", "ymax", and free-form names such as
// "angle" or "radius" for stats that want them) to bindings.
type Mapping map[string]Aes

// An Accessor produces the value of one aesthetic for a row.
type Accessor func(i int) interface{}

// Compile resolves every binding in m against t. Column references
// to columns that do not exist are a validation error.
func (m Mapping) Compile(t *table.Table) (map[string]Accessor, error) {
	out := make(map[string]Accessor, len(m))
	for name, a := range m {
		switch a := a.(type) {
		case ColumnRef:
			if !t.HasColumn(a.Column) {
				return nil, &ValidationError{Field: "aes." + name, Value: a.Column, Msg: "no such column"}
			}
			col := t.Column(a.Column)
			out[name] = func(i int) interface{} { return col[i] }
		case Literal:
			v := a.Value
			out[name] = func(i int) interface{} { return v }
		case Expr:
			fn := a.Fn
			if fn == nil {
				return nil, &ValidationError{Field: "aes." + name, Value: a.Name, Msg: "expression has no function"}
			}
			out[name] = func(i int) interface{} { return fn(i, t) }
		default:
			return nil, &ValidationError{Field: "aes." + name, Value: a, Msg: "unknown binding kind"}
		}
	}
	return out, nil
}
