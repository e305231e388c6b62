// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"
	"testing"
	"time"
)

func TestBuilder(t *testing.T) {
	tab := new(Builder).
		AddFloats("x", []float64{1, 2, 3}).
		AddStrings("g", []string{"a", "b", "a"}).
		MustDone()

	if tab.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tab.Len())
	}
	if want := []string{"x", "g"}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Errorf("Columns() = %v, want %v", tab.Columns(), want)
	}
	if v, ok := tab.Float("x", 1); !ok || v != 2 {
		t.Errorf("Float(x, 1) = %v, %v, want 2, true", v, ok)
	}
	if s := tab.String("g", 2); s != "a" {
		t.Errorf("String(g, 2) = %q, want %q", s, "a")
	}
	if !tab.HasColumn("g") || tab.HasColumn("nope") {
		t.Errorf("HasColumn misbehaved")
	}
}

func TestBuilderMismatchedLengths(t *testing.T) {
	_, err := new(Builder).
		AddFloats("x", []float64{1, 2, 3}).
		AddFloats("y", []float64{1}).
		Done()
	if err == nil {
		t.Errorf("Done() = nil error, want length mismatch error")
	}
}

func TestToFloat(t *testing.T) {
	when := time.Unix(1700000000, 0)
	tests := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{1.5, 1.5, true},
		{int(7), 7, true},
		{int64(-2), -2, true},
		{uint8(255), 255, true},
		{"3.25", 3.25, true},
		{"12", 12, true},
		{true, 1, true},
		{when, 1700000000, true},
		{"abc", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{[]int{1}, 0, false},
	}
	for _, test := range tests {
		got, ok := ToFloat(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("ToFloat(%#v) = %v, %v, want %v, %v", test.in, got, ok, test.want, test.ok)
		}
	}
}
