// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/table"
)

var nanv = math.NaN()

// materialize resolves a layer's aesthetic mapping against the data
// and produces one datum per source row. Positional values that do
// not coerce to numbers become categories on x and y and are dropped
// on the other positional aesthetics; free-form aesthetics ("angle",
// "radius", "weight") land in the meta bag for statistics that want
// them.
func materialize(t *table.Table, l *gg.LayerSpec) ([]gg.Datum, error) {
	acc, err := l.Aes.Compile(t)
	if err != nil {
		return nil, err
	}
	n := 0
	if t != nil {
		n = t.Len()
	}
	rows := make([]gg.Datum, 0, n)
	for i := 0; i < n; i++ {
		d := gg.NewDatum()
		d.Row = i
		for name, a := range acc {
			v := a(i)
			switch name {
			case "x":
				if f, ok := table.ToFloat(v); ok {
					d.X = f
				} else {
					d.XCat = str(v)
				}
			case "y":
				if f, ok := table.ToFloat(v); ok {
					d.Y = f
				} else {
					d.YCat = str(v)
				}
			case "xend":
				d.XEnd = numOrNaN(v)
			case "yend":
				d.YEnd = numOrNaN(v)
			case "xmin":
				d.XMin = numOrNaN(v)
			case "xmax":
				d.XMax = numOrNaN(v)
			case "ymin":
				d.YMin = numOrNaN(v)
			case "ymax":
				d.YMax = numOrNaN(v)
			case "color":
				setColor(&d.Color, "colorNum", &d, v)
			case "fill":
				setColor(&d.Fill, "fillNum", &d, v)
			case "size":
				d.Size = numOrNaN(v)
			case "alpha":
				d.Alpha = numOrNaN(v)
			case "shape":
				d.Shape = str(v)
			case "linetype":
				d.LineType = str(v)
			case "label":
				d.Label = str(v)
			case "group":
				d.Group = str(v)
			default:
				if f, ok := table.ToFloat(v); ok {
					d.SetMeta(name, f)
				}
			}
		}
		rows = append(rows, d)
	}
	return rows, nil
}

// setColor stores a color aesthetic: strings (categories or color
// literals) keep their text, numbers go into the meta bag for the
// continuous color scale.
func setColor(dst *string, metaKey string, d *gg.Datum, v interface{}) {
	if s, ok := v.(string); ok {
		*dst = s
		return
	}
	if f, ok := table.ToFloat(v); ok {
		d.SetMeta(metaKey, f)
		return
	}
	*dst = str(v)
}

func numOrNaN(v interface{}) float64 {
	if f, ok := table.ToFloat(v); ok {
		return f
	}
	return nanv
}

func str(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
