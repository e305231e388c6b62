// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ggrender renders a chart description as SVG.
//
// ggrender takes a CSV data file and a JSON chart description. The
// description names the layers (geometry, statistic, position,
// parameters, and the mapping from CSV columns to aesthetics) and
// the chart-wide coordinate, scale, facet, and size configuration.
// The rendered SVG goes to standard output or to the -o file.
//
// A minimal description:
//
//	{"layers": [{"geom": "point",
//	             "aes": {"x": {"column": "date"},
//	                     "y": {"column": "value"},
//	                     "color": {"column": "series"}}}]}
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Alipsa/matrix-gg/gg"
	"github.com/Alipsa/matrix-gg/plot"
	"github.com/Alipsa/matrix-gg/table"
)

func main() {
	log.SetPrefix("ggrender: ")
	log.SetFlags(0)

	var (
		flagData = flag.String("data", "", "read CSV data from `file` (required)")
		flagOut  = flag.String("o", "", "write SVG to `file` (default: stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] chart.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *flagData == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := readCSV(*flagData)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := readSpec(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	p, err := spec.build(data)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := p.WriteSVG(out); err != nil {
		log.Fatal(err)
	}
}

// readCSV loads a CSV file with a header row into a table. A column
// whose every value parses as a number becomes a float column;
// anything else stays a string column.
func readCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: no header row", path)
	}
	header, body := recs[0], recs[1:]

	b := new(table.Builder)
	for ci, name := range header {
		floats := make([]float64, len(body))
		numeric := true
		for ri, rec := range body {
			v, err := strconv.ParseFloat(rec[ci], 64)
			if err != nil {
				numeric = false
				break
			}
			floats[ri] = v
		}
		if numeric {
			b.AddFloats(name, floats)
			continue
		}
		strs := make([]string, len(body))
		for ri, rec := range body {
			strs[ri] = rec[ci]
		}
		b.AddStrings(name, strs)
	}
	return b.Done()
}

// chartSpec is the JSON form of a chart description.
type chartSpec struct {
	Layers []layerSpec `json:"layers"`

	Coord struct {
		Kind        string  `json:"kind"`
		Theta       string  `json:"theta"`
		Start       float64 `json:"start"`
		End         float64 `json:"end"`
		Direction   int     `json:"direction"`
		InnerRadius float64 `json:"innerRadius"`
		Clip        bool    `json:"clip"`
	} `json:"coord"`

	XTransform        string `json:"xTransform"`
	YTransform        string `json:"yTransform"`
	DiscretePalette   string `json:"discretePalette"`
	ContinuousPalette string `json:"continuousPalette"`

	FacetBy   string `json:"facetBy"`
	FacetCols int    `json:"facetCols"`

	Width  int    `json:"width"`
	Height int    `json:"height"`
	Legend string `json:"legend"`
	IDs    *bool  `json:"ids"`
	Prefix string `json:"idPrefix"`
}

type layerSpec struct {
	Geom     string                 `json:"geom"`
	Stat     string                 `json:"stat"`
	Position string                 `json:"position"`
	Params   map[string]interface{} `json:"params"`
	Aes      map[string]aesSpec     `json:"aes"`
}

// aesSpec is one aesthetic binding: a column reference or a literal.
type aesSpec struct {
	Column string      `json:"column"`
	Value  interface{} `json:"value"`
}

func readSpec(path string) (*chartSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var spec chartSpec
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return &spec, nil
}

// build turns the JSON description into a Plot.
func (s *chartSpec) build(data *table.Table) (*plot.Plot, error) {
	p := plot.New(data)
	p.XTransform = s.XTransform
	p.YTransform = s.YTransform
	p.DiscretePalette = s.DiscretePalette
	p.ContinuousPalette = s.ContinuousPalette
	p.FacetBy = s.FacetBy
	p.FacetCols = s.FacetCols
	if s.Width > 0 {
		p.Size.Width = s.Width
	}
	if s.Height > 0 {
		p.Size.Height = s.Height
	}
	if s.Legend != "" {
		p.Size.Legend = s.Legend
	}
	if s.IDs != nil {
		p.Style.IDs = *s.IDs
	}
	p.Style.IDPrefix = s.Prefix

	if s.Coord.Kind != "" {
		kind, err := gg.ParseCoord(s.Coord.Kind)
		if err != nil {
			return nil, err
		}
		p.Coord = gg.CoordSpec{
			Kind:        kind,
			Theta:       s.Coord.Theta,
			Start:       s.Coord.Start,
			End:         s.Coord.End,
			Direction:   s.Coord.Direction,
			InnerRadius: s.Coord.InnerRadius,
			Clip:        s.Coord.Clip,
		}
	}

	for i, ls := range s.Layers {
		l, err := ls.build()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %v", i, err)
		}
		p.Add(l)
	}
	return p, nil
}

func (s *layerSpec) build() (gg.LayerSpec, error) {
	var l gg.LayerSpec
	var err error
	if s.Geom != "" {
		if l.Geom, err = gg.ParseGeom(s.Geom); err != nil {
			return l, err
		}
	}
	if s.Stat != "" {
		if l.Stat, err = gg.ParseStat(s.Stat); err != nil {
			return l, err
		}
	}
	if s.Position != "" {
		if l.Position, err = gg.ParsePosition(s.Position); err != nil {
			return l, err
		}
	}
	l.Params = gg.Params(s.Params)
	l.Aes = make(gg.Mapping, len(s.Aes))
	for name, a := range s.Aes {
		switch {
		case a.Column != "":
			l.Aes[name] = gg.Col(a.Column)
		case a.Value != nil:
			l.Aes[name] = gg.Const(a.Value)
		default:
			return l, fmt.Errorf("aes %q has neither column nor value", name)
		}
	}
	return l, nil
}
