// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vg

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG serializes the trees rooted at nodes as an SVG document of
// the given pixel size.
func WriteSVG(w io.Writer, width, height int, nodes ...Node) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	for _, n := range nodes {
		writeNode(canvas, n)
	}
	canvas.End()
	return ew.err
}

func writeNode(canvas *svg.SVG, n Node) {
	switch n := n.(type) {
	case *Group:
		canvas.Group(n.attrs()...)
		for _, c := range n.Children {
			writeNode(canvas, c)
		}
		canvas.Gend()

	case *Path:
		canvas.Path(n.D, n.attrs()...)

	case *Rect:
		// svgo's Rect takes ints; write the element directly to
		// keep subpixel coordinates.
		writeElem(canvas, "rect", n.attrs(),
			attr("x", n.X), attr("y", n.Y), attr("width", n.W), attr("height", n.H))

	case *Circle:
		writeElem(canvas, "circle", n.attrs(),
			attr("cx", n.CX), attr("cy", n.CY), attr("r", n.R))

	case *Line:
		writeElem(canvas, "line", n.attrs(),
			attr("x1", n.X1), attr("y1", n.Y1), attr("x2", n.X2), attr("y2", n.Y2))

	case *Text:
		canvas.Writer.Write([]byte("<text " + attr("x", n.X) + " " + attr("y", n.Y)))
		for _, a := range n.attrs() {
			canvas.Writer.Write([]byte(" " + a))
		}
		canvas.Writer.Write([]byte(">"))
		xmlEscape(canvas.Writer, n.Text)
		canvas.Writer.Write([]byte("</text>\n"))
	}
}

func attr(name string, v float64) string {
	return fmt.Sprintf(`%s="%s"`, name, Num(v))
}

func writeElem(canvas *svg.SVG, tag string, attrs []string, geomAttrs ...string) {
	canvas.Writer.Write([]byte("<" + tag))
	for _, a := range geomAttrs {
		canvas.Writer.Write([]byte(" " + a))
	}
	for _, a := range attrs {
		canvas.Writer.Write([]byte(" " + a))
	}
	canvas.Writer.Write([]byte(" />\n"))
}

func xmlEscape(w io.Writer, s string) {
	for _, r := range s {
		switch r {
		case '<':
			io.WriteString(w, "&lt;")
		case '>':
			io.WriteString(w, "&gt;")
		case '&':
			io.WriteString(w, "&amp;")
		default:
			io.WriteString(w, string(r))
		}
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
