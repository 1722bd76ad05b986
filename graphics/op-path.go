// seehuhn.de/go/minipdf - a minimal library for generating PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package graphics

import (
	"fmt"

	"seehuhn.de/go/minipdf/page"
)

// This file implements the path construction and painting operators used
// by minipdf.  Paths can only be drawn outside of text objects, so the
// functions here close the current text object, if any, and reopen it
// once the path has been painted.

// DrawRect draws a rectangle element.  Depending on the Border and Fill
// flags, the rectangle is stroked ("S"), filled ("f"), or both ("B").
// If neither flag is set, the path is ended without painting ("n").
//
// This implements the PDF graphics operator "re".
func (w *Writer) DrawRect(r *page.Rect) {
	reopen := w.suspendText("DrawRect")
	if w.Err != nil {
		return
	}

	if r.Border {
		w.SetStrokeColor(r.DrawColor)
		w.SetLineWidth(r.LineWidth)
	}
	if r.Fill {
		w.SetFillColor(r.FillColor)
	}
	if w.Err != nil {
		return
	}

	var op string
	switch {
	case r.Border && r.Fill:
		op = "B"
	case r.Fill:
		op = "f"
	case r.Border:
		op = "S"
	default:
		op = "n"
	}

	x, y := w.transform(r.X, r.Y)
	_, w.Err = fmt.Fprintln(w.Content,
		coord(x), coord(y), coord(w.scale(r.W)), coord(-w.scale(r.H)), "re", op)

	if reopen {
		w.TextStart()
	}
}

// DrawLine strokes a line element.
//
// This implements the PDF graphics operators "m", "l" and "S".
func (w *Writer) DrawLine(l *page.Line) {
	reopen := w.suspendText("DrawLine")
	if w.Err != nil {
		return
	}

	w.SetStrokeColor(l.DrawColor)
	w.SetLineWidth(l.LineWidth)
	if w.Err != nil {
		return
	}

	x1, y1 := w.transform(l.X1, l.Y1)
	x2, y2 := w.transform(l.X2, l.Y2)
	_, w.Err = fmt.Fprintln(w.Content,
		coord(x1), coord(y1), "m", coord(x2), coord(y2), "l", "S")

	if reopen {
		w.TextStart()
	}
}

// suspendText ends the current text object, if there is one.
// The return value indicates whether the text object must be reopened.
func (w *Writer) suspendText(cmd string) bool {
	if !w.isValid(cmd, objPage|objText) {
		return false
	}
	if w.currentObject != objText {
		return false
	}
	w.TextEnd()
	return true
}
