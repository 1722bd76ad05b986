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
	"io"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/minipdf/internal/float"
)

// MinLineWidth is the smallest line width, in PDF points, written to a
// content stream.  Smaller values are rounded up, to avoid lines which are
// invisible on some output devices.
const MinLineWidth = 0.1

// Writer writes a PDF content stream.
type Writer struct {
	Content io.Writer
	Err     error

	State

	// ctm maps user coordinates to PDF coordinates.
	ctm matrix.Matrix

	currentObject objectType
}

type objectType byte

const (
	objPage objectType = 1 << iota
	objText
)

func (ot objectType) String() string {
	switch ot {
	case objPage:
		return "page"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", int(ot))
	}
}

// NewWriter allocates a new Writer.  User units are converted to PDF
// points by multiplying with k, and the y-axis is flipped so that user y
// coordinates are measured downwards from the top of a page which is
// pageHeight user units tall.
func NewWriter(out io.Writer, k, pageHeight float64) *Writer {
	return &Writer{
		Content:       out,
		ctm:           matrix.Matrix{k, 0, 0, -k, 0, 0}.Mul(matrix.Translate(0, pageHeight*k)),
		currentObject: objPage,
	}
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

// transform converts a position in user coordinates to PDF coordinates.
func (w *Writer) transform(x, y float64) (float64, float64) {
	return w.ctm.Apply(x, y)
}

// scale converts a length in user units to PDF points.
func (w *Writer) scale(l float64) float64 {
	return l * w.ctm[0]
}

func coord(x float64) string {
	return float.Format(x, 2)
}
