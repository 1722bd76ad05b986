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

package document

import (
	"io"
	"net/http"
)

// Generator is the set of operations which report and invoice code uses to
// lay out documents.  Code written against Generator can be combined with
// any implementation chosen at construction time; [Document] is the
// implementation in this package.
type Generator interface {
	AddPage()
	PageNo() int

	SetMargins(left, top float64, right ...float64)
	SetAutoPageBreak(enabled bool, bottom float64)
	SetFont(family, style string, size float64)
	SetFontSize(size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetLineWidth(width float64)

	GetX() float64
	GetY() float64
	SetX(x float64)
	SetY(y float64)
	SetXY(x, y float64)
	GetStringWidth(s string) float64

	Cell(w, h float64, text string, border, newLine bool, align Align, fill bool)
	MultiCell(w, h float64, text string, border bool, align Align, fill bool)
	Ln(h ...float64)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, style string)
	Text(x, y float64, text string)

	Output(dest Destination, name string, rw http.ResponseWriter) ([]byte, error)
	io.WriterTo
}

var _ Generator = (*Document)(nil)

// Factory creates a new Generator.
type Factory func(o Orientation, unit string, size PageSize) (Generator, error)

// NewGenerator is a Factory which creates documents with default options.
func NewGenerator(o Orientation, unit string, size PageSize) (Generator, error) {
	d, err := New(o, unit, size, nil)
	if err != nil {
		return nil, err
	}
	return d, nil
}

var _ Factory = NewGenerator
