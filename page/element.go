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

package page

import (
	"seehuhn.de/go/minipdf/color"
	"seehuhn.de/go/minipdf/font"
)

// Element is one of the drawable primitives [*Text], [*Rect] and [*Line].
//
// The set of element types is closed: the interface has an unexported
// method, so that code which switches over element types only needs to
// handle the three cases defined here.
//
// All coordinates are in user units, measured from the top-left corner
// of the page, with y growing downwards.  Element values carry all the
// state needed to draw them and do not depend on the document state at
// the time the page is written.
type Element interface {
	isElement()
}

// Text is a single line of text.
type Text struct {
	// X and Y give the start of the baseline.
	X, Y float64

	// Content is the UTF-8 text to show.
	Content string

	Font   font.Key
	SizePt float64
	Color  color.RGB
}

// Rect is an axis-parallel rectangle, optionally filled and/or stroked.
type Rect struct {
	// X and Y give the top-left corner.
	X, Y float64
	W, H float64

	Border bool
	Fill   bool

	DrawColor color.RGB
	FillColor color.RGB
	LineWidth float64
}

// Line is a straight line segment.
type Line struct {
	X1, Y1    float64
	X2, Y2    float64
	DrawColor color.RGB
	LineWidth float64
}

func (*Text) isElement() {}
func (*Rect) isElement() {}
func (*Line) isElement() {}
