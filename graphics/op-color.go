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
	"seehuhn.de/go/minipdf/color"
)

// This file implements functions to set the stroke and fill colors.

// SetStrokeColor sets the color to use for stroking operations.
// Nothing is written if the color is already in effect.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeColor(c color.RGB) {
	if !w.isValid("SetStrokeColor", objPage|objText) {
		return
	}
	if w.isSet(StateStrokeColor) && w.StrokeColor == c {
		return
	}
	w.StrokeColor = c
	w.Set |= StateStrokeColor

	w.Err = c.SetStroke(w.Content)
}

// SetFillColor sets the color to use for non-stroking operations,
// including text.  Nothing is written if the color is already in effect.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillColor(c color.RGB) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}
	if w.isSet(StateFillColor) && w.FillColor == c {
		return
	}
	w.FillColor = c
	w.Set |= StateFillColor

	w.Err = c.SetFill(w.Content)
}
