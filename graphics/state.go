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
	"seehuhn.de/go/minipdf/font"
)

// State holds the graphics parameters which have been set in the content
// stream so far.
type State struct {
	Font     font.Key
	FontSize float64

	FillColor   color.RGB
	StrokeColor color.RGB

	// LineWidth is in PDF points.
	LineWidth float64

	// Set records which of the fields above hold values that have been
	// written to the content stream.
	Set StateBits
}

// StateBits is used to indicate which fields of a [State] are set.
type StateBits uint8

// Possible values for StateBits.
const (
	StateFont StateBits = 1 << iota
	StateFillColor
	StateStrokeColor
	StateLineWidth
)

// stateTextBoundary lists the parameters which are forgotten whenever the
// outer text object is closed or reopened.
const stateTextBoundary = StateFont | StateFillColor | StateStrokeColor

func (s *State) isSet(bits StateBits) bool {
	return s.Set&bits == bits
}
