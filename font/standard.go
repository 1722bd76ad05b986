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

package font

import (
	"strings"

	pdf "seehuhn.de/go/minipdf"
)

// Family is one of the three standard PDF font families.
type Family string

// The standard font families.
const (
	Helvetica Family = "helvetica"
	Times     Family = "times"
	Courier   Family = "courier"
)

// NormalizeFamily converts a user-supplied family name to its canonical
// lower-case form.  "arial" is treated as an alias for "helvetica".
// The second return value reports whether the result is one of the
// standard families.
func NormalizeFamily(name string) (Family, bool) {
	fam := Family(strings.ToLower(strings.TrimSpace(name)))
	switch fam {
	case "arial":
		return Helvetica, true
	case Helvetica, Times, Courier:
		return fam, true
	}
	return fam, false
}

// baseFonts lists the PostScript names of the plain, bold and italic faces
// of each family, in the order of [Keys].
var baseFonts = map[Family][3]pdf.Name{
	Helvetica: {"Helvetica", "Helvetica-Bold", "Helvetica-Oblique"},
	Times:     {"Times-Roman", "Times-Bold", "Times-Italic"},
	Courier:   {"Courier", "Courier-Bold", "Courier-Oblique"},
}

// BaseFont returns the PostScript name of the face of fam which is
// selected by key.  Unknown families fall back to Helvetica.
func BaseFont(fam Family, key Key) pdf.Name {
	names, ok := baseFonts[fam]
	if !ok {
		names = baseFonts[Helvetica]
	}
	return names[key.index()]
}

// Dict returns the font dictionary for the face of fam selected by key.
func Dict(fam Family, key Key) pdf.Dict {
	return pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": BaseFont(fam, key),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
}
