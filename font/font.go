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
	"unicode/utf8"
)

// Style is a combination of font style flags.
type Style uint8

// The supported style flags.
const (
	Bold Style = 1 << iota
	Italic
)

// ParseStyle converts a style string like "B", "I" or "BI" to a Style.
// Letters are case-insensitive; "U" (underline) and unknown letters are
// ignored.
func ParseStyle(s string) Style {
	var st Style
	s = strings.ToUpper(s)
	if strings.ContainsRune(s, 'B') {
		st |= Bold
	}
	if strings.ContainsRune(s, 'I') {
		st |= Italic
	}
	return st
}

func (st Style) String() string {
	var s string
	if st&Bold != 0 {
		s += "B"
	}
	if st&Italic != 0 {
		s += "I"
	}
	return s
}

// Key is the name under which a font is listed in the page resources.
type Key string

// The three font resources of a document.
const (
	KeyPlain  Key = "F1"
	KeyBold   Key = "F2"
	KeyItalic Key = "F3"
)

// Keys lists the font resources in the order in which they are written
// to the PDF file.
var Keys = []Key{KeyPlain, KeyBold, KeyItalic}

// KeyFor returns the font resource used for the given style.
//
// There is no bold-italic resource.  If both flags are set, the bold face
// is used.
func KeyFor(st Style) Key {
	switch {
	case st&Bold != 0:
		return KeyBold
	case st&Italic != 0:
		return KeyItalic
	default:
		return KeyPlain
	}
}

func (k Key) index() int {
	switch k {
	case KeyBold:
		return 1
	case KeyItalic:
		return 2
	default:
		return 0
	}
}

// AverageWidth is the estimated width of a character, as a fraction of
// the font size.
const AverageWidth = 0.5

// Width estimates the width of s, in PDF points, when set in a font of the
// given size.  All characters are assumed to have the same width.
func Width(s string, sizePt float64) float64 {
	return float64(utf8.RuneCountInString(s)) * AverageWidth * sizePt
}
