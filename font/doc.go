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

// Package font implements the three core font resources used by minipdf
// documents.
//
// Documents never embed font programs.  Instead, every document refers to
// three of the standard 14 PDF fonts (a plain, a bold and an italic face
// of one family), which every PDF viewer provides.  Text is encoded using
// WinAnsiEncoding, so only characters in the Windows-1252 character set
// can be shown.
//
// Glyph widths are not available.  Text widths are estimated using a
// fixed average character width of half the font size, see [Width].
package font
