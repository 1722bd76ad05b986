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

// Package graphics compiles page elements into PDF content streams.
//
// A content stream produced by this package consists of a single outer
// text object.  Text elements are shown inside the text object.  Before a
// rectangle or a line is drawn, the text object is closed, and a new text
// object is opened after the path has been painted.
//
// The [Writer] remembers the font, the colors and the line width which are
// currently set, and only emits operators to change these when needed.
// Whenever the text object is closed or reopened, the cached font and
// colors are forgotten, so that the next text element sets them again.
//
// Positions are given in user units with the origin at the top-left
// corner of the page.  The conversion to PDF coordinates happens here and
// nowhere else.
package graphics
