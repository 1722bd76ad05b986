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

	pdf "seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/font"
	"seehuhn.de/go/minipdf/internal/float"
	"seehuhn.de/go/minipdf/page"
)

// This file implements the text operators used by minipdf.

// TextStart starts a new text object.
// The cached font and colors are forgotten.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText
	w.Set &^= stateTextBoundary

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
// The cached font and colors are forgotten.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage
	w.Set &^= stateTextBoundary

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.  Nothing is written if the
// font and size are already in effect.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(key font.Key, size float64) {
	if !w.isValid("TextSetFont", objText) {
		return
	}
	if w.isSet(StateFont) && w.Font == key && w.FontSize == size {
		return
	}
	w.Font = key
	w.FontSize = size
	w.Set |= StateFont

	w.Err = pdf.Name(key).PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintf(w.Content, " %s Tf\n", float.Format(size, 2))
}

// TextShow shows a text element.  The text is positioned absolutely,
// by setting the text matrix.
//
// This implements the PDF graphics operators "Tm" and "Tj".
func (w *Writer) TextShow(t *page.Text) {
	if !w.isValid("TextShow", objText) {
		return
	}

	w.TextSetFont(t.Font, t.SizePt)
	w.SetFillColor(t.Color)
	if w.Err != nil {
		return
	}

	x, y := w.transform(t.X, t.Y)
	_, w.Err = fmt.Fprintln(w.Content, "1 0 0 1", coord(x), coord(y), "Tm")
	if w.Err != nil {
		return
	}
	w.Err = pdf.String(font.Encode(t.Content)).PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}
