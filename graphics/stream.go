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
	"bytes"
	"fmt"

	"seehuhn.de/go/minipdf/page"
)

// ContentStream compiles the elements of one page into a content stream.
// The arguments k and pageHeight are as for [NewWriter].
//
// The same elements always give the same content stream.
func ContentStream(elems []page.Element, k, pageHeight float64) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, k, pageHeight)

	w.TextStart()
	for _, e := range elems {
		switch e := e.(type) {
		case *page.Text:
			w.TextShow(e)
		case *page.Rect:
			w.DrawRect(e)
		case *page.Line:
			w.DrawLine(e)
		default:
			return nil, fmt.Errorf("unsupported page element %T", e)
		}
		if w.Err != nil {
			return nil, w.Err
		}
	}
	w.TextEnd()

	if w.Err != nil {
		return nil, w.Err
	}
	return buf.Bytes(), nil
}
