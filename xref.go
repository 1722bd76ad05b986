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

package pdf

import (
	"fmt"
	"io"
)

// writeXRefTable writes a classic cross-reference table with a single
// subsection, followed by the trailer dictionary.  Every entry is exactly
// 20 bytes long.  Allocated objects which were never written are listed
// as free.
func (pdf *Writer) writeXRefTable(catalog, info Reference) error {
	size := int(pdf.nextRef)
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", size)
	if err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		pos, ok := pdf.xref[Reference(i)]
		if ok {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		} else {
			_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(pdf.w, "trailer\n<< /Size %d /Root %d 0 R", size, uint32(catalog))
	if err != nil {
		return err
	}
	if info != 0 {
		_, err = fmt.Fprintf(pdf.w, " /Info %d 0 R", uint32(info))
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(pdf.w, " >>\n")
	return err
}
