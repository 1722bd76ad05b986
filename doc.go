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

// Package pdf implements the low-level object layer for writing PDF files.
//
// This package treats a PDF file as a numbered sequence of objects
// (typically dictionaries and streams).  Object numbers are allocated
// up-front using [Writer.Alloc], objects are written sequentially using
// [Writer.WriteIndirect], and [Writer.Close] appends the cross-reference
// table and the trailer:
//
//	w, err := pdf.NewWriter(out, pdf.V1_3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	catalog := w.Alloc()
//	pages := w.Alloc()
//	... write the objects ...
//	err = w.Close(catalog, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The following types implement the native PDF object types used by the
// writer.  All of these implement the [Object] interface:
//
//	Array
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	Stream
//	String
//
// The subpackage document uses this layer to produce complete documents
// made of text cells, lines and rectangles.
package pdf
