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

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this package.
const (
	V1_0 Version = iota
	V1_1
	V1_2
	V1_3
	V1_4
)

// String returns the version in the form used in the file header.
func (ver Version) String() string {
	if ver < V1_0 || ver > V1_4 {
		return fmt.Sprintf("Version(%d)", int(ver))
	}
	return fmt.Sprintf("1.%d", int(ver))
}

// Writer represents a PDF file open for writing.
//
// Object numbers are allocated with [Writer.Alloc] before the objects are
// written, so that objects can refer to each other in any order.  The byte
// offset of every object is recorded when it is written, and
// [Writer.Close] uses these offsets to emit the cross-reference table.
type Writer struct {
	w       *posWriter
	xref    map[Reference]int64
	nextRef Reference
}

// NewWriter prepares a PDF file for writing.  The file header is written
// immediately.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	if ver < V1_0 || ver > V1_4 {
		return nil, errVersion
	}

	pdf := &Writer{
		w:       &posWriter{w: w},
		xref:    make(map[Reference]int64),
		nextRef: 1,
	}

	// The comment line with high-bit characters marks the file as binary.
	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
// Object numbers are handed out consecutively, starting at 1.
func (pdf *Writer) Alloc() Reference {
	ref := pdf.nextRef
	pdf.nextRef++
	return ref
}

// WriteIndirect writes obj to the PDF file as the indirect object ref.
// The reference must have been obtained from [Writer.Alloc].
func (pdf *Writer) WriteIndirect(obj Object, ref Reference) error {
	if pdf.w == nil {
		return errClosed
	}
	if ref == 0 || ref >= pdf.nextRef {
		return &ObjectError{Ref: ref, Err: errNotAllocated}
	}
	if _, seen := pdf.xref[ref]; seen {
		return &ObjectError{Ref: ref, Err: errDuplicate}
	}

	pos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d 0 obj\n", uint32(ref))
	if err != nil {
		return err
	}
	err = writeObject(pdf.w, obj)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	if err != nil {
		return err
	}

	pdf.xref[ref] = pos
	return nil
}

// Close writes the cross-reference table and the file trailer.
// The catalog reference is required; info may be 0 if the file has no
// document information dictionary.  The underlying io.Writer is not closed.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.w == nil {
		return errClosed
	}
	if catalog == 0 {
		return errNoCatalog
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(catalog, info)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "startxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	// make sure we don't accidentally write beyond the end of file
	pdf.w = nil
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
