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

package document

import (
	"bytes"
	"fmt"
	"io"

	"seehuhn.de/go/geom/rect"

	pdf "seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/font"
	"seehuhn.de/go/minipdf/graphics"
)

// finish closes the open page.  A document without pages receives a
// single blank page.  After finish has been called, no more pages can
// be added.
func (d *Document) finish() {
	if len(d.pages) == 0 {
		d.AddPage()
	}
	if d.pageOpen {
		d.currentPage().Close()
		d.pageOpen = false
	}
	d.finished = true
}

// Bytes returns the complete PDF file.
//
// The open page, if any, is closed.  Repeated calls return identical
// output.
func (d *Document) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := d.WriteTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the complete PDF file to w.
// This implements the [io.WriterTo] interface.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.finish()
	cw := &countWriter{w: w}
	err := d.write(cw)
	return cw.n, err
}

// write serializes the document.
//
// Objects are numbered as follows: 1 is the catalog, 2 the page tree and
// 3 to 5 are the plain, bold and italic font.  Each page then uses two
// objects, the page dictionary followed by its content stream.  The
// information dictionary, if any, comes last.
func (d *Document) write(w io.Writer) error {
	out, err := pdf.NewWriter(w, pdf.V1_3)
	if err != nil {
		return err
	}

	catalogRef := out.Alloc()
	pagesRef := out.Alloc()
	fontRefs := make([]pdf.Reference, len(font.Keys))
	for i := range fontRefs {
		fontRefs[i] = out.Alloc()
	}
	pageRefs := make([]pdf.Reference, len(d.pages))
	contentRefs := make([]pdf.Reference, len(d.pages))
	for i := range d.pages {
		pageRefs[i] = out.Alloc()
		contentRefs[i] = out.Alloc()
	}
	var infoRef pdf.Reference
	if !d.info.isEmpty() {
		infoRef = out.Alloc()
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	err = out.WriteIndirect(catalog, catalogRef)
	if err != nil {
		return err
	}

	kids := make(pdf.Array, len(pageRefs))
	for i, ref := range pageRefs {
		kids[i] = ref
	}
	pages := pdf.Dict{
		"Type":     pdf.Name("Pages"),
		"Kids":     kids,
		"Count":    pdf.Integer(len(pageRefs)),
		"MediaBox": pdf.Rectangle(rect.Rect{URx: d.wPt, URy: d.hPt}),
	}
	err = out.WriteIndirect(pages, pagesRef)
	if err != nil {
		return err
	}

	fonts := pdf.Dict{}
	for i, key := range font.Keys {
		err = out.WriteIndirect(font.Dict(d.baseFamily, key), fontRefs[i])
		if err != nil {
			return err
		}
		fonts[pdf.Name(key)] = fontRefs[i]
	}
	resources := pdf.Dict{
		"Font":    fonts,
		"ProcSet": pdf.Array{pdf.Name("PDF"), pdf.Name("Text")},
	}

	for i, p := range d.pages {
		data, err := graphics.ContentStream(p.Elements(), d.k, d.h)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		pageDict := pdf.Dict{
			"Type":      pdf.Name("Page"),
			"Parent":    pagesRef,
			"Resources": resources,
			"Contents":  contentRefs[i],
		}
		err = out.WriteIndirect(pageDict, pageRefs[i])
		if err != nil {
			return err
		}
		err = out.WriteIndirect(&pdf.Stream{Data: data}, contentRefs[i])
		if err != nil {
			return err
		}
	}

	if infoRef != 0 {
		err = out.WriteIndirect(d.info.dict(), infoRef)
		if err != nil {
			return err
		}
	}

	return out.Close(catalogRef, infoRef)
}

func (info *Info) dict() pdf.Dict {
	res := pdf.Dict{}
	set := func(key pdf.Name, val string) {
		if val != "" {
			res[key] = pdf.TextString(val)
		}
	}
	set("Title", info.Title)
	set("Author", info.Author)
	set("Subject", info.Subject)
	set("Keywords", info.Keywords)
	set("Creator", info.Creator)
	set("Producer", info.Producer)
	return res
}

// countWriter counts the bytes written to the underlying writer.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
