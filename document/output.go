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
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// Destination selects where [Document.Output] delivers the document.
type Destination int

// These are the supported destinations.
const (
	// DestString returns the document as a byte slice.
	DestString Destination = iota

	// DestInline sends the document over HTTP, to be shown in the browser.
	DestInline

	// DestDownload sends the document over HTTP as a file download.
	DestDownload

	// DestFile writes the document to a local file.
	DestFile
)

// DefaultName is used when Output is called without a file name.
const DefaultName = "doc.pdf"

var errNoResponseWriter = errors.New("no HTTP response writer")

// ParseDestination converts "S", "I", "D" or "F" (in any case) to a
// Destination.  The empty string selects DestInline.
func ParseDestination(s string) (Destination, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S":
		return DestString, nil
	case "", "I":
		return DestInline, nil
	case "D":
		return DestDownload, nil
	case "F":
		return DestFile, nil
	}
	return 0, fmt.Errorf("unknown output destination %q", s)
}

// Output finishes the document and delivers it to the given destination.
//
// For DestString the PDF file is returned.  For DestInline and
// DestDownload the file is sent to rw, using name as the suggested file
// name.  For DestFile, name is the path of the file to write.  If name is
// empty, [DefaultName] is used.
//
// After Output has been called, no more pages can be added.  Output can
// be called repeatedly and produces identical files.
func (d *Document) Output(dest Destination, name string, rw http.ResponseWriter) ([]byte, error) {
	if name == "" {
		name = DefaultName
	}
	switch dest {
	case DestString:
		return d.Bytes()
	case DestInline:
		return nil, d.ServeInline(rw, name)
	case DestDownload:
		return nil, d.ServeDownload(rw, name)
	case DestFile:
		return nil, d.WriteFile(name)
	}
	return nil, fmt.Errorf("unknown output destination %d", int(dest))
}

// WriteFile writes the PDF file to the named file, creating or truncating
// it as needed.
func (d *Document) WriteFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	err = os.WriteFile(path, data, 0o666)
	if err != nil {
		return &WriteFailedError{Dest: path, Err: err}
	}
	return nil
}

// ServeInline sends the PDF file as an HTTP response, to be displayed by
// the browser.
func (d *Document) ServeInline(rw http.ResponseWriter, name string) error {
	return d.serve(rw, "inline", name)
}

// ServeDownload sends the PDF file as an HTTP response which browsers
// save to disk.
func (d *Document) ServeDownload(rw http.ResponseWriter, name string) error {
	return d.serve(rw, "attachment", name)
}

func (d *Document) serve(rw http.ResponseWriter, disposition, name string) error {
	if rw == nil {
		return &WriteFailedError{Dest: "HTTP response", Err: errNoResponseWriter}
	}
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	h := rw.Header()
	h.Set("Content-Type", "application/pdf")
	h.Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, name))
	h.Set("Content-Length", strconv.Itoa(len(data)))
	rw.WriteHeader(http.StatusOK)

	_, err = rw.Write(data)
	if err != nil {
		return &WriteFailedError{Dest: "HTTP response", Err: err}
	}
	return nil
}
