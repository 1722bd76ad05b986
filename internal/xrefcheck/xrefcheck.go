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

// Package xrefcheck reads back the structure of a PDF file written by
// minipdf.  It checks the header, the cross-reference table, the trailer
// and the stream lengths, and gives access to the bodies of the indirect
// objects.
//
// Only the subset of PDF produced by this module is understood: a single
// classic cross-reference section starting at object 0, generation
// numbers 0, and direct /Length values.
package xrefcheck

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MalformedFileError indicates that a PDF file could not be verified.
type MalformedFileError struct {
	Err error
	Pos int64
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "malformed PDF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// File describes a parsed PDF file.
type File struct {
	// Data is the complete file.
	Data []byte

	// Version is the version from the file header, for example "1.3".
	Version string

	// XRefPos is the position of the "xref" keyword.
	XRefPos int64

	// Offsets maps object numbers to file positions.  Entry 0, and the
	// entries for free objects, are -1.
	Offsets []int64

	// Root and Info are the object numbers given in the trailer.
	// Info is 0 if the trailer has no /Info entry.
	Root, Info int
}

var (
	reSize      = regexp.MustCompile(`/Size (\d+)`)
	reRoot      = regexp.MustCompile(`/Root (\d+) 0 R`)
	reInfo      = regexp.MustCompile(`/Info (\d+) 0 R`)
	reLength    = regexp.MustCompile(`/Length (\d+)`)
	rePages     = regexp.MustCompile(`/Pages (\d+) 0 R`)
	reKids      = regexp.MustCompile(`/Kids \[([^\]]*)\]`)
	reCount     = regexp.MustCompile(`/Count (\d+)`)
	reRef       = regexp.MustCompile(`(\d+) 0 R`)
	reContents  = regexp.MustCompile(`/Contents (\d+) 0 R`)
	reXRefStart = regexp.MustCompile(`^xref\r?\n0 (\d+)\r?\n`)
)

// Parse checks the structure of a PDF file.
func Parse(buf []byte) (*File, error) {
	f := &File{Data: buf}

	if !bytes.HasPrefix(buf, []byte("%PDF-")) {
		return nil, &MalformedFileError{Err: errors.New("missing %PDF- header")}
	}
	eol := bytes.IndexByte(buf, '\n')
	if eol < 0 {
		return nil, &MalformedFileError{Err: errors.New("truncated header")}
	}
	f.Version = string(bytes.TrimRight(buf[5:eol], "\r"))

	if !bytes.HasSuffix(bytes.TrimRight(buf, "\r\n"), []byte("%%EOF")) {
		return nil, &MalformedFileError{Err: errors.New("missing %%EOF marker")}
	}

	sx := bytes.LastIndex(buf, []byte("startxref"))
	if sx < 0 {
		return nil, &MalformedFileError{Err: errors.New("missing startxref")}
	}
	fields := bytes.Fields(buf[sx+len("startxref"):])
	if len(fields) < 1 {
		return nil, &MalformedFileError{Pos: int64(sx), Err: errors.New("missing xref offset")}
	}
	xrefPos, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil || xrefPos < 0 || xrefPos >= int64(sx) {
		return nil, &MalformedFileError{Pos: int64(sx), Err: errors.New("invalid xref offset")}
	}
	f.XRefPos = xrefPos

	m := reXRefStart.FindSubmatch(buf[xrefPos:])
	if m == nil {
		return nil, &MalformedFileError{Pos: xrefPos, Err: errors.New("startxref does not point at an xref table")}
	}
	size, _ := strconv.Atoi(string(m[1]))
	entries := xrefPos + int64(len(m[0]))
	if entries+20*int64(size) > int64(sx) {
		return nil, &MalformedFileError{Pos: entries, Err: errors.New("truncated xref table")}
	}

	f.Offsets = make([]int64, size)
	for i := 0; i < size; i++ {
		pos := entries + 20*int64(i)
		entry := buf[pos : pos+20]
		if entry[10] != ' ' || entry[16] != ' ' {
			return nil, &MalformedFileError{Pos: pos, Err: fmt.Errorf("malformed xref entry %d", i)}
		}
		switch entry[17] {
		case 'f':
			f.Offsets[i] = -1
			continue
		case 'n':
		default:
			return nil, &MalformedFileError{Pos: pos, Err: fmt.Errorf("malformed xref entry %d", i)}
		}
		if i == 0 {
			return nil, &MalformedFileError{Pos: pos, Err: errors.New("object 0 is in use")}
		}
		off, err := strconv.ParseInt(string(entry[:10]), 10, 64)
		if err != nil || off >= xrefPos {
			return nil, &MalformedFileError{Pos: pos, Err: fmt.Errorf("invalid offset for object %d", i)}
		}
		want := fmt.Sprintf("%d 0 obj", i)
		if !bytes.HasPrefix(buf[off:], []byte(want)) {
			return nil, &MalformedFileError{Pos: off, Err: fmt.Errorf("xref entry %d does not point at %q", i, want)}
		}
		f.Offsets[i] = off
	}

	trailerPos := entries + 20*int64(size)
	trailer := buf[trailerPos:sx]
	if !bytes.HasPrefix(trailer, []byte("trailer")) {
		return nil, &MalformedFileError{Pos: trailerPos, Err: errors.New("missing trailer")}
	}
	m = reSize.FindSubmatch(trailer)
	if m == nil {
		return nil, &MalformedFileError{Pos: trailerPos, Err: errors.New("trailer has no /Size")}
	}
	if n, _ := strconv.Atoi(string(m[1])); n != size {
		return nil, &MalformedFileError{Pos: trailerPos, Err: fmt.Errorf("/Size is %d, xref table has %d entries", n, size)}
	}
	m = reRoot.FindSubmatch(trailer)
	if m == nil {
		return nil, &MalformedFileError{Pos: trailerPos, Err: errors.New("trailer has no /Root")}
	}
	f.Root, _ = strconv.Atoi(string(m[1]))
	if !f.inUse(f.Root) {
		return nil, &MalformedFileError{Pos: trailerPos, Err: fmt.Errorf("/Root object %d does not exist", f.Root)}
	}
	if m = reInfo.FindSubmatch(trailer); m != nil {
		f.Info, _ = strconv.Atoi(string(m[1]))
		if !f.inUse(f.Info) {
			return nil, &MalformedFileError{Pos: trailerPos, Err: fmt.Errorf("/Info object %d does not exist", f.Info)}
		}
	}

	for i := range f.Offsets {
		if !f.inUse(i) {
			continue
		}
		body, err := f.Object(i)
		if err != nil {
			return nil, err
		}
		if bytes.Contains(body, []byte("\nstream\n")) {
			_, err = f.StreamData(i)
			if err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

func (f *File) inUse(n int) bool {
	return n > 0 && n < len(f.Offsets) && f.Offsets[n] >= 0
}

// Object returns the body of object n, between the "n 0 obj" line and
// the "endobj" keyword.
func (f *File) Object(n int) ([]byte, error) {
	if !f.inUse(n) {
		return nil, &MalformedFileError{Err: fmt.Errorf("object %d does not exist", n)}
	}
	off := f.Offsets[n]
	rest := f.Data[off:f.XRefPos]
	start := bytes.IndexByte(rest, '\n')
	end := bytes.Index(rest, []byte("\nendobj"))
	if start < 0 || end < start {
		return nil, &MalformedFileError{Pos: off, Err: fmt.Errorf("object %d is not terminated", n)}
	}
	return rest[start+1 : end], nil
}

// StreamData returns the contents of the stream in object n.
// An error is returned if the /Length entry does not match the stream
// data.
func (f *File) StreamData(n int) ([]byte, error) {
	body, err := f.Object(n)
	if err != nil {
		return nil, err
	}
	k := bytes.Index(body, []byte("\nstream\n"))
	if k < 0 {
		return nil, &MalformedFileError{Pos: f.Offsets[n], Err: fmt.Errorf("object %d is not a stream", n)}
	}
	m := reLength.FindSubmatch(body[:k])
	if m == nil {
		return nil, &MalformedFileError{Pos: f.Offsets[n], Err: fmt.Errorf("stream %d has no /Length", n)}
	}
	length, _ := strconv.Atoi(string(m[1]))
	data := body[k+len("\nstream\n"):]
	if length > len(data) || !bytes.Equal(data[length:], []byte("\nendstream")) {
		return nil, &MalformedFileError{Pos: f.Offsets[n], Err: fmt.Errorf("stream %d: wrong /Length %d", n, length)}
	}
	return data[:length], nil
}

// Pages returns the object numbers of the pages, in order.
// The page tree must consist of a single /Pages node.
func (f *File) Pages() ([]int, error) {
	catalog, err := f.Object(f.Root)
	if err != nil {
		return nil, err
	}
	m := rePages.FindSubmatch(catalog)
	if m == nil {
		return nil, &MalformedFileError{Err: errors.New("catalog has no /Pages")}
	}
	treeRef, _ := strconv.Atoi(string(m[1]))
	tree, err := f.Object(treeRef)
	if err != nil {
		return nil, err
	}

	m = reKids.FindSubmatch(tree)
	if m == nil {
		return nil, &MalformedFileError{Err: errors.New("page tree has no /Kids")}
	}
	var pages []int
	for _, ref := range reRef.FindAllSubmatch(m[1], -1) {
		n, _ := strconv.Atoi(string(ref[1]))
		if !f.inUse(n) {
			return nil, &MalformedFileError{Err: fmt.Errorf("page object %d does not exist", n)}
		}
		pages = append(pages, n)
	}

	m = reCount.FindSubmatch(tree)
	if m == nil {
		return nil, &MalformedFileError{Err: errors.New("page tree has no /Count")}
	}
	if count, _ := strconv.Atoi(string(m[1])); count != len(pages) {
		return nil, &MalformedFileError{Err: fmt.Errorf("/Count is %d, but there are %d kids", count, len(pages))}
	}
	return pages, nil
}

// PageContent returns the decoded content stream of the page with the
// given object number.
func (f *File) PageContent(pageObj int) ([]byte, error) {
	body, err := f.Object(pageObj)
	if err != nil {
		return nil, err
	}
	m := reContents.FindSubmatch(body)
	if m == nil {
		return nil, &MalformedFileError{Err: fmt.Errorf("page %d has no /Contents", pageObj)}
	}
	n, _ := strconv.Atoi(string(m[1]))
	return f.StreamData(n)
}
