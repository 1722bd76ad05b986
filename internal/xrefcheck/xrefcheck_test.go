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

package xrefcheck

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf "seehuhn.de/go/minipdf"
)

func writeSample(t *testing.T) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, pdf.V1_3)
	if err != nil {
		t.Fatal(err)
	}
	catalog := w.Alloc()
	pages := w.Alloc()
	pg := w.Alloc()
	content := w.Alloc()

	objs := []struct {
		obj pdf.Object
		ref pdf.Reference
	}{
		{pdf.Dict{"Type": pdf.Name("Catalog"), "Pages": pages}, catalog},
		{pdf.Dict{"Type": pdf.Name("Pages"), "Kids": pdf.Array{pg}, "Count": pdf.Integer(1)}, pages},
		{pdf.Dict{"Type": pdf.Name("Page"), "Parent": pages, "Contents": content}, pg},
		{&pdf.Stream{Data: []byte("BT\nET\n")}, content},
	}
	for _, o := range objs {
		if err := w.WriteIndirect(o.obj, o.ref); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(catalog, 0); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	f, err := Parse(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	if f.Version != "1.3" {
		t.Errorf("version %q", f.Version)
	}
	if f.Root != 1 || f.Info != 0 {
		t.Errorf("root %d, info %d", f.Root, f.Info)
	}
	if len(f.Offsets) != 5 || f.Offsets[0] != -1 {
		t.Errorf("unexpected offsets %v", f.Offsets)
	}

	pages, err := f.Pages()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int{3}, pages); d != "" {
		t.Errorf("pages (-want +got):\n%s", d)
	}

	data, err := f.PageContent(3)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "BT\nET\n" {
		t.Errorf("content %q", data)
	}
}

func TestMalformed(t *testing.T) {
	good := writeSample(t)

	cases := []struct {
		name   string
		mangle func([]byte) []byte
	}{
		{"header", func(b []byte) []byte {
			return append([]byte("%XDF"), b[4:]...)
		}},
		{"eof", func(b []byte) []byte {
			return b[:len(b)-3]
		}},
		{"length", func(b []byte) []byte {
			return bytes.Replace(b, []byte("/Length 6"), []byte("/Length 5"), 1)
		}},
		{"offset", func(b []byte) []byte {
			return bytes.Replace(b, []byte("1 0 obj"), []byte(" 1 0 ob"), 1)
		}},
		{"size", func(b []byte) []byte {
			return bytes.Replace(b, []byte("/Size 5"), []byte("/Size 4"), 1)
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := c.mangle(bytes.Clone(good))
			_, err := Parse(buf)
			var mErr *MalformedFileError
			if !errors.As(err, &mErr) {
				t.Errorf("got error %v, want *MalformedFileError", err)
			}
		})
	}
}
