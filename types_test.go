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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

func format(t *testing.T, obj Object) string {
	t.Helper()
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestFormatObjects(t *testing.T) {
	cases := []struct {
		obj  Object
		want string
	}{
		{Integer(-7), "-7"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{Name("Type"), "/Type"},
		{Name("A B#"), "/A#20B#23"},
		{String("Hello"), "(Hello)"},
		{String("a(b)c\\"), `(a\(b\)c\\)`},
		{String("x\ny\x01"), `(x\ny\001)`},
		{Array{Integer(1), Name("N"), nil}, "[1 /N null]"},
		{Reference(12), "12 0 R"},
		{Dict{"Type": Name("Page"), "Count": Integer(2), "Skip": nil}, "<< /Count 2 /Type /Page >>"},
		{Dict{}, "<< >>"},
		{Dict(nil), "null"},
		{&Stream{Dict: Dict{"Length": Integer(99)}, Data: []byte("abc")}, "<< /Length 3 >>\nstream\nabc\nendstream"},
	}
	for _, c := range cases {
		got := format(t, c.obj)
		if got != c.want {
			t.Errorf("%#v: got %q, want %q", c.obj, got, c.want)
		}
	}
}

func TestInvalidReference(t *testing.T) {
	err := Reference(0).PDF(&bytes.Buffer{})
	if err == nil {
		t.Error("reference 0 was accepted")
	}
}

func TestTextString(t *testing.T) {
	if got := TextString("Invoice 42"); string(got) != "Invoice 42" {
		t.Errorf("ASCII text changed to %q", got)
	}
	got := TextString("Größe")
	want := []byte{0xFE, 0xFF, 0, 'G', 0, 'r', 0, 0xF6, 0, 0xDF, 0, 'e'}
	if d := cmp.Diff(want, []byte(got)); d != "" {
		t.Errorf("UTF-16 text string mismatch (-want +got):\n%s", d)
	}
}

func TestRectangle(t *testing.T) {
	got := format(t, Rectangle(rect.Rect{URx: 595.2755905511812, URy: 841.8897637795277}))
	if got != "[0 0 595.28 841.89]" {
		t.Errorf("got %q", got)
	}
	got = format(t, Rectangle(rect.Rect{URx: 612, URy: 792}))
	if got != "[0 0 612 792]" {
		t.Errorf("got %q", got)
	}
}
