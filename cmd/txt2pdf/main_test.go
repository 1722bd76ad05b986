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

package main

import (
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/minipdf/internal/xrefcheck"
)

func TestExpandTabs(t *testing.T) {
	cases := []struct{ in, want string }{
		{"abc", "abc"},
		{"\tx", "    x"},
		{"ab\tc", "ab  c"},
		{"abcd\te", "abcd    e"},
		{"ü\t.", "ü   ."},
	}
	for _, c := range cases {
		if got := expandTabs(c.in); got != c.want {
			t.Errorf("expandTabs(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestConvert(t *testing.T) {
	text := strings.Repeat("line\twith a tab\n", 100)
	buf := &bytes.Buffer{}
	err := convert(strings.NewReader(text), buf, "test.txt")
	if err != nil {
		t.Fatal(err)
	}

	f, err := xrefcheck.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	pages, err := f.Pages()
	if err != nil {
		t.Fatal(err)
	}
	// 100 lines of 12pt on A4 with 1in margins need two pages
	if len(pages) != 2 {
		t.Errorf("%d pages, want 2", len(pages))
	}
	font, err := f.Object(3)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(font, []byte("/BaseFont /Courier ")) {
		t.Errorf("unexpected font %q", font)
	}
}

func TestConvertAlign(t *testing.T) {
	defer func(old string) { *align = old }(*align)

	// with a 72pt margin and 1mm padding, left-aligned text starts at x=74.83
	for _, c := range []struct {
		align string
		left  bool
	}{{"L", true}, {"C", false}, {"r", false}} {
		*align = c.align
		buf := &bytes.Buffer{}
		if err := convert(strings.NewReader("x\n"), buf, "a.txt"); err != nil {
			t.Fatal(err)
		}
		f, err := xrefcheck.Parse(buf.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		content, err := f.PageContent(6)
		if err != nil {
			t.Fatal(err)
		}
		if got := bytes.Contains(content, []byte("1 0 0 1 74.83 ")); got != c.left {
			t.Errorf("align %q: left edge placement %t in %q", c.align, got, content)
		}
	}
}
