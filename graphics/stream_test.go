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
	"strings"
	"testing"

	"seehuhn.de/go/minipdf/color"
	"seehuhn.de/go/minipdf/font"
	"seehuhn.de/go/minipdf/page"
)

func TestContentStream(t *testing.T) {
	red := color.FromBytes(255, 0, 0)
	elems := []page.Element{
		&page.Text{X: 10, Y: 20, Content: "Hi", Font: font.KeyPlain, SizePt: 12},
		&page.Text{X: 10, Y: 40, Content: "Ho", Font: font.KeyPlain, SizePt: 12},
		&page.Rect{X: 10, Y: 20, W: 30, H: 40, Border: true, Fill: true, FillColor: red, LineWidth: 1},
		&page.Text{X: 10, Y: 60, Content: "A", Font: font.KeyPlain, SizePt: 12},
		&page.Line{X1: 0, Y1: 0, X2: 10, Y2: 10, LineWidth: 1},
		&page.Line{X1: 0, Y1: 0, X2: 10, Y2: 10, LineWidth: 0},
	}
	got, err := ContentStream(elems, 1, 100)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"BT",
		"/F1 12 Tf",
		"0 0 0 rg",
		"1 0 0 1 10 80 Tm",
		"(Hi) Tj",
		"1 0 0 1 10 60 Tm",
		"(Ho) Tj",
		"ET",
		"0 0 0 RG",
		"1 w",
		"1 0 0 rg",
		"10 80 30 -40 re B",
		"BT",
		"/F1 12 Tf",
		"0 0 0 rg",
		"1 0 0 1 10 40 Tm",
		"(A) Tj",
		"ET",
		"0 0 0 RG",
		"0 100 m 10 90 l S",
		"BT",
		"ET",
		"0 0 0 RG",
		"0.1 w",
		"0 100 m 10 90 l S",
		"BT",
		"ET",
		"",
	}, "\n")
	if string(got) != want {
		t.Errorf("wrong content stream:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmptyPage(t *testing.T) {
	got, err := ContentStream(nil, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "BT\nET\n" {
		t.Errorf("got %q", got)
	}
}

func TestPaintOperators(t *testing.T) {
	cases := []struct {
		border, fill bool
		op           string
	}{
		{true, false, " re S\n"},
		{false, true, " re f\n"},
		{true, true, " re B\n"},
		{false, false, " re n\n"},
	}
	for _, c := range cases {
		r := &page.Rect{X: 1, Y: 1, W: 1, H: 1, Border: c.border, Fill: c.fill}
		got, err := ContentStream([]page.Element{r}, 1, 10)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(got), c.op) {
			t.Errorf("border=%t fill=%t: %q does not contain %q", c.border, c.fill, got, c.op)
		}
		if strings.Contains(string(got), " RG\n") != c.border {
			t.Errorf("border=%t fill=%t: unexpected stroke color in %q", c.border, c.fill, got)
		}
	}
}

func TestFontAndColorChanges(t *testing.T) {
	blue := color.FromBytes(0, 0, 255)
	elems := []page.Element{
		&page.Text{X: 0, Y: 10, Content: "a", Font: font.KeyPlain, SizePt: 12},
		&page.Text{X: 0, Y: 20, Content: "b", Font: font.KeyBold, SizePt: 12},
		&page.Text{X: 0, Y: 30, Content: "c", Font: font.KeyBold, SizePt: 14},
		&page.Text{X: 0, Y: 40, Content: "d", Font: font.KeyBold, SizePt: 14, Color: blue},
		&page.Text{X: 0, Y: 50, Content: "e", Font: font.KeyBold, SizePt: 14, Color: blue},
	}
	got, err := ContentStream(elems, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	if n := strings.Count(s, " Tf\n"); n != 3 {
		t.Errorf("%d font changes, want 3:\n%s", n, s)
	}
	if n := strings.Count(s, " rg\n"); n != 2 {
		t.Errorf("%d color changes, want 2:\n%s", n, s)
	}
	if !strings.Contains(s, "/F2 14 Tf\n") || !strings.Contains(s, "0 0 1 rg\n") {
		t.Errorf("missing operators in\n%s", s)
	}
}

func TestScaleAndFlip(t *testing.T) {
	const k = 72 / 25.4
	elems := []page.Element{
		&page.Line{X1: 10, Y1: 0, X2: 10, Y2: 297, LineWidth: 0.2},
	}
	got, err := ContentStream(elems, k, 297)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "28.35 841.89 m 28.35 0 l S\n") {
		t.Errorf("wrong coordinates in %q", got)
	}
	if !strings.Contains(string(got), "0.57 w\n") {
		t.Errorf("wrong line width in %q", got)
	}
}

func TestTextEscaping(t *testing.T) {
	elems := []page.Element{
		&page.Text{X: 0, Y: 0, Content: `(a\b) ü €`, Font: font.KeyPlain, SizePt: 10},
	}
	got, err := ContentStream(elems, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte(`(\(a\\b\) ` + "\xfc \x80) Tj\n")
	if !bytes.Contains(got, want) {
		t.Errorf("wrong text string in %q", got)
	}
}

func TestWriterState(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, 1, 10)
	w.TextEnd()
	if w.Err == nil {
		t.Error("TextEnd outside a text object succeeded")
	}

	w = NewWriter(&bytes.Buffer{}, 1, 10)
	w.TextSetFont(font.KeyPlain, 10)
	if w.Err == nil {
		t.Error("TextSetFont outside a text object succeeded")
	}
}

func TestTransform(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, 2, 100)
	cases := []struct {
		x, y   float64
		px, py float64
	}{
		{0, 0, 0, 200},
		{3, 10, 6, 180},
		{0, 100, 0, 0},
	}
	for _, c := range cases {
		px, py := w.transform(c.x, c.y)
		if px != c.px || py != c.py {
			t.Errorf("transform(%g, %g) = (%g, %g), want (%g, %g)", c.x, c.y, px, py, c.px, c.py)
		}
	}
	if l := w.scale(5); l != 10 {
		t.Errorf("scale(5) = %g, want 10", l)
	}
}
