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
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResolveUnit(t *testing.T) {
	cases := []struct {
		unit string
		want float64
	}{
		{"pt", 1},
		{"mm", 72 / 25.4},
		{"cm", 72 / 2.54},
		{"in", 72},
		{" MM ", 72 / 25.4},
		{"In", 72},
	}
	for _, c := range cases {
		got, err := ResolveUnit(c.unit)
		if err != nil {
			t.Errorf("%q: %v", c.unit, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %g, want %g", c.unit, got, c.want)
		}
	}

	for _, unit := range []string{"", "px", "millimetre"} {
		_, err := ResolveUnit(unit)
		if !errors.Is(err, ErrUnsupportedUnit) {
			t.Errorf("%q: unexpected error %v", unit, err)
		}
		var uErr *UnsupportedUnitError
		if !errors.As(err, &uErr) || uErr.Unit != unit {
			t.Errorf("%q: wrong error %#v", unit, err)
		}
	}
}

func TestResolveSize(t *testing.T) {
	cases := []struct {
		size PageSize
		o    Orientation
		unit string
		w, h float64
	}{
		{A4, Portrait, "mm", 210, 297},
		{A4, Landscape, "mm", 297, 210},
		{A5, Portrait, "mm", 148, 210},
		{A5, Landscape, "mm", 210, 148},
		{Letter, Portrait, "pt", 612, 792},
		{Letter, Landscape, "in", 11, 8.5},
		{Legal, Portrait, "in", 8.5, 14},
		{Legal, Landscape, "mm", 355.6, 215.9},
		{PageSize{Name: "a4"}, Portrait, "cm", 21, 29.7},
		{CustomSize(100, 50), Portrait, "mm", 100, 50},
		{CustomSize(100, 50), Landscape, "mm", 50, 100},
	}
	for _, c := range cases {
		k, err := ResolveUnit(c.unit)
		if err != nil {
			t.Fatal(err)
		}
		w, h, err := ResolveSize(c.size, c.o, k)
		if err != nil {
			t.Errorf("%s %s: %v", c.size, c.o, err)
			continue
		}
		if math.Abs(w-c.w) > 1e-9 || math.Abs(h-c.h) > 1e-9 {
			t.Errorf("%s %s in %s: got %gx%g, want %gx%g",
				c.size, c.o, c.unit, w, h, c.w, c.h)
		}
	}
}

func TestResolveSizeErrors(t *testing.T) {
	bad := []PageSize{
		{Name: "B5"},
		CustomSize(0, 100),
		CustomSize(100, -1),
		CustomSize(math.NaN(), 100),
		CustomSize(100, math.Inf(1)),
	}
	for _, size := range bad {
		_, _, err := ResolveSize(size, Portrait, 1)
		if !errors.Is(err, ErrUnknownPageSize) {
			t.Errorf("%s: unexpected error %v", size, err)
		}
	}

	_, _, err := ResolveSize(PageSize{Name: "B5"}, Portrait, 1)
	if !strings.Contains(err.Error(), "A4, A5, Legal, Letter") {
		t.Errorf("error message does not list the presets: %q", err)
	}

	_, _, err = ResolveSize(A4, Orientation(7), 1)
	if !errors.Is(err, ErrOrientation) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestParsePageSize(t *testing.T) {
	cases := []struct {
		in   string
		want PageSize
	}{
		{"A4", A4},
		{" letter ", PageSize{Name: "letter"}},
		{"100x50", CustomSize(100, 50)},
		{"8.5X11", CustomSize(8.5, 11)},
	}
	for _, c := range cases {
		got := ParsePageSize(c.in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", c.in, d)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	for _, s := range []string{"P", "p", "portrait", "Portrait"} {
		o, err := ParseOrientation(s)
		if err != nil || o != Portrait {
			t.Errorf("%q: got %s, %v", s, o, err)
		}
	}
	for _, s := range []string{"L", "landscape"} {
		o, err := ParseOrientation(s)
		if err != nil || o != Landscape {
			t.Errorf("%q: got %s, %v", s, o, err)
		}
	}
	if _, err := ParseOrientation("sideways"); !errors.Is(err, ErrOrientation) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestNewDefaults(t *testing.T) {
	d, err := New(Portrait, "mm", A4, nil)
	if err != nil {
		t.Fatal(err)
	}

	approx := cmpopts.EquateApprox(0, 1e-9)
	l, top, r, b := d.Margins()
	if diff := cmp.Diff([]float64{10, 10, 10, 20}, []float64{l, top, r, b}, approx); diff != "" {
		t.Errorf("margins (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(1.0, d.CellMargin(), approx); diff != "" {
		t.Errorf("cell margin (-want +got):\n%s", diff)
	}
	if d.FontSizePt() != 12 || d.FontFamily() != "helvetica" {
		t.Errorf("wrong default font %s %g", d.FontFamily(), d.FontSizePt())
	}
	if d.PageNo() != 0 {
		t.Errorf("new document has %d pages", d.PageNo())
	}
	if d.ScaleFactor() != 72/25.4 {
		t.Errorf("wrong scale factor %g", d.ScaleFactor())
	}

	padding := 2.5
	d, err = New(Landscape, "mm", A4, &Options{CellMargin: &padding})
	if err != nil {
		t.Fatal(err)
	}
	if d.CellMargin() != 2.5 {
		t.Errorf("cell margin option ignored")
	}
	if w, h := d.PageSize(); math.Abs(w-297) > 1e-9 || math.Abs(h-210) > 1e-9 {
		t.Errorf("landscape A4 is %gx%g", w, h)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(Portrait, "furlong", A4, nil)
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("unexpected error %v", err)
	}
	_, err = New(Portrait, "mm", PageSize{Name: "Tabloid"}, nil)
	if !errors.Is(err, ErrUnknownPageSize) {
		t.Errorf("unexpected error %v", err)
	}
}
