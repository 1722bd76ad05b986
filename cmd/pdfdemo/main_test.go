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
	"testing"

	"seehuhn.de/go/minipdf/document"
	"seehuhn.de/go/minipdf/internal/xrefcheck"
)

func TestInvoice(t *testing.T) {
	for _, n := range []int{0, 5, 60} {
		doc, err := document.New(document.Portrait, "mm", document.A4, nil)
		if err != nil {
			t.Fatal(err)
		}
		layoutInvoice(doc, n)
		data, err := doc.Bytes()
		if err != nil {
			t.Fatal(err)
		}
		f, err := xrefcheck.Parse(data)
		if err != nil {
			t.Fatalf("%d rows: %v", n, err)
		}
		pages, err := f.Pages()
		if err != nil {
			t.Fatal(err)
		}
		if len(pages) != doc.PageNo() {
			t.Errorf("%d rows: %d pages in file, %d in document", n, len(pages), doc.PageNo())
		}
		if n == 60 && len(pages) < 2 {
			t.Errorf("60 rows fit on %d page", len(pages))
		}
	}
}

func TestMoney(t *testing.T) {
	cases := map[int]string{0: "0.00", 5: "0.05", 1250: "12.50", 123456: "1234.56"}
	for cents, want := range cases {
		if got := money(cents); got != want {
			t.Errorf("money(%d) = %q, want %q", cents, got, want)
		}
	}
}
