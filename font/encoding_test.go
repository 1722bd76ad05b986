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

package font

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"Hello", []byte("Hello")},
		{"Grüße", []byte{'G', 'r', 0xFC, 0xDF, 'e'}},
		{"5 €", []byte{'5', ' ', 0x80}},
		{"日本", []byte("??")},
		{"", []byte{}},
	}
	for _, c := range cases {
		got := Encode(c.in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("Encode(%q) (-want +got):\n%s", c.in, d)
		}
	}
}
