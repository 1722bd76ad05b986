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

// Package page implements the in-memory representation of document pages.
package page

import "golang.org/x/exp/slices"

// Page is an ordered sequence of elements.
//
// Elements can only be appended while the page is open.  Once the page is
// closed, its contents are frozen.
type Page struct {
	elements []Element
	closed   bool
}

// New allocates a new, open page.
func New() *Page {
	return &Page{}
}

// Append adds an element to the end of the page.
// Append panics if the page has been closed.
func (p *Page) Append(e Element) {
	if p.closed {
		panic("page: append to closed page")
	}
	if e == nil {
		panic("page: append nil element")
	}
	p.elements = append(p.elements, e)
}

// Close freezes the page.  Closing a page twice has no effect.
func (p *Page) Close() {
	p.closed = true
}

// IsClosed reports whether the page has been closed.
func (p *Page) IsClosed() bool {
	return p.closed
}

// Len returns the number of elements on the page.
func (p *Page) Len() int {
	return len(p.elements)
}

// Elements returns the elements of the page, in the order they were
// appended.  The returned slice is a copy and may be modified by the caller.
func (p *Page) Elements() []Element {
	return slices.Clone(p.elements)
}
