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

// Package document builds multi-page PDF documents from high-level
// drawing calls.
//
// A [Document] keeps a cursor, margins, a current font and current
// colors.  Methods like [Document.Cell] and [Document.MultiCell] place
// text relative to the cursor, break pages automatically and record
// self-contained drawing elements on the open page.  Nothing is written
// until one of the output methods is called.
//
// All coordinates are given in the user unit chosen at construction
// time, with the origin at the top-left corner of the page and y growing
// downwards.
package document

import (
	"seehuhn.de/go/minipdf/color"
	"seehuhn.de/go/minipdf/font"
	"seehuhn.de/go/minipdf/page"
)

// Options can be used to change the defaults of a new document.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// FontFamily selects the standard font family used for the three
	// font resources of the document.  The default is Helvetica.
	FontFamily font.Family

	// Info, if non-nil, is written as the document information
	// dictionary.
	Info *Info

	// CellMargin, if non-nil, overrides the default cell padding of
	// 1mm.  The value is given in user units.
	CellMargin *float64
}

// Info contains document metadata.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

func (info *Info) isEmpty() bool {
	return info == nil || *info == Info{}
}

// Document holds the state of a PDF document under construction.
//
// A Document is not safe for concurrent use.
type Document struct {
	k           float64 // points per user unit
	orientation Orientation

	w, h     float64 // page size in user units
	wPt, hPt float64 // page size in points

	lMargin, tMargin, rMargin, bMargin float64
	cMargin                            float64 // cell padding

	lineWidth float64

	fontFamily font.Family
	fontStyle  font.Style
	fontSizePt float64
	fontKey    font.Key

	// baseFamily is the family used for the font resources.
	baseFamily font.Family

	textColor color.RGB
	drawColor color.RGB
	fillColor color.RGB

	x, y  float64
	lasth float64

	autoPageBreak    bool
	pageBreakTrigger float64

	pages    []*page.Page
	pageOpen bool

	// finished is set once the document has been serialized.
	finished bool

	info *Info
}

// New creates a new document.
//
// The unit is one of "pt", "mm", "cm" or "in" and applies to all
// coordinates and lengths passed to the methods of the document, except
// for font sizes which are always given in points.
//
// The new document has 10mm margins, automatic page breaks 20mm above the
// bottom edge of the page, a line width of 0.2mm, 12pt Helvetica text and
// black for all colors.  No page is open; call [Document.AddPage] before
// drawing.
func New(o Orientation, unit string, size PageSize, opt *Options) (*Document, error) {
	if opt == nil {
		opt = &Options{}
	}

	k, err := ResolveUnit(unit)
	if err != nil {
		return nil, err
	}
	w, h, err := ResolveSize(size, o, k)
	if err != nil {
		return nil, err
	}

	baseFamily := font.Helvetica
	if opt.FontFamily != "" {
		fam, ok := font.NormalizeFamily(string(opt.FontFamily))
		if ok {
			baseFamily = fam
		}
	}

	d := &Document{
		k:           k,
		orientation: o,
		w:           w,
		h:           h,
		wPt:         w * k,
		hPt:         h * k,
		fontFamily:  baseFamily,
		fontSizePt:  12,
		fontKey:     font.KeyPlain,
		baseFamily:  baseFamily,
		textColor:   color.Black,
		drawColor:   color.Black,
		fillColor:   color.Black,
	}
	if !opt.Info.isEmpty() {
		info := *opt.Info
		d.info = &info
	}

	margin := 10 * unitMM / k
	d.lMargin = margin
	d.tMargin = margin
	d.rMargin = margin
	d.cMargin = margin / 10
	if opt.CellMargin != nil {
		d.cMargin = *opt.CellMargin
	}
	d.lineWidth = 0.2 * unitMM / k
	d.SetAutoPageBreak(true, 2*margin)

	d.x = d.lMargin
	d.y = d.tMargin
	d.lasth = 0

	return d, nil
}
