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
	"seehuhn.de/go/minipdf/color"
	"seehuhn.de/go/minipdf/font"
)

// SetMargins sets the left, top and right page margins and moves the
// cursor to the top-left corner of the text area.  If right is omitted,
// the right margin is set equal to the left margin.
func (d *Document) SetMargins(left, top float64, right ...float64) {
	d.lMargin = left
	d.tMargin = top
	if len(right) > 0 {
		d.rMargin = right[0]
	} else {
		d.rMargin = left
	}
	d.x = left
	d.y = top
}

// SetLeftMargin sets the left margin.  If the cursor is left of the new
// margin, it is moved to the margin.
func (d *Document) SetLeftMargin(margin float64) {
	d.lMargin = margin
	if d.pageOpen && d.x < margin {
		d.x = margin
	}
}

// SetTopMargin sets the top margin.
// The new value takes effect on the next page.
func (d *Document) SetTopMargin(margin float64) {
	d.tMargin = margin
}

// SetRightMargin sets the right margin.
func (d *Document) SetRightMargin(margin float64) {
	d.rMargin = margin
}

// SetCellMargin sets the horizontal padding between cell borders and
// text.
func (d *Document) SetCellMargin(margin float64) {
	d.cMargin = margin
}

// SetAutoPageBreak enables or disables automatic page breaks.  When
// enabled, a new page is started whenever a line break moves the cursor
// to within distance bottom of the lower edge of the page.
func (d *Document) SetAutoPageBreak(enabled bool, bottom float64) {
	d.autoPageBreak = enabled
	d.bMargin = bottom
	d.pageBreakTrigger = d.h - bottom
}

// SetFont selects the font for subsequent text.
//
// The family is one of "helvetica" (alias "arial"), "times" or "courier";
// an empty family keeps the current one.  The style contains the letters
// "B" for bold and "I" for italic.  Since each document only carries a
// plain, a bold and an italic font resource, bold-italic text is shown in
// bold.  A size of zero or less keeps the current font size.
//
// The font resources of a document all belong to the family chosen by
// [Options.FontFamily] when the document is created.  The family given
// here is normalized and reported by [Document.FontFamily], but text is
// still shown in the document's family: SetFont("times", ...) on a
// Helvetica document gives Helvetica text.
func (d *Document) SetFont(family, style string, size float64) {
	if family != "" {
		fam, _ := font.NormalizeFamily(family)
		d.fontFamily = fam
	}
	d.fontStyle = font.ParseStyle(style)
	d.fontKey = font.KeyFor(d.fontStyle)
	if size > 0 {
		d.fontSizePt = size
	}
}

// SetFontSize sets the font size in points.
func (d *Document) SetFontSize(size float64) {
	if size > 0 {
		d.fontSizePt = size
	}
}

// SetTextColor sets the color used for text, from 8-bit components.
func (d *Document) SetTextColor(r, g, b int) {
	d.textColor = color.FromBytes(r, g, b)
}

// SetTextGray sets a gray level, between 0 (black) and 255 (white),
// for text.
func (d *Document) SetTextGray(v int) {
	d.textColor = color.Gray(v)
}

// SetDrawColor sets the color used for lines and cell borders.
func (d *Document) SetDrawColor(r, g, b int) {
	d.drawColor = color.FromBytes(r, g, b)
}

// SetDrawGray sets a gray level for lines and cell borders.
func (d *Document) SetDrawGray(v int) {
	d.drawColor = color.Gray(v)
}

// SetFillColor sets the color used for filled cells and rectangles.
func (d *Document) SetFillColor(r, g, b int) {
	d.fillColor = color.FromBytes(r, g, b)
}

// SetFillGray sets a gray level for filled cells and rectangles.
func (d *Document) SetFillGray(v int) {
	d.fillColor = color.Gray(v)
}

// SetLineWidth sets the width of lines and borders, in user units.
func (d *Document) SetLineWidth(width float64) {
	d.lineWidth = width
}

// GetX returns the horizontal position of the cursor.
func (d *Document) GetX() float64 {
	return d.x
}

// GetY returns the vertical position of the cursor, measured from the
// top of the page.
func (d *Document) GetY() float64 {
	return d.y
}

// SetX moves the cursor horizontally.  Negative values are measured from
// the right edge of the page.
func (d *Document) SetX(x float64) {
	if x >= 0 {
		d.x = x
	} else {
		d.x = d.w + x
	}
}

// SetY moves the cursor vertically and resets the horizontal position to
// the left margin.  Negative values are measured from the bottom edge of
// the page.
func (d *Document) SetY(y float64) {
	d.x = d.lMargin
	if y >= 0 {
		d.y = y
	} else {
		d.y = d.h + y
	}
}

// SetXY moves the cursor.
func (d *Document) SetXY(x, y float64) {
	d.SetY(y)
	d.SetX(x)
}

// PageNo returns the number of the current page, starting at 1.
// Before the first call to AddPage the result is 0.
func (d *Document) PageNo() int {
	return len(d.pages)
}

// PageSize returns the page width and height in user units.
func (d *Document) PageSize() (w, h float64) {
	return d.w, d.h
}

// ScaleFactor returns the number of PDF points per user unit.
func (d *Document) ScaleFactor() float64 {
	return d.k
}

// Orientation returns the page orientation of the document.
func (d *Document) Orientation() Orientation {
	return d.orientation
}

// Margins returns the left, top, right and bottom margins.
func (d *Document) Margins() (left, top, right, bottom float64) {
	return d.lMargin, d.tMargin, d.rMargin, d.bMargin
}

// CellMargin returns the horizontal cell padding.
func (d *Document) CellMargin() float64 {
	return d.cMargin
}

// FontSizePt returns the current font size in points.
func (d *Document) FontSizePt() float64 {
	return d.fontSizePt
}

// FontFamily returns the normalized name of the current font family.
func (d *Document) FontFamily() font.Family {
	return d.fontFamily
}

// GetStringWidth returns an estimate of the width of s in the current
// font, in user units.  All characters are assumed to be half an em wide.
func (d *Document) GetStringWidth(s string) float64 {
	return font.Width(s, d.fontSizePt) / d.k
}
