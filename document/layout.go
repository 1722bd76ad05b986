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
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/minipdf/font"
	"seehuhn.de/go/minipdf/page"
)

const (
	// lineHeightMM is the default cell height per point of font size,
	// in millimetres.
	lineHeightMM = 0.35

	// baselineShift is the distance of the baseline above the bottom
	// of a cell, as a fraction of the font size.
	baselineShift = 0.3
)

// Align describes the horizontal alignment of text inside a cell.
type Align int

// These are the supported alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign converts "L", "C" or "R" (in any case) to an Align value.
// All other strings give AlignLeft.
func ParseAlign(s string) Align {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C":
		return AlignCenter
	case "R":
		return AlignRight
	default:
		return AlignLeft
	}
}

// AddPage closes the current page, if any, and starts a new one.  The
// cursor is moved to the top-left corner of the text area.
//
// AddPage panics if the document has already been written.
func (d *Document) AddPage() {
	if d.finished {
		panic("document: AddPage called after the document was written")
	}
	if d.pageOpen {
		d.currentPage().Close()
	}
	d.pages = append(d.pages, page.New())
	d.pageOpen = true
	d.x = d.lMargin
	d.y = d.tMargin
}

func (d *Document) currentPage() *page.Page {
	return d.pages[len(d.pages)-1]
}

func (d *Document) mustHavePage(op string) *page.Page {
	if !d.pageOpen {
		panic(fmt.Sprintf("document: %s called without an open page", op))
	}
	return d.currentPage()
}

// defaultLineHeight returns the cell height used when none is given.
func (d *Document) defaultLineHeight() float64 {
	return lineHeightMM * d.fontSizePt * unitMM / d.k
}

// Cell draws a cell with the top-left corner at the cursor.
//
// If h is zero or negative, a height derived from the font size is used.
// If w is zero or negative, the cell extends to the right margin.
// If border is set, the four edges of the cell are drawn using the
// current draw color; if fill is set, the cell background is painted in
// the current fill color.  The text is drawn in the current font and
// text color, even if it is empty.
//
// If newLine is set, the cursor moves to the start of the next line and
// a new page is started if the cursor reaches the page break trigger.
// Otherwise the cursor moves to the right edge of the cell.
func (d *Document) Cell(w, h float64, text string, border, newLine bool, align Align, fill bool) {
	p := d.mustHavePage("Cell")

	if h <= 0 {
		h = d.defaultLineHeight()
	}
	if w <= 0 {
		w = d.w - d.rMargin - d.x
	}

	if border || fill {
		p.Append(&page.Rect{
			X:         d.x,
			Y:         d.y,
			W:         w,
			H:         h,
			Border:    border,
			Fill:      fill,
			DrawColor: d.drawColor,
			FillColor: d.fillColor,
			LineWidth: d.lineWidth,
		})
	}

	var dx float64
	switch align {
	case AlignCenter:
		dx = (w - d.GetStringWidth(text)) / 2
	case AlignRight:
		dx = w - d.cMargin - d.GetStringWidth(text)
	default:
		dx = d.cMargin
	}
	p.Append(&page.Text{
		X:       d.x + dx,
		Y:       d.y + h - baselineShift*d.fontSizePt/d.k,
		Content: text,
		Font:    d.fontKey,
		SizePt:  d.fontSizePt,
		Color:   d.textColor,
	})

	d.lasth = h
	if newLine {
		d.x = d.lMargin
		d.y += h
		d.checkPageBreak()
	} else {
		d.x += w
	}
}

// MultiCell draws text which is wrapped to the cell width, one cell per
// line.  The lines are stacked vertically, starting at the cursor, and
// pages are broken automatically.  Explicit line breaks in the text
// start a new line.  Afterwards the cursor is at the left margin, below
// the last line.
//
// If border is set, the first and the last line are drawn with a full
// border.  Lines in between carry no border.
func (d *Document) MultiCell(w, h float64, text string, border bool, align Align, fill bool) {
	d.mustHavePage("MultiCell")

	if w <= 0 {
		w = d.w - d.rMargin - d.x
	}
	charWidth := font.AverageWidth * d.fontSizePt / d.k
	maxChars := int(math.Floor((w - 2*d.cMargin) / charWidth))
	if maxChars < 1 {
		maxChars = 1
	}

	lines := SplitLines(text, maxChars)
	borders := MultiCellBorders(len(lines), border)
	x0 := d.x
	for i, line := range lines {
		d.x = x0
		d.Cell(w, h, line, borders[i], true, align, fill)
	}
	d.x = d.lMargin
}

// SplitLines breaks text into lines of at most maxChars characters.
//
// Line endings "\r\n" and "\r" are treated like "\n", and a single
// trailing newline is ignored.  Paragraphs are wrapped at spaces; words
// which are longer than maxChars are broken.  The result always contains
// at least one line.
func SplitLines(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrap(para, maxChars)...)
	}
	return lines
}

func wrap(para string, maxChars int) []string {
	var lines []string
	cur := ""
	curLen := 0
	for _, word := range strings.Fields(para) {
		for utf8.RuneCountInString(word) > maxChars {
			if cur != "" {
				lines = append(lines, cur)
				cur, curLen = "", 0
			}
			r := []rune(word)
			lines = append(lines, string(r[:maxChars]))
			word = string(r[maxChars:])
		}

		n := utf8.RuneCountInString(word)
		switch {
		case cur == "":
			cur, curLen = word, n
		case curLen+1+n <= maxChars:
			cur += " " + word
			curLen += 1 + n
		default:
			lines = append(lines, cur)
			cur, curLen = word, n
		}
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// MultiCellBorders returns, for a MultiCell of n lines, which lines are
// drawn with a border.  If border is false, no line has a border.
// Otherwise the first and the last line have a border and all lines in
// between have none.
func MultiCellBorders(n int, border bool) []bool {
	res := make([]bool, n)
	if border && n > 0 {
		res[0] = true
		res[n-1] = true
	}
	return res
}

// Ln moves the cursor to the left margin of the next line.  The line
// height defaults to the height of the last cell.  A new page is
// started if the cursor reaches the page break trigger.
func (d *Document) Ln(h ...float64) {
	d.mustHavePage("Ln")

	d.x = d.lMargin
	if len(h) > 0 {
		d.y += h[0]
	} else {
		d.y += d.lasth
	}
	d.checkPageBreak()
}

func (d *Document) checkPageBreak() {
	if d.autoPageBreak && d.y >= d.pageBreakTrigger {
		d.AddPage()
	}
}

// Line draws a line from (x1, y1) to (x2, y2) using the current draw
// color and line width.
func (d *Document) Line(x1, y1, x2, y2 float64) {
	p := d.mustHavePage("Line")
	p.Append(&page.Line{
		X1:        x1,
		Y1:        y1,
		X2:        x2,
		Y2:        y2,
		DrawColor: d.drawColor,
		LineWidth: d.lineWidth,
	})
}

// Rect draws a rectangle with top-left corner (x, y).  The style is "D"
// (or empty) to draw the outline, "F" to fill, or "DF"/"FD" to do both.
func (d *Document) Rect(x, y, w, h float64, style string) {
	p := d.mustHavePage("Rect")

	var border, fill bool
	switch strings.ToUpper(style) {
	case "F":
		fill = true
	case "DF", "FD":
		border = true
		fill = true
	default:
		border = true
	}
	p.Append(&page.Rect{
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		Border:    border,
		Fill:      fill,
		DrawColor: d.drawColor,
		FillColor: d.fillColor,
		LineWidth: d.lineWidth,
	})
}

// Text draws a single line of text, with the baseline starting at (x, y).
// The cursor is not moved.
func (d *Document) Text(x, y float64, text string) {
	p := d.mustHavePage("Text")
	p.Append(&page.Text{
		X:       x,
		Y:       y,
		Content: text,
		Font:    d.fontKey,
		SizePt:  d.fontSizePt,
		Color:   d.textColor,
	})
}
