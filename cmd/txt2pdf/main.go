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

// Txt2pdf converts plain text files to PDF, using a monospaced font.
// Each input file "name.txt" is converted to "name.pdf"; existing files
// are not overwritten.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"seehuhn.de/go/minipdf/document"
	"seehuhn.de/go/minipdf/font"
)

const tabWidth = 4

var (
	fontSize = flag.Float64("size", 10, "font size in points")
	paper    = flag.String("paper", "A4", "paper size")
	wrap     = flag.Bool("wrap", false, "wrap long lines instead of letting them run off the page")
	align    = flag.String("align", "L", "text alignment (L, C or R)")
)

// expandTabs replaces tab characters by spaces, using tab stops every
// tabWidth columns.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	b := &strings.Builder{}
	col := 0
	for _, r := range s {
		if r == '\t' {
			for {
				b.WriteByte(' ')
				col++
				if col%tabWidth == 0 {
					break
				}
			}
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

func convert(in io.Reader, out io.Writer, title string) error {
	doc, err := document.New(document.Portrait, "pt", document.ParsePageSize(*paper), &document.Options{
		FontFamily: font.Courier,
		Info: &document.Info{
			Title:    title,
			Producer: "seehuhn.de/go/minipdf/cmd/txt2pdf",
		},
	})
	if err != nil {
		return err
	}
	doc.SetMargins(72, 72)
	doc.SetAutoPageBreak(true, 72)
	doc.SetFont("", "", *fontSize)
	lineHeight := 1.2 * *fontSize
	a := document.ParseAlign(*align)

	doc.AddPage()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := expandTabs(scanner.Text())
		if *wrap {
			doc.MultiCell(0, lineHeight, line, false, a, false)
		} else {
			doc.Cell(0, lineHeight, line, false, true, a, false)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	_, err = doc.WriteTo(out)
	return err
}

func convertFile(inName, outName string) error {
	fmt.Println(inName, "->", outName)

	in, err := os.Open(inName)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outName)
	if err != nil {
		return err
	}

	err = convert(in, out, inName)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func main() {
	flag.Parse()

	for _, inName := range flag.Args() {
		baseName := strings.TrimSuffix(inName, ".txt")
		var outName string
		for i := 1; ; i++ {
			if i == 1 {
				outName = baseName + ".pdf"
			} else {
				outName = fmt.Sprintf("%s-%d.pdf", baseName, i)
			}
			_, err := os.Stat(outName)
			if os.IsNotExist(err) {
				break
			} else if err != nil {
				log.Fatal(err)
			}
		}
		err := convertFile(inName, outName)
		if err != nil {
			log.Fatal(err)
		}
	}
}
