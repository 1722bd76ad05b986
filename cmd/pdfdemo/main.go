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

// Pdfdemo lays out a sample invoice and writes it as a PDF file.
//
// Usage:
//
//	pdfdemo [options]
//
// By default the invoice is written to "invoice.pdf".  With -o - the file
// is written to standard output, unless this is a terminal.  With -serve
// the invoice is instead served over HTTP at the given address.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"golang.org/x/term"

	"seehuhn.de/go/minipdf/document"
	"seehuhn.de/go/minipdf/internal/xrefcheck"
)

var (
	outName  = flag.String("o", "invoice.pdf", "output file name, or \"-\" for standard output")
	unit     = flag.String("unit", "mm", "measurement unit (pt, mm, cm or in)")
	size     = flag.String("size", "A4", "page size, a preset name or WIDTHxHEIGHT in the chosen unit")
	orient   = flag.String("orient", "P", "page orientation (P or L)")
	rows     = flag.Int("rows", 12, "number of invoice lines")
	serve    = flag.String("serve", "", "serve the invoice over HTTP at this address")
	download = flag.Bool("download", false, "when serving, ask the browser to save the file")
	verify   = flag.Bool("verify", false, "check the structure of the generated file")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pdfdemo: ")
	flag.Parse()

	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	o, err := document.ParseOrientation(*orient)
	if err != nil {
		return err
	}
	pageSize := document.ParsePageSize(*size)

	// check the settings before doing anything else
	_, err = document.New(o, *unit, pageSize, nil)
	if err != nil {
		return err
	}
	newInvoice := func() (document.Generator, error) {
		doc, err := document.New(o, *unit, pageSize, &document.Options{
			Info: &document.Info{
				Title:    "Invoice",
				Creator:  "pdfdemo",
				Producer: "seehuhn.de/go/minipdf",
			},
		})
		if err != nil {
			return nil, err
		}
		layoutInvoice(doc, *rows)
		return doc, nil
	}

	if *serve != "" {
		dest := document.DestInline
		if *download {
			dest = document.DestDownload
		}
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			doc, err := newInvoice()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			_, err = doc.Output(dest, "invoice.pdf", w)
			if err != nil {
				log.Print(err)
			}
		})
		log.Printf("serving on http://%s/", *serve)
		return http.ListenAndServe(*serve, nil)
	}

	doc, err := newInvoice()
	if err != nil {
		return err
	}
	data, err := doc.Output(document.DestString, "", nil)
	if err != nil {
		return err
	}

	if *verify {
		f, err := xrefcheck.Parse(data)
		if err != nil {
			return err
		}
		pages, err := f.Pages()
		if err != nil {
			return err
		}
		log.Printf("%d bytes, %d objects, %d pages: ok", len(data), len(f.Offsets)-1, len(pages))
	}

	if *outName == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal")
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(*outName, data, 0o666)
}

type item struct {
	desc     string
	quantity int
	price    int // in cents
}

func sampleItems(n int) []item {
	products := []string{
		"Consulting, per hour",
		"Travel expenses (flat rate)",
		"Server rental for one month, including backups and monitoring of all services",
		"Licence fee",
	}
	items := make([]item, n)
	for i := range items {
		items[i] = item{
			desc:     products[i%len(products)],
			quantity: 1 + i%3,
			price:    1250 + 375*i,
		}
	}
	return items
}

func money(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// layoutInvoice draws the invoice.  Only the methods of the Generator
// interface are used, so that the layout does not depend on the
// implementation.
func layoutInvoice(g document.Generator, n int) {
	g.AddPage()

	g.SetFont("Helvetica", "B", 20)
	g.Cell(0, 12, "Invoice", false, true, document.AlignLeft, false)
	g.SetFont("", "", 10)
	g.SetTextColor(80, 80, 80)
	g.MultiCell(0, 0, "Example Ltd.\n1 Sample Road\nSampletown", false, document.AlignLeft, false)
	g.SetTextColor(0, 0, 0)
	g.Ln(6)

	left := g.GetX()
	descW := g.GetStringWidth("Description of the item or the service") + 4
	numW := g.GetStringWidth("Quantity") + 6

	g.SetFont("", "B", 10)
	g.SetFillColor(220, 220, 240)
	g.Cell(descW, 8, "Description", true, false, document.AlignLeft, true)
	g.Cell(numW, 8, "Quantity", true, false, document.AlignCenter, true)
	g.Cell(numW, 8, "Price", true, false, document.AlignRight, true)
	g.Cell(numW, 8, "Amount", true, true, document.AlignRight, true)

	g.SetFont("", "", 10)
	total := 0
	for i, it := range sampleItems(n) {
		amount := it.quantity * it.price
		total += amount

		fill := i%2 == 1
		g.SetFillColor(245, 245, 245)
		if len(it.desc) > 38 {
			y := g.GetY()
			g.MultiCell(descW, 6, it.desc, true, document.AlignLeft, fill)
			g.SetXY(left+descW, y)
		} else {
			g.Cell(descW, 6, it.desc, true, false, document.AlignLeft, fill)
		}
		g.Cell(numW, 6, strconv.Itoa(it.quantity), true, false, document.AlignCenter, fill)
		g.Cell(numW, 6, money(it.price), true, false, document.AlignRight, fill)
		g.Cell(numW, 6, money(amount), true, true, document.AlignRight, fill)
	}

	g.SetLineWidth(0.5)
	y := g.GetY() + 2
	g.Line(left, y, left+descW+3*numW, y)
	g.SetXY(left, y+2)
	g.SetFont("", "B", 11)
	g.Cell(descW+2*numW, 8, "Total", false, false, document.AlignRight, false)
	g.Cell(numW, 8, money(total), false, true, document.AlignRight, false)
}
