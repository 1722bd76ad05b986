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

	"golang.org/x/exp/slices"
)

// Scale factors from user units to PDF points.
const (
	unitPt = 1.0
	unitMM = 72 / 25.4
	unitCM = 72 / 2.54
	unitIn = 72.0
)

// ResolveUnit returns the number of PDF points per user unit.
// The unit name is one of "pt", "mm", "cm" or "in", in any case.
func ResolveUnit(name string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pt":
		return unitPt, nil
	case "mm":
		return unitMM, nil
	case "cm":
		return unitCM, nil
	case "in":
		return unitIn, nil
	}
	return 0, &UnsupportedUnitError{Unit: name}
}

// Orientation selects portrait or landscape pages.
type Orientation int

// These are the supported page orientations.
const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation converts "P", "portrait", "L" or "landscape" (in any
// case) to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "portrait":
		return Portrait, nil
	case "l", "landscape":
		return Landscape, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrOrientation)
}

// PageSize describes the size of the pages of a document.
//
// If Name is set, it names one of the presets "A4", "A5", "Letter" or
// "Legal" (compared case-insensitively) and Width and Height are ignored.
// Otherwise Width and Height give the page size in user units, for
// portrait orientation.
type PageSize struct {
	Name          string
	Width, Height float64
}

// CustomSize returns an explicit page size in user units.
func CustomSize(width, height float64) PageSize {
	return PageSize{Width: width, Height: height}
}

func (s PageSize) String() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// ParsePageSize converts a preset name or a string of the form
// "WIDTHxHEIGHT" to a PageSize.  The result is not validated;
// this happens in [ResolveSize].
func ParsePageSize(s string) PageSize {
	s = strings.TrimSpace(s)
	var w, h float64
	n, err := fmt.Sscanf(strings.ToLower(s), "%gx%g", &w, &h)
	if err == nil && n == 2 {
		return CustomSize(w, h)
	}
	return PageSize{Name: s}
}

// ResolveSize returns the page width and height in user units, where k is
// the number of points per user unit.
// For landscape orientation, width and height are swapped after the size
// has been resolved.
func ResolveSize(size PageSize, o Orientation, k float64) (w, h float64, err error) {
	if size.Name != "" {
		mm, ok := paperSizes[strings.ToLower(strings.TrimSpace(size.Name))]
		if !ok {
			known := slices.Clone(paperNames)
			slices.Sort(known)
			return 0, 0, &UnknownPageSizeError{Size: size, Known: known}
		}
		w = mm[0] * unitMM / k
		h = mm[1] * unitMM / k
	} else {
		if !isPositive(size.Width) || !isPositive(size.Height) {
			return 0, 0, &UnknownPageSizeError{Size: size}
		}
		w, h = size.Width, size.Height
	}

	switch o {
	case Portrait:
	case Landscape:
		w, h = h, w
	default:
		return 0, 0, fmt.Errorf("%s: %w", o, ErrOrientation)
	}
	return w, h, nil
}

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
