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

// Package color implements colors in the /DeviceRGB color space.
package color

import (
	"fmt"
	"io"

	"seehuhn.de/go/minipdf/internal/float"
)

// RGB is a color in the /DeviceRGB color space.
// Each component is in the range [0, 1].
//
// RGB values are comparable, so that content stream writers can detect
// whether a color change is needed.
type RGB struct {
	R, G, B float64
}

// Black is the initial color for all drawing operations.
var Black = RGB{}

// FromBytes converts 8-bit color components to an RGB value.
// Components outside the range 0, ..., 255 are clamped.
func FromBytes(r, g, b int) RGB {
	return RGB{
		R: component(r),
		G: component(g),
		B: component(b),
	}
}

// Gray returns the gray level v, with 0 for black and 255 for white.
func Gray(v int) RGB {
	g := component(v)
	return RGB{R: g, G: g, B: g}
}

func component(v int) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 1
	}
	return float64(v) / 255
}

// SetStroke writes the "RG" operator which makes c the stroking color.
func (c RGB) SetStroke(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.components(), "RG")
	return err
}

// SetFill writes the "rg" operator which makes c the non-stroking color.
func (c RGB) SetFill(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.components(), "rg")
	return err
}

func (c RGB) components() string {
	return float.Format(c.R, 3) + " " + float.Format(c.G, 3) + " " + float.Format(c.B, 3)
}
