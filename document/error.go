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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedUnit is matched by errors reporting an unknown
	// measurement unit.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrUnknownPageSize is matched by errors reporting an unknown page
	// size preset or an invalid explicit page size.
	ErrUnknownPageSize = errors.New("unknown page size")

	// ErrWriteFailed is matched by errors which occur while delivering
	// the finished document.
	ErrWriteFailed = errors.New("write failed")

	// ErrOrientation indicates an invalid orientation string.
	ErrOrientation = errors.New("invalid orientation")
)

// UnsupportedUnitError is returned when a document is created with a
// unit other than "pt", "mm", "cm" or "in".
type UnsupportedUnitError struct {
	Unit string
}

func (err *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported unit %q (use pt, mm, cm or in)", err.Unit)
}

// Is allows errors.Is(err, ErrUnsupportedUnit) to succeed.
func (err *UnsupportedUnitError) Is(target error) bool {
	return target == ErrUnsupportedUnit
}

// UnknownPageSizeError is returned for unrecognized page size presets and
// for explicit sizes which are not positive and finite.
type UnknownPageSizeError struct {
	Size  PageSize
	Known []string
}

func (err *UnknownPageSizeError) Error() string {
	if err.Size.Name != "" {
		return fmt.Sprintf("unknown page size %q (known sizes: %s)",
			err.Size.Name, strings.Join(err.Known, ", "))
	}
	return fmt.Sprintf("invalid page size %gx%g", err.Size.Width, err.Size.Height)
}

// Is allows errors.Is(err, ErrUnknownPageSize) to succeed.
func (err *UnknownPageSizeError) Is(target error) bool {
	return target == ErrUnknownPageSize
}

// WriteFailedError reports a failure to deliver a finished document to
// its destination.
type WriteFailedError struct {
	// Dest describes the destination, for example a file name.
	Dest string
	Err  error
}

func (err *WriteFailedError) Error() string {
	return "writing PDF to " + err.Dest + ": " + err.Err.Error()
}

// Is allows errors.Is(err, ErrWriteFailed) to succeed.
func (err *WriteFailedError) Is(target error) bool {
	return target == ErrWriteFailed
}

func (err *WriteFailedError) Unwrap() error {
	return err.Err
}
