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

package pdf

import (
	"errors"
	"strconv"
)

var (
	errVersion       = errors.New("unsupported PDF version")
	errClosed        = errors.New("PDF writer already closed")
	errNoCatalog     = errors.New("missing /Catalog")
	errZeroReference = errors.New("invalid reference: object number 0")

	errNotAllocated = errors.New("not allocated")
	errDuplicate    = errors.New("already written")
)

// ObjectError reports an attempt to write an indirect object which
// cannot be written.
type ObjectError struct {
	Ref Reference
	Err error
}

func (err *ObjectError) Error() string {
	return "object " + strconv.FormatUint(uint64(err.Ref), 10) + " " + err.Err.Error()
}

func (err *ObjectError) Unwrap() error {
	return err.Err
}
