// seehuhn.de/go/blsave - a library for reading Blockland save files
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

package blsave

import (
	"errors"
	"strconv"
)

var (
	// ErrDescriptionTooLong indicates that the file header announces more
	// than 1000 description lines.
	ErrDescriptionTooLong = errors.New("description is unreasonably long")

	// ErrInvalidBrickLine indicates that a brick line is missing the quote
	// character after the brick name, or the space which must follow it.
	ErrInvalidBrickLine = errors.New("invalid brick line")
)

// MalformedFileError indicates that the save file could not be parsed.
type MalformedFileError struct {
	Line int
	Err  error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (line " + strconv.Itoa(err.Line) + ")"
	}
	return "not a valid BLS file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// ReadError indicates a failure of the underlying reader.
type ReadError struct {
	Line int
	Err  error
}

func (err *ReadError) Error() string {
	return "cannot read line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *ReadError) Unwrap() error {
	return err.Err
}

// IsMalformed reports whether err indicates a problem with the contents of
// the save file, as opposed to a failure of the underlying reader.
func IsMalformed(err error) bool {
	var target *MalformedFileError
	return errors.As(err, &target)
}
