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

// Package lines splits a Windows-1252 encoded byte stream into decoded
// text lines.
package lines

import (
	"bufio"
	"io"

	"seehuhn.de/go/blsave/cp1252"
)

// Reader reads decoded lines from a byte stream.
// A Reader is forward-only and cannot be restarted.
type Reader struct {
	r    *bufio.Reader
	buf  []byte
	line int
	done bool
}

// NewReader returns a new Reader which reads from r.
// If r is already a *bufio.Reader, it is used directly.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: bufio.NewReader(r),
	}
}

// Next returns the next line, without the line terminator.
//
// Both "\n" and "\r\n" are recognised as line terminators.  The last line
// of the input does not need to be terminated.  At the end of input, Next
// returns io.EOF.  If the underlying reader fails, the error is returned
// and all subsequent calls return io.EOF.
func (r *Reader) Next() (string, error) {
	if r.done {
		return "", io.EOF
	}

	r.buf = r.buf[:0]
	for {
		chunk, err := r.r.ReadSlice('\n')
		r.buf = append(r.buf, chunk...)
		if err == bufio.ErrBufferFull {
			continue
		} else if err == io.EOF {
			r.done = true
			if len(r.buf) == 0 {
				return "", io.EOF
			}
			break
		} else if err != nil {
			r.done = true
			return "", err
		}
		break
	}
	r.line++

	buf := r.buf
	if n := len(buf); n > 0 && buf[n-1] == '\n' {
		buf = buf[:n-1]
		if n := len(buf); n > 0 && buf[n-1] == '\r' {
			buf = buf[:n-1]
		}
	}
	return cp1252.DecodeString(buf), nil
}

// Line returns the 1-based number of the line most recently returned by
// Next, or 0 if no line has been read yet.
func (r *Reader) Line() int {
	return r.line
}
