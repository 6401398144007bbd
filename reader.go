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
	"io"
	"iter"
	"strings"

	"seehuhn.de/go/blsave/escape"
	"seehuhn.de/go/blsave/internal/lines"
)

// maxDescriptionLines is the largest description the game accepts.
const maxDescriptionLines = 1000

// Reader reads a Blockland save file.
//
// The header of the file is read by NewReader.  Bricks are then read one at
// a time using Next or All.  A Reader can only be used once and is not safe
// for concurrent use.
type Reader struct {
	lines *lines.Reader

	description      string
	descriptionLines int
	colors           Palette

	brickCount    int
	hasBrickCount bool

	// one line of lookahead
	peeked   *brickLine
	peekErr  error
	havePeek bool

	bricksRead int
	err        error
}

// NewReader reads the header of a save file, up to the first brick.
//
// Missing or unparsable header values are replaced by zero values.  An
// error is returned if the description is longer than 1000 lines, or if
// reading from r fails.
func NewReader(r io.Reader) (*Reader, error) {
	br := &Reader{
		lines: lines.NewReader(r),
	}

	// This is a Blockland save file.
	// You probably shouldn't modify it cause you'll screw it up.
	_, err := br.readLine()
	if err != nil {
		return nil, err
	}

	line, err := br.readLine()
	if err != nil {
		return nil, err
	}
	n := parseCount(line)
	if n > maxDescriptionLines {
		return nil, &MalformedFileError{
			Line: br.lines.Line(),
			Err:  ErrDescriptionTooLong,
		}
	}
	br.descriptionLines = n
	description := make([]string, n)
	for i := range description {
		description[i], err = br.readLine()
		if err != nil {
			return nil, err
		}
	}
	br.description = escape.Collapse(strings.Join(description, "\n"))

	for i := range br.colors {
		line, err := br.readLine()
		if err != nil {
			return nil, err
		}
		br.colors[i] = parseColor(line)
	}

	// Older versions of the game write the brick count before the bricks.
	// A broken first brick line is reported by the first call to Next.
	bl, err := br.peek()
	if err != nil && !IsMalformed(err) {
		return nil, err
	}
	if bl != nil && bl.kind == lineCount {
		br.consume()
		br.setBrickCount(bl.count)
	}

	return br, nil
}

// Description returns the description of the save file, with all escape
// sequences resolved.  Description lines are separated by "\n".
func (r *Reader) Description() string {
	return r.description
}

// DescriptionLines returns the number of description lines declared in the
// file header.
func (r *Reader) DescriptionLines() int {
	return r.descriptionLines
}

// Colors returns the colorset used by the bricks in the save file.
func (r *Reader) Colors() *Palette {
	return &r.colors
}

// BrickCount returns the number of bricks claimed by the file.  This number
// is not guaranteed to be correct.  The second return value is false if no
// brick count has been seen so far.
//
// Some files state the brick count after the last brick, and some state it
// more than once.  The value returned here is the most recent count seen,
// and is only final once Next has returned io.EOF.
func (r *Reader) BrickCount() (int, bool) {
	return r.brickCount, r.hasBrickCount
}

// BricksRead returns the number of bricks successfully returned by Next so
// far.
func (r *Reader) BricksRead() int {
	return r.bricksRead
}

// Next returns the next brick in the file, together with all extended
// attribute lines which follow it.
//
// At the end of the file, Next returns io.EOF.  Errors are final: once Next
// has returned an error, all subsequent calls return the same error.  A
// brick which was being assembled when the error occurred is discarded.
func (r *Reader) Next() (*Brick, error) {
	if r.err != nil {
		return nil, r.err
	}
	brick, err := r.next()
	if err != nil {
		r.err = err
		return nil, err
	}
	r.bricksRead++
	return brick, nil
}

func (r *Reader) next() (*Brick, error) {
	var base *BrickBase
	for base == nil {
		bl, err := r.peek()
		if err != nil {
			return nil, err
		} else if bl == nil {
			return nil, io.EOF
		}
		r.consume()

		switch bl.kind {
		case lineCount:
			r.setBrickCount(bl.count)
		case lineBase:
			base = &bl.base
		case lineExtra:
			// There is no brick to attach this line to.
		}
	}

	brick := &Brick{BrickBase: *base}
	for {
		bl, err := r.peek()
		if err != nil {
			return nil, err
		} else if bl == nil || bl.kind != lineExtra {
			// A "Linecount" line is left for the next call.
			break
		}
		r.consume()
		brick.UnknownExtra = append(brick.UnknownExtra, bl.extra)
	}
	return brick, nil
}

// All returns an iterator over the remaining bricks in the file.
// If an error occurs, the iterator yields a nil brick together with the
// error and then stops.
func (r *Reader) All() iter.Seq2[*Brick, error] {
	return func(yield func(*Brick, error) bool) {
		for {
			brick, err := r.Next()
			if err == io.EOF {
				return
			}
			if !yield(brick, err) || err != nil {
				return
			}
		}
	}
}

func (r *Reader) setBrickCount(n int) {
	r.brickCount = n
	r.hasBrickCount = true
}

// readLine reads a header line.  At the end of input, the empty string is
// returned.
func (r *Reader) readLine() (string, error) {
	line, err := r.lines.Next()
	if err == io.EOF {
		return "", nil
	} else if err != nil {
		return "", &ReadError{Line: r.lines.Line() + 1, Err: err}
	}
	return line, nil
}

// peek returns the next classified line, without consuming it.
// At the end of input, peek returns nil, nil.
func (r *Reader) peek() (*brickLine, error) {
	if r.havePeek {
		return r.peeked, r.peekErr
	}

	r.peeked, r.peekErr = nil, nil
	line, err := r.lines.Next()
	switch {
	case err == io.EOF:
		// pass
	case err != nil:
		r.peekErr = &ReadError{Line: r.lines.Line() + 1, Err: err}
	default:
		r.peeked, err = parseBrickLine(line)
		if err != nil {
			r.peekErr = &MalformedFileError{Line: r.lines.Line(), Err: err}
		}
	}
	r.havePeek = true
	return r.peeked, r.peekErr
}

// consume discards the line returned by the last call to peek.
func (r *Reader) consume() {
	r.havePeek = false
}
