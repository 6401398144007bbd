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

// Package testsave generates Blockland save files for use in tests.
package testsave

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// Banner is the first line written by the game.
const Banner = "This is a Blockland save file.  You probably shouldn't modify it cause you'll screw it up."

// File describes the contents of a save file.
type File struct {
	// Banner replaces the default banner line, if non-empty.
	Banner string

	Description []string

	// DescriptionCount replaces the description line count, if non-empty.
	DescriptionCount string

	// Colors holds the colorset lines.  If this is nil, DefaultColors is
	// used.
	Colors []string

	// Lines holds the brick section, including "Linecount" lines.
	Lines []string

	// CRLF selects Windows line terminators.
	CRLF bool

	// NoFinalNewline omits the terminator after the last line.
	NoFinalNewline bool
}

// Bytes returns the Windows-1252 encoded file.
// It panics if any of the text cannot be represented in Windows-1252.
func (f *File) Bytes() []byte {
	var lines []string

	banner := f.Banner
	if banner == "" {
		banner = Banner
	}
	lines = append(lines, banner)

	count := f.DescriptionCount
	if count == "" {
		count = strconv.Itoa(len(f.Description))
	}
	lines = append(lines, count)
	lines = append(lines, f.Description...)

	colors := f.Colors
	if colors == nil {
		colors = DefaultColors()
	}
	lines = append(lines, colors...)
	lines = append(lines, f.Lines...)

	eol := "\n"
	if f.CRLF {
		eol = "\r\n"
	}

	enc := charmap.Windows1252.NewEncoder()
	buf := &bytes.Buffer{}
	for i, line := range lines {
		data, err := enc.String(line)
		if err != nil {
			panic(fmt.Sprintf("line %d: %v", i+1, err))
		}
		buf.WriteString(data)
		if i < len(lines)-1 || !f.NoFinalNewline {
			buf.WriteString(eol)
		}
	}
	return buf.Bytes()
}

// DefaultColors returns 64 colorset lines, in the format used by the game.
// Color i has red component i/63 and alpha 1, except for the last eight
// colors which are half transparent.
func DefaultColors() []string {
	res := make([]string, 64)
	for i := range res {
		alpha := 1.0
		if i >= 56 {
			alpha = 0.5
		}
		res[i] = fmt.Sprintf("%f %f %f %f", float64(i)/63, 0.0, 1.0, alpha)
	}
	return res
}

// BrickLine formats the main line of a brick, in the format used by the game.
func BrickLine(uiName string, x, y, z float32, colorIndex int) string {
	return fmt.Sprintf("%s\" %g %g %g 0 0 %d  0 0 1 1 1", uiName, x, y, z, colorIndex)
}
