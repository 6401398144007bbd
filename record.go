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

import "strings"

const (
	brickCountPrefix = "Linecount "
	extraDataPrefix  = "+-"
)

type lineKind int

const (
	lineBase  lineKind = iota // the main line of a brick
	lineExtra                 // an extended attribute line, starting with "+-"
	lineCount                 // a "Linecount" line
)

// brickLine is a classified line from the brick section of a file.
type brickLine struct {
	kind  lineKind
	base  BrickBase // for lineBase
	extra string    // for lineExtra
	count int       // for lineCount
}

// parseBrickLine classifies a line from the brick section of a file and
// parses the fields of brick lines.
//
// The only error returned is ErrInvalidBrickLine.
func parseBrickLine(line string) (*brickLine, error) {
	if strings.HasPrefix(line, extraDataPrefix) {
		return &brickLine{kind: lineExtra, extra: line}, nil
	}
	if rest, ok := strings.CutPrefix(line, brickCountPrefix); ok {
		return &brickLine{kind: lineCount, count: parseCount(rest)}, nil
	}

	uiName, rest, ok := strings.Cut(line, `"`)
	if !ok {
		return nil, ErrInvalidBrickLine
	}
	rest, ok = strings.CutPrefix(rest, " ")
	if !ok {
		return nil, ErrInvalidBrickLine
	}

	b := BrickBase{UIName: uiName}
	var word string
	word, rest = nextWord(rest)
	b.Position.X = parseFloat(word)
	word, rest = nextWord(rest)
	b.Position.Y = parseFloat(word)
	word, rest = nextWord(rest)
	b.Position.Z = parseFloat(word)
	word, rest = nextWord(rest)
	b.Angle = parseByte(word)
	word, rest = nextWord(rest)
	b.IsBaseplate = parseBool(word)
	word, rest = nextWord(rest)
	b.ColorIndex = parseByte(word)
	b.Print, rest = nextWord(rest)
	word, rest = nextWord(rest)
	b.ColorFX = parseByte(word)
	word, rest = nextWord(rest)
	b.ShapeFX = parseByte(word)
	word, rest = nextWord(rest)
	b.Raycasting = parseBool(word)
	word, rest = nextWord(rest)
	b.Collision = parseBool(word)
	word, _ = nextWord(rest)
	b.Rendering = parseBool(word)

	return &brickLine{kind: lineBase, base: b}, nil
}
