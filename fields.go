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
	"math"
	"strconv"
	"strings"
)

// The functions in this file implement the lenient number parsing used by
// the game: a field which cannot be parsed is replaced by its zero value.

// nextWord splits off the text up to the next space.  The space is
// consumed.  If there is no space, the whole of s is returned as the word.
func nextWord(s string) (word, rest string) {
	word, rest, _ = strings.Cut(s, " ")
	return word, rest
}

func parseFloat(word string) float32 {
	if strings.ContainsAny(word, "xX_") {
		// hexadecimal floats and digit separators are Go syntax,
		// but are not understood by the game
		return 0
	}
	x, err := strconv.ParseFloat(word, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			// out-of-range values saturate to ±Inf
			return float32(x)
		}
		return 0
	}
	return float32(x)
}

func parseInt(word string) int32 {
	x, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		return 0
	}
	return int32(x)
}

// parseByte parses a signed 32-bit integer and keeps the low 8 bits.
func parseByte(word string) uint8 {
	return uint8(parseInt(word))
}

func parseBool(word string) bool {
	return parseInt(word) != 0
}

// parseCount parses an unsigned integer, as used for line counts.
// A leading plus sign is allowed.
func parseCount(s string) int {
	s = strings.TrimPrefix(s, "+")
	x, err := strconv.ParseUint(s, 10, 64)
	if err != nil || x > math.MaxInt {
		return 0
	}
	return int(x)
}

// parseColor parses a colorset line of the form "R G B A".
func parseColor(line string) Color {
	var word string
	var c Color
	word, line = nextWord(line)
	c.R = parseFloat(word)
	word, line = nextWord(line)
	c.G = parseFloat(word)
	word, line = nextWord(line)
	c.B = parseFloat(word)
	word, _ = nextWord(line)
	c.A = parseFloat(word)
	return c
}
