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

// Package cp1252 maps the bytes of the Windows-1252 code page to Unicode.
//
// Blockland stores all text in save files using this single-byte encoding.
// The table here is total: every one of the 256 byte values decodes to a
// distinct rune.  The five byte values left undefined by Windows-1252 decode
// to the C1 control characters with the same numeric value, following the
// WHATWG encoding standard.
package cp1252

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Table maps every byte value to the corresponding Unicode code point.
var Table [256]rune

func init() {
	for i := range Table {
		r := charmap.Windows1252.DecodeByte(byte(i))
		if r == utf8.RuneError {
			r = rune(i)
		}
		Table[i] = r
	}
}

// Decode returns the Unicode code point for the byte b.
func Decode(b byte) rune {
	return Table[b]
}

// DecodeString converts a run of Windows-1252 bytes to a string.
func DecodeString(b []byte) string {
	return string(AppendDecoded(make([]rune, 0, len(b)), b))
}

// AppendDecoded appends the decoded form of b to dst and returns the
// extended slice.
func AppendDecoded(dst []rune, b []byte) []rune {
	for _, c := range b {
		dst = append(dst, Table[c])
	}
	return dst
}
