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

// Package escape resolves the backslash escapes used in the description
// of Blockland save files.
//
// The escapes are those of the Torque script language: "\xHH" for a byte in
// hexadecimal, "\r", "\n" and "\t" for the usual control characters, and
// "\cX" for the rich-text formatting codes of the game's GUI controls.
// Malformed escapes are never an error; they are copied to the output
// unchanged.
package escape

import (
	"strings"

	"seehuhn.de/go/blsave/cp1252"
)

// ControlCodes maps the character following "\c" to the formatting code
// it stands for.
var ControlCodes = map[rune]rune{
	'r': 0x0F,
	'p': 0x10,
	'o': 0x11,
	'0': 0x01,
	'1': 0x02,
	'2': 0x03,
	'3': 0x04,
	'4': 0x05,
	'5': 0x06,
	'6': 0x07,
	'7': 0x0B,
	'8': 0x0C,
	'9': 0x0E,
}

// Collapse returns s with all escape sequences resolved.
func Collapse(s string) string {
	return string(AppendCollapsed(nil, s))
}

// AppendCollapsed resolves the escape sequences in s and appends the
// result to dst.
//
// A "\c0" escape at the very start of the output (len(dst) == 0) is
// preceded by an additional 0x02 code.
func AppendCollapsed(dst []rune, s string) []rune {
	rr := []rune(s)
	for i := 0; i < len(rr); i++ {
		if rr[i] != '\\' {
			dst = append(dst, rr[i])
			continue
		}

		i++
		if i >= len(rr) {
			dst = append(dst, '\\')
			break
		}

		switch c := rr[i]; c {
		case 'x':
			switch {
			case i+2 < len(rr):
				h1, h2 := rr[i+1], rr[i+2]
				i += 2
				hi, ok1 := hexDigit(h1)
				lo, ok2 := hexDigit(h2)
				if ok1 && ok2 {
					dst = append(dst, cp1252.Decode(hi<<4|lo))
				} else {
					dst = append(dst, '\\', 'x', h1, h2)
				}
			case i+1 < len(rr):
				i++
				dst = append(dst, '\\', 'x', rr[i])
			default:
				dst = append(dst, '\\', 'x')
			}
		case 'c':
			if i+1 >= len(rr) {
				dst = append(dst, '\\', 'c')
				break
			}
			i++
			code, ok := ControlCodes[rr[i]]
			if !ok {
				dst = append(dst, '\\', 'c', rr[i])
				break
			}
			if rr[i] == '0' && len(dst) == 0 {
				dst = append(dst, 0x02)
			}
			dst = append(dst, code)
		case 'r':
			dst = append(dst, '\r')
		case 'n':
			dst = append(dst, '\n')
		case 't':
			dst = append(dst, '\t')
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

func hexDigit(c rune) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return byte(c - '0'), true
	case c >= 'a' && c <= 'f':
		return byte(c - 'a' + 10), true
	case c >= 'A' && c <= 'F':
		return byte(c - 'A' + 10), true
	}
	return 0, false
}

// IsControl reports whether r is one of the formatting codes produced
// by a "\c" escape.
func IsControl(r rune) bool {
	switch r {
	case 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x0B, 0x0C, 0x0E, 0x0F, 0x10, 0x11:
		return true
	}
	return false
}

// StripControl removes all formatting codes from s.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// ControlEscape returns the "\c" escape which produces the formatting code
// r, or the empty string if r is not a formatting code.
func ControlEscape(r rune) string {
	for c, code := range ControlCodes {
		if code == r {
			return `\c` + string(c)
		}
	}
	return ""
}
