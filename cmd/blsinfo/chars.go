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

package main

import (
	"fmt"
	"io"
	"slices"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/blsave/escape"
)

// listChars prints the distinct non-ASCII characters and formatting codes
// found in the description.
func listChars(w io.Writer, description string) {
	seen := make(map[rune]bool)
	for _, r := range description {
		if r >= 0x80 || escape.IsControl(r) {
			seen[r] = true
		}
	}
	if len(seen) == 0 {
		return
	}

	var chars []rune
	for r := range seen {
		chars = append(chars, r)
	}
	slices.Sort(chars)

	fmt.Fprintln(w, "Special characters:")
	for _, r := range chars {
		if esc := escape.ControlEscape(r); esc != "" {
			fmt.Fprintf(w, "  U+%04X  %s formatting code\n", r, esc)
			continue
		}
		name := runenames.Name(r)
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, "  U+%04X  %c  %s\n", r, r, name)
	}
}
