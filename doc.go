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

// Package blsave reads Blockland save files (".bls").
//
// A save file consists of a banner line, a free-form description, a
// colorset of 64 colors, and a sequence of bricks.  Each brick is described
// by one line of text, optionally followed by lines starting with "+-"
// which carry extended attributes such as the brick's owner, its name, or
// its events.  A "Linecount" line states how many bricks the file claims to
// contain; depending on the version of the game which wrote the file, this
// line is found before the first brick, after the last brick, or both.
//
// All text in the file is encoded using the Windows-1252 code page.  Like
// the game itself, the reader is lenient: missing or unparsable numbers are
// replaced by zero, and only damage to the structure of the file causes an
// error.
//
// Use [NewReader] to read the file header, and then call [Reader.Next]
// repeatedly, or range over [Reader.All], to read the bricks:
//
//	r, err := blsave.NewReader(fd)
//	if err != nil {
//		return err
//	}
//	fmt.Println(r.Description())
//	for brick, err := range r.All() {
//		if err != nil {
//			return err
//		}
//		fmt.Println(brick.UIName, brick.Position)
//	}
package blsave
