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

// Vec3 is a position in the three-dimensional game world.
type Vec3 struct {
	X, Y, Z float32
}

// Color is an entry of the colorset.
// The components are taken from the file as they are, without clamping.
type Color struct {
	R, G, B, A float32
}

// IsOpaque reports whether the color is fully opaque.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}

// Palette is the colorset of a save file.
// Bricks refer to colors by their index into the palette.
type Palette [64]Color

// Lookup returns the color with index i.
// The second return value is false if i is out of range.
func (p *Palette) Lookup(i uint8) (Color, bool) {
	if int(i) >= len(p) {
		return Color{}, false
	}
	return p[i], true
}

// OpaqueCount returns the number of fully opaque colors in the palette.
func (p *Palette) OpaqueCount() int {
	n := 0
	for _, c := range p {
		if c.IsOpaque() {
			n++
		}
	}
	return n
}

// BrickBase contains the data stored on the main line of a brick.
type BrickBase struct {
	// UIName is the uiName of the fxDTSBrickData datablock used by the brick.
	UIName string

	Position Vec3

	// Angle is the rotation of the brick.
	// Valid values range from 0 through 3, but the value is not checked.
	Angle uint8

	// IsBaseplate is set if the brick's datablock is a baseplate.
	IsBaseplate bool

	// ColorIndex is the index into the palette.
	// Valid values range from 0 through 63, but the value is not checked.
	ColorIndex uint8

	// Print is the name of the print used for print bricks.
	// The empty string represents no print.
	Print string

	ColorFX uint8 // glow, rainbow, ...
	ShapeFX uint8 // undulo, water, ...

	Raycasting bool // whether the brick can be raycasted against
	Collision  bool // whether objects collide with the brick
	Rendering  bool // whether the brick is visible
}

// HasPrint reports whether the brick uses a print.
func (b *BrickBase) HasPrint() bool {
	return b.Print != ""
}

// Brick is a single brick in a save file, including its extended
// attributes.
type Brick struct {
	BrickBase

	// UnknownExtra holds the extended attribute lines following the brick,
	// in the order they appear in the file.  The lines are kept verbatim,
	// including the leading "+-".
	UnknownExtra []string
}
