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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBrickLine(t *testing.T) {
	cases := []struct {
		in  string
		out *brickLine
	}{
		{
			`MyBrick" 1.0 2.0 3.0 0 1 5 Print1 0 0 1 1 1`,
			&brickLine{kind: lineBase, base: BrickBase{
				UIName:      "MyBrick",
				Position:    Vec3{1, 2, 3},
				IsBaseplate: true,
				ColorIndex:  5,
				Print:       "Print1",
				Raycasting:  true,
				Collision:   true,
				Rendering:   true,
			}},
		},
		{
			`1x2 Plate" -4.5 12 0.1 3 0 63  2 4 0 1 0`,
			&brickLine{kind: lineBase, base: BrickBase{
				UIName:     "1x2 Plate",
				Position:   Vec3{-4.5, 12, 0.1},
				Angle:      3,
				ColorIndex: 63,
				ColorFX:    2,
				ShapeFX:    4,
				Collision:  true,
			}},
		},
		{
			// missing fields default to zero
			`2x2" 1 2`,
			&brickLine{kind: lineBase, base: BrickBase{
				UIName:   "2x2",
				Position: Vec3{1, 2, 0},
			}},
		},
		{
			// out-of-range values are truncated, not rejected
			`" x 0 0 260 7 300 a b c d -1 0`,
			&brickLine{kind: lineBase, base: BrickBase{
				Angle:       4,
				IsBaseplate: true,
				ColorIndex:  44,
				Print:       "a",
				Collision:   true,
			}},
		},
		{
			// a stray quote after the first one spoils the x coordinate
			`a" "1 2 3`,
			&brickLine{kind: lineBase, base: BrickBase{
				UIName:   "a",
				Position: Vec3{0, 2, 3},
			}},
		},
		{
			`" `,
			&brickLine{kind: lineBase},
		},
		{
			"+-OWNER 12345",
			&brickLine{kind: lineExtra, extra: "+-OWNER 12345"},
		},
		{
			"+-",
			&brickLine{kind: lineExtra, extra: "+-"},
		},
		{
			// classification by prefix comes before quote parsing
			`+-NTOBJECTNAME "x`,
			&brickLine{kind: lineExtra, extra: `+-NTOBJECTNAME "x`},
		},
		{
			"Linecount 500",
			&brickLine{kind: lineCount, count: 500},
		},
		{
			"Linecount abc",
			&brickLine{kind: lineCount},
		},
		{
			"Linecount ",
			&brickLine{kind: lineCount},
		},
	}
	for _, test := range cases {
		got, err := parseBrickLine(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.out, got, cmp.AllowUnexported(brickLine{})); d != "" {
			t.Errorf("%q: %s", test.in, d)
		}
	}
}

func TestParseBrickLineInvalid(t *testing.T) {
	cases := []string{
		"",
		"no quote at all",
		"Linecount", // missing the space
		"+ -",
		`name"1 2 3`,
		`name"`,
		`name"	1 2 3`,
		`a"b" 1 2 3`,
	}
	for _, in := range cases {
		_, err := parseBrickLine(in)
		if !errors.Is(err, ErrInvalidBrickLine) {
			t.Errorf("%q: got %v, want %v", in, err, ErrInvalidBrickLine)
		}
	}
}
