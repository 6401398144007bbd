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
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/blsave"
)

type yamlHeader struct {
	Description string       `yaml:"description"`
	BrickCount  *int         `yaml:"brick_count,omitempty"`
	Colors      [][4]float32 `yaml:"colors"`
}

type yamlBrick struct {
	Name       string     `yaml:"name"`
	Position   [3]float32 `yaml:"position,flow"`
	Angle      uint8      `yaml:"angle"`
	Baseplate  bool       `yaml:"baseplate,omitempty"`
	Color      uint8      `yaml:"color"`
	Print      string     `yaml:"print,omitempty"`
	ColorFX    uint8      `yaml:"color_fx,omitempty"`
	ShapeFX    uint8      `yaml:"shape_fx,omitempty"`
	Raycasting bool       `yaml:"raycasting"`
	Collision  bool       `yaml:"collision"`
	Rendering  bool       `yaml:"rendering"`
	Extra      []string   `yaml:"extra,omitempty"`
}

type yamlTrailer struct {
	Bricks     int  `yaml:"bricks"`
	BrickCount *int `yaml:"brick_count,omitempty"`
}

// dumpYAML writes the contents of the save file as a stream of YAML
// documents: a header, one document per brick, and a trailer with the
// brick counts.
func dumpYAML(w io.Writer, r *blsave.Reader) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	header := &yamlHeader{
		Description: r.Description(),
		BrickCount:  brickCount(r),
	}
	for _, c := range r.Colors() {
		header.Colors = append(header.Colors, [4]float32{c.R, c.G, c.B, c.A})
	}
	err := enc.Encode(header)
	if err != nil {
		return err
	}

	for brick, err := range r.All() {
		if err != nil {
			return errors.Join(err, enc.Close())
		}
		err = enc.Encode(&yamlBrick{
			Name:       brick.UIName,
			Position:   [3]float32{brick.Position.X, brick.Position.Y, brick.Position.Z},
			Angle:      brick.Angle,
			Baseplate:  brick.IsBaseplate,
			Color:      brick.ColorIndex,
			Print:      brick.Print,
			ColorFX:    brick.ColorFX,
			ShapeFX:    brick.ShapeFX,
			Raycasting: brick.Raycasting,
			Collision:  brick.Collision,
			Rendering:  brick.Rendering,
			Extra:      brick.UnknownExtra,
		})
		if err != nil {
			return err
		}
	}

	err = enc.Encode(&yamlTrailer{
		Bricks:     r.BricksRead(),
		BrickCount: brickCount(r),
	})
	if err != nil {
		return err
	}
	return enc.Close()
}

func brickCount(r *blsave.Reader) *int {
	n, ok := r.BrickCount()
	if !ok {
		return nil
	}
	return &n
}
