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

// Blsinfo prints information about a Blockland save file.
//
// Usage:
//
//	blsinfo [options] file.bls
//
// The file may be compressed using gzip or zstd.  Use "-" to read from
// standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/term"

	"seehuhn.de/go/blsave"
	"seehuhn.de/go/blsave/escape"
)

type options struct {
	stats bool
	yaml  bool
	chars bool
	strip bool
}

func main() {
	stats := flag.Bool("stats", false, "show the number of bricks of each type")
	asYAML := flag.Bool("yaml", false, "dump the contents of the file as YAML")
	raw := flag.Bool("raw", false, "do not remove formatting codes from the description")
	chars := flag.Bool("chars", false, "list the special characters used in the description")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file.bls\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	log.SetFlags(0)
	log.SetPrefix("blsinfo: ")

	opt := &options{
		stats: *stats,
		yaml:  *asYAML,
		chars: *chars,
		strip: !*raw && term.IsTerminal(int(os.Stdout.Fd())),
	}
	err := run(os.Stdout, flag.Arg(0), opt)
	if err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, fname string, opt *options) error {
	in, err := openInput(fname)
	if err != nil {
		return err
	}
	defer in.Close()

	r, err := blsave.NewReader(in)
	if err != nil {
		return err
	}

	if opt.yaml {
		return dumpYAML(w, r)
	}

	description := r.Description()
	if opt.strip {
		description = escape.StripControl(description)
	}
	fmt.Fprintln(w, "Description:")
	fmt.Fprintln(w, description)
	if opt.chars {
		listChars(w, r.Description())
	}

	fmt.Fprintf(w, "Opaque color count: %d\n", r.Colors().OpaqueCount())

	expected, hasExpected := r.BrickCount()
	if hasExpected {
		fmt.Fprintf(w, "Expected brick count: %d\n", expected)
	} else {
		fmt.Fprintln(w, "Expected brick count: unknown")
	}

	counts := make(map[string]int)
	for brick, err := range r.All() {
		if err != nil {
			fmt.Fprintf(w, "Actual brick count: %d (incomplete)\n", r.BricksRead())
			return err
		}
		counts[brick.UIName]++
	}

	if final, ok := r.BrickCount(); ok && (!hasExpected || final != expected) {
		fmt.Fprintf(w, "Trailing brick count: %d\n", final)
	}
	fmt.Fprintf(w, "Actual brick count: %d\n", r.BricksRead())

	if opt.stats {
		names := maps.Keys(counts)
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(w, "%8d  %s\n", counts[name], name)
		}
	}

	return nil
}
