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
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() error {
	var firstErr error
	for i := len(in.closers) - 1; i >= 0; i-- {
		err := in.closers[i].Close()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// openInput opens the named file for reading.  The name "-" refers to
// standard input.  Compressed files are decompressed on the fly.
func openInput(fname string) (io.ReadCloser, error) {
	in := &input{}

	var r io.Reader
	if fname == "-" {
		r = os.Stdin
	} else {
		fd, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		in.closers = append(in.closers, fd)
		r = fd
	}

	r, err := decompress(r, in)
	if err != nil {
		in.Close()
		return nil, err
	}
	in.Reader = r
	return in, nil
}

// decompress checks the first bytes of r for a gzip or zstd header and
// returns a reader for the decompressed data.  Decoders which need closing
// are added to in.closers.
func decompress(r io.Reader, in *input) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		rc := dec.IOReadCloser()
		in.closers = append(in.closers, rc)
		return bufio.NewReader(rc), nil
	case bytes.HasPrefix(magic, gzipMagic):
		dec, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		in.closers = append(in.closers, dec)
		return bufio.NewReader(dec), nil
	default:
		return br, nil
	}
}
