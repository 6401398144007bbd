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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/blsave"
	"seehuhn.de/go/blsave/internal/testsave"
)

var testFile = &testsave.File{
	Description: []string{`\c3Welcome\c0 to my caf\xe9`, "second line"},
	Lines: []string{
		"Linecount 3",
		testsave.BrickLine("2x4", 0, 0, 0.3, 1),
		"+-OWNER 999",
		testsave.BrickLine("1x1", 1, 0, 0.3, 2),
		testsave.BrickLine("2x4", 2, 0, 0.3, 3),
		"Linecount 4",
	},
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fname, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestRun(t *testing.T) {
	fname := writeFile(t, "test.bls", testFile.Bytes())

	buf := &bytes.Buffer{}
	err := run(buf, fname, &options{stats: true, strip: true})
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Description:",
		"Welcome to my café",
		"second line",
		"Opaque color count: 56",
		"Expected brick count: 3",
		"Trailing brick count: 4",
		"Actual brick count: 3",
		"       1  1x1",
		"       2  2x4",
		"",
	}, "\n")
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}
}

func TestChars(t *testing.T) {
	buf := &bytes.Buffer{}
	listChars(buf, blsaveDescription(t))
	want := strings.Join([]string{
		"Special characters:",
		`  U+0001  \c0 formatting code`,
		`  U+0004  \c3 formatting code`,
		"  U+00E9  é  LATIN SMALL LETTER E WITH ACUTE",
		"",
	}, "\n")
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}

	buf.Reset()
	listChars(buf, "plain")
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func blsaveDescription(t *testing.T) string {
	t.Helper()
	r, err := blsave.NewReader(bytes.NewReader(testFile.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	return r.Description()
}

func TestCompressed(t *testing.T) {
	data := testFile.Bytes()

	gzBuf := &bytes.Buffer{}
	gz := gzip.NewWriter(gzBuf)
	gz.Write(data)
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	zstBuf := &bytes.Buffer{}
	zw, err := zstd.NewWriter(zstBuf)
	if err != nil {
		t.Fatal(err)
	}
	zw.Write(data)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	for name, compressed := range map[string][]byte{
		"test.bls":     data,
		"test.bls.gz":  gzBuf.Bytes(),
		"test.bls.zst": zstBuf.Bytes(),
	} {
		fname := writeFile(t, name, compressed)
		in, err := openInput(fname)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		got, err := io.ReadAll(in)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if err := in.Close(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("%s: wrong data", name)
		}
	}
}

func TestYAML(t *testing.T) {
	fname := writeFile(t, "test.bls", testFile.Bytes())

	buf := &bytes.Buffer{}
	err := run(buf, fname, &options{yaml: true})
	if err != nil {
		t.Fatal(err)
	}

	dec := yaml.NewDecoder(buf)
	var header yamlHeader
	if err := dec.Decode(&header); err != nil {
		t.Fatal(err)
	}
	if header.Description != "\x04Welcome\x01 to my café\nsecond line" {
		t.Errorf("wrong description %q", header.Description)
	}
	if len(header.Colors) != 64 || header.BrickCount == nil || *header.BrickCount != 3 {
		t.Errorf("wrong header %v", header)
	}

	var names []string
	for range 3 {
		var brick yamlBrick
		if err := dec.Decode(&brick); err != nil {
			t.Fatal(err)
		}
		names = append(names, brick.Name)
	}
	if d := cmp.Diff([]string{"2x4", "1x1", "2x4"}, names); d != "" {
		t.Error(d)
	}

	var trailer yamlTrailer
	if err := dec.Decode(&trailer); err != nil {
		t.Fatal(err)
	}
	if trailer.Bricks != 3 || trailer.BrickCount == nil || *trailer.BrickCount != 4 {
		t.Errorf("wrong trailer %v", trailer)
	}
	if err := dec.Decode(&trailer); err != io.EOF {
		t.Errorf("extra document: %v", err)
	}
}

func TestRunBroken(t *testing.T) {
	broken := &testsave.File{
		Lines: []string{
			testsave.BrickLine("1x1", 0, 0, 0, 0),
			testsave.BrickLine("1x1", 0, 0, 0, 0),
			"garbage",
		},
	}
	fname := writeFile(t, "broken.bls", broken.Bytes())

	buf := &bytes.Buffer{}
	err := run(buf, fname, &options{})
	if !errors.Is(err, blsave.ErrInvalidBrickLine) {
		t.Errorf("got %v, want %v", err, blsave.ErrInvalidBrickLine)
	}
	if !strings.Contains(buf.String(), "Actual brick count: 1 (incomplete)\n") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	err = run(buf, fname, &options{yaml: true})
	if !errors.Is(err, blsave.ErrInvalidBrickLine) {
		t.Errorf("yaml: got %v, want %v", err, blsave.ErrInvalidBrickLine)
	}
	if !strings.Contains(buf.String(), "name: 1x1\n") {
		t.Errorf("yaml: unexpected output %q", buf.String())
	}

	_, err = openInput(filepath.Join(t.TempDir(), "missing.bls"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want %v", err, os.ErrNotExist)
	}
}
