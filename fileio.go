/*
 * fileio.go, part of moltop.
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package moltop

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Gromacs tools accept gzipped parameter files, so we do too. zstd is
//supported as well since it's what we use for everything else anyway.

type fileReader struct {
	io.Reader
	closers []io.Closer
}

func (f *fileReader) Close() error {
	var err error
	for _, c := range f.closers {
		if e := c.Close(); e != nil {
			err = e
		}
	}
	return err
}

// OpenFile opens the file name for reading, transparently decompressing it
// if its name ends in .gz or .zst. The caller must Close the returned reader.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(name) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newFileError(name, "couldn't read gzip data: %v", err)
		}
		return &fileReader{Reader: gz, closers: []io.Closer{gz, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newFileError(name, "couldn't read zstd data: %v", err)
		}
		rc := zr.IOReadCloser()
		return &fileReader{Reader: rc, closers: []io.Closer{rc, f}}, nil
	}
	return &fileReader{Reader: f, closers: []io.Closer{f}}, nil
}

// FileLines reads the whole file name and returns its lines, in order, with
// the trailing newline removed but the rest of each line untouched. The
// formats read by this library are column-sensitive, so no other trimming
// happens here.
func FileLines(name string) ([]string, error) {
	f, err := OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	lines := make([]string, 0, 100)
	var s string
	for s, err = r.ReadString('\n'); ; s, err = r.ReadString('\n') {
		if s != "" {
			lines = append(lines, strings.TrimRight(s, "\r\n"))
		}
		if err != nil {
			break
		}
	}
	if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return lines, nil
}
