/*
 * errors.go, part of moltop.
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

import "fmt"

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. If passed an empty
// string, Decorate should just return the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the error returned by the readers in this package. It keeps the
// offending file name and a decoration trail with the callers it went through.
type FileError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

func (err *FileError) Error() string {
	return fmt.Sprintf("moltop: file %s: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err *FileError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error
func (err *FileError) FileName() string { return err.filename }

func newFileError(filename, format string, a ...interface{}) *FileError {
	return &FileError{message: fmt.Sprintf(format, a...), filename: filename}
}
