/*
 * gro.go, part of moltop.
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
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//A gro line is fixed-column: 45 characters (newline included) for positions
//only, 69 with velocities. Columns, 0-based:
//[0:5) resid [5:10) resname [10:15) atom name [15:20) index
//[20:28) x [28:36) y [36:44) z  and, if present,
//[44:52) vx [52:60) vy [60:68) vz
const (
	groPosLen = 44 //lenghts after removing the newline
	groVelLen = 68
)

// GroAtom contains one atom of a Gromacs gro coordinate file.
// Velocities are optional in the format; atoms read from a
// positions-only line get zero-valued velocities.
type GroAtom struct {
	ResID    int
	ResName  string
	AtomName string
	Index    int
	X, Y, Z  float64
	VX       float64
	VY       float64
	VZ       float64
}

// GroFile contains a full Gromacs gro coordinate file: the title line, the
// atoms, and the box dimensions from the last line.
type GroFile struct {
	SysName string
	Atoms   []*GroAtom
	Box     []float64
	hasVel  bool
}

// Len returns the number of atoms in the file.
func (G *GroFile) Len() int { return len(G.Atoms) }

// HasVelocities returns true if at least one atom line carried velocities.
func (G *GroFile) HasVelocities() bool { return G.hasVel }

// Coords returns the positions as a Len()x3 dense matrix.
func (G *GroFile) Coords() *mat.Dense {
	r := mat.NewDense(G.Len(), 3, nil)
	for i, a := range G.Atoms {
		r.SetRow(i, []float64{a.X, a.Y, a.Z})
	}
	return r
}

// Velocities returns the velocities as a Len()x3 dense matrix. Atoms read
// from positions-only lines contribute zero rows.
func (G *GroFile) Velocities() *mat.Dense {
	r := mat.NewDense(G.Len(), 3, nil)
	for i, a := range G.Atoms {
		r.SetRow(i, []float64{a.VX, a.VY, a.VZ})
	}
	return r
}

// groAtomFromLine decodes one fixed-column atom line. The line must come
// without its trailing newline.
func groAtomFromLine(line string) (*GroAtom, error) {
	l := len(line)
	if l != groPosLen && l != groVelLen {
		return nil, &FileError{message: "gro atom line not formatted correctly: \"" + line +
			"\" the line should be 45 characters long for positions only, or 69 for positions and velocities"}
	}
	a := new(GroAtom)
	var err error
	a.ResID, err = strconv.Atoi(strings.TrimSpace(line[0:5]))
	if err != nil {
		return nil, err
	}
	a.ResName = strings.TrimSpace(line[5:10])
	a.AtomName = strings.TrimSpace(line[10:15])
	a.Index, err = strconv.Atoi(strings.TrimSpace(line[15:20]))
	if err != nil {
		return nil, err
	}
	coords := make([]float64, 0, 6)
	for i := 20; i < l; i += 8 {
		c, err := strconv.ParseFloat(strings.TrimSpace(line[i:i+8]), 64)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	a.X, a.Y, a.Z = coords[0], coords[1], coords[2]
	if l == groVelLen {
		a.VX, a.VY, a.VZ = coords[3], coords[4], coords[5]
	}
	return a, nil
}

// GroFileRead reads the gro coordinate file name. The file starts with a
// free-text title, then the atom count, then that many fixed-column atom
// lines, then a line with the box dimensions. Lines after the box line are
// ignored. The gro format has no sections or comments, so, unlike the
// topology readers in moltop/top, this one works on raw lines.
func GroFileRead(name string) (*GroFile, error) {
	lines, err := FileLines(name)
	if err != nil {
		return nil, err
	}
	const skip = 2 //title and atom count
	if len(lines) < skip+1 {
		return nil, newFileError(name, "gro file too short: %d lines", len(lines))
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, newFileError(name, "couldn't read the atom count: %v", err)
	}
	if len(lines) < skip+natoms+1 {
		return nil, newFileError(name, "gro file declares %d atoms but has only %d lines", natoms, len(lines))
	}
	G := new(GroFile)
	G.SysName = lines[0]
	G.Atoms = make([]*GroAtom, 0, natoms)
	for _, v := range lines[skip : skip+natoms] {
		at, err := groAtomFromLine(v)
		if err != nil {
			if fe, ok := err.(*FileError); ok {
				fe.filename = name
				fe.Decorate("GroFileRead")
				return nil, fe
			}
			return nil, newFileError(name, "in gro atom line %q: %v", v, err)
		}
		if len(v) == groVelLen {
			G.hasVel = true
		}
		G.Atoms = append(G.Atoms, at)
	}
	box := strings.Fields(lines[skip+natoms])
	if len(box) < 3 {
		return nil, newFileError(name, "box line %q should contain 3 values", lines[skip+natoms])
	}
	G.Box = make([]float64, 0, 3)
	for _, v := range box[:3] {
		b, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, newFileError(name, "couldn't read box dimensions: %v", err)
		}
		G.Box = append(G.Box, b)
	}
	return G, nil
}
