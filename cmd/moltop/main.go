/*
 * main.go, part of moltop.
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

//moltop prints summaries of Gromacs coordinate and topology files. It is a
//thin wrapper over the library; all the parsing lives there.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	moltop "github.com/rmera/moltop"
	"github.com/rmera/moltop/top"
	"github.com/spf13/cobra"
)

var natoms int

func main() {
	root := &cobra.Command{
		Use:   "moltop",
		Short: "Read Gromacs gro/top/itp files and print what's in them",
	}
	gro := &cobra.Command{
		Use:   "gro FILE",
		Short: "Summarize a gro coordinate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return groSummary(args[0])
		},
	}
	gro.Flags().IntVarP(&natoms, "atoms", "n", 10, "how many atom records to print")
	topc := &cobra.Command{
		Use:   "top FILE",
		Short: "Summarize a topology file, its force field and its molecule types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return topSummary(args[0])
		},
	}
	root.AddCommand(gro, topc)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func groSummary(name string) error {
	G, err := moltop.GroFileRead(name)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%d atoms, velocities: %v, box %v\n", G.SysName, G.Len(), G.HasVelocities(), G.Box)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "resid\tresname\tatom\tindex\tx\ty\tz")
	for i, a := range G.Atoms {
		if i >= natoms {
			fmt.Fprintf(w, "... %d more\n", G.Len()-natoms)
			break
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.3f\t%.3f\t%.3f\n", a.ResID, a.ResName, a.AtomName, a.Index, a.X, a.Y, a.Z)
	}
	return w.Flush()
}

func topSummary(name string) error {
	T, err := top.TopFileRead(name)
	if err != nil {
		return err
	}
	fmt.Printf("system: %s\n", T.System)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "molecule\tcount")
	for _, m := range T.Molecules {
		fmt.Fprintf(w, "%s\t%d\n", m.Name, m.Count)
	}
	w.Flush()
	for _, v := range T.IncludeITPs {
		fmt.Println("include:", v)
	}
	ff, err := T.PullForceField()
	if err != nil {
		return err
	}
	fmt.Printf("force field: nbfunc %d comb-rule %d, %d atomtypes, %d nonbonded, %d/%d/%d bonded types\n",
		ff.Defaults.NBFunc, ff.Defaults.CombRule, len(ff.AtomTypes), len(ff.NonbondedParams),
		len(ff.BondTypes), len(ff.AngleTypes), len(ff.DihedralTypes))
	mols, err := T.PullMolTops()
	if err != nil {
		return err
	}
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "moleculetype\tnrexcl\tatoms\tbonds\tpairs\tangles\tdihedrals")
	for _, m := range mols {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n", m.Name, m.NrExcl,
			len(m.Atoms), len(m.Bonds), len(m.Pairs), len(m.Angles), len(m.Dihedrals))
	}
	return w.Flush()
}
