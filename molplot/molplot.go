/*
 * molplot.go, part of moltop.
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

//Package molplot draws quick-look plots from parsed moltop aggregates.
package molplot

import (
	"fmt"

	moltop "github.com/rmera/moltop"
	"github.com/rmera/moltop/top"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Add(plotter.NewGrid())
	return p
}

// Charges plots the partial charge of each atom of a molecule topology
// against its atom id, and saves the plot as plotname.png.
func Charges(M *top.MolTop, plotname string) error {
	if M == nil || len(M.Atoms) == 0 {
		return fmt.Errorf("molplot: molecule topology with no atoms")
	}
	p := basicPlot(M.Name, "Atom id", "Charge (e)")
	pts := make(plotter.XYs, len(M.Atoms))
	for i, a := range M.Atoms {
		pts[i].X = float64(a.ID)
		pts[i].Y = a.Charge
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(s)
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

// Projection plots the XY projection of the coordinates in a gro file, with
// the box X/Y dimensions as the axis ranges, and saves it as plotname.png.
func Projection(G *moltop.GroFile, plotname string) error {
	if G == nil || G.Len() == 0 {
		return fmt.Errorf("molplot: gro file with no atoms")
	}
	p := basicPlot(G.SysName, "X (nm)", "Y (nm)")
	if len(G.Box) >= 2 {
		p.X.Min, p.X.Max = 0, G.Box[0]
		p.Y.Min, p.Y.Max = 0, G.Box[1]
	}
	pts := make(plotter.XYs, G.Len())
	for i, a := range G.Atoms {
		pts[i].X = a.X
		pts[i].Y = a.Y
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(s)
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
