/*
 * doc.go, part of moltop.
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

/*Package moltop reads molecular-simulation text files into typed, in-memory
data structures.

The root package handles the Gromacs coordinate (gro) format: a title line,
an atom count, fixed-column atom records with positions and optional
velocities, and a final box line. Coordinates and velocities are exposed
both per atom and as gonum matrices.

The subpackage top parses the section-oriented topology/itp grammar
(bracketed [ section ] headers, ';' comments, #include directives) into
force-field parameters and per-molecule topologies.

moltop only builds the in-memory model. It does not run simulations, compute
physics, or write any of the formats back out.
*/
package moltop
