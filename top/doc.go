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

/*Package top parses Gromacs topology (top) and parameter (itp) files.

The format is section-oriented text: bracketed [ section ] headers followed
by whitespace-separated data lines, ';' comments (full line or trailing),
and #include directives pointing to further parameter files, relative to
the file that includes them.

The entry point is TopFileRead, which reads the root top file eagerly
(system name, molecule counts, include list, inline content) and lets the
caller pull the force field and the molecule topologies on demand. The
lower-level pieces (Normalize, FindSections, the Decode* functions,
ResolveIncludes, ReadForceField, ReadMolTops) are exported too, for reading
loose itp files without a root topology.

Everything here is synchronous and allocates its own state per call; no
results are cached between calls.
*/
package top
