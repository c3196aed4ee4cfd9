/*
Copyright © 2026 the IsoGrid authors.
This file is part of IsoGrid.

IsoGrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

IsoGrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with IsoGrid.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package isogrid computes contour lines (isolines) and filled contour
// bands (isobands) from regular rectangular grids of scalar samples,
// using the marching squares algorithm with on-the-fly merging of the
// per-cell line segments and polygons into maximal polylines and rings.
//
// Isolines trace the curve Z = v; isobands trace the oriented boundary
// of the region vlo ≤ Z < vhi, with holes wound opposite to their outer
// boundaries. Results come back as flat coordinate/path-id buffers
// (PathSet) and convert directly to github.com/ctessum/geom types for
// use with GIS encodings and spatial indexes.
package isogrid

// Version gives the version of this software.
const Version = "0.1.0"
