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

package isogrid

import "github.com/ctessum/geom"

// pointKind says where on a grid cell a vertex lies.
type pointKind uint8

const (
	corner pointKind = iota // vertex of the data grid itself
	hLo                     // intersection of the low level with a horizontal cell edge
	hHi                     // intersection of the high level with a horizontal cell edge
	vLo                     // intersection of the low level with a vertical cell edge
	vHi                     // intersection of the high level with a vertical cell edge
)

// gridPoint is a vertex in abstract grid space. It identifies either a
// vertex of the data grid or the intersection of a contour level with
// a cell edge starting at row r, column c. gridPoint is comparable, so
// it serves directly as a map key; the runtime map hash replaces the
// hand-rolled hash function a pointer-based implementation would need.
type gridPoint struct {
	r, c int
	kind pointKind
}

// noPoint marks a non-existing point off the grid. It is the sentinel
// stored in unconnected prev/next slots of polyline endpoints.
var noPoint = gridPoint{r: -1, c: -1, kind: corner}

// pointConnect records how the rings or polylines under construction
// pass through one grid point. prev2/next2 hold the second ring when
// two separate rings have vertices on the same grid point; alt says
// whether they are populated. done and done2 are collector bookkeeping.
type pointConnect struct {
	prev, next   gridPoint
	prev2, next2 gridPoint

	alt         bool
	done, done2 bool
}

// unconnected returns a connectivity record with all slots set to the
// off-grid sentinel. Line merging distinguishes open endpoints from
// connected ones by comparison with noPoint, so records touched by the
// isoliner must never start from the zero value (the zero gridPoint is
// a valid point).
func unconnected() pointConnect {
	return pointConnect{prev: noPoint, next: noPoint, prev2: noPoint, next2: noPoint}
}

// interpolate returns the coordinate at which the value crosses v on an
// edge from coordinate x0 (value z0) to x1 (value z1). Callers only
// produce intersections on edges that actually cross the level, so
// z0 != z1 and the division is safe.
func interpolate(x0, x1, z0, z1, v float64) float64 {
	d := (v - z0) / (z1 - z0)
	return x0 + d*(x1-x0)
}

// pointCoords materialises a grid point into physical coordinates.
func (e *engine) pointCoords(p gridPoint) geom.Point {
	g := e.grid
	switch p.kind {
	case corner:
		return geom.Point{X: g.X[p.c], Y: g.Y[p.r]}
	case hLo:
		return geom.Point{
			X: interpolate(g.X[p.c], g.X[p.c+1], g.at(p.r, p.c), g.at(p.r, p.c+1), e.vlo),
			Y: g.Y[p.r],
		}
	case hHi:
		return geom.Point{
			X: interpolate(g.X[p.c], g.X[p.c+1], g.at(p.r, p.c), g.at(p.r, p.c+1), e.vhi),
			Y: g.Y[p.r],
		}
	case vLo:
		return geom.Point{
			X: g.X[p.c],
			Y: interpolate(g.Y[p.r], g.Y[p.r+1], g.at(p.r, p.c), g.at(p.r+1, p.c), e.vlo),
		}
	default: // vHi
		return geom.Point{
			X: g.X[p.c],
			Y: interpolate(g.Y[p.r], g.Y[p.r+1], g.at(p.r, p.c), g.at(p.r+1, p.c), e.vhi),
		}
	}
}
