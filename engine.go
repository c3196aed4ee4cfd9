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

import "sort"

// engine holds the state shared by the isoband and isoline calculators:
// the input grid, the active contour levels, scratch space for the
// elementary shape currently being emitted, and the connectivity map
// that accumulates merged rings and polylines.
type engine struct {
	grid     *Grid
	vlo, vhi float64

	// tmp holds the elementary polygon or segment a cell is emitting;
	// no elementary shape has more than 8 vertices.
	tmp     [8]gridPoint
	tmpConn [8]pointConnect
	ntmp    int

	// conn maps each grid point touched so far to its connectivity
	// record. All stitching happens through this map; prev/next fields
	// store keys rather than references, so there is no pointer graph
	// to maintain.
	conn map[gridPoint]pointConnect
}

// reset clears all connectivity state so the engine can run at a new
// set of levels over the same grid.
func (e *engine) reset() {
	e.conn = make(map[gridPoint]pointConnect)
	for i := range e.tmpConn {
		e.tmpConn[i] = pointConnect{}
	}
	e.ntmp = 0
}

// centralValue is the mean of the four corners of the cell with
// lower-left corner at row r, column c. It disambiguates saddle cells.
func (e *engine) centralValue(r, c int) float64 {
	g := e.grid
	return (g.at(r, c) + g.at(r, c+1) + g.at(r+1, c) + g.at(r+1, c+1)) / 4
}

// polyStart begins a new elementary polygon or line segment.
func (e *engine) polyStart(r, c int, kind pointKind) {
	e.tmp[0] = gridPoint{r: r, c: c, kind: kind}
	e.ntmp = 1
}

// polyAdd appends a vertex to the elementary shape under construction.
func (e *engine) polyAdd(r, c int, kind pointKind) {
	e.tmp[e.ntmp] = gridPoint{r: r, c: c, kind: kind}
	e.ntmp++
}

// sortedPoints returns the keys of the connectivity map ordered by row,
// then column, then point kind. Collecting in this fixed order makes the
// output identical from run to run regardless of map iteration order;
// only the choice of each ring's starting vertex depends on it.
func (e *engine) sortedPoints() []gridPoint {
	pts := make([]gridPoint, 0, len(e.conn))
	for p := range e.conn {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].r != pts[j].r {
			return pts[i].r < pts[j].r
		}
		if pts[i].c != pts[j].c {
			return pts[i].c < pts[j].c
		}
		return pts[i].kind < pts[j].kind
	})
	return pts
}
