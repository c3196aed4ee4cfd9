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

import "fmt"

// Isobander computes the closed boundary polygons of the region where
// vlo ≤ Z < vhi on a regular grid, using marching squares with ternary
// corner classification. Elementary per-cell polygons are merged on the
// fly into maximal rings; holes come out with opposite winding
// automatically because every elementary polygon is emitted with the
// same winding: clockwise when rows are drawn top to bottom, which is
// counter-clockwise (positive signed area) when y points up.
//
// An Isobander is reusable: call SetLevels and Compute again to contour
// the same grid at different levels. It must not be used from multiple
// goroutines concurrently, but independent Isobanders over independent
// grids are safe to run in parallel.
type Isobander struct {
	engine
}

// NewIsobander creates a contour generator for the given grid data.
// x and y are the sorted cell corner coordinates and z is the column-major
// value matrix, as for NewGrid.
func NewIsobander(x, y, z []float64, nrow, ncol int) (*Isobander, error) {
	g, err := NewGrid(x, y, z, nrow, ncol)
	if err != nil {
		return nil, err
	}
	return &Isobander{engine: engine{grid: g}}, nil
}

// NewIsobanderGrid creates a contour generator operating on g.
func NewIsobanderGrid(g *Grid) *Isobander {
	return &Isobander{engine: engine{grid: g}}
}

// SetLevels sets the value range for the next Compute call. The band
// covers vlo ≤ Z < vhi.
func (b *Isobander) SetLevels(vlo, vhi float64) {
	b.vlo = vlo
	b.vhi = vhi
}

// Compute classifies every grid cell against the current levels and
// assembles the band boundary in the connectivity map. Call Collect
// afterwards to extract the resulting rings. Compute discards all state
// from previous runs, including after a previous invariant failure.
func (b *Isobander) Compute() error {
	b.reset()
	g := b.grid
	nrow, ncol := g.Nrow, g.Ncol

	// Classify each sample into a ternary digit: 0 below the band,
	// 1 inside, 2 above. Comparisons with NaN are false, so non-finite
	// samples land at 0; their cells are cleared below regardless.
	tern := make([]int8, nrow*ncol)
	for i, v := range g.Z {
		if v >= b.vhi {
			tern[i] = 2
		} else if v >= b.vlo {
			tern[i] = 1
		}
	}

	cells := make([]int, (nrow-1)*(ncol-1))
	for r := 0; r < nrow-1; r++ {
		for c := 0; c < ncol-1; c++ {
			idx := 0
			if g.cellFinite(r, c) {
				idx = 27*int(tern[r+c*nrow]) + 9*int(tern[r+(c+1)*nrow]) +
					3*int(tern[r+1+(c+1)*nrow]) + int(tern[r+1+c*nrow])
			}
			cells[r+c*(nrow-1)] = idx
		}
	}

	// All elementary polygons are emitted clockwise so merging cancels
	// shared edges correctly.
	for r := 0; r < nrow-1; r++ {
		for c := 0; c < ncol-1; c++ {
			if err := b.cell(r, c, cells[r+c*(nrow-1)]); err != nil {
				return err
			}
		}
	}
	return nil
}

// polyMerge merges the elementary polygon in tmp into the accumulated
// connectivity. For each vertex it compares the locally implied
// neighbours against any existing record at the same grid point and
// either cancels edges, extends a ring, or stores the new ring as the
// point's alternative record.
func (b *Isobander) polyMerge() error {
	var del [8]bool

	// First work out the merged connections for every vertex of the
	// current polygon; the map is only updated afterwards, so decisions
	// for later vertices see the pre-merge state like they must.
	for i := 0; i < b.ntmp; i++ {
		pc := &b.tmpConn[i]
		pc.alt = false
		pc.next = b.tmp[(i+1)%b.ntmp]
		pc.prev = b.tmp[(i-1+b.ntmp)%b.ntmp]

		p := b.tmp[i]
		s, ok := b.conn[p]
		if !ok {
			continue
		}
		if !s.alt {
			// No alternative record at this location.
			score := 0
			if pc.next == s.prev {
				score += 2
			}
			if pc.prev == s.next {
				score++
			}
			switch score {
			case 3: // 11: both edges cancel, the vertex drops out
				del[i] = true
			case 2: // 10: merge in next direction
				pc.next = s.next
			case 1: // 01: merge in prev direction
				pc.prev = s.prev
			default: // 00: two rings share this vertex; keep both
				pc.prev2 = s.prev
				pc.next2 = s.next
				pc.alt = true
			}
		} else {
			score := 0
			if pc.next == s.prev2 {
				score += 8
			}
			if pc.prev == s.next2 {
				score += 4
			}
			if pc.next == s.prev {
				score += 2
			}
			if pc.prev == s.next {
				score++
			}
			switch score {
			case 9: // 1001: three-way merge
				pc.next = s.next2
				pc.prev = s.prev
			case 6: // 0110: three-way merge
				pc.next = s.next
				pc.prev = s.prev2
			case 8: // 1000: two-way merge with the alternative record
				pc.next2 = s.next2
				pc.prev2 = pc.prev
				pc.prev = s.prev
				pc.next = s.next
				pc.alt = true
			case 4: // 0100: two-way merge with the alternative record
				pc.prev2 = s.prev2
				pc.next2 = pc.next
				pc.prev = s.prev
				pc.next = s.next
				pc.alt = true
			case 2: // 0010: two-way merge with the primary record
				pc.next = s.next
				pc.prev2 = s.prev2
				pc.next2 = s.next2
				pc.alt = true
			case 1: // 0001: two-way merge with the primary record
				pc.prev = s.prev
				pc.prev2 = s.prev2
				pc.next2 = s.next2
				pc.alt = true
			default:
				// More than two rings through one vertex cannot occur
				// on a well-formed grid.
				return fmt.Errorf("%w: merge score %04b at row %d, column %d, kind %d",
					ErrInvariant, score, p.r, p.c, p.kind)
			}
		}
	}

	// Then copy the merged connections into the map.
	for i := 0; i < b.ntmp; i++ {
		if del[i] {
			delete(b.conn, b.tmp[i])
		} else {
			b.conn[b.tmp[i]] = b.tmpConn[i]
		}
	}
	return nil
}

// Collect walks the assembled connectivity and returns one closed path
// per ring. Paths are numbered from 1 in the order they are found;
// within a path, vertices follow the ring's clockwise emission order.
// Collect consumes the computed state: a second call without an
// intervening Compute returns an empty set.
func (b *Isobander) Collect() *PathSet {
	ps := new(PathSet)
	curID := 0

	for _, start := range b.sortedPoints() {
		rec := b.conn[start]
		if (rec.done && !rec.alt) || (rec.done && rec.done2 && rec.alt) {
			continue // fully collected already
		}
		curID++

		cur := start
		prev := rec.prev
		// If this point carries an uncollected alternative record,
		// start the walk on that ring.
		if rec.alt && !rec.done2 {
			prev = rec.prev2
		}

		for {
			p := b.pointCoords(cur)
			ps.X = append(ps.X, p.X)
			ps.Y = append(ps.Y, p.Y)
			ps.ID = append(ps.ID, curID)

			rc := b.conn[cur]
			if rc.alt && rc.prev2 == prev {
				// The alternative record continues the ring we came
				// in on; follow and mark it.
				rc.done2 = true
				b.conn[cur] = rc
				prev = cur
				cur = rc.next2
			} else {
				rc.done = true
				b.conn[cur] = rc
				prev = cur
				cur = rc.next
			}
			if cur == start {
				break
			}
		}
	}
	return ps
}
