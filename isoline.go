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

// Isoliner computes the polylines along which Z equals a given level on
// a regular grid, using marching squares with binary corner
// classification. Segments emitted by neighbouring cells are merged into
// maximal polylines as they appear; a polyline either closes into a
// loop or ends on the grid boundary or on the edge of a cell with a
// non-finite corner.
//
// Like Isobander, an Isoliner is reusable across levels and must not be
// shared between goroutines.
type Isoliner struct {
	engine
}

// NewIsoliner creates an isoline generator for the given grid data.
// Arguments are as for NewGrid.
func NewIsoliner(x, y, z []float64, nrow, ncol int) (*Isoliner, error) {
	g, err := NewGrid(x, y, z, nrow, ncol)
	if err != nil {
		return nil, err
	}
	return &Isoliner{engine: engine{grid: g}}, nil
}

// NewIsolinerGrid creates an isoline generator operating on g.
func NewIsolinerGrid(g *Grid) *Isoliner {
	return &Isoliner{engine: engine{grid: g}}
}

// SetLevel sets the contour level for the next Compute call.
func (l *Isoliner) SetLevel(v float64) {
	l.vlo = v
}

// Compute classifies every grid cell against the current level and
// assembles the isolines in the connectivity map. Call Collect
// afterwards to extract them.
func (l *Isoliner) Compute() error {
	l.reset()
	g := l.grid
	nrow, ncol := g.Nrow, g.Ncol

	// Binarize: 1 at or above the level, 0 below (NaN compares below).
	bin := make([]int8, nrow*ncol)
	for i, v := range g.Z {
		if v >= l.vlo {
			bin[i] = 1
		}
	}

	cells := make([]int, (nrow-1)*(ncol-1))
	for r := 0; r < nrow-1; r++ {
		for c := 0; c < ncol-1; c++ {
			idx := 0
			if g.cellFinite(r, c) {
				idx = 8*int(bin[r+c*nrow]) + 4*int(bin[r+(c+1)*nrow]) +
					2*int(bin[r+1+(c+1)*nrow]) + int(bin[r+1+c*nrow])
			}

			// The two-segment saddles are ambiguous from the corners
			// alone; swap them when the cell centre falls below the
			// level. Exact equality keeps the unswapped topology.
			if idx == 5 && l.centralValue(r, c) < l.vlo {
				idx = 10
			} else if idx == 10 && l.centralValue(r, c) < l.vlo {
				idx = 5
			}
			cells[r+c*(nrow-1)] = idx
		}
	}

	for r := 0; r < nrow-1; r++ {
		for c := 0; c < ncol-1; c++ {
			if err := l.cell(r, c, cells[r+c*(nrow-1)]); err != nil {
				return err
			}
		}
	}
	return nil
}

// cell emits the line segments for one cell. idx is the binary case
// index 8*b(r,c) + 4*b(r,c+1) + 2*b(r+1,c+1) + b(r+1,c).
func (l *Isoliner) cell(r, c, idx int) error {
	switch idx {
	case 0, 15:
		return nil
	case 1:
		l.polyStart(r, c, vLo)
		l.polyAdd(r+1, c, hLo)
		return l.lineMerge()
	case 2:
		l.polyStart(r, c+1, vLo)
		l.polyAdd(r+1, c, hLo)
		return l.lineMerge()
	case 3:
		l.polyStart(r, c, vLo)
		l.polyAdd(r, c+1, vLo)
		return l.lineMerge()
	case 4:
		l.polyStart(r, c, hLo)
		l.polyAdd(r, c+1, vLo)
		return l.lineMerge()
	case 5:
		// saddle: segments as in cases 2 and 7
		l.polyStart(r, c+1, vLo)
		l.polyAdd(r+1, c, hLo)
		if err := l.lineMerge(); err != nil {
			return err
		}
		l.polyStart(r, c, hLo)
		l.polyAdd(r, c, vLo)
		return l.lineMerge()
	case 6:
		l.polyStart(r, c, hLo)
		l.polyAdd(r+1, c, hLo)
		return l.lineMerge()
	case 7:
		l.polyStart(r, c, hLo)
		l.polyAdd(r, c, vLo)
		return l.lineMerge()
	case 8:
		l.polyStart(r, c, hLo)
		l.polyAdd(r, c, vLo)
		return l.lineMerge()
	case 9:
		l.polyStart(r, c, hLo)
		l.polyAdd(r+1, c, hLo)
		return l.lineMerge()
	case 10:
		// saddle: segments as in cases 1 and 4
		l.polyStart(r, c, vLo)
		l.polyAdd(r+1, c, hLo)
		if err := l.lineMerge(); err != nil {
			return err
		}
		l.polyStart(r, c, hLo)
		l.polyAdd(r, c+1, vLo)
		return l.lineMerge()
	case 11:
		l.polyStart(r, c, hLo)
		l.polyAdd(r, c+1, vLo)
		return l.lineMerge()
	case 12:
		l.polyStart(r, c, vLo)
		l.polyAdd(r, c+1, vLo)
		return l.lineMerge()
	case 13:
		l.polyStart(r, c+1, vLo)
		l.polyAdd(r+1, c, hLo)
		return l.lineMerge()
	case 14:
		l.polyStart(r, c, vLo)
		l.polyAdd(r+1, c, hLo)
		return l.lineMerge()
	}
	return nil
}

// lineMerge attaches the segment in tmp to the polylines accumulated so
// far. A segment endpoint may only connect to an open end of an existing
// polyline; landing in the interior is an invariant violation. When two
// chains meet head-to-head or tail-to-tail, one of them is reversed so
// the traversal directions line up.
func (l *Isoliner) lineMerge() error {
	a, bp := l.tmp[0], l.tmp[1]
	_, okA := l.conn[a]
	_, okB := l.conn[bp]

	score := 0
	if okB {
		score += 2
	}
	if okA {
		score++
	}
	switch score {
	case 0: // completely unconnected segment
		ca, cb := unconnected(), unconnected()
		ca.next = bp
		cb.prev = a
		l.conn[a] = ca
		l.conn[bp] = cb
	case 1: // only the first endpoint connects
		ca := l.conn[a]
		cb := unconnected()
		switch {
		case ca.next == noPoint:
			ca.next = bp
			cb.prev = a
		case ca.prev == noPoint:
			ca.prev = bp
			cb.next = a
		default:
			return l.interiorErr(a)
		}
		l.conn[a] = ca
		l.conn[bp] = cb
	case 2: // only the second endpoint connects
		cb := l.conn[bp]
		ca := unconnected()
		switch {
		case cb.next == noPoint:
			cb.next = a
			ca.prev = bp
		case cb.prev == noPoint:
			cb.prev = a
			ca.next = bp
		default:
			return l.interiorErr(bp)
		}
		l.conn[a] = ca
		l.conn[bp] = cb
	case 3: // both endpoints connect: two-way merge
		ca := l.conn[a]
		cb := l.conn[bp]
		score2 := 0
		if ca.next == noPoint {
			score2 += 8
		}
		if ca.prev == noPoint {
			score2 += 4
		}
		if cb.next == noPoint {
			score2 += 2
		}
		if cb.prev == noPoint {
			score2++
		}
		switch score2 {
		case 9: // 1001: tail of a meets head of b
			ca.next = bp
			cb.prev = a
			l.conn[a] = ca
			l.conn[bp] = cb
		case 6: // 0110: head of a meets tail of b
			ca.prev = bp
			cb.next = a
			l.conn[a] = ca
			l.conn[bp] = cb
		case 10: // 1010: two tails meet; reverse the b-side chain
			ca.next = bp
			cb.next = a
			l.conn[a] = ca
			l.conn[bp] = cb
			l.reverseChain(bp, true)
		case 5: // 0101: two heads meet; reverse the a-side chain
			ca.prev = bp
			cb.prev = a
			l.conn[a] = ca
			l.conn[bp] = cb
			l.reverseChain(a, false)
		default:
			return l.interiorErr(a)
		}
	}
	return nil
}

// reverseChain swaps the prev/next links of every node from start down
// the chain until an open end is reached, flipping the traversal
// direction of that polyline. The chain hangs off start's original prev
// link when alongPrev is true (two tails met) and off its original next
// link otherwise (two heads met).
func (l *Isoliner) reverseChain(start gridPoint, alongPrev bool) {
	cur := start
	for cur != noPoint {
		rc := l.conn[cur]
		old := rc.prev
		if !alongPrev {
			old = rc.next
		}
		rc.prev, rc.next = rc.next, rc.prev
		l.conn[cur] = rc
		cur = old
	}
}

func (l *Isoliner) interiorErr(p gridPoint) error {
	return fmt.Errorf("%w: segment endpoint in the interior of an existing polyline at row %d, column %d, kind %d",
		ErrInvariant, p.r, p.c, p.kind)
}

// Collect walks the assembled connectivity and returns one path per
// maximal polyline. Open polylines run between crossings on the grid
// boundary or on the edge of a cell with a non-finite corner; closed ones repeat their starting vertex at the end so
// the output explicitly closes the loop. Collect consumes the computed
// state: a second call without an intervening Compute returns an empty
// set.
func (l *Isoliner) Collect() *PathSet {
	ps := new(PathSet)
	curID := 0

	for _, p := range l.sortedPoints() {
		if l.conn[p].done {
			continue
		}
		curID++

		// Back-track to the beginning of the polyline, or all the way
		// around if it is closed.
		start := p
		cur := start
		if l.conn[cur].prev != noPoint {
			for {
				cur = l.conn[cur].prev
				if cur == start || l.conn[cur].prev == noPoint {
					break
				}
			}
		}
		start = cur

		for {
			pt := l.pointCoords(cur)
			ps.X = append(ps.X, pt.X)
			ps.Y = append(ps.Y, pt.Y)
			ps.ID = append(ps.ID, curID)

			rc := l.conn[cur]
			rc.done = true
			l.conn[cur] = rc
			cur = rc.next
			if cur == start || cur == noPoint {
				break
			}
		}
		// A closed polyline circles back to its start; emit the start
		// once more so first == last in the output.
		if cur == start {
			pt := l.pointCoords(cur)
			ps.X = append(ps.X, pt.X)
			ps.Y = append(ps.Y, pt.Y)
			ps.ID = append(ps.ID, curID)
		}
	}
	return ps
}
