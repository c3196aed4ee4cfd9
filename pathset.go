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

// PathSet holds the paths produced by one contour computation as three
// flat, equal-length buffers: the vertex coordinates and, for each
// vertex, the 1-based id of the ring or polyline it belongs to. Ids are
// monotonically non-decreasing in emission order. The caller owns the
// buffers.
type PathSet struct {
	X, Y []float64
	ID   []int
}

// Len returns the total number of emitted vertices.
func (ps *PathSet) Len() int { return len(ps.X) }

// NumPaths returns the number of distinct rings or polylines.
func (ps *PathSet) NumPaths() int {
	if len(ps.ID) == 0 {
		return 0
	}
	return ps.ID[len(ps.ID)-1]
}

// Paths splits the flat buffers into one coordinate slice per path id.
func (ps *PathSet) Paths() [][]float64 {
	out := make([][]float64, ps.NumPaths())
	for i, id := range ps.ID {
		out[id-1] = append(out[id-1], ps.X[i], ps.Y[i])
	}
	return out
}

// Isobands computes the boundaries of the regions lo[i] ≤ Z < hi[i] for
// each band i, reusing one engine across all bands. x and y are the
// sorted grid coordinates and z the column-major value matrix.
func Isobands(x, y, z []float64, nrow, ncol int, lo, hi []float64) ([]*PathSet, error) {
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("%w: %d low levels but %d high levels",
			ErrDimension, len(lo), len(hi))
	}
	b, err := NewIsobander(x, y, z, nrow, ncol)
	if err != nil {
		return nil, err
	}
	out := make([]*PathSet, len(lo))
	for i := range lo {
		b.SetLevels(lo[i], hi[i])
		if err := b.Compute(); err != nil {
			return nil, fmt.Errorf("isogrid: band %d [%g,%g): %w", i, lo[i], hi[i], err)
		}
		out[i] = b.Collect()
	}
	return out, nil
}

// Isolines computes the contour lines of Z at each of the given levels,
// reusing one engine across all levels.
func Isolines(x, y, z []float64, nrow, ncol int, levels []float64) ([]*PathSet, error) {
	l, err := NewIsoliner(x, y, z, nrow, ncol)
	if err != nil {
		return nil, err
	}
	out := make([]*PathSet, len(levels))
	for i, v := range levels {
		l.SetLevel(v)
		if err := l.Compute(); err != nil {
			return nil, fmt.Errorf("isogrid: level %d (%g): %w", i, v, err)
		}
		out[i] = l.Collect()
	}
	return out, nil
}

// PathSet32 is the single-precision variant of PathSet.
type PathSet32 struct {
	X, Y []float32
	ID   []int
}

// Len returns the total number of emitted vertices.
func (ps *PathSet32) Len() int { return len(ps.X) }

// Isobands32 is Isobands for single-precision data. The computation is
// carried out in float64 and the results are narrowed on output.
func Isobands32(x, y, z []float32, nrow, ncol int, lo, hi []float32) ([]*PathSet32, error) {
	out, err := Isobands(widen(x), widen(y), widen(z), nrow, ncol, widen(lo), widen(hi))
	if err != nil {
		return nil, err
	}
	return narrowAll(out), nil
}

// Isolines32 is Isolines for single-precision data.
func Isolines32(x, y, z []float32, nrow, ncol int, levels []float32) ([]*PathSet32, error) {
	out, err := Isolines(widen(x), widen(y), widen(z), nrow, ncol, widen(levels))
	if err != nil {
		return nil, err
	}
	return narrowAll(out), nil
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func narrow(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

func narrowAll(in []*PathSet) []*PathSet32 {
	out := make([]*PathSet32, len(in))
	for i, ps := range in {
		out[i] = &PathSet32{X: narrow(ps.X), Y: narrow(ps.Y), ID: ps.ID}
	}
	return out
}
