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

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// Grid holds a regular rectangular grid of scalar samples: a value matrix
// Z over the Cartesian product of the sorted coordinate sequences X and Y.
// Z is stored column-major, so the value at row r, column c is
// Z[r + c*Nrow]. The coordinates are assumed to be strictly increasing;
// this is not checked, and non-monotone coordinates produce geometrically
// meaningless but well-defined contours.
type Grid struct {
	X, Y []float64 // cell corner coordinates; len(X) == Ncol, len(Y) == Nrow
	Z    []float64 // column-major sample values, Nrow*Ncol entries

	Nrow, Ncol int
}

// NewGrid validates the dimensions of the given data and wraps it in a
// Grid. The slices are retained, not copied.
func NewGrid(x, y, z []float64, nrow, ncol int) (*Grid, error) {
	if nrow < 2 || ncol < 2 {
		return nil, fmt.Errorf("%w: grid must have at least 2 rows and 2 columns (have %d×%d)",
			ErrDimension, nrow, ncol)
	}
	if len(x) != ncol {
		return nil, fmt.Errorf("%w: number of x coordinates (%d) must match number of columns in value matrix (%d)",
			ErrDimension, len(x), ncol)
	}
	if len(y) != nrow {
		return nil, fmt.Errorf("%w: number of y coordinates (%d) must match number of rows in value matrix (%d)",
			ErrDimension, len(y), nrow)
	}
	if len(z) != nrow*ncol {
		return nil, fmt.Errorf("%w: value matrix has %d entries but dimensions are %d×%d",
			ErrDimension, len(z), nrow, ncol)
	}
	return &Grid{X: x, Y: y, Z: z, Nrow: nrow, Ncol: ncol}, nil
}

// at returns the sample value at row r, column c.
func (g *Grid) at(r, c int) float64 { return g.Z[r+c*g.Nrow] }

// cellFinite reports whether all four corners of the cell with lower-left
// corner at row r, column c hold finite values. Cells with a non-finite
// corner emit no contours.
func (g *Grid) cellFinite(r, c int) bool {
	return isFinite(g.at(r, c)) && isFinite(g.at(r, c+1)) &&
		isFinite(g.at(r+1, c)) && isFinite(g.at(r+1, c+1))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FromDenseArray converts a 2-dimensional sparse.DenseArray with shape
// [nrow, ncol] (row-major, as the array type stores it) into a Grid over
// the given coordinates.
func FromDenseArray(x, y []float64, z *sparse.DenseArray) (*Grid, error) {
	if len(z.Shape) != 2 {
		return nil, fmt.Errorf("%w: array must have 2 dimensions (have %d)",
			ErrDimension, len(z.Shape))
	}
	nrow, ncol := z.Shape[0], z.Shape[1]
	vals := make([]float64, nrow*ncol)
	for r := 0; r < nrow; r++ {
		for c := 0; c < ncol; c++ {
			vals[r+c*nrow] = z.Get(r, c)
		}
	}
	return NewGrid(x, y, vals, nrow, ncol)
}
