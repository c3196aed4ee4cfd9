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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Span returns n contour levels evenly spaced strictly inside
// [min, max]. The endpoints themselves are excluded because contours at
// the exact data extremes are degenerate.
func Span(min, max float64, n int) []float64 {
	dst := make([]float64, n+2)
	floats.Span(dst, min, max)
	return dst[1 : n+1]
}

// BandLevels turns a sorted list of break values into the low and high
// level slices for Isobands: band i covers breaks[i] ≤ Z < breaks[i+1].
func BandLevels(breaks []float64) (lo, hi []float64) {
	if len(breaks) < 2 {
		return nil, nil
	}
	lo = make([]float64, len(breaks)-1)
	hi = make([]float64, len(breaks)-1)
	copy(lo, breaks[:len(breaks)-1])
	copy(hi, breaks[1:])
	return lo, hi
}

// Range returns the smallest and largest finite sample values in the
// grid. ok is false if the grid holds no finite values at all.
func (g *Grid) Range() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range g.Z {
		if !isFinite(v) {
			continue
		}
		ok = true
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}
