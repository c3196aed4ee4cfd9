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
	"testing"

	"github.com/ctessum/geom"
)

// donutBand returns the band result for a square annular region: a
// plateau of ones with a hole in the middle.
func donutBand(t *testing.T) *PathSet {
	t.Helper()
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 2, 3, 4}
	z := []float64{
		0, 0, 0, 0, 0, // column 0
		0, 1, 1, 1, 0, // column 1
		0, 1, 0, 1, 0, // column 2
		0, 1, 1, 1, 0, // column 3
		0, 0, 0, 0, 0, // column 4
	}
	b, err := NewIsobander(x, y, z, 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	b.SetLevels(0.5, 1.5)
	if err := b.Compute(); err != nil {
		t.Fatal(err)
	}
	return b.Collect()
}

// TestRingsWinding checks that an annular band produces an outer ring
// and a hole ring with opposite winding.
func TestRingsWinding(t *testing.T) {
	ps := donutBand(t)
	if ps.NumPaths() != 2 {
		t.Fatalf("have %d rings, want 2", ps.NumPaths())
	}
	rings := ps.Rings()
	var neg, pos int
	for _, r := range rings {
		if a := signedArea(r); a < 0 {
			neg++
		} else if a > 0 {
			pos++
		}
	}
	if neg != 1 || pos != 1 {
		t.Errorf("have %d clockwise and %d counter-clockwise rings, want 1 and 1", neg, pos)
	}
}

// TestMultiPolygonNesting checks that the hole of an annular band is
// attached to its enclosing outer ring.
func TestMultiPolygonNesting(t *testing.T) {
	ps := donutBand(t)
	mp := ps.MultiPolygon()
	if len(mp) != 1 {
		t.Fatalf("have %d polygons, want 1", len(mp))
	}
	if len(mp[0]) != 2 {
		t.Fatalf("have %d rings in polygon, want 2 (boundary and hole)", len(mp[0]))
	}
	// The hole must be the smaller ring.
	if a0, a1 := signedArea(mp[0][0]), signedArea(mp[0][1]); !(a0 > 0 && a1 < 0 && a0 > -a1) {
		t.Errorf("unexpected ring areas %g, %g", a0, a1)
	}

	// The centre of the grid is inside the hole, so it is outside the
	// polygon; a point on the annulus is inside.
	if w := (geom.Point{X: 2, Y: 2}).Within(mp[0]); w != geom.Outside {
		t.Errorf("hole centre: have %v, want Outside", w)
	}
	if w := (geom.Point{X: 1, Y: 1}).Within(mp[0]); w == geom.Outside {
		t.Errorf("annulus point: have Outside, want inside or on edge")
	}
}

// TestMultiPolygonSeparate checks that two disjoint band regions become
// two polygons.
func TestMultiPolygonSeparate(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1}
	z := []float64{
		1, 1, // column 0
		0, 0, // column 1
		1, 1, // column 2
		1, 1, // column 3
	}
	b, err := NewIsobander(x, y, z, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	b.SetLevels(0.5, 1.5)
	if err := b.Compute(); err != nil {
		t.Fatal(err)
	}
	mp := b.Collect().MultiPolygon()
	if len(mp) != 2 {
		t.Fatalf("have %d polygons, want 2", len(mp))
	}
}

// TestLineStrings checks the grouping of isoline output into one
// linestring per path.
func TestLineStrings(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 2}
	z := []float64{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	l, err := NewIsoliner(x, y, z, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	l.SetLevel(0.5)
	if err := l.Compute(); err != nil {
		t.Fatal(err)
	}
	ls := l.Collect().LineStrings()
	if len(ls) != 1 {
		t.Fatalf("have %d linestrings, want 1", len(ls))
	}
	if len(ls[0]) != 5 {
		t.Errorf("have %d points, want 5", len(ls[0]))
	}
	if ls[0][0] != ls[0][len(ls[0])-1] {
		t.Error("closed contour should start and end at the same point")
	}
}
