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
	"math/rand"
	"reflect"
	"testing"
)

// randomGridData builds a random grid with strictly increasing
// coordinates and uniform values in [0, 1).
func randomGridData(rng *rand.Rand, nrow, ncol int) (x, y, z []float64) {
	x = make([]float64, ncol)
	for i := range x {
		if i == 0 {
			x[i] = rng.Float64()
		} else {
			x[i] = x[i-1] + 0.1 + rng.Float64()
		}
	}
	y = make([]float64, nrow)
	for i := range y {
		if i == 0 {
			y[i] = rng.Float64()
		} else {
			y[i] = y[i-1] + 0.1 + rng.Float64()
		}
	}
	z = make([]float64, nrow*ncol)
	for i := range z {
		z[i] = rng.Float64()
	}
	return x, y, z
}

// checkIDs verifies that path ids are 1-based, monotone, and gapless.
func checkIDs(t *testing.T, ps *PathSet) {
	t.Helper()
	prev := 0
	for i, id := range ps.ID {
		if id < 1 {
			t.Fatalf("id[%d] = %d, want ≥ 1", i, id)
		}
		if id < prev || id > prev+1 {
			t.Fatalf("id[%d] = %d after %d: ids must be monotone and gapless", i, id, prev)
		}
		prev = id
	}
	if prev != ps.NumPaths() {
		t.Fatalf("last id %d != NumPaths %d", prev, ps.NumPaths())
	}
}

// TestIsolineProperties checks structural invariants of isoline output
// over random grids: monotone gapless ids, and every polyline either
// closed or ending on the grid boundary.
func TestIsolineProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		nrow := 2 + rng.Intn(6)
		ncol := 2 + rng.Intn(6)
		x, y, z := randomGridData(rng, nrow, ncol)
		v := 0.1 + 0.8*rng.Float64()

		l, err := NewIsoliner(x, y, z, nrow, ncol)
		if err != nil {
			t.Fatal(err)
		}
		l.SetLevel(v)
		if err := l.Compute(); err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		ps := l.Collect()
		checkIDs(t, ps)

		onBoundary := func(px, py float64) bool {
			return px == x[0] || px == x[ncol-1] || py == y[0] || py == y[nrow-1]
		}
		for _, span := range pathSpans(ps) {
			first, last := span[0], span[1]
			closed := ps.X[first] == ps.X[last] && ps.Y[first] == ps.Y[last]
			if closed {
				continue
			}
			if !onBoundary(ps.X[first], ps.Y[first]) || !onBoundary(ps.X[last], ps.Y[last]) {
				t.Fatalf("trial %d: open polyline does not end on the grid boundary", trial)
			}
		}
	}
}

// pathSpans returns the first and last buffer index of each path.
func pathSpans(ps *PathSet) [][2]int {
	var spans [][2]int
	for i, id := range ps.ID {
		if id > len(spans) {
			spans = append(spans, [2]int{i, i})
		} else {
			spans[id-1][1] = i
		}
	}
	return spans
}

// TestIsobandProperties checks structural invariants of isoband output
// over random grids: no merge failures, monotone gapless ids, rings of
// at least 3 vertices, and conservation between the stitched state and
// the collected output.
func TestIsobandProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 200; trial++ {
		nrow := 2 + rng.Intn(6)
		ncol := 2 + rng.Intn(6)
		x, y, z := randomGridData(rng, nrow, ncol)
		vlo := 0.1 + 0.4*rng.Float64()
		vhi := vlo + 0.1 + 0.3*rng.Float64()

		b, err := NewIsobander(x, y, z, nrow, ncol)
		if err != nil {
			t.Fatal(err)
		}
		b.SetLevels(vlo, vhi)
		if err := b.Compute(); err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}

		// Every surviving connectivity slot produces exactly one
		// output vertex.
		want := 0
		for _, rec := range b.conn {
			want++
			if rec.alt {
				want++
			}
		}

		ps := b.Collect()
		checkIDs(t, ps)
		if ps.Len() != want {
			t.Fatalf("trial %d: collected %d vertices from %d connectivity slots", trial, ps.Len(), want)
		}
		for _, span := range pathSpans(ps) {
			if n := span[1] - span[0] + 1; n < 3 {
				t.Fatalf("trial %d: ring with %d vertices", trial, n)
			}
		}
	}
}

// TestAffineInvariance checks that affinely remapping the coordinate
// axes transforms the output coordinates accordingly and leaves the
// topology untouched.
func TestAffineInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		nrow := 2 + rng.Intn(5)
		ncol := 2 + rng.Intn(5)
		x, y, z := randomGridData(rng, nrow, ncol)
		v := 0.2 + 0.6*rng.Float64()

		const ax, bx, ay, by = 2, 3, 0.5, -7
		x2 := make([]float64, len(x))
		for i := range x {
			x2[i] = ax*x[i] + bx
		}
		y2 := make([]float64, len(y))
		for i := range y {
			y2[i] = ay*y[i] + by
		}

		run := func(xs, ys []float64) *PathSet {
			l, err := NewIsoliner(xs, ys, z, nrow, ncol)
			if err != nil {
				t.Fatal(err)
			}
			l.SetLevel(v)
			if err := l.Compute(); err != nil {
				t.Fatal(err)
			}
			return l.Collect()
		}
		ps1 := run(x, y)
		ps2 := run(x2, y2)

		if !reflect.DeepEqual(ps1.ID, ps2.ID) {
			t.Fatalf("trial %d: topology changed under affine remap", trial)
		}
		for i := range ps1.X {
			if math.Abs(ps2.X[i]-(ax*ps1.X[i]+bx)) > 1e-9 ||
				math.Abs(ps2.Y[i]-(ay*ps1.Y[i]+by)) > 1e-9 {
				t.Fatalf("trial %d: vertex %d not remapped affinely", trial, i)
			}
		}
	}
}

// TestBandLineComplementarity checks that for the single-threshold band
// (-∞, v), the interpolated band boundary vertices coincide with the
// isoline at v as a point set.
func TestBandLineComplementarity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 50; trial++ {
		nrow := 2 + rng.Intn(5)
		ncol := 2 + rng.Intn(5)
		x, y, z := randomGridData(rng, nrow, ncol)
		v := 0.2 + 0.6*rng.Float64()

		corners := make(map[[2]float64]bool)
		for r := 0; r < nrow; r++ {
			for c := 0; c < ncol; c++ {
				corners[[2]float64{x[c], y[r]}] = true
			}
		}

		b, err := NewIsobander(x, y, z, nrow, ncol)
		if err != nil {
			t.Fatal(err)
		}
		b.SetLevels(math.Inf(-1), v)
		if err := b.Compute(); err != nil {
			t.Fatal(err)
		}
		bandPts := make(map[[2]float64]bool)
		for i, ps := 0, b.Collect(); i < ps.Len(); i++ {
			p := [2]float64{ps.X[i], ps.Y[i]}
			if !corners[p] {
				bandPts[p] = true
			}
		}

		l, err := NewIsoliner(x, y, z, nrow, ncol)
		if err != nil {
			t.Fatal(err)
		}
		l.SetLevel(v)
		if err := l.Compute(); err != nil {
			t.Fatal(err)
		}
		linePts := make(map[[2]float64]bool)
		for i, ps := 0, l.Collect(); i < ps.Len(); i++ {
			linePts[[2]float64{ps.X[i], ps.Y[i]}] = true
		}

		if !reflect.DeepEqual(bandPts, linePts) {
			t.Fatalf("trial %d: band boundary crossings and isoline vertices differ: %d vs %d points",
				trial, len(bandPts), len(linePts))
		}
	}
}
