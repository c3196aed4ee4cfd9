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
	"errors"
	"math"
	"reflect"
	"testing"
)

// TestIsolinerSinglePeak contours a central spike of height 1 at level
// 0.5 and expects one closed polyline around the peak, with the closing
// vertex repeated.
func TestIsolinerSinglePeak(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 2}
	z := []float64{
		0, 0, 0, // column 0
		0, 1, 0, // column 1
		0, 0, 0, // column 2
	}
	l, err := NewIsoliner(x, y, z, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	l.SetLevel(0.5)
	if err := l.Compute(); err != nil {
		t.Fatal(err)
	}
	ps := l.Collect()

	wantX := []float64{1, 0.5, 1, 1.5, 1}
	wantY := []float64{0.5, 1, 1.5, 1, 0.5}
	wantID := []int{1, 1, 1, 1, 1}
	if !reflect.DeepEqual(ps.X, wantX) {
		t.Errorf("x: have %v, want %v", ps.X, wantX)
	}
	if !reflect.DeepEqual(ps.Y, wantY) {
		t.Errorf("y: have %v, want %v", ps.Y, wantY)
	}
	if !reflect.DeepEqual(ps.ID, wantID) {
		t.Errorf("id: have %v, want %v", ps.ID, wantID)
	}
	if ps.X[0] != ps.X[ps.Len()-1] || ps.Y[0] != ps.Y[ps.Len()-1] {
		t.Error("closed polyline should repeat its starting vertex")
	}
}

// TestIsolinerFlat contours an all-zero grid and expects empty output.
func TestIsolinerFlat(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 2}
	z := make([]float64, 9)
	l, err := NewIsoliner(x, y, z, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	l.SetLevel(0.5)
	if err := l.Compute(); err != nil {
		t.Fatal(err)
	}
	ps := l.Collect()
	if ps.Len() != 0 || ps.NumPaths() != 0 {
		t.Errorf("have %d vertices in %d paths, want none", ps.Len(), ps.NumPaths())
	}
}

// TestIsolinerSaddle contours the 2×2 saddle grid [[0,1],[1,0]] at
// level 0.5. The centre mean equals the level exactly, so the swap rule
// (strictly less than) does not fire and case 5 connects the crossings
// into two separate segments.
func TestIsolinerSaddle(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{0, 1}
	z := []float64{0, 1, 1, 0} // column-major [[0,1],[1,0]]
	l, err := NewIsoliner(x, y, z, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	l.SetLevel(0.5)
	if err := l.Compute(); err != nil {
		t.Fatal(err)
	}
	ps := l.Collect()

	wantX := []float64{0.5, 0, 1, 0.5}
	wantY := []float64{0, 0.5, 0.5, 1}
	wantID := []int{1, 1, 2, 2}
	if !reflect.DeepEqual(ps.X, wantX) || !reflect.DeepEqual(ps.Y, wantY) || !reflect.DeepEqual(ps.ID, wantID) {
		t.Errorf("have x %v y %v id %v, want x %v y %v id %v",
			ps.X, ps.Y, ps.ID, wantX, wantY, wantID)
	}
}

// TestIsolinerSaddleSwap checks the saddle swap: lowering the centre
// mean below the level flips the connectivity of the crossings.
func TestIsolinerSaddleSwap(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{0, 1}
	// Corner pattern [[0,1],[1,0]] again, but with the high corners
	// just over the level so the centre mean falls below it.
	z := []float64{0, 0.6, 0.6, 0} // centre mean 0.3 < 0.5
	l, err := NewIsoliner(x, y, z, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	l.SetLevel(0.5)
	if err := l.Compute(); err != nil {
		t.Fatal(err)
	}
	ps := l.Collect()
	if ps.NumPaths() != 2 {
		t.Fatalf("have %d paths, want 2", ps.NumPaths())
	}
	// The swapped topology connects each crossing to the one on its own
	// side of the cell: the lower-left vertical crossing to the upper
	// horizontal one, and the lower horizontal crossing to the right
	// vertical one.
	want := [][4]float64{
		{0, 5. / 6, 1. / 6, 1},
		{5. / 6, 0, 1, 1. / 6},
	}
	for _, w := range want {
		found := false
		for i := 0; i+1 < ps.Len(); i += 2 {
			fwd := approx(ps.X[i], w[0]) && approx(ps.Y[i], w[1]) &&
				approx(ps.X[i+1], w[2]) && approx(ps.Y[i+1], w[3])
			rev := approx(ps.X[i], w[2]) && approx(ps.Y[i], w[3]) &&
				approx(ps.X[i+1], w[0]) && approx(ps.Y[i+1], w[1])
			if fwd || rev {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing segment %v in x %v y %v", w, ps.X, ps.Y)
		}
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

// TestLineMergeReverse drives the two-way merge cases in which chains
// meet tail-to-tail or head-to-head and one side has to be reversed.
func TestLineMergeReverse(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 2, 3}
	z := make([]float64, 16)

	p1 := gridPoint{r: 0, c: 0, kind: corner}
	p2 := gridPoint{r: 0, c: 1, kind: corner}
	p3 := gridPoint{r: 0, c: 3, kind: corner}
	p4 := gridPoint{r: 0, c: 2, kind: corner}

	segs := [][2][2]gridPoint{
		// Tail-to-tail: p2 and p4 are both chain tails when joined.
		{{p1, p2}, {p3, p4}},
		// Head-to-head: p2 and p4 are both chain heads when joined.
		{{p2, p1}, {p4, p3}},
	}
	for i, pre := range segs {
		l, err := NewIsoliner(x, y, z, 4, 4)
		if err != nil {
			t.Fatal(err)
		}
		l.reset()
		for _, s := range pre {
			l.polyStart(s[0].r, s[0].c, s[0].kind)
			l.polyAdd(s[1].r, s[1].c, s[1].kind)
			if err := l.lineMerge(); err != nil {
				t.Fatalf("case %d: %v", i, err)
			}
		}
		l.polyStart(p2.r, p2.c, p2.kind)
		l.polyAdd(p4.r, p4.c, p4.kind)
		if err := l.lineMerge(); err != nil {
			t.Fatalf("case %d: %v", i, err)
		}

		ps := l.Collect()
		if ps.NumPaths() != 1 {
			t.Fatalf("case %d: have %d paths, want 1", i, ps.NumPaths())
		}
		wantX := []float64{0, 1, 2, 3}
		if !reflect.DeepEqual(ps.X, wantX) {
			t.Errorf("case %d: x: have %v, want %v", i, ps.X, wantX)
		}
		for j, yy := range ps.Y {
			if yy != 0 {
				t.Errorf("case %d: y[%d] = %g, want 0", i, j, yy)
			}
		}
	}
}

// TestLineMergeInterior checks that a segment endpoint landing in the
// interior of an existing polyline surfaces an invariant violation.
func TestLineMergeInterior(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 2, 3}
	z := make([]float64, 16)
	l, err := NewIsoliner(x, y, z, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	l.reset()

	p1 := gridPoint{r: 0, c: 0, kind: corner}
	p2 := gridPoint{r: 0, c: 1, kind: corner}
	p3 := gridPoint{r: 0, c: 2, kind: corner}
	p4 := gridPoint{r: 1, c: 1, kind: corner}

	for _, s := range [][2]gridPoint{{p1, p2}, {p2, p3}} {
		l.polyStart(s[0].r, s[0].c, s[0].kind)
		l.polyAdd(s[1].r, s[1].c, s[1].kind)
		if err := l.lineMerge(); err != nil {
			t.Fatal(err)
		}
	}
	l.polyStart(p4.r, p4.c, p4.kind)
	l.polyAdd(p2.r, p2.c, p2.kind)
	err = l.lineMerge()
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("have %v, want ErrInvariant", err)
	}
}

// TestIsolinerNonFinite checks that cells with a non-finite corner emit
// nothing while the rest of the grid contours normally.
func TestIsolinerNonFinite(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 2}
	z := []float64{
		math.NaN(), 1, 1, // column 0
		1, 1, 1, // column 1
		1, 1, 0, // column 2
	}
	l, err := NewIsoliner(x, y, z, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	l.SetLevel(0.5)
	if err := l.Compute(); err != nil {
		t.Fatal(err)
	}
	ps := l.Collect()

	// Only the cell opposite the NaN corner crosses the level.
	wantX := []float64{2, 1.5}
	wantY := []float64{1.5, 2}
	wantID := []int{1, 1}
	if !reflect.DeepEqual(ps.X, wantX) || !reflect.DeepEqual(ps.Y, wantY) || !reflect.DeepEqual(ps.ID, wantID) {
		t.Errorf("have x %v y %v id %v, want x %v y %v id %v",
			ps.X, ps.Y, ps.ID, wantX, wantY, wantID)
	}
}

// TestIsolinesDriver checks the multi-level driver and the float32
// variant against each other.
func TestIsolinesDriver(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 2}
	z := []float64{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	levels := []float64{0.25, 0.5, 0.75}
	out, err := Isolines(x, y, z, 3, 3, levels)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(levels) {
		t.Fatalf("have %d results, want %d", len(out), len(levels))
	}
	for i, ps := range out {
		if ps.NumPaths() != 1 {
			t.Errorf("level %g: have %d paths, want 1", levels[i], ps.NumPaths())
		}
	}

	out32, err := Isolines32(narrow(x), narrow(y), narrow(z), 3, 3, narrow(levels))
	if err != nil {
		t.Fatal(err)
	}
	for i := range out32 {
		if out32[i].Len() != out[i].Len() {
			t.Errorf("level %g: float32 length %d != float64 length %d",
				levels[i], out32[i].Len(), out[i].Len())
		}
		for j := range out32[i].X {
			if math.Abs(float64(out32[i].X[j])-out[i].X[j]) > 1e-6 {
				t.Errorf("level %g vertex %d: %g != %g", levels[i], j, out32[i].X[j], out[i].X[j])
			}
		}
	}
}
