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
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// TestCDFRoundTrip writes a grid to a NetCDF file and reads it back.
// All values are exactly representable as float32, so the round trip
// is lossless.
func TestCDFRoundTrip(t *testing.T) {
	x := []float64{0, 1, 2, 3.5}
	y := []float64{-1, 0.5, 2}
	z := make([]float64, 12)
	for i := range z {
		z[i] = float64(i) * 0.25
	}
	g, err := NewGrid(x, y, z, 3, 4)
	if err != nil {
		t.Fatal(err)
	}

	fname := filepath.Join(t.TempDir(), "grid.nc")
	w, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.WriteCDF(w, "x", "y", "z"); err != nil {
		t.Fatal(err)
	}
	w.Close()

	r, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	g2, err := ReadCDF(r, "x", "y", "z")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g2, g) {
		t.Errorf("round trip changed the grid:\nhave %+v\nwant %+v", g2, g)
	}

	if _, err := ReadCDF(r, "x", "y", "missing"); err == nil {
		t.Error("reading a missing variable should fail")
	}
}
