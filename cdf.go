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
	"os"

	"github.com/ctessum/cdf"
)

// ReadCDF reads a gridded scalar field from a NetCDF file. xVar and
// yVar name the 1-dimensional coordinate variables and zVar the
// 2-dimensional value variable with dimensions (y, x). Values stored as
// float32 are widened to float64.
func ReadCDF(r cdf.ReaderWriterAt, xVar, yVar, zVar string) (*Grid, error) {
	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("isogrid: opening netcdf file: %v", err)
	}
	x, err := readCDFVar(f, xVar)
	if err != nil {
		return nil, err
	}
	y, err := readCDFVar(f, yVar)
	if err != nil {
		return nil, err
	}
	dims := f.Header.Lengths(zVar)
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: netcdf variable %s must have 2 dimensions (has %d)",
			ErrDimension, zVar, len(dims))
	}
	nrow, ncol := dims[0], dims[1]
	vals, err := readCDFVar(f, zVar)
	if err != nil {
		return nil, err
	}
	if len(vals) != nrow*ncol {
		return nil, fmt.Errorf("%w: netcdf variable %s has %d values for dimensions %d×%d",
			ErrDimension, zVar, len(vals), nrow, ncol)
	}
	// NetCDF stores (y, x) row-major; the engine wants column-major.
	z := make([]float64, nrow*ncol)
	for rr := 0; rr < nrow; rr++ {
		for cc := 0; cc < ncol; cc++ {
			z[rr+cc*nrow] = vals[rr*ncol+cc]
		}
	}
	return NewGrid(x, y, z, nrow, ncol)
}

// readCDFVar reads an entire variable as float64.
func readCDFVar(f *cdf.File, name string) ([]float64, error) {
	if len(f.Header.Lengths(name)) == 0 {
		return nil, fmt.Errorf("isogrid: netcdf variable %s not in file", name)
	}
	r := f.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("isogrid: reading netcdf variable %s: %v", name, err)
	}
	switch vals := buf.(type) {
	case []float64:
		return vals, nil
	case []float32:
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("isogrid: netcdf variable %s has unsupported type %T", name, buf)
	}
}

// WriteCDF writes the grid to a NetCDF file with float64 coordinate
// variables xVar and yVar and a float32 value variable zVar over
// dimensions (y, x), the layout ReadCDF expects.
func (g *Grid) WriteCDF(w *os.File, xVar, yVar, zVar string) error {
	h := cdf.NewHeader([]string{"x", "y"}, []int{g.Ncol, g.Nrow})
	h.AddVariable(xVar, []string{"x"}, []float64{0})
	h.AddAttribute(xVar, "description", "grid cell x coordinate")
	h.AddVariable(yVar, []string{"y"}, []float64{0})
	h.AddAttribute(yVar, "description", "grid cell y coordinate")
	h.AddVariable(zVar, []string{"y", "x"}, []float32{0})
	h.AddAttribute(zVar, "description", "gridded sample values")
	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("isogrid: creating netcdf header: %v", err)
	}

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("isogrid: creating netcdf file: %v", err)
	}
	if err := writeCDFVar(f, xVar, g.X); err != nil {
		return err
	}
	if err := writeCDFVar(f, yVar, g.Y); err != nil {
		return err
	}
	vals := make([]float32, g.Nrow*g.Ncol)
	for r := 0; r < g.Nrow; r++ {
		for c := 0; c < g.Ncol; c++ {
			vals[r*g.Ncol+c] = float32(g.at(r, c))
		}
	}
	if err := writeCDFVar(f, zVar, vals); err != nil {
		return err
	}
	if err := cdf.UpdateNumRecs(w); err != nil {
		return fmt.Errorf("isogrid: finalizing netcdf file: %v", err)
	}
	return nil
}

// writeCDFVar writes the full extent of one variable.
func writeCDFVar(f *cdf.File, name string, data interface{}) error {
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	if _, err := f.Writer(name, start, end).Write(data); err != nil {
		return fmt.Errorf("isogrid: writing netcdf variable %s: %v", name, err)
	}
	return nil
}
