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

// cell emits the elementary polygons for one cell. idx is the ternary
// case index 27*t(r,c) + 9*t(r,c+1) + 3*t(r+1,c+1) + t(r+1,c), where each
// t digit is 0 below vlo, 1 inside the band, and 2 at or above vhi. The
// comments name the digits in that order. Cases are grouped by shape
// family rather than numeric order; the ambiguous saddle families are
// resolved by the cell's central value.
func (b *Isobander) cell(r, c, idx int) error {
	switch idx {

	// no contour
	case 0, 80:
		return nil

	// single triangle
	case 1: // 0001
		b.polyStart(r, c, vLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 3: // 0010
		b.polyStart(r, c+1, vLo)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()
	case 9: // 0100
		b.polyStart(r, c, hLo)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		return b.polyMerge()
	case 27: // 1000
		b.polyStart(r, c, vLo)
		b.polyAdd(r, c, corner)
		b.polyAdd(r, c, hLo)
		return b.polyMerge()
	case 79: // 2221
		b.polyStart(r, c, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 77: // 2212
		b.polyStart(r, c+1, vHi)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		return b.polyMerge()
	case 71: // 2122
		b.polyStart(r, c, hHi)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		return b.polyMerge()
	case 53: // 1222
		b.polyStart(r, c, vHi)
		b.polyAdd(r, c, corner)
		b.polyAdd(r, c, hHi)
		return b.polyMerge()

	// single trapezoid
	case 78: // 2220
		b.polyStart(r, c, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 74: // 2202
		b.polyStart(r+1, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()
	case 62: // 2022
		b.polyStart(r, c+1, vHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		return b.polyMerge()
	case 26: // 0222
		b.polyStart(r, c, hHi)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		return b.polyMerge()
	case 2: // 0002
		b.polyStart(r, c, vLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 6: // 0020
		b.polyStart(r+1, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		return b.polyMerge()
	case 18: // 0200
		b.polyStart(r, c+1, vLo)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		return b.polyMerge()
	case 54: // 2000
		b.polyStart(r, c, hLo)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		return b.polyMerge()

	// single rectangle
	case 4: // 0011
		b.polyStart(r, c, vLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 12: // 0110
		b.polyStart(r, c, hLo)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()
	case 36: // 1100
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 28: // 1001
		b.polyStart(r, c, hLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, corner)
		b.polyAdd(r, c, corner)
		return b.polyMerge()
	case 76: // 2211
		b.polyStart(r, c, vHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 68: // 2112
		b.polyStart(r, c, hHi)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		return b.polyMerge()
	case 44: // 1122
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 52: // 1221
		b.polyStart(r, c, hHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, corner)
		b.polyAdd(r, c, corner)
		return b.polyMerge()
	case 72: // 2200
		b.polyStart(r, c, vHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 56: // 2002
		b.polyStart(r, c, hHi)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, hHi)
		return b.polyMerge()
	case 8: // 0022
		b.polyStart(r, c, vLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 24: // 0220
		b.polyStart(r, c, hLo)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()

	// single square
	case 40: // 1111
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()

	// single pentagon
	case 49: // 1211
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 67: // 2111
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		return b.polyMerge()
	case 41: // 1112
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 43: // 1121
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 31: // 1011
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 13: // 0111
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		return b.polyMerge()
	case 39: // 1110
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 37: // 1101
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 45: // 1200
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 15: // 0120
		b.polyStart(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, hLo)
		return b.polyMerge()
	case 5: // 0012
		b.polyStart(r, c, vLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 55: // 2001
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()
	case 35: // 1022
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 65: // 2102
		b.polyStart(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, hHi)
		return b.polyMerge()
	case 75: // 2210
		b.polyStart(r, c, vHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 25: // 0221
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r+1, c, hHi)
		return b.polyMerge()
	case 29: // 1002
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 63: // 2100
		b.polyStart(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		return b.polyMerge()
	case 21: // 0210
		b.polyStart(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		return b.polyMerge()
	case 7: // 0021
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		return b.polyMerge()
	case 51: // 1220
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 17: // 0122
		b.polyStart(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		return b.polyMerge()
	case 59: // 2012
		b.polyStart(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		return b.polyMerge()
	case 73: // 2201
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()

	// single hexagon
	case 22: // 0211
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c+1, corner)
		return b.polyMerge()
	case 66: // 2110
		b.polyStart(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		return b.polyMerge()
	case 38: // 1102
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 34: // 1021
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 58: // 2011
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c+1, corner)
		return b.polyMerge()
	case 14: // 0112
		b.polyStart(r, c+1, corner)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		return b.polyMerge()
	case 42: // 1120
		b.polyStart(r, c, corner)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 46: // 1201
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, corner)
		return b.polyMerge()
	case 64: // 2101
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()
	case 16: // 0121
		b.polyStart(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, corner)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		return b.polyMerge()
	case 32: // 1012
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 48: // 1210
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()

	// 6-sided saddles
	case 10: // 0101
		if b.centralValue(r, c) < b.vlo {
			b.polyStart(r+1, c, corner)
			b.polyAdd(r, c, vLo)
			b.polyAdd(r+1, c, hLo)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c+1, corner)
			b.polyAdd(r, c+1, vLo)
			b.polyAdd(r, c, hLo)
			return b.polyMerge()
		}
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()
	case 30: // 1010
		if b.centralValue(r, c) < b.vlo {
			b.polyStart(r, c, corner)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c, vLo)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r+1, c+1, corner)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r, c+1, vLo)
			return b.polyMerge()
		}
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 70: // 2121
		if b.centralValue(r, c) >= b.vhi {
			b.polyStart(r+1, c, corner)
			b.polyAdd(r, c, vHi)
			b.polyAdd(r+1, c, hHi)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c+1, corner)
			b.polyAdd(r, c+1, vHi)
			b.polyAdd(r, c, hHi)
			return b.polyMerge()
		}
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		return b.polyMerge()
	case 50: // 1212
		if b.centralValue(r, c) >= b.vhi {
			b.polyStart(r, c, corner)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c, vHi)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r+1, c+1, corner)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r, c+1, vHi)
			return b.polyMerge()
		}
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()

	// 7-sided saddles
	case 69: // 2120
		if b.centralValue(r, c) >= b.vhi {
			b.polyStart(r, c+1, corner)
			b.polyAdd(r, c+1, vHi)
			b.polyAdd(r, c, hHi)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c, vHi)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r, c, vLo)
			return b.polyMerge()
		}
		b.polyStart(r, c+1, corner)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		return b.polyMerge()
	case 61: // 2021
		if b.centralValue(r, c) >= b.vhi {
			b.polyStart(r+1, c, corner)
			b.polyAdd(r, c, vHi)
			b.polyAdd(r+1, c, hHi)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c+1, vHi)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c+1, vLo)
			return b.polyMerge()
		}
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		return b.polyMerge()
	case 47: // 1202
		if b.centralValue(r, c) >= b.vhi {
			b.polyStart(r, c, corner)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c, vHi)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r+1, c, hHi)
			b.polyAdd(r, c+1, vHi)
			b.polyAdd(r, c+1, vLo)
			b.polyAdd(r+1, c, hLo)
			return b.polyMerge()
		}
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		return b.polyMerge()
	case 23: // 0212
		if b.centralValue(r, c) >= b.vhi {
			b.polyStart(r+1, c+1, corner)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r, c+1, vHi)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c, hHi)
			b.polyAdd(r, c, vHi)
			b.polyAdd(r, c, vLo)
			b.polyAdd(r, c, hLo)
			return b.polyMerge()
		}
		b.polyStart(r+1, c+1, corner)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		return b.polyMerge()
	case 11: // 0102
		if b.centralValue(r, c) < b.vlo {
			b.polyStart(r, c+1, corner)
			b.polyAdd(r, c+1, vLo)
			b.polyAdd(r, c, hLo)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c, vLo)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r, c, vHi)
			return b.polyMerge()
		}
		b.polyStart(r, c+1, corner)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		return b.polyMerge()
	case 19: // 0201
		if b.centralValue(r, c) < b.vlo {
			b.polyStart(r+1, c, corner)
			b.polyAdd(r, c, vLo)
			b.polyAdd(r+1, c, hLo)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c+1, vLo)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c+1, vHi)
			return b.polyMerge()
		}
		b.polyStart(r+1, c, corner)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r+1, c, hLo)
		return b.polyMerge()
	case 33: // 1020
		if b.centralValue(r, c) < b.vlo {
			b.polyStart(r, c, corner)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c, vLo)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r+1, c, hLo)
			b.polyAdd(r, c+1, vLo)
			b.polyAdd(r, c+1, vHi)
			b.polyAdd(r+1, c, hHi)
			return b.polyMerge()
		}
		b.polyStart(r, c, corner)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		b.polyAdd(r, c+1, vHi)
		b.polyAdd(r+1, c, hHi)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		return b.polyMerge()
	case 57: // 2010
		if b.centralValue(r, c) < b.vlo {
			b.polyStart(r+1, c+1, corner)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r, c+1, vLo)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c, hLo)
			b.polyAdd(r, c, vLo)
			b.polyAdd(r, c, vHi)
			b.polyAdd(r, c, hHi)
			return b.polyMerge()
		}
		b.polyStart(r+1, c+1, corner)
		b.polyAdd(r+1, c, hLo)
		b.polyAdd(r, c, vLo)
		b.polyAdd(r, c, vHi)
		b.polyAdd(r, c, hHi)
		b.polyAdd(r, c, hLo)
		b.polyAdd(r, c+1, vLo)
		return b.polyMerge()

	// 8-sided saddles
	case 60: // 2020
		vc := b.centralValue(r, c)
		switch {
		case vc < b.vlo:
			b.polyStart(r, c, vHi)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c, vLo)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c+1, vHi)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r, c+1, vLo)
			return b.polyMerge()
		case vc >= b.vhi:
			b.polyStart(r, c, vHi)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r, c, vLo)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c+1, vHi)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c+1, vLo)
			return b.polyMerge()
		default:
			b.polyStart(r, c, vHi)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c+1, vLo)
			b.polyAdd(r, c+1, vHi)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r, c, vLo)
			return b.polyMerge()
		}
	case 20: // 0202
		vc := b.centralValue(r, c)
		switch {
		case vc < b.vlo:
			b.polyStart(r, c, vLo)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r, c, vHi)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c+1, vLo)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c+1, vHi)
			return b.polyMerge()
		case vc >= b.vhi:
			b.polyStart(r, c, vLo)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c, vHi)
			if err := b.polyMerge(); err != nil {
				return err
			}
			b.polyStart(r, c+1, vLo)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r, c+1, vHi)
			return b.polyMerge()
		default:
			b.polyStart(r, c, vLo)
			b.polyAdd(r, c, hLo)
			b.polyAdd(r, c, hHi)
			b.polyAdd(r, c+1, vHi)
			b.polyAdd(r, c+1, vLo)
			b.polyAdd(r+1, c, hLo)
			b.polyAdd(r+1, c, hHi)
			b.polyAdd(r, c, vHi)
			return b.polyMerge()
		}
	}
	return nil
}
