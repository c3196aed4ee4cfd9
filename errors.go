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

import "errors"

var (
	// ErrDimension is returned when input array lengths do not match
	// the stated grid dimensions.
	ErrDimension = errors.New("isogrid: dimension mismatch")

	// ErrInvariant is returned when the stitcher encounters a merge
	// configuration that the connectivity invariants declare impossible.
	// It indicates either a pathological grid or a case-table bug; no
	// recovery is attempted because any recovery would silently corrupt
	// the contour topology. After an ErrInvariant the engine must be
	// recomputed from scratch before its results can be used.
	ErrInvariant = errors.New("isogrid: connectivity invariant violation")
)
