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

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	geomproj "github.com/ctessum/geom/proj"
)

// LineStrings converts an isoline result into one geom.LineString per
// polyline.
func (ps *PathSet) LineStrings() []geom.LineString {
	out := make([]geom.LineString, ps.NumPaths())
	for i, id := range ps.ID {
		out[id-1] = append(out[id-1], geom.Point{X: ps.X[i], Y: ps.Y[i]})
	}
	return out
}

// Rings converts an isoband result into a geom.Polygon with one ring
// per path id, keeping the emitted winding: in the y-up coordinate
// frame, outer boundaries run counter-clockwise and holes clockwise.
func (ps *PathSet) Rings() geom.Polygon {
	out := make(geom.Polygon, ps.NumPaths())
	for i, id := range ps.ID {
		out[id-1] = append(out[id-1], geom.Point{X: ps.X[i], Y: ps.Y[i]})
	}
	return out
}

// ringEntry adapts one outer ring for spatial indexing.
type ringEntry struct {
	poly geom.Polygon // single outer ring
	area float64      // absolute ring area
	b    *geom.Bounds
}

func (e *ringEntry) Bounds() *geom.Bounds { return e.b }

func (e *ringEntry) Similar(g geom.Geom, tolerance float64) bool {
	return e.poly.Similar(g, tolerance)
}

func (e *ringEntry) Transform(t geomproj.Transformer) (geom.Geom, error) {
	return e.poly.Transform(t)
}

func (e *ringEntry) Len() int { return e.poly.Len() }

func (e *ringEntry) Points() func() geom.Point { return e.poly.Points() }

// MultiPolygon converts an isoband result into a geom.MultiPolygon in
// which every hole ring is attached to the polygon of its smallest
// enclosing outer ring. Outer rings and holes are told apart by winding:
// with y increasing along the grid rows, the band emitter produces outer
// boundaries with positive signed area and holes with negative area.
func (ps *PathSet) MultiPolygon() geom.MultiPolygon {
	rings := ps.Rings()

	var outers []*ringEntry
	var holes [][]geom.Point
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		a := signedArea(r)
		if a < 0 {
			holes = append(holes, r)
			continue
		}
		p := geom.Polygon{r}
		outers = append(outers, &ringEntry{poly: p, area: math.Abs(a), b: p.Bounds()})
	}

	tree := rtree.NewTree(25, 50)
	for _, o := range outers {
		tree.Insert(o)
	}

	out := make(geom.MultiPolygon, len(outers))
	for i, o := range outers {
		out[i] = geom.Polygon{o.poly[0]}
	}
	for _, h := range holes {
		// A hole vertex can coincide with a vertex of its enclosing
		// ring (two rings legitimately sharing a grid point), so a
		// point on the edge still counts as contained.
		pt := geom.Point{X: h[0].X, Y: h[0].Y}
		var best *ringEntry
		bestIdx := -1
		for _, s := range tree.SearchIntersect(geom.NewBoundsPoint(pt)) {
			e := s.(*ringEntry)
			if w := pt.Within(e.poly); w == geom.Inside || w == geom.OnEdge {
				if best == nil || e.area < best.area {
					best = e
					bestIdx = indexOf(outers, e)
				}
			}
		}
		if best == nil {
			// No enclosing ring; keep the geometry rather than drop it.
			out = append(out, geom.Polygon{h})
			continue
		}
		out[bestIdx] = append(out[bestIdx], h)
	}
	return out
}

func indexOf(entries []*ringEntry, e *ringEntry) int {
	for i, x := range entries {
		if x == e {
			return i
		}
	}
	return -1
}

// signedArea returns the signed area of a ring by the shoelace formula;
// the closing edge from the last vertex back to the first is implied.
// Counter-clockwise rings have positive area.
func signedArea(r []geom.Point) float64 {
	var a float64
	for i, p := range r {
		q := r[(i+1)%len(r)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
