/*
Copyright © 2026 the Aegis authors.
This file is part of Aegis.

Aegis is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Aegis is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Aegis.  If not, see <http://www.gnu.org/licenses/>.
*/

package algorithm

import (
	"math"

	aegis "github.com/krr0land/aegis-origin"
)

// ClipToConvex clips the segment from a to b against a convex ring
// using the Cyrus-Beck parametric method: each ring edge contributes
// an entering or leaving parameter, and the segment intersects the
// ring iff the largest entering parameter does not exceed the
// smallest leaving parameter. The clipped sub-segment and true are
// returned on intersection. The ring must be convex; the result is
// unspecified otherwise.
func ClipToConvex(ring aegis.LinearRing, a, b aegis.Coordinate) (Segment, bool) {
	r := ring
	if RingOrientation(r) == Clockwise {
		r = r.Reverse() // inward normals below assume counter-clockwise order
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	tEnter, tLeave := 0.0, 1.0
	for i := 0; i+1 < len(r); i++ {
		p0, p1 := r[i], r[i+1]
		if p0.Equals2D(p1) {
			continue
		}
		// Inward normal of the edge for a counter-clockwise ring.
		nx, ny := -(p1.Y - p0.Y), p1.X-p0.X
		den := nx*dx + ny*dy
		num := nx*(a.X-p0.X) + ny*(a.Y-p0.Y)
		if math.Abs(den) < tolerance {
			// Segment parallel to this edge: reject if fully outside
			// the edge's half-plane.
			if num < 0 {
				return Segment{}, false
			}
			continue
		}
		t := -num / den
		if den > 0 {
			if t > tEnter {
				tEnter = t
			}
		} else if t < tLeave {
			tLeave = t
		}
		if tEnter > tLeave {
			return Segment{}, false
		}
	}
	return Segment{
		Start: aegis.Coordinate{X: a.X + tEnter*dx, Y: a.Y + tEnter*dy, Z: a.Z},
		End:   aegis.Coordinate{X: a.X + tLeave*dx, Y: a.Y + tLeave*dy, Z: a.Z},
	}, true
}

// SegmentPolygonIntersection clips the segment from a to b against p.
// Only convex polygons are supported; a concave (or holed) polygon
// yields an UnsupportedGeometryError rather than a silently wrong
// answer. The boolean result reports whether any part of the segment
// lies within the polygon.
func SegmentPolygonIntersection(p *aegis.Polygon, a, b aegis.Coordinate) (Segment, bool, error) {
	if p == nil {
		return Segment{}, false, aegis.ErrNilGeometry
	}
	if !IsConvex(p) {
		return Segment{}, false, aegis.NewUnsupportedGeometryError(p)
	}
	seg, ok := ClipToConvex(p.Shell, a, b)
	return seg, ok, nil
}
