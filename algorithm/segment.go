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

// Segment is a directed straight line segment between two coordinates.
type Segment struct {
	Start, End aegis.Coordinate
}

// Envelope returns the bounding box of s.
func (s Segment) Envelope() *aegis.Envelope {
	return aegis.EnvelopeFromCoordinates(s.Start, s.End)
}

// SegmentIntersection returns the intersection of two segments: an
// empty slice if they do not meet, one coordinate if they meet in a
// point, and two coordinates (the overlap endpoints) if they are
// collinear and overlap along a sub-segment. The parametric technique
// follows Martínez et al.
func SegmentIntersection(s0, s1 Segment) []aegis.Coordinate {
	p0, p1 := s0.Start, s1.Start
	d0x, d0y := s0.End.X-p0.X, s0.End.Y-p0.Y
	d1x, d1y := s1.End.X-p1.X, s1.End.Y-p1.Y
	ex, ey := p1.X-p0.X, p1.Y-p0.Y

	sqrLen0 := d0x*d0x + d0y*d0y
	sqrLen1 := d1x*d1x + d1y*d1y
	if sqrLen0 == 0 || sqrLen1 == 0 {
		return nil // degenerate segment
	}

	kross := d0x*d1y - d0y*d1x
	if kross*kross > tolerance*tolerance*sqrLen0*sqrLen1 {
		// The segment lines are not parallel.
		s := (ex*d1y - ey*d1x) / kross
		if s < 0 || s > 1 {
			return nil
		}
		t := (ex*d0y - ey*d0x) / kross
		if t < 0 || t > 1 {
			return nil
		}
		return []aegis.Coordinate{{X: p0.X + s*d0x, Y: p0.Y + s*d0y, Z: p0.Z}}
	}

	// The segment lines are parallel; check whether they coincide.
	sqrLenE := ex*ex + ey*ey
	kross = ex*d0y - ey*d0x
	if kross*kross > tolerance*tolerance*sqrLen0*sqrLenE {
		return nil // parallel but distinct lines
	}

	// Collinear: project s1's endpoints onto s0's parameter space and
	// intersect the parameter intervals.
	t0 := (d0x*ex + d0y*ey) / sqrLen0
	t1 := t0 + (d0x*d1x+d0y*d1y)/sqrLen0
	tMin, tMax := math.Min(t0, t1), math.Max(t0, t1)
	w, n := intervalIntersection(0, 1, tMin, tMax)
	pts := make([]aegis.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, aegis.Coordinate{X: p0.X + w[i]*d0x, Y: p0.Y + w[i]*d0y, Z: p0.Z})
	}
	return pts
}

// intervalIntersection intersects the parameter intervals [u0,u1] and
// [v0,v1], returning the endpoint parameters and their count (0, 1 for
// a touch, 2 for an overlap).
func intervalIntersection(u0, u1, v0, v1 float64) ([2]float64, int) {
	var w [2]float64
	if u1 < v0 || u0 > v1 {
		return w, 0
	}
	if u1 == v0 {
		w[0] = u1
		return w, 1
	}
	if u0 == v1 {
		w[0] = u0
		return w, 1
	}
	w[0] = math.Max(u0, v0)
	w[1] = math.Min(u1, v1)
	if w[0] == w[1] {
		return w, 1
	}
	return w, 2
}

// pointOnSegment reports whether p lies on the segment from a to b,
// within tolerance.
func pointOnSegment(p, a, b aegis.Coordinate) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	sqrLen := dx*dx + dy*dy
	if sqrLen == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y) <= tolerance
	}
	// Perpendicular distance from the segment's line.
	d := ((p.X-a.X)*dy - (p.Y-a.Y)*dx) / math.Sqrt(sqrLen)
	if math.Abs(d) > tolerance {
		return false
	}
	// Projection parameter must fall within the segment.
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / sqrLen
	return t >= -tolerance && t <= 1+tolerance
}
