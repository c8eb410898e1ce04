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
	aegis "github.com/krr0land/aegis-origin"
)

// IsConvexRing reports whether every consecutive vertex triple of the
// ring turns in the same direction as the ring's first turning
// triple, the wrap-around triple included. Straight (collinear)
// triples are permitted. Rings with fewer than 3 distinct coordinates
// are not convex.
func IsConvexRing(ring aegis.LinearRing) bool {
	n := len(ring)
	if ring.Closed() {
		n-- // drop the duplicate closing coordinate
	}
	if n < 3 {
		return false
	}

	reference := 0.0
	for i := 0; i < n; i++ {
		turn := cross2D(ring[(i-1+n)%n], ring[i], ring[(i+1)%n])
		switch {
		case turn == 0:
			continue
		case reference == 0:
			reference = turn
		case turn*reference < 0:
			return false
		}
	}
	return reference != 0
}

// IsConvex reports whether p is a convex polygon. Polygons with holes
// are never convex.
func IsConvex(p *aegis.Polygon) bool {
	if p == nil || len(p.Holes) > 0 {
		return false
	}
	return IsConvexRing(p.Shell)
}
