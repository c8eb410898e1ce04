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

/*
Package algorithm provides stateless computational-geometry algorithms
over planar coordinate sequences: signed area, ring orientation,
convexity, polygon validity, point location, winding numbers,
Shamos-Hoey sweep-line intersection detection and Cyrus-Beck segment
clipping.

All functions are pure and safe for concurrent use. Numeric
degeneracies (too few coordinates, non-planar rings, non-finite
coordinates) yield sentinel results — NaN or an Undefined enum value —
rather than errors, so batch scans over many rings do not abort on one
bad ring.
*/
package algorithm

import (
	aegis "github.com/krr0land/aegis-origin"
)

// tolerance is the numerical tolerance used for boundary and
// parallelism tests. Coordinate equality remains exact; the tolerance
// only widens predicates that compare derived quantities.
const tolerance = 1e-10

// cross2D returns the z component of (a-o) × (b-o). It is positive
// when the turn o→a→b is counter-clockwise.
func cross2D(o, a, b aegis.Coordinate) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// planar reports whether all coordinates of ring share one Z value.
func planar(ring aegis.LinearRing) bool {
	for _, c := range ring {
		if c.Z != ring[0].Z {
			return false
		}
	}
	return true
}

// allValid reports whether every coordinate of ring is finite.
func allValid(ring aegis.LinearRing) bool {
	for _, c := range ring {
		if !c.IsValid() {
			return false
		}
	}
	return true
}
