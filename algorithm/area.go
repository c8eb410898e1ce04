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

// SignedArea returns the signed shoelace area of ring: positive for
// counter-clockwise orientation, negative for clockwise. The result
// is NaN when the ring has fewer than 3 coordinates, is non-planar,
// or contains a non-finite coordinate.
// See http://www.mathopenref.com/coordpolygonarea2.html.
func SignedArea(ring aegis.LinearRing) float64 {
	if len(ring) < 3 || !allValid(ring) || !planar(ring) {
		return math.NaN()
	}
	highI := len(ring) - 1
	a := (ring[highI].X + ring[0].X) * (ring[0].Y - ring[highI].Y)
	for i := 0; i < highI; i++ {
		a += (ring[i].X + ring[i+1].X) * (ring[i+1].Y - ring[i].Y)
	}
	return a / 2
}

// Area returns the absolute area of ring, or NaN when SignedArea is
// undefined for it.
func Area(ring aegis.LinearRing) float64 {
	return math.Abs(SignedArea(ring))
}

// PolygonArea returns the area of p: the shell area minus the areas
// of the holes. The empty polygon has area 0. The result is NaN when
// any ring's area is undefined.
func PolygonArea(p *aegis.Polygon) float64 {
	if p == nil {
		return math.NaN()
	}
	if p.IsEmpty() {
		return 0
	}
	a := Area(p.Shell)
	for _, h := range p.Holes {
		a -= Area(h)
	}
	return a
}
