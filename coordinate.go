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

package aegis

import "math"

// Coordinate is a position in 3-dimensional Cartesian space.
// Planar algorithms operate on X and Y and treat Z as an attribute
// that must be constant within a ring.
type Coordinate struct {
	X, Y, Z float64
}

// Coord returns a new coordinate on the Z=0 plane.
func Coord(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// IsValid reports whether all components of c are finite.
// Algorithms that encounter an invalid coordinate yield an
// undefined result rather than an error.
func (c Coordinate) IsValid() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0) &&
		!math.IsNaN(c.Z) && !math.IsInf(c.Z, 0)
}

// Equals reports whether c and c2 are exactly equal. No tolerance is
// applied at this layer.
func (c Coordinate) Equals(c2 Coordinate) bool {
	return c.X == c2.X && c.Y == c2.Y && c.Z == c2.Z
}

// Equals2D reports whether c and c2 have exactly equal X and Y components.
func (c Coordinate) Equals2D(c2 Coordinate) bool {
	return c.X == c2.X && c.Y == c2.Y
}
