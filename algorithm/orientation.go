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

// Orientation is the vertex ordering of a ring.
type Orientation int

const (
	// OrientationUndefined indicates the orientation could not be
	// determined: too few coordinates, an unclosed or non-planar ring,
	// or a non-finite coordinate.
	OrientationUndefined Orientation = iota
	// Clockwise vertex order.
	Clockwise
	// Counterclockwise vertex order.
	Counterclockwise
	// Collinear indicates a degenerate ring whose coordinates all lie
	// on one axis-parallel line.
	Collinear
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	case Collinear:
		return "collinear"
	default:
		return "undefined"
	}
}

// RingOrientation determines the orientation of a closed ring using
// the turn direction at its topmost vertex.
func RingOrientation(ring aegis.LinearRing) Orientation {
	if len(ring) < 3 || !ring.Closed() || !allValid(ring) || !planar(ring) {
		return OrientationUndefined
	}
	e := ring.Envelope()
	if e.MinX == e.MaxX || e.MinY == e.MaxY {
		return Collinear
	}

	// The closing coordinate duplicates the first; work modulo n.
	n := len(ring) - 1
	top := 0
	for i := 1; i < n; i++ {
		if ring[i].Y > ring[top].Y {
			top = i
		}
	}

	// Walk outward from the top vertex past any duplicate coordinates
	// to the previous and next distinct vertices.
	prev := (top - 1 + n) % n
	for prev != top && ring[prev].Equals2D(ring[top]) {
		prev = (prev - 1 + n) % n
	}
	next := (top + 1) % n
	for next != top && ring[next].Equals2D(ring[top]) {
		next = (next + 1) % n
	}
	if prev == top || next == top {
		return OrientationUndefined
	}

	turn := cross2D(ring[prev], ring[top], ring[next])
	switch {
	case turn > 0:
		return Counterclockwise
	case turn < 0:
		return Clockwise
	}
	// Straight at the top vertex: at the maximum Y the travel
	// direction decides — right-to-left is counter-clockwise.
	if ring[prev].X > ring[next].X {
		return Counterclockwise
	}
	return Clockwise
}
