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

// WindingNumber computes the winding number of a point relative to a
// closed ring by summing the signed crossings of the ring's edges
// across a horizontal ray from the point. A zero result means the
// point is outside the ring; for simple rings any nonzero result
// means inside. If the point lies on a ring edge (within tolerance)
// the computation short-circuits and OnBoundary reports true, in
// which case the numeric result is meaningless.
//
// The crossing rules follow Sunday's formulation
// (geomalgorithms.com/a03-_inclusion.html).
type WindingNumber struct {
	Ring  aegis.LinearRing
	Point aegis.Coordinate

	computed   bool
	result     int
	onBoundary bool
}

// NewWindingNumber returns a winding number computation for point
// relative to ring.
func NewWindingNumber(ring aegis.LinearRing, point aegis.Coordinate) *WindingNumber {
	return &WindingNumber{Ring: ring, Point: point}
}

// Compute runs the computation. It is idempotent: repeated calls do
// not recompute.
func (w *WindingNumber) Compute() {
	if w.computed {
		return
	}
	w.computed = true
	w.result = 0
	w.onBoundary = false

	n := len(w.Ring)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := w.Ring[i]
		b := w.Ring[(i+1)%n]
		if i == n-1 && w.Ring.Closed() {
			break // closing edge already handled by the duplicate coordinate
		}
		if a.Equals2D(b) {
			continue
		}
		if pointOnSegment(w.Point, a, b) {
			w.onBoundary = true
			return
		}
		if a.Y <= w.Point.Y {
			if b.Y > w.Point.Y && cross2D(a, b, w.Point) > 0 {
				w.result++ // upward crossing with the point to the left
			}
		} else if b.Y <= w.Point.Y && cross2D(a, b, w.Point) < 0 {
			w.result-- // downward crossing with the point to the right
		}
	}
}

// Result returns the winding number, computing it if necessary.
func (w *WindingNumber) Result() int {
	w.Compute()
	return w.result
}

// OnBoundary reports whether the point lies on the ring itself.
func (w *WindingNumber) OnBoundary() bool {
	w.Compute()
	return w.onBoundary
}
