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
	"testing"

	aegis "github.com/krr0land/aegis-origin"
)

func TestWindingNumberUnitSquare(t *testing.T) {
	ring := square(0, 0, 1)
	tests := []struct {
		point      aegis.Coordinate
		result     int
		onBoundary bool
	}{
		{aegis.Coord(0.5, 0.5), 1, false},
		{aegis.Coord(2, 2), 0, false},
		{aegis.Coord(0, 0.5), 0, true},
		{aegis.Coord(0.5, -0.1), 0, false},
		{aegis.Coord(1, 1), 0, true},
	}
	for _, test := range tests {
		w := NewWindingNumber(ring, test.point)
		w.Compute()
		if w.OnBoundary() != test.onBoundary {
			t.Errorf("point %v: OnBoundary = %t, want %t", test.point, w.OnBoundary(), test.onBoundary)
			continue
		}
		if !test.onBoundary && w.Result() != test.result {
			t.Errorf("point %v: Result = %d, want %d", test.point, w.Result(), test.result)
		}
	}
}

func TestWindingNumberClockwise(t *testing.T) {
	w := NewWindingNumber(square(0, 0, 1).Reverse(), aegis.Coord(0.5, 0.5))
	if got := w.Result(); got != -1 {
		t.Errorf("Result = %d, want -1 for a clockwise ring", got)
	}
}

func TestWindingNumberIdempotent(t *testing.T) {
	w := NewWindingNumber(square(0, 0, 1), aegis.Coord(0.5, 0.5))
	w.Compute()
	first := w.Result()
	w.Compute()
	if w.Result() != first {
		t.Errorf("repeated Compute changed the result: %d then %d", first, w.Result())
	}
}

func TestLocate(t *testing.T) {
	// 4x4 square with a unit hole at (1,1).
	p := aegis.NewPolygon(square(0, 0, 4), square(1, 1, 1).Reverse())
	tests := []struct {
		point aegis.Coordinate
		want  Location
	}{
		{aegis.Coord(0.5, 0.5), LocationInterior},
		{aegis.Coord(1.5, 1.5), LocationExterior}, // inside the hole
		{aegis.Coord(1, 1.5), LocationBoundary},   // on the hole ring
		{aegis.Coord(0, 2), LocationBoundary},
		{aegis.Coord(5, 5), LocationExterior},
		{aegis.Coordinate{X: 1, Y: 1, Z: 0}, LocationBoundary},
	}
	for _, test := range tests {
		if got := Locate(p, test.point); got != test.want {
			t.Errorf("Locate(%v) = %s, want %s", test.point, got, test.want)
		}
	}

	if got := Locate(nil, aegis.Coord(0, 0)); got != LocationUndefined {
		t.Errorf("Locate(nil polygon) = %s, want undefined", got)
	}
	if !InInterior(p, aegis.Coord(3, 3)) {
		t.Error("(3,3) should be interior")
	}
	if !InExterior(p, aegis.Coord(-1, 0)) {
		t.Error("(-1,0) should be exterior")
	}
	if !OnBoundary(p, aegis.Coord(4, 2)) {
		t.Error("(4,2) should be on the boundary")
	}
}
