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

func TestIsConvexRing(t *testing.T) {
	tests := []struct {
		name string
		ring aegis.LinearRing
		want bool
	}{
		{"square", square(0, 0, 1), true},
		{"cw square", square(0, 0, 1).Reverse(), true},
		{
			"l-shape",
			aegis.LinearRing{
				aegis.Coord(0, 0), aegis.Coord(2, 0), aegis.Coord(2, 1),
				aegis.Coord(1, 1), aegis.Coord(1, 2), aegis.Coord(0, 2), aegis.Coord(0, 0),
			},
			false,
		},
		{
			"collinear point on edge",
			aegis.LinearRing{
				aegis.Coord(0, 0), aegis.Coord(1, 0), aegis.Coord(2, 0),
				aegis.Coord(2, 2), aegis.Coord(0, 2), aegis.Coord(0, 0),
			},
			true,
		},
		{"degenerate", aegis.LinearRing{aegis.Coord(0, 0), aegis.Coord(1, 1), aegis.Coord(0, 0)}, false},
	}
	for _, test := range tests {
		if got := IsConvexRing(test.ring); got != test.want {
			t.Errorf("%s: IsConvexRing = %t, want %t", test.name, got, test.want)
		}
	}
}

func TestIsConvexPolygon(t *testing.T) {
	if !IsConvex(aegis.NewPolygon(square(0, 0, 1))) {
		t.Error("square polygon should be convex")
	}
	holed := aegis.NewPolygon(square(0, 0, 4), square(1, 1, 1).Reverse())
	if IsConvex(holed) {
		t.Error("a polygon with holes is never convex")
	}
	if IsConvex(nil) {
		t.Error("nil polygon should not be convex")
	}
}
