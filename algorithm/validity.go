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

// IsValid reports whether p satisfies the polygon invariants: every
// ring closed with at least 4 coordinates, no consecutive duplicate
// coordinates, all rings coplanar with the shell, the shell
// counter-clockwise and every hole clockwise, and no ring
// self-intersection or inter-ring intersection (Shamos-Hoey). The
// canonical empty polygon is valid.
func IsValid(p *aegis.Polygon) bool {
	if p == nil {
		return false
	}
	if p.IsEmpty() {
		return true
	}
	if len(p.Shell) == 0 {
		return false
	}
	z := p.Shell[0].Z
	for _, r := range p.Rings() {
		if len(r) < 4 || !r.Closed() || !allValid(r) {
			return false
		}
		for _, c := range r {
			if c.Z != z {
				return false
			}
		}
		for i := 0; i+1 < len(r); i++ {
			if r[i].Equals(r[i+1]) {
				return false
			}
		}
	}
	if RingOrientation(p.Shell) != Counterclockwise {
		return false
	}
	for _, h := range p.Holes {
		if RingOrientation(h) != Clockwise {
			return false
		}
	}
	return !Intersects(p.Rings()...)
}

// IsSimple reports whether p has no ring self-intersections and no
// intersections between rings, without enforcing the orientation and
// planarity invariants that IsValid adds.
func IsSimple(p *aegis.Polygon) bool {
	if p == nil {
		return false
	}
	if p.IsEmpty() {
		return true
	}
	return !Intersects(p.Rings()...)
}
