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

// Location classifies a point relative to a polygon.
type Location int

const (
	// LocationUndefined indicates the point or the polygon data is
	// invalid.
	LocationUndefined Location = iota
	// LocationInterior indicates the point is inside the polygon.
	LocationInterior
	// LocationBoundary indicates the point lies on a ring.
	LocationBoundary
	// LocationExterior indicates the point is outside the polygon.
	LocationExterior
)

func (l Location) String() string {
	switch l {
	case LocationInterior:
		return "interior"
	case LocationBoundary:
		return "boundary"
	case LocationExterior:
		return "exterior"
	default:
		return "undefined"
	}
}

// Locate classifies c relative to p. The point is Boundary if it lies
// on any ring, Interior if it winds inside the shell and outside
// every hole, and Exterior otherwise. The polygon's envelope is used
// as a fast rejection filter before any winding computation.
func Locate(p *aegis.Polygon, c aegis.Coordinate) Location {
	if p == nil || !c.IsValid() {
		return LocationUndefined
	}
	if p.IsEmpty() {
		return LocationExterior
	}
	for _, r := range p.Rings() {
		if !allValid(r) {
			return LocationUndefined
		}
	}

	// Planar fast reject; Z is an attribute here, not a position.
	e := p.Envelope()
	if c.X < e.MinX || c.X > e.MaxX || c.Y < e.MinY || c.Y > e.MaxY {
		return LocationExterior
	}

	shell := NewWindingNumber(p.Shell, c)
	if shell.OnBoundary() {
		return LocationBoundary
	}
	if shell.Result() == 0 {
		return LocationExterior
	}
	for _, h := range p.Holes {
		hole := NewWindingNumber(h, c)
		if hole.OnBoundary() {
			return LocationBoundary
		}
		if hole.Result() != 0 {
			return LocationExterior
		}
	}
	return LocationInterior
}

// InInterior reports whether c is strictly inside p.
func InInterior(p *aegis.Polygon, c aegis.Coordinate) bool {
	return Locate(p, c) == LocationInterior
}

// InExterior reports whether c is strictly outside p.
func InExterior(p *aegis.Polygon, c aegis.Coordinate) bool {
	return Locate(p, c) == LocationExterior
}

// OnBoundary reports whether c lies on a ring of p.
func OnBoundary(p *aegis.Polygon, c aegis.Coordinate) bool {
	return Locate(p, c) == LocationBoundary
}
