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

// Envelope is an axis-aligned bounding box. It is used as a fast
// rejection filter before any graph construction takes place.
type Envelope struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewEnvelope initializes an empty envelope. The minimums start at
// positive infinity and the maximums at negative infinity so that the
// first Extend call sets all bounds.
func NewEnvelope() *Envelope {
	return &Envelope{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
	}
}

// EnvelopeFromCoordinates computes the envelope of coords.
func EnvelopeFromCoordinates(coords ...Coordinate) *Envelope {
	e := NewEnvelope()
	e.ExtendCoordinates(coords)
	return e
}

// ExtendCoordinate expands e to include c.
func (e *Envelope) ExtendCoordinate(c Coordinate) {
	e.MinX = math.Min(e.MinX, c.X)
	e.MaxX = math.Max(e.MaxX, c.X)
	e.MinY = math.Min(e.MinY, c.Y)
	e.MaxY = math.Max(e.MaxY, c.Y)
	e.MinZ = math.Min(e.MinZ, c.Z)
	e.MaxZ = math.Max(e.MaxZ, c.Z)
}

// ExtendCoordinates expands e to include all of coords.
func (e *Envelope) ExtendCoordinates(coords []Coordinate) {
	for _, c := range coords {
		e.ExtendCoordinate(c)
	}
}

// Extend expands e to include e2.
func (e *Envelope) Extend(e2 *Envelope) {
	if e2 == nil || e2.IsEmpty() {
		return
	}
	e.MinX = math.Min(e.MinX, e2.MinX)
	e.MaxX = math.Max(e.MaxX, e2.MaxX)
	e.MinY = math.Min(e.MinY, e2.MinY)
	e.MaxY = math.Max(e.MaxY, e2.MaxY)
	e.MinZ = math.Min(e.MinZ, e2.MinZ)
	e.MaxZ = math.Max(e.MaxZ, e2.MaxZ)
}

// IsEmpty reports whether e contains no coordinates.
func (e *Envelope) IsEmpty() bool {
	return e.MaxX < e.MinX || e.MaxY < e.MinY || e.MaxZ < e.MinZ
}

// Contains reports whether c lies within e, boundary included.
func (e *Envelope) Contains(c Coordinate) bool {
	return c.X >= e.MinX && c.X <= e.MaxX &&
		c.Y >= e.MinY && c.Y <= e.MaxY &&
		c.Z >= e.MinZ && c.Z <= e.MaxZ
}

// Disjoint reports whether e and e2 do not overlap on at least one
// axis. An empty envelope is disjoint from everything.
func (e *Envelope) Disjoint(e2 *Envelope) bool {
	if e2 == nil || e.IsEmpty() || e2.IsEmpty() {
		return true
	}
	return e.MinX > e2.MaxX || e.MaxX < e2.MinX ||
		e.MinY > e2.MaxY || e.MaxY < e2.MinY ||
		e.MinZ > e2.MaxZ || e.MaxZ < e2.MinZ
}
