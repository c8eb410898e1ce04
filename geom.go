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
Package aegis holds the planar geometry data model shared by the
algorithm and topology packages: coordinates, envelopes, rings,
polygons and the factory abstraction used to materialize operation
results without fixing a concrete geometry representation.
*/
package aegis

// ReferenceSystem is an opaque tag identifying the coordinate
// reference system a geometry is expressed in. The kernel never
// interprets it; it is carried into results unchanged.
type ReferenceSystem string

// Metadata is an attribute mapping attached to a geometry. It is
// propagated into operation results but otherwise opaque.
type Metadata map[string]interface{}

// Geom is the interface for generic geometry types.
type Geom interface {
	// Envelope returns the axis-aligned bounding box of the geometry.
	Envelope() *Envelope
	// ReferenceSystem returns the geometry's reference system tag.
	ReferenceSystem() ReferenceSystem
	// Metadata returns the geometry's attribute mapping, which may be nil.
	Metadata() Metadata
}

// LinearRing is a closed ordered sequence of coordinates. A
// well-formed ring has at least 4 coordinates, equal first and last
// coordinates, constant Z and no two consecutive equal coordinates;
// these constraints are checked by the factory and the validity
// algorithms, not by the type itself.
type LinearRing []Coordinate

// Closed reports whether the ring's first and last coordinates are
// exactly equal. Rings with fewer than 2 coordinates are not closed.
func (r LinearRing) Closed() bool {
	return len(r) >= 2 && r[0].Equals(r[len(r)-1])
}

// Envelope returns the bounding box of the ring.
func (r LinearRing) Envelope() *Envelope {
	return EnvelopeFromCoordinates(r...)
}

// Reverse returns a copy of r with the coordinate order reversed.
func (r LinearRing) Reverse() LinearRing {
	out := make(LinearRing, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}

// Clone returns a deep copy of r.
func (r LinearRing) Clone() LinearRing {
	return append(LinearRing{}, r...)
}

// Polygon is a surface bounded by one shell ring and zero or more
// hole rings. A polygon with an empty shell and no holes is the
// canonical empty polygon.
type Polygon struct {
	Shell LinearRing
	Holes []LinearRing

	RS   ReferenceSystem
	Meta Metadata
}

// NewPolygon returns a polygon with the given shell and holes and no
// reference system or metadata.
func NewPolygon(shell LinearRing, holes ...LinearRing) *Polygon {
	return &Polygon{Shell: shell, Holes: holes}
}

// IsEmpty reports whether p is the canonical empty polygon.
func (p *Polygon) IsEmpty() bool {
	return len(p.Shell) == 0 && len(p.Holes) == 0
}

// Rings returns the shell followed by the holes.
func (p *Polygon) Rings() []LinearRing {
	rings := make([]LinearRing, 0, len(p.Holes)+1)
	rings = append(rings, p.Shell)
	rings = append(rings, p.Holes...)
	return rings
}

// Envelope returns the bounding box of the shell. Holes lie within
// the shell for valid polygons, so they do not contribute.
func (p *Polygon) Envelope() *Envelope {
	return p.Shell.Envelope()
}

// ReferenceSystem returns the polygon's reference system tag.
func (p *Polygon) ReferenceSystem() ReferenceSystem { return p.RS }

// Metadata returns the polygon's attribute mapping.
func (p *Polygon) Metadata() Metadata { return p.Meta }

// GeometryCollection is an ordered list of geometries.
type GeometryCollection struct {
	Geoms []Geom

	RS   ReferenceSystem
	Meta Metadata
}

// Envelope returns the combined bounding box of all members.
func (gc *GeometryCollection) Envelope() *Envelope {
	e := NewEnvelope()
	for _, g := range gc.Geoms {
		e.Extend(g.Envelope())
	}
	return e
}

// ReferenceSystem returns the collection's reference system tag.
func (gc *GeometryCollection) ReferenceSystem() ReferenceSystem { return gc.RS }

// Metadata returns the collection's attribute mapping.
func (gc *GeometryCollection) Metadata() Metadata { return gc.Meta }

// Len returns the number of member geometries.
func (gc *GeometryCollection) Len() int { return len(gc.Geoms) }
