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

import "fmt"

// Factory materializes geometries on behalf of an algorithm, so that
// operation results can be built in whatever representation the
// caller uses without the kernel fixing one.
type Factory interface {
	NewLinearRing(coords []Coordinate) (LinearRing, error)
	NewPolygon(shell LinearRing, holes []LinearRing) (*Polygon, error)
	NewGeometryCollection(items []Geom) (*GeometryCollection, error)
}

// GeometryFactory is the reference Factory implementation. Every
// geometry it creates carries the factory's reference system tag and
// metadata mapping.
type GeometryFactory struct {
	RS   ReferenceSystem
	Meta Metadata
}

// NewGeometryFactory returns a factory stamping rs and meta onto all
// created geometries.
func NewGeometryFactory(rs ReferenceSystem, meta Metadata) *GeometryFactory {
	return &GeometryFactory{RS: rs, Meta: meta}
}

// NewLinearRing builds a ring from coords, closing it if the first
// and last coordinates differ. Fewer than 3 distinct coordinates is
// an error.
func (f *GeometryFactory) NewLinearRing(coords []Coordinate) (LinearRing, error) {
	ring := LinearRing(coords).Clone()
	if len(ring) >= 2 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	if len(ring) < 4 || distinctCount(ring) < 3 {
		return nil, fmt.Errorf("aegis: ring has %d coordinates, need at least 3 distinct", len(coords))
	}
	return ring, nil
}

// distinctCount counts the distinct 2D coordinates of a closed ring,
// excluding the closing duplicate.
func distinctCount(ring LinearRing) int {
	n := 0
	for i, c := range ring[:len(ring)-1] {
		seen := false
		for _, prev := range ring[:i] {
			if c.Equals2D(prev) {
				seen = true
				break
			}
		}
		if !seen {
			n++
		}
	}
	return n
}

// NewPolygon builds a polygon from shell and holes.
func (f *GeometryFactory) NewPolygon(shell LinearRing, holes []LinearRing) (*Polygon, error) {
	if len(shell) == 0 && len(holes) > 0 {
		return nil, fmt.Errorf("aegis: polygon with holes requires a shell")
	}
	return &Polygon{Shell: shell, Holes: holes, RS: f.RS, Meta: f.Meta}, nil
}

// NewGeometryCollection builds a collection from items.
func (f *GeometryFactory) NewGeometryCollection(items []Geom) (*GeometryCollection, error) {
	return &GeometryCollection{Geoms: items, RS: f.RS, Meta: f.Meta}, nil
}
