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

package shputil

import (
	"errors"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"gonum.org/v1/gonum/floats/scalar"

	aegis "github.com/krr0land/aegis-origin"
	"github.com/krr0land/aegis-origin/algorithm"
)

// cwSquare returns an open shapefile-order (clockwise) square part.
func cwSquare(x0, y0, size float64) []shp.Point {
	return []shp.Point{
		{X: x0, Y: y0},
		{X: x0, Y: y0 + size},
		{X: x0 + size, Y: y0 + size},
		{X: x0 + size, Y: y0},
	}
}

func ccwSquare(x0, y0, size float64) []shp.Point {
	pts := cwSquare(x0, y0, size)
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts
}

func shapeOf(parts ...[]shp.Point) *shp.Polygon {
	s := &shp.Polygon{}
	for _, part := range parts {
		s.Parts = append(s.Parts, int32(len(s.Points)))
		s.Points = append(s.Points, part...)
	}
	s.NumParts = int32(len(s.Parts))
	s.NumPoints = int32(len(s.Points))
	return s
}

func TestPolygonsFromShape(t *testing.T) {
	// One outer ring with a hole, then a second outer ring.
	s := shapeOf(cwSquare(0, 0, 4), ccwSquare(1, 1, 1), cwSquare(10, 0, 2))
	polys, err := PolygonsFromShape(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	if !algorithm.IsValid(polys[0]) || !algorithm.IsValid(polys[1]) {
		t.Error("converted polygons should satisfy the kernel invariants")
	}
	if len(polys[0].Holes) != 1 {
		t.Errorf("first polygon has %d holes, want 1", len(polys[0].Holes))
	}
	if area := algorithm.PolygonArea(polys[0]); !scalar.EqualWithinAbs(area, 15, 1e-9) {
		t.Errorf("first polygon area %g, want 15", area)
	}
	if area := algorithm.PolygonArea(polys[1]); !scalar.EqualWithinAbs(area, 4, 1e-9) {
		t.Errorf("second polygon area %g, want 4", area)
	}
}

func TestPolygonsFromShapeBackwardsWinding(t *testing.T) {
	// Some producers wind outer rings counter-clockwise; the first
	// ring still becomes a shell.
	polys, err := PolygonsFromShape(shapeOf(ccwSquare(0, 0, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if algorithm.RingOrientation(polys[0].Shell) != algorithm.Counterclockwise {
		t.Error("shell should be counter-clockwise")
	}
}

func TestPolygonsFromShapeEmpty(t *testing.T) {
	if _, err := PolygonsFromShape(&shp.Polygon{}); err == nil {
		t.Error("record with no parts should be an error")
	}
}

func TestShapeFromGeomRoundTrip(t *testing.T) {
	p := &aegis.Polygon{
		Shell: aegis.LinearRing{
			aegis.Coord(0, 0), aegis.Coord(4, 0), aegis.Coord(4, 4),
			aegis.Coord(0, 4), aegis.Coord(0, 0),
		},
		Holes: []aegis.LinearRing{{
			aegis.Coord(1, 1), aegis.Coord(1, 2), aegis.Coord(2, 2),
			aegis.Coord(2, 1), aegis.Coord(1, 1),
		}},
	}
	s, err := ShapeFromGeom(p)
	if err != nil {
		t.Fatal(err)
	}
	if s.NumParts != 2 {
		t.Fatalf("got %d parts, want 2", s.NumParts)
	}
	if s.Box.MinX != 0 || s.Box.MinY != 0 || s.Box.MaxX != 4 || s.Box.MaxY != 4 {
		t.Errorf("box = %+v, want 0,0,4,4", s.Box)
	}

	back, err := PolygonsFromShape(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 {
		t.Fatalf("got %d polygons, want 1", len(back))
	}
	if area := algorithm.PolygonArea(back[0]); !scalar.EqualWithinAbs(area, 15, 1e-9) {
		t.Errorf("round-trip area %g, want 15", area)
	}
}

func TestShapeFromGeomCollection(t *testing.T) {
	coll := &aegis.GeometryCollection{Geoms: []aegis.Geom{
		&aegis.Polygon{Shell: aegis.LinearRing{
			aegis.Coord(0, 0), aegis.Coord(1, 0), aegis.Coord(1, 1),
			aegis.Coord(0, 1), aegis.Coord(0, 0),
		}},
		&aegis.Polygon{Shell: aegis.LinearRing{
			aegis.Coord(5, 0), aegis.Coord(6, 0), aegis.Coord(6, 1),
			aegis.Coord(5, 1), aegis.Coord(5, 0),
		}},
	}}
	s, err := ShapeFromGeom(coll)
	if err != nil {
		t.Fatal(err)
	}
	if s.NumParts != 2 {
		t.Errorf("got %d parts, want 2", s.NumParts)
	}
}

type fakeGeom struct{}

func (fakeGeom) Envelope() *aegis.Envelope              { return aegis.NewEnvelope() }
func (fakeGeom) ReferenceSystem() aegis.ReferenceSystem { return "" }
func (fakeGeom) Metadata() aegis.Metadata               { return nil }

func TestShapeFromGeomUnsupported(t *testing.T) {
	bad := &aegis.GeometryCollection{Geoms: []aegis.Geom{fakeGeom{}}}
	var unsupported aegis.UnsupportedGeometryError
	if _, err := ShapeFromGeom(bad); !errors.As(err, &unsupported) {
		t.Errorf("got %v, want UnsupportedGeometryError", err)
	}
}
