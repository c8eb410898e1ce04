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

package topology

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	aegis "github.com/krr0land/aegis-origin"
)

// square returns a closed counter-clockwise square ring with its
// lower-left corner at (x0, y0).
func square(x0, y0, size float64) aegis.LinearRing {
	return aegis.LinearRing{
		aegis.Coord(x0, y0),
		aegis.Coord(x0+size, y0),
		aegis.Coord(x0+size, y0+size),
		aegis.Coord(x0, y0+size),
		aegis.Coord(x0, y0),
	}
}

// faceArea is the area enclosed by a face: its outer cycle minus its
// inner cycles (inner cycles are clockwise, so their loop areas are
// already negative).
func faceArea(f Face) float64 {
	a := loopArea(f.Outer)
	for _, inner := range f.Inner {
		a += loopArea(inner)
	}
	return a
}

// mergedFaces builds two single-polygon graphs, merges them and
// returns the bounded faces.
func mergedFaces(t *testing.T, pa, pb *aegis.Polygon) []Face {
	t.Helper()
	ga, gb := NewGraph(), NewGraph()
	if err := ga.MergeGeometry(pa, subjectID); err != nil {
		t.Fatalf("merging subject: %v", err)
	}
	if err := gb.MergeGeometry(pb, clippingID); err != nil {
		t.Fatalf("merging clipping: %v", err)
	}
	m, err := MergeGraph(ga, gb)
	if err != nil {
		t.Fatalf("MergeGraph: %v", err)
	}
	if err := m.checkInvariants(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
	faces, err := m.Faces()
	if err != nil {
		t.Fatalf("Faces: %v", err)
	}
	return faces
}

func TestGraphPhases(t *testing.T) {
	g := NewGraph()
	if _, err := g.Faces(); !errors.Is(err, errPhase) {
		t.Errorf("Faces on empty graph: got %v, want phase error", err)
	}

	g = NewGraph()
	if err := g.MergeGeometry(aegis.NewPolygon(square(0, 0, 1)), subjectID); err != nil {
		t.Fatalf("MergeGeometry: %v", err)
	}
	if _, err := g.Faces(); err != nil {
		t.Fatalf("Faces: %v", err)
	}
	if err := g.MergeGeometry(aegis.NewPolygon(square(0, 0, 1)), subjectID); !errors.Is(err, errPhase) {
		t.Errorf("MergeGeometry on queried graph: got %v, want phase error", err)
	}
	if _, err := g.Faces(); !errors.Is(err, errPhase) {
		t.Errorf("second Faces call: got %v, want phase error", err)
	}

	empty := NewGraph()
	if _, err := MergeGraph(empty, empty); !errors.Is(err, errPhase) {
		t.Errorf("MergeGraph on empty graphs: got %v, want phase error", err)
	}

	a, b := NewGraph(), NewGraph()
	a.MergeGeometry(aegis.NewPolygon(square(0, 0, 1)), subjectID)
	b.MergeGeometry(aegis.NewPolygon(square(5, 5, 1)), clippingID)
	if _, err := MergeGraph(a, b); err != nil {
		t.Fatalf("MergeGraph: %v", err)
	}
	// Both inputs are consumed by the merge.
	if _, err := MergeGraph(a, b); !errors.Is(err, errPhase) {
		t.Errorf("MergeGraph on consumed graphs: got %v, want phase error", err)
	}
}

// unsupportedGeom satisfies Geom but is not a surface, so the
// subdivision rejects it.
type unsupportedGeom struct{}

func (unsupportedGeom) Envelope() *aegis.Envelope              { return aegis.NewEnvelope() }
func (unsupportedGeom) ReferenceSystem() aegis.ReferenceSystem { return "" }
func (unsupportedGeom) Metadata() aegis.Metadata               { return nil }

func TestMergeGeometryErrors(t *testing.T) {
	g := NewGraph()
	if err := g.MergeGeometry(nil, subjectID); !errors.Is(err, aegis.ErrNilGeometry) {
		t.Errorf("nil geometry: got %v, want ErrNilGeometry", err)
	}

	var unsupported aegis.UnsupportedGeometryError
	if err := g.MergeGeometry(unsupportedGeom{}, subjectID); !errors.As(err, &unsupported) {
		t.Errorf("unsupported geometry: got %v, want UnsupportedGeometryError", err)
	}

	coll := &aegis.GeometryCollection{Geoms: []aegis.Geom{
		aegis.NewPolygon(square(0, 0, 1)),
		unsupportedGeom{},
	}}
	if err := g.MergeGeometry(coll, subjectID); !errors.As(err, &unsupported) {
		t.Errorf("collection with unsupported item: got %v, want UnsupportedGeometryError", err)
	}
}

func TestMergeOverlappingSquares(t *testing.T) {
	a := aegis.NewPolygon(square(0, 0, 2))
	b := aegis.NewPolygon(square(1, 1, 2))
	faces := mergedFaces(t, a, b)
	if len(faces) != 3 {
		t.Fatalf("got %d faces, want 3", len(faces))
	}

	// Face areas keyed by the provenance ids covering them.
	got := make(map[string]float64)
	for _, f := range faces {
		key := ""
		for _, id := range f.IDs {
			key += string(rune('0' + id))
		}
		got[key] += faceArea(f)
	}
	want := map[string]float64{
		"1":  3, // subject only
		"12": 1, // overlap
		"2":  3, // clipping only
	}
	for key, area := range want {
		if !scalar.EqualWithinAbs(got[key], area, 1e-9) {
			t.Errorf("faces covered by %s: area %g, want %g", key, got[key], area)
		}
	}
}

func TestMergeSharedEdge(t *testing.T) {
	// Adjacent squares sharing the edge x=2: the shared edge must not
	// be duplicated, and each square keeps its own face.
	a := aegis.NewPolygon(square(0, 0, 2))
	b := aegis.NewPolygon(square(2, 0, 2))
	faces := mergedFaces(t, a, b)
	if len(faces) != 2 {
		t.Fatalf("got %d faces, want 2", len(faces))
	}
	var ids [][]int
	for _, f := range faces {
		if !scalar.EqualWithinAbs(faceArea(f), 4, 1e-9) {
			t.Errorf("face area %g, want 4", faceArea(f))
		}
		ids = append(ids, f.IDs)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i][0] < ids[j][0] })
	if !reflect.DeepEqual(ids, [][]int{{1}, {2}}) {
		t.Errorf("face id sets = %v, want [[1] [2]]", ids)
	}
}

func TestMergeNestedSquares(t *testing.T) {
	// The clipping square lies strictly inside the subject square, so
	// the subject-only face must carry it as a hole boundary.
	a := aegis.NewPolygon(square(0, 0, 4))
	b := aegis.NewPolygon(square(1, 1, 1))
	faces := mergedFaces(t, a, b)
	if len(faces) != 2 {
		t.Fatalf("got %d faces, want 2", len(faces))
	}
	for _, f := range faces {
		switch {
		case reflect.DeepEqual(f.IDs, []int{1}):
			if len(f.Inner) != 1 {
				t.Errorf("outer face has %d inner cycles, want 1", len(f.Inner))
			}
			if !scalar.EqualWithinAbs(faceArea(f), 15, 1e-9) {
				t.Errorf("outer face area %g, want 15", faceArea(f))
			}
		case reflect.DeepEqual(f.IDs, []int{1, 2}):
			if !scalar.EqualWithinAbs(faceArea(f), 1, 1e-9) {
				t.Errorf("inner face area %g, want 1", faceArea(f))
			}
		default:
			t.Errorf("unexpected face id set %v", f.IDs)
		}
	}
}

func TestMergeIdenticalSquares(t *testing.T) {
	// Merging a square with itself must unify every vertex and edge
	// into a single face covered by both operands.
	a := aegis.NewPolygon(square(0, 0, 2))
	b := aegis.NewPolygon(square(0, 0, 2))
	faces := mergedFaces(t, a, b)
	if len(faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(faces))
	}
	if !reflect.DeepEqual(faces[0].IDs, []int{1, 2}) {
		t.Errorf("face ids = %v, want [1 2]", faces[0].IDs)
	}
	if !scalar.EqualWithinAbs(faceArea(faces[0]), 4, 1e-9) {
		t.Errorf("face area %g, want 4", faceArea(faces[0]))
	}
}

func TestMergePolygonWithHole(t *testing.T) {
	// A holed subject against a square overlapping the hole.
	subject := aegis.NewPolygon(square(0, 0, 4), square(1, 1, 2).Reverse())
	clipping := aegis.NewPolygon(square(2, 2, 3))
	faces := mergedFaces(t, subject, clipping)

	total := make(map[string]float64)
	for _, f := range faces {
		key := ""
		for _, id := range f.IDs {
			key += string(rune('0' + id))
		}
		total[key] += faceArea(f)
	}
	// Subject covers 12 (16 minus the 2x2 hole); the clipping square
	// covers 9, of which 1 overlaps the hole and 3 overlaps the
	// subject ring.
	want := map[string]float64{"1": 9, "12": 3, "2": 6}
	for key, area := range want {
		if !scalar.EqualWithinAbs(total[key], area, 1e-9) {
			t.Errorf("faces covered by %s: area %g, want %g", key, total[key], area)
		}
	}
}
