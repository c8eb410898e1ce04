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
	"math"
	"sort"

	aegis "github.com/krr0land/aegis-origin"
	"github.com/krr0land/aegis-origin/algorithm"
)

// MergeGeometry inserts the boundary of g (shell and holes) into the
// subdivision, tagging every vertex and edge it touches with the
// provenance id. Polygons and geometry collections of polygons are
// supported; any other geometry type yields an
// UnsupportedGeometryError.
func (g *Graph) MergeGeometry(geometry aegis.Geom, id int) error {
	if g.phase != phaseEmpty && g.phase != phasePopulated {
		return errPhase
	}
	if geometry == nil {
		return aegis.ErrNilGeometry
	}
	switch gg := geometry.(type) {
	case *aegis.Polygon:
		g.mergePolygon(gg, id)
		return nil
	case *aegis.GeometryCollection:
		for _, item := range gg.Geoms {
			if err := g.MergeGeometry(item, id); err != nil {
				return err
			}
		}
		g.phase = phasePopulated
		return nil
	default:
		return aegis.NewUnsupportedGeometryError(geometry)
	}
}

func (g *Graph) mergePolygon(p *aegis.Polygon, id int) {
	g.phase = phasePopulated
	if p.IsEmpty() {
		return // the empty polygon covers no region
	}
	for _, ring := range p.Rings() {
		g.insertRing(ring, id)
	}
	g.sources = append(g.sources, sourceRegion{id: id, poly: p})
}

func (g *Graph) insertRing(ring aegis.LinearRing, id int) {
	ids := newIDSet(id)
	n := len(ring)
	if n < 2 {
		return
	}
	for i := 0; i+1 < n; i++ {
		a, b := ring[i], ring[i+1]
		if a.Equals2D(b) {
			continue
		}
		v0 := g.addVertex(a, ids)
		v1 := g.addVertex(b, ids)
		g.addEdge(v0, v1, ids)
	}
	if !ring.Closed() {
		v0 := g.addVertex(ring[n-1], ids)
		v1 := g.addVertex(ring[0], ids)
		g.addEdge(v0, v1, ids)
	}
}

// boundarySeg is one undirected edge of a populated graph, prepared
// for crossing detection: cut points accumulate where edges of the
// other operand intersect it.
type boundarySeg struct {
	a, b  aegis.Coordinate
	ids   idSet
	cuts  []aegis.Coordinate
	fromA bool
}

// boundarySegments returns one segment per halfedge pair.
func (g *Graph) boundarySegments(fromA bool) []boundarySeg {
	var segs []boundarySeg
	for h, he := range g.halfedges {
		if h > he.twin {
			continue
		}
		segs = append(segs, boundarySeg{
			a:     g.vertices[he.origin].coord,
			b:     g.vertices[g.dest(h)].coord,
			ids:   he.ids,
			fromA: fromA,
		})
	}
	return segs
}

// MergeGraph combines two populated subdivisions into a new one:
// coincident vertices unify, crossing edges of the two operands are
// split at their intersection points, the boundary structure is
// re-linked into closed face cycles and every face is classified by
// the source regions covering it. Both inputs are consumed.
func MergeGraph(a, b *Graph) (*Graph, error) {
	if a == nil || b == nil {
		return nil, errPhase
	}
	if a.phase != phasePopulated || b.phase != phasePopulated {
		return nil, errPhase
	}

	segs := append(a.boundarySegments(true), b.boundarySegments(false)...)
	splitCrossings(segs)

	m := NewGraph()
	for i := range segs {
		m.insertChain(&segs[i])
	}
	m.sources = append(append([]sourceRegion{}, a.sources...), b.sources...)
	m.phase = phaseMerged
	a.phase, b.phase = phaseQueried, phaseQueried // consumed

	if err := m.finalize(); err != nil {
		return nil, err
	}
	return m, nil
}

// splitCrossings finds every intersection between a segment of one
// operand and a segment of the other, using an x-interval sweep to
// prune the pairs tested, and records the intersection points as cut
// points on both segments. Points within tolerance of an endpoint
// snap onto it so the later vertex unification is exact.
func splitCrossings(segs []boundarySeg) {
	order := make([]int, len(segs))
	for i := range order {
		order[i] = i
	}
	minX := func(s *boundarySeg) float64 { return math.Min(s.a.X, s.b.X) }
	maxX := func(s *boundarySeg) float64 { return math.Max(s.a.X, s.b.X) }
	sort.Slice(order, func(i, j int) bool {
		return minX(&segs[order[i]]) < minX(&segs[order[j]])
	})

	var active []int
	for _, si := range order {
		s := &segs[si]
		x := minX(s)
		kept := active[:0]
		for _, ai := range active {
			if maxX(&segs[ai]) >= x-tolerance {
				kept = append(kept, ai)
			}
		}
		active = kept
		for _, ai := range active {
			o := &segs[ai]
			if o.fromA == s.fromA {
				continue
			}
			if math.Min(s.a.Y, s.b.Y) > math.Max(o.a.Y, o.b.Y)+tolerance ||
				math.Max(s.a.Y, s.b.Y) < math.Min(o.a.Y, o.b.Y)-tolerance {
				continue
			}
			pts := algorithm.SegmentIntersection(
				algorithm.Segment{Start: s.a, End: s.b},
				algorithm.Segment{Start: o.a, End: o.b},
			)
			for _, p := range pts {
				p = snapCoord(p, s.a, s.b, o.a, o.b)
				s.addCut(p)
				o.addCut(p)
			}
		}
		active = append(active, si)
	}
}

func snapCoord(p aegis.Coordinate, candidates ...aegis.Coordinate) aegis.Coordinate {
	for _, c := range candidates {
		if math.Hypot(p.X-c.X, p.Y-c.Y) <= tolerance {
			return c
		}
	}
	return p
}

func (s *boundarySeg) addCut(p aegis.Coordinate) {
	if p.Equals2D(s.a) || p.Equals2D(s.b) {
		return
	}
	for _, c := range s.cuts {
		if c.Equals2D(p) {
			return
		}
	}
	s.cuts = append(s.cuts, p)
}

// param returns the parameter of p along the segment, measured on the
// dominant axis.
func (s *boundarySeg) param(p aegis.Coordinate) float64 {
	dx, dy := s.b.X-s.a.X, s.b.Y-s.a.Y
	if math.Abs(dx) >= math.Abs(dy) {
		return (p.X - s.a.X) / dx
	}
	return (p.Y - s.a.Y) / dy
}

// insertChain inserts the segment, split at its cut points, as a
// chain of edges.
func (g *Graph) insertChain(s *boundarySeg) {
	sort.Slice(s.cuts, func(i, j int) bool {
		return s.param(s.cuts[i]) < s.param(s.cuts[j])
	})
	chain := make([]aegis.Coordinate, 0, len(s.cuts)+2)
	chain = append(chain, s.a)
	chain = append(chain, s.cuts...)
	chain = append(chain, s.b)
	for i := 0; i+1 < len(chain); i++ {
		if chain[i].Equals2D(chain[i+1]) {
			continue
		}
		v0 := g.addVertex(chain[i], s.ids)
		v1 := g.addVertex(chain[i+1], s.ids)
		g.addEdge(v0, v1, s.ids)
	}
}
