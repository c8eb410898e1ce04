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
Package topology implements a halfedge-based planar subdivision (a
doubly-connected edge list) and the boolean overlay operator built on
top of it. Vertices, halfedges and faces live in arenas addressed by
integer indices instead of mutually referencing pointers, so
traversal is bounds-checked and lifetimes are unambiguous.

A Graph is transient: it is created empty, populated by merging one
or more source geometries, merged with a second graph, queried once
for its faces and then discarded. The merge step destructively
rewrites the boundary structure, so no operation is defined on a
consumed graph.
*/
package topology

import (
	"errors"
	"fmt"
	"math"
	"sort"

	aegis "github.com/krr0land/aegis-origin"
	"github.com/krr0land/aegis-origin/algorithm"
)

// tolerance is the snapping tolerance for intersection vertices.
const tolerance = 1e-10

// nilIndex marks an unset arena index.
const nilIndex = -1

// errPhase is returned when a graph operation is invoked outside the
// Empty → Populated → Merged → Queried lifecycle order.
var errPhase = errors.New("topology: operation not defined for the graph's current phase")

type phase int

const (
	phaseEmpty phase = iota
	phasePopulated
	phaseMerged
	phaseQueried
)

// idSet is a set of provenance identifiers.
type idSet map[int]struct{}

func newIDSet(ids ...int) idSet {
	s := make(idSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s idSet) add(id int) { s[id] = struct{}{} }
func (s idSet) has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s idSet) addAll(o idSet) {
	for id := range o {
		s[id] = struct{}{}
	}
}

func (s idSet) sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// vertex is a subdivision vertex: its coordinate, one outgoing
// halfedge and the set of source geometries touching it.
type vertex struct {
	coord aegis.Coordinate
	edge  int
	ids   idSet
}

// halfedge is one direction of an edge. The twin runs the same edge
// the opposite way; next continues the boundary cycle of the owning
// face. The provenance set is shared with the twin.
type halfedge struct {
	origin int
	twin   int
	next   int
	face   int
	ids    idSet
}

// face is a region of the subdivision: its closed outer boundary
// cycle (nil for the unbounded face), any inner (hole) boundary
// cycles, and the set of source geometries covering the region.
type face struct {
	edge  int
	outer []aegis.Coordinate
	inner [][]aegis.Coordinate
	ids   idSet
}

// sourceRegion remembers a merged source geometry so faces of the
// combined subdivision can be classified by containment against it.
type sourceRegion struct {
	id   int
	poly *aegis.Polygon
}

// Graph is a mutable planar subdivision. It is not safe for
// concurrent use; each overlay operation must own its own graphs.
type Graph struct {
	phase     phase
	finalized bool

	vertices  []vertex
	halfedges []halfedge
	faces     []face

	vertexAt    map[[2]float64]int
	edgeBetween map[[2]int]int
	sources     []sourceRegion
}

// NewGraph returns an empty planar subdivision.
func NewGraph() *Graph {
	return &Graph{
		vertexAt:    make(map[[2]float64]int),
		edgeBetween: make(map[[2]int]int),
	}
}

// addVertex returns the index of the vertex at c, creating it if
// necessary, and tags it with ids. Coincident coordinates unify to a
// single vertex.
func (g *Graph) addVertex(c aegis.Coordinate, ids idSet) int {
	key := [2]float64{c.X, c.Y}
	if vi, ok := g.vertexAt[key]; ok {
		g.vertices[vi].ids.addAll(ids)
		return vi
	}
	vi := len(g.vertices)
	tags := newIDSet()
	tags.addAll(ids)
	g.vertices = append(g.vertices, vertex{coord: c, edge: nilIndex, ids: tags})
	g.vertexAt[key] = vi
	return vi
}

// addEdge ensures a halfedge pair exists between v0 and v1 and tags
// it with ids. Inserting an edge that is already present only merges
// the provenance sets.
func (g *Graph) addEdge(v0, v1 int, ids idSet) {
	if v0 == v1 {
		return
	}
	if he, ok := g.edgeBetween[[2]int{v0, v1}]; ok {
		g.halfedges[he].ids.addAll(ids)
		return
	}
	tags := newIDSet()
	tags.addAll(ids)
	h := len(g.halfedges)
	t := h + 1
	g.halfedges = append(g.halfedges,
		halfedge{origin: v0, twin: t, next: nilIndex, face: nilIndex, ids: tags},
		halfedge{origin: v1, twin: h, next: nilIndex, face: nilIndex, ids: tags},
	)
	g.edgeBetween[[2]int{v0, v1}] = h
	g.edgeBetween[[2]int{v1, v0}] = t
	if g.vertices[v0].edge == nilIndex {
		g.vertices[v0].edge = h
	}
	if g.vertices[v1].edge == nilIndex {
		g.vertices[v1].edge = t
	}
}

func (g *Graph) dest(he int) int {
	return g.halfedges[g.halfedges[he].twin].origin
}

// relink orders the outgoing halfedges of every vertex by angle and
// rebuilds the next pointers so each boundary forms a closed cycle:
// the successor of a halfedge arriving at a vertex is the outgoing
// halfedge one step clockwise from its twin.
func (g *Graph) relink() {
	out := make([][]int, len(g.vertices))
	for h := range g.halfedges {
		v := g.halfedges[h].origin
		out[v] = append(out[v], h)
	}
	for v, list := range out {
		if len(list) == 0 {
			continue
		}
		origin := g.vertices[v].coord
		sort.Slice(list, func(i, j int) bool {
			return g.edgeAngle(list[i], origin) < g.edgeAngle(list[j], origin)
		})
		for k, h := range list {
			prev := list[(k-1+len(list))%len(list)]
			g.halfedges[g.halfedges[h].twin].next = prev
		}
		g.vertices[v].edge = list[0]
	}
}

func (g *Graph) edgeAngle(he int, origin aegis.Coordinate) float64 {
	d := g.vertices[g.dest(he)].coord
	return math.Atan2(d.Y-origin.Y, d.X-origin.X)
}

// boundaryCycle holds one closed next-pointer cycle and its signed
// area: positive cycles bound a face region on their left, negative
// (or zero) cycles are inner or unbounded-face boundaries.
type boundaryCycle struct {
	first     int
	halfedges []int
	coords    []aegis.Coordinate // closed: first coordinate repeated at the end
	area      float64
}

// traceCycles walks the next pointers, partitioning all halfedges
// into closed boundary cycles.
func (g *Graph) traceCycles() ([]boundaryCycle, error) {
	assigned := make([]bool, len(g.halfedges))
	var cycles []boundaryCycle
	for h := range g.halfedges {
		if assigned[h] {
			continue
		}
		c := boundaryCycle{first: h}
		cur := h
		for steps := 0; ; steps++ {
			if steps > len(g.halfedges) {
				return nil, fmt.Errorf("topology: boundary cycle through halfedge %d does not close", h)
			}
			assigned[cur] = true
			c.halfedges = append(c.halfedges, cur)
			c.coords = append(c.coords, g.vertices[g.halfedges[cur].origin].coord)
			cur = g.halfedges[cur].next
			if cur == nilIndex {
				return nil, fmt.Errorf("topology: halfedge %d has no successor", h)
			}
			if cur == h {
				break
			}
		}
		c.coords = append(c.coords, c.coords[0])
		c.area = loopArea(c.coords)
		cycles = append(cycles, c)
	}
	return cycles, nil
}

func loopArea(coords []aegis.Coordinate) float64 {
	a := 0.0
	for i := 0; i+1 < len(coords); i++ {
		a += (coords[i].X + coords[i+1].X) * (coords[i+1].Y - coords[i].Y)
	}
	return a / 2
}

// buildFaces converts traced cycles into faces. Counter-clockwise
// cycles each bound one face; clockwise and degenerate cycles become
// inner boundaries of the smallest counter-clockwise cycle containing
// them, or of the unbounded face when none does.
func (g *Graph) buildFaces(cycles []boundaryCycle) {
	g.faces = []face{{edge: nilIndex, ids: newIDSet()}} // the unbounded face

	faceOf := make([]int, len(cycles))
	for ci := range cycles {
		faceOf[ci] = nilIndex
	}
	for ci, c := range cycles {
		if c.area <= 0 {
			continue
		}
		fi := len(g.faces)
		g.faces = append(g.faces, face{edge: c.first, outer: c.coords})
		faceOf[ci] = fi
		for _, he := range c.halfedges {
			g.halfedges[he].face = fi
		}
	}
	for ci, c := range cycles {
		if c.area > 0 {
			continue
		}
		target := 0
		bestArea := math.Inf(1)
		for cj, outer := range cycles {
			if cj == ci || outer.area <= 0 || outer.area >= bestArea {
				continue
			}
			if cycleContains(outer, c) {
				target = faceOf[cj]
				bestArea = outer.area
			}
		}
		for _, he := range c.halfedges {
			g.halfedges[he].face = target
		}
		if c.area < 0 {
			g.faces[target].inner = append(g.faces[target].inner, c.coords)
		}
	}
}

// cycleContains reports whether the region bounded by outer strictly
// contains inner. The cycles may share boundary vertices or whole
// edges, so probe points on outer's boundary are inconclusive and the
// next probe decides; a cycle tracing the same edges as outer (its
// twin) is never contained.
func cycleContains(outer, inner boundaryCycle) bool {
	ring := aegis.LinearRing(outer.coords)
	for _, p := range inner.coords[:len(inner.coords)-1] {
		wn := algorithm.NewWindingNumber(ring, p)
		if wn.OnBoundary() {
			continue
		}
		return wn.Result() != 0
	}
	for i := 0; i+1 < len(inner.coords); i++ {
		a, b := inner.coords[i], inner.coords[i+1]
		mid := aegis.Coordinate{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: a.Z}
		wn := algorithm.NewWindingNumber(ring, mid)
		if wn.OnBoundary() {
			continue
		}
		return wn.Result() != 0
	}
	return false
}

// classifyFaces computes each bounded face's provenance set: the ids
// of all source regions containing a representative interior point of
// the face.
func (g *Graph) classifyFaces() {
	for fi := 1; fi < len(g.faces); fi++ {
		f := &g.faces[fi]
		f.ids = newIDSet()
		p, ok := g.faceInteriorPoint(f)
		if !ok {
			continue
		}
		for _, src := range g.sources {
			if algorithm.InInterior(src.poly, p) {
				f.ids.add(src.id)
			}
		}
	}
}

// faceInteriorPoint returns a point strictly inside the face's
// region: offset inward from the midpoint of the longest outer edge,
// halving the offset until the point verifies inside the outer cycle
// and outside every inner cycle.
func (g *Graph) faceInteriorPoint(f *face) (aegis.Coordinate, bool) {
	best, bestLen := 0, 0.0
	for i := 0; i+1 < len(f.outer); i++ {
		l := math.Hypot(f.outer[i+1].X-f.outer[i].X, f.outer[i+1].Y-f.outer[i].Y)
		if l > bestLen {
			best, bestLen = i, l
		}
	}
	if bestLen == 0 {
		return aegis.Coordinate{}, false
	}
	a, b := f.outer[best], f.outer[best+1]
	midX, midY := (a.X+b.X)/2, (a.Y+b.Y)/2
	// Left normal: the face interior lies left of its CCW outer cycle.
	nx, ny := -(b.Y-a.Y)/bestLen, (b.X-a.X)/bestLen

	offset := bestLen / 2
	for i := 0; i < 64; i++ {
		p := aegis.Coordinate{X: midX + nx*offset, Y: midY + ny*offset, Z: a.Z}
		if g.insideFace(f, p) {
			return p, true
		}
		offset /= 2
	}
	return aegis.Coordinate{}, false
}

func (g *Graph) insideFace(f *face, p aegis.Coordinate) bool {
	outer := algorithm.NewWindingNumber(aegis.LinearRing(f.outer), p)
	if outer.OnBoundary() || outer.Result() == 0 {
		return false
	}
	for _, hole := range f.inner {
		wn := algorithm.NewWindingNumber(aegis.LinearRing(hole), p)
		if wn.OnBoundary() || wn.Result() != 0 {
			return false
		}
	}
	return true
}

// finalize re-links the boundary structure and recomputes faces.
func (g *Graph) finalize() error {
	if g.finalized {
		return nil
	}
	g.relink()
	cycles, err := g.traceCycles()
	if err != nil {
		return err
	}
	g.buildFaces(cycles)
	g.classifyFaces()
	g.finalized = true
	return nil
}

// Face is a read-only view of one bounded face of the subdivision.
type Face struct {
	// Outer is the closed counter-clockwise boundary cycle.
	Outer []aegis.Coordinate
	// Inner holds the closed clockwise hole cycles, if any.
	Inner [][]aegis.Coordinate
	// IDs is the sorted set of source geometry ids covering the face.
	IDs []int

	ids idSet
}

// HasID reports whether the face region is covered by the source
// geometry with the given id.
func (f Face) HasID(id int) bool { return f.ids.has(id) }

// Faces extracts the bounded faces of the subdivision. The graph must
// be populated or merged; afterwards it is consumed and supports no
// further operations.
func (g *Graph) Faces() ([]Face, error) {
	if g.phase != phasePopulated && g.phase != phaseMerged {
		return nil, errPhase
	}
	if err := g.finalize(); err != nil {
		return nil, err
	}
	g.phase = phaseQueried
	out := make([]Face, 0, len(g.faces)-1)
	for fi := 1; fi < len(g.faces); fi++ {
		f := g.faces[fi]
		out = append(out, Face{
			Outer: f.outer,
			Inner: f.inner,
			IDs:   f.ids.sorted(),
			ids:   f.ids,
		})
	}
	return out, nil
}

// checkInvariants verifies the structural halfedge invariants: twin
// symmetry and closed next cycles. It is a test hook.
func (g *Graph) checkInvariants() error {
	for h, he := range g.halfedges {
		if he.twin < 0 || he.twin >= len(g.halfedges) {
			return fmt.Errorf("topology: halfedge %d has twin %d out of range", h, he.twin)
		}
		if g.halfedges[he.twin].twin != h {
			return fmt.Errorf("topology: halfedge %d twin link is not symmetric", h)
		}
	}
	if !g.finalized {
		return nil
	}
	for h := range g.halfedges {
		cur := h
		for steps := 0; ; steps++ {
			if steps > len(g.halfedges) {
				return fmt.Errorf("topology: next cycle through halfedge %d does not close", h)
			}
			cur = g.halfedges[cur].next
			if cur == nilIndex {
				return fmt.Errorf("topology: halfedge %d has no successor", h)
			}
			if cur == h {
				break
			}
		}
	}
	return nil
}
