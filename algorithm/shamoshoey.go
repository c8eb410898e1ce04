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
	"math"
	"sort"

	"github.com/google/btree"

	aegis "github.com/krr0land/aegis-origin"
)

// Intersects implements the Shamos-Hoey plane sweep over the segments
// of the given rings. It reports whether any two segments — from two
// different rings or from the same ring — cross or overlap. The only
// permitted contact is the shared endpoint between consecutive
// segments of the same ring. Runs in O(n log n) for n segments.
func Intersects(rings ...aegis.LinearRing) bool {
	sh := newShamosHoey(rings)
	return sh.run()
}

// sweepSegment is a ring segment prepared for the sweep: a is the
// lexicographically smaller (left) endpoint.
type sweepSegment struct {
	a, b        aegis.Coordinate
	ring, index int // position among the ring's non-degenerate segments
}

type sweepEvent struct {
	seg  int
	left bool
}

type shamosHoey struct {
	segs      []sweepSegment
	ringCount []int // non-degenerate segments per ring
	events    []sweepEvent
	status    *btree.BTree
}

func newShamosHoey(rings []aegis.LinearRing) *shamosHoey {
	sh := &shamosHoey{
		status:    btree.New(2),
		ringCount: make([]int, len(rings)),
	}
	for ri, ring := range rings {
		index := 0
		for i := 0; i+1 < len(ring); i++ {
			a, b := ring[i], ring[i+1]
			if a.Equals2D(b) {
				continue
			}
			if lexLess(b, a) {
				a, b = b, a
			}
			sh.segs = append(sh.segs, sweepSegment{a: a, b: b, ring: ri, index: index})
			index++
		}
		sh.ringCount[ri] = index
	}
	sh.events = make([]sweepEvent, 0, 2*len(sh.segs))
	for i := range sh.segs {
		sh.events = append(sh.events, sweepEvent{seg: i, left: true}, sweepEvent{seg: i, left: false})
	}
	sort.Slice(sh.events, func(i, j int) bool {
		pi := sh.eventPoint(sh.events[i])
		pj := sh.eventPoint(sh.events[j])
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		// Insertions before removals at equal x, so touching segments
		// coexist in the status structure.
		if sh.events[i].left != sh.events[j].left {
			return sh.events[i].left
		}
		return pi.Y < pj.Y
	})
	return sh
}

func (sh *shamosHoey) eventPoint(ev sweepEvent) aegis.Coordinate {
	if ev.left {
		return sh.segs[ev.seg].a
	}
	return sh.segs[ev.seg].b
}

func lexLess(a, b aegis.Coordinate) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// statusItem orders active segments by their vertical order at the
// left edge of the pair's x-overlap, tie-broken by slope and then by
// index so the order is strict. The comparison point is fixed for any
// pair of segments, so the order of two items never changes while both
// are in the tree — the btree requires a stable ordering.
type statusItem struct {
	sh  *shamosHoey
	seg int
}

func (it statusItem) Less(than btree.Item) bool {
	o := than.(statusItem)
	if it.seg == o.seg {
		return false
	}
	x := math.Max(it.sh.segs[it.seg].a.X, it.sh.segs[o.seg].a.X)
	yi := it.sh.yAt(it.seg, x)
	yo := it.sh.yAt(o.seg, x)
	if yi != yo {
		return yi < yo
	}
	si := it.sh.slope(it.seg)
	so := it.sh.slope(o.seg)
	if si != so {
		return si < so
	}
	return it.seg < o.seg
}

func (sh *shamosHoey) yAt(seg int, x float64) float64 {
	s := sh.segs[seg]
	if s.a.X == s.b.X {
		return s.a.Y // vertical: a is the lower endpoint
	}
	t := (x - s.a.X) / (s.b.X - s.a.X)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.a.Y + t*(s.b.Y-s.a.Y)
}

func (sh *shamosHoey) slope(seg int) float64 {
	s := sh.segs[seg]
	if s.a.X == s.b.X {
		return 1e308 // vertical sorts above all finite slopes
	}
	return (s.b.Y - s.a.Y) / (s.b.X - s.a.X)
}

func (sh *shamosHoey) run() bool {
	for _, ev := range sh.events {
		it := statusItem{sh: sh, seg: ev.seg}
		if ev.left {
			sh.status.ReplaceOrInsert(it)
			above, okAbove := sh.neighborAbove(it)
			below, okBelow := sh.neighborBelow(it)
			if okAbove && sh.crossing(ev.seg, above) {
				return true
			}
			if okBelow && sh.crossing(ev.seg, below) {
				return true
			}
		} else {
			above, okAbove := sh.neighborAbove(it)
			below, okBelow := sh.neighborBelow(it)
			sh.status.Delete(it)
			if okAbove && okBelow && sh.crossing(above, below) {
				return true
			}
		}
	}
	return false
}

func (sh *shamosHoey) neighborAbove(it statusItem) (int, bool) {
	seg, ok := -1, false
	sh.status.AscendGreaterOrEqual(it, func(i btree.Item) bool {
		o := i.(statusItem)
		if o.seg == it.seg {
			return true
		}
		seg, ok = o.seg, true
		return false
	})
	return seg, ok
}

func (sh *shamosHoey) neighborBelow(it statusItem) (int, bool) {
	seg, ok := -1, false
	sh.status.DescendLessOrEqual(it, func(i btree.Item) bool {
		o := i.(statusItem)
		if o.seg == it.seg {
			return true
		}
		seg, ok = o.seg, true
		return false
	})
	return seg, ok
}

// crossing reports whether segments i and j intersect in a way the
// Shamos-Hoey contract counts: any contact, except the single shared
// endpoint between consecutive segments of the same ring.
func (sh *shamosHoey) crossing(i, j int) bool {
	si, sj := sh.segs[i], sh.segs[j]
	pts := SegmentIntersection(Segment{si.a, si.b}, Segment{sj.a, sj.b})
	if len(pts) == 0 {
		return false
	}
	if si.ring == sj.ring && sh.consecutive(si, sj) {
		if len(pts) > 1 {
			return true // consecutive segments overlapping along a sub-segment
		}
		shared, ok := sharedEndpoint(si, sj)
		return !ok || !pts[0].Equals2D(shared)
	}
	return true
}

// consecutive reports whether two segments of the same ring are
// adjacent, including the wrap-around pair of a closed ring.
func (sh *shamosHoey) consecutive(si, sj sweepSegment) bool {
	n := sh.ringCount[si.ring]
	d := si.index - sj.index
	if d < 0 {
		d = -d
	}
	return d == 1 || d == n-1
}

// sharedEndpoint returns the endpoint two segments have in common, if
// exactly one exists.
func sharedEndpoint(si, sj sweepSegment) (aegis.Coordinate, bool) {
	var shared aegis.Coordinate
	count := 0
	for _, p := range []aegis.Coordinate{si.a, si.b} {
		if p.Equals2D(sj.a) || p.Equals2D(sj.b) {
			shared = p
			count++
		}
	}
	return shared, count == 1
}
