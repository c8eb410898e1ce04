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
	"fmt"

	aegis "github.com/krr0land/aegis-origin"
)

// Op is a boolean set operation between two geometries.
type Op int

const (
	// Union keeps every region covered by at least one operand.
	Union Op = iota
	// Intersection keeps the regions covered by both operands.
	Intersection
	// Difference keeps the regions covered by the first operand only.
	Difference
	// SymmetricDifference keeps the regions covered by exactly one
	// operand.
	SymmetricDifference
)

func (op Op) String() string {
	switch op {
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	case Difference:
		return "difference"
	case SymmetricDifference:
		return "symmetric difference"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// The two operands of one overlay invocation receive fixed provenance
// ids, so face predicates test set membership by id rather than by
// object identity.
const (
	subjectID  = 1
	clippingID = 2
)

// keep decides whether a classified face belongs to the result of op.
func (op Op) keep(f Face) bool {
	inSubject := f.HasID(subjectID)
	inClipping := f.HasID(clippingID)
	switch op {
	case Union:
		return inSubject || inClipping
	case Intersection:
		return inSubject && inClipping
	case Difference:
		return inSubject && !inClipping
	case SymmetricDifference:
		return inSubject != inClipping
	default:
		return false
	}
}

// Overlay performs boolean set operations between two polygonal
// geometries. Results are materialized through the caller-supplied
// factory, so the operator never fixes a concrete result
// representation. An Overlay value is stateless and safe for
// concurrent use; every operation allocates its own graphs.
type Overlay struct {
	factory aegis.Factory
}

// NewOverlay returns an overlay operator materializing results
// through f.
func NewOverlay(f aegis.Factory) *Overlay {
	return &Overlay{factory: f}
}

// Union returns the regions covered by g1, g2 or both. A nil result
// with a nil error means the result is empty.
func (o *Overlay) Union(g1, g2 aegis.Geom) (aegis.Geom, error) {
	return o.construct(g1, g2, Union)
}

// Intersection returns the regions covered by both g1 and g2. When
// the operand envelopes are disjoint it returns nil immediately,
// without building any graph.
func (o *Overlay) Intersection(g1, g2 aegis.Geom) (aegis.Geom, error) {
	return o.construct(g1, g2, Intersection)
}

// Difference returns the regions covered by g1 but not g2.
func (o *Overlay) Difference(g1, g2 aegis.Geom) (aegis.Geom, error) {
	return o.construct(g1, g2, Difference)
}

// SymmetricDifference returns the regions covered by exactly one of
// g1 and g2.
func (o *Overlay) SymmetricDifference(g1, g2 aegis.Geom) (aegis.Geom, error) {
	return o.construct(g1, g2, SymmetricDifference)
}

func (o *Overlay) construct(g1, g2 aegis.Geom, op Op) (aegis.Geom, error) {
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("aegis: %s: %w", op, aegis.ErrNilGeometry)
	}
	if op == Intersection && g1.Envelope().Disjoint(g2.Envelope()) {
		return nil, nil
	}

	ga := NewGraph()
	if err := ga.MergeGeometry(g1, subjectID); err != nil {
		return nil, wrapOpError(op, err)
	}
	gb := NewGraph()
	if err := gb.MergeGeometry(g2, clippingID); err != nil {
		return nil, wrapOpError(op, err)
	}
	merged, err := MergeGraph(ga, gb)
	if err != nil {
		return nil, wrapOpError(op, err)
	}
	faces, err := merged.Faces()
	if err != nil {
		return nil, wrapOpError(op, err)
	}

	var results []aegis.Geom
	for _, f := range faces {
		if !op.keep(f) {
			continue
		}
		poly, err := o.materialize(f)
		if err != nil {
			return nil, fmt.Errorf("aegis: %s: %w", op, err)
		}
		results = append(results, poly)
	}
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return o.factory.NewGeometryCollection(results)
	}
}

// materialize converts a face boundary into a polygon through the
// factory: the outer cycle becomes the shell and the inner cycles the
// holes.
func (o *Overlay) materialize(f Face) (aegis.Geom, error) {
	shell, err := o.factory.NewLinearRing(f.Outer)
	if err != nil {
		return nil, err
	}
	var holes []aegis.LinearRing
	for _, inner := range f.Inner {
		hole, err := o.factory.NewLinearRing(inner)
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole)
	}
	return o.factory.NewPolygon(shell, holes)
}

// wrapOpError normalizes the error surface of the four public
// operations: unsupported-operation failures raised while building or
// merging graphs are re-raised under the operation's name, preserving
// the original condition for errors.As; everything else passes
// through unchanged.
func wrapOpError(op Op, err error) error {
	var unsupported aegis.UnsupportedGeometryError
	if errors.As(err, &unsupported) {
		return fmt.Errorf("aegis: %s: %w", op, unsupported)
	}
	if errors.Is(err, aegis.ErrNilGeometry) {
		return fmt.Errorf("aegis: %s: %w", op, aegis.ErrNilGeometry)
	}
	return err
}
