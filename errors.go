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

import (
	"errors"
	"reflect"
)

// ErrNilGeometry is returned when an operation receives a nil
// geometry operand. It signals a bad call, as opposed to
// UnsupportedGeometryError which signals a call the engine cannot
// yet handle.
var ErrNilGeometry = errors.New("aegis: geometry is nil")

// UnsupportedGeometryError is returned when a geometry type cannot be
// processed by the operation it was passed to, for example a
// non-polygonal operand to a set operation that requires enclosed
// area.
type UnsupportedGeometryError struct {
	G Geom
}

// NewUnsupportedGeometryError returns an UnsupportedGeometryError
// wrapping g.
func NewUnsupportedGeometryError(g Geom) UnsupportedGeometryError {
	return UnsupportedGeometryError{G: g}
}

func (e UnsupportedGeometryError) Error() string {
	if e.G == nil {
		return "unsupported geometry: nil"
	}
	return "unsupported geometry type: " + reflect.TypeOf(e.G).String()
}
