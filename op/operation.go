/*
Copyright © 2016 the CTS authors.
This file is part of CTS.

CTS is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

CTS is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with CTS.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package op defines the coordinate operation contract and the basic
// operations that do not depend on a particular datum pair: identity,
// operation sequences, unit conversions, axis and dimension changes,
// longitude rotations and the conversion between geographic and
// geocentric coordinates.
//
// Operations work on coordinate tuples stored as []float64. Angular
// ordinates are in radians and linear ordinates in meters unless an
// operation says otherwise. Transform may modify the input slice in
// place; callers that need the input afterwards must pass a copy.
package op

import cts "github.com/irstv/cts"

// DefaultPrecision is the precision assumed for operations that do not
// declare one, in meters.
const DefaultPrecision = 1e-9

// Operation transforms coordinate tuples. Implementations are
// immutable after construction and safe for concurrent use.
type Operation interface {
	// ID returns the operation identifier.
	ID() cts.Identifier

	// Transform converts coord and returns the result, which may
	// share storage with coord.
	Transform(coord []float64) ([]float64, error)

	// Inverse returns the reciprocal operation, or a
	// *NonInvertibleError if there is none. Calling Inverse twice
	// returns the original operation.
	Inverse() (Operation, error)

	// Precision returns the accuracy of the operation in meters.
	Precision() float64

	// IsIdentity reports whether the operation leaves every
	// coordinate unchanged.
	IsIdentity() bool

	// Equal reports whether the other operation has the same effect.
	Equal(other Operation) bool

	String() string
}

// Base carries the identifier and precision common to every
// operation. Embed it and implement the remaining methods.
type Base struct {
	id        cts.Identifier
	precision float64
}

// NewBase returns a Base with the given identifier and precision in
// meters; a non-positive precision means DefaultPrecision.
func NewBase(id cts.Identifier, precision float64) Base {
	return Base{id: id, precision: precision}
}

// ID returns the operation identifier.
func (b Base) ID() cts.Identifier { return b.id }

// Precision returns the accuracy of the operation in meters.
func (b Base) Precision() float64 {
	if b.precision <= 0 {
		return DefaultPrecision
	}
	return b.precision
}
