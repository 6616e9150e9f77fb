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

// Package transform holds the operations that change the geodetic
// datum of a coordinate: geocentric translations, seven-parameter
// similarity transformations and grid based shifts.
package transform

import (
	"fmt"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/op"
)

// GeocentricTransformation is a datum transformation working on
// geocentric cartesian coordinates in meters.
type GeocentricTransformation interface {
	op.Operation
}

// Translation shifts geocentric coordinates by a constant vector, the
// three-parameter datum transformation.
type Translation struct {
	op.Base
	tx, ty, tz float64
	inv        *Translation
}

// NewTranslation returns the geocentric translation by (tx, ty, tz)
// meters with the default precision.
func NewTranslation(tx, ty, tz float64) *Translation {
	return NewTranslationWithPrecision(tx, ty, tz, op.DefaultPrecision)
}

// NewTranslationWithPrecision returns the geocentric translation by
// (tx, ty, tz) meters with the given accuracy in meters. The
// translation and its opposite are built as a pair, so inverting twice
// returns the original instance.
func NewTranslationWithPrecision(tx, ty, tz, precision float64) *Translation {
	fwd := newTranslation(tx, ty, tz, precision)
	bwd := newTranslation(-tx, -ty, -tz, precision)
	fwd.inv, bwd.inv = bwd, fwd
	return fwd
}

func newTranslation(tx, ty, tz, precision float64) *Translation {
	return &Translation{
		Base: op.NewBase(cts.NewLocalIdentifier("Translation",
			fmt.Sprintf("translation (%g, %g, %g)", tx, ty, tz)), precision),
		tx: tx, ty: ty, tz: tz,
	}
}

// Transform adds the translation vector to (X, Y, Z).
func (t *Translation) Transform(coord []float64) ([]float64, error) {
	if len(coord) < 3 {
		return nil, &op.DimensionError{Op: t.String(), Coord: coord, Expected: 3}
	}
	coord[0] += t.tx
	coord[1] += t.ty
	coord[2] += t.tz
	return coord, nil
}

// Inverse returns the opposite translation.
func (t *Translation) Inverse() (op.Operation, error) { return t.inv, nil }

// IsIdentity reports whether the vector is zero.
func (t *Translation) IsIdentity() bool {
	return t.tx == 0 && t.ty == 0 && t.tz == 0
}

// Equal reports whether other translates by the same vector.
func (t *Translation) Equal(other op.Operation) bool {
	o, ok := other.(*Translation)
	return ok && o.tx == t.tx && o.ty == t.ty && o.tz == t.tz
}

func (t *Translation) String() string { return t.ID().Name }
