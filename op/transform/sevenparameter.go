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

package transform

import (
	"fmt"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/units"
)

// SevenParameter is the linearized seven-parameter similarity
// transformation of geocentric coordinates, using the position vector
// rotation convention (EPSG 9606): a positive rz rotates the position
// vector counterclockwise around Z as seen from above.
type SevenParameter struct {
	op.Base
	tx, ty, tz float64 // meters
	rx, ry, rz float64 // radians
	ds         float64 // scale difference, unitless
	inv        *SevenParameter
}

// NewBursaWolf returns the Bursa-Wolf transformation with translations
// in meters, rotations in arc seconds and the scale difference in
// parts per million, as datum shifts are usually published.
func NewBursaWolf(tx, ty, tz, rxSec, rySec, rzSec, dsPPM float64) *SevenParameter {
	return NewSevenParameter(tx, ty, tz,
		units.ArcSecond.ToReference(rxSec),
		units.ArcSecond.ToReference(rySec),
		units.ArcSecond.ToReference(rzSec),
		units.PPM.ToReference(dsPPM),
		op.DefaultPrecision)
}

// NewCoordinateFrameRotation is NewBursaWolf for parameters published
// in the coordinate frame rotation convention (EPSG 9607), where the
// rotations carry the opposite sign.
func NewCoordinateFrameRotation(tx, ty, tz, rxSec, rySec, rzSec, dsPPM float64) *SevenParameter {
	return NewBursaWolf(tx, ty, tz, -rxSec, -rySec, -rzSec, dsPPM)
}

// NewSevenParameter returns the transformation with rotations in
// radians and the scale difference unitless. The transformation and
// its first-order inverse, obtained by negating all seven parameters,
// are built as a pair.
func NewSevenParameter(tx, ty, tz, rx, ry, rz, ds, precision float64) *SevenParameter {
	fwd := newSevenParameter(tx, ty, tz, rx, ry, rz, ds, precision)
	bwd := newSevenParameter(-tx, -ty, -tz, -rx, -ry, -rz, -ds, precision)
	fwd.inv, bwd.inv = bwd, fwd
	return fwd
}

func newSevenParameter(tx, ty, tz, rx, ry, rz, ds, precision float64) *SevenParameter {
	return &SevenParameter{
		Base: op.NewBase(cts.NewLocalIdentifier("SevenParameter",
			fmt.Sprintf("seven-parameter transformation (%g, %g, %g)", tx, ty, tz)),
			precision),
		tx: tx, ty: ty, tz: tz,
		rx: rx, ry: ry, rz: rz,
		ds: ds,
	}
}

// Transform applies the similarity transformation to (X, Y, Z).
func (t *SevenParameter) Transform(coord []float64) ([]float64, error) {
	if len(coord) < 3 {
		return nil, &op.DimensionError{Op: t.String(), Coord: coord, Expected: 3}
	}
	x, y, z := coord[0], coord[1], coord[2]
	s := 1 + t.ds
	coord[0] = t.tx + s*(x-t.rz*y+t.ry*z)
	coord[1] = t.ty + s*(t.rz*x+y-t.rx*z)
	coord[2] = t.tz + s*(-t.ry*x+t.rx*y+z)
	return coord, nil
}

// Inverse returns the transformation with all seven parameters
// negated, exact to first order in the rotations and scale.
func (t *SevenParameter) Inverse() (op.Operation, error) { return t.inv, nil }

// IsIdentity reports whether all seven parameters are zero.
func (t *SevenParameter) IsIdentity() bool {
	return t.tx == 0 && t.ty == 0 && t.tz == 0 &&
		t.rx == 0 && t.ry == 0 && t.rz == 0 && t.ds == 0
}

// Equal reports whether other has the same seven parameters.
func (t *SevenParameter) Equal(other op.Operation) bool {
	o, ok := other.(*SevenParameter)
	return ok && o.tx == t.tx && o.ty == t.ty && o.tz == t.tz &&
		o.rx == t.rx && o.ry == t.ry && o.rz == t.rz && o.ds == t.ds
}

func (t *SevenParameter) String() string { return t.ID().Name }
