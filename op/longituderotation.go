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

package op

import (
	"fmt"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/units"
)

// LongitudeRotation shifts the longitude ordinate of a geographic
// coordinate, changing its prime meridian.
type LongitudeRotation struct {
	Base
	rotation float64 // radians
	inv      *LongitudeRotation
}

// NewLongitudeRotation returns the rotation adding rot radians to
// longitudes. The rotation and its inverse are built as a pair, so
// inverting twice returns the original instance.
func NewLongitudeRotation(rot float64) *LongitudeRotation {
	fwd := newRotation(rot)
	bwd := newRotation(-rot)
	fwd.inv, bwd.inv = bwd, fwd
	return fwd
}

func newRotation(rot float64) *LongitudeRotation {
	name := fmt.Sprintf("longitude rotation (%.9g°)", units.Degree.FromReference(rot))
	return &LongitudeRotation{
		Base:     NewBase(cts.NewLocalIdentifier("LongitudeRotation", name), DefaultPrecision),
		rotation: rot,
	}
}

// Rotation returns the longitude offset in radians.
func (l *LongitudeRotation) Rotation() float64 { return l.rotation }

// Transform adds the rotation to the longitude ordinate of
// (latitude, longitude[, height]) in radians.
func (l *LongitudeRotation) Transform(coord []float64) ([]float64, error) {
	if err := checkDimension(l, coord, 2); err != nil {
		return nil, err
	}
	coord[1] += l.rotation
	return coord, nil
}

// Inverse returns the opposite rotation.
func (l *LongitudeRotation) Inverse() (Operation, error) { return l.inv, nil }

// IsIdentity reports whether the rotation is zero.
func (l *LongitudeRotation) IsIdentity() bool { return l.rotation == 0 }

// Equal reports whether other rotates longitudes by the same angle.
func (l *LongitudeRotation) Equal(other Operation) bool {
	o, ok := other.(*LongitudeRotation)
	return ok && o.rotation == l.rotation
}

func (l *LongitudeRotation) String() string { return l.ID().Name }
