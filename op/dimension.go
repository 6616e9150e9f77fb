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
)

// ChangeCoordinateDimension pads a coordinate with zero ordinates or
// truncates it. Use the To3D and To2D instances, which are inverses of
// each other.
type ChangeCoordinateDimension struct {
	Base
	in, out int
	inv     *ChangeCoordinateDimension
}

// To3D extends 2D coordinates with a zero third ordinate. To2D drops
// the third ordinate.
var To3D, To2D = newDimensionPair(2, 3)

func newDimensionPair(lo, hi int) (*ChangeCoordinateDimension, *ChangeCoordinateDimension) {
	up := &ChangeCoordinateDimension{
		Base: NewBase(cts.Identifier{
			Authority: cts.LocalAuthority,
			Code:      fmt.Sprintf("DIM_%dTO%d", lo, hi),
			Name:      fmt.Sprintf("%dD to %dD", lo, hi),
		}, DefaultPrecision),
		in: lo, out: hi,
	}
	down := &ChangeCoordinateDimension{
		Base: NewBase(cts.Identifier{
			Authority: cts.LocalAuthority,
			Code:      fmt.Sprintf("DIM_%dTO%d", hi, lo),
			Name:      fmt.Sprintf("%dD to %dD", hi, lo),
		}, DefaultPrecision),
		in: hi, out: lo,
	}
	up.inv, down.inv = down, up
	return up, down
}

// Transform adjusts coord to the output dimension. A coordinate that
// already has the output dimension passes unchanged.
func (d *ChangeCoordinateDimension) Transform(coord []float64) ([]float64, error) {
	switch {
	case len(coord) == d.out:
		return coord, nil
	case len(coord) > d.out:
		return coord[:d.out], nil
	case len(coord) >= d.in:
		for len(coord) < d.out {
			coord = append(coord, 0)
		}
		return coord, nil
	}
	return nil, &DimensionError{Op: d.String(), Coord: coord, Expected: d.in}
}

// Inverse returns the opposite dimension change. Note that padding
// then truncating is the identity, while truncating first loses the
// third ordinate.
func (d *ChangeCoordinateDimension) Inverse() (Operation, error) { return d.inv, nil }

// IsIdentity returns false.
func (d *ChangeCoordinateDimension) IsIdentity() bool { return false }

// Equal reports whether other changes between the same dimensions.
func (d *ChangeCoordinateDimension) Equal(other Operation) bool {
	o, ok := other.(*ChangeCoordinateDimension)
	return ok && o.in == d.in && o.out == d.out
}

func (d *ChangeCoordinateDimension) String() string { return d.ID().Name }
