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

// OppositeCoordinate negates one ordinate, turning for example a
// west-positive axis into the east-positive convention. It is its own
// inverse.
type OppositeCoordinate struct {
	Base
	index int
}

// NewOppositeCoordinate returns the operation negating the ordinate at
// the given index.
func NewOppositeCoordinate(index int) *OppositeCoordinate {
	return &OppositeCoordinate{
		Base: NewBase(cts.NewLocalIdentifier("OppositeCoordinate",
			fmt.Sprintf("opposite of ordinate %d", index)), DefaultPrecision),
		index: index,
	}
}

// Transform negates the ordinate.
func (o *OppositeCoordinate) Transform(coord []float64) ([]float64, error) {
	if o.index >= len(coord) {
		return nil, &DimensionError{Op: o.String(), Coord: coord, Expected: o.index + 1}
	}
	coord[o.index] = -coord[o.index]
	return coord, nil
}

// Inverse returns the operation itself.
func (o *OppositeCoordinate) Inverse() (Operation, error) { return o, nil }

// IsIdentity returns false.
func (o *OppositeCoordinate) IsIdentity() bool { return false }

// Equal reports whether other negates the same ordinate.
func (o *OppositeCoordinate) Equal(other Operation) bool {
	oc, ok := other.(*OppositeCoordinate)
	return ok && oc.index == o.index
}

func (o *OppositeCoordinate) String() string { return o.ID().Name }
