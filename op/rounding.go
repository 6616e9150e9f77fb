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
	"math"

	cts "github.com/irstv/cts"
)

// CoordinateRounding rounds every ordinate to a multiple of a
// resolution, with ties going to the even multiple. Rounding loses
// information and has no inverse.
type CoordinateRounding struct {
	Base
	resolution float64
}

// NewCoordinateRounding returns the rounding to the given resolution,
// e.g. 0.001 to round meters to the millimeter.
func NewCoordinateRounding(resolution float64) *CoordinateRounding {
	return &CoordinateRounding{
		Base: NewBase(cts.NewLocalIdentifier("CoordinateRounding",
			fmt.Sprintf("rounding to %g", resolution)), resolution),
		resolution: resolution,
	}
}

// Resolution returns the rounding step.
func (r *CoordinateRounding) Resolution() float64 { return r.resolution }

// Transform rounds every ordinate in place.
func (r *CoordinateRounding) Transform(coord []float64) ([]float64, error) {
	for i, v := range coord {
		coord[i] = math.RoundToEven(v/r.resolution) * r.resolution
	}
	return coord, nil
}

// Inverse returns a *NonInvertibleError.
func (r *CoordinateRounding) Inverse() (Operation, error) {
	return nil, &NonInvertibleError{Op: r.String()}
}

// IsIdentity returns false.
func (r *CoordinateRounding) IsIdentity() bool { return false }

// Equal reports whether other rounds to the same resolution.
func (r *CoordinateRounding) Equal(other Operation) bool {
	o, ok := other.(*CoordinateRounding)
	return ok && o.resolution == r.resolution
}

func (r *CoordinateRounding) String() string { return r.ID().Name }
