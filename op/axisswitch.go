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

// CoordinateSwitch exchanges two ordinates, typically to move between
// longitude/latitude and latitude/longitude axis orders. It is its own
// inverse.
type CoordinateSwitch struct {
	Base
	i, j int
}

// SwitchLatLon exchanges the first two ordinates.
var SwitchLatLon = NewCoordinateSwitch(0, 1)

// NewCoordinateSwitch returns the operation exchanging ordinates i
// and j.
func NewCoordinateSwitch(i, j int) *CoordinateSwitch {
	return &CoordinateSwitch{
		Base: NewBase(cts.Identifier{
			Authority: cts.LocalAuthority,
			Code:      fmt.Sprintf("SWITCH_%d_%d", i, j),
			Name:      fmt.Sprintf("switch ordinates %d and %d", i, j),
		}, DefaultPrecision),
		i: i, j: j,
	}
}

// Transform exchanges the two ordinates in place.
func (s *CoordinateSwitch) Transform(coord []float64) ([]float64, error) {
	max := s.i
	if s.j > max {
		max = s.j
	}
	if err := checkDimension(s, coord, max+1); err != nil {
		return nil, err
	}
	coord[s.i], coord[s.j] = coord[s.j], coord[s.i]
	return coord, nil
}

// Inverse returns the switch itself.
func (s *CoordinateSwitch) Inverse() (Operation, error) { return s, nil }

// IsIdentity reports whether both indices are the same.
func (s *CoordinateSwitch) IsIdentity() bool { return s.i == s.j }

// Equal reports whether other exchanges the same ordinates.
func (s *CoordinateSwitch) Equal(other Operation) bool {
	o, ok := other.(*CoordinateSwitch)
	return ok && ((o.i == s.i && o.j == s.j) || (o.i == s.j && o.j == s.i))
}

func (s *CoordinateSwitch) String() string { return s.ID().Name }
