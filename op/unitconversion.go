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
	"strings"
	"sync"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/units"
)

// UnitConversion converts each ordinate from a source unit to a target
// unit of the same quantity. Conversions are interned: asking twice
// for the same unit lists returns the same instance, and inverting
// twice returns the original.
type UnitConversion struct {
	Base
	src, dst []units.Unit
}

var (
	unitConvMu    sync.Mutex
	unitConvCache = map[string]*UnitConversion{}
)

// NewUnitConversion returns the conversion from src units to dst
// units, ordinate by ordinate. The lists must have the same length and
// matching quantities.
func NewUnitConversion(src, dst []units.Unit) (*UnitConversion, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("unit conversion: %d source units but %d target units",
			len(src), len(dst))
	}
	for i := range src {
		if !src[i].Comparable(dst[i]) {
			return nil, fmt.Errorf("unit conversion: cannot convert %s to %s",
				src[i], dst[i])
		}
	}
	key := unitKey(src) + ">" + unitKey(dst)
	unitConvMu.Lock()
	defer unitConvMu.Unlock()
	if uc, ok := unitConvCache[key]; ok {
		return uc, nil
	}
	uc := &UnitConversion{
		Base: NewBase(cts.NewLocalIdentifier("UnitConversion",
			unitKey(src)+" to "+unitKey(dst)), DefaultPrecision),
		src: append([]units.Unit(nil), src...),
		dst: append([]units.Unit(nil), dst...),
	}
	unitConvCache[key] = uc
	return uc, nil
}

// NewGeographicUnitConversion returns the conversion from geographic
// coordinates in (angular, angular, Meter) order to the internal
// (Radian, Radian, Meter) convention.
func NewGeographicUnitConversion(angular units.Unit) (*UnitConversion, error) {
	return NewUnitConversion(
		[]units.Unit{angular, angular, units.Meter},
		[]units.Unit{units.Radian, units.Radian, units.Meter})
}

func unitKey(u []units.Unit) string {
	names := make([]string, len(u))
	for i := range u {
		names[i] = u[i].Name
	}
	return strings.Join(names, ",")
}

// Transform rescales the ordinates present in coord. A coordinate may
// have fewer ordinates than the conversion has units; extra ordinates
// pass unchanged.
func (u *UnitConversion) Transform(coord []float64) ([]float64, error) {
	n := len(u.src)
	if len(coord) < n {
		n = len(coord)
	}
	for i := 0; i < n; i++ {
		coord[i] = coord[i] * u.src[i].Scale / u.dst[i].Scale
	}
	return coord, nil
}

// Inverse returns the conversion from target units to source units.
func (u *UnitConversion) Inverse() (Operation, error) {
	inv, err := NewUnitConversion(u.dst, u.src)
	if err != nil {
		return nil, &NonInvertibleError{Op: u.String()}
	}
	return inv, nil
}

// IsIdentity reports whether every source unit equals its target.
func (u *UnitConversion) IsIdentity() bool {
	for i := range u.src {
		if u.src[i] != u.dst[i] {
			return false
		}
	}
	return true
}

// Equal reports whether other converts between the same unit lists.
func (u *UnitConversion) Equal(other Operation) bool {
	o, ok := other.(*UnitConversion)
	if !ok || len(o.src) != len(u.src) {
		return false
	}
	for i := range u.src {
		if u.src[i] != o.src[i] || u.dst[i] != o.dst[i] {
			return false
		}
	}
	return true
}

func (u *UnitConversion) String() string { return u.ID().Name }
