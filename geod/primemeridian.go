/*
Copyright © 2017 the CTS authors.
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

package geod

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/units"
)

// PrimeMeridian is the meridian used as longitude origin by a datum,
// given by its longitude from Greenwich.
type PrimeMeridian struct {
	id            cts.Identifier
	fromGreenwich float64 // radians, positive east
}

// Well-known prime meridians.
var (
	Greenwich = &PrimeMeridian{cts.NewIdentifier("EPSG", "8901", "Greenwich"), 0}
	Paris     = &PrimeMeridian{cts.NewIdentifier("EPSG", "8903", "Paris"), units.Grad.ToReference(2.5969213)}
)

var knownMeridians = []*PrimeMeridian{Greenwich, Paris}

// NewPrimeMeridian builds a prime meridian from its longitude east of
// Greenwich. A meridian within 1e-11 radian of a well-known one is
// replaced by the shared instance.
func NewPrimeMeridian(id cts.Identifier, fromGreenwich units.Measure) *PrimeMeridian {
	pm := &PrimeMeridian{id: id, fromGreenwich: fromGreenwich.Reference()}
	for _, k := range knownMeridians {
		if k.Equal(pm) {
			return k
		}
	}
	return pm
}

// ID returns the meridian identifier.
func (p *PrimeMeridian) ID() cts.Identifier { return p.id }

// FromGreenwich returns the longitude of the meridian east of
// Greenwich in radians.
func (p *PrimeMeridian) FromGreenwich() float64 { return p.fromGreenwich }

// Degrees returns the longitude east of Greenwich in decimal degrees.
func (p *PrimeMeridian) Degrees() float64 {
	return units.Degree.FromReference(p.fromGreenwich)
}

// Equal reports whether two meridians lie within 1e-11 radian of each
// other, which is under a tenth of a millimeter on the ground.
func (p *PrimeMeridian) Equal(o *PrimeMeridian) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil {
		return false
	}
	return scalar.EqualWithinAbs(p.fromGreenwich, o.fromGreenwich, 1e-11)
}

func (p *PrimeMeridian) String() string {
	return fmt.Sprintf("%s (%.9g°)", p.id, p.Degrees())
}
