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

package projection

import (
	cts "github.com/irstv/cts"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
)

// Mercator is the Mercator projection with a scale factor at the
// equator (EPSG 9804).
type Mercator struct {
	base
	lon0 float64
	ak0  float64
	xs   float64
	ys   float64
}

// NewMercator1SP builds a Mercator projection from a central meridian,
// scale factor and false origin.
func NewMercator1SP(id cts.Identifier, ell *geod.Ellipsoid, params Parameters) *Mercator {
	p := &Mercator{
		base: newBase(id, ell, params, Cylinder, Conformal, Tangent),
		lon0: params.CentralMeridian.Reference(),
		ak0:  ell.SemiMajorAxis() * params.scaleFactor(),
		xs:   params.FalseEasting,
		ys:   params.FalseNorthing,
	}
	finish(p)
	return p
}

// Transform projects (lat, lon[, h]) to (easting, northing[, h]).
func (p *Mercator) Transform(coord []float64) ([]float64, error) {
	if err := checkGeographic(p, coord); err != nil {
		return nil, err
	}
	x := p.xs + p.ak0*(coord[1]-p.lon0)
	y := p.ys + p.ak0*p.ellipsoid.IsometricLatitude(coord[0])
	coord[0], coord[1] = x, y
	return coord, nil
}

func (p *Mercator) untransform(coord []float64) ([]float64, error) {
	if err := checkGeographic(p, coord); err != nil {
		return nil, err
	}
	lat, err := p.ellipsoid.Latitude((coord[1] - p.ys) / p.ak0)
	if err != nil {
		return nil, err
	}
	lon := p.lon0 + (coord[0]-p.xs)/p.ak0
	coord[0], coord[1] = lat, lon
	return coord, nil
}

// Equal reports whether other is a Mercator projection with the same
// constants on an equal ellipsoid.
func (p *Mercator) Equal(other op.Operation) bool {
	o, ok := other.(*Mercator)
	return ok && p.ellipsoid.Equal(o.ellipsoid) &&
		p.lon0 == o.lon0 && p.ak0 == o.ak0 && p.xs == o.xs && p.ys == o.ys
}
