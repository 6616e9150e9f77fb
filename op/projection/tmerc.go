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
	"fmt"
	"math"
	"math/cmplx"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/units"
)

// TransverseMercator is the transverse Mercator projection computed
// with the complex Gauss-Schreiber series, accurate to well under a
// millimeter within a UTM zone.
type TransverseMercator struct {
	base
	lon0 float64
	n    float64 // k0 * a
	xs   float64
	ys   float64
	dc   [5]float64 // direct series
	ic   [5]float64 // inverse series
}

// NewTransverseMercator builds a transverse Mercator projection from a
// latitude/longitude of origin, scale factor and false origin.
func NewTransverseMercator(id cts.Identifier, ell *geod.Ellipsoid, params Parameters) *TransverseMercator {
	k0 := params.scaleFactor()
	n := k0 * ell.SemiMajorAxis()
	p := &TransverseMercator{
		base: newBase(id, ell, params, Cylinder, Conformal, Transverse),
		lon0: params.CentralMeridian.Reference(),
		n:    n,
		xs:   params.FalseEasting,
		ys:   params.FalseNorthing - n*ell.CurvilinearAbscissa(params.LatitudeOfOrigin.Reference()),
	}
	e2 := ell.SquareEccentricity()
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e6 * e2
	p.dc = [5]float64{
		1 - e2/4 - 3*e4/64 - 5*e6/256 - 175*e8/16384,
		e2/8 - e4/96 - 9*e6/1024 - 901*e8/184320,
		13*e4/768 + 17*e6/5120 - 311*e8/737280,
		61*e6/15360 + 899*e8/430080,
		49561 * e8 / 41287680,
	}
	p.ic = [5]float64{
		p.dc[0],
		e2/8 + e4/48 + 7*e6/2048 + e8/61440,
		e4/768 + 3*e6/1280 + 559*e8/368640,
		17*e6/30720 + 283*e8/430080,
		4397 * e8 / 41287680,
	}
	finish(p)
	return p
}

// NewUTM builds the Universal Transverse Mercator projection for the
// given zone on the given ellipsoid. north selects the northern or
// southern hemisphere variant.
func NewUTM(ell *geod.Ellipsoid, zone int, north bool) *TransverseMercator {
	h := "S"
	fn := 10000000.0
	if north {
		h = "N"
		fn = 0
	}
	return NewTransverseMercator(
		cts.NewLocalIdentifier("UTM", fmt.Sprintf("UTM %d%s (%s)", zone, h, ell.ID().Name)),
		ell,
		Parameters{
			CentralMeridian: units.NewMeasure(float64(6*zone-183), units.Degree),
			ScaleFactor:     0.9996,
			FalseEasting:    500000,
			FalseNorthing:   fn,
		})
}

// sphericalIsometric is the isometric latitude on the sphere.
func sphericalIsometric(lat float64) float64 {
	return math.Log(math.Tan(math.Pi/4 + lat/2))
}

// Transform projects (lat, lon[, h]) to (easting, northing[, h]).
func (p *TransverseMercator) Transform(coord []float64) ([]float64, error) {
	if err := checkGeographic(p, coord); err != nil {
		return nil, err
	}
	latIso := p.ellipsoid.IsometricLatitude(coord[0])
	dl := coord[1] - p.lon0
	phi := math.Asin(math.Sin(dl) / math.Cosh(latIso))
	lam := math.Atan(math.Sinh(latIso) / math.Cos(dl))
	z := complex(lam, sphericalIsometric(phi))
	zn := z * complex(p.n*p.dc[0], 0)
	for k := 1; k < 5; k++ {
		zn += cmplx.Sin(z*complex(2*float64(k), 0)) * complex(p.n*p.dc[k], 0)
	}
	coord[0], coord[1] = p.xs+imag(zn), p.ys+real(zn)
	return coord, nil
}

func (p *TransverseMercator) untransform(coord []float64) ([]float64, error) {
	if err := checkGeographic(p, coord); err != nil {
		return nil, err
	}
	x, y := coord[0], coord[1]
	z := complex((y-p.ys)/(p.n*p.ic[0]), (x-p.xs)/(p.n*p.ic[0]))
	zn := z
	for k := 1; k < 5; k++ {
		zn -= cmplx.Sin(z*complex(2*float64(k), 0)) * complex(p.ic[k], 0)
	}
	lon := p.lon0 + math.Atan(math.Sinh(imag(zn))/math.Cos(real(zn)))
	phi := math.Asin(math.Sin(real(zn)) / math.Cosh(imag(zn)))
	lat, err := p.ellipsoid.Latitude(sphericalIsometric(phi))
	if err != nil {
		return nil, err
	}
	coord[0], coord[1] = lat, lon
	return coord, nil
}

// Equal reports whether other is a transverse Mercator projection with
// the same constants on an equal ellipsoid.
func (p *TransverseMercator) Equal(other op.Operation) bool {
	o, ok := other.(*TransverseMercator)
	return ok && p.ellipsoid.Equal(o.ellipsoid) &&
		p.lon0 == o.lon0 && p.n == o.n && p.xs == o.xs && p.ys == o.ys
}
