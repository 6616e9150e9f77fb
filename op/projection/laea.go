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
	"math"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
)

// LambertAzimuthalEqualArea is the oblique case of the Lambert
// azimuthal equal-area projection (EPSG 9820), used among others by
// the ETRS89-LAEA European grid. The latitude of origin must not be a
// pole.
type LambertAzimuthalEqualArea struct {
	base
	lon0  float64
	qp    float64
	beta0 float64
	rq    float64
	d     float64
	xs    float64
	ys    float64
}

// NewLambertAzimuthalEqualArea builds the projection from a latitude
// and longitude of origin and a false origin.
func NewLambertAzimuthalEqualArea(id cts.Identifier, ell *geod.Ellipsoid, params Parameters) *LambertAzimuthalEqualArea {
	lat0 := params.LatitudeOfOrigin.Reference()
	p := &LambertAzimuthalEqualArea{
		base: newBase(id, ell, params, Plane, EqualArea, Oblique),
		lon0: params.CentralMeridian.Reference(),
		xs:   params.FalseEasting,
		ys:   params.FalseNorthing,
	}
	a := ell.SemiMajorAxis()
	p.qp = authalic(ell, math.Pi/2)
	q0 := authalic(ell, lat0)
	p.beta0 = math.Asin(q0 / p.qp)
	p.rq = a * math.Sqrt(p.qp/2)
	m0 := parallelRadius(ell, lat0)
	p.d = a * m0 / (p.rq * math.Cos(p.beta0))
	finish(p)
	return p
}

// authalic returns the quantity q of EPSG 9820, with q(π/2) giving the
// authalic latitude normalization.
func authalic(ell *geod.Ellipsoid, lat float64) float64 {
	e := ell.Eccentricity()
	e2 := ell.SquareEccentricity()
	s := math.Sin(lat)
	if e == 0 {
		return 2 * s
	}
	return (1 - e2) * (s/(1-e2*s*s) - math.Log((1-e*s)/(1+e*s))/(2*e))
}

// Transform projects (lat, lon[, h]) to (easting, northing[, h]).
func (p *LambertAzimuthalEqualArea) Transform(coord []float64) ([]float64, error) {
	if err := checkGeographic(p, coord); err != nil {
		return nil, err
	}
	beta := math.Asin(authalic(p.ellipsoid, coord[0]) / p.qp)
	dl := coord[1] - p.lon0
	b := p.rq * math.Sqrt(2/(1+math.Sin(p.beta0)*math.Sin(beta)+
		math.Cos(p.beta0)*math.Cos(beta)*math.Cos(dl)))
	x := p.xs + b*p.d*math.Cos(beta)*math.Sin(dl)
	y := p.ys + b/p.d*(math.Cos(p.beta0)*math.Sin(beta)-
		math.Sin(p.beta0)*math.Cos(beta)*math.Cos(dl))
	coord[0], coord[1] = x, y
	return coord, nil
}

func (p *LambertAzimuthalEqualArea) untransform(coord []float64) ([]float64, error) {
	if err := checkGeographic(p, coord); err != nil {
		return nil, err
	}
	dx := (coord[0] - p.xs) / p.d
	dy := (coord[1] - p.ys) * p.d
	rho := math.Hypot(dx, dy)
	if rho == 0 {
		lat, err := p.latFromQ(p.qp * math.Sin(p.beta0))
		if err != nil {
			return nil, err
		}
		coord[0], coord[1] = lat, p.lon0
		return coord, nil
	}
	c := 2 * math.Asin(rho/(2*p.rq))
	q := p.qp * (math.Cos(c)*math.Sin(p.beta0) +
		dy*math.Sin(c)*math.Cos(p.beta0)/rho)
	lon := p.lon0 + math.Atan2(dx*math.Sin(c),
		rho*math.Cos(p.beta0)*math.Cos(c)-dy*math.Sin(p.beta0)*math.Sin(c))
	lat, err := p.latFromQ(q)
	if err != nil {
		return nil, err
	}
	coord[0], coord[1] = lat, lon
	return coord, nil
}

const maxAuthalicIter = 100

// latFromQ recovers the geodetic latitude whose authalic quantity is
// q, by Newton-like iteration (EPSG 9820 inverse).
func (p *LambertAzimuthalEqualArea) latFromQ(q float64) (float64, error) {
	e := p.ellipsoid.Eccentricity()
	e2 := p.ellipsoid.SquareEccentricity()
	if e == 0 {
		return asinClamped(q / 2), nil
	}
	lat := asinClamped(q / 2)
	for i := 0; i < maxAuthalicIter; i++ {
		s := math.Sin(lat)
		w := 1 - e2*s*s
		delta := w * w / (2 * math.Cos(lat)) *
			(q/(1-e2) - s/w + math.Log((1-e*s)/(1+e*s))/(2*e))
		lat += delta
		if math.Abs(delta) < 1e-12 {
			return lat, nil
		}
	}
	return lat, &cts.ConvergenceError{Op: "authalic latitude", Iterations: maxAuthalicIter}
}

func asinClamped(v float64) float64 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return math.Asin(v)
}

// Equal reports whether other is an azimuthal equal-area projection
// with the same constants on an equal ellipsoid.
func (p *LambertAzimuthalEqualArea) Equal(other op.Operation) bool {
	o, ok := other.(*LambertAzimuthalEqualArea)
	return ok && p.ellipsoid.Equal(o.ellipsoid) &&
		p.lon0 == o.lon0 && p.beta0 == o.beta0 &&
		p.xs == o.xs && p.ys == o.ys
}
