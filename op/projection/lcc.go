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

// LambertConicConformal is the Lambert conic conformal projection.
// Both the one standard parallel and the two standard parallel
// variants reduce to the same mapping
//
//	x = xs + C·exp(-n·L)·sin(n·(λ-λ0))
//	y = ys - C·exp(-n·L)·cos(n·(λ-λ0))
//
// where L is the isometric latitude; the variants differ only in how
// n, C, xs and ys are derived from the defining parameters.
type LambertConicConformal struct {
	base
	lon0 float64
	n    float64
	c    float64
	xs   float64
	ys   float64
}

// NewLambertConicConformal1SP builds a Lambert conic conformal
// projection from a latitude of origin, which must not be on the
// equator, and a scale factor at that latitude (EPSG 9801).
func NewLambertConicConformal1SP(id cts.Identifier, ell *geod.Ellipsoid, params Parameters) *LambertConicConformal {
	lat0 := params.LatitudeOfOrigin.Reference()
	k0 := params.scaleFactor()
	l0 := ell.IsometricLatitude(lat0)
	n0 := ell.TransverseRadiusOfCurvature(lat0)
	n := math.Sin(lat0)
	p := &LambertConicConformal{
		base: newBase(id, ell, params, Cone, Conformal, Tangent),
		lon0: params.CentralMeridian.Reference(),
		n:    n,
		c:    k0 * n0 * math.Exp(n*l0) / math.Tan(lat0),
		xs:   params.FalseEasting,
		ys:   params.FalseNorthing + k0*n0/math.Tan(lat0),
	}
	finish(p)
	return p
}

// NewLambertConicConformal2SP builds a Lambert conic conformal
// projection from two standard parallels (EPSG 9802).
func NewLambertConicConformal2SP(id cts.Identifier, ell *geod.Ellipsoid, params Parameters) *LambertConicConformal {
	lat0 := params.LatitudeOfOrigin.Reference()
	lat1 := params.StandardParallel1.Reference()
	lat2 := params.StandardParallel2.Reference()
	m1 := parallelRadius(ell, lat1)
	m2 := parallelRadius(ell, lat2)
	l0 := ell.IsometricLatitude(lat0)
	l1 := ell.IsometricLatitude(lat1)
	l2 := ell.IsometricLatitude(lat2)
	n := (math.Log(m1) - math.Log(m2)) / (l2 - l1)
	c := ell.SemiMajorAxis() * m1 * math.Exp(n*l1) / n
	p := &LambertConicConformal{
		base: newBase(id, ell, params, Cone, Conformal, Secant),
		lon0: params.CentralMeridian.Reference(),
		n:    n,
		c:    c,
		xs:   params.FalseEasting,
		ys:   params.FalseNorthing + c*math.Exp(-n*l0),
	}
	finish(p)
	return p
}

// parallelRadius is the radius of the parallel of latitude lat divided
// by the semi-major axis.
func parallelRadius(ell *geod.Ellipsoid, lat float64) float64 {
	s := math.Sin(lat)
	return math.Cos(lat) / math.Sqrt(1-ell.SquareEccentricity()*s*s)
}

// Transform projects (lat, lon[, h]) to (easting, northing[, h]).
func (p *LambertConicConformal) Transform(coord []float64) ([]float64, error) {
	if err := checkGeographic(p, coord); err != nil {
		return nil, err
	}
	l := p.ellipsoid.IsometricLatitude(coord[0])
	dl := p.n * (coord[1] - p.lon0)
	r := p.c * math.Exp(-p.n*l)
	coord[0], coord[1] = p.xs+r*math.Sin(dl), p.ys-r*math.Cos(dl)
	return coord, nil
}

func (p *LambertConicConformal) untransform(coord []float64) ([]float64, error) {
	if err := checkGeographic(p, coord); err != nil {
		return nil, err
	}
	x, y := coord[0], coord[1]
	r := math.Hypot(x-p.xs, y-p.ys)
	gamma := math.Atan2(x-p.xs, p.ys-y)
	l := -math.Log(math.Abs(r/p.c)) / p.n
	lat, err := p.ellipsoid.Latitude(l)
	if err != nil {
		return nil, err
	}
	coord[0], coord[1] = lat, p.lon0+gamma/p.n
	return coord, nil
}

// Equal reports whether other is a Lambert conic conformal projection
// with the same constants on an equal ellipsoid.
func (p *LambertConicConformal) Equal(other op.Operation) bool {
	o, ok := other.(*LambertConicConformal)
	return ok && p.ellipsoid.Equal(o.ellipsoid) &&
		p.lon0 == o.lon0 && p.n == o.n && p.c == o.c &&
		p.xs == o.xs && p.ys == o.ys
}
