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
	"math"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/geod"
)

// geocentricEps terminates the latitude iteration of the geocentric to
// geographic conversion, in radians. The iteration converges linearly
// with a factor near e²/2, so this tolerance keeps round trips through
// several conversions below a hundredth of a millimeter.
const geocentricEps = 1e-13

const maxGeocentricIter = 1000

// GeographicToGeocentric converts (latitude, longitude[, height]) in
// radians and meters on an ellipsoid to geocentric cartesian
// (X, Y, Z) in meters. A missing height is taken as zero.
type GeographicToGeocentric struct {
	Base
	ellipsoid *geod.Ellipsoid
	inv       *GeocentricToGeographic
}

// GeocentricToGeographic converts geocentric cartesian (X, Y, Z) in
// meters to (latitude, longitude, height) on an ellipsoid, recovering
// the latitude by a bounded fixed-point iteration.
type GeocentricToGeographic struct {
	Base
	ellipsoid *geod.Ellipsoid
	inv       *GeographicToGeocentric
}

// NewGeographicToGeocentric returns the conversion for the given
// ellipsoid. The conversion and its inverse are built as a pair.
func NewGeographicToGeocentric(ell *geod.Ellipsoid) *GeographicToGeocentric {
	g, _ := newGeocentricPair(ell)
	return g
}

// NewGeocentricToGeographic returns the conversion for the given
// ellipsoid.
func NewGeocentricToGeographic(ell *geod.Ellipsoid) *GeocentricToGeographic {
	_, i := newGeocentricPair(ell)
	return i
}

func newGeocentricPair(ell *geod.Ellipsoid) (*GeographicToGeocentric, *GeocentricToGeographic) {
	g := &GeographicToGeocentric{
		Base: NewBase(cts.NewLocalIdentifier("Geographic2Geocentric",
			"geographic to geocentric ("+ell.ID().Name+")"), DefaultPrecision),
		ellipsoid: ell,
	}
	i := &GeocentricToGeographic{
		Base: NewBase(cts.NewLocalIdentifier("Geocentric2Geographic",
			"geocentric to geographic ("+ell.ID().Name+")"), DefaultPrecision),
		ellipsoid: ell,
	}
	g.inv, i.inv = i, g
	return g, i
}

// Ellipsoid returns the ellipsoid the conversion works on.
func (g *GeographicToGeocentric) Ellipsoid() *geod.Ellipsoid { return g.ellipsoid }

// Transform converts (lat, lon[, h]) to (X, Y, Z).
func (g *GeographicToGeocentric) Transform(coord []float64) ([]float64, error) {
	if err := checkDimension(g, coord, 2); err != nil {
		return nil, err
	}
	lat, lon := coord[0], coord[1]
	var h float64
	if len(coord) > 2 {
		h = coord[2]
	}
	n := g.ellipsoid.TransverseRadiusOfCurvature(lat)
	e2 := g.ellipsoid.SquareEccentricity()
	out := coord
	if len(out) < 3 {
		out = make([]float64, 3)
	}
	out[0] = (n + h) * math.Cos(lat) * math.Cos(lon)
	out[1] = (n + h) * math.Cos(lat) * math.Sin(lon)
	out[2] = (n*(1-e2) + h) * math.Sin(lat)
	return out[:3], nil
}

// Inverse returns the geocentric to geographic conversion on the same
// ellipsoid.
func (g *GeographicToGeocentric) Inverse() (Operation, error) { return g.inv, nil }

// IsIdentity returns false.
func (g *GeographicToGeocentric) IsIdentity() bool { return false }

// Equal reports whether other converts on an equal ellipsoid.
func (g *GeographicToGeocentric) Equal(other Operation) bool {
	o, ok := other.(*GeographicToGeocentric)
	return ok && g.ellipsoid.Equal(o.ellipsoid)
}

func (g *GeographicToGeocentric) String() string { return g.ID().Name }

// Ellipsoid returns the ellipsoid the conversion works on.
func (c *GeocentricToGeographic) Ellipsoid() *geod.Ellipsoid { return c.ellipsoid }

// Transform converts (X, Y, Z) to (lat, lon, h).
func (c *GeocentricToGeographic) Transform(coord []float64) ([]float64, error) {
	if err := checkDimension(c, coord, 3); err != nil {
		return nil, err
	}
	x, y, z := coord[0], coord[1], coord[2]
	a := c.ellipsoid.SemiMajorAxis()
	e2 := c.ellipsoid.SquareEccentricity()
	lon := math.Atan2(y, x)
	rho := math.Hypot(x, y)
	r := math.Sqrt(x*x + y*y + z*z)
	lat := math.Atan(z / (rho * (1 - a*e2/r)))
	converged := false
	for i := 0; i < maxGeocentricIter; i++ {
		s := math.Sin(lat)
		next := math.Atan((z / rho) /
			(1 - a*e2*math.Cos(lat)/(rho*math.Sqrt(1-e2*s*s))))
		if math.Abs(next-lat) < geocentricEps {
			lat = next
			converged = true
			break
		}
		lat = next
	}
	if !converged {
		return nil, &cts.ConvergenceError{Op: "geocentric latitude", Iterations: maxGeocentricIter}
	}
	s := math.Sin(lat)
	h := rho/math.Cos(lat) - a/math.Sqrt(1-e2*s*s)
	coord[0], coord[1], coord[2] = lat, lon, h
	return coord, nil
}

// Inverse returns the geographic to geocentric conversion on the same
// ellipsoid.
func (c *GeocentricToGeographic) Inverse() (Operation, error) { return c.inv, nil }

// IsIdentity returns false.
func (c *GeocentricToGeographic) IsIdentity() bool { return false }

// Equal reports whether other converts on an equal ellipsoid.
func (c *GeocentricToGeographic) Equal(other Operation) bool {
	o, ok := other.(*GeocentricToGeographic)
	return ok && c.ellipsoid.Equal(o.ellipsoid)
}

func (c *GeocentricToGeographic) String() string { return c.ID().Name }
