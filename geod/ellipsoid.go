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

// Package geod defines the geodetic primitives a datum is built from:
// reference ellipsoids and prime meridians.
package geod

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	cts "github.com/irstv/cts"
)

// Ellipsoid is a biaxial reference ellipsoid. All derived quantities
// (eccentricity, meridian arc coefficients) are computed once at
// construction; Ellipsoid values are immutable and safe for concurrent
// use.
type Ellipsoid struct {
	id cts.Identifier

	a    float64 // semi-major axis (m)
	b    float64 // semi-minor axis (m)
	f    float64 // flattening
	invf float64 // inverse flattening, +Inf for a sphere

	e  float64 // first eccentricity
	e2 float64 // first eccentricity squared

	arcCoeff [5]float64
}

// Well-known ellipsoids.
var (
	WGS84Ellipsoid    = newFromInverseFlattening(cts.NewIdentifier("EPSG", "7030", "WGS 84"), 6378137.0, 298.257223563)
	GRS80             = newFromInverseFlattening(cts.NewIdentifier("EPSG", "7019", "GRS 1980"), 6378137.0, 298.257222101)
	International1924 = newFromInverseFlattening(cts.NewIdentifier("EPSG", "7022", "International 1924"), 6378388.0, 297.0)
	Clarke1880IGN     = newFromSemiMinorAxis(cts.NewIdentifier("EPSG", "7011", "Clarke 1880 (IGN)"), 6378249.2, 6356515.0)
	Clarke1866        = newFromSemiMinorAxis(cts.NewIdentifier("EPSG", "7008", "Clarke 1866"), 6378206.4, 6356583.8)
	Bessel1841        = newFromInverseFlattening(cts.NewIdentifier("EPSG", "7004", "Bessel 1841"), 6377397.155, 299.1528128)
	Sphere            = newFromSemiMinorAxis(cts.NewIdentifier("EPSG", "7035", "Sphere"), 6371000.0, 6371000.0)
)

var knownEllipsoids = []*Ellipsoid{
	WGS84Ellipsoid, GRS80, International1924, Clarke1880IGN,
	Clarke1866, Bessel1841, Sphere,
}

// NewEllipsoidFromInverseFlattening builds an ellipsoid from its
// semi-major axis in meters and its inverse flattening. If the result
// is equal to a well-known ellipsoid, that shared instance is returned
// instead of a new one.
func NewEllipsoidFromInverseFlattening(id cts.Identifier, a, invf float64) *Ellipsoid {
	return intern(newFromInverseFlattening(id, a, invf))
}

// NewEllipsoidFromSemiMinorAxis builds an ellipsoid from its two axes
// in meters, interning against the well-known instances.
func NewEllipsoidFromSemiMinorAxis(id cts.Identifier, a, b float64) *Ellipsoid {
	return intern(newFromSemiMinorAxis(id, a, b))
}

// NewSphere builds a sphere of the given radius in meters.
func NewSphere(id cts.Identifier, radius float64) *Ellipsoid {
	return intern(newFromSemiMinorAxis(id, radius, radius))
}

func newFromInverseFlattening(id cts.Identifier, a, invf float64) *Ellipsoid {
	e := &Ellipsoid{id: id, a: a, invf: invf, f: 1 / invf}
	e.b = a * (1 - e.f)
	e.init()
	return e
}

func newFromSemiMinorAxis(id cts.Identifier, a, b float64) *Ellipsoid {
	e := &Ellipsoid{id: id, a: a, b: b, f: (a - b) / a}
	if e.f == 0 {
		e.invf = math.Inf(1)
	} else {
		e.invf = 1 / e.f
	}
	e.init()
	return e
}

func (e *Ellipsoid) init() {
	e.e2 = e.f * (2 - e.f)
	e.e = math.Sqrt(e.e2)

	// Meridian arc expansion in powers of e².
	e2 := e.e2
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e6 * e2
	e.arcCoeff = [5]float64{
		1 - e2/4 - 3*e4/64 - 5*e6/256 - 175*e8/16384,
		-(3*e2/8 + 3*e4/32 + 45*e6/1024 + 105*e8/4096),
		15*e4/256 + 45*e6/1024 + 525*e8/16384,
		-(35*e6/3072 + 175*e8/12288),
		315 * e8 / 131072,
	}
}

func intern(e *Ellipsoid) *Ellipsoid {
	for _, k := range knownEllipsoids {
		if k.Equal(e) {
			return k
		}
	}
	return e
}

// ID returns the ellipsoid identifier.
func (e *Ellipsoid) ID() cts.Identifier { return e.id }

// SemiMajorAxis returns a in meters.
func (e *Ellipsoid) SemiMajorAxis() float64 { return e.a }

// SemiMinorAxis returns b in meters.
func (e *Ellipsoid) SemiMinorAxis() float64 { return e.b }

// Flattening returns (a-b)/a.
func (e *Ellipsoid) Flattening() float64 { return e.f }

// InverseFlattening returns 1/f, or +Inf for a sphere.
func (e *Ellipsoid) InverseFlattening() float64 { return e.invf }

// Eccentricity returns the first eccentricity.
func (e *Ellipsoid) Eccentricity() float64 { return e.e }

// SquareEccentricity returns the first eccentricity squared.
func (e *Ellipsoid) SquareEccentricity() float64 { return e.e2 }

// IsSphere reports whether the ellipsoid has zero flattening.
func (e *Ellipsoid) IsSphere() bool { return e.e2 == 0 }

// TransverseRadiusOfCurvature returns the radius of curvature in the
// prime vertical (grande normale) at latitude lat in radians.
func (e *Ellipsoid) TransverseRadiusOfCurvature(lat float64) float64 {
	s := math.Sin(lat)
	return e.a / math.Sqrt(1-e.e2*s*s)
}

// MeridionalRadiusOfCurvature returns the radius of curvature of the
// meridian at latitude lat in radians.
func (e *Ellipsoid) MeridionalRadiusOfCurvature(lat float64) float64 {
	s := math.Sin(lat)
	w := math.Sqrt(1 - e.e2*s*s)
	return e.a * (1 - e.e2) / (w * w * w)
}

// IsometricLatitude returns the isometric latitude of the geodetic
// latitude lat, both in radians.
func (e *Ellipsoid) IsometricLatitude(lat float64) float64 {
	es := e.e * math.Sin(lat)
	return math.Log(math.Tan(math.Pi/4+lat/2) *
		math.Pow((1-es)/(1+es), e.e/2))
}

// latitudeEps terminates the fixed-point iterations recovering a
// geodetic latitude. One nanoradian is well below a hundredth of a
// millimeter on the ground.
const latitudeEps = 1e-12

const maxLatitudeIter = 100

// Latitude returns the geodetic latitude whose isometric latitude is
// isoLat, by fixed-point iteration. It returns a cts.ConvergenceError
// if the iteration does not settle within its bound.
func (e *Ellipsoid) Latitude(isoLat float64) (float64, error) {
	exp := math.Exp(isoLat)
	lat := 2*math.Atan(exp) - math.Pi/2
	for i := 0; i < maxLatitudeIter; i++ {
		es := e.e * math.Sin(lat)
		next := 2*math.Atan(math.Pow((1+es)/(1-es), e.e/2)*exp) - math.Pi/2
		if math.Abs(next-lat) < latitudeEps {
			return next, nil
		}
		lat = next
	}
	return lat, &cts.ConvergenceError{Op: "geodetic latitude", Iterations: maxLatitudeIter}
}

// CurvilinearAbscissa returns the meridian arc length from the equator
// to latitude lat, divided by the semi-major axis.
func (e *Ellipsoid) CurvilinearAbscissa(lat float64) float64 {
	c := e.arcCoeff
	return c[0]*lat + c[1]*math.Sin(2*lat) + c[2]*math.Sin(4*lat) +
		c[3]*math.Sin(6*lat) + c[4]*math.Sin(8*lat)
}

// Equal reports whether two ellipsoids have the same shape. Identity
// of names or codes is not required; two definitions agreeing on the
// semi-major axis to a millimeter and on the square eccentricity to
// 1e-12 describe the same surface.
func (e *Ellipsoid) Equal(o *Ellipsoid) bool {
	if e == o {
		return true
	}
	if o == nil || e == nil {
		return false
	}
	return scalar.EqualWithinAbs(e.a, o.a, 1e-3) &&
		scalar.EqualWithinAbs(e.e2, o.e2, 1e-12)
}

func (e *Ellipsoid) String() string {
	return fmt.Sprintf("%s (a=%g, 1/f=%g)", e.id, e.a, e.invf)
}
