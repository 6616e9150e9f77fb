/*
Copyright © 2018 the CTS authors.
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

// Package crs defines coordinate reference systems and the factory
// assembling complete coordinate operations between them.
//
// Every CRS can convert its coordinates to and from the internal
// geographic convention of its datum: (latitude, longitude, height) in
// radians and meters, longitudes counted from the datum prime
// meridian. Operations between two CRS are built by going through that
// pivot form.
package crs

import (
	"sync"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/cs"
	"github.com/irstv/cts/datum"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/op/projection"
	"github.com/irstv/cts/units"
)

// GeodeticCRS is a coordinate reference system backed by a geodetic
// datum.
type GeodeticCRS interface {
	ID() cts.Identifier
	Datum() *datum.GeodeticDatum
	CoordinateSystem() cs.CoordinateSystem

	// ToGeographic returns the conversion from CRS coordinates to
	// 3D geographic coordinates on the CRS datum.
	ToGeographic() (op.Operation, error)

	// FromGeographic returns the conversion from 3D geographic
	// coordinates on the CRS datum back to CRS coordinates.
	FromGeographic() (op.Operation, error)

	// Equal reports whether other describes the same reference
	// system.
	Equal(other GeodeticCRS) bool

	String() string

	cacheOps(target GeodeticCRS) ([]op.Operation, bool)
	storeOps(target GeodeticCRS, ops []op.Operation) []op.Operation
}

// base carries what all CRS share, including the per-target operation
// cache filled by the factory.
type base struct {
	id   cts.Identifier
	d    *datum.GeodeticDatum
	csys cs.CoordinateSystem

	mu    sync.Mutex
	cache map[GeodeticCRS][]op.Operation
}

func newBase(id cts.Identifier, d *datum.GeodeticDatum, csys cs.CoordinateSystem) base {
	return base{id: id, d: d, csys: csys}
}

// ID returns the CRS identifier.
func (b *base) ID() cts.Identifier { return b.id }

// Datum returns the datum of the CRS.
func (b *base) Datum() *datum.GeodeticDatum { return b.d }

// CoordinateSystem returns the axes and units of the CRS.
func (b *base) CoordinateSystem() cs.CoordinateSystem { return b.csys }

func (b *base) String() string { return b.id.String() }

func (b *base) cacheOps(target GeodeticCRS) ([]op.Operation, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ops, ok := b.cache[target]
	return ops, ok
}

// storeOps caches ops for target unless another goroutine got there
// first, and returns the cached value.
func (b *base) storeOps(target GeodeticCRS, ops []op.Operation) []op.Operation {
	b.mu.Lock()
	defer b.mu.Unlock()
	if prev, ok := b.cache[target]; ok {
		return prev
	}
	if b.cache == nil {
		b.cache = map[GeodeticCRS][]op.Operation{}
	}
	b.cache[target] = ops
	return ops
}

// Geographic2DCRS is a geographic CRS with two axes. Axis order and
// angular unit follow its coordinate system.
type Geographic2DCRS struct {
	base
}

// NewGeographic2DCRS builds a geographic CRS with the given axes. The
// coordinate system must contain a latitude and a longitude axis.
func NewGeographic2DCRS(id cts.Identifier, d *datum.GeodeticDatum, csys cs.CoordinateSystem) *Geographic2DCRS {
	return &Geographic2DCRS{base: newBase(id, d, csys)}
}

// NewGeographic2D builds the usual latitude/longitude CRS in decimal
// degrees.
func NewGeographic2D(id cts.Identifier, d *datum.GeodeticDatum) *Geographic2DCRS {
	return NewGeographic2DCRS(id, d, cs.NewCoordinateSystem(
		[]cs.Axis{cs.LatitudeAxis, cs.LongitudeAxis},
		[]units.Unit{units.Degree, units.Degree}))
}

// NewGeographic2DLonLat builds a longitude/latitude CRS in decimal
// degrees, the axis order of most GIS data files.
func NewGeographic2DLonLat(id cts.Identifier, d *datum.GeodeticDatum) *Geographic2DCRS {
	return NewGeographic2DCRS(id, d, cs.NewCoordinateSystem(
		[]cs.Axis{cs.LongitudeAxis, cs.LatitudeAxis},
		[]units.Unit{units.Degree, units.Degree}))
}

// ToGeographic converts CRS coordinates to (lat, lon, height).
func (c *Geographic2DCRS) ToGeographic() (op.Operation, error) {
	ops, err := c.axisOps(false)
	if err != nil {
		return nil, err
	}
	ops = append(ops, op.To3D)
	return op.NewSequence(cts.NewLocalIdentifier("Converter", c.id.Label()+" to geographic"), ops...), nil
}

// FromGeographic converts (lat, lon, height) to CRS coordinates,
// dropping the height.
func (c *Geographic2DCRS) FromGeographic() (op.Operation, error) {
	ops := []op.Operation{op.To2D}
	back, err := c.axisOps(true)
	if err != nil {
		return nil, err
	}
	ops = append(ops, back...)
	return op.NewSequence(cts.NewLocalIdentifier("Converter", "geographic to "+c.id.Label()), ops...), nil
}

// axisOps builds the axis switch and unit conversion between the CRS
// axes and the internal latitude-first radian convention.
func (c *Geographic2DCRS) axisOps(fromInternal bool) ([]op.Operation, error) {
	angular := c.csys.Unit(0)
	uc, err := op.NewUnitConversion(
		[]units.Unit{angular, angular},
		[]units.Unit{units.Radian, units.Radian})
	if err != nil {
		return nil, err
	}
	lonFirst := c.csys.Index(cs.East) == 0
	var ops []op.Operation
	if fromInternal {
		inv, err := uc.Inverse()
		if err != nil {
			return nil, err
		}
		ops = append(ops, inv)
		if lonFirst {
			ops = append(ops, op.SwitchLatLon)
		}
		return ops, nil
	}
	if lonFirst {
		ops = append(ops, op.SwitchLatLon)
	}
	return append(ops, uc), nil
}

// Equal reports whether other is a geographic CRS on an equal datum
// with the same axes.
func (c *Geographic2DCRS) Equal(other GeodeticCRS) bool {
	o, ok := other.(*Geographic2DCRS)
	return ok && c.d.Equal(o.d) && c.csys.Equal(o.csys)
}

// Geographic3DCRS is a geographic CRS carrying an ellipsoidal height
// in meters as its third axis.
type Geographic3DCRS struct {
	base
}

// NewGeographic3D builds the usual latitude/longitude/height CRS in
// decimal degrees and meters.
func NewGeographic3D(id cts.Identifier, d *datum.GeodeticDatum) *Geographic3DCRS {
	return &Geographic3DCRS{base: newBase(id, d, cs.NewCoordinateSystem(
		[]cs.Axis{cs.LatitudeAxis, cs.LongitudeAxis, cs.HeightAxis},
		[]units.Unit{units.Degree, units.Degree, units.Meter}))}
}

// ToGeographic converts CRS coordinates to radians, keeping the
// height.
func (c *Geographic3DCRS) ToGeographic() (op.Operation, error) {
	uc, err := op.NewGeographicUnitConversion(c.csys.Unit(0))
	if err != nil {
		return nil, err
	}
	return op.NewSequence(cts.NewLocalIdentifier("Converter",
		c.id.Label()+" to geographic"), uc), nil
}

// FromGeographic converts radians back to the CRS angular unit.
func (c *Geographic3DCRS) FromGeographic() (op.Operation, error) {
	uc, err := op.NewGeographicUnitConversion(c.csys.Unit(0))
	if err != nil {
		return nil, err
	}
	inv, err := uc.Inverse()
	if err != nil {
		return nil, err
	}
	return op.NewSequence(cts.NewLocalIdentifier("Converter",
		"geographic to "+c.id.Label()), inv), nil
}

// Equal reports whether other is a 3D geographic CRS on an equal datum
// with the same axes.
func (c *Geographic3DCRS) Equal(other GeodeticCRS) bool {
	o, ok := other.(*Geographic3DCRS)
	return ok && c.d.Equal(o.d) && c.csys.Equal(o.csys)
}

// GeocentricCRS is an earth-centered cartesian CRS in meters.
type GeocentricCRS struct {
	base
}

// NewGeocentricCRS builds a geocentric CRS on the given datum.
func NewGeocentricCRS(id cts.Identifier, d *datum.GeodeticDatum) *GeocentricCRS {
	return &GeocentricCRS{base: newBase(id, d, cs.NewCoordinateSystem(
		[]cs.Axis{cs.XAxis, cs.YAxis, cs.ZAxis},
		[]units.Unit{units.Meter, units.Meter, units.Meter}))}
}

// ToGeographic converts (X, Y, Z) to (lat, lon, height) with
// longitudes counted from the datum prime meridian.
func (c *GeocentricCRS) ToGeographic() (op.Operation, error) {
	return op.NewSequence(cts.NewLocalIdentifier("Converter", c.id.Label()+" to geographic"),
		op.NewGeocentricToGeographic(c.d.Ellipsoid()),
		op.NewLongitudeRotation(-c.d.PrimeMeridian().FromGreenwich()),
	), nil
}

// FromGeographic converts (lat, lon, height) to (X, Y, Z).
func (c *GeocentricCRS) FromGeographic() (op.Operation, error) {
	return op.NewSequence(cts.NewLocalIdentifier("Converter", "geographic to "+c.id.Label()),
		op.NewLongitudeRotation(c.d.PrimeMeridian().FromGreenwich()),
		op.NewGeographicToGeocentric(c.d.Ellipsoid()),
	), nil
}

// Equal reports whether other is a geocentric CRS on an equal datum.
func (c *GeocentricCRS) Equal(other GeodeticCRS) bool {
	o, ok := other.(*GeocentricCRS)
	return ok && c.d.Equal(o.d)
}

// ProjectedCRS is a CRS of projected (easting, northing) coordinates
// in meters.
type ProjectedCRS struct {
	base
	proj projection.Projection
}

// NewProjectedCRS builds a projected CRS from its datum and
// projection.
func NewProjectedCRS(id cts.Identifier, d *datum.GeodeticDatum, proj projection.Projection) *ProjectedCRS {
	return &ProjectedCRS{
		base: newBase(id, d, cs.NewCoordinateSystem(
			[]cs.Axis{cs.EastingAxis, cs.NorthingAxis},
			[]units.Unit{units.Meter, units.Meter})),
		proj: proj,
	}
}

// Projection returns the projection of the CRS.
func (c *ProjectedCRS) Projection() projection.Projection { return c.proj }

// ToGeographic unprojects (easting, northing) to (lat, lon, height).
func (c *ProjectedCRS) ToGeographic() (op.Operation, error) {
	unproj, err := c.proj.Inverse()
	if err != nil {
		return nil, err
	}
	return op.NewSequence(cts.NewLocalIdentifier("Converter", c.id.Label()+" to geographic"),
		unproj, op.To3D), nil
}

// FromGeographic projects (lat, lon, height) to (easting, northing).
func (c *ProjectedCRS) FromGeographic() (op.Operation, error) {
	return op.NewSequence(cts.NewLocalIdentifier("Converter", "geographic to "+c.id.Label()),
		c.proj, op.To2D), nil
}

// Equal reports whether other is a projected CRS with an equal
// projection on an equal datum.
func (c *ProjectedCRS) Equal(other GeodeticCRS) bool {
	o, ok := other.(*ProjectedCRS)
	return ok && c.d.Equal(o.d) && c.proj.Equal(o.proj)
}
