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

// Package projection implements map projections as coordinate
// operations from geographic (latitude, longitude[, height]) tuples in
// radians to projected (easting, northing[, height]) tuples in meters.
// A third ordinate always passes through unchanged.
package projection

import (
	cts "github.com/irstv/cts"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/units"
)

// Surface is the developable surface a projection maps onto.
type Surface string

const (
	Cone     Surface = "CONE"
	Cylinder Surface = "CYLINDER"
	Plane    Surface = "PLANE"
)

// Property is the geometric quantity a projection preserves.
type Property string

const (
	Conformal  Property = "CONFORMAL"
	EqualArea  Property = "EQUAL AREA"
	Aphylactic Property = "APHYLACTIC"
)

// Orientation describes how the projection surface touches the
// ellipsoid.
type Orientation string

const (
	Tangent    Orientation = "TANGENT"
	Secant     Orientation = "SECANT"
	Transverse Orientation = "TRANSVERSE"
	Oblique    Orientation = "OBLIQUE"
)

// Parameters holds the defining parameters of a projection. A zero
// ScaleFactor means 1. Angular parameters carry their own unit so
// definitions published in grads can be written as is.
type Parameters struct {
	LatitudeOfOrigin  units.Measure
	CentralMeridian   units.Measure
	StandardParallel1 units.Measure
	StandardParallel2 units.Measure
	ScaleFactor       float64
	FalseEasting      float64
	FalseNorthing     float64
}

func (p Parameters) scaleFactor() float64 {
	if p.ScaleFactor == 0 {
		return 1
	}
	return p.ScaleFactor
}

// Projection is a map projection. The forward operation projects
// geographic coordinates; Inverse returns the unprojection.
type Projection interface {
	op.Operation
	Ellipsoid() *geod.Ellipsoid
	Parameters() Parameters
	Surface() Surface
	Property() Property
	Orientation() Orientation
}

// planar is implemented by the concrete projections; untransform is
// the inverse mapping used by the shared inverse wrapper.
type planar interface {
	Projection
	untransform(coord []float64) ([]float64, error)
	setInverse(inv *inverseProjection)
}

// base carries what all projections share. Concrete projections embed
// it and implement Transform, untransform and Equal.
type base struct {
	op.Base
	ellipsoid   *geod.Ellipsoid
	params      Parameters
	surface     Surface
	property    Property
	orientation Orientation
	inv         *inverseProjection
}

func newBase(id cts.Identifier, ell *geod.Ellipsoid, params Parameters,
	s Surface, p Property, o Orientation) base {
	return base{
		Base:      op.NewBase(id, op.DefaultPrecision),
		ellipsoid: ell, params: params,
		surface: s, property: p, orientation: o,
	}
}

// Ellipsoid returns the ellipsoid the projection is defined on.
func (b *base) Ellipsoid() *geod.Ellipsoid { return b.ellipsoid }

// Parameters returns the defining parameters.
func (b *base) Parameters() Parameters { return b.params }

// Surface returns the developable surface.
func (b *base) Surface() Surface { return b.surface }

// Property returns the preserved quantity.
func (b *base) Property() Property { return b.property }

// Orientation returns the surface orientation.
func (b *base) Orientation() Orientation { return b.orientation }

// IsIdentity returns false.
func (b *base) IsIdentity() bool { return false }

// Inverse returns the unprojection.
func (b *base) Inverse() (op.Operation, error) { return b.inv, nil }

func (b *base) setInverse(inv *inverseProjection) { b.inv = inv }

func (b *base) String() string { return b.ID().Name }

// finish pairs a projection with its inverse wrapper so that inverting
// twice returns the original instance.
func finish(p planar) {
	id := p.ID()
	id.Name = "inverse of " + id.Name
	p.setInverse(&inverseProjection{planar: p, id: id})
}

// inverseProjection exposes the untransform of a projection as an
// operation of its own.
type inverseProjection struct {
	planar
	id cts.Identifier
}

// ID returns the identifier of the inverse operation.
func (p *inverseProjection) ID() cts.Identifier { return p.id }

// Transform unprojects (easting, northing[, height]) back to
// geographic coordinates.
func (p *inverseProjection) Transform(coord []float64) ([]float64, error) {
	return p.planar.untransform(coord)
}

// Inverse returns the forward projection.
func (p *inverseProjection) Inverse() (op.Operation, error) {
	return p.planar, nil
}

// Equal reports whether other is the inverse of an equal projection.
func (p *inverseProjection) Equal(other op.Operation) bool {
	o, ok := other.(*inverseProjection)
	return ok && p.planar.Equal(o.planar)
}

func (p *inverseProjection) String() string { return p.id.Name }

func checkGeographic(o op.Operation, coord []float64) error {
	if len(coord) < 2 {
		return &op.DimensionError{Op: o.String(), Coord: coord, Expected: 2}
	}
	return nil
}
