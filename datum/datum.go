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

package datum

import (
	log "github.com/sirupsen/logrus"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/cs"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/op/transform"
)

// GeodeticDatum ties an ellipsoid and a prime meridian to the Earth
// over a geographic extent, and carries the transformations known from
// this datum to others.
//
// Datums are nodes of a per-registry transformation graph. The
// geocentric edges work on cartesian (X, Y, Z) coordinates; geographic
// transformations are derived from them on demand and cached. When no
// direct edge to a target datum exists, a path through the registry
// reference datum is searched.
type GeodeticDatum struct {
	id        cts.Identifier
	ellipsoid *geod.Ellipsoid
	meridian  *geod.PrimeMeridian
	extent    cs.GeographicExtent
	toRef     op.Operation
	reg       *Registry

	// Guarded by reg.mu.
	geocentric map[*GeodeticDatum][]op.Operation
	geographic map[*GeodeticDatum][]op.Operation
	grids      map[*GeodeticDatum][]*transform.GridShift
}

// New builds a datum in the given registry, or in Default when reg is
// nil. toRef is the geocentric transformation from this datum to the
// registry reference datum; nil means the datum coincides with the
// reference. The edge to the reference datum and its inverse are
// registered immediately.
//
// If an equal datum is already registered, that instance is returned
// instead of a new one.
func New(reg *Registry, id cts.Identifier, ell *geod.Ellipsoid, pm *geod.PrimeMeridian,
	extent cs.GeographicExtent, toRef op.Operation) *GeodeticDatum {
	if reg == nil {
		reg = Default
	}
	if toRef == nil {
		toRef = op.Identity
	}
	d := &GeodeticDatum{
		id:         id,
		ellipsoid:  ell,
		meridian:   pm,
		extent:     extent,
		toRef:      toRef,
		reg:        reg,
		geocentric: map[*GeodeticDatum][]op.Operation{},
		geographic: map[*GeodeticDatum][]op.Operation{},
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for _, k := range reg.datums {
		if k.equalLocked(d) {
			return k
		}
	}
	reg.datums = append(reg.datums, d)
	d.addGeocentricLocked(reg.ref, toRef)
	return d
}

// ID returns the datum identifier.
func (d *GeodeticDatum) ID() cts.Identifier { return d.id }

// Ellipsoid returns the datum ellipsoid.
func (d *GeodeticDatum) Ellipsoid() *geod.Ellipsoid { return d.ellipsoid }

// PrimeMeridian returns the datum prime meridian.
func (d *GeodeticDatum) PrimeMeridian() *geod.PrimeMeridian { return d.meridian }

// Extent returns the area of validity of the datum.
func (d *GeodeticDatum) Extent() cs.GeographicExtent { return d.extent }

// ToReference returns the geocentric transformation to the registry
// reference datum declared at construction.
func (d *GeodeticDatum) ToReference() op.Operation { return d.toRef }

// Registry returns the registry the datum belongs to.
func (d *GeodeticDatum) Registry() *Registry { return d.reg }

// AddGeocentricTransformation registers a geocentric transformation
// from d to another datum of the same registry. The inverse edge is
// registered as well when the transformation is invertible.
func (d *GeodeticDatum) AddGeocentricTransformation(to *GeodeticDatum, t transform.GeocentricTransformation) {
	d.reg.mu.Lock()
	defer d.reg.mu.Unlock()
	d.addGeocentricLocked(to, t)
}

func (d *GeodeticDatum) addGeocentricLocked(to *GeodeticDatum, t op.Operation) {
	if to == d {
		return
	}
	for _, known := range d.geocentric[to] {
		if known.Equal(t) {
			return
		}
	}
	d.geocentric[to] = append(d.geocentric[to], t)
	inv, err := t.Inverse()
	if err != nil {
		log.WithFields(log.Fields{
			"from": d.id.Label(),
			"to":   to.id.Label(),
		}).Warnf("transformation %s has no inverse; reverse edge not registered", t)
		return
	}
	for _, known := range to.geocentric[d] {
		if known.Equal(inv) {
			return
		}
	}
	to.geocentric[d] = append(to.geocentric[d], inv)
}

// AddGridTransformation registers a grid shift applying to geographic
// coordinates from d to another datum. The inverse shift is registered
// on the target datum.
func (d *GeodeticDatum) AddGridTransformation(to *GeodeticDatum, g *transform.GridShift) {
	d.reg.mu.Lock()
	defer d.reg.mu.Unlock()
	if to == d {
		return
	}
	if d.grids == nil {
		d.grids = map[*GeodeticDatum][]*transform.GridShift{}
	}
	for _, known := range d.grids[to] {
		if known.Equal(g) {
			return
		}
	}
	d.grids[to] = append(d.grids[to], g)
	inv, err := g.Inverse()
	if err == nil {
		if to.grids == nil {
			to.grids = map[*GeodeticDatum][]*transform.GridShift{}
		}
		to.grids[d] = append(to.grids[d], inv.(*transform.GridShift))
	}
}

// GridTransformations returns the grid shifts registered from d to the
// target datum.
func (d *GeodeticDatum) GridTransformations(to *GeodeticDatum) []*transform.GridShift {
	d.reg.mu.Lock()
	defer d.reg.mu.Unlock()
	out := make([]*transform.GridShift, len(d.grids[to]))
	copy(out, d.grids[to])
	return out
}

// GeocentricTransformations returns the geocentric transformations
// from d to the target datum. When no direct edge exists, paths
// through the registry reference datum are composed and cached, so the
// search runs once per datum pair.
func (d *GeodeticDatum) GeocentricTransformations(to *GeodeticDatum) ([]op.Operation, error) {
	d.reg.mu.Lock()
	defer d.reg.mu.Unlock()
	return d.geocentricLocked(to)
}

func (d *GeodeticDatum) geocentricLocked(to *GeodeticDatum) ([]op.Operation, error) {
	if d == to {
		return []op.Operation{op.Identity}, nil
	}
	if found := d.geocentric[to]; len(found) > 0 {
		out := make([]op.Operation, len(found))
		copy(out, found)
		return out, nil
	}
	ref := d.reg.ref
	if d == ref || to == ref {
		return nil, &op.NoPathError{Source: d.id.Label(), Target: to.id.Label()}
	}
	toPivot := d.geocentric[ref]
	fromPivot := to.geocentric[ref]
	if len(toPivot) == 0 || len(fromPivot) == 0 {
		return nil, &op.NoPathError{Source: d.id.Label(), Target: to.id.Label()}
	}
	var derived []op.Operation
	nonInvertible := false
	for _, a := range toPivot {
		for _, b := range fromPivot {
			// Equal legs cancel exactly; composing them would only
			// accumulate rounding through the reference datum.
			if a.Equal(b) {
				derived = append(derived, op.Identity)
				continue
			}
			binv, err := b.Inverse()
			if err != nil {
				nonInvertible = true
				continue
			}
			id := cts.NewLocalIdentifier("GeocentricSequence",
				d.id.Label()+" to "+to.id.Label()+" via "+ref.id.Label())
			derived = append(derived, op.NewSequence(id, a, binv))
		}
	}
	if len(derived) == 0 {
		err := &op.NoPathError{Source: d.id.Label(), Target: to.id.Label()}
		if nonInvertible {
			err.Reason = "pivot leg is not invertible"
		}
		return nil, err
	}
	// Cache both directions so the next lookup is a map hit.
	d.geocentric[to] = append([]op.Operation(nil), derived...)
	var reverse []op.Operation
	for _, t := range derived {
		if inv, err := t.Inverse(); err == nil {
			reverse = append(reverse, inv)
		}
	}
	if len(reverse) > 0 {
		to.geocentric[d] = reverse
	}
	out := make([]op.Operation, len(derived))
	copy(out, derived)
	return out, nil
}

// GeographicTransformations returns the transformations from
// geographic coordinates (latitude, longitude, height) on d to
// geographic coordinates on the target datum, longitudes counted from
// each datum's own prime meridian. Results are cached.
func (d *GeodeticDatum) GeographicTransformations(to *GeodeticDatum) ([]op.Operation, error) {
	d.reg.mu.Lock()
	defer d.reg.mu.Unlock()
	if found := d.geographic[to]; len(found) > 0 {
		out := make([]op.Operation, len(found))
		copy(out, found)
		return out, nil
	}
	if d == to {
		d.geographic[to] = []op.Operation{op.Identity}
		return []op.Operation{op.Identity}, nil
	}
	geocentric, err := d.geocentricLocked(to)
	if err != nil {
		return nil, err
	}
	var ops []op.Operation
	for _, gt := range geocentric {
		id := cts.NewLocalIdentifier("GeographicTransformation",
			d.id.Label()+" to "+to.id.Label())
		// When the datums share their ellipsoid and differ at most by
		// their prime meridian, the geocentric round trip is a no-op:
		// rotating the longitude is the whole transformation.
		if gt.IsIdentity() && d.ellipsoid.Equal(to.ellipsoid) {
			ops = append(ops, op.NewSequence(id,
				op.NewLongitudeRotation(d.meridian.FromGreenwich()),
				op.NewLongitudeRotation(-to.meridian.FromGreenwich()),
			))
			continue
		}
		ops = append(ops, op.NewSequence(id,
			op.NewLongitudeRotation(d.meridian.FromGreenwich()),
			op.NewGeographicToGeocentric(d.ellipsoid),
			gt,
			op.NewGeocentricToGeographic(to.ellipsoid),
			op.NewLongitudeRotation(-to.meridian.FromGreenwich()),
		))
	}
	d.geographic[to] = append([]op.Operation(nil), ops...)
	out := make([]op.Operation, len(ops))
	copy(out, ops)
	return out, nil
}

// Equal reports whether two datums are interchangeable: same
// identifier, or same ellipsoid, prime meridian, extent and
// transformation to the reference datum.
func (d *GeodeticDatum) Equal(o *GeodeticDatum) bool {
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	d.reg.mu.Lock()
	defer d.reg.mu.Unlock()
	return d.equalLocked(o)
}

func (d *GeodeticDatum) equalLocked(o *GeodeticDatum) bool {
	if d == o {
		return true
	}
	if d.id.Equal(o.id) {
		return true
	}
	return d.ellipsoid.Equal(o.ellipsoid) &&
		d.meridian.Equal(o.meridian) &&
		d.extent.Equal(o.extent) &&
		d.toRef.Equal(o.toRef)
}

func (d *GeodeticDatum) String() string { return d.id.String() }
