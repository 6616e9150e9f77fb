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

// Package datum defines geodetic datums and the transformation graph
// connecting them. Datums belong to a Registry whose reference datum,
// a WGS 84 realization, serves as pivot when no direct transformation
// between two datums is known.
package datum

import (
	"sync"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/cs"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
)

// Registry owns a set of geodetic datums and their transformation
// graph. A single registry lock serializes every graph read and
// mutation, so looking up a transformation and caching a derived one
// is one atomic step.
//
// Datums from different registries cannot be connected.
type Registry struct {
	mu     sync.Mutex
	ref    *GeodeticDatum
	datums []*GeodeticDatum
}

// Default is the registry used when no explicit registry is given. The
// well-known datums of this package live in it.
var Default = NewRegistry()

// NewRegistry returns an empty registry containing only its reference
// datum, a WGS 84 realization covering the world.
func NewRegistry() *Registry {
	r := &Registry{}
	r.ref = &GeodeticDatum{
		id:         cts.NewIdentifier("EPSG", "6326", "World Geodetic System 1984"),
		ellipsoid:  geod.WGS84Ellipsoid,
		meridian:   geod.Greenwich,
		extent:     cs.World,
		toRef:      op.Identity,
		reg:        r,
		geocentric: map[*GeodeticDatum][]op.Operation{},
		geographic: map[*GeodeticDatum][]op.Operation{},
	}
	r.datums = []*GeodeticDatum{r.ref}
	return r
}

// Reference returns the pivot datum of the registry.
func (r *Registry) Reference() *GeodeticDatum { return r.ref }

// Datums returns the datums known to the registry.
func (r *Registry) Datums() []*GeodeticDatum {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*GeodeticDatum, len(r.datums))
	copy(out, r.datums)
	return out
}

// FindDatum returns the registered datum whose identifier matches id.
func (r *Registry) FindDatum(id cts.Identifier) (*GeodeticDatum, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.datums {
		if d.id.Equal(id) {
			return d, true
		}
	}
	return nil, false
}

// RemoveAllTransformations drops every edge of the transformation
// graph, keeping only the edges declared at datum construction. Grid
// shift registrations are dropped too.
func (r *Registry) RemoveAllTransformations() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.datums {
		d.geocentric = map[*GeodeticDatum][]op.Operation{}
		d.geographic = map[*GeodeticDatum][]op.Operation{}
		d.grids = nil
	}
	for _, d := range r.datums {
		if d != r.ref {
			d.addGeocentricLocked(r.ref, d.toRef)
		}
	}
}
