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

package transform

import (
	"fmt"
	"sync"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/units"
)

// GridProvider supplies interpolated datum shifts for a grid based
// transformation. Latitudes and longitudes are in decimal degrees; the
// returned offsets are in decimal degrees to be added to the input.
// ok is false when the point falls outside the grid coverage.
//
// Providers may load their data lazily; GridShift serializes all
// access to a provider, so implementations need no locking of their
// own.
type GridProvider interface {
	ForwardShift(lat, lon float64) (dLat, dLon float64, ok bool, err error)
	ReverseShift(lat, lon float64) (dLat, dLon float64, ok bool, err error)
	IsLoaded() bool
	Load() error
	Unload() error
}

// GridShift transforms geographic coordinates between two datums by
// interpolating offsets in a correction grid such as an NTv2 file.
//
// By default a coordinate outside the grid coverage passes through
// unchanged, which keeps whole-dataset conversions usable when only
// part of the data lies under the grid. A strict shift returns an
// *op.OutOfExtentError instead.
type GridShift struct {
	op.Base
	provider GridProvider
	strict   bool
	reversed bool
	mu       *sync.Mutex
	inv      *GridShift
}

// NewGridShift returns the grid based transformation using the given
// provider. precision is the grid accuracy in meters.
func NewGridShift(name string, provider GridProvider, precision float64, strict bool) *GridShift {
	mu := new(sync.Mutex)
	fwd := &GridShift{
		Base: op.NewBase(cts.NewLocalIdentifier("GridShift",
			fmt.Sprintf("grid shift (%s)", name)), precision),
		provider: provider, strict: strict, mu: mu,
	}
	bwd := &GridShift{
		Base: op.NewBase(cts.NewLocalIdentifier("GridShift",
			fmt.Sprintf("inverse grid shift (%s)", name)), precision),
		provider: provider, strict: strict, reversed: true, mu: mu,
	}
	fwd.inv, bwd.inv = bwd, fwd
	return fwd
}

// Provider returns the grid provider backing the shift.
func (g *GridShift) Provider() GridProvider { return g.provider }

// Transform shifts (latitude, longitude[, height]) in radians. The
// grid is loaded on first use.
func (g *GridShift) Transform(coord []float64) ([]float64, error) {
	if len(coord) < 2 {
		return nil, &op.DimensionError{Op: g.String(), Coord: coord, Expected: 2}
	}
	latDeg := units.Degree.FromReference(coord[0])
	lonDeg := units.Degree.FromReference(coord[1])

	g.mu.Lock()
	if !g.provider.IsLoaded() {
		if err := g.provider.Load(); err != nil {
			g.mu.Unlock()
			return nil, fmt.Errorf("%s: loading grid: %w", g.String(), err)
		}
	}
	var dLat, dLon float64
	var ok bool
	var err error
	if g.reversed {
		dLat, dLon, ok, err = g.provider.ReverseShift(latDeg, lonDeg)
	} else {
		dLat, dLon, ok, err = g.provider.ForwardShift(latDeg, lonDeg)
	}
	g.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.String(), err)
	}
	if !ok {
		if g.strict {
			return nil, &op.OutOfExtentError{Op: g.String(), Coord: coord}
		}
		return coord, nil
	}
	coord[0] += units.Degree.ToReference(dLat)
	coord[1] += units.Degree.ToReference(dLon)
	return coord, nil
}

// Inverse returns the shift in the opposite direction.
func (g *GridShift) Inverse() (op.Operation, error) { return g.inv, nil }

// IsIdentity returns false.
func (g *GridShift) IsIdentity() bool { return false }

// Equal reports whether other uses the same provider in the same
// direction.
func (g *GridShift) Equal(other op.Operation) bool {
	o, ok := other.(*GridShift)
	return ok && o.provider == g.provider && o.reversed == g.reversed
}

func (g *GridShift) String() string { return g.ID().Name }
