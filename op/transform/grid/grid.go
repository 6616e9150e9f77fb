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

// Package grid implements in-memory datum shift grids interpolated
// bilinearly, the data model behind NTv2-style transformations.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// reverseIter is the number of fixed-point refinements used to invert
// the grid interpolation, as in NTv2 reverse shifting.
const reverseIter = 4

// GeographicGrid is a regular grid of (dLat, dLon) shifts in decimal
// degrees covering a latitude/longitude rectangle. Nodes are stored
// row-major from the south-west corner. The zero value is not usable;
// build grids with NewGeographicGrid or NewLazyGrid.
//
// GeographicGrid performs no locking; transform.GridShift serializes
// access to it.
type GeographicGrid struct {
	name        string
	south, west float64 // of the south-west node, degrees
	stepLat     float64 // degrees between rows
	stepLon     float64 // degrees between columns
	nLat, nLon  int     // node counts
	shifts      [][2]float64
	loaded      bool
	loader      func() ([][2]float64, error)
}

// NewGeographicGrid builds a grid from shifts already in memory.
// shifts must hold nLat*nLon nodes row-major from the south-west
// corner, each node being {dLat, dLon} in decimal degrees.
func NewGeographicGrid(name string, south, west, stepLat, stepLon float64, nLat, nLon int, shifts [][2]float64) (*GeographicGrid, error) {
	// Bilinear interpolation needs a full cell, so at least two nodes
	// along each axis.
	if nLat < 2 || nLon < 2 {
		return nil, fmt.Errorf("grid %s: %dx%d nodes, need at least 2x2", name, nLat, nLon)
	}
	if len(shifts) != nLat*nLon {
		return nil, fmt.Errorf("grid %s: %d nodes for a %dx%d grid", name, len(shifts), nLat, nLon)
	}
	return &GeographicGrid{
		name: name, south: south, west: west,
		stepLat: stepLat, stepLon: stepLon,
		nLat: nLat, nLon: nLon,
		shifts: shifts, loaded: true,
	}, nil
}

// NewLazyGrid builds a grid whose nodes are produced by load on first
// use. Unload releases the nodes; a later use loads them again.
func NewLazyGrid(name string, south, west, stepLat, stepLon float64, nLat, nLon int, load func() ([][2]float64, error)) (*GeographicGrid, error) {
	if nLat < 2 || nLon < 2 {
		return nil, fmt.Errorf("grid %s: %dx%d nodes, need at least 2x2", name, nLat, nLon)
	}
	return &GeographicGrid{
		name: name, south: south, west: west,
		stepLat: stepLat, stepLon: stepLon,
		nLat: nLat, nLon: nLon,
		loader: load,
	}, nil
}

// Name returns the grid name.
func (g *GeographicGrid) Name() string { return g.name }

// IsLoaded reports whether the grid nodes are in memory.
func (g *GeographicGrid) IsLoaded() bool { return g.loaded }

// Load fetches the grid nodes. Loading an already loaded grid is a
// no-op.
func (g *GeographicGrid) Load() error {
	if g.loaded {
		return nil
	}
	if g.loader == nil {
		return fmt.Errorf("grid %s: no loader", g.name)
	}
	shifts, err := g.loader()
	if err != nil {
		return fmt.Errorf("grid %s: %w", g.name, err)
	}
	if len(shifts) != g.nLat*g.nLon {
		return fmt.Errorf("grid %s: loader produced %d nodes for a %dx%d grid",
			g.name, len(shifts), g.nLat, g.nLon)
	}
	g.shifts = shifts
	g.loaded = true
	return nil
}

// Unload releases the grid nodes if they can be loaded again.
func (g *GeographicGrid) Unload() error {
	if g.loader != nil {
		g.shifts = nil
		g.loaded = false
	}
	return nil
}

// ForwardShift bilinearly interpolates the shift at (lat, lon).
func (g *GeographicGrid) ForwardShift(lat, lon float64) (float64, float64, bool, error) {
	if !g.loaded {
		return 0, 0, false, errors.New("grid " + g.name + " is not loaded")
	}
	i := (lat - g.south) / g.stepLat
	j := (g.normalizeLon(lon) - g.west) / g.stepLon
	if i < 0 || i > float64(g.nLat-1) || j < 0 || j > float64(g.nLon-1) {
		return 0, 0, false, nil
	}
	i0 := int(math.Floor(i))
	j0 := int(math.Floor(j))
	if i0 > g.nLat-2 {
		i0 = g.nLat - 2
	}
	if j0 > g.nLon-2 {
		j0 = g.nLon - 2
	}
	fi := i - float64(i0)
	fj := j - float64(j0)
	sw := g.shifts[i0*g.nLon+j0]
	se := g.shifts[i0*g.nLon+j0+1]
	nw := g.shifts[(i0+1)*g.nLon+j0]
	ne := g.shifts[(i0+1)*g.nLon+j0+1]
	dLat := (1-fi)*((1-fj)*sw[0]+fj*se[0]) + fi*((1-fj)*nw[0]+fj*ne[0])
	dLon := (1-fi)*((1-fj)*sw[1]+fj*se[1]) + fi*((1-fj)*nw[1]+fj*ne[1])
	return dLat, dLon, true, nil
}

// ReverseShift finds the offset undoing the forward shift at a point
// already shifted, by a short fixed-point iteration.
func (g *GeographicGrid) ReverseShift(lat, lon float64) (float64, float64, bool, error) {
	dLat, dLon, ok, err := g.ForwardShift(lat, lon)
	if err != nil || !ok {
		return 0, 0, ok, err
	}
	for n := 0; n < reverseIter; n++ {
		dLat, dLon, ok, err = g.ForwardShift(lat-dLat, lon-dLon)
		if err != nil || !ok {
			return 0, 0, ok, err
		}
	}
	return -dLat, -dLon, true, nil
}

func (g *GeographicGrid) normalizeLon(lon float64) float64 {
	east := g.west + float64(g.nLon-1)*g.stepLon
	for lon > east {
		lon -= 360
	}
	for lon < g.west {
		lon += 360
	}
	return lon
}

func (g *GeographicGrid) String() string { return g.name }
