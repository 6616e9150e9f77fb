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

// Package cs holds coordinate-system metadata: axis descriptions and
// the geographic area over which a datum or transformation is valid.
package cs

import (
	"fmt"

	"github.com/ctessum/geom"
)

// GeographicExtent is a latitude/longitude rectangle in decimal
// degrees. Longitudes are interpreted modulo 360 so an extent may
// cross the antimeridian (west = 170, east = -170 covers 20 degrees).
type GeographicExtent struct {
	Name   string
	bounds geom.Bounds
}

// World covers the whole planet.
var World = NewGeographicExtent("World", -90, 90, -180, 180)

// NewGeographicExtent builds an extent from bounds in decimal degrees.
// If east is numerically smaller than west it is shifted by 360 so the
// extent wraps around the antimeridian.
func NewGeographicExtent(name string, south, north, west, east float64) GeographicExtent {
	if east < west {
		east += 360
	}
	return GeographicExtent{
		Name: name,
		bounds: geom.Bounds{
			Min: geom.Point{X: west, Y: south},
			Max: geom.Point{X: east, Y: north},
		},
	}
}

// Bounds returns the extent rectangle with the west edge as Min.X. The
// east edge may exceed 180 when the extent wraps.
func (e GeographicExtent) Bounds() geom.Bounds { return e.bounds }

// IsInside reports whether the point at (lat, lon) in decimal degrees
// lies within the extent.
func (e GeographicExtent) IsInside(lat, lon float64) bool {
	if lat < e.bounds.Min.Y || lat > e.bounds.Max.Y {
		return false
	}
	for lon > e.bounds.Max.X {
		lon -= 360
	}
	for lon < e.bounds.Min.X {
		lon += 360
	}
	return lon <= e.bounds.Max.X
}

// Equal reports whether two extents cover the same rectangle. The name
// carries no identity.
func (e GeographicExtent) Equal(o GeographicExtent) bool {
	return e.bounds == o.bounds
}

func (e GeographicExtent) String() string {
	return fmt.Sprintf("%s [%g %g %g %g]", e.Name,
		e.bounds.Min.Y, e.bounds.Max.Y, e.bounds.Min.X, e.bounds.Max.X)
}
