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

package cs

import (
	"testing"

	"github.com/irstv/cts/units"
)

func TestExtentInside(t *testing.T) {
	france := NewGeographicExtent("France", 41, 52, -5.5, 10)
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{48.85, 2.35, true},
		{41, -5.5, true},  // corner included
		{52, 10, true},    // corner included
		{55, 2, false},    // too far north
		{45, 12, false},   // too far east
		{45, 354.5, true}, // longitude modulo 360
	}
	for _, test := range tests {
		if got := france.IsInside(test.lat, test.lon); got != test.want {
			t.Errorf("IsInside(%g, %g) = %v, want %v", test.lat, test.lon, got, test.want)
		}
	}
}

func TestExtentAntimeridian(t *testing.T) {
	fiji := NewGeographicExtent("Fiji", -21, -12, 176, -178)
	if !fiji.IsInside(-18, 179) {
		t.Error("179°E should be inside a 176..-178 extent")
	}
	if !fiji.IsInside(-18, -179) {
		t.Error("-179°E should be inside a 176..-178 extent")
	}
	if fiji.IsInside(-18, 170) {
		t.Error("170°E should be outside a 176..-178 extent")
	}
}

func TestExtentEqual(t *testing.T) {
	a := NewGeographicExtent("a", 41, 52, -5.5, 10)
	b := NewGeographicExtent("b", 41, 52, -5.5, 10)
	if !a.Equal(b) {
		t.Error("extents with the same bounds should be equal whatever their names")
	}
	if a.Equal(World) {
		t.Error("France should not equal the world extent")
	}
}

func TestCoordinateSystem(t *testing.T) {
	sys := NewCoordinateSystem(
		[]Axis{LongitudeAxis, LatitudeAxis},
		[]units.Unit{units.Degree, units.Degree})
	if sys.Dimension() != 2 {
		t.Fatalf("dimension = %d", sys.Dimension())
	}
	if sys.Index(East) != 0 || sys.Index(North) != 1 {
		t.Errorf("axis indices = %d, %d", sys.Index(East), sys.Index(North))
	}
	if sys.Index(Up) != -1 {
		t.Errorf("Index(Up) = %d, want -1", sys.Index(Up))
	}
	latLon := NewCoordinateSystem(
		[]Axis{LatitudeAxis, LongitudeAxis},
		[]units.Unit{units.Degree, units.Degree})
	if sys.Equal(latLon) {
		t.Error("lon/lat and lat/lon systems should differ")
	}
}
