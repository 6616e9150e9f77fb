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

import "github.com/irstv/cts/units"

// Direction is the direction a coordinate axis points.
type Direction string

const (
	East  Direction = "EAST"
	West  Direction = "WEST"
	North Direction = "NORTH"
	South Direction = "SOUTH"
	Up    Direction = "UP"
	Down  Direction = "DOWN"
	X     Direction = "X"
	Y     Direction = "Y"
	Z     Direction = "Z"
)

// Axis is one axis of a coordinate system.
type Axis struct {
	Name      string
	Direction Direction
}

// Common axes.
var (
	LatitudeAxis  = Axis{"latitude", North}
	LongitudeAxis = Axis{"longitude", East}
	HeightAxis    = Axis{"ellipsoidal height", Up}
	EastingAxis   = Axis{"easting", East}
	NorthingAxis  = Axis{"northing", North}
	XAxis         = Axis{"X", X}
	YAxis         = Axis{"Y", Y}
	ZAxis         = Axis{"Z", Z}
)

// CoordinateSystem is an ordered list of axes with their units.
type CoordinateSystem struct {
	axes  []Axis
	units []units.Unit
}

// NewCoordinateSystem pairs axes with units; the slices must have the
// same length.
func NewCoordinateSystem(axes []Axis, u []units.Unit) CoordinateSystem {
	if len(axes) != len(u) {
		panic("cs: axis and unit counts differ")
	}
	return CoordinateSystem{axes: axes, units: u}
}

// Dimension returns the number of axes.
func (c CoordinateSystem) Dimension() int { return len(c.axes) }

// Axis returns the i-th axis.
func (c CoordinateSystem) Axis(i int) Axis { return c.axes[i] }

// Unit returns the unit of the i-th axis.
func (c CoordinateSystem) Unit(i int) units.Unit { return c.units[i] }

// Units returns the units of all axes in order.
func (c CoordinateSystem) Units() []units.Unit {
	out := make([]units.Unit, len(c.units))
	copy(out, c.units)
	return out
}

// Index returns the position of the axis pointing in direction d, or
// -1 if the system has no such axis.
func (c CoordinateSystem) Index(d Direction) int {
	for i, a := range c.axes {
		if a.Direction == d {
			return i
		}
	}
	return -1
}

// Equal reports whether two coordinate systems have the same axes in
// the same order with the same units.
func (c CoordinateSystem) Equal(o CoordinateSystem) bool {
	if len(c.axes) != len(o.axes) {
		return false
	}
	for i := range c.axes {
		if c.axes[i] != o.axes[i] || c.units[i] != o.units[i] {
			return false
		}
	}
	return true
}
