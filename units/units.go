/*
Copyright © 2019 the CTS authors.
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

// Package units defines the measurement units used for coordinates and
// operation parameters. Every unit carries a scale factor to the
// reference unit of its quantity (meter for lengths, radian for
// angles), so converting between units of the same quantity is a
// single multiplication.
package units

import "math"

// Quantity is the physical quantity measured by a unit. Units are only
// convertible within the same quantity.
type Quantity string

const (
	Length        Quantity = "Length"
	Angle         Quantity = "Angle"
	Dimensionless Quantity = "Dimensionless"
	Time          Quantity = "Time"
)

// Unit is a measurement unit. Scale is the factor from this unit to
// the reference unit of its quantity; e.g. Degree.Scale is π/180
// because one degree is π/180 radians.
type Unit struct {
	Quantity Quantity
	Name     string
	Scale    float64
}

// Length units.
var (
	Meter      = Unit{Length, "meter", 1}
	Millimeter = Unit{Length, "millimeter", 0.001}
	Kilometer  = Unit{Length, "kilometer", 1000}
	Foot       = Unit{Length, "foot", 0.3048}
	USFoot     = Unit{Length, "foot_us", 1200.0 / 3937.0}
)

// Angle units.
var (
	Radian    = Unit{Angle, "radian", 1}
	Degree    = Unit{Angle, "degree", math.Pi / 180}
	Grad      = Unit{Angle, "grad", math.Pi / 200}
	ArcSecond = Unit{Angle, "second", math.Pi / 648000}
)

// Dimensionless units.
var (
	Unity = Unit{Dimensionless, "unity", 1}
	PPM   = Unit{Dimensionless, "parts per million", 1e-6}
)

// Time units.
var (
	Second = Unit{Time, "second", 1}
	Year   = Unit{Time, "year", 31556925.445}
)

// Comparable reports whether values can be converted between u and v.
func (u Unit) Comparable(v Unit) bool {
	return u.Quantity == v.Quantity
}

// ToReference converts a value in u to the reference unit of u's
// quantity.
func (u Unit) ToReference(v float64) float64 {
	return v * u.Scale
}

// FromReference converts a value in the reference unit of u's quantity
// to u.
func (u Unit) FromReference(v float64) float64 {
	return v / u.Scale
}

func (u Unit) String() string { return u.Name }

// Measure is a value tagged with its unit, used for operation
// parameters such as a central meridian given in degrees.
type Measure struct {
	Value float64
	Unit  Unit
}

// NewMeasure returns a measure of v in unit u.
func NewMeasure(v float64, u Unit) Measure { return Measure{Value: v, Unit: u} }

// Reference returns the value converted to the reference unit of the
// measure's quantity (radians for angles, meters for lengths).
func (m Measure) Reference() float64 { return m.Unit.ToReference(m.Value) }
