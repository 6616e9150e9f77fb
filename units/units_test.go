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

package units

import (
	"math"
	"testing"
)

func TestAngleScales(t *testing.T) {
	tests := []struct {
		unit Unit
		in   float64
		want float64 // radians
	}{
		{Degree, 180, math.Pi},
		{Grad, 200, math.Pi},
		{Grad, 52, 0.8168140899333463},
		{ArcSecond, 3600, math.Pi / 180},
		{Radian, 1, 1},
	}
	for _, test := range tests {
		got := test.unit.ToReference(test.in)
		if math.Abs(got-test.want) > 1e-15 {
			t.Errorf("%g %s = %g rad, want %g", test.in, test.unit, got, test.want)
		}
		back := test.unit.FromReference(got)
		if math.Abs(back-test.in) > 1e-12 {
			t.Errorf("round trip of %g %s gave %g", test.in, test.unit, back)
		}
	}
}

func TestComparable(t *testing.T) {
	if Degree.Comparable(Meter) {
		t.Error("degree and meter should not be comparable")
	}
	if !Foot.Comparable(Kilometer) {
		t.Error("foot and kilometer should be comparable")
	}
}

func TestMeasure(t *testing.T) {
	m := NewMeasure(2.5969213, Grad)
	want := 2.33722917 * math.Pi / 180
	if math.Abs(m.Reference()-want) > 1e-10 {
		t.Errorf("Paris meridian = %g rad, want %g", m.Reference(), want)
	}
}

func TestUSFoot(t *testing.T) {
	if got := USFoot.ToReference(3937); math.Abs(got-1200) > 1e-9 {
		t.Errorf("3937 US feet = %g m, want 1200", got)
	}
}
