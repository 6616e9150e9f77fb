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

package grid

import (
	"math"
	"testing"
)

// testGrid covers [40,42]x[2,4]° with 3x3 nodes whose shifts grow
// linearly, so bilinear interpolation reproduces them exactly.
func testGrid(t *testing.T) *GeographicGrid {
	t.Helper()
	shifts := make([][2]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			shifts = append(shifts, [2]float64{
				1e-4 * (float64(i) + 2*float64(j)),
				-1e-4 * (2*float64(i) + float64(j)),
			})
		}
	}
	g, err := NewGeographicGrid("test", 40, 2, 1, 1, 3, 3, shifts)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestForwardShiftInterpolation(t *testing.T) {
	g := testGrid(t)

	// On a node.
	dLat, dLon, ok, err := g.ForwardShift(41, 3)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if math.Abs(dLat-3e-4) > 1e-15 || math.Abs(dLon+3e-4) > 1e-15 {
		t.Errorf("shift at node = (%g, %g), want (3e-4, -3e-4)", dLat, dLon)
	}

	// Between nodes a linear field interpolates exactly.
	dLat, dLon, ok, _ = g.ForwardShift(40.25, 2.75)
	if !ok {
		t.Fatal("point inside the grid reported as uncovered")
	}
	wantLat := 1e-4 * (0.25 + 2*0.75)
	wantLon := -1e-4 * (2*0.25 + 0.75)
	if math.Abs(dLat-wantLat) > 1e-15 || math.Abs(dLon-wantLon) > 1e-15 {
		t.Errorf("interpolated shift = (%g, %g), want (%g, %g)", dLat, dLon, wantLat, wantLon)
	}

	// Outside the coverage.
	if _, _, ok, _ = g.ForwardShift(45, 3); ok {
		t.Error("point north of the grid reported as covered")
	}
	// Longitudes wrap modulo 360.
	dLat2, _, ok, _ := g.ForwardShift(41, 3-360)
	if !ok || math.Abs(dLat2-3e-4) > 1e-15 {
		t.Errorf("wrapped longitude: ok=%v dLat=%g", ok, dLat2)
	}
}

func TestReverseShift(t *testing.T) {
	g := testGrid(t)
	lat, lon := 40.6, 3.4
	dLat, dLon, ok, err := g.ForwardShift(lat, lon)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	rLat, rLon, ok, err := g.ReverseShift(lat+dLat, lon+dLon)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if math.Abs(lat+dLat+rLat-lat) > 1e-12 || math.Abs(lon+dLon+rLon-lon) > 1e-12 {
		t.Errorf("reverse shift leaves residual (%g, %g)",
			lat+dLat+rLat-lat, lon+dLon+rLon-lon)
	}
}

func TestLazyLoadUnload(t *testing.T) {
	loads := 0
	g, err := NewLazyGrid("lazy", 40, 2, 1, 1, 2, 2, func() ([][2]float64, error) {
		loads++
		return [][2]float64{{1e-4, 0}, {1e-4, 0}, {1e-4, 0}, {1e-4, 0}}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.IsLoaded() {
		t.Fatal("lazy grid reports loaded before first use")
	}
	if _, _, _, err := g.ForwardShift(40.5, 2.5); err == nil {
		t.Error("shifting an unloaded grid should fail")
	}
	if err := g.Load(); err != nil {
		t.Fatal(err)
	}
	if err := g.Load(); err != nil {
		t.Fatal(err)
	}
	if loads != 1 {
		t.Errorf("loader called %d times, want 1", loads)
	}
	dLat, _, ok, err := g.ForwardShift(40.5, 2.5)
	if err != nil || !ok || dLat != 1e-4 {
		t.Errorf("after load: dLat=%g ok=%v err=%v", dLat, ok, err)
	}
	if err := g.Unload(); err != nil {
		t.Fatal(err)
	}
	if g.IsLoaded() {
		t.Error("grid still loaded after Unload")
	}
	if err := g.Load(); err != nil {
		t.Fatal(err)
	}
	if loads != 2 {
		t.Errorf("loader called %d times after reload, want 2", loads)
	}
}

func TestNewGeographicGridValidation(t *testing.T) {
	if _, err := NewGeographicGrid("bad", 0, 0, 1, 1, 3, 3, make([][2]float64, 8)); err == nil {
		t.Error("a node count mismatch should be rejected")
	}
	// A single row or column leaves no cell to interpolate in and
	// would index out of range.
	if _, err := NewGeographicGrid("row", 0, 0, 1, 1, 1, 3, make([][2]float64, 3)); err == nil {
		t.Error("a single-row grid should be rejected")
	}
	if _, err := NewGeographicGrid("col", 0, 0, 1, 1, 3, 1, make([][2]float64, 3)); err == nil {
		t.Error("a single-column grid should be rejected")
	}
	if _, err := NewLazyGrid("lazycol", 0, 0, 1, 1, 3, 1, nil); err == nil {
		t.Error("a single-column lazy grid should be rejected")
	}
}
