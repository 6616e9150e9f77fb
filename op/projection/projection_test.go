/*
Copyright © 2017 the CTS authors.
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

package projection

import (
	"math"
	"testing"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/units"
)

func rad(deg float64) float64 { return units.Degree.ToReference(deg) }

// TestMercatorMakassar projects a point in the Makassar / NEIEZ zone
// (EPSG 3002, Bessel 1841) and checks it against published values.
func TestMercatorMakassar(t *testing.T) {
	p := NewMercator1SP(
		cts.NewIdentifier("EPSG", "3002", "Makassar / NEIEZ"),
		geod.Bessel1841, Parameters{
			CentralMeridian: units.NewMeasure(110, units.Degree),
			ScaleFactor:     0.997,
			FalseEasting:    3900000,
			FalseNorthing:   900000,
		})
	coord, err := p.Transform([]float64{rad(-3), rad(120)})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coord[0]-5009726.583) > 0.1 || math.Abs(coord[1]-569150.819) > 0.1 {
		t.Errorf("projected = (%.3f, %.3f), want (5009726.583, 569150.819)", coord[0], coord[1])
	}

	inv, err := p.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	coord, err = inv.Transform(coord)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coord[0]-rad(-3)) > 1e-9 || math.Abs(coord[1]-rad(120)) > 1e-9 {
		t.Errorf("unprojected = (%.9f°, %.9f°)",
			units.Degree.FromReference(coord[0]), units.Degree.FromReference(coord[1]))
	}
}

// TestUTM38South checks UTM zone 38S on International 1924 against the
// IGN reference values for the Mayotte point COMBANI.
func TestUTM38South(t *testing.T) {
	p := NewUTM(geod.International1924, 38, false)
	coord, err := p.Transform([]float64{rad(-12.791), rad(45.118)})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coord[0]-512807.225) > 5e-3 || math.Abs(coord[1]-8585957.337) > 5e-3 {
		t.Errorf("projected = (%.4f, %.4f), want (512807.225, 8585957.337)", coord[0], coord[1])
	}

	inv, err := p.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	coord, err = inv.Transform(coord)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coord[0]-rad(-12.791)) > 1e-9 || math.Abs(coord[1]-rad(45.118)) > 1e-9 {
		t.Errorf("round trip off by (%g, %g) rad", coord[0]-rad(-12.791), coord[1]-rad(45.118))
	}
}

func TestUTMZoneConstants(t *testing.T) {
	p := NewUTM(geod.WGS84Ellipsoid, 31, true)
	params := p.Parameters()
	if got := units.Degree.FromReference(params.CentralMeridian.Reference()); math.Abs(got-3) > 1e-12 {
		t.Errorf("zone 31 central meridian = %g°, want 3°", got)
	}
	if params.ScaleFactor != 0.9996 || params.FalseEasting != 500000 || params.FalseNorthing != 0 {
		t.Errorf("unexpected northern UTM constants: %+v", params)
	}
	if s := NewUTM(geod.WGS84Ellipsoid, 31, false); s.Parameters().FalseNorthing != 10000000 {
		t.Error("southern UTM should have a 10000000 m false northing")
	}
}

// TestLambertFalseOrigin checks that both Lambert flavors map the
// projection origin to the false origin.
func TestLambertFalseOrigin(t *testing.T) {
	lat0 := units.Grad.ToReference(55)
	coord, err := Lambert1.Transform([]float64{lat0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coord[0]-600000) > 1e-6 || math.Abs(coord[1]-200000) > 1e-6 {
		t.Errorf("Lambert I origin = (%.6f, %.6f), want (600000, 200000)", coord[0], coord[1])
	}

	coord, err = Lambert93.Transform([]float64{rad(46.5), rad(3)})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coord[0]-700000) > 1e-6 || math.Abs(coord[1]-6600000) > 1e-6 {
		t.Errorf("Lambert 93 origin = (%.6f, %.6f), want (700000, 6600000)", coord[0], coord[1])
	}
}

func TestLambertRoundTrip(t *testing.T) {
	for _, p := range []Projection{Lambert1, Lambert2, Lambert2Etendu, Lambert93} {
		lat, lon := rad(47.2), rad(1.4)
		coord, err := p.Transform([]float64{lat, lon})
		if err != nil {
			t.Fatal(err)
		}
		inv, err := p.Inverse()
		if err != nil {
			t.Fatal(err)
		}
		coord, err = inv.Transform(coord)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(coord[0]-lat) > 1e-9 || math.Abs(coord[1]-lon) > 1e-9 {
			t.Errorf("%s: round trip off by (%g, %g) rad", p, coord[0]-lat, coord[1]-lon)
		}
	}
}

func TestLambertAzimuthalEqualArea(t *testing.T) {
	// ETRS89-extended / LAEA Europe (EPSG 3035).
	p := NewLambertAzimuthalEqualArea(
		cts.NewIdentifier("EPSG", "3035", "ETRS89-extended / LAEA Europe"),
		geod.GRS80, Parameters{
			LatitudeOfOrigin: units.NewMeasure(52, units.Degree),
			CentralMeridian:  units.NewMeasure(10, units.Degree),
			FalseEasting:     4321000,
			FalseNorthing:    3210000,
		})

	coord, err := p.Transform([]float64{rad(52), rad(10)})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coord[0]-4321000) > 1e-6 || math.Abs(coord[1]-3210000) > 1e-6 {
		t.Errorf("projection center = (%.6f, %.6f), want the false origin", coord[0], coord[1])
	}

	lat, lon := rad(50), rad(14)
	coord, err = p.Transform([]float64{lat, lon})
	if err != nil {
		t.Fatal(err)
	}
	inv, err := p.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	coord, err = inv.Transform(coord)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coord[0]-lat) > 1e-9 || math.Abs(coord[1]-lon) > 1e-9 {
		t.Errorf("round trip off by (%g, %g) rad", coord[0]-lat, coord[1]-lon)
	}
}

func TestProjectionInverseInvolution(t *testing.T) {
	for _, p := range []Projection{
		Lambert93,
		NewUTM(geod.WGS84Ellipsoid, 31, true),
	} {
		inv, err := p.Inverse()
		if err != nil {
			t.Fatal(err)
		}
		back, err := inv.Inverse()
		if err != nil {
			t.Fatal(err)
		}
		if back != op.Operation(p) {
			t.Errorf("%s: inverting twice should return the original instance", p)
		}
		if inv.IsIdentity() {
			t.Errorf("%s: inverse projections are never identities", p)
		}
	}
}

func TestProjectionHeightPassThrough(t *testing.T) {
	coord, err := Lambert93.Transform([]float64{rad(46.5), rad(3), 120.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(coord) != 3 || coord[2] != 120.5 {
		t.Errorf("height not preserved: %v", coord)
	}
}

func TestProjectionDimensionError(t *testing.T) {
	if _, err := Lambert93.Transform([]float64{1}); err == nil {
		t.Error("a 1D coordinate should be rejected")
	}
}
