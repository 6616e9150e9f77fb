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

package datum

import (
	"errors"
	"math"
	"sync"
	"testing"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/cs"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/op/transform"
	"github.com/irstv/cts/units"
)

// mayotte builds the three Mayotte datums in a fresh registry: the two
// legacy local datums and RGM04, which coincides with WGS 84.
func mayotte(reg *Registry) (combani, cadastre, rgm04 *GeodeticDatum) {
	extent := cs.NewGeographicExtent("Mayotte", -14, -11, 43, 46)
	combani = New(reg,
		cts.NewIdentifier("EPSG", "6632", "Combani 1950"),
		geod.International1924, geod.Greenwich, extent,
		transform.NewBursaWolf(-599.928, -275.552, -195.665,
			-0.0835, -0.4715, 0.0602, 49.2814))
	cadastre = New(reg,
		cts.NewIdentifier("EPSG", "6475", "Cadastre 1997"),
		geod.International1924, geod.Greenwich, extent,
		transform.NewTranslation(-381.788, -57.501, -256.673))
	rgm04 = New(reg,
		cts.NewIdentifier("EPSG", "1036", "RGM04"),
		geod.GRS80, geod.Greenwich, extent, nil)
	return combani, cadastre, rgm04
}

func TestNewInternsEqualDatums(t *testing.T) {
	reg := NewRegistry()
	a, _, _ := mayotte(reg)
	b := New(reg,
		cts.NewIdentifier("EPSG", "6632", "Combani 1950"),
		geod.International1924, geod.Greenwich,
		cs.NewGeographicExtent("Mayotte", -14, -11, 43, 46),
		transform.NewBursaWolf(-599.928, -275.552, -195.665,
			-0.0835, -0.4715, 0.0602, 49.2814))
	if a != b {
		t.Error("registering an equal datum should return the existing instance")
	}
	if got := len(reg.Datums()); got != 4 {
		t.Errorf("registry holds %d datums, want 4 (reference + 3)", got)
	}
}

func TestGeocentricTransformationsDirect(t *testing.T) {
	reg := NewRegistry()
	combani, _, _ := mayotte(reg)

	// To the reference datum: the declared edge.
	ops, err := combani.GeocentricTransformations(reg.Reference())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 {
		t.Fatalf("got %d transformations, want 1", len(ops))
	}
	coord, err := op.NewGeographicToGeocentric(geod.International1924).
		Transform([]float64{units.Degree.ToReference(-12.791), units.Degree.ToReference(45.118), 0})
	if err != nil {
		t.Fatal(err)
	}
	coord, err = ops[0].Transform(coord)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{4389551.047, 4407994.483, -1403139.565}
	for i := range want {
		if math.Abs(coord[i]-want[i]) > 5e-3 {
			t.Errorf("ordinate %d = %.4f, want %.3f", i, coord[i], want[i])
		}
	}

	// Same datum: identity.
	ops, err = combani.GeocentricTransformations(combani)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || !ops[0].IsIdentity() {
		t.Errorf("same-datum transformations = %v, want a single identity", ops)
	}
}

func TestGeocentricTransformationsPivot(t *testing.T) {
	reg := NewRegistry()
	combani, cadastre, _ := mayotte(reg)

	ops, err := combani.GeocentricTransformations(cadastre)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 {
		t.Fatalf("got %d derived transformations, want 1", len(ops))
	}

	// The composition through the pivot must agree with applying both
	// legs by hand.
	coord := []float64{4385148.995, 4403925.962, -1402457.223}
	viaPivot, err := ops[0].Transform(append([]float64(nil), coord...))
	if err != nil {
		t.Fatal(err)
	}
	step, _ := combani.ToReference().Transform(append([]float64(nil), coord...))
	back, err := cadastre.ToReference().Inverse()
	if err != nil {
		t.Fatal(err)
	}
	step, _ = back.Transform(step)
	for i := range step {
		if math.Abs(viaPivot[i]-step[i]) > 1e-9 {
			t.Errorf("ordinate %d: pivot path %.6f, manual %.6f", i, viaPivot[i], step[i])
		}
	}

	// The derived edge is cached in both directions.
	again, err := combani.GeocentricTransformations(cadastre)
	if err != nil {
		t.Fatal(err)
	}
	if again[0] != ops[0] {
		t.Error("second lookup should return the cached instance")
	}
	if _, err := cadastre.GeocentricTransformations(combani); err != nil {
		t.Errorf("reverse direction should be cached too: %v", err)
	}
}

func TestGeographicTransformations(t *testing.T) {
	reg := NewRegistry()
	combani, _, rgm04 := mayotte(reg)

	ops, err := combani.GeographicTransformations(rgm04)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 {
		t.Fatalf("got %d transformations, want 1", len(ops))
	}
	coord, err := ops[0].Transform([]float64{
		units.Degree.ToReference(-12.791),
		units.Degree.ToReference(45.118),
		0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(units.Degree.FromReference(coord[0])-(-12.79352658)) > 5e-8 {
		t.Errorf("latitude = %.8f°, want -12.79352658°", units.Degree.FromReference(coord[0]))
	}
	if math.Abs(units.Degree.FromReference(coord[1])-45.12011640) > 5e-8 {
		t.Errorf("longitude = %.8f°, want 45.12011640°", units.Degree.FromReference(coord[1]))
	}

	if again, _ := combani.GeographicTransformations(rgm04); again[0] != ops[0] {
		t.Error("second lookup should return the cached instance")
	}
}

func TestGeographicTransformationsParisMeridian(t *testing.T) {
	// NTF (Paris) to NTF differs only by the prime meridian, so the
	// geographic transformation reduces to a longitude rotation: no
	// geocentric round trip, and latitude and height come back
	// untouched.
	ops, err := NTFParis.GeographicTransformations(NTF)
	if err != nil {
		t.Fatal(err)
	}
	seq, ok := ops[0].(*op.Sequence)
	if !ok {
		t.Fatalf("expected a sequence, got %T", ops[0])
	}
	for _, step := range seq.Operations() {
		if _, ok := step.(*op.LongitudeRotation); !ok {
			t.Fatalf("expected only longitude rotations, got %v", seq.Operations())
		}
	}
	lat, lon := units.Degree.ToReference(48), units.Degree.ToReference(2.5)
	coord, err := ops[0].Transform([]float64{lat, lon, 145.25})
	if err != nil {
		t.Fatal(err)
	}
	wantLon := lon + geod.Paris.FromGreenwich()
	if math.Abs(coord[1]-wantLon) > 1e-15 {
		t.Errorf("longitude = %.12f rad, want %.12f", coord[1], wantLon)
	}
	if coord[0] != lat || coord[2] != 145.25 {
		t.Errorf("latitude or height moved: %v", coord)
	}
}

func TestPivotCollapsesEqualLegs(t *testing.T) {
	// Two datums with the same transformation to the reference are
	// geocentrically coincident; the derived pivot operation must be
	// the identity, not a translation composed with its inverse.
	ops, err := NTFParis.GeocentricTransformations(NTF)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || !ops[0].IsIdentity() {
		t.Fatalf("derived operation = %v, want the identity", ops)
	}
}

func TestNoPath(t *testing.T) {
	reg := NewRegistry()
	// A datum whose edge to the reference cannot be inverted.
	rounded := New(reg,
		cts.NewLocalIdentifier("Datum", "rounded"),
		geod.International1924, geod.Greenwich, cs.World,
		op.NewCoordinateRounding(0.001))
	combani, _, _ := mayotte(reg)

	// No reverse edge from the reference.
	_, err := reg.Reference().GeocentricTransformations(rounded)
	var noPath *op.NoPathError
	if !errors.As(err, &noPath) {
		t.Fatalf("got %v, want a *op.NoPathError", err)
	}
	if noPath.Reason != "" {
		t.Errorf("unexpected reason %q for a missing edge", noPath.Reason)
	}

	// A pivot path whose return leg is not invertible.
	_, err = combani.GeocentricTransformations(rounded)
	if !errors.As(err, &noPath) {
		t.Fatalf("got %v, want a *op.NoPathError", err)
	}
	if noPath.Reason != "pivot leg is not invertible" {
		t.Errorf("reason = %q, want the non-invertible pivot leg", noPath.Reason)
	}
}

func TestAddGeocentricTransformationDedup(t *testing.T) {
	reg := NewRegistry()
	combani, cadastre, _ := mayotte(reg)
	tr := transform.NewTranslation(1, 2, 3)
	combani.AddGeocentricTransformation(cadastre, tr)
	combani.AddGeocentricTransformation(cadastre, transform.NewTranslation(1, 2, 3))
	ops, err := combani.GeocentricTransformations(cadastre)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 {
		t.Errorf("got %d transformations after duplicate registration, want 1", len(ops))
	}
	// The inverse edge was registered on the target.
	ops, err = cadastre.GeocentricTransformations(combani)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 {
		t.Errorf("got %d reverse transformations, want 1", len(ops))
	}
}

func TestGridTransformations(t *testing.T) {
	reg := NewRegistry()
	combani, _, rgm04 := mayotte(reg)
	gs := transform.NewGridShift("mayotte", stubProvider{}, 0.05, false)
	combani.AddGridTransformation(rgm04, gs)
	combani.AddGridTransformation(rgm04, gs)

	if got := combani.GridTransformations(rgm04); len(got) != 1 || got[0] != gs {
		t.Errorf("grid transformations = %v, want the registered shift once", got)
	}
	rev := rgm04.GridTransformations(combani)
	if len(rev) != 1 {
		t.Fatalf("got %d reverse grid shifts, want 1", len(rev))
	}
	if inv, _ := rev[0].Inverse(); inv != op.Operation(gs) {
		t.Error("the reverse registration should be the inverse of the original shift")
	}
}

func TestRemoveAllTransformations(t *testing.T) {
	reg := NewRegistry()
	combani, cadastre, rgm04 := mayotte(reg)
	combani.AddGeocentricTransformation(cadastre, transform.NewTranslation(1, 2, 3))
	combani.AddGridTransformation(rgm04, transform.NewGridShift("mayotte", stubProvider{}, 0.05, false))
	if _, err := combani.GeographicTransformations(rgm04); err != nil {
		t.Fatal(err)
	}

	reg.RemoveAllTransformations()

	if got := combani.GridTransformations(rgm04); len(got) != 0 {
		t.Errorf("grid shifts survived the reset: %v", got)
	}
	ops, err := combani.GeocentricTransformations(cadastre)
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range ops {
		if o.Equal(transform.NewTranslation(1, 2, 3)) {
			t.Error("manually added edge survived the reset")
		}
	}
	// The construction-time edges are back.
	if _, err := combani.GeocentricTransformations(reg.Reference()); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	reg := NewRegistry()
	err := Load(reg, `
[[ellipsoid]]
id = "EPSG:7012"
name = "Clarke 1880 (RGS)"
a = 6378249.145
rf = 293.465

[[datum]]
id = "EPSG:6601"
name = "Antigua 1943"
ellipsoid = "Clarke 1880 (RGS)"
towgs84 = [-255.0, -15.0, 71.0]
extent = [16.9, 17.2, -62.0, -61.6]

[[datum]]
id = "EPSG:6807"
name = "Nouvelle Triangulation Francaise (Paris)"
ellipsoid = "Clarke 1880 (IGN)"
meridian = 2.33722917
towgs84 = [-168.0, -60.0, 320.0]
`)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := reg.FindDatum(cts.NewIdentifier("EPSG", "6601", ""))
	if !ok {
		t.Fatal("Antigua 1943 not registered")
	}
	if got := d.Ellipsoid().SemiMajorAxis(); got != 6378249.145 {
		t.Errorf("semi-major axis = %v", got)
	}
	if !d.ToReference().Equal(transform.NewTranslation(-255, -15, 71)) {
		t.Error("towgs84 translation not registered as the reference edge")
	}
	if !d.Extent().IsInside(17.0, -61.8) {
		t.Error("extent does not cover the declared rectangle")
	}

	paris, ok := reg.FindDatum(cts.NewIdentifier("EPSG", "6807", ""))
	if !ok {
		t.Fatal("NTF (Paris) not registered")
	}
	if math.Abs(paris.PrimeMeridian().FromGreenwich()-units.Degree.ToReference(2.33722917)) > 1e-9 {
		t.Errorf("prime meridian = %v rad", paris.PrimeMeridian().FromGreenwich())
	}
}

func TestLoadErrors(t *testing.T) {
	var defErr *DefinitionError
	err := Load(NewRegistry(), `
[[datum]]
name = "broken"
ellipsoid = "No Such Ellipsoid"
`)
	if !errors.As(err, &defErr) {
		t.Fatalf("got %v, want a *DefinitionError", err)
	}
	err = Load(NewRegistry(), `
[[datum]]
name = "broken"
ellipsoid = "WGS 84"
towgs84 = [1.0, 2.0]
`)
	if !errors.As(err, &defErr) || defErr.Kind != "datum" {
		t.Fatalf("got %v, want a datum *DefinitionError", err)
	}
	if err := Load(NewRegistry(), "[[ellipsoid]]\nname = 3\n"); err == nil {
		t.Error("malformed TOML should be rejected")
	}
}

func TestWellKnownDatums(t *testing.T) {
	if WGS84 != Default.Reference() {
		t.Error("WGS84 should be the default registry reference")
	}
	if NTF.Ellipsoid() != geod.Clarke1880IGN || NTFParis.PrimeMeridian() != geod.Paris {
		t.Error("NTF datums carry the wrong ellipsoid or meridian")
	}
	if !RGF93.ToReference().IsIdentity() {
		t.Error("RGF93 should coincide with the reference datum")
	}
}

// stubProvider is a GridProvider that never covers anything.
type stubProvider struct{}

func (stubProvider) ForwardShift(lat, lon float64) (float64, float64, bool, error) {
	return 0, 0, false, nil
}
func (stubProvider) ReverseShift(lat, lon float64) (float64, float64, bool, error) {
	return 0, 0, false, nil
}
func (stubProvider) IsLoaded() bool { return true }
func (stubProvider) Load() error    { return nil }
func (stubProvider) Unload() error  { return nil }

func TestTransformationsConcurrent(t *testing.T) {
	reg := NewRegistry()
	combani, cadastre, rgm04 := mayotte(reg)
	datums := []*GeodeticDatum{combani, cadastre, rgm04}
	var wg sync.WaitGroup
	errs := make(chan error, 8*len(datums)*len(datums))
	for i := 0; i < 8; i++ {
		for _, from := range datums {
			for _, to := range datums {
				wg.Add(1)
				go func(from, to *GeodeticDatum) {
					defer wg.Done()
					if _, err := from.GeocentricTransformations(to); err != nil {
						errs <- err
					}
					if _, err := from.GeographicTransformations(to); err != nil {
						errs <- err
					}
				}(from, to)
			}
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	// All goroutines derived against the same caches: a plain lookup
	// now sees exactly one stored instance per direct edge.
	ops, err := combani.GeocentricTransformations(rgm04)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 {
		t.Errorf("got %d cached transformations, want 1", len(ops))
	}
}
