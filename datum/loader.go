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

package datum

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/cs"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op"
	"github.com/irstv/cts/op/transform"
	"github.com/irstv/cts/units"
)

// DefinitionError reports a malformed ellipsoid or datum definition in
// a registry file.
type DefinitionError struct {
	Kind   string
	Name   string
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("malformed %s definition %q: %s", e.Kind, e.Name, e.Reason)
}

// registryFile is the TOML schema of a datum registry file.
type registryFile struct {
	Ellipsoid []ellipsoidDef `toml:"ellipsoid"`
	Datum     []datumDef     `toml:"datum"`
}

type ellipsoidDef struct {
	ID   string  `toml:"id"` // "AUTHORITY:CODE", optional
	Name string  `toml:"name"`
	A    float64 `toml:"a"`
	RF   float64 `toml:"rf"` // inverse flattening, or
	B    float64 `toml:"b"`  // semi-minor axis
}

type datumDef struct {
	ID        string    `toml:"id"`
	Name      string    `toml:"name"`
	Ellipsoid string    `toml:"ellipsoid"` // name of a file or well-known ellipsoid
	Meridian  float64   `toml:"meridian"`  // degrees east of Greenwich
	ToWGS84   []float64 `toml:"towgs84"`   // 3 or 7 parameters, optional
	Extent    []float64 `toml:"extent"`    // south, north, west, east; optional
}

// Load reads datum definitions in TOML from doc into the registry.
// Definitions may reference the well-known ellipsoids of package geod
// by name.
func Load(r *Registry, doc string) error {
	var file registryFile
	if _, err := toml.Decode(doc, &file); err != nil {
		return fmt.Errorf("decoding datum registry: %w", err)
	}
	return load(r, &file)
}

// LoadFile is Load reading from a file.
func LoadFile(r *Registry, path string) error {
	var file registryFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("decoding datum registry %s: %w", path, err)
	}
	return load(r, &file)
}

func load(r *Registry, file *registryFile) error {
	ellipsoids := map[string]*geod.Ellipsoid{
		"WGS 84":             geod.WGS84Ellipsoid,
		"GRS 1980":           geod.GRS80,
		"International 1924": geod.International1924,
		"Clarke 1880 (IGN)":  geod.Clarke1880IGN,
		"Clarke 1866":        geod.Clarke1866,
		"Bessel 1841":        geod.Bessel1841,
		"Sphere":             geod.Sphere,
	}
	for _, def := range file.Ellipsoid {
		if def.Name == "" {
			return &DefinitionError{Kind: "ellipsoid", Name: def.ID, Reason: "missing name"}
		}
		if def.A <= 0 {
			return &DefinitionError{Kind: "ellipsoid", Name: def.Name, Reason: "missing semi-major axis"}
		}
		id, err := parseID(def.ID, "Ellipsoid", def.Name)
		if err != nil {
			return &DefinitionError{Kind: "ellipsoid", Name: def.Name, Reason: err.Error()}
		}
		var ell *geod.Ellipsoid
		switch {
		case def.RF > 0:
			ell = geod.NewEllipsoidFromInverseFlattening(id, def.A, def.RF)
		case def.B > 0:
			ell = geod.NewEllipsoidFromSemiMinorAxis(id, def.A, def.B)
		default:
			return &DefinitionError{Kind: "ellipsoid", Name: def.Name,
				Reason: "need rf or b"}
		}
		ellipsoids[def.Name] = ell
	}
	for _, def := range file.Datum {
		if def.Name == "" {
			return &DefinitionError{Kind: "datum", Name: def.ID, Reason: "missing name"}
		}
		ell, ok := ellipsoids[def.Ellipsoid]
		if !ok {
			return &DefinitionError{Kind: "datum", Name: def.Name,
				Reason: fmt.Sprintf("unknown ellipsoid %q", def.Ellipsoid)}
		}
		id, err := parseID(def.ID, "Datum", def.Name)
		if err != nil {
			return &DefinitionError{Kind: "datum", Name: def.Name, Reason: err.Error()}
		}
		pm := geod.Greenwich
		if def.Meridian != 0 {
			pm = geod.NewPrimeMeridian(
				cts.NewLocalIdentifier("PrimeMeridian", def.Name+" meridian"),
				units.NewMeasure(def.Meridian, units.Degree))
		}
		var toRef op.Operation
		switch len(def.ToWGS84) {
		case 0:
		case 3:
			toRef = transform.NewTranslation(def.ToWGS84[0], def.ToWGS84[1], def.ToWGS84[2])
		case 7:
			toRef = transform.NewBursaWolf(def.ToWGS84[0], def.ToWGS84[1], def.ToWGS84[2],
				def.ToWGS84[3], def.ToWGS84[4], def.ToWGS84[5], def.ToWGS84[6])
		default:
			return &DefinitionError{Kind: "datum", Name: def.Name,
				Reason: fmt.Sprintf("towgs84 needs 3 or 7 parameters, got %d", len(def.ToWGS84))}
		}
		extent := cs.World
		switch len(def.Extent) {
		case 0:
		case 4:
			extent = cs.NewGeographicExtent(def.Name,
				def.Extent[0], def.Extent[1], def.Extent[2], def.Extent[3])
		default:
			return &DefinitionError{Kind: "datum", Name: def.Name,
				Reason: fmt.Sprintf("extent needs 4 bounds, got %d", len(def.Extent))}
		}
		New(r, id, ell, pm, extent, toRef)
	}
	return nil
}

func parseID(s, kind, name string) (cts.Identifier, error) {
	if s == "" {
		return cts.NewLocalIdentifier(kind, name), nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return cts.Identifier{}, fmt.Errorf("id %q is not AUTHORITY:CODE", s)
	}
	return cts.Identifier{Authority: parts[0], Code: parts[1], Name: name}, nil
}
