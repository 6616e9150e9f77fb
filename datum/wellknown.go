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
	cts "github.com/irstv/cts"
	"github.com/irstv/cts/cs"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/op/transform"
)

// Well-known datums, all registered in the Default registry. The
// transformations to WGS 84 are the usual whole-datum translations;
// more precise localized transformations can be added to the graph at
// run time.
var (
	// WGS84 is the reference datum of the Default registry.
	WGS84 = Default.Reference()

	// NTF is the Nouvelle Triangulation de la France with longitudes
	// counted from Greenwich.
	NTF = New(Default,
		cts.NewIdentifier("EPSG", "6275", "Nouvelle Triangulation Française"),
		geod.Clarke1880IGN, geod.Greenwich,
		cs.NewGeographicExtent("France", 41, 52, -5.5, 10),
		transform.NewTranslationWithPrecision(-168, -60, 320, 1))

	// NTFParis is NTF with longitudes counted from the Paris meridian.
	NTFParis = New(Default,
		cts.NewIdentifier("EPSG", "6807", "Nouvelle Triangulation Française (Paris)"),
		geod.Clarke1880IGN, geod.Paris,
		cs.NewGeographicExtent("France", 41, 52, -5.5, 10),
		transform.NewTranslationWithPrecision(-168, -60, 320, 1))

	// RGF93 is the Réseau Géodésique Français 1993, coincident with
	// WGS 84 at the meter level.
	RGF93 = New(Default,
		cts.NewIdentifier("EPSG", "6171", "Réseau Géodésique Français 1993"),
		geod.GRS80, geod.Greenwich,
		cs.NewGeographicExtent("France", 41, 52, -5.5, 10),
		nil)

	// ED50 is the European Datum 1950.
	ED50 = New(Default,
		cts.NewIdentifier("EPSG", "6230", "European Datum 1950"),
		geod.International1924, geod.Greenwich,
		cs.NewGeographicExtent("Europe", 34, 72, -10, 32),
		transform.NewTranslationWithPrecision(-84, -97, -117, 10))

	// NAD27 is the North American Datum 1927.
	NAD27 = New(Default,
		cts.NewIdentifier("EPSG", "6267", "North American Datum 1927"),
		geod.Clarke1866, geod.Greenwich,
		cs.NewGeographicExtent("North America", 7, 84, -180, -45),
		transform.NewTranslationWithPrecision(-8, 160, 176, 10))

	// NAD83 is the North American Datum 1983, coincident with WGS 84
	// at the meter level.
	NAD83 = New(Default,
		cts.NewIdentifier("EPSG", "6269", "North American Datum 1983"),
		geod.GRS80, geod.Greenwich,
		cs.NewGeographicExtent("North America", 7, 84, -180, -45),
		nil)
)
