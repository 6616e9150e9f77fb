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

package crs

import (
	cts "github.com/irstv/cts"
	"github.com/irstv/cts/datum"
	"github.com/irstv/cts/op/projection"
)

// Well-known reference systems.
var (
	// WGS84 is EPSG:4326, latitude/longitude in decimal degrees.
	WGS84 = NewGeographic2D(
		cts.NewIdentifier("EPSG", "4326", "WGS 84"), datum.WGS84)

	// RGF93 is EPSG:4171, latitude/longitude in decimal degrees.
	RGF93 = NewGeographic2D(
		cts.NewIdentifier("EPSG", "4171", "RGF93"), datum.RGF93)

	// Lambert93 is EPSG:2154, the legal projected system of
	// metropolitan France.
	Lambert93 = NewProjectedCRS(
		cts.NewIdentifier("EPSG", "2154", "RGF93 / Lambert-93"),
		datum.RGF93, projection.Lambert93)

	// Lambert2Etendu is EPSG:27572, the former legal projected system
	// of metropolitan France on the NTF (Paris) datum.
	Lambert2Etendu = NewProjectedCRS(
		cts.NewIdentifier("EPSG", "27572", "NTF (Paris) / Lambert zone II"),
		datum.NTFParis, projection.Lambert2Etendu)
)

// NewUTMCRS builds the WGS 84 UTM projected CRS for a zone.
func NewUTMCRS(zone int, north bool) *ProjectedCRS {
	d := datum.WGS84
	p := projection.NewUTM(d.Ellipsoid(), zone, north)
	return NewProjectedCRS(
		cts.NewLocalIdentifier("ProjectedCRS", p.ID().Name), d, p)
}
