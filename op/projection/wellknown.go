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
	cts "github.com/irstv/cts"
	"github.com/irstv/cts/geod"
	"github.com/irstv/cts/units"
)

// The French Lambert zone projections, defined on Clarke 1880 (IGN)
// with longitudes counted from the Paris meridian, and Lambert 93 on
// GRS 1980 from Greenwich.
var (
	Lambert1 = NewLambertConicConformal1SP(
		cts.NewIdentifier("IGNF", "LAMB1", "Lambert I"),
		geod.Clarke1880IGN, Parameters{
			LatitudeOfOrigin: units.NewMeasure(55, units.Grad),
			ScaleFactor:      0.999877341,
			FalseEasting:     600000,
			FalseNorthing:    200000,
		})

	Lambert2 = NewLambertConicConformal1SP(
		cts.NewIdentifier("IGNF", "LAMB2", "Lambert II"),
		geod.Clarke1880IGN, Parameters{
			LatitudeOfOrigin: units.NewMeasure(52, units.Grad),
			ScaleFactor:      0.99987742,
			FalseEasting:     600000,
			FalseNorthing:    200000,
		})

	Lambert3 = NewLambertConicConformal1SP(
		cts.NewIdentifier("IGNF", "LAMB3", "Lambert III"),
		geod.Clarke1880IGN, Parameters{
			LatitudeOfOrigin: units.NewMeasure(49, units.Grad),
			ScaleFactor:      0.999877499,
			FalseEasting:     600000,
			FalseNorthing:    200000,
		})

	Lambert4 = NewLambertConicConformal1SP(
		cts.NewIdentifier("IGNF", "LAMB4", "Lambert IV"),
		geod.Clarke1880IGN, Parameters{
			LatitudeOfOrigin: units.NewMeasure(46.85, units.Grad),
			ScaleFactor:      0.99994471,
			FalseEasting:     234.358,
			FalseNorthing:    185861.369,
		})

	// Lambert2Etendu covers the whole of metropolitan France with the
	// Lambert II cone and a shifted false northing.
	Lambert2Etendu = NewLambertConicConformal1SP(
		cts.NewIdentifier("IGNF", "LAMBE", "Lambert II étendu"),
		geod.Clarke1880IGN, Parameters{
			LatitudeOfOrigin: units.NewMeasure(52, units.Grad),
			ScaleFactor:      0.99987742,
			FalseEasting:     600000,
			FalseNorthing:    2200000,
		})

	Lambert93 = NewLambertConicConformal2SP(
		cts.NewIdentifier("IGNF", "LAMB93", "Lambert 93"),
		geod.GRS80, Parameters{
			LatitudeOfOrigin:  units.NewMeasure(46.5, units.Degree),
			CentralMeridian:   units.NewMeasure(3, units.Degree),
			StandardParallel1: units.NewMeasure(44, units.Degree),
			StandardParallel2: units.NewMeasure(49, units.Degree),
			FalseEasting:      700000,
			FalseNorthing:     6600000,
		})
)
