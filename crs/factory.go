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
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	cts "github.com/irstv/cts"
	"github.com/irstv/cts/op"
)

// CreateCoordinateOperations returns the operations transforming
// coordinates of the source CRS into coordinates of the target CRS,
// most precise first. Operations are assembled once per CRS pair and
// cached on the source CRS.
//
// Three strategies are tried in order: a registered grid shift between
// the two datums, the identity datum leg when both CRS share a datum,
// and the datum transformation graph with its pivot search.
func CreateCoordinateOperations(source, target GeodeticCRS) ([]op.Operation, error) {
	if source == nil || target == nil {
		return nil, errors.New("crs: nil coordinate reference system")
	}
	if source == target || source.Equal(target) {
		return []op.Operation{op.Identity}, nil
	}
	if ops, ok := source.cacheOps(target); ok {
		return ops, nil
	}

	log.WithFields(log.Fields{
		"source": source.ID().Label(),
		"target": target.ID().Label(),
	}).Debug("assembling coordinate operations")

	toGeog, err := source.ToGeographic()
	if err != nil {
		return nil, fmt.Errorf("converter for %s: %w", source.ID().Label(), err)
	}
	fromGeog, err := target.FromGeographic()
	if err != nil {
		return nil, fmt.Errorf("converter for %s: %w", target.ID().Label(), err)
	}

	ds, dt := source.Datum(), target.Datum()
	var middles []op.Operation
	for _, g := range ds.GridTransformations(dt) {
		// Grid shifts are defined in Greenwich longitudes, so bring
		// the source datum's longitudes to Greenwich before the
		// lookup and back to the target meridian after it. Zero
		// rotations are dropped when assembling the sequence.
		id := cts.NewLocalIdentifier("GridTransformation",
			ds.ID().Label()+" to "+dt.ID().Label())
		middles = append(middles, op.NewSequence(id,
			op.NewLongitudeRotation(ds.PrimeMeridian().FromGreenwich()),
			g,
			op.NewLongitudeRotation(-dt.PrimeMeridian().FromGreenwich()),
		))
	}
	if ds == dt || ds.Equal(dt) {
		middles = append(middles, op.Identity)
	} else {
		geographic, err := ds.GeographicTransformations(dt)
		if err != nil {
			if len(middles) == 0 {
				return nil, err
			}
			log.WithFields(log.Fields{
				"source": source.ID().Label(),
				"target": target.ID().Label(),
			}).Warnf("datum graph resolution failed, keeping grid candidates only: %v", err)
		} else {
			middles = append(middles, geographic...)
		}
	}

	ops := make([]op.Operation, 0, len(middles))
	for _, m := range middles {
		id := cts.NewLocalIdentifier("CoordinateOperation",
			source.ID().Label()+" to "+target.ID().Label())
		ops = append(ops, op.NewSequence(id, toGeog, m, fromGeog))
	}
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Precision() < ops[j].Precision()
	})
	return source.storeOps(target, ops), nil
}

// CreateCoordinateOperation returns the most precise operation from
// source to target.
func CreateCoordinateOperation(source, target GeodeticCRS) (op.Operation, error) {
	ops, err := CreateCoordinateOperations(source, target)
	if err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, &op.NoPathError{
			Source: source.ID().Label(), Target: target.ID().Label(),
		}
	}
	return ops[0], nil
}

// Transform converts a coordinate of the source CRS into the target
// CRS using the most precise available operation. The input slice is
// left untouched.
func Transform(source, target GeodeticCRS, coord []float64) ([]float64, error) {
	o, err := CreateCoordinateOperation(source, target)
	if err != nil {
		return nil, err
	}
	capacity := len(coord)
	if capacity < 3 {
		capacity = 3
	}
	work := make([]float64, len(coord), capacity)
	copy(work, coord)
	return o.Transform(work)
}
