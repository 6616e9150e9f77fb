/*
Copyright © 2016 the CTS authors.
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

package op

import "fmt"

// DimensionError reports a coordinate tuple whose length does not
// match what an operation requires.
type DimensionError struct {
	Op       string
	Coord    []float64
	Expected int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: coordinate %v has dimension %d, need %d",
		e.Op, e.Coord, len(e.Coord), e.Expected)
}

// checkDimension returns a *DimensionError unless coord has at least
// min ordinates.
func checkDimension(op Operation, coord []float64, min int) error {
	if len(coord) < min {
		return &DimensionError{Op: op.String(), Coord: coord, Expected: min}
	}
	return nil
}

// NonInvertibleError reports that an operation has no inverse.
type NonInvertibleError struct {
	Op string
}

func (e *NonInvertibleError) Error() string {
	return fmt.Sprintf("%s is not invertible", e.Op)
}

// OutOfExtentError reports a coordinate outside the area over which an
// operation is defined.
type OutOfExtentError struct {
	Op    string
	Coord []float64
}

func (e *OutOfExtentError) Error() string {
	return fmt.Sprintf("%s: coordinate %v is outside the operation extent",
		e.Op, e.Coord)
}

// NoPathError reports that no coordinate operation path could be found
// between two reference systems or datums. Reason, when set, tells a
// missing edge apart from a path discarded because one of its legs is
// not invertible.
type NoPathError struct {
	Source string
	Target string
	Reason string
}

func (e *NoPathError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("no coordinate operation path from %s to %s: %s",
			e.Source, e.Target, e.Reason)
	}
	return fmt.Sprintf("no coordinate operation path from %s to %s",
		e.Source, e.Target)
}
