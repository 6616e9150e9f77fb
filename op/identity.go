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

import cts "github.com/irstv/cts"

// IdentityOperation leaves coordinates unchanged.
type IdentityOperation struct {
	Base
}

// Identity is the shared identity operation.
var Identity = &IdentityOperation{NewBase(cts.Identifier{
	Authority: cts.LocalAuthority, Code: "IDENTITY", Name: "Identity",
}, DefaultPrecision)}

// Transform returns coord unchanged.
func (i *IdentityOperation) Transform(coord []float64) ([]float64, error) {
	return coord, nil
}

// Inverse returns the operation itself.
func (i *IdentityOperation) Inverse() (Operation, error) { return i, nil }

// IsIdentity returns true.
func (i *IdentityOperation) IsIdentity() bool { return true }

// Equal reports whether other is also an identity.
func (i *IdentityOperation) Equal(other Operation) bool {
	return other != nil && other.IsIdentity()
}

func (i *IdentityOperation) String() string { return "Identity" }
