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

// Package cts holds the identification primitives shared by every
// geodetic object in this module: ellipsoids, datums, operations and
// reference systems all carry an Identifier.
package cts

import (
	"fmt"
	"sync/atomic"
)

// LocalAuthority is the authority used for objects that have no entry
// in an external registry such as EPSG or IGNF.
const LocalAuthority = "LOCAL"

var localCounter uint64

// Identifier names a geodetic object. Authority and Code together form
// the primary key; Name and ShortName are human readable and carry no
// identity. Aliases lists alternative "AUTHORITY:CODE" strings under
// which the same object is known.
type Identifier struct {
	Authority string
	Code      string
	Name      string
	ShortName string
	Remarks   string
	Aliases   []string
}

// NewIdentifier returns an identifier in an external registry.
func NewIdentifier(authority, code, name string) Identifier {
	return Identifier{Authority: authority, Code: code, Name: name}
}

// NewLocalIdentifier returns a unique identifier in the LOCAL
// authority. kind describes the class of object being identified
// ("Ellipsoid", "Projection", ...).
func NewLocalIdentifier(kind, name string) Identifier {
	n := atomic.AddUint64(&localCounter, 1)
	return Identifier{
		Authority: LocalAuthority,
		Code:      fmt.Sprintf("%s_%d", kind, n),
		Name:      name,
	}
}

// CodeSpace returns the "AUTHORITY:CODE" key of the identifier.
func (id Identifier) CodeSpace() string {
	return id.Authority + ":" + id.Code
}

// Label returns the short name if one is set, the full name otherwise.
func (id Identifier) Label() string {
	if id.ShortName != "" {
		return id.ShortName
	}
	return id.Name
}

// Equal reports whether two identifiers name the same object: either
// their authority/code keys match, or one lists the other's key among
// its aliases.
func (id Identifier) Equal(other Identifier) bool {
	if id.Authority == other.Authority && id.Code == other.Code {
		return true
	}
	key, okey := id.CodeSpace(), other.CodeSpace()
	for _, a := range id.Aliases {
		if a == okey {
			return true
		}
	}
	for _, a := range other.Aliases {
		if a == key {
			return true
		}
	}
	return false
}

func (id Identifier) String() string {
	return fmt.Sprintf("[%s:%s] %s", id.Authority, id.Code, id.Name)
}
