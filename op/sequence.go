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

import (
	"strings"

	cts "github.com/irstv/cts"
)

// Sequence chains operations, applying them in order. Identity
// operations are dropped at construction; an empty sequence behaves as
// the identity. The precision of a sequence is the sum of the
// precisions of its steps.
type Sequence struct {
	Base
	ops []Operation
}

// NewSequence chains ops under the given identifier. Nested sequences
// are flattened.
func NewSequence(id cts.Identifier, ops ...Operation) *Sequence {
	flat := make([]Operation, 0, len(ops))
	precision := 0.0
	var add func(o Operation)
	add = func(o Operation) {
		if o == nil || o.IsIdentity() {
			return
		}
		if s, ok := o.(*Sequence); ok {
			for _, sub := range s.ops {
				add(sub)
			}
			return
		}
		flat = append(flat, o)
		precision += o.Precision()
	}
	for _, o := range ops {
		add(o)
	}
	return &Sequence{Base: NewBase(id, precision), ops: flat}
}

// Operations returns the steps of the sequence in application order.
func (s *Sequence) Operations() []Operation {
	out := make([]Operation, len(s.ops))
	copy(out, s.ops)
	return out
}

// Transform applies every step in order. The error of a failing step
// is returned as is so callers can still tell an out-of-extent
// coordinate from a dimension mismatch.
func (s *Sequence) Transform(coord []float64) ([]float64, error) {
	var err error
	for _, o := range s.ops {
		coord, err = o.Transform(coord)
		if err != nil {
			return nil, err
		}
	}
	return coord, nil
}

// Inverse returns a sequence applying the inverses of the steps in
// reverse order. It fails if any step is not invertible.
func (s *Sequence) Inverse() (Operation, error) {
	inv := make([]Operation, len(s.ops))
	for i, o := range s.ops {
		io, err := o.Inverse()
		if err != nil {
			return nil, err
		}
		inv[len(s.ops)-1-i] = io
	}
	id := s.Base.ID()
	id.Name = "inverse of " + id.Name
	return NewSequence(id, inv...), nil
}

// IsIdentity reports whether the sequence has no effective step.
func (s *Sequence) IsIdentity() bool { return len(s.ops) == 0 }

// Equal reports whether other is a sequence of pairwise equal steps.
func (s *Sequence) Equal(other Operation) bool {
	o, ok := other.(*Sequence)
	if !ok {
		return false
	}
	if len(s.ops) != len(o.ops) {
		return false
	}
	for i := range s.ops {
		if !s.ops[i].Equal(o.ops[i]) {
			return false
		}
	}
	return true
}

func (s *Sequence) String() string {
	if len(s.ops) == 0 {
		return "Identity"
	}
	parts := make([]string, len(s.ops))
	for i, o := range s.ops {
		parts[i] = o.String()
	}
	return "[" + strings.Join(parts, " -> ") + "]"
}
