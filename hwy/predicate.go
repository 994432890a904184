// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

//go:generate go run ../cmd/cmpgen -output predicate_names.go

import (
	"fmt"
	"strconv"
	"strings"
)

// Predicate is the 5-bit comparison selector (imm8 of VCMPPS and friends).
// Valid values are 0 through 31; see the Cmp* constants.
type Predicate uint8

// NumPredicates is the number of valid selectors.
const NumPredicates = 32

// Relation is the ordinary relation a predicate tests once NaN is ruled out,
// or one of the four relations that handle NaN themselves.
type Relation uint8

const (
	RelEqual Relation = iota
	RelLess
	RelLessEqual
	RelGreaterEqual
	RelGreater
	RelNotEqual

	// RelAlwaysFalse and RelAlwaysTrue ignore the operands entirely.
	RelAlwaysFalse
	RelAlwaysTrue

	// RelOrdered is true when neither operand is NaN, RelUnordered when
	// at least one is.
	RelOrdered
	RelUnordered
)

var relationNames = [...]string{
	RelEqual:        "equal",
	RelLess:         "less",
	RelLessEqual:    "less-equal",
	RelGreaterEqual: "greater-equal",
	RelGreater:      "greater",
	RelNotEqual:     "not-equal",
	RelAlwaysFalse:  "false",
	RelAlwaysTrue:   "true",
	RelOrdered:      "ordered",
	RelUnordered:    "unordered",
}

// String returns a short lower-case name such as "less-equal".
func (r Relation) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}
	return fmt.Sprintf("Relation(%d)", uint8(r))
}

// holds evaluates the relation on two non-NaN values. The four
// NaN-handling relations are resolved before this is reached.
func holds[T Floats](r Relation, a, b T) bool {
	switch r {
	case RelEqual:
		return a == b
	case RelLess:
		return a < b
	case RelLessEqual:
		return a <= b
	case RelGreaterEqual:
		return a >= b
	case RelGreater:
		return a > b
	case RelNotEqual:
		return a != b
	}
	return false
}

// NaNPolicy decides the result when either operand is NaN.
type NaNPolicy uint8

const (
	// NaNIgnored marks the constant and ORD/UNORD relations, which decide
	// NaN handling themselves.
	NaNIgnored NaNPolicy = iota

	// NaNForcesFalse is an "ordered" predicate: any NaN operand gives false.
	NaNForcesFalse

	// NaNForcesTrue is an "unordered" predicate: any NaN operand gives true.
	NaNForcesTrue
)

// String returns "ignored", "false" or "true".
func (p NaNPolicy) String() string {
	switch p {
	case NaNIgnored:
		return "ignored"
	case NaNForcesFalse:
		return "false"
	case NaNForcesTrue:
		return "true"
	default:
		return fmt.Sprintf("NaNPolicy(%d)", uint8(p))
	}
}

// Definition is the decoded meaning of a predicate.
type Definition struct {
	// Relation is tested on non-NaN operands.
	Relation Relation

	// Negated inverts the relation's result. It is applied before the NaN
	// policy, so NLT and LT are complements on non-NaN inputs only.
	Negated bool

	// NaN overrides the result when either operand is NaN.
	NaN NaNPolicy

	// Signaling records the S/Q suffix of the mnemonic. Hardware uses it
	// to decide whether a quiet NaN raises the invalid exception; it never
	// changes the boolean result.
	Signaling bool
}

// predicateTable is the fixed selector -> definition mapping. Entries s and
// s+16 differ only in Signaling.
var predicateTable = [NumPredicates]Definition{
	CmpEqOQ:    {Relation: RelEqual, NaN: NaNForcesFalse},
	CmpLtOS:    {Relation: RelLess, NaN: NaNForcesFalse, Signaling: true},
	CmpLeOS:    {Relation: RelLessEqual, NaN: NaNForcesFalse, Signaling: true},
	CmpUnordQ:  {Relation: RelUnordered, NaN: NaNIgnored},
	CmpNeqUQ:   {Relation: RelNotEqual, NaN: NaNForcesTrue},
	CmpNltUS:   {Relation: RelLess, Negated: true, NaN: NaNForcesTrue, Signaling: true},
	CmpNleUS:   {Relation: RelLessEqual, Negated: true, NaN: NaNForcesTrue, Signaling: true},
	CmpOrdQ:    {Relation: RelOrdered, NaN: NaNIgnored},
	CmpEqUQ:    {Relation: RelEqual, NaN: NaNForcesTrue},
	CmpNgeUS:   {Relation: RelGreaterEqual, Negated: true, NaN: NaNForcesTrue, Signaling: true},
	CmpNgtUS:   {Relation: RelGreater, Negated: true, NaN: NaNForcesTrue, Signaling: true},
	CmpFalseOQ: {Relation: RelAlwaysFalse, NaN: NaNIgnored},
	CmpNeqOQ:   {Relation: RelNotEqual, NaN: NaNForcesFalse},
	CmpGeOS:    {Relation: RelGreaterEqual, NaN: NaNForcesFalse, Signaling: true},
	CmpGtOS:    {Relation: RelGreater, NaN: NaNForcesFalse, Signaling: true},
	CmpTrueUQ:  {Relation: RelAlwaysTrue, NaN: NaNIgnored},

	CmpEqOS:    {Relation: RelEqual, NaN: NaNForcesFalse, Signaling: true},
	CmpLtOQ:    {Relation: RelLess, NaN: NaNForcesFalse},
	CmpLeOQ:    {Relation: RelLessEqual, NaN: NaNForcesFalse},
	CmpUnordS:  {Relation: RelUnordered, NaN: NaNIgnored, Signaling: true},
	CmpNeqUS:   {Relation: RelNotEqual, NaN: NaNForcesTrue, Signaling: true},
	CmpNltUQ:   {Relation: RelLess, Negated: true, NaN: NaNForcesTrue},
	CmpNleUQ:   {Relation: RelLessEqual, Negated: true, NaN: NaNForcesTrue},
	CmpOrdS:    {Relation: RelOrdered, NaN: NaNIgnored, Signaling: true},
	CmpEqUS:    {Relation: RelEqual, NaN: NaNForcesTrue, Signaling: true},
	CmpNgeUQ:   {Relation: RelGreaterEqual, Negated: true, NaN: NaNForcesTrue},
	CmpNgtUQ:   {Relation: RelGreater, Negated: true, NaN: NaNForcesTrue},
	CmpFalseOS: {Relation: RelAlwaysFalse, NaN: NaNIgnored, Signaling: true},
	CmpNeqOS:   {Relation: RelNotEqual, NaN: NaNForcesFalse, Signaling: true},
	CmpGeOQ:    {Relation: RelGreaterEqual, NaN: NaNForcesFalse},
	CmpGtOQ:    {Relation: RelGreater, NaN: NaNForcesFalse},
	CmpTrueUS:  {Relation: RelAlwaysTrue, NaN: NaNIgnored, Signaling: true},
}

// Valid reports whether p is in [0, 31].
func (p Predicate) Valid() bool {
	return p < NumPredicates
}

// Definition returns the decoded predicate. It panics with a
// *PredicateError if p is not valid; selectors are never wrapped.
func (p Predicate) Definition() Definition {
	if !p.Valid() {
		panic(&PredicateError{Predicate: p})
	}
	return predicateTable[p]
}

// Lookup is the non-panicking form of Definition.
func Lookup(p Predicate) (Definition, error) {
	if err := ValidatePredicate(p); err != nil {
		return Definition{}, err
	}
	return predicateTable[p], nil
}

// String returns the mnemonic without the _CMP_ prefix, e.g. "NLT_US".
func (p Predicate) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Predicate(%d)", uint8(p))
	}
	return predicateMnemonics[p]
}

// ParsePredicate accepts a selector number ("5", "0x05") or a mnemonic with
// or without the _CMP_ prefix ("NLT_US", "_cmp_nlt_us").
func ParsePredicate(s string) (Predicate, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "_CMP_")
	for i, m := range predicateMnemonics {
		if m == name {
			return Predicate(i), nil
		}
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown predicate %q", ErrInvalidPredicate, s)
	}
	if n >= NumPredicates {
		return 0, fmt.Errorf("%w: %d out of range 0..%d", ErrInvalidPredicate, n, NumPredicates-1)
	}
	return Predicate(n), nil
}
