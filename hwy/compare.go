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

// This file implements the predicate comparisons in pure Go. They are
// total: every valid selector and every lane value, including all NaN
// encodings, infinities and signed zeros, has a defined result. The only
// failures are caller errors (bad selector, bad shape), which panic before
// any lane is compared.

// evalLane applies a decoded predicate to one pair of lanes.
func evalLane[T Floats](d Definition, a, b T) bool {
	switch d.Relation {
	case RelAlwaysFalse:
		return false
	case RelAlwaysTrue:
		return true
	case RelOrdered:
		return !isNaN(a) && !isNaN(b)
	case RelUnordered:
		return isNaN(a) || isNaN(b)
	}

	// The NaN policy is a final override, never part of the relation.
	if isNaN(a) || isNaN(b) {
		return d.NaN == NaNForcesTrue
	}
	r := holds(d.Relation, a, b)
	if d.Negated {
		r = !r
	}
	return r
}

// CompareLane evaluates predicate p on a single pair of values.
// It panics with a *PredicateError if p is outside [0, 31].
func CompareLane[T Floats](p Predicate, a, b T) bool {
	return evalLane(p.Definition(), a, b)
}

// ComparePacked compares every lane of a with the same lane of b
// (VCMPPS/VCMPPD). Lane i of the result is all ones if the predicate holds
// for a[i], b[i] and all zeros otherwise.
//
// It panics with a *PredicateError for an invalid selector and with a
// *ShapeError or *ShapeMismatchError for unsupported or unequal shapes.
func ComparePacked[T Floats](p Predicate, a, b Vec[T]) Vec[T] {
	mustValidate(p, a, b)
	d := predicateTable[p]
	out := make([]T, len(a.data))
	for i := range out {
		out[i] = maskLane[T](evalLane(d, a.data[i], b.data[i]))
	}
	return Vec[T]{data: out}
}

// CompareScalar compares only lane 0 (VCMPSS/VCMPSD). The result is a copy
// of a whose lane 0 is replaced by the all-ones / all-zeros mask; lanes
// 1..n-1 are bit-identical to a and never read from b.
//
// It panics under the same conditions as ComparePacked.
func CompareScalar[T Floats](p Predicate, a, b Vec[T]) Vec[T] {
	mustValidate(p, a, b)
	out := make([]T, len(a.data))
	copy(out, a.data)
	out[0] = maskLane[T](evalLane(predicateTable[p], a.data[0], b.data[0]))
	return Vec[T]{data: out}
}

// ComparePackedMask is ComparePacked returning a Mask instead of a vector
// (the AVX-512 _mm512_cmp_ps_mask form).
func ComparePackedMask[T Floats](p Predicate, a, b Vec[T]) Mask[T] {
	mustValidate(p, a, b)
	d := predicateTable[p]
	bits := make([]bool, len(a.data))
	for i := range bits {
		bits[i] = evalLane(d, a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// MaskedComparePackedMask is ComparePackedMask with a write mask: lanes
// inactive in k are false in the result regardless of the predicate.
// It panics with a *ShapeMismatchError if k does not have a's lane count.
func MaskedComparePackedMask[T Floats](k Mask[T], p Predicate, a, b Vec[T]) Mask[T] {
	mustValidate(p, a, b)
	if len(k.bits) != len(a.data) {
		panic(&ShapeMismatchError{ALanes: len(a.data), BLanes: len(k.bits)})
	}
	d := predicateTable[p]
	bits := make([]bool, len(a.data))
	for i := range bits {
		bits[i] = k.bits[i] && evalLane(d, a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// CompareScalarMask compares lane 0 only and returns a mask in which only
// lane 0 can be active (the _mm_cmp_ss_mask form).
func CompareScalarMask[T Floats](p Predicate, a, b Vec[T]) Mask[T] {
	mustValidate(p, a, b)
	bits := make([]bool, len(a.data))
	bits[0] = evalLane(predicateTable[p], a.data[0], b.data[0])
	return Mask[T]{bits: bits}
}
