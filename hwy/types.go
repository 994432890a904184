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

// Package hwy provides fixed-width vector values and the 32 floating-point
// comparison predicates of the CMPPS/CMPPD/CMPSS/CMPSD family.
//
// Comparisons produce lane masks: every output lane is either all one bits
// (true) or all zero bits (false) for its lane width, exactly as the
// hardware instructions do. The results are identical on every platform.
//
// Basic usage:
//
//	import "github.com/eiosisorg/simde-sub000/hwy"
//
//	a := hwy.Float64x2(5, math.NaN())
//	b := hwy.Float64x2(5, 5)
//
//	// Lane 0: all ones (5 == 5). Lane 1: all zeros (NaN is never ordered-equal).
//	m := hwy.ComparePacked(hwy.CmpEqOQ, a, b)
//
//	// Only lane 0 is compared; lane 1 is copied from a.
//	s := hwy.CompareScalar(hwy.CmpLtOS, a, b)
package hwy

import "unsafe"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is an immutable, fixed-length sequence of lanes. Lane 0 is the
// lowest-indexed (least significant) lane.
//
// Vec values should not be assembled by hand; use Load, Set, Of or one of
// the FloatNxM constructors. Operations never modify their operands.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Width returns the vector width in bytes (16, 32 or 64 for valid shapes).
func (v Vec[T]) Width() int {
	return len(v.data) * laneSize[T]()
}

// Lane returns the value of lane i. It panics if i is out of range.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Data returns a copy of the lanes.
func (v Vec[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Store writes the vector's lanes to dst, stopping at len(dst).
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data)
}

// laneSize returns the size of one lane of T in bytes.
func laneSize[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// validWidth reports whether a vector of the given byte width is a
// supported shape: 128, 256 or 512 bits.
func validWidth(bytes int) bool {
	return bytes == 16 || bytes == 32 || bytes == 64
}

// Load creates a vector of the tag's shape from the first lanes of src.
// It panics if src holds fewer lanes than the shape requires.
func Load[T Lanes](tag Tag, src []T) Vec[T] {
	n := lanesFor[T](tag)
	if len(src) < n {
		panic("hwy: Load: src slice too short")
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Set creates a vector of the tag's shape with every lane set to value.
func Set[T Lanes](tag Tag, value T) Vec[T] {
	data := make([]T, lanesFor[T](tag))
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector of the tag's shape with every lane zero.
func Zero[T Lanes](tag Tag) Vec[T] {
	return Vec[T]{data: make([]T, lanesFor[T](tag))}
}

// Of creates a vector holding exactly the given lanes. The lane count must
// form a 128, 256 or 512-bit vector; otherwise Of panics with a *ShapeError.
func Of[T Lanes](lanes ...T) Vec[T] {
	if err := ValidateLanes[T](len(lanes)); err != nil {
		panic(err)
	}
	data := make([]T, len(lanes))
	copy(data, lanes)
	return Vec[T]{data: data}
}

// Float32x4 creates a 128-bit vector of four float32 lanes.
func Float32x4(l0, l1, l2, l3 float32) Vec[float32] {
	return Vec[float32]{data: []float32{l0, l1, l2, l3}}
}

// Float32x8 creates a 256-bit vector of eight float32 lanes.
func Float32x8(l0, l1, l2, l3, l4, l5, l6, l7 float32) Vec[float32] {
	return Vec[float32]{data: []float32{l0, l1, l2, l3, l4, l5, l6, l7}}
}

// Float64x2 creates a 128-bit vector of two float64 lanes.
func Float64x2(l0, l1 float64) Vec[float64] {
	return Vec[float64]{data: []float64{l0, l1}}
}

// Float64x4 creates a 256-bit vector of four float64 lanes.
func Float64x4(l0, l1, l2, l3 float64) Vec[float64] {
	return Vec[float64]{data: []float64{l0, l1, l2, l3}}
}

// Mask is a per-lane boolean produced by the *Mask comparison forms,
// mirroring the AVX-512 k-register results.
type Mask[T Lanes] struct {
	// bits[i] is true if lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// BitsFromMask packs the mask into an integer, lane i in bit i.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	var bits uint64
	for i, bit := range mask.bits {
		if bit {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// MaskFromBits builds a mask of the tag's shape from an integer, bit i
// giving lane i. Bits above the lane count are ignored.
func MaskFromBits[T Lanes](tag Tag, bits uint64) Mask[T] {
	m := make([]bool, lanesFor[T](tag))
	for i := range m {
		m[i] = bits&(1<<uint(i)) != 0
	}
	return Mask[T]{bits: m}
}
