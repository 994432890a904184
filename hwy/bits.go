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

import "math"

// This file holds the bit-level view of float lanes. Masks are built as
// unsigned integers and only reinterpreted as T when stored into a lane, so
// an all-ones lane is exactly 0xFFFFFFFF or 0xFFFFFFFFFFFFFFFF.

const (
	signMask32 = 0x8000_0000
	expMask32  = 0x7F80_0000
	signMask64 = 0x8000_0000_0000_0000
	expMask64  = 0x7FF0_0000_0000_0000
)

// floatBits returns the raw bit pattern of x, zero-extended to 64 bits.
func floatBits[T Floats](x T) uint64 {
	if laneSize[T]() == 4 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// floatFromBits reinterprets the low lane-width bits of b as a T.
func floatFromBits[T Floats](b uint64) T {
	if laneSize[T]() == 4 {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// onesBits returns the all-ones pattern for T's lane width.
func onesBits[T Floats]() uint64 {
	if laneSize[T]() == 4 {
		return math.MaxUint32
	}
	return math.MaxUint64
}

// maskBits returns the all-ones pattern for T when set, zero otherwise.
func maskBits[T Floats](set bool) uint64 {
	if set {
		return onesBits[T]()
	}
	return 0
}

// maskLane returns the lane value whose bits are all ones when set, zero otherwise.
func maskLane[T Floats](set bool) T {
	return floatFromBits[T](maskBits[T](set))
}

// isNaN reports whether x is any NaN, quiet or signaling: exponent all ones
// and a non-zero mantissa. It is the only NaN test used by the comparisons.
func isNaN[T Floats](x T) bool {
	b := floatBits(x)
	if laneSize[T]() == 4 {
		return b&^signMask32 > expMask32
	}
	return b&^signMask64 > expMask64
}

// IsNaN returns a mask of the lanes that hold a NaN of any kind.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = isNaN(x)
	}
	return Mask[T]{bits: bits}
}

// LaneBits returns the raw bit pattern of lane i, zero-extended to 64 bits.
func LaneBits[T Floats](v Vec[T], i int) uint64 {
	return floatBits(v.data[i])
}

// VecBits returns the raw bit pattern of every lane.
func VecBits[T Floats](v Vec[T]) []uint64 {
	out := make([]uint64, len(v.data))
	for i, x := range v.data {
		out[i] = floatBits(x)
	}
	return out
}

// FromBits creates a vector of the tag's shape whose lanes carry the given
// bit patterns. Only the low lane-width bits of each entry are used. It
// panics if bits holds fewer lanes than the shape requires.
func FromBits[T Floats](tag Tag, bits []uint64) Vec[T] {
	n := lanesFor[T](tag)
	if len(bits) < n {
		panic("hwy: FromBits: bits slice too short")
	}
	data := make([]T, n)
	for i := range data {
		data[i] = floatFromBits[T](bits[i])
	}
	return Vec[T]{data: data}
}

// IsMaskVec reports whether every lane of v is exactly all ones or all zeros.
func IsMaskVec[T Floats](v Vec[T]) bool {
	ones := onesBits[T]()
	for _, x := range v.data {
		if b := floatBits(x); b != 0 && b != ones {
			return false
		}
	}
	return true
}

// MaskFromVec converts a vector mask into a Mask. Lane i is active when its
// sign bit is set, which is how MOVMSKPS/MOVMSKPD read a mask.
func MaskFromVec[T Floats](v Vec[T]) Mask[T] {
	sign := uint64(signMask64)
	if laneSize[T]() == 4 {
		sign = signMask32
	}
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = floatBits(x)&sign != 0
	}
	return Mask[T]{bits: bits}
}

// VecFromMask expands a Mask into a vector of all-ones / all-zero lanes.
func VecFromMask[T Floats](m Mask[T]) Vec[T] {
	data := make([]T, len(m.bits))
	for i, bit := range m.bits {
		data[i] = maskLane[T](bit)
	}
	return Vec[T]{data: data}
}

// AsUint32 reinterprets a float32 vector as uint32 (bit cast).
func AsUint32(v Vec[float32]) Vec[uint32] {
	data := make([]uint32, len(v.data))
	for i, x := range v.data {
		data[i] = math.Float32bits(x)
	}
	return Vec[uint32]{data: data}
}

// AsFloat32 reinterprets a uint32 vector as float32 (bit cast).
func AsFloat32(v Vec[uint32]) Vec[float32] {
	data := make([]float32, len(v.data))
	for i, x := range v.data {
		data[i] = math.Float32frombits(x)
	}
	return Vec[float32]{data: data}
}

// AsUint64 reinterprets a float64 vector as uint64 (bit cast).
func AsUint64(v Vec[float64]) Vec[uint64] {
	data := make([]uint64, len(v.data))
	for i, x := range v.data {
		data[i] = math.Float64bits(x)
	}
	return Vec[uint64]{data: data}
}

// AsFloat64 reinterprets a uint64 vector as float64 (bit cast).
func AsFloat64(v Vec[uint64]) Vec[float64] {
	data := make([]float64, len(v.data))
	for i, x := range v.data {
		data[i] = math.Float64frombits(x)
	}
	return Vec[float64]{data: data}
}
