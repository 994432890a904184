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

import (
	"fmt"
	"unsafe"
)

// Tag selects a vector shape by its width in bytes.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, 64 for 512-bit).
	Width() int

	// Name returns the shape name, e.g. "f32x4".
	Name() string
}

// ScalableTag selects the widest shape the current dispatch level reports.
// Bulk helpers use it to pick their chunk size; results do not depend on it.
//
//	tag := hwy.ScalableTag[float32]{}
//	lanes := tag.MaxLanes() // 4, 8 or 16
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime vector width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the shape name for the current runtime width.
func (ScalableTag[T]) Name() string {
	return ShapeName[T](currentWidth / laneSize[T]())
}

// MaxLanes returns the number of T lanes at the current width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// FixedTag128 selects the 128-bit shapes: 4×float32 or 2×float64.
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns the shape name, e.g. "f64x2".
func (t FixedTag128[T]) Name() string {
	return ShapeName[T](t.MaxLanes())
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return 16 / laneSize[T]()
}

// FixedTag256 selects the 256-bit shapes: 8×float32 or 4×float64.
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns the shape name, e.g. "f32x8".
func (t FixedTag256[T]) Name() string {
	return ShapeName[T](t.MaxLanes())
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	return 32 / laneSize[T]()
}

// FixedTag512 selects the 512-bit shapes: 16×float32 or 8×float64.
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns the shape name, e.g. "f32x16".
func (t FixedTag512[T]) Name() string {
	return ShapeName[T](t.MaxLanes())
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (t FixedTag512[T]) MaxLanes() int {
	return 64 / laneSize[T]()
}

// ShapeName returns the conventional name of a vector of n lanes of T,
// such as "f32x8" or "u64x2".
func ShapeName[T Lanes](n int) string {
	var dummy T
	prefix := "i"
	switch any(dummy).(type) {
	case float32, float64:
		prefix = "f"
	case uint8, uint16, uint32, uint64:
		prefix = "u"
	}
	return fmt.Sprintf("%s%dx%d", prefix, 8*unsafe.Sizeof(dummy), n)
}

// lanesFor returns the lane count of T for tag, panicking on a width that
// is not a supported shape.
func lanesFor[T Lanes](tag Tag) int {
	w := tag.Width()
	if !validWidth(w) {
		panic(&ShapeError{Lanes: w / laneSize[T](), LaneBytes: laneSize[T]()})
	}
	return w / laneSize[T]()
}
