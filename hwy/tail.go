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

// TailMask creates a mask of the tag's shape with the first count lanes active.
// It is the write mask for the remainder of a slice that is not a multiple
// of the vector width.
func TailMask[T Lanes](tag Tag, count int) Mask[T] {
	n := lanesFor[T](tag)
	count = max(0, min(count, n))
	bits := make([]bool, n)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// LoadPartial loads up to one vector of the tag's shape from src, filling
// missing lanes with zero.
func LoadPartial[T Lanes](tag Tag, src []T) Vec[T] {
	data := make([]T, lanesFor[T](tag))
	copy(data, src)
	return Vec[T]{data: data}
}

// ProcessWithTail walks size elements in chunks of the tag's lane count.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the remainder, if any
//
// Example:
//
//	tag := hwy.FixedTag256[float32]{}
//	hwy.ProcessWithTail[float32](tag, len(a),
//	    func(offset int) {
//	        m := hwy.ComparePacked(p, hwy.Load(tag, a[offset:]), hwy.Load(tag, b[offset:]))
//	        m.Store(dst[offset:])
//	    },
//	    func(offset, count int) {
//	        m := hwy.ComparePacked(p, hwy.LoadPartial(tag, a[offset:]), hwy.LoadPartial(tag, b[offset:]))
//	        m.Store(dst[offset : offset+count])
//	    },
//	)
func ProcessWithTail[T Lanes](tag Tag, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := lanesFor[T](tag)

	fullVectors := size / lanes
	for i := 0; i < fullVectors; i++ {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of the tag's lane count.
func AlignedSize[T Lanes](tag Tag, size int) int {
	lanes := lanesFor[T](tag)
	return ((size + lanes - 1) / lanes) * lanes
}
