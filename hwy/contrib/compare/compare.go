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

// Package compare applies the hwy comparison predicates to whole slices.
//
// Slices are walked in chunks of hwy.ScalableTag width; the remainder is
// zero-padded into one more vector and only its valid lanes are kept. The
// chunk size never changes a result, since every lane is compared
// independently.
//
//	dst := make([]float32, len(a))
//	compare.Slices(hwy.CmpNltUS, a, b, dst) // dst[i] is all ones or all zeros
//	n := compare.Count(hwy.CmpUnordQ, a, b) // lanes with a NaN on either side
package compare

import (
	"github.com/eiosisorg/simde-sub000/hwy"
	"github.com/eiosisorg/simde-sub000/hwy/contrib/workerpool"
)

// checkInputs panics on an invalid predicate or mismatched lengths before
// any element is compared.
func checkInputs[T hwy.Floats](p hwy.Predicate, a, b []T) {
	if err := hwy.ValidatePredicate(p); err != nil {
		panic(err)
	}
	if len(a) != len(b) {
		panic(&hwy.ShapeMismatchError{ALanes: len(a), BLanes: len(b)})
	}
}

// Slices stores in dst[i] the lane mask of predicate p on a[i], b[i]:
// all one bits when it holds, all zero bits otherwise.
// It panics if a and b differ in length or dst is shorter than a.
func Slices[T hwy.Floats](p hwy.Predicate, a, b, dst []T) {
	checkInputs(p, a, b)
	if len(dst) < len(a) {
		panic("compare: dst slice too short")
	}

	tag := hwy.ScalableTag[T]{}
	hwy.ProcessWithTail[T](tag, len(a),
		func(offset int) {
			m := hwy.ComparePacked(p, hwy.Load[T](tag, a[offset:]), hwy.Load[T](tag, b[offset:]))
			m.Store(dst[offset:])
		},
		func(offset, count int) {
			m := hwy.ComparePacked(p, hwy.LoadPartial[T](tag, a[offset:]), hwy.LoadPartial[T](tag, b[offset:]))
			m.Store(dst[offset : offset+count])
		},
	)
}

// Count returns the number of indices where predicate p holds.
func Count[T hwy.Floats](p hwy.Predicate, a, b []T) int {
	checkInputs(p, a, b)

	tag := hwy.ScalableTag[T]{}
	total := 0
	hwy.ProcessWithTail[T](tag, len(a),
		func(offset int) {
			total += hwy.ComparePackedMask(p, hwy.Load[T](tag, a[offset:]), hwy.Load[T](tag, b[offset:])).CountTrue()
		},
		func(offset, count int) {
			k := hwy.TailMask[T](tag, count)
			total += hwy.MaskedComparePackedMask(k, p, hwy.LoadPartial[T](tag, a[offset:]), hwy.LoadPartial[T](tag, b[offset:])).CountTrue()
		},
	)
	return total
}

// Bitmap returns a packed bitmap of predicate p over a and b: bit i%64 of
// word i/64 is set when the predicate holds at index i.
func Bitmap[T hwy.Floats](p hwy.Predicate, a, b []T) []uint64 {
	checkInputs(p, a, b)
	words := make([]uint64, (len(a)+63)/64)
	fillBitmap(p, a, b, words)
	return words
}

// fillBitmap ORs the predicate bits for a, b into words. Vectors hold at
// most 16 lanes and start on a multiple of their lane count, so one
// vector's bits never straddle two words.
func fillBitmap[T hwy.Floats](p hwy.Predicate, a, b []T, words []uint64) {
	tag := hwy.ScalableTag[T]{}
	put := func(offset int, m hwy.Mask[T]) {
		words[offset/64] |= hwy.BitsFromMask(m) << uint(offset%64)
	}
	hwy.ProcessWithTail[T](tag, len(a),
		func(offset int) {
			put(offset, hwy.ComparePackedMask(p, hwy.Load[T](tag, a[offset:]), hwy.Load[T](tag, b[offset:])))
		},
		func(offset, count int) {
			k := hwy.TailMask[T](tag, count)
			put(offset, hwy.MaskedComparePackedMask(k, p, hwy.LoadPartial[T](tag, a[offset:]), hwy.LoadPartial[T](tag, b[offset:])))
		},
	)
}

// ParallelSlices is Slices split across the pool's workers. Chunks start on
// vector boundaries, so the result is identical to Slices.
func ParallelSlices[T hwy.Floats](pool *workerpool.Pool, p hwy.Predicate, a, b, dst []T) {
	checkInputs(p, a, b)
	if len(dst) < len(a) {
		panic("compare: dst slice too short")
	}

	lanes := hwy.MaxLanes[T]()
	pool.ParallelFor(len(a), lanes, func(start, end int) {
		Slices(p, a[start:end], b[start:end], dst[start:end])
	})
}

// ParallelBitmap is Bitmap split across the pool's workers. Chunks start on
// 64-element boundaries so each worker owns whole words.
func ParallelBitmap[T hwy.Floats](pool *workerpool.Pool, p hwy.Predicate, a, b []T) []uint64 {
	checkInputs(p, a, b)
	words := make([]uint64, (len(a)+63)/64)
	pool.ParallelFor(len(a), 64, func(start, end int) {
		fillBitmap(p, a[start:end], b[start:end], words[start/64:])
	})
	return words
}
