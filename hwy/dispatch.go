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
	"os"
	"strconv"
)

// DispatchLevel is the widest vector instruction set detected at startup.
//
// Comparison results never depend on it. It only sets the width used by
// ScalableTag, which bulk helpers use to size their chunks.
type DispatchLevel int

const (
	// DispatchScalar indicates no vector unit was detected or HWY_NO_SIMD is set.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE. Reported at 128 bits, the minimum vector length.
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Width returns the vector width in bytes associated with the level.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector width in bytes for currentLevel.
var currentWidth = 16

// setLevel records the detected level, honoring HWY_NO_SIMD.
func setLevel(level DispatchLevel) {
	if NoSimdEnv() {
		level = DispatchScalar
	}
	currentLevel = level
	currentWidth = level.Width()
}

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes: 16, 32 or 64.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar level and 128-bit chunks are used regardless of CPU
// capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, unless it parses as false.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of T lanes at the current width.
//
// For example, with AVX2 (32 bytes): float32 has 8 lanes, float64 has 4.
func MaxLanes[T Lanes]() int {
	return currentWidth / laneSize[T]()
}
