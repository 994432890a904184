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

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/eiosisorg/simde-sub000/hwy"
)

func bitSize[T hwy.Floats]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}

func fromBits[T hwy.Floats](bits uint64) T {
	if bitSize[T]() == 32 {
		return T(math.Float32frombits(uint32(bits)))
	}
	return T(math.Float64frombits(bits))
}

func toBits[T hwy.Floats](v T) uint64 {
	switch x := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	}
	return 0
}

// namedLanes are the special values accepted by parseLane, as float32 and
// float64 bit patterns.
var namedLanes = map[string][2]uint64{
	"nan":  {0x7FC0_0000, 0x7FF8_0000_0000_0000},
	"+nan": {0x7FC0_0000, 0x7FF8_0000_0000_0000},
	"-nan": {0xFFC0_0000, 0xFFF8_0000_0000_0000},
	"snan": {0x7F80_0001, 0x7FF0_0000_0000_0001},
	"inf":  {0x7F80_0000, 0x7FF0_0000_0000_0000},
	"+inf": {0x7F80_0000, 0x7FF0_0000_0000_0000},
	"-inf": {0xFF80_0000, 0xFFF0_0000_0000_0000},
	"-0":   {0x8000_0000, 0x8000_0000_0000_0000},
}

// parseLane parses one lane value. Besides decimal numbers it accepts the
// names in namedLanes and raw IEEE bit patterns written as 0x-prefixed hex.
func parseLane[T hwy.Floats](s string) (T, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if bits, ok := namedLanes[name]; ok {
		if bitSize[T]() == 32 {
			return fromBits[T](bits[0]), nil
		}
		return fromBits[T](bits[1]), nil
	}
	if hex, ok := strings.CutPrefix(name, "0x"); ok {
		bits, err := strconv.ParseUint(hex, 16, bitSize[T]())
		if err != nil {
			return 0, fmt.Errorf("lane %q: %w", s, err)
		}
		return fromBits[T](bits), nil
	}
	f, err := strconv.ParseFloat(name, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("lane %q: %w", s, err)
	}
	return T(f), nil
}

func parseLanes[T hwy.Floats](values []string) ([]T, error) {
	lanes := make([]T, 0, len(values))
	for _, s := range values {
		v, err := parseLane[T](s)
		if err != nil {
			return nil, err
		}
		lanes = append(lanes, v)
	}
	return lanes, nil
}

// formatLane prints a lane as its value and its bit pattern.
func formatLane[T hwy.Floats](v T) string {
	digits := bitSize[T]() / 4
	return fmt.Sprintf("%v (0x%0*X)", v, digits, toBits(v))
}

func formatLanes[T hwy.Floats](lanes []T) []string {
	return lo.Map(lanes, func(v T, _ int) string { return formatLane(v) })
}

// parseType maps a --type flag value to a lane width in bits.
func parseType(s string) (int, error) {
	switch strings.ToLower(s) {
	case "f32", "float32", "ps", "ss":
		return 32, nil
	case "f64", "float64", "pd", "sd":
		return 64, nil
	}
	return 0, fmt.Errorf("unknown type %q (want f32 or f64)", s)
}
