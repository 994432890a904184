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
	"errors"
	"fmt"
)

var (
	// ErrInvalidPredicate is matched by errors.Is for any selector outside [0, 31].
	ErrInvalidPredicate = errors.New("hwy: invalid predicate")

	// ErrInvalidShape is matched by errors.Is for unsupported or mismatched vector shapes.
	ErrInvalidShape = errors.New("hwy: invalid vector shape")
)

// PredicateError reports a selector outside [0, 31].
//
// The comparison entry points panic with a *PredicateError; use
// ValidatePredicate to check a selector without panicking.
type PredicateError struct {
	Predicate Predicate
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("hwy: invalid predicate %d (want 0..%d)", uint8(e.Predicate), NumPredicates-1)
}

func (e *PredicateError) Unwrap() error { return ErrInvalidPredicate }

// ShapeError reports a vector whose lanes do not form a 128, 256 or
// 512-bit shape.
type ShapeError struct {
	Lanes     int
	LaneBytes int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("hwy: unsupported shape: %d lanes of %d bytes", e.Lanes, e.LaneBytes)
}

func (e *ShapeError) Unwrap() error { return ErrInvalidShape }

// ShapeMismatchError reports two operands with different lane counts.
type ShapeMismatchError struct {
	ALanes int
	BLanes int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("hwy: shape mismatch: %d lanes vs %d lanes", e.ALanes, e.BLanes)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrInvalidShape }

// ValidatePredicate returns a *PredicateError if p is outside [0, 31].
func ValidatePredicate(p Predicate) error {
	if !p.Valid() {
		return &PredicateError{Predicate: p}
	}
	return nil
}

// ValidateLanes returns a *ShapeError unless n lanes of T form a 128, 256
// or 512-bit vector.
func ValidateLanes[T Lanes](n int) error {
	if !validWidth(n * laneSize[T]()) {
		return &ShapeError{Lanes: n, LaneBytes: laneSize[T]()}
	}
	return nil
}

// ValidateShapes returns an error unless a and b have the same supported shape.
func ValidateShapes[T Lanes](a, b Vec[T]) error {
	if !validWidth(a.Width()) {
		return &ShapeError{Lanes: a.NumLanes(), LaneBytes: laneSize[T]()}
	}
	if a.NumLanes() != b.NumLanes() {
		return &ShapeMismatchError{ALanes: a.NumLanes(), BLanes: b.NumLanes()}
	}
	return nil
}

// mustValidate panics with the first validation error, if any. It runs
// before any lane is compared.
func mustValidate[T Lanes](p Predicate, a, b Vec[T]) {
	if err := ValidatePredicate(p); err != nil {
		panic(err)
	}
	if err := ValidateShapes(a, b); err != nil {
		panic(err)
	}
}
