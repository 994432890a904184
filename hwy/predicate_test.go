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
	"strings"
	"testing"
)

func TestPredicateTable(t *testing.T) {
	// Selectors 0..15; selector s+16 must decode to the same triple.
	want := [16]struct {
		rel     Relation
		negated bool
		nan     NaNPolicy
	}{
		{RelEqual, false, NaNForcesFalse},
		{RelLess, false, NaNForcesFalse},
		{RelLessEqual, false, NaNForcesFalse},
		{RelUnordered, false, NaNIgnored},
		{RelNotEqual, false, NaNForcesTrue},
		{RelLess, true, NaNForcesTrue},
		{RelLessEqual, true, NaNForcesTrue},
		{RelOrdered, false, NaNIgnored},
		{RelEqual, false, NaNForcesTrue},
		{RelGreaterEqual, true, NaNForcesTrue},
		{RelGreater, true, NaNForcesTrue},
		{RelAlwaysFalse, false, NaNIgnored},
		{RelNotEqual, false, NaNForcesFalse},
		{RelGreaterEqual, false, NaNForcesFalse},
		{RelGreater, false, NaNForcesFalse},
		{RelAlwaysTrue, false, NaNIgnored},
	}

	for s, w := range want {
		for _, p := range []Predicate{Predicate(s), Predicate(s + 16)} {
			d := p.Definition()
			if d.Relation != w.rel || d.Negated != w.negated || d.NaN != w.nan {
				t.Errorf("predicate %d (%v): got {%v negated=%v nan=%v}, want {%v negated=%v nan=%v}",
					p, p, d.Relation, d.Negated, d.NaN, w.rel, w.negated, w.nan)
			}
		}
	}
}

func TestPredicateSignalingMatchesMnemonic(t *testing.T) {
	for p := Predicate(0); p < NumPredicates; p++ {
		name := p.String()
		want := strings.HasSuffix(name, "S")
		if got := p.Definition().Signaling; got != want {
			t.Errorf("%v: Signaling = %v, want %v", name, got, want)
		}
		if p < 16 && p.Definition().Signaling == (p+16).Definition().Signaling {
			t.Errorf("%v and %v have the same Signaling bit", p, p+16)
		}
	}
}

func TestPredicateMnemonicMatchesRelation(t *testing.T) {
	// Cross-check the generated names against the hand-written table.
	prefixes := map[string]struct {
		rel     Relation
		negated bool
	}{
		"EQ":    {RelEqual, false},
		"LT":    {RelLess, false},
		"LE":    {RelLessEqual, false},
		"GE":    {RelGreaterEqual, false},
		"GT":    {RelGreater, false},
		"NEQ":   {RelNotEqual, false},
		"NLT":   {RelLess, true},
		"NLE":   {RelLessEqual, true},
		"NGE":   {RelGreaterEqual, true},
		"NGT":   {RelGreater, true},
		"FALSE": {RelAlwaysFalse, false},
		"TRUE":  {RelAlwaysTrue, false},
		"ORD":   {RelOrdered, false},
		"UNORD": {RelUnordered, false},
	}

	for p := Predicate(0); p < NumPredicates; p++ {
		rel, suffix, _ := strings.Cut(p.String(), "_")
		w, ok := prefixes[rel]
		if !ok {
			t.Fatalf("%v: unknown mnemonic prefix %q", p, rel)
		}
		d := p.Definition()
		if d.Relation != w.rel || d.Negated != w.negated {
			t.Errorf("%v: got %v negated=%v, want %v negated=%v", p, d.Relation, d.Negated, w.rel, w.negated)
		}
		if d.NaN == NaNIgnored {
			continue
		}
		wantNaN := NaNForcesFalse
		if strings.HasPrefix(suffix, "U") {
			wantNaN = NaNForcesTrue
		}
		if d.NaN != wantNaN {
			t.Errorf("%v: NaN policy %v, want %v", p, d.NaN, wantNaN)
		}
	}
}

func TestPredicateInvalid(t *testing.T) {
	for _, p := range []Predicate{32, 33, 100, 255} {
		if p.Valid() {
			t.Errorf("Predicate(%d).Valid() = true", p)
		}
		if err := ValidatePredicate(p); !errors.Is(err, ErrInvalidPredicate) {
			t.Errorf("ValidatePredicate(%d) = %v, want ErrInvalidPredicate", p, err)
		}
		if _, err := Lookup(p); err == nil {
			t.Errorf("Lookup(%d): expected error", p)
		}
		if got := p.String(); !strings.HasPrefix(got, "Predicate(") {
			t.Errorf("Predicate(%d).String() = %q", p, got)
		}
		expectPanic(t, ErrInvalidPredicate, func() { p.Definition() })
	}
}

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		in   string
		want Predicate
	}{
		{"0", CmpEqOQ},
		{"5", CmpNltUS},
		{"0x1f", CmpTrueUS},
		{"NLT_US", CmpNltUS},
		{"nlt_us", CmpNltUS},
		{"_CMP_UNORD_Q", CmpUnordQ},
		{" _cmp_gt_oq ", CmpGtOQ},
		{"31", CmpTrueUS},
	}
	for _, tt := range tests {
		got, err := ParsePredicate(tt.in)
		if err != nil {
			t.Errorf("ParsePredicate(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePredicate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"32", "-1", "LT", "EQ_XX", "", "0x20"} {
		if _, err := ParsePredicate(in); !errors.Is(err, ErrInvalidPredicate) {
			t.Errorf("ParsePredicate(%q): got %v, want ErrInvalidPredicate", in, err)
		}
	}
}

func TestPredicateStringRoundTrip(t *testing.T) {
	for p := Predicate(0); p < NumPredicates; p++ {
		got, err := ParsePredicate(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePredicate(%q) = %v, %v; want %v", p.String(), got, err, p)
		}
	}
}

// expectPanic runs fn and checks that it panics with an error matching want.
func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("expected panic matching %v", want)
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Errorf("panic value %v (%T) is not an error", r, r)
			return
		}
		if !errors.Is(err, want) {
			t.Errorf("panic %v does not match %v", err, want)
		}
	}()
	fn()
}
