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
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		mnemonic string
		want     string
	}{
		{"EQ_OQ", "CmpEqOQ"},
		{"NLT_US", "CmpNltUS"},
		{"UNORD_Q", "CmpUnordQ"},
		{"ORD_S", "CmpOrdS"},
		{"FALSE_OS", "CmpFalseOS"},
		{"TRUE_UQ", "CmpTrueUQ"},
	}
	for _, tt := range tests {
		got, err := Identifier(tt.mnemonic)
		if err != nil {
			t.Errorf("Identifier(%q): %v", tt.mnemonic, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Identifier(%q) = %q, want %q", tt.mnemonic, got, tt.want)
		}
	}

	for _, bad := range []string{"", "EQ", "_OQ", "EQ_", "EQ_XX"} {
		if _, err := Identifier(bad); err == nil {
			t.Errorf("Identifier(%q): expected error", bad)
		}
	}
}

func TestMnemonicsUnique(t *testing.T) {
	if len(Mnemonics) != 32 {
		t.Fatalf("got %d mnemonics, want 32", len(Mnemonics))
	}
	seen := make(map[string]int)
	for i, m := range Mnemonics {
		if j, ok := seen[m]; ok {
			t.Errorf("mnemonic %q at %d and %d", m, j, i)
		}
		seen[m] = i
	}
	// The upper half repeats the lower half with the other signaling flavor.
	for i := 0; i < 16; i++ {
		lo, _, _ := strings.Cut(Mnemonics[i], "_")
		hi, _, _ := strings.Cut(Mnemonics[i+16], "_")
		if lo != hi {
			t.Errorf("selector %d is %s but %d is %s", i, Mnemonics[i], i+16, Mnemonics[i+16])
		}
	}
}

// TestGeneratedFileUpToDate fails when hwy/predicate_names.go was edited by
// hand or the generator changed without re-running go generate.
func TestGeneratedFileUpToDate(t *testing.T) {
	got, err := Generate("hwy")
	if err != nil {
		t.Fatal(err)
	}
	checkedIn, err := os.ReadFile(filepath.Join("..", "..", "hwy", "predicate_names.go"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := format.Source(checkedIn)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("hwy/predicate_names.go is stale; run go generate ./hwy (-checked-in +generated):\n%s", diff)
	}
}
