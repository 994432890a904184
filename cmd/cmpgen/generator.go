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
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// Mnemonics lists the _CMP_* suffixes in selector order.
var Mnemonics = []string{
	"EQ_OQ", "LT_OS", "LE_OS", "UNORD_Q", "NEQ_UQ", "NLT_US", "NLE_US", "ORD_Q",
	"EQ_UQ", "NGE_US", "NGT_US", "FALSE_OQ", "NEQ_OQ", "GE_OS", "GT_OS", "TRUE_UQ",
	"EQ_OS", "LT_OQ", "LE_OQ", "UNORD_S", "NEQ_US", "NLT_UQ", "NLE_UQ", "ORD_S",
	"EQ_US", "NGE_UQ", "NGT_UQ", "FALSE_OS", "NEQ_OS", "GE_OQ", "GT_OQ", "TRUE_US",
}

// Identifier returns the Go constant name for a mnemonic: "NLT_US" -> "CmpNltUS".
func Identifier(mnemonic string) (string, error) {
	rel, suffix, ok := strings.Cut(mnemonic, "_")
	if !ok || rel == "" || suffix == "" {
		return "", fmt.Errorf("malformed mnemonic %q", mnemonic)
	}
	switch suffix {
	case "Q", "S", "OQ", "OS", "UQ", "US":
	default:
		return "", fmt.Errorf("mnemonic %q: unknown suffix %q", mnemonic, suffix)
	}
	return "Cmp" + cases.Title(language.English).String(strings.ToLower(rel)) + suffix, nil
}

// Generate returns the formatted source of the selector constants and the
// mnemonic table for package pkg.
func Generate(pkg string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cmpgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	fmt.Fprintf(&buf, "// Predicate selectors, one per _CMP_* encoding.\n")
	fmt.Fprintf(&buf, "const (\n")
	for i, m := range Mnemonics {
		name, err := Identifier(m)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "\t%s Predicate = 0x%02X // _CMP_%s\n", name, i, m)
	}
	fmt.Fprintf(&buf, ")\n\n")

	fmt.Fprintf(&buf, "// predicateMnemonics maps each selector to its _CMP_* suffix.\n")
	fmt.Fprintf(&buf, "var predicateMnemonics = [NumPredicates]string{\n")
	for _, m := range Mnemonics {
		fmt.Fprintf(&buf, "\t%q,\n", m)
	}
	fmt.Fprintf(&buf, "}\n")

	formatted, err := imports.Process("predicate_names.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}
