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

// Command cmpgen generates the predicate selector constants and mnemonic
// table of package hwy.
//
// Usage:
//
//	cmpgen -output predicate_names.go
//
// Or via go:generate from package hwy:
//
//	//go:generate go run ../cmd/cmpgen -output predicate_names.go
//
// Selector i gets the constant "Cmp" + the title-cased relation + the Q/S
// suffix of mnemonic i, e.g. _CMP_NLT_US becomes CmpNltUS.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "", "Output file (default: stdout)")
	packageOut = flag.String("pkg", "hwy", "Output package name")
)

func main() {
	flag.Parse()

	src, err := Generate(*packageOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%d predicates)\n", *outputFile, len(Mnemonics))
}
