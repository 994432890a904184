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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eiosisorg/simde-sub000/hwy"
	"github.com/eiosisorg/simde-sub000/hwy/contrib/compare"
	"github.com/eiosisorg/simde-sub000/hwy/contrib/workerpool"
)

func (a *app) scanCmd() *cobra.Command {
	var pred, typ string
	var listIndices bool
	cmd := &cobra.Command{
		Use:   "scan -p PREDICATE [file]",
		Short: `Compare "a b" pairs read one per line from a file or stdin`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := hwy.ParsePredicate(pred)
			if err != nil {
				return err
			}
			bits, err := parseType(typ)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			pool := workerpool.New(a.cfg.Workers)
			defer pool.Close()
			s := scanner{pool: pool, log: a.log.WithPredicate(p), out: cmd.OutOrStdout(), indices: listIndices}
			if bits == 32 {
				return runScan[float32](cmd.Context(), s, p, in)
			}
			return runScan[float64](cmd.Context(), s, p, in)
		},
	}
	cmd.Flags().StringVarP(&pred, "pred", "p", "", "predicate mnemonic or selector")
	cmd.Flags().StringVarP(&typ, "type", "t", "f32", "lane type: f32 or f64")
	cmd.Flags().BoolVar(&listIndices, "indices", false, "also print the zero-based index of every match")
	_ = cmd.MarkFlagRequired("pred")
	return cmd
}

type scanner struct {
	pool    *workerpool.Pool
	log     *Logger
	out     io.Writer
	indices bool
}

// readPairs parses lines of two whitespace-separated lanes. Blank lines and
// lines starting with # are skipped.
func readPairs[T hwy.Floats](r io.Reader) (a, b []T, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: want 2 fields, got %d", line, len(fields))
		}
		pair, err := parseLanes[T](fields)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		a = append(a, pair[0])
		b = append(b, pair[1])
	}
	return a, b, sc.Err()
}

func runScan[T hwy.Floats](ctx context.Context, s scanner, p hwy.Predicate, r io.Reader) error {
	a, b, err := readPairs[T](r)
	if err != nil {
		s.log.LogScan(ctx, len(a), 0, s.pool.NumWorkers(), err)
		return err
	}

	words := compare.ParallelBitmap(s.pool, p, a, b)
	matches := 0
	var idx []int
	for i := range a {
		if words[i/64]>>(i%64)&1 == 1 {
			matches++
			if s.indices {
				idx = append(idx, i)
			}
		}
	}
	s.log.LogScan(ctx, len(a), matches, s.pool.NumWorkers(), nil)

	fmt.Fprintf(s.out, "_CMP_%s: %d of %d pairs match\n", p, matches, len(a))
	for _, i := range idx {
		fmt.Fprintln(s.out, i)
	}
	return nil
}
