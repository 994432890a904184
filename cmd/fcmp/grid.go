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
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eiosisorg/simde-sub000/hwy"
)

// gridValues are the row and column operands of the truth table.
var gridValues = []string{"-inf", "-1", "-0", "0", "1", "inf", "nan", "snan"}

func (a *app) gridCmd() *cobra.Command {
	var pred, typ string
	var values []string
	cmd := &cobra.Command{
		Use:   "grid -p PREDICATE",
		Short: "Print a predicate's truth table over special values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := hwy.ParsePredicate(pred)
			if err != nil {
				return err
			}
			bits, err := parseType(typ)
			if err != nil {
				return err
			}
			values = lo.Uniq(values)
			if bits == 32 {
				return runGrid[float32](cmd.Context(), cmd.OutOrStdout(), a.cfg.Workers, p, values)
			}
			return runGrid[float64](cmd.Context(), cmd.OutOrStdout(), a.cfg.Workers, p, values)
		},
	}
	cmd.Flags().StringVarP(&pred, "pred", "p", "", "predicate mnemonic or selector")
	cmd.Flags().StringVarP(&typ, "type", "t", "f32", "lane type: f32 or f64")
	cmd.Flags().StringSliceVar(&values, "values", gridValues, "operands for rows (a) and columns (b)")
	_ = cmd.MarkFlagRequired("pred")
	return cmd
}

// truthRows evaluates p for every (values[i], values[j]) pair. Rows are
// computed concurrently, at most workers at a time.
func truthRows[T hwy.Floats](ctx context.Context, workers int, p hwy.Predicate, values []T) ([][]bool, error) {
	if err := hwy.ValidatePredicate(p); err != nil {
		return nil, err
	}
	rows := make([][]bool, len(values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, x := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = lo.Map(values, func(y T, _ int) bool {
				return hwy.CompareLane(p, x, y)
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func runGrid[T hwy.Floats](ctx context.Context, w io.Writer, workers int, p hwy.Predicate, names []string) error {
	values, err := parseLanes[T](names)
	if err != nil {
		return err
	}
	rows, err := truthRows(ctx, workers, p, values)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "_CMP_%s: row a, column b, T where the predicate holds\n", p)
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "a\\b\t%s\t\n", strings.Join(names, "\t"))
	for i, row := range rows {
		cells := lo.Map(row, func(set bool, _ int) string { return lo.Ternary(set, "T", ".") })
		fmt.Fprintf(tw, "%s\t%s\t\n", names[i], strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
