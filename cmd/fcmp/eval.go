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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eiosisorg/simde-sub000/hwy"
)

type evalOptions struct {
	pred   string
	typ    string
	scalar bool
	a, b   []string
}

func (a *app) evalCmd() *cobra.Command {
	var opts evalOptions
	cmd := &cobra.Command{
		Use:   "eval -p PREDICATE -a LANES -b LANES",
		Short: "Compare two vectors with one predicate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := hwy.ParsePredicate(opts.pred)
			if err != nil {
				return err
			}
			bits, err := parseType(opts.typ)
			if err != nil {
				return err
			}
			log := a.log.WithPredicate(p)
			if bits == 32 {
				return runEval[float32](cmd.Context(), cmd.OutOrStdout(), log, p, opts)
			}
			return runEval[float64](cmd.Context(), cmd.OutOrStdout(), log, p, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.pred, "pred", "p", "", "predicate mnemonic (NLT_US, _CMP_EQ_OQ) or selector (0..31)")
	cmd.Flags().StringVarP(&opts.typ, "type", "t", "f32", "lane type: f32 or f64")
	cmd.Flags().BoolVar(&opts.scalar, "scalar", false, "compare lane 0 only and pass the rest of a through")
	cmd.Flags().StringSliceVarP(&opts.a, "a", "a", nil, "comma-separated lanes of the first operand")
	cmd.Flags().StringSliceVarP(&opts.b, "b", "b", nil, "comma-separated lanes of the second operand")
	_ = cmd.MarkFlagRequired("pred")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

// evalVectors parses and validates both operands.
func evalVectors[T hwy.Floats](opts evalOptions) (x, y hwy.Vec[T], err error) {
	la, err := parseLanes[T](opts.a)
	if err != nil {
		return x, y, fmt.Errorf("--a: %w", err)
	}
	lb, err := parseLanes[T](opts.b)
	if err != nil {
		return x, y, fmt.Errorf("--b: %w", err)
	}
	if err := hwy.ValidateLanes[T](len(la)); err != nil {
		return x, y, fmt.Errorf("--a: %w", err)
	}
	if len(la) != len(lb) {
		return x, y, &hwy.ShapeMismatchError{ALanes: len(la), BLanes: len(lb)}
	}
	return hwy.Of(la...), hwy.Of(lb...), nil
}

func runEval[T hwy.Floats](ctx context.Context, w io.Writer, log *Logger, p hwy.Predicate, opts evalOptions) error {
	x, y, err := evalVectors[T](opts)
	shape := hwy.ShapeName[T](len(opts.a))
	if err != nil {
		log.LogEval(ctx, shape, opts.scalar, 0, err)
		return err
	}

	var result hwy.Vec[T]
	var mask hwy.Mask[T]
	if opts.scalar {
		result = hwy.CompareScalar(p, x, y)
		mask = hwy.CompareScalarMask(p, x, y)
	} else {
		result = hwy.ComparePacked(p, x, y)
		mask = hwy.ComparePackedMask(p, x, y)
	}
	maskBits := hwy.BitsFromMask(mask)
	log.LogEval(ctx, shape, opts.scalar, maskBits, nil)

	d := p.Definition()
	fmt.Fprintf(w, "_CMP_%s (0x%02X) %s: relation=%s negated=%v nan=%s signaling=%v\n",
		p, uint8(p), shape, d.Relation, d.Negated, d.NaN, d.Signaling)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LANE\tA\tB\tRESULT")
	as, bs, rs := formatLanes(x.Data()), formatLanes(y.Data()), formatLanes(result.Data())
	for i := range as {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, as[i], bs[i], rs[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "mask 0b%0*b\n", x.NumLanes(), maskBits)
	return nil
}
