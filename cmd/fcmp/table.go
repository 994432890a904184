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
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/eiosisorg/simde-sub000/hwy"
)

func (a *app) tableCmd() *cobra.Command {
	var signaling, quiet bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the selector table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if signaling && quiet {
				return errors.New("--signaling and --quiet are mutually exclusive")
			}
			preds := lo.Map(lo.Range(hwy.NumPredicates), func(i int, _ int) hwy.Predicate {
				return hwy.Predicate(i)
			})
			preds = lo.Filter(preds, func(p hwy.Predicate, _ int) bool {
				d := p.Definition()
				return (!signaling || d.Signaling) && (!quiet || !d.Signaling)
			})

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEL\tMNEMONIC\tRELATION\tNEGATED\tON NAN\tSIGNALING")
			for _, p := range preds {
				d := p.Definition()
				fmt.Fprintf(tw, "0x%02X\t_CMP_%s\t%s\t%v\t%s\t%v\n",
					uint8(p), p, d.Relation, d.Negated, d.NaN, d.Signaling)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&signaling, "signaling", false, "only list signaling (S) predicates")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "only list quiet (Q) predicates")
	return cmd
}
