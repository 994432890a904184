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

// Command fcmp evaluates the 32 floating-point comparison predicates from
// the command line.
//
// Usage:
//
//	fcmp table                                   # the selector table
//	fcmp eval -p NLT_US -a 1,nan,3,4 -b 2,2,2,2  # one packed comparison
//	fcmp eval -p 0x11 -t f64 --scalar -a 1,7 -b 2,8
//	fcmp grid -p NEQ_OQ                          # truth table over special values
//	fcmp scan -p LT_OQ pairs.txt                 # bulk compare "a b" lines
//	fcmp info                                    # dispatch level and lane counts
//
// Lanes accept decimal numbers, nan, -nan, snan, inf, -inf, -0 and raw bit
// patterns such as 0x7F800001.
//
// Logging is configured through FCMP_LOG_LEVEL and FCMP_LOG_JSON;
// FCMP_WORKERS bounds the parallelism of grid and scan.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once the root command has run.
type app struct {
	cfg Config
	log *Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: NoopLogger()}
	var verbose bool

	root := &cobra.Command{
		Use:           "fcmp",
		Short:         "Evaluate floating-point comparison predicates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = slog.LevelDebug
			}
			a.cfg = cfg
			a.log = NewLogger(cmd.ErrOrStderr(), cfg)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "if set, log at debug level")

	root.AddCommand(
		a.tableCmd(),
		a.evalCmd(),
		a.gridCmd(),
		a.scanCmd(),
		a.infoCmd(),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
