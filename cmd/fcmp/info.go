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
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/eiosisorg/simde-sub000/hwy"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected dispatch level and vector shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "arch:         %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "level:        %s\n", hwy.CurrentName())
			fmt.Fprintf(w, "width:        %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(w, "float32:      %s\n", hwy.ShapeName[float32](hwy.MaxLanes[float32]()))
			fmt.Fprintf(w, "float64:      %s\n", hwy.ShapeName[float64](hwy.MaxLanes[float64]()))
			fmt.Fprintf(w, "avx/avx512:   %v/%v\n", hwy.HasAVX(), hwy.HasAVX512())
			fmt.Fprintf(w, "HWY_NO_SIMD:  %v\n", hwy.NoSimdEnv())
			fmt.Fprintf(w, "workers:      %d\n", a.cfg.Workers)
			return nil
		},
	}
}
