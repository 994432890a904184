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
	"log/slog"
	"runtime"

	"github.com/xyproto/env/v2"
)

// Environment variables read by LoadConfig.
const (
	envLogLevel = "FCMP_LOG_LEVEL" // slog level name: debug, info, warn, error
	envLogJSON  = "FCMP_LOG_JSON"  // any true-ish value switches to JSON logs
	envWorkers  = "FCMP_WORKERS"   // parallelism of grid and scan
)

// Config holds the settings shared by every subcommand.
type Config struct {
	LogLevel slog.Level
	LogJSON  bool
	Workers  int
}

// LoadConfig reads Config from the environment, falling back to warn-level
// text logs and GOMAXPROCS workers.
func LoadConfig() (Config, error) {
	cfg := Config{
		LogJSON: env.Bool(envLogJSON),
		Workers: env.Int(envWorkers, runtime.GOMAXPROCS(0)),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(env.Str(envLogLevel, "warn"))); err != nil {
		return Config{}, fmt.Errorf("%s: %w", envLogLevel, err)
	}
	if cfg.Workers <= 0 {
		return Config{}, fmt.Errorf("%s: must be positive, got %d", envWorkers, cfg.Workers)
	}
	return cfg, nil
}
