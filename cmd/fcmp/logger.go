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
	"io"
	"log/slog"

	"github.com/eiosisorg/simde-sub000/hwy"
)

// Logger wraps slog.Logger with consistent field names for comparisons.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing to w at cfg.LogLevel, as JSON when
// cfg.LogJSON is set and as text otherwise.
func NewLogger(w io.Writer, cfg Config) *Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithPredicate adds the predicate mnemonic and selector.
func (l *Logger) WithPredicate(p hwy.Predicate) *Logger {
	return &Logger{
		Logger: l.Logger.With("predicate", p.String(), "selector", uint8(p)),
	}
}

// LogEval logs a single vector comparison.
func (l *Logger) LogEval(ctx context.Context, shape string, scalar bool, maskBits uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "eval failed",
			"shape", shape,
			"scalar", scalar,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "eval completed",
		"shape", shape,
		"scalar", scalar,
		"mask", maskBits,
	)
}

// LogScan logs a bulk comparison over n pairs.
func (l *Logger) LogScan(ctx context.Context, n, matches, workers int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"pairs", n,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "scan completed",
		"pairs", n,
		"matches", matches,
		"workers", workers,
	)
}
