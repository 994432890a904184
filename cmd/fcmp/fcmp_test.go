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
	"context"
	"log/slog"
	"math"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eiosisorg/simde-sub000/hwy"
)

// run executes fcmp with args and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(envLogLevel, "error")
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseLane(t *testing.T) {
	tests := []struct {
		in     string
		bits32 uint64
		bits64 uint64
	}{
		{"1", 0x3F80_0000, 0x3FF0_0000_0000_0000},
		{"-0", 0x8000_0000, 0x8000_0000_0000_0000},
		{"NaN", 0x7FC0_0000, 0x7FF8_0000_0000_0000},
		{"snan", 0x7F80_0001, 0x7FF0_0000_0000_0001},
		{" -inf ", 0xFF80_0000, 0xFFF0_0000_0000_0000},
		{"0x7F800001", 0x7F80_0001, 0x7F80_0001},
	}
	for _, tt := range tests {
		f32, err := parseLane[float32](tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.bits32, toBits(f32), "float32 %q", tt.in)

		f64, err := parseLane[float64](tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.bits64, toBits(f64), "float64 %q", tt.in)
	}

	for _, bad := range []string{"", "one", "0x1_0000_0000", "1e40"} {
		_, err := parseLane[float32](bad)
		assert.Error(t, err, "float32 %q", bad)
	}
	_, err := parseLane[float64]("0xZZ")
	assert.Error(t, err)
}

func TestFormatLane(t *testing.T) {
	assert.Equal(t, "1 (0x3F800000)", formatLane(float32(1)))
	assert.Equal(t, "NaN (0xFFFFFFFFFFFFFFFF)", formatLane(math.Float64frombits(math.MaxUint64)))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogJSON, "")
	t.Setenv(envWorkers, "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)

	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogJSON, "true")
	t.Setenv(envWorkers, "3")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 3, cfg.Workers)

	t.Setenv(envLogLevel, "chatty")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, envLogLevel)

	t.Setenv(envLogLevel, "info")
	t.Setenv(envWorkers, "-2")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, envWorkers)
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, Config{LogLevel: slog.LevelDebug, LogJSON: true}).WithPredicate(hwy.CmpNltUS)
	log.LogEval(context.Background(), "f32x4", false, 0b1110, nil)
	assert.Contains(t, buf.String(), `"predicate":"NLT_US"`)
	assert.Contains(t, buf.String(), `"mask":14`)
}

func TestTableCmd(t *testing.T) {
	out, err := run(t, "", "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 33)
	assert.Contains(t, lines[0], "MNEMONIC")
	assert.Contains(t, lines[6], "_CMP_NLT_US")

	out, err = run(t, "", "table", "--signaling")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 17)
	assert.NotContains(t, out, "_CMP_EQ_OQ")

	_, err = run(t, "", "table", "--signaling", "--quiet")
	assert.Error(t, err)
}

func TestEvalCmdPacked(t *testing.T) {
	out, err := run(t, "", "eval", "-p", "NLT_US", "--a=1,nan,3,4", "--b=2,2,2,2")
	require.NoError(t, err)
	assert.Contains(t, out, "_CMP_NLT_US (0x05) f32x4")
	assert.Contains(t, out, "mask 0b1110")
	assert.Contains(t, out, "0xFFFFFFFF")
}

func TestEvalCmdScalar(t *testing.T) {
	out, err := run(t, "", "eval", "-p", "0x11", "-t", "f64", "--scalar", "--a=1,7", "--b=2,8")
	require.NoError(t, err)
	assert.Contains(t, out, "_CMP_LT_OQ (0x11) f64x2")
	assert.Contains(t, out, "mask 0b01")
	// Lane 1 passes a through untouched.
	assert.Contains(t, out, "7 (0x401C000000000000)")
}

func TestEvalCmdErrors(t *testing.T) {
	_, err := run(t, "", "eval", "-p", "32", "--a=1,2,3,4", "--b=1,2,3,4")
	assert.ErrorIs(t, err, hwy.ErrInvalidPredicate)

	_, err = run(t, "", "eval", "-p", "EQ_OQ", "--a=1,2,3", "--b=1,2,3")
	assert.ErrorIs(t, err, hwy.ErrInvalidShape)

	_, err = run(t, "", "eval", "-p", "EQ_OQ", "--a=1,2,3,4", "--b=1,2,3,4,5,6,7,8")
	assert.ErrorIs(t, err, hwy.ErrInvalidShape)

	_, err = run(t, "", "eval", "-p", "EQ_OQ", "-t", "f16", "--a=1,2,3,4", "--b=1,2,3,4")
	assert.ErrorContains(t, err, "unknown type")

	_, err = run(t, "", "eval", "-p", "EQ_OQ", "--a=1,2,3,x", "--b=1,2,3,4")
	assert.ErrorContains(t, err, "--a")
}

func TestTruthRows(t *testing.T) {
	values := []float32{1, float32(math.NaN())}
	rows, err := truthRows(context.Background(), 2, hwy.CmpUnordQ, values)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{false, true}, {true, true}}, rows)

	rows, err = truthRows(context.Background(), 1, hwy.CmpNeqOQ, values)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{false, false}, {false, false}}, rows)

	_, err = truthRows(context.Background(), 4, hwy.Predicate(40), values)
	assert.ErrorIs(t, err, hwy.ErrInvalidPredicate)
}

func TestGridCmd(t *testing.T) {
	out, err := run(t, "", "grid", "-p", "GE_OS", "--values", "0,-0,1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	// 0 >= -0 holds: signed zeros compare equal.
	assert.Equal(t, []string{"0", "T", "T", "."}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"1", "T", "T", "T"}, strings.Fields(lines[4]))
}

func TestScanCmd(t *testing.T) {
	input := "1 2\n# comment\n\n3 3\nnan 1\n-inf 0x7F800000\n"
	out, err := run(t, input, "scan", "-p", "LT_OQ", "--indices")
	require.NoError(t, err)
	assert.Equal(t, "_CMP_LT_OQ: 2 of 4 pairs match\n0\n3\n", out)

	out, err = run(t, input, "scan", "-p", "UNORD_Q", "-t", "f64")
	require.NoError(t, err)
	assert.Equal(t, "_CMP_UNORD_Q: 1 of 4 pairs match\n", out)

	_, err = run(t, "1 2 3\n", "scan", "-p", "LT_OQ")
	assert.ErrorContains(t, err, "line 1")
}

func TestInfoCmd(t *testing.T) {
	out, err := run(t, "", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "level:        "+hwy.CurrentName())
	assert.Contains(t, out, "float64:")
}
