// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 7, 8, 9, 100, 1023} {
		hits := make([]int32, n)
		pool.ParallelFor(n, 8, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestParallelForAlignment(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const n, align = 100, 16
	var mu sync.Mutex
	var chunks [][2]int
	pool.ParallelFor(n, align, func(start, end int) {
		mu.Lock()
		chunks = append(chunks, [2]int{start, end})
		mu.Unlock()
	})

	for _, c := range chunks {
		if c[0]%align != 0 {
			t.Errorf("chunk %v does not start on a multiple of %d", c, align)
		}
		if c[1] != n && c[1]%align != 0 {
			t.Errorf("chunk %v does not end on a multiple of %d", c, align)
		}
	}
	if len(chunks) > pool.NumWorkers() {
		t.Errorf("got %d chunks for %d workers", len(chunks), pool.NumWorkers())
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForBatched(n, 10, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestZeroAndNegativeN(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, 4, func(start, end int) { called = true })
	pool.ParallelForBatched(-1, 4, func(start, end int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var calls int
	pool.ParallelFor(50, 4, func(start, end int) {
		calls++
		if start != 0 || end != 50 {
			t.Errorf("got chunk [%d, %d), want [0, 50)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("closed pool made %d calls, want 1", calls)
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelFor(len(data), 16, func(start, end int) {
			for i := start; i < end; i++ {
				data[i]++
			}
		})
	}
}
