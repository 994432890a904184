// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// splitting bulk comparisons across goroutines. A Pool is created once and
// reused across many calls, so no goroutines are spawned per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Chunk boundaries are multiples of 8, so every chunk starts on a
//	// vector boundary.
//	pool.ParallelFor(len(a), 8, func(start, end int) {
//	    compare.Slices(p, a[start:end], b[start:end], dst[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers*2),
	}
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close
// more than once is safe; calls made after Close run on the caller's
// goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous chunks and
// runs fn(start, end) on each. Every chunk except the last starts and ends
// on a multiple of align (align <= 0 means 1). It blocks until all chunks
// complete.
func (p *Pool) ParallelFor(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	align = max(align, 1)

	units := (n + align - 1) / align
	workers := min(p.numWorkers, units)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := ((units + workers - 1) / workers) * align
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- func() {
			defer wg.Done()
			fn(start, end)
		}
	}
	wg.Wait()
}

// ParallelForBatched hands out [0, n) in batches of batchSize using an
// atomic counter, which balances load when batches cost different amounts.
// It blocks until all batches complete.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		p.workC <- func() {
			defer wg.Done()
			for {
				start := int(next.Add(1)-1) * batchSize
				if start >= n {
					return
				}
				fn(start, min(start+batchSize, n))
			}
		}
	}
	wg.Wait()
}
