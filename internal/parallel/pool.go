// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool distributes a batch of independent work items across a fixed
// number of worker goroutines, with work-stealing so a worker that
// finishes its own share early helps drain a slower worker's queue.
//
// WorkerPool is built for one-shot fan-out/fan-in: Dispatch blocks until
// every item in the batch has run. It is safe for concurrent use by a
// single caller issuing one Dispatch at a time; it is not a general
// purpose task queue.
type WorkerPool struct {
	workers int
}

// NewWorkerPool returns a pool sized for n workers. If n is 0 or
// negative, GOMAXPROCS is used.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool{workers: n}
}

// Workers returns the configured worker count.
func (p *WorkerPool) Workers() int { return p.workers }

// Dispatch runs fn once for every tile, distributing tiles round-robin
// across per-worker queues and letting idle workers steal from busier
// ones. It blocks until every tile has been processed.
func (p *WorkerPool) Dispatch(tiles []Tile, fn func(Tile)) {
	if len(tiles) == 0 {
		return
	}
	if len(tiles) == 1 || p.workers == 1 {
		for _, t := range tiles {
			fn(t)
		}
		return
	}

	n := p.workers
	if n > len(tiles) {
		n = len(tiles)
	}

	queues := make([]chan Tile, n)
	for i := range queues {
		// Buffer enough for the round-robin share plus a little slack for
		// stolen items.
		queues[i] = make(chan Tile, len(tiles)/n+2)
	}
	for i, t := range tiles {
		queues[i%n] <- t
	}
	for _, q := range queues {
		close(q)
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for id := 0; id < n; id++ {
		go func(id int) {
			defer wg.Done()
			for t := range queues[id] {
				fn(t)
			}
			// Own queue drained; steal from others still running.
			for i := 0; i < n; i++ {
				if i == id {
					continue
				}
				for t := range queues[i] {
					fn(t)
				}
			}
		}(id)
	}
	wg.Wait()
}
