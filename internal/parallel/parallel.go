// SPDX-License-Identifier: MIT

// Package parallel provides the data-parallel loop used by the mode-n product
// kernel. Work items must be independent: every index is handed to exactly
// one goroutine, so kernels that write disjoint output cells stay
// deterministic regardless of the worker count.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultMinChunkSize is the smallest number of items handed to one goroutine.
const DefaultMinChunkSize = 64

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // whether parallel execution is enabled
	NumWorkers   int  // number of worker goroutines to use
	MinChunkSize int  // minimum items per goroutine to avoid overhead
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()

	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: DefaultMinChunkSize,
	}
}

// Sequential returns a Config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: DefaultMinChunkSize}
}

// normalize clamps nonsensical values so ForRange never divides by zero.
func (c Config) normalize() Config {
	if c.NumWorkers < 1 {
		c.NumWorkers = 1
	}
	if c.MinChunkSize < 1 {
		c.MinChunkSize = 1
	}

	return c
}

// ForRange splits [0, n) into contiguous chunks and calls f(start, end) for
// each chunk. Falls back to a single f(0, n) call on the calling goroutine
// when parallelism is disabled, one worker is configured, or n is too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	cfg = cfg.normalize()
	if !cfg.Enabled || cfg.NumWorkers == 1 || n < 2*cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
