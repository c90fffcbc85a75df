// Package parallel fans independent index ranges out to worker goroutines.
//
// Callers must only parallelize work whose writes land in disjoint buffer
// regions: rows of a freshly allocated output qualify, arbitrary views do not.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior. The zero Config runs everything
// sequentially.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine.
}

// DefaultConfig enables one worker per CPU.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Chunks splits [0, n) into the contiguous ranges handed to workers. A
// sequential config yields a single range.
func Chunks(n int, cfg Config) []Range {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < max(cfg.MinChunkSize, 2) {
		return []Range{{0, n}}
	}
	size := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	chunks := make([]Range, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		chunks = append(chunks, Range{lo, min(lo+size, n)})
	}
	return chunks
}

// For executes f(i) for i in [0, n) and returns once every call is done.
func For(n int, f func(i int), cfg Config) {
	_ = ForErr(n, func(i int) error {
		f(i)
		return nil
	}, cfg)
}

// ForErr executes f(i) for i in [0, n). Every index runs even after a
// failure; the returned error is the one of the lowest failing index.
func ForErr(n int, f func(i int) error, cfg Config) error {
	chunks := Chunks(n, cfg)
	errs := make([]error, len(chunks))
	run := func(c int) {
		for i := chunks[c].Lo; i < chunks[c].Hi; i++ {
			if err := f(i); err != nil && errs[c] == nil {
				errs[c] = err
			}
		}
	}

	if len(chunks) == 1 {
		run(0)
	} else {
		var wg sync.WaitGroup
		for c := range chunks {
			c := c
			wg.Add(1)
			go func() {
				defer wg.Done()
				run(c)
			}()
		}
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
