// Package parallel provides data-parallel loop helpers for compute kernels.
//
// Parallelism lives strictly inside kernels: workers partition disjoint index
// ranges, so results never depend on the worker count or schedule.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel loop execution.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// Sequential returns a config that disables parallelism entirely.
func Sequential() Config {
	return Config{Enabled: false}
}

// For executes f(i) for i in [0, n), partitioned across workers.
// Falls back to a sequential loop when parallelism is disabled or n is small.
func For(n int, cfg Config, f func(i int)) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
