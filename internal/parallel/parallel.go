// Package parallel provides parallel execution utilities for coarse
// independent work items.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Each executes f(i) for i in [0, n) across at most workers goroutines and
// blocks until all calls have returned. workers <= 0 selects one worker
// per CPU. Items are claimed one at a time from a shared counter, so
// uneven per-item costs stay balanced across the workers.
//
// f must be safe to call concurrently for distinct indices.
func Each(n, workers int, f func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, n)
	if workers == 1 {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				f(i)
			}
		}()
	}
	wg.Wait()
}
