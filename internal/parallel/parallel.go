// Package parallel runs index-range work across a bounded set of goroutines.
package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest range worth handing to its own goroutine.
const minChunk = 64

var workers atomic.Int64

func init() {
	workers.Store(int64(runtime.GOMAXPROCS(0)))
}

// SetWorkers caps the number of goroutines For uses. Values below one select
// sequential execution.
func SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	workers.Store(int64(n))
}

// Workers reports the current goroutine cap.
func Workers() int { return int(workers.Load()) }

// For calls fn over disjoint [lo, hi) ranges that together cover [0, n) and
// returns once every range has been processed. fn must only write state owned
// by its own range.
func For(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	w := Workers()
	if w <= 1 || n <= minChunk {
		fn(0, n)
		return
	}
	chunks := (n + minChunk - 1) / minChunk
	if chunks > w {
		chunks = w
	}
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(w)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
