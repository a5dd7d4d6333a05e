// SPDX-License-Identifier: MIT

// Package parallel splits an index range [0, n) into contiguous chunks and
// runs a kernel over each chunk on a bounded set of goroutines.
//
// Every index is owned by exactly one chunk, so kernels that write only to
// their own output slots produce identical results for any worker count.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

// MinChunk is the smallest chunk handed to a goroutine. Smaller ranges run
// inline on the caller's goroutine.
const MinChunk = 64

// Range invokes fn(lo, hi) over disjoint chunks covering [0, n).
// workers <= 1 (or n <= MinChunk) runs fn(0, n) synchronously.
// The first non-nil error returned by any chunk is returned.
// Complexity: O(n) total work plus O(workers) scheduling.
func Range(n, workers int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n <= MinChunk {
		return fn(0, n)
	}

	// Cap chunk count so each chunk carries at least MinChunk indices.
	chunks := workers
	if maxChunks := n / MinChunk; chunks > maxChunks {
		chunks = maxChunks
	}
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}
