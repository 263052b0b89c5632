// Package localsearch implements the parallel 2-opt engine of spec.md §4.3:
// given a cost matrix and a tour, repeatedly apply the first strictly
// improving 2-opt move found until none remains.
//
// Grounded on the teacher's tsp/two_opt.go (deterministic first-improvement
// 2-opt, sentinel errors, prefetched flat weight buffer) but replaces the
// permutation-array scan with a parallel scan over the edge-list
// representation's materialised edge buffer, using golang.org/x/sync/errgroup
// for fork/join and context cancellation as the "first-returned-wins" race
// described in spec.md §5.
package localsearch

import "errors"

// Sentinel errors for the local search engine.
var (
	// ErrDimensionMismatch indicates the matrix and tour sizes disagree.
	ErrDimensionMismatch = errors.New("localsearch: matrix and tour size mismatch")

	// ErrTooFewWorkers indicates a non-positive worker count was requested.
	ErrTooFewWorkers = errors.New("localsearch: worker count must be positive")
)
