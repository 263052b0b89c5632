// Package gls implements the Guided Local Search driver of spec.md §4.4: it
// iterates localsearch.Run, and between local minima penalises the
// in-tour edges of maximum utility so the next local search escapes the
// minimum it just found.
//
// Grounded on the teacher's tsp/solve.go (top-level driver shape, Options
// struct) and tsp/types.go (TSResult-style result struct, sentinel errors),
// generalised from the teacher's single-pass 2-opt/Christofides dispatch to
// a penalise-and-reoptimise loop.
package gls

import (
	"errors"

	"github.com/arlotaylor/glstsp/tsptour"
)

// Sentinel errors for the GLS driver.
var (
	// ErrTooFewSteps indicates a negative step count was requested.
	ErrTooFewSteps = errors.New("gls: step count must be non-negative")

	// ErrTooFewWorkers indicates a non-positive worker count was requested.
	ErrTooFewWorkers = errors.New("gls: worker count must be positive")
)

// Options configures a GLS run. The zero value is invalid; use
// DefaultOptions and override as needed, matching the teacher's
// Options/DefaultOptions configuration convention.
type Options struct {
	// Steps is S, the number of penalise-and-reoptimise iterations (§4.4
	// step 5). Zero means the initial local search result is returned
	// unchanged (after the final-descent pass, which is then a no-op).
	Steps int

	// Workers is the fan-out of every local-search scan (see
	// localsearch.Run).
	Workers int
}

// DefaultOptions returns the conservative default: a modest step budget and
// a sequential scan, safe for any N.
func DefaultOptions() Options {
	return Options{Steps: 50, Workers: 1}
}

// Route is the final output of a GLS run: a tour and its true cost under
// the original (unpenalised) matrix.
type Route struct {
	Tour *tsptour.Tour
	Cost int32
}
