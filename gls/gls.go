package gls

import (
	"math"

	"github.com/arlotaylor/glstsp/localsearch"
	"github.com/arlotaylor/glstsp/tspmatrix"
	"github.com/arlotaylor/glstsp/tsptour"
)

// Solve runs the Guided Local Search driver of spec.md §4.4 starting from
// t0 (which is cloned; the caller's tour is left untouched) against cost
// matrix m. Steps is S, the number of penalise-and-reoptimise iterations.
func Solve(m *tspmatrix.SymmetricMatrix, t0 *tsptour.Tour, opts Options) (Route, error) {
	if opts.Steps < 0 {
		return Route{}, ErrTooFewSteps
	}
	if opts.Workers < 1 {
		return Route{}, ErrTooFewWorkers
	}

	n := t0.Size()
	tr := t0.Clone()
	buf := make([]tsptour.Edge, n)

	if _, err := localsearch.Run(m, tr, buf, opts.Workers); err != nil {
		return Route{}, err
	}

	initialCost, err := matrixCost(m, tr, buf)
	if err != nil {
		return Route{}, err
	}
	alpha := int32(math.Floor(0.3 * float64(initialCost) / float64(n)))

	penalty, err := tspmatrix.New(n)
	if err != nil {
		return Route{}, err
	}
	working := m.Clone()

	utilities := make([]int32, n)
	for step := 0; step < opts.Steps; step++ {
		if err = tr.EdgesInto(buf); err != nil {
			return Route{}, err
		}

		uStar, err := computeUtilities(m, penalty, buf, utilities)
		if err != nil {
			return Route{}, err
		}

		if err = penalizeMaxUtilityEdges(m, penalty, working, alpha, buf, utilities, uStar); err != nil {
			return Route{}, err
		}

		if _, err = localsearch.Run(working, tr, buf, opts.Workers); err != nil {
			return Route{}, err
		}
	}

	// Final descent under the true cost matrix (spec.md §4.4 step 6):
	// guarantees the returned tour is a local minimum w.r.t. m, not the
	// last working matrix.
	if _, err = localsearch.Run(m, tr, buf, opts.Workers); err != nil {
		return Route{}, err
	}

	finalCost, err := matrixCost(m, tr, buf)
	if err != nil {
		return Route{}, err
	}

	return Route{Tour: tr, Cost: finalCost}, nil
}

// computeUtilities fills utilities[i] = floor(M[e_i] / (1 + P[e_i])) for
// every edge in buf and returns the maximum value found (spec.md §4.4 step
// 5.a-b). The floating-point division and truncation to int32 is
// load-bearing: it is what makes several edges tie at the maximum, which
// are then penalised together.
func computeUtilities(m, penalty *tspmatrix.SymmetricMatrix, buf []tsptour.Edge, utilities []int32) (int32, error) {
	var uStar int32
	var i int
	var e tsptour.Edge
	for i, e = range buf {
		mw, err := m.Get(e.U, e.V)
		if err != nil {
			return 0, err
		}
		pw, err := penalty.Get(e.U, e.V)
		if err != nil {
			return 0, err
		}

		u := int32(math.Floor(float64(mw) / float64(1+pw)))
		utilities[i] = u
		if i == 0 || u > uStar {
			uStar = u
		}
	}

	return uStar, nil
}

// penalizeMaxUtilityEdges implements spec.md §4.4 step 5.c: every edge
// whose utility ties the maximum gets its penalty count incremented and the
// working matrix rewritten as M[e] + alpha*P[e] at that edge.
func penalizeMaxUtilityEdges(m, penalty, working *tspmatrix.SymmetricMatrix, alpha int32, buf []tsptour.Edge, utilities []int32, uStar int32) error {
	var i int
	var e tsptour.Edge
	for i, e = range buf {
		if utilities[i] != uStar {
			continue
		}

		post, err := penalty.Increment(e.U, e.V, 1)
		if err != nil {
			return err
		}
		mw, err := m.Get(e.U, e.V)
		if err != nil {
			return err
		}
		if err = working.Set(e.U, e.V, mw+alpha*post); err != nil {
			return err
		}
	}

	return nil
}

// matrixCost sums m over tr's current edges, reusing buf as scratch space.
func matrixCost(m *tspmatrix.SymmetricMatrix, tr *tsptour.Tour, buf []tsptour.Edge) (int32, error) {
	if err := tr.EdgesInto(buf); err != nil {
		return 0, err
	}

	var sum int32
	var e tsptour.Edge
	for _, e = range buf {
		w, err := m.Get(e.U, e.V)
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}
