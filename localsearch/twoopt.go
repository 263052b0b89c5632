package localsearch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arlotaylor/glstsp/tspmatrix"
	"github.com/arlotaylor/glstsp/tsptour"
)

// foundPair is a candidate improving move: indices into the edge buffer,
// not vertex ids.
type foundPair struct {
	i, j int
}

// Run repeatedly applies the first strictly improving 2-opt move found
// against t until none remains (spec.md §4.3). buf must have length
// t.Size() and is reused as the scan's edge buffer across every pass — the
// caller owns its allocation so a GLS run can share one buffer across many
// Run calls (spec.md §5's allocation discipline). workers controls the
// fan-out of the parallel scan; 1 makes the scan sequential but keeps the
// same code path. Returns the number of twists applied.
func Run(m *tspmatrix.SymmetricMatrix, t *tsptour.Tour, buf []tsptour.Edge, workers int) (int, error) {
	n := t.Size()
	if m.Size() != n {
		return 0, ErrDimensionMismatch
	}
	if len(buf) != n {
		return 0, ErrDimensionMismatch
	}
	if workers < 1 {
		return 0, ErrTooFewWorkers
	}

	var twists int
	for {
		if err := t.EdgesInto(buf); err != nil {
			return twists, err
		}

		found, ok, err := scanOnce(m, buf, workers)
		if err != nil {
			return twists, err
		}
		if !ok {
			return twists, nil
		}

		if err := t.Twist(buf[found.i], buf[found.j]); err != nil {
			return twists, err
		}
		twists++
	}
}

// scanOnce searches E for any pair (i, j) with j >= i+2, excluding the
// wraparound-adjacent pair (0, n-1), that strictly improves cost under m.
// Workers are partitioned by i mod workers and race to publish into a
// buffered channel of capacity 1 — the single-writer "found" slot of
// spec.md §5. The first successful send cancels the shared context; workers
// past that point abandon their current candidate j and return.
func scanOnce(m *tspmatrix.SymmetricMatrix, E []tsptour.Edge, workers int) (foundPair, bool, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	result := make(chan foundPair, 1)

	var w int
	for w = 0; w < workers; w++ {
		start := w
		g.Go(func() error {
			return scanWorker(ctx, m, E, start, workers, result, cancel)
		})
	}

	if err := g.Wait(); err != nil {
		return foundPair{}, false, err
	}

	select {
	case p := <-result:
		return p, true, nil
	default:
		return foundPair{}, false, nil
	}
}

// scanWorker scans starting indices start, start+workers, start+2*workers, …
func scanWorker(ctx context.Context, m *tspmatrix.SymmetricMatrix, E []tsptour.Edge, start, workers int, result chan<- foundPair, cancel context.CancelFunc) error {
	n := len(E)
	var i, j int
	for i = start; i < n; i += workers {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		loopEnd := n
		if i == 0 {
			loopEnd = n - 1 // edge 0 and edge n-1 share vertex 0: wraparound-adjacent
		}

		a := E[i]
		wa, err := m.Get(a.U, a.V)
		if err != nil {
			return err
		}

		for j = i + 2; j < loopEnd; j++ {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			b := E[j]
			wb, err := m.Get(b.U, b.V)
			if err != nil {
				return err
			}
			wNewA, err := m.Get(a.U, b.U)
			if err != nil {
				return err
			}
			wNewB, err := m.Get(a.V, b.V)
			if err != nil {
				return err
			}

			delta := (wa + wb) - (wNewA + wNewB)
			if delta > 0 {
				select {
				case result <- foundPair{i: i, j: j}:
					cancel()
				default:
				}
				return nil
			}
		}
	}

	return nil
}
