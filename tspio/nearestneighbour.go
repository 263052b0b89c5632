package tspio

import (
	"github.com/arlotaylor/glstsp/tspmatrix"
	"github.com/arlotaylor/glstsp/tsptour"
)

// NearestNeighbour builds the initial tour described in spec.md §6: start
// at vertex 0, repeatedly append the nearest unvisited vertex (ties broken
// by lowest vertex index), close by linking the last vertex back to 0.
// Returns the tour and its cost under m.
//
// Ported from original_source/src/matrix.rs's nearest_neighbor; the
// lowest-index tie-break falls out of scanning remaining candidates in
// ascending order and only replacing the incumbent on a strict
// improvement.
func NearestNeighbour(m *tspmatrix.SymmetricMatrix) (*tsptour.Tour, int32, error) {
	n := m.Size()

	tour, err := tsptour.WithCapacity(n)
	if err != nil {
		return nil, 0, err
	}

	visited := make([]bool, n)
	visited[0] = true
	vertex := 0

	var i, remaining int
	for remaining = 1; remaining < n; remaining++ {
		best := -1
		var bestDist int32
		for i = 1; i < n; i++ {
			if visited[i] {
				continue
			}
			d, gerr := m.Get(vertex, i)
			if gerr != nil {
				return nil, 0, gerr
			}
			if best == -1 || d < bestDist {
				best = i
				bestDist = d
			}
		}

		if err = tour.InitEdge(vertex, best); err != nil {
			return nil, 0, err
		}
		visited[best] = true
		vertex = best
	}

	if err = tour.InitEdge(vertex, 0); err != nil {
		return nil, 0, err
	}

	buf := make([]tsptour.Edge, n)
	if err = tour.EdgesInto(buf); err != nil {
		return nil, 0, err
	}

	var cost int32
	var e tsptour.Edge
	for _, e = range buf {
		w, gerr := m.Get(e.U, e.V)
		if gerr != nil {
			return nil, 0, gerr
		}
		cost += w
	}

	return tour, cost, nil
}
