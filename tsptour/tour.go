package tsptour

import (
	"fmt"
	"iter"
	"strings"
)

// Tour is a Hamiltonian cycle over {0..N-1} stored as, for each vertex, the
// pair of neighbours adjacent to it in the cycle (spec.md §3's "Tour T").
// The two slots of adj[v] are interchangeable; nothing in this package
// relies on their order beyond InitEdge's "first free slot" rule.
type Tour struct {
	n   int
	adj [][2]int
}

// WithCapacity allocates an empty tour with n adjacency slots, both marked
// unset. Callers must populate it with exactly n InitEdge calls (each vertex
// appearing in two of them) before any other method is safe to call; see ErrIncomplete.
func WithCapacity(n int) (*Tour, error) {
	if n < 2 {
		return nil, ErrTooSmall
	}
	adj := make([][2]int, n)
	var i int
	for i = 0; i < n; i++ {
		adj[i] = [2]int{unset, unset}
	}

	return &Tour{n: n, adj: adj}, nil
}

// Size returns N.
func (t *Tour) Size() int { return t.n }

// InitEdge fills the first unset slot of adj[u] with v, and symmetrically
// fills the first unset slot of adj[v] with u. Used only during construction
// (nearest-neighbour insertion, §6); each vertex must receive exactly two
// InitEdge calls over the life of a tour.
func (t *Tour) InitEdge(u, v int) error {
	if u < 0 || u >= t.n || v < 0 || v >= t.n {
		return ErrIndexOutOfRange
	}
	if err := t.initEdgeOneSide(u, v); err != nil {
		return err
	}

	return t.initEdgeOneSide(v, u)
}

func (t *Tour) initEdgeOneSide(v, neighbor int) error {
	slot := &t.adj[v]
	switch unset {
	case slot[0]:
		slot[0] = neighbor
	case slot[1]:
		slot[1] = neighbor
	default:
		return ErrSlotsFull
	}

	return nil
}

// complete reports whether every vertex has received exactly two InitEdge
// calls (no unset slots remain).
func (t *Tour) complete() bool {
	var v int
	for v = 0; v < t.n; v++ {
		if t.adj[v][0] == unset || t.adj[v][1] == unset {
			return false
		}
	}

	return true
}

// next implements the shared "neighbour that is not the previous vertex"
// traversal step. comingFrom starts out of range ([0,n) is the valid range)
// to select the first neighbour of vertex 0 unconditionally; subsequent
// calls carry the real previous vertex. Returns ok=false once the cycle has
// closed back onto vertex 0 with a real predecessor.
func (t *Tour) next(comingFrom, vertex int) (next int, ok bool) {
	if comingFrom >= 0 && comingFrom < t.n && vertex == 0 {
		return 0, false
	}
	pair := t.adj[vertex]
	if pair[0] != comingFrom {
		return pair[0], true
	}

	return pair[1], true
}

// Vertices yields the N vertices of the cycle in traversal order, starting
// with the first neighbour encountered from 0 and ending with 0 itself
// (spec.md §4.2). Restartable: each call to Vertices returns a fresh
// sequence. Requires the tour to be complete (see ErrIncomplete).
func (t *Tour) Vertices() iter.Seq[int] {
	return func(yield func(int) bool) {
		if !t.complete() {
			return
		}
		comingFrom, vertex := t.n, 0
		var v int
		var ok bool
		for i := 0; i < t.n; i++ {
			v, ok = t.next(comingFrom, vertex)
			if !ok {
				return
			}
			comingFrom, vertex = vertex, v
			if !yield(v) {
				return
			}
		}
	}
}

// Edges yields the N ordered (prev, curr) edges of the cycle, consecutive
// positions of Vertices() plus the closing (last, 0) edge — i.e.
// Edges()[i] == (Vertices()[i-1], Vertices()[i]) with wrap, per spec.md §4.2.
// Restartable.
func (t *Tour) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !t.complete() {
			return
		}
		comingFrom, vertex := t.n, 0
		var v int
		var ok bool
		for i := 0; i < t.n; i++ {
			v, ok = t.next(comingFrom, vertex)
			if !ok {
				return
			}
			edge := Edge{U: vertex, V: v}
			comingFrom, vertex = vertex, v
			if !yield(edge) {
				return
			}
		}
	}
}

// EdgesInto overwrites buf (which must have length N) with the current edge
// list in traversal order. Used by the search engine to share scan state
// across iterations without reallocating (spec.md §5's allocation
// discipline): callers allocate buf once per run and reuse it every pass.
func (t *Tour) EdgesInto(buf []Edge) error {
	if len(buf) != t.n {
		return ErrIndexOutOfRange
	}
	if !t.complete() {
		return ErrIncomplete
	}
	var i int
	for e := range t.Edges() {
		buf[i] = e
		i++
	}

	return nil
}

// Twist replaces edges a=(a0,a1) and b=(b0,b1) — which must currently exist
// in the tour as a segment "… a0 a1 … b0 b1 …" (both edges given in the
// same traversal direction, as Edges yields them) — with (a0,b0) and (a1,b1). Implemented as exactly
// four per-vertex slot rewrites (spec.md §4.2):
//
//	adj[a0]: a1 -> b0
//	adj[a1]: a0 -> b1
//	adj[b0]: b1 -> a0
//	adj[b1]: b0 -> a1
//
// Fails with ErrMissingAdjacency if any of the four rewrites does not find
// its expected neighbour — a programmer error, not a recoverable condition.
func (t *Tour) Twist(a, b Edge) error {
	if a.U == a.V || b.U == b.V {
		return ErrNotAnEdge
	}
	// Equal edges (in either orientation) and adjacent edges share a vertex.
	if a.U == b.U || a.U == b.V || a.V == b.U || a.V == b.V {
		return ErrNotAnEdge
	}

	if err := t.replaceNeighbor(a.U, a.V, b.U); err != nil {
		return err
	}
	if err := t.replaceNeighbor(a.V, a.U, b.V); err != nil {
		return err
	}
	if err := t.replaceNeighbor(b.U, b.V, a.U); err != nil {
		return err
	}
	if err := t.replaceNeighbor(b.V, b.U, a.V); err != nil {
		return err
	}

	return nil
}

// replaceNeighbor rewrites the slot of adj[v] currently holding oldN to
// newN. Returns ErrMissingAdjacency if oldN is not present.
func (t *Tour) replaceNeighbor(v, oldN, newN int) error {
	if v < 0 || v >= t.n {
		return ErrIndexOutOfRange
	}
	slot := &t.adj[v]
	switch oldN {
	case slot[0]:
		slot[0] = newN
	case slot[1]:
		slot[1] = newN
	default:
		return ErrMissingAdjacency
	}

	return nil
}

// CheckHamiltonian verifies all three tour invariants (TOUR-CLOSED,
// TOUR-SYMMETRIC, TOUR-DEG) and returns a typed diagnostic instead of a
// bare bool, surfacing the two observable failure modes of spec.md §4.2.
// Intended for tests and debugging, not the hot path (O(N) allocation-free
// scan plus an O(N) traversal).
func (t *Tour) CheckHamiltonian() HamiltonianStatus {
	var v int
	for v = 0; v < t.n; v++ {
		adj := t.adj[v]
		if adj[0] == unset || adj[1] == unset {
			return HamiltonianStatus{Kind: NotVisited, Vertex: v}
		}

		back0 := t.adj[adj[0]]
		if back0[0] != v && back0[1] != v {
			return HamiltonianStatus{Kind: NoEdgeBack, Vertex: v, Neighbor: adj[0], NeighborAdj: back0}
		}
		back1 := t.adj[adj[1]]
		if back1[0] != v && back1[1] != v {
			return HamiltonianStatus{Kind: NoEdgeBack, Vertex: v, Neighbor: adj[1], NeighborAdj: back1}
		}
	}

	seen := make([]bool, t.n)
	var count int
	for v = range t.Vertices() {
		if !seen[v] {
			seen[v] = true
			count++
		}
	}
	for v = 0; v < t.n; v++ {
		if !seen[v] {
			return HamiltonianStatus{Kind: NotVisited, Vertex: v}
		}
	}
	if count != t.n {
		return HamiltonianStatus{Kind: NotVisited, Vertex: -1}
	}

	return HamiltonianStatus{Kind: Ok}
}

// IsHamiltonian reports whether all three tour invariants hold.
func (t *Tour) IsHamiltonian() bool {
	return t.CheckHamiltonian().Kind == Ok
}

// String renders the tour as its traversal-order vertex sequence, starting
// from 0 and ending with the closing return to 0, e.g. "Tour(0 1 3 2 4 0)".
// Mirrors original_source's Path/Route
// Display impls; intended for the CLI and debugging, not machine parsing.
func (t *Tour) String() string {
	var b strings.Builder
	b.WriteString("Tour(0")
	for v := range t.Vertices() {
		fmt.Fprintf(&b, " %d", v)
	}
	b.WriteByte(')')

	return b.String()
}

// Clone returns an independent deep copy of t.
func (t *Tour) Clone() *Tour {
	adj := make([][2]int, t.n)
	copy(adj, t.adj)

	return &Tour{n: t.n, adj: adj}
}
