// Package tsptour implements the doubly-linked edge-list tour representation
// of spec.md §4.2: each vertex stores its two neighbours in the Hamiltonian
// cycle, so a 2-opt reconnection ("twist") costs four scalar writes instead
// of an O(N) segment reversal. The cost is that traversal must carry a
// "coming from" token; Vertices/Edges hide that behind an iterator.
//
// Ported from original_source/src/path.rs (Path / HamiltonianResult), kept
// in the teacher's (katalvlaran/lvlath) documentation and sentinel-error
// idiom rather than the Rust source's naming or comments.
package tsptour

import "errors"

// Sentinel errors for tour construction and mutation.
var (
	// ErrTooSmall indicates fewer than two vertices were requested.
	ErrTooSmall = errors.New("tsptour: tour must have at least two vertices")

	// ErrIndexOutOfRange indicates a vertex index outside [0, N).
	ErrIndexOutOfRange = errors.New("tsptour: index out of range")

	// ErrSlotsFull indicates InitEdge was called more than twice for some vertex.
	ErrSlotsFull = errors.New("tsptour: vertex already has two neighbours")

	// ErrIncomplete indicates a tour was used before every vertex received
	// exactly two InitEdge calls.
	ErrIncomplete = errors.New("tsptour: tour has uninitialized adjacency slots")

	// ErrMissingAdjacency indicates Twist referenced a neighbour that is not
	// actually present in the corresponding adjacency slot — a programmer
	// error per spec.md §4.2's Twist contract.
	ErrMissingAdjacency = errors.New("tsptour: twist endpoint missing from adjacency")

	// ErrNotAnEdge indicates Twist was given two edges that are adjacent or
	// equal, which the 2-opt reconnection rule forbids.
	ErrNotAnEdge = errors.New("tsptour: twist requires two distinct, non-adjacent edges")
)

// unset marks an adjacency slot that has not yet received an InitEdge call.
const unset = -1

// Edge is an ordered pair (U, V) as produced by Tour's traversal — U is the
// vertex visited immediately before V.
type Edge struct {
	U, V int
}

// HamiltonianStatus is the result of CheckHamiltonian: either Ok, or one of
// the two observable failure modes named in spec.md §4.2.
type HamiltonianStatus struct {
	// Kind distinguishes Ok / NoEdgeBack / NotVisited.
	Kind StatusKind

	// Vertex is the vertex at which the violation was detected.
	Vertex int

	// Neighbor is the neighbour that failed to link back (NoEdgeBack only).
	Neighbor int

	// NeighborAdj is adj[Neighbor] at the time of the check (NoEdgeBack only).
	NeighborAdj [2]int
}

// StatusKind enumerates the outcomes of CheckHamiltonian.
type StatusKind int

const (
	// Ok means all three tour invariants hold.
	Ok StatusKind = iota
	// NoEdgeBack means adj[Neighbor] does not list Vertex back.
	NoEdgeBack
	// NotVisited means Vertex was never reached while following the cycle.
	NotVisited
)
