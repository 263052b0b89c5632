// Package tspio provides the external collaborators named in spec.md §6
// that sit outside the TSP core: a TSPLIB EUC_2D reader and the
// nearest-neighbour initial-tour construction. Neither belongs to the core
// algorithms (tspmatrix/tsptour/localsearch/gls); both only produce inputs
// for them.
//
// Grounded on the teacher's validate.go/solve.go error-handling style
// (layered validation, sentinel returns) and on original_source's
// from_tsplib/nearest_neighbor (src/matrix.rs) for the exact algorithms.
package tspio

import "errors"

// Sentinel errors for TSPLIB parsing.
var (
	// ErrUnsupportedVariant indicates TYPE or EDGE_WEIGHT_TYPE is missing or
	// not the supported TSP / EUC_2D combination.
	ErrUnsupportedVariant = errors.New("tspio: unsupported or missing TSPLIB TYPE/EDGE_WEIGHT_TYPE")

	// ErrMalformedNode indicates a NODE_COORD_SECTION line could not be parsed.
	ErrMalformedNode = errors.New("tspio: malformed node coordinate line")

	// ErrEmptyInput indicates the file yielded fewer than two nodes.
	ErrEmptyInput = errors.New("tspio: fewer than two nodes in input")

	// ErrDimensionMismatch indicates the DIMENSION header disagreed with the
	// number of coordinate lines actually read.
	ErrDimensionMismatch = errors.New("tspio: DIMENSION header does not match node count")
)
