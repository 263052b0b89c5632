// Package glstsp is a Guided Local Search heuristic solver for the
// symmetric Euclidean Travelling Salesman Problem.
//
// The solver is organized, leaves first, as:
//
//	tspmatrix/  — dense symmetric integer cost matrix
//	tsptour/    — doubly-linked edge-list Hamiltonian tour
//	localsearch/ — parallel 2-opt engine over a matrix and a tour
//	gls/        — penalize-and-reoptimize driver on top of localsearch
//	tspio/      — TSPLIB reader and nearest-neighbour initial tour
//	cmd/glstsp/ — CLI entry point
//
// Data flows from coordinates through tspio into tspmatrix and tsptour,
// through gls (which drives localsearch), to a final Route.
package glstsp
