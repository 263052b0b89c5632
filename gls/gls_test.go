package gls_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlotaylor/glstsp/gls"
	"github.com/arlotaylor/glstsp/localsearch"
	"github.com/arlotaylor/glstsp/tspmatrix"
	"github.com/arlotaylor/glstsp/tsptour"
)

// fivePointMatrix is the reference 5-vertex matrix from spec.md §8 scenario
// E2: [0,1,2,5,3; 1,0,7,4,8; 2,7,0,1,3; 5,4,1,0,5; 3,8,3,5,0].
func fivePointMatrix(t *testing.T) *tspmatrix.SymmetricMatrix {
	t.Helper()
	m, err := tspmatrix.New(5)
	require.NoError(t, err)

	set := func(u, v int, w int32) {
		require.NoError(t, m.Set(u, v, w))
	}
	set(0, 1, 1)
	set(0, 2, 2)
	set(0, 3, 5)
	set(0, 4, 3)
	set(1, 2, 7)
	set(1, 3, 4)
	set(1, 4, 8)
	set(2, 3, 1)
	set(2, 4, 3)
	set(3, 4, 5)

	return m
}

// fivePointNNTour is the tour nearest-neighbour-from-0 produces on
// fivePointMatrix: edges (0,1) (1,3) (3,2) (2,4) (4,0), cost 12.
func fivePointNNTour(t *testing.T) *tsptour.Tour {
	t.Helper()
	tr, err := tsptour.WithCapacity(5)
	require.NoError(t, err)
	require.NoError(t, tr.InitEdge(0, 1))
	require.NoError(t, tr.InitEdge(1, 3))
	require.NoError(t, tr.InitEdge(3, 2))
	require.NoError(t, tr.InitEdge(2, 4))
	require.NoError(t, tr.InitEdge(4, 0))

	return tr
}

func routeCost(t *testing.T, m *tspmatrix.SymmetricMatrix, tr *tsptour.Tour) int32 {
	t.Helper()
	buf := make([]tspmatrix.Edge, 0, tr.Size())
	for e := range tr.Edges() {
		buf = append(buf, tspmatrix.Edge{U: e.U, V: e.V})
	}
	cost, err := m.Cost(buf)
	require.NoError(t, err)

	return cost
}

// TestSolve_E2FivePointScenario covers spec.md §8 scenario E2.
func TestSolve_E2FivePointScenario(t *testing.T) {
	m := fivePointMatrix(t)
	t0 := fivePointNNTour(t)
	require.Equal(t, int32(12), routeCost(t, m, t0))

	route, err := gls.Solve(m, t0, gls.Options{Steps: 20, Workers: 2})
	require.NoError(t, err)
	require.True(t, route.Tour.IsHamiltonian())
	require.LessOrEqual(t, route.Cost, int32(12))
	require.Equal(t, route.Cost, routeCost(t, m, route.Tour))
}

// TestSolve_E3Triangle covers spec.md §8 scenario E3: every tour on 3
// vertices is already a 2-opt local minimum, so GLS must return it
// unchanged.
func TestSolve_E3Triangle(t *testing.T) {
	m, err := tspmatrix.FromEuclidean([]tspmatrix.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3},
	})
	require.NoError(t, err)

	t0, err := tsptour.WithCapacity(3)
	require.NoError(t, err)
	require.NoError(t, t0.InitEdge(0, 1))
	require.NoError(t, t0.InitEdge(1, 2))
	require.NoError(t, t0.InitEdge(2, 0))

	before := routeCost(t, m, t0)

	route, err := gls.Solve(m, t0, gls.Options{Steps: 10, Workers: 3})
	require.NoError(t, err)
	require.Equal(t, before, route.Cost)
}

// TestSolve_E5CrossedSquare covers spec.md §8 scenario E5: a tour with a
// single known improving 2-opt move, solved with zero GLS iterations so
// only the local-search passes run.
func TestSolve_E5CrossedSquare(t *testing.T) {
	m, err := tspmatrix.FromEuclidean([]tspmatrix.Point{
		{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 0},
	})
	require.NoError(t, err)

	t0, err := tsptour.WithCapacity(4)
	require.NoError(t, err)
	require.NoError(t, t0.InitEdge(0, 2))
	require.NoError(t, t0.InitEdge(2, 1))
	require.NoError(t, t0.InitEdge(1, 3))
	require.NoError(t, t0.InitEdge(3, 0))

	route, err := gls.Solve(m, t0, gls.Options{Steps: 0, Workers: 1})
	require.NoError(t, err)
	require.Equal(t, int32(12), route.Cost)
}

// TestSolve_FinalOptimality covers spec.md §8 property 6: a further
// localsearch.Run over the returned route performs zero twists.
func TestSolve_FinalOptimality(t *testing.T) {
	m := fivePointMatrix(t)
	t0 := fivePointNNTour(t)

	route, err := gls.Solve(m, t0, gls.Options{Steps: 15, Workers: 2})
	require.NoError(t, err)

	buf := make([]tsptour.Edge, route.Tour.Size())
	twists, err := localsearch.Run(m, route.Tour, buf, 2)
	require.NoError(t, err)
	require.Zero(t, twists)
}

// TestSolve_InputIsClonedNotMutated ensures Solve never mutates the caller's
// tour, matching the teacher's copy-on-entry convention for solver inputs.
func TestSolve_InputIsClonedNotMutated(t *testing.T) {
	m := fivePointMatrix(t)
	t0 := fivePointNNTour(t)

	var before []int
	for v := range t0.Vertices() {
		before = append(before, v)
	}

	_, err := gls.Solve(m, t0, gls.Options{Steps: 5, Workers: 2})
	require.NoError(t, err)

	var after []int
	for v := range t0.Vertices() {
		after = append(after, v)
	}
	require.Equal(t, before, after)
}

func TestSolve_RejectsBadOptions(t *testing.T) {
	m := fivePointMatrix(t)
	t0 := fivePointNNTour(t)

	_, err := gls.Solve(m, t0, gls.Options{Steps: -1, Workers: 1})
	require.ErrorIs(t, err, gls.ErrTooFewSteps)

	_, err = gls.Solve(m, t0, gls.Options{Steps: 1, Workers: 0})
	require.ErrorIs(t, err, gls.ErrTooFewWorkers)
}
