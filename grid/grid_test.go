// Package grid_test contains unit tests for the grid collaborators:
// neighbor enumeration, bounds filtering, and the standard metrics.
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopaths/grid"
)

// ------------------------------------------------------------------------
// 1. Neighbor enumeration on the unbounded plane.
// ------------------------------------------------------------------------

func TestNeighbors8_SurroundingCells(t *testing.T) {
	p := grid.Coord{X: 2, Y: 3}
	got := grid.Neighbors8(p)

	require.Len(t, got, 8)
	require.NotContains(t, got, p, "a cell is never its own neighbor")
	require.ElementsMatch(t, []grid.Coord{
		{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
		{X: 1, Y: 3}, {X: 3, Y: 3},
		{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4},
	}, got)
}

func TestNeighbors8_NoBoundsChecking(t *testing.T) {
	// The unbounded enumerator happily walks into negative coordinates.
	got := grid.Neighbors8(grid.Coord{X: 0, Y: 0})
	require.Contains(t, got, grid.Coord{X: -1, Y: -1})
	require.Len(t, got, 8)
}

func TestNeighbors4_OrthogonalOnly(t *testing.T) {
	p := grid.Coord{X: 0, Y: 0}
	got := grid.Neighbors4(p)

	require.ElementsMatch(t, []grid.Coord{
		{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0},
	}, got)
}

// ------------------------------------------------------------------------
// 2. Bounded boards.
// ------------------------------------------------------------------------

func TestBounded_CornerAndCenter(t *testing.T) {
	n := grid.Bounded(3, 3, grid.Conn4)

	// The origin keeps only its in-board neighbors.
	require.ElementsMatch(t, []grid.Coord{
		{X: 0, Y: 1}, {X: 1, Y: 0},
	}, n(grid.Coord{X: 0, Y: 0}))

	// The center keeps all four.
	require.Len(t, n(grid.Coord{X: 1, Y: 1}), 4)
}

func TestBounded_Conn8Edges(t *testing.T) {
	n := grid.Bounded(4, 4, grid.Conn8)

	// A corner of an 8-connected board has exactly 3 neighbors.
	require.Len(t, n(grid.Coord{X: 3, Y: 3}), 3)
	// An edge cell has 5.
	require.Len(t, n(grid.Coord{X: 0, Y: 2}), 5)
	// No result may fall outside [0,4)×[0,4).
	for _, c := range n(grid.Coord{X: 0, Y: 0}) {
		require.GreaterOrEqual(t, c.X, 0)
		require.GreaterOrEqual(t, c.Y, 0)
		require.Less(t, c.X, 4)
		require.Less(t, c.Y, 4)
	}
}

func TestBounded_BadDimensionsPanics(t *testing.T) {
	require.PanicsWithValue(t, grid.ErrBadDimensions.Error(), func() {
		grid.Bounded(0, 3, grid.Conn4)
	})
	require.PanicsWithValue(t, grid.ErrBadDimensions.Error(), func() {
		grid.Bounded(3, -1, grid.Conn8)
	})
}

// ------------------------------------------------------------------------
// 3. Metrics.
// ------------------------------------------------------------------------

func TestEuclidean(t *testing.T) {
	// The classic 3-4-5 triangle.
	require.InDelta(t, 5.0,
		grid.Euclidean(grid.Coord{X: 1, Y: 2}, grid.Coord{X: 5, Y: 5}), 1e-12)
	// Symmetric and zero at identity.
	require.Equal(t,
		grid.Euclidean(grid.Coord{X: -3, Y: 4}, grid.Coord{X: 2, Y: 0}),
		grid.Euclidean(grid.Coord{X: 2, Y: 0}, grid.Coord{X: -3, Y: 4}))
	require.Zero(t, grid.Euclidean(grid.Coord{X: 7, Y: 7}, grid.Coord{X: 7, Y: 7}))
}

func TestManhattan(t *testing.T) {
	require.Equal(t, 10.0,
		grid.Manhattan(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 5, Y: 5}))
	require.Equal(t, 9.0,
		grid.Manhattan(grid.Coord{X: -2, Y: 3}, grid.Coord{X: 3, Y: -1}))
}

func TestChebyshev(t *testing.T) {
	require.Equal(t, 5.0,
		grid.Chebyshev(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 5, Y: 3}))
	require.Equal(t, 8.0,
		grid.Chebyshev(grid.Coord{X: 1, Y: 9}, grid.Coord{X: 1, Y: 1}))
}

func TestFixedCost(t *testing.T) {
	cost := grid.FixedCost(20)
	require.Equal(t, 20.0, cost(grid.Coord{X: 1, Y: 2}, grid.Coord{X: 3, Y: 4}))
	require.Equal(t, 20.0, cost(grid.Coord{}, grid.Coord{}))
}
