package astar_test

import (
	"testing"

	"github.com/katalvlaran/gopaths/astar"
	"github.com/katalvlaran/gopaths/grid"
)

// BenchmarkFind_BoundedBoard measures a corner-to-corner diagonal search on
// a 64×64 8-connected board with Euclidean costs.
func BenchmarkFind_BoundedBoard(b *testing.B) {
	const side = 64
	f := astar.NewGridFinder(
		astar.WithNeighbors(grid.Bounded(side, side, grid.Conn8)),
	)
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: side - 1, Y: side - 1}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = f.Find(start, goal)
	}
}

// BenchmarkFind_Chain measures search over a linear chain of N integer nodes,
// the worst case for heuristic guidance (exact remaining distance).
func BenchmarkFind_Chain(b *testing.B) {
	const n = 10000
	f, err := astar.New(
		astar.WithNeighbors(func(v int) []int {
			if v >= n {
				return nil
			}

			return []int{v + 1}
		}),
		astar.WithCost(func(int, int) float64 { return 1 }),
		astar.WithDistance(func(u, v int) float64 { return float64(v - u) }),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = f.Find(0, n)
	}
}

// BenchmarkFind_UniformOpenGrid measures the uniform-cost Chebyshev setup on
// the unbounded plane, where the heuristic must contain the exploration.
func BenchmarkFind_UniformOpenGrid(b *testing.B) {
	f := astar.NewGridFinder(
		astar.WithCost(grid.FixedCost(1)),
		astar.WithDistance[grid.Coord](grid.Chebyshev),
	)
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: 50, Y: 30}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = f.Find(start, goal)
	}
}
