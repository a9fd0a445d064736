package grid

import "math"

// Euclidean returns the straight-line distance between a and b.
// It is the default cost and heuristic metric for grid searches: exact for
// diagonal movement with unit cell size, and admissible as a heuristic for
// any movement model whose step cost is at least the straight-line length.
func Euclidean(a, b Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns the taxicab distance |ax−bx| + |ay−by| between a and b.
// Admissible for 4-connected movement with unit step cost; it overestimates
// diagonal movement and must not be used as a heuristic on 8-connected grids.
func Manhattan(a, b Coord) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Chebyshev returns max(|ax−bx|, |ay−by|): the exact number of moves between
// a and b on an 8-connected grid when every step costs 1. Admissible as a
// heuristic for any 8-connected movement model with step cost ≥ 1.
func Chebyshev(a, b Coord) float64 {
	return math.Max(math.Abs(float64(a.X-b.X)), math.Abs(float64(a.Y-b.Y)))
}

// FixedCost returns an edge-cost function that charges c for every move,
// regardless of the cells involved. Useful for uniform-cost searches where
// only the number of steps matters.
func FixedCost(c float64) func(a, b Coord) float64 {
	return func(Coord, Coord) float64 { return c }
}
