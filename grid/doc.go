// Package grid provides the default collaborators for searching 2D integer
// grids: a comparable coordinate type, neighbor functions for 4- and
// 8-directional movement, and the standard grid metrics.
//
// What:
//
//   - Coord is a plain (X, Y) integer pair, comparable and map-key friendly.
//   - Neighbors8 / Neighbors4 enumerate adjacent cells on an unbounded plane.
//   - Bounded restricts movement to a finite width×height board.
//   - Euclidean, Manhattan and Chebyshev compute the classic grid metrics;
//     FixedCost builds a constant edge-cost function.
//
// Why:
//
//   - Game maps: tile-based movement with diagonal or orthogonal steps.
//   - Robotics / planning: occupancy grids with custom passability filters.
//   - Teaching: the simplest possible graph for shortest-path experiments.
//
// The unbounded neighbor functions deliberately perform no bounds checking:
// they describe an infinite plane. Callers on finite boards either use
// Bounded or wrap a neighbor function with their own passability filter.
//
// Complexity:
//
//   - Neighbors4 / Neighbors8: O(1), allocating one slice of 4 or 8 cells.
//   - Bounded: O(d) per call, d = connectivity degree.
//   - All metrics: O(1).
//
// Errors:
//
//   - ErrBadDimensions (via panic): Bounded called with non-positive width
//     or height.
//
// See: astar.NewGridFinder for a ready-to-use search over this package's
// defaults.
package grid
