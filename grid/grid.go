// Package grid defines the coordinate type, connectivity modes, and neighbor
// functions for 2D integer-grid pathfinding.
package grid

import "errors"

// ErrBadDimensions indicates that Bounded was called with a non-positive
// width or height, which would describe an empty board.
var ErrBadDimensions = errors.New("grid: width and height must be positive")

// Coord identifies a single cell on a 2D integer grid.
// It is comparable, so it can serve directly as a map key and as the node
// type of a search.
type Coord struct {
	X, Y int
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets4 lists the orthogonal step offsets in clockwise order: N, E, S, W.
var offsets4 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// offsets8 lists all eight step offsets in clockwise order:
// N, NE, E, SE, S, SW, W, NW.
var offsets8 = [][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// offsets returns the step-offset table for the given connectivity.
// Unknown values fall back to Conn4, matching the zero-value default.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// Neighbors8 returns the 8 cells surrounding p (orthogonal + diagonal) on an
// unbounded plane. No bounds checking is performed: every cell of the
// infinite grid is reachable. Callers on finite boards should use Bounded
// instead, or wrap this function with their own filter.
func Neighbors8(p Coord) []Coord {
	return expand(p, offsets8)
}

// Neighbors4 returns the 4 orthogonally adjacent cells of p (N, E, S, W) on
// an unbounded plane, with no bounds checking.
func Neighbors4(p Coord) []Coord {
	return expand(p, offsets4)
}

// Bounded returns a neighbor function restricted to the board
// [0,width) × [0,height) with the given connectivity. Cells outside the
// board are excluded from every result.
//
// Panics with ErrBadDimensions if width or height is not positive.
func Bounded(width, height int, conn Connectivity) func(Coord) []Coord {
	if width <= 0 || height <= 0 {
		panic(ErrBadDimensions.Error())
	}
	offs := conn.offsets()

	return func(p Coord) []Coord {
		out := make([]Coord, 0, len(offs))
		var c Coord
		for _, o := range offs {
			c = Coord{X: p.X + o[0], Y: p.Y + o[1]}
			if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
				continue
			}
			out = append(out, c)
		}

		return out
	}
}

// expand applies every offset in offs to p and returns the resulting cells
// in table order.
func expand(p Coord, offs [][2]int) []Coord {
	out := make([]Coord, len(offs))
	for i, o := range offs {
		out[i] = Coord{X: p.X + o[0], Y: p.Y + o[1]}
	}

	return out
}
