// Package astar defines core types and configuration options
// for the A* shortest-path search over implicit graphs.
//
// A* computes the minimum-cost path between two nodes of a graph that is
// never materialized: the caller supplies a neighbors function describing
// edges, a cost function pricing them, and an admissible heuristic biasing
// exploration toward the goal. The algorithm maintains a priority queue of
// discovered nodes ordered by estimated total cost and relaxes edges until
// the goal is finalized or the frontier is exhausted.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = nodes reached, E = edges relaxed
//	   • Each node is finalized at most once (V extractions).
//	   • Each successful relaxation pushes one entry (up to E pushes).
//	   • Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) for the g-score, predecessor, and closed maps.
//	   • O(E) worst-case frontier entries under lazy decrease-key.
//
// Options:
//
//	– Neighbors: produces the nodes directly reachable from a given node.
//	– Cost:      exact cost of traversing one edge between adjacent nodes.
//	– Distance:  admissible heuristic estimate of remaining cost to the goal.
//	– MaxCost:   optional cap on accumulated cost; search stops beyond it.
//
// Errors (sentinel):
//
//	– ErrNilNeighbors if no neighbors function is configured.
//	– ErrNilCost      if no cost function is configured.
//	– ErrNilDistance  if no distance function is configured.
//	– ErrBadMaxCost   (via panic) if WithMaxCost receives a negative value.
package astar

import (
	"errors"
	"math"
)

// Sentinel errors returned by Finder construction and search.
var (
	// ErrNilNeighbors indicates that no neighbors function was configured.
	ErrNilNeighbors = errors.New("astar: neighbors function is nil")

	// ErrNilCost indicates that no edge-cost function was configured.
	ErrNilCost = errors.New("astar: cost function is nil")

	// ErrNilDistance indicates that no heuristic distance function was configured.
	ErrNilDistance = errors.New("astar: distance function is nil")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// NeighborsFunc produces the nodes directly reachable in one step from n.
// The engine never inspects node internals; any comparable type works.
type NeighborsFunc[N comparable] func(n N) []N

// CostFunc returns the exact cost of traversing the edge from one node to an
// adjacent node. Costs must be non-negative for the optimality guarantee.
type CostFunc[N comparable] func(from, to N) float64

// DistanceFunc estimates the remaining cost between two nodes. To guarantee
// optimal paths the estimate must be admissible: it never overestimates the
// true remaining cost. The engine does not verify this; an inadmissible
// heuristic degrades optimality, not termination.
type DistanceFunc[N comparable] func(from, to N) float64

// Options configures the behavior of a Finder.
//
// Neighbors – edge enumeration for the implicit graph (required).
// Cost      – exact per-edge traversal cost (required).
// Distance  – admissible heuristic toward the goal (required).
// MaxCost   – cap on accumulated cost; nodes whose best-known cost exceeds
//
//	it are never finalized. Must be ≥ 0. Default is +Inf (no cap).
type Options[N comparable] struct {
	Neighbors NeighborsFunc[N] // Enumerates reachable nodes
	Cost      CostFunc[N]      // Prices a single edge
	Distance  DistanceFunc[N]  // Heuristic estimate to the goal
	MaxCost   float64          // Maximum accumulated cost to explore
}

// Option represents a functional option for configuring a Finder.
type Option[N comparable] func(*Options[N])

// WithNeighbors sets the neighbor-enumeration function.
// A nil argument is ignored, leaving any previously configured function.
func WithNeighbors[N comparable](fn NeighborsFunc[N]) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Neighbors = fn
		}
	}
}

// WithCost sets the exact edge-cost function.
// A nil argument is ignored.
func WithCost[N comparable](fn CostFunc[N]) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithDistance sets the heuristic distance function.
// A nil argument is ignored.
func WithDistance[N comparable](fn DistanceFunc[N]) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Distance = fn
		}
	}
}

// WithMaxCost caps the accumulated cost the search will explore. Once the
// cheapest frontier node exceeds max, the search stops and reports no path.
// Must pass a non-negative value; negative values cause ErrBadMaxCost.
// Default (if not set) is +Inf (no cap).
func WithMaxCost[N comparable](max float64) Option[N] {
	return func(o *Options[N]) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with the library
// defaults. The three functions start nil and must be supplied before New
// succeeds; NewGridFinder fills them with the grid package defaults.
//
// Defaults:
//   - Neighbors: nil (required; New returns ErrNilNeighbors if unset).
//   - Cost:      nil (required; New returns ErrNilCost if unset).
//   - Distance:  nil (required; New returns ErrNilDistance if unset).
//   - MaxCost:   +Inf (no cost cap; explore all reachable nodes).
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Neighbors: nil,
		Cost:      nil,
		Distance:  nil,
		MaxCost:   math.Inf(1),
	}
}

// Result reports the outcome of a single search.
//
// Found distinguishes the two terminal states: true means Path holds an
// optimal start→goal sequence and Cost its total edge cost; false means no
// path exists (or the cost cap was exceeded) and Path is nil. A missing path
// is a normal outcome, never an error: configuration problems travel on the
// error channel of Find, not through Result.
type Result[N comparable] struct {
	// Path is the ordered node sequence from start to goal inclusive.
	// A search with start == goal yields the single-node path [start].
	// Nil when Found is false.
	Path []N

	// Cost is the total edge cost accumulated along Path (0 when Found is
	// false or the path has no edges).
	Cost float64

	// Expanded counts the nodes whose optimal cost was finalized during the
	// search, a rough measure of explored volume.
	Expanded int

	// Found reports whether a path from start to goal was located.
	Found bool
}
