// Package astar provides a precise, generic implementation of the A*
// shortest-path algorithm over implicit graphs: the graph is described
// entirely by caller-supplied functions, never materialized.
//
// Overview:
//
//   - A* computes the minimum-cost path between two opaque nodes using a
//     priority-driven frontier ordered by g(n) + h(n): the best known cost
//     from the start plus an admissible heuristic estimate to the goal.
//   - Nodes are any comparable Go type. The engine never inspects them; it
//     only compares them and uses them as map keys.
//   - Three functions define the search space: Neighbors (edge enumeration),
//     Cost (exact edge pricing), and Distance (heuristic estimate).
//
// When to use:
//
//   - Grid maps, navigation meshes, or any coordinate system — the grid
//     subpackage supplies ready-made defaults for 2D integer grids.
//   - Arbitrary state graphs: puzzles, planners, routing over custom domains.
//   - Anywhere Dijkstra fits but a goal-directed heuristic can prune work
//     (a zero Distance function reduces A* exactly to Dijkstra).
//
// Key features:
//
//   - Functional options allow swapping each of the three functions
//     independently without changing the API signature.
//   - NewGridFinder: a zero-configuration finder over the implicit, unbounded
//     8-connected integer grid with Euclidean costs.
//   - WithMaxCost: abandons the search once the cheapest open node exceeds a
//     cap, reporting the normal no-path outcome.
//   - Explicit outcomes: Result.Found separates "no path exists" from every
//     configuration error; the two never share a channel.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over the explored region (V nodes reached,
//     E edges relaxed) — the implicit graph is only touched where the search
//     goes, so unbounded spaces are fine as long as the goal is reachable.
//   - Space: O(V + E): per-call g-score/predecessor/closed maps plus
//     worst-case O(E) frontier entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilNeighbors:
//     Returned by New (or Find on a zero-value Finder) when no neighbors
//     function is configured.
//   - ErrNilCost:
//     Returned when no edge-cost function is configured.
//   - ErrNilDistance:
//     Returned when no heuristic distance function is configured.
//   - ErrBadMaxCost:
//     Returned (via panic) if you set MaxCost to a negative value.
//
// A panic raised inside a caller-supplied function propagates unchanged
// through Find: the engine neither recovers nor retries callback failures.
//
// API reference:
//
//	func New[N comparable](opts ...Option[N]) (*Finder[N], error)
//
//	  - opts: zero or more functional options, including:
//	      • WithNeighbors(fn): required, enumerates reachable nodes.
//	      • WithCost(fn):      required, prices a single edge.
//	      • WithDistance(fn):  required, admissible heuristic to the goal.
//	      • WithMaxCost(x):    optional cap on accumulated cost (x ≥ 0).
//
//	func NewGridFinder(opts ...Option[grid.Coord]) *Finder[grid.Coord]
//
//	  - pre-wires grid.Neighbors8 and grid.Euclidean (cost and heuristic);
//	    any option overrides the matching default.
//
//	func (f *Finder[N]) Find(start, goal N) (Result[N], error)
//
//	  - res: Found=true with the optimal Path and its Cost, or Found=false
//	          when the goal is unreachable (a normal outcome, not an error).
//	          Find(n, n) always yields the single-node path [n].
//	  - err: a sentinel configuration error, or nil.
//
// Thread safety:
//
//   - A Finder is immutable after construction. Every Find call allocates its
//     own frontier and bookkeeping maps, so concurrent calls on one Finder
//     are safe whenever the configured functions are safe for concurrent use.
//
// See also:
//
//   - grid: Coord, 4/8-connectivity neighbor functions, Euclidean, Manhattan
//     and Chebyshev metrics, bounded boards, fixed costs.
//
// Thanks for choosing gopaths! We aim to provide rock-solid search algorithms
// that blend mathematical rigor, performance, and clarity. If you spot any
// issue or have suggestions, please open an issue or PR on GitHub.
package astar
