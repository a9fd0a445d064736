// Package astar implements the A* shortest-path algorithm over implicit graphs.
//
// A* generalizes Dijkstra's algorithm with a heuristic: instead of expanding
// nodes in order of distance from the start, it expands them in order of
// g(n) + h(n), where g is the best known cost from the start and h is an
// admissible estimate of the cost remaining to the goal. With an admissible,
// consistent heuristic the first time the goal is popped its cost is optimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each reached node is finalized at most once: V extractions from the heap.
//   - Each successful relaxation may push a new entry: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the g-score, predecessor, and closed maps.
//   - O(E) worst-case entries in the heap under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - The graph is implicit: edges exist only as answers from the configured
//     neighbors function, so the search touches exactly the region it explores.
//   - We use a lazy decrease-key strategy: improvements push duplicate heap
//     entries, and stale entries are skipped on pop via the closed map.
//   - All search state lives in a per-call runner; a Finder holds only its
//     configuration, so concurrent Find calls never share mutable state.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/gopaths/grid"
)

// Finder performs A* searches with a fixed configuration. It is immutable
// after construction and safe for concurrent use, provided the configured
// functions are themselves safe for concurrent calls.
type Finder[N comparable] struct {
	opts Options[N]
}

// New builds a Finder from the supplied functional options.
//
// All three functions are required; New validates them at configuration time
// and returns the matching sentinel error (ErrNilNeighbors, ErrNilCost,
// ErrNilDistance) when one is missing. Use NewGridFinder for a finder that is
// pre-wired with the grid package defaults.
func New[N comparable](opts ...Option[N]) (*Finder[N], error) {
	// 1) Build Options from defaults, then apply each functional option.
	cfg := DefaultOptions[N]()
	var opt Option[N]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the three required functions, in a fixed order so callers
	//    see a stable error for multiply-broken configurations.
	if cfg.Neighbors == nil {
		return nil, ErrNilNeighbors
	}
	if cfg.Cost == nil {
		return nil, ErrNilCost
	}
	if cfg.Distance == nil {
		return nil, ErrNilDistance
	}

	// 3) MaxCost is validated inside WithMaxCost (panics on negative), so by
	//    the time we get here cfg.MaxCost is non-negative or the default +Inf.
	return &Finder[N]{opts: cfg}, nil
}

// NewGridFinder builds a ready-to-use Finder over the implicit, unbounded
// 2D integer grid: 8-directional movement (grid.Neighbors8) priced and
// estimated by straight-line distance (grid.Euclidean).
//
// Any of the defaults can be overridden by the usual options, e.g. a bounded
// board via WithNeighbors(grid.Bounded(w, h, grid.Conn4)) or uniform step
// pricing via WithCost(grid.FixedCost(1)).
func NewGridFinder(opts ...Option[grid.Coord]) *Finder[grid.Coord] {
	defaults := []Option[grid.Coord]{
		WithNeighbors(grid.Neighbors8),
		WithCost[grid.Coord](grid.Euclidean),
		WithDistance[grid.Coord](grid.Euclidean),
	}
	f, err := New(append(defaults, opts...)...)
	if err != nil {
		// Unreachable: the defaults satisfy every requirement and the With*
		// constructors ignore nil overrides.
		panic(err)
	}

	return f
}

// Find searches for a minimum-cost path from start to goal.
//
// Returns:
//
//   - res: Result with Found=true and the optimal path on success, or
//     Found=false when the goal is unreachable (or beyond MaxCost). An
//     unreachable goal is a normal outcome, not an error.
//   - err: a sentinel configuration error (ErrNilNeighbors, ErrNilCost,
//     ErrNilDistance) when the Finder was built without New and is missing a
//     function; nil otherwise.
//
// A panic raised inside a configured neighbors, cost, or distance function
// propagates unchanged to the caller; Find neither recovers nor retries.
//
// Every invocation allocates its own frontier and bookkeeping maps, so a
// single Finder may serve concurrent Find calls.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func (f *Finder[N]) Find(start, goal N) (Result[N], error) {
	// 1) Guard against a zero-value Finder assembled without New.
	if f.opts.Neighbors == nil {
		return Result[N]{}, ErrNilNeighbors
	}
	if f.opts.Cost == nil {
		return Result[N]{}, ErrNilCost
	}
	if f.opts.Distance == nil {
		return Result[N]{}, ErrNilDistance
	}

	// 2) Degenerate search: the goal is already in hand. Handled explicitly
	//    so the zero-edge path never depends on loop mechanics.
	if start == goal {
		return Result[N]{Path: []N{start}, Cost: 0, Expanded: 0, Found: true}, nil
	}

	// 3) Prepare the per-call runner: fresh maps and an empty frontier.
	r := &runner[N]{
		opts:   f.opts,
		goal:   goal,
		gScore: make(map[N]float64),
		prev:   make(map[N]N),
		closed: make(map[N]bool),
		pq:     make(frontier[N], 0),
	}

	// 4) Seed the frontier with start and run the main loop to a terminal
	//    state: goal finalized, cost cap reached, or frontier exhausted.
	r.init(start)

	return r.process(), nil
}

// runner holds the mutable state for a single Find execution.
type runner[N comparable] struct {
	opts     Options[N]    // Configuration snapshot; read-only within the search.
	goal     N             // Target node of this search.
	gScore   map[N]float64 // Maps node → best known cost from start. Absent = unreached.
	prev     map[N]N       // Maps node → predecessor on its best known path.
	closed   map[N]bool    // Tracks nodes whose cost is finalized.
	pq       frontier[N]   // Min-heap of *frontierEntry for lazy priority queue.
	expanded int           // Count of finalized nodes.
}

// init records g(start)=0 and pushes start at priority h(start, goal).
// prev intentionally receives no entry for start: reconstruction stops at the
// first node without a predecessor.
func (r *runner[N]) init(start N) {
	r.gScore[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierEntry[N]{
		node: start,
		g:    0,
		f:    r.opts.Distance(start, r.goal),
	})
}

// process is the core A* loop. It repeatedly extracts the frontier entry with
// the smallest estimated total cost and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The goal is popped: its cost is optimal (admissible heuristic) — success.
//   - The cheapest remaining entry exceeds MaxCost — no path within the cap.
//   - The heap empties — the goal is unreachable.
func (r *runner[N]) process() Result[N] {
	var entry *frontierEntry[N]
	var current N
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the smallest f = g + h.
		entry = heap.Pop(&r.pq).(*frontierEntry[N])
		current = entry.node

		// 2) Skip stale entries left behind by lazy decrease-key: the node
		//    was already finalized through a cheaper duplicate.
		if r.closed[current] {
			continue
		}

		// 3) Stop once the cheapest open node exceeds the cost cap. Nothing
		//    still open can finish below it, so the goal is out of reach.
		if entry.g > r.opts.MaxCost {
			break
		}

		// 4) Finalize current: its g-score is now optimal.
		r.closed[current] = true
		r.expanded++

		// 5) Goal reached — rebuild the path from the predecessor chain.
		if current == r.goal {
			return Result[N]{
				Path:     r.reconstruct(current),
				Cost:     entry.g,
				Expanded: r.expanded,
				Found:    true,
			}
		}

		// 6) Relax every edge leaving current.
		r.relax(current, entry.g)
	}

	// 7) Frontier exhausted (or capped) without reaching the goal. This is
	//    the explicit no-path outcome, not an error.
	return Result[N]{Path: nil, Cost: 0, Expanded: r.expanded, Found: false}
}

// relax examines each neighbor of u and attempts to improve its best known
// cost. When a strictly cheaper route to a neighbor is found we update its
// g-score and predecessor and push a fresh frontier entry; any older entry
// for the same node stays in the heap and is skipped on pop.
//
// Assumes g (== gScore[u]) is finalized before the call.
func (r *runner[N]) relax(u N, g float64) {
	var tentative float64
	var best float64
	var seen bool
	for _, v := range r.opts.Neighbors(u) {
		// Finalized nodes already carry their optimal cost; with a
		// consistent heuristic no later route can beat it.
		if r.closed[v] {
			continue
		}

		// Candidate cost of reaching v through u.
		tentative = g + r.opts.Cost(u, v)

		// Keep only strict improvements; "<" avoids duplicate pushes when
		// costs are equal.
		if best, seen = r.gScore[v]; seen && tentative >= best {
			continue
		}

		r.gScore[v] = tentative
		r.prev[v] = u
		heap.Push(&r.pq, &frontierEntry[N]{
			node: v,
			g:    tentative,
			f:    tentative + r.opts.Distance(v, r.goal),
		})
	}
}

// reconstruct walks the predecessor chain from goal back to start, then
// reverses the sequence into start→goal order. The walk stops at the first
// node without a predecessor, which is always the start node.
func (r *runner[N]) reconstruct(goal N) []N {
	path := []N{goal}
	current := goal
	for {
		p, ok := r.prev[current]
		if !ok {
			break
		}
		path = append(path, p)
		current = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierEntry represents a discovered node with its cost bookkeeping at
// discovery time: g is the accumulated cost from start, f = g + h orders the
// frontier.
type frontierEntry[N comparable] struct {
	node N
	g    float64 // accumulated cost from start
	f    float64 // estimated total cost through this node
}

// frontier is a min-heap (priority queue) of *frontierEntry ordered by f
// ascending. We use the lazy decrease-key approach: improving a node pushes a
// new entry, and outdated entries are ignored when popped (checked via the
// closed map).
type frontier[N comparable] []*frontierEntry[N]

// Len returns the number of entries in the heap.
func (pq frontier[N]) Len() int { return len(pq) }

// Less defines the comparison: smaller estimated total cost → higher priority.
func (pq frontier[N]) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two entries in the heap.
func (pq frontier[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new entry x onto the heap.
// Called by heap.Push; x must be of type *frontierEntry[N].
func (pq *frontier[N]) Push(x interface{}) { *pq = append(*pq, x.(*frontierEntry[N])) }

// Pop removes and returns the last entry from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *frontierEntry[N].
func (pq *frontier[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]

	return entry
}
