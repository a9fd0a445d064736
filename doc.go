// Package gopaths is a small, extensible shortest-path toolkit built around
// the A* search algorithm — pathfinding over any graph you can describe with
// three functions.
//
// 🚀 What is gopaths?
//
//	A modern, generic, dependency-light library that brings together:
//		• astar: heuristic-guided shortest-path search over implicit graphs
//		• grid:  ready-made neighbor functions and metrics for 2D integer grids
//
// The graph is never materialized. You hand the finder three callables —
// neighbors, cost, and a heuristic distance — and it explores the space they
// define, from infinite coordinate planes to arbitrary state graphs.
//
// ✨ Why choose gopaths?
//
//   - Beginner-friendly – the default finder searches an infinite integer grid
//     with zero configuration
//   - Generic – nodes are any comparable type; no wrapping, no interfaces
//   - Rock-solid guarantees – optimal paths under admissible heuristics,
//     explicit "no path" outcomes, reentrant by construction
//   - Extensible – swap any of the three functions independently to cover
//     weighted maps, bounded boards, or domain-specific state spaces
//
// Under the hood, everything is organized under two subpackages:
//
//	astar/ — the Finder, functional options, and the frontier/relaxation loop
//	grid/  — Coord, 4/8-connectivity neighbor functions, Euclidean, Manhattan
//	         and Chebyshev metrics, bounded-board helpers
//
// Quick ASCII example:
//
//	S . . .        S→(1,1)→(2,2)→G is the optimal diagonal route
//	. x . .        on the default 8-connected grid; supply a custom
//	. . x .        neighbors function to carve obstacles like `x`.
//	. . . G
//
//	go get github.com/katalvlaran/gopaths
package gopaths
