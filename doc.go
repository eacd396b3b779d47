// Package optpath is a small family of generic shortest-path searches over
// caller-defined state spaces with non-negative integer costs.
//
// What is optpath?
//
//	A library that never asks you to build a graph. You describe the space
//	with callbacks (which states follow a state, at what cost), and pick the
//	search that answers your question:
//		• dijkstra  — cost from one start to every state of a finite set
//		• astar     — one cheapest path to any goal, over a possibly unbounded space
//		• allstars  — every cheapest path to any goal
//
// Supporting packages:
//
//	frontier/  — min-priority queue with FIFO tie-break and saturating cost arithmetic
//	gridgraph/ — 2D cost grids as state spaces: plain cells, heading-constrained
//	             walkers, islands and bridges between them
//	builder/   — deterministic graph constructors and brute-force oracles for tests
//	examples/  — runnable demos (go run ./examples)
//
// Conventions shared by every search:
//
//   - Costs are any integer type (golang.org/x/exp/constraints.Integer).
//   - Negative edge costs and heuristic estimates are rejected with sentinel errors.
//   - Options are functional (WithX...); invalid option values panic at construction.
//   - Diagnostics go to a github.com/go-logr/logr Logger, discarded by default.
//
// "No path" is reported differently on purpose: dijkstra returns a sentinel
// cost, astar returns ErrNoRoute, allstars returns an empty result.
//
//	go get github.com/katalvlaran/optpath
package optpath
