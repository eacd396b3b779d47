// Package builder constructs small, deterministic weighted graphs used to
// drive and verify the searches of optpath.
//
// The searches never see a Graph directly: they only call the lazy callbacks
// the Graph exposes (Connections for astar/allstars, LabelEdges for dijkstra).
// The materialized adjacency exists so that tests can compare search results
// against an exhaustive oracle (BruteForceDistances, OptimalPaths).
//
// What:
//
//   - Constructors: Path, Cycle, Complete, Grid, RandomSparse.
//   - One orchestrator: BuildGraph(bopts, cons...) applies constructors in order.
//   - Vertices are integers 0..Order()-1; constructors append new vertices
//     after the existing ones, so several constructors compose into one graph.
//
// Determinism:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Edge emission order is documented per constructor and stable.
//
// Options:
//
//   - WithDirected(): emit one-way arcs instead of symmetric pairs.
//   - WithSeed / WithRand: randomness for RandomSparse and random weights.
//   - WithWeightFn / WithConstantWeight / WithUniformWeight: edge cost policy.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed, ErrVertexOutOfRange.
//
// Option constructors panic on meaningless values; constructors never panic.
package builder
