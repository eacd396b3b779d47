// Package dijkstra computes single-source shortest distances over a finite,
// caller-enumerated set of states with non-negative integer edge costs.
//
// Overview:
//
//   - Distances computes the minimum cost from a start state to every state of
//     the set in O((V + E) log V) time, where V = |states| and E = |edges|.
//   - It relies on a min-heap (package frontier) to always expand the
//     next-closest label.
//   - Only distances are produced; use package astar when a path is needed.
//
// Labels:
//
//   - States are never hashed directly. Every state is projected to a
//     comparable label by labelOf, and connections address their targets by
//     label. States therefore need not be comparable, and several logical
//     states may deliberately share one search node through their label, as
//     long as the enumerated set holds only one of them.
//
// Unreachability:
//
//   - An unreachable state is data, not an error: its cost is Unreachable[C](),
//     the maximum value of C. Cost sums that would overflow C are treated as
//     unreachable as well.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each label is finalized at most once: V extractions from the frontier.
//   - Each edge relaxation may push a new frontier entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance map and label index.
//   - O(E) worst-case frontier entries under lazy decrease-key.
//
// A state is finalized when popped and never relaxed again; this is only valid
// because edge costs are non-negative, so negative costs are rejected.
//
// Error handling (sentinel errors):
//
//   - ErrNilFunc:        labelOf or connections is nil.
//   - ErrDuplicateLabel: two states of the set share a label; every duplicate is
//     reported in one multierr-combined error.
//   - ErrStartNotFound:  the start's label is not carried by any state of the set.
//   - ErrUnknownLabel:   connections emitted a label outside the set.
//   - ErrNegativeWeight: connections emitted a negative cost.
//   - ErrBadMaxDistance: WithMaxDistance was given a negative value (panics).
//
// API reference:
//
//	func Distances[S any, L comparable, C constraints.Integer](
//	    start S,
//	    all []S,
//	    labelOf func(S) L,
//	    connections func(S) []LabelEdge[L, C],
//	    opts ...Option,
//	) (*Result[S, L, C], error)
//
//	  - opts: WithMaxDistance(int64) stops exploring beyond a distance;
//	          WithLogger(logr.Logger) receives V(1) summaries and V(2) expansions.
//
// Thread safety:
//
//   - Distances keeps all working state per call; concurrent calls are safe as
//     long as the callbacks are. A Result is read-only.
package dijkstra
