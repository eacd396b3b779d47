// Package allstars implements an A* variant that enumerates every optimal
// path from a start state to any goal state.
//
// It differs from package astar in three ways:
//
//   - Ties are kept. A relaxation whose cost equals the best known cost adds
//     the predecessor to a set instead of being ignored, so predecessors form
//     a DAG of tied-optimal routes rather than a tree. A strictly cheaper
//     route resets the set.
//   - The search goes on after the first goal. The first goal fixes the
//     minimum cost; further goals at that cost join the goal set, and any
//     state popped with a priority above the minimum is pruned unexpanded.
//   - Paths are rebuilt from the DAG after the frontier drains: one pass marks
//     the states that lead back to the start, then a depth-first walk from
//     each goal emits paths from a single shared stack.
//
// Zero-cost cycles may put a state among its own ancestors in the DAG;
// reconstruction only emits simple paths.
//
// Complexity: the search itself matches A*. Without zero-cost cycles,
// reconstruction is proportional to the size of the DAG plus the total length
// of the returned paths; a cycle can add dead-end walks that end where the
// cycle closes.
package allstars

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/optpath/astar"
	"github.com/katalvlaran/optpath/frontier"
)

// AllOptimalPaths returns every path of minimum cost from start to any state
// satisfying isGoal. The result is empty (and err nil) when no goal is
// reachable; errors only report contract violations and expansion limits.
func AllOptimalPaths[S comparable, C constraints.Integer](
	start S,
	connections astar.Connections[S, C],
	heuristic astar.Heuristic[S, C],
	isGoal astar.Goal[S],
	opts ...Option,
) ([][]S, error) {
	res, err := Search(start, connections, heuristic, isGoal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Paths, nil
}

// Search runs the all-optimal-paths search and returns the minimum cost,
// the goal set and every optimal path.
func Search[S comparable, C constraints.Integer](
	start S,
	connections astar.Connections[S, C],
	heuristic astar.Heuristic[S, C],
	isGoal astar.Goal[S],
	opts ...Option,
) (*Result[S, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if connections == nil || heuristic == nil || isGoal == nil {
		return nil, ErrNilFunc
	}

	r := &runner[S, C]{
		options:     cfg,
		start:       start,
		connections: connections,
		heuristic:   heuristic,
		isGoal:      isGoal,
		cost:        make(map[S]C),
		preds:       make(map[S][]S),
		goalSeen:    make(map[S]bool),
		pq:          frontier.New[entry[S, C], C](0),
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		cfg.Logger.V(1).Info("search failed", "expanded", r.expanded, "error", err.Error())
		return nil, err
	}

	res := &Result[S, C]{Found: r.found, Goals: r.goals}
	if r.found {
		res.Cost = r.minimum
		res.Paths = r.reconstruct()
	}
	cfg.Logger.V(1).Info("search finished",
		"found", res.Found, "cost", res.Cost, "goals", len(res.Goals),
		"paths", len(res.Paths), "expanded", r.expanded)

	return res, nil
}

// entry is a frontier element: a state and the cost it had when pushed.
type entry[S comparable, C constraints.Integer] struct {
	state S
	cost  C
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable, C constraints.Integer] struct {
	options     Options
	start       S
	connections astar.Connections[S, C]
	heuristic   astar.Heuristic[S, C]
	isGoal      astar.Goal[S]

	cost  map[S]C   // best known cost from start
	preds map[S][]S // tied-optimal predecessors, insertion ordered
	pq    *frontier.Queue[entry[S, C], C]

	found    bool
	minimum  C         // minimum goal cost, valid once found
	goals    []S       // goal set in pop order
	goalSeen map[S]bool
	expanded int
}

// init records the start at cost 0 and seeds the frontier at h(start).
func (r *runner[S, C]) init() error {
	h, err := r.estimate(r.start)
	if err != nil {
		return err
	}
	r.cost[r.start] = 0
	r.pq.Push(entry[S, C]{state: r.start, cost: 0}, h)

	return nil
}

// process drains the frontier, collecting goals at the minimum cost.
func (r *runner[S, C]) process() error {
	for {
		e, priority, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		if e.cost > r.cost[e.state] {
			continue // stale
		}
		// Nothing popped above the established minimum can lead to a goal at that cost.
		if r.found && priority > r.minimum {
			continue
		}
		if r.isGoal(e.state) {
			r.recordGoal(e.state, e.cost)
		}

		r.expanded++
		if r.options.MaxExpansions > 0 && r.expanded > r.options.MaxExpansions {
			return fmt.Errorf("%w: %d", ErrExpansionLimit, r.options.MaxExpansions)
		}
		r.options.Logger.V(2).Info("expand", "state", e.state, "cost", e.cost)

		if err := r.relax(e.state, e.cost); err != nil {
			return err
		}
	}
}

// recordGoal fixes the minimum on the first goal and adds goals tying it.
func (r *runner[S, C]) recordGoal(s S, c C) {
	if !r.found {
		r.found = true
		r.minimum = c
	}
	if c != r.minimum || r.goalSeen[s] {
		return
	}
	r.goalSeen[s] = true
	r.goals = append(r.goals, s)
}

// relax examines each edge leaving u (reached at cost du). A strict
// improvement replaces the successor's predecessor set and re-queues it;
// a tie only adds u to the set.
func (r *runner[S, C]) relax(u S, du C) error {
	for _, e := range r.connections(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.To, e.Cost)
		}
		// The start roots every path; self-loops never lie on a simple path.
		if e.To == r.start || e.To == u {
			continue
		}
		tentative, ok := frontier.Add(du, e.Cost)
		if !ok {
			continue
		}

		old, seen := r.cost[e.To]
		switch {
		case seen && tentative > old:
			continue
		case seen && tentative == old:
			if !slices.Contains(r.preds[e.To], u) {
				r.preds[e.To] = append(r.preds[e.To], u)
			}
			continue
		}

		h, err := r.estimate(e.To)
		if err != nil {
			return err
		}
		r.cost[e.To] = tentative
		r.preds[e.To] = append(r.preds[e.To][:0], u)
		f, _ := frontier.Add(tentative, h)
		r.pq.Push(entry[S, C]{state: e.To, cost: tentative}, f)
	}

	return nil
}

// estimate evaluates the heuristic and rejects negative values.
func (r *runner[S, C]) estimate(s S) (C, error) {
	h := r.heuristic(s)
	if h < 0 {
		return 0, fmt.Errorf("%w: h(%v)=%v", ErrNegativeHeuristic, s, h)
	}

	return h, nil
}

// reconstruct expands every goal through the predecessor DAG.
func (r *runner[S, C]) reconstruct() [][]S {
	b := &rebuilder[S]{
		start:  r.start,
		preds:  r.preds,
		onPath: make(map[S]bool),
	}
	b.markReach()
	var out [][]S
	for _, g := range r.goals {
		out = b.emit(g, out)
	}

	return out
}

// rebuilder turns the predecessor DAG into explicit paths.
type rebuilder[S comparable] struct {
	start  S
	preds  map[S][]S
	reach  map[S]bool // states with a predecessor chain back to start
	onPath map[S]bool // states on the current walk
}

// frame is one state of the walk and the index of its next predecessor.
type frame[S comparable] struct {
	state S
	next  int
}

// markReach walks the DAG forwards from the start, so every state it
// touches has a predecessor chain back to the start.
func (b *rebuilder[S]) markReach() {
	succs := make(map[S][]S, len(b.preds))
	for s, ps := range b.preds {
		for _, p := range ps {
			succs[p] = append(succs[p], s)
		}
	}
	b.reach = map[S]bool{b.start: true}
	queue := []S{b.start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range succs[u] {
			if !b.reach[v] {
				b.reach[v] = true
				queue = append(queue, v)
			}
		}
	}
}

// emit appends to out every simple path from the start to goal, walking
// predecessors depth-first. Predecessors already on the walk are skipped,
// which keeps zero-cost cycles out of the paths.
func (b *rebuilder[S]) emit(goal S, out [][]S) [][]S {
	if !b.reach[goal] {
		return out
	}
	stack := []frame[S]{{state: goal}}
	b.onPath[goal] = true
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		preds := b.preds[top.state]
		if len(preds) == 0 || top.next == len(preds) {
			if len(preds) == 0 {
				out = append(out, reversed(stack))
			}
			delete(b.onPath, top.state)
			stack = stack[:len(stack)-1]
			continue
		}
		p := preds[top.next]
		top.next++
		if b.onPath[p] || !b.reach[p] {
			continue
		}
		b.onPath[p] = true
		stack = append(stack, frame[S]{state: p})
	}

	return out
}

// reversed copies the walk's states into start-to-goal order.
func reversed[S comparable](stack []frame[S]) []S {
	path := make([]S, len(stack))
	for i, f := range stack {
		path[len(stack)-1-i] = f.state
	}

	return path
}
