// Package astar implements A* search for the cheapest path from a start state
// to any state satisfying a goal predicate.
//
// The state space is never materialized: it is discovered through the
// Connections callback and may be unbounded. The search keeps a frontier
// ordered by g + h (cost so far plus heuristic estimate), a map of best known
// costs, and a single-parent predecessor tree that is overwritten only when a
// strictly cheaper route to a state is found.
//
// Complexity (for a consistent heuristic over a finite explored region):
//
//   - Time:  O((V + E) log V) where V, E count explored states and edges.
//   - Space: O(V + E) for costs, predecessors and lazy frontier entries.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: an improved state is pushed again and the stale
//     entry is skipped when popped (its recorded cost no longer matches).
//   - The loop is iterative, so search depth is bounded only by memory.
//   - The first goal popped is optimal when the heuristic is admissible.
//   - Exhausting the frontier is a failure (ErrNoRoute), never a zero value.
package astar

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/optpath/frontier"
)

// item is a frontier entry: a state and the cost it had when pushed.
type item[S comparable, C constraints.Integer] struct {
	state S
	cost  C
}

// Search returns the minimum cost from start to any state satisfying isGoal,
// together with one optimal path (start first, goal last). Among tied optimal
// paths the returned one is arbitrary but deterministic for identical inputs.
//
// Errors:
//   - ErrNilFunc if a callback is nil.
//   - ErrNoRoute when the reachable state space holds no goal.
//   - ErrNegativeWeight / ErrNegativeHeuristic on contract violations.
//   - ErrExpansionLimit when WithMaxExpansions is exceeded.
func Search[S comparable, C constraints.Integer](
	start S,
	connections Connections[S, C],
	heuristic Heuristic[S, C],
	isGoal Goal[S],
	opts ...Option,
) (C, []S, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if connections == nil || heuristic == nil || isGoal == nil {
		return 0, nil, ErrNilFunc
	}

	r := &runner[S, C]{
		options:     cfg,
		connections: connections,
		heuristic:   heuristic,
		isGoal:      isGoal,
		cost:        make(map[S]C),
		prev:        make(map[S]S),
		pq:          frontier.New[item[S, C], C](0),
	}
	if err := r.init(start); err != nil {
		return 0, nil, err
	}

	goal, err := r.process()
	if err != nil {
		cfg.Logger.V(1).Info("search failed", "expanded", r.expanded, "error", err.Error())
		return 0, nil, err
	}

	path := r.pathTo(start, goal)
	cfg.Logger.V(1).Info("search finished",
		"cost", r.cost[goal], "length", len(path), "expanded", r.expanded)

	return r.cost[goal], path, nil
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable, C constraints.Integer] struct {
	options     Options
	connections Connections[S, C]
	heuristic   Heuristic[S, C]
	isGoal      Goal[S]
	cost        map[S]C                        // best known cost from start
	prev        map[S]S                        // predecessor on the best known route
	pq          *frontier.Queue[item[S, C], C] // ordered by cost + heuristic
	expanded    int
}

// init records the start at cost 0 and seeds the frontier at h(start).
func (r *runner[S, C]) init(start S) error {
	h, err := r.estimate(start)
	if err != nil {
		return err
	}
	r.cost[start] = 0
	r.pq.Push(item[S, C]{state: start, cost: 0}, h)

	return nil
}

// process pops states in priority order until a goal is popped.
func (r *runner[S, C]) process() (S, error) {
	for {
		it, _, ok := r.pq.Pop()
		if !ok {
			var zero S
			return zero, ErrNoRoute
		}
		// Stale entry: a cheaper route to this state was found after the push.
		if it.cost > r.cost[it.state] {
			continue
		}
		if r.isGoal(it.state) {
			return it.state, nil
		}

		r.expanded++
		if r.options.MaxExpansions > 0 && r.expanded > r.options.MaxExpansions {
			var zero S
			return zero, fmt.Errorf("%w: %d", ErrExpansionLimit, r.options.MaxExpansions)
		}
		r.options.Logger.V(2).Info("expand", "state", it.state, "cost", it.cost)

		if err := r.relax(it.state, it.cost); err != nil {
			var zero S
			return zero, err
		}
	}
}

// relax examines each edge leaving u (reached at cost du) and records every
// strict improvement, overwriting the successor's single predecessor.
func (r *runner[S, C]) relax(u S, du C) error {
	for _, e := range r.connections(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.To, e.Cost)
		}
		tentative, ok := frontier.Add(du, e.Cost)
		if !ok {
			continue
		}
		if old, seen := r.cost[e.To]; seen && tentative >= old {
			continue
		}
		h, err := r.estimate(e.To)
		if err != nil {
			return err
		}
		r.cost[e.To] = tentative
		r.prev[e.To] = u
		f, _ := frontier.Add(tentative, h)
		r.pq.Push(item[S, C]{state: e.To, cost: tentative}, f)
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

// pathTo walks the predecessor tree back from goal to start and reverses it.
func (r *runner[S, C]) pathTo(start, goal S) []S {
	path := []S{goal}
	for cur := goal; cur != start; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
