package dijkstra

import (
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/optpath/frontier"
)

// Distances computes the minimum cost from start to every state in all.
//
// labelOf projects a state to its label; connections lists the outgoing edges
// of a state, addressed by the labels of their targets. Every label emitted by
// connections must be the label of some state in all, and start must be in all.
//
// Unreachable states are not an error: their cost is Unreachable[C]().
//
// Preconditions and validation (in order):
//  1. labelOf and connections are non-nil (ErrNilFunc).
//  2. Labels of all are pairwise distinct (ErrDuplicateLabel, every duplicate reported).
//  3. The label of start belongs to all (ErrStartNotFound).
//  4. During the run: edges target known labels (ErrUnknownLabel) and
//     carry non-negative costs (ErrNegativeWeight).
func Distances[S any, L comparable, C constraints.Integer](
	start S,
	all []S,
	labelOf func(S) L,
	connections func(S) []LabelEdge[L, C],
	opts ...Option,
) (*Result[S, L, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if labelOf == nil || connections == nil {
		return nil, ErrNilFunc
	}

	// Index label → position in all; collect every duplicate before failing.
	index := make(map[L]int, len(all))
	var errs error
	for i, s := range all {
		l := labelOf(s)
		if prev, dup := index[l]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%w: %v (states #%d and #%d)", ErrDuplicateLabel, l, prev, i))
			continue
		}
		index[l] = i
	}
	if errs != nil {
		return nil, errs
	}

	source := labelOf(start)
	if _, ok := index[source]; !ok {
		return nil, fmt.Errorf("%w: label %v", ErrStartNotFound, source)
	}

	r := &runner[S, L, C]{
		options:     cfg,
		all:         all,
		index:       index,
		connections: connections,
		dist:        make(map[L]C, len(all)),
		visited:     make(map[L]bool, len(all)),
		pq:          frontier.New[L, C](len(all)),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	cfg.Logger.V(1).Info("distances computed",
		"states", len(all), "reached", r.reached, "expanded", r.expanded)

	return &Result[S, L, C]{
		states:  all,
		index:   index,
		dist:    r.dist,
		labelOf: labelOf,
	}, nil
}

// runner holds the mutable state for a single Distances execution.
type runner[S any, L comparable, C constraints.Integer] struct {
	options     Options
	all         []S                       // caller's state set; read-only
	index       map[L]int                 // label → position in all
	connections func(S) []LabelEdge[L, C] // edge source
	dist        map[L]C                   // label → best known cost
	visited     map[L]bool                // finalized labels
	pq          *frontier.Queue[L, C]     // lazy priority queue
	reached     int                       // labels with a finite cost
	expanded    int                       // labels finalized and relaxed
}

// init sets every working cost to the sentinel, the source to zero,
// and seeds the frontier with the source.
func (r *runner[S, L, C]) init(source L) {
	inf := Unreachable[C]()
	for l := range r.index {
		r.dist[l] = inf
	}
	r.dist[source] = 0
	r.reached = 1
	r.pq.Push(source, 0)
}

// process pops the closest unfinalized label until the frontier is empty.
func (r *runner[S, L, C]) process() error {
	for {
		u, d, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		// Stale entry: u was finalized with a smaller cost.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.expanded++
		r.options.Logger.V(2).Info("expand", "label", u, "cost", d)

		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax examines each edge leaving u and improves its target's working cost.
// Assumes dist[u] is final.
func (r *runner[S, L, C]) relax(u L) error {
	du := r.dist[u]
	for _, e := range r.connections(r.all[r.index[u]]) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.To, e.Cost)
		}
		old, known := r.dist[e.To]
		if !known {
			return fmt.Errorf("%w: edge %v→%v", ErrUnknownLabel, u, e.To)
		}
		if r.visited[e.To] {
			continue
		}

		nd, ok := frontier.Add(du, e.Cost)
		if !ok || uint64(nd) > uint64(r.options.MaxDistance) {
			continue
		}
		// Strict improvement only; equal costs would just duplicate frontier entries.
		if nd >= old {
			continue
		}
		if old == Unreachable[C]() {
			r.reached++
		}
		r.dist[e.To] = nd
		r.pq.Push(e.To, nd)
	}

	return nil
}

// Result holds the distances computed by Distances.
// It is read-only and safe for concurrent readers.
type Result[S any, L comparable, C constraints.Integer] struct {
	states  []S
	index   map[L]int
	dist    map[L]C
	labelOf func(S) L
}

// Cost returns the minimum cost from the start to s, or Unreachable[C]()
// if s is unreachable or not part of the state set.
func (r *Result[S, L, C]) Cost(s S) C {
	if d, ok := r.dist[r.labelOf(s)]; ok {
		return d
	}

	return Unreachable[C]()
}

// CostOf returns the cost recorded for label l and whether l belongs to the state set.
func (r *Result[S, L, C]) CostOf(l L) (C, bool) {
	d, ok := r.dist[l]
	if !ok {
		return Unreachable[C](), false
	}

	return d, true
}

// Reachable reports whether s was reached from the start.
func (r *Result[S, L, C]) Reachable(s S) bool {
	return r.Cost(s) != Unreachable[C]()
}

// Each calls fn for every state of the set, in the order the states were
// given to Distances, until fn returns false.
func (r *Result[S, L, C]) Each(fn func(state S, cost C) bool) {
	for _, s := range r.states {
		if !fn(s, r.dist[r.labelOf(s)]) {
			return
		}
	}
}

// Len returns the number of states in the set.
func (r *Result[S, L, C]) Len() int { return len(r.dist) }

// Map returns a copy of the label → cost mapping.
func (r *Result[S, L, C]) Map() map[L]C {
	out := make(map[L]C, len(r.dist))
	for l, d := range r.dist {
		out[l] = d
	}

	return out
}
