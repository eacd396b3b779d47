// SPDX-License-Identifier: MIT
// Package: optpath/builder
//
// graph.go — the materialized adjacency the constructors write into.

package builder

import (
	"fmt"

	"github.com/katalvlaran/optpath/astar"
	"github.com/katalvlaran/optpath/dijkstra"
)

// Arc is a weighted one-way connection to vertex To.
type Arc struct {
	To   int
	Cost int64
}

// Graph is a materialized weighted graph over vertices 0..Order()-1.
// Undirected edges are stored as two arcs. Graph is not safe for
// concurrent mutation; concurrent reads are fine.
type Graph struct {
	directed bool
	arcs     [][]Arc
}

// NewGraph returns an empty graph.
func NewGraph(directed bool) *Graph {
	return &Graph{directed: directed}
}

// Directed reports whether AddEdge emits one-way arcs.
func (g *Graph) Directed() bool { return g.directed }

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.arcs) }

// AddVertices appends n isolated vertices and returns the index of the first one.
func (g *Graph) AddVertices(n int) int {
	first := len(g.arcs)
	for i := 0; i < n; i++ {
		g.arcs = append(g.arcs, nil)
	}

	return first
}

// AddEdge adds u→v with cost w, plus v→u when the graph is undirected.
// A self-loop is stored once.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= len(g.arcs) || v < 0 || v >= len(g.arcs) {
		return fmt.Errorf("%w: %d→%d with order %d", ErrVertexOutOfRange, u, v, len(g.arcs))
	}
	if w < 0 {
		return fmt.Errorf("%w: negative weight %d on %d→%d", ErrConstructFailed, w, u, v)
	}
	g.arcs[u] = append(g.arcs[u], Arc{To: v, Cost: w})
	if !g.directed && u != v {
		g.arcs[v] = append(g.arcs[v], Arc{To: u, Cost: w})
	}

	return nil
}

// Vertices returns 0..Order()-1.
func (g *Graph) Vertices() []int {
	vs := make([]int, len(g.arcs))
	for i := range vs {
		vs[i] = i
	}

	return vs
}

// Arcs returns the outgoing arcs of v, or nil if v is out of range.
// The returned slice must not be modified.
func (g *Graph) Arcs(v int) []Arc {
	if v < 0 || v >= len(g.arcs) {
		return nil
	}

	return g.arcs[v]
}

// Size returns the number of stored arcs.
func (g *Graph) Size() int {
	n := 0
	for _, as := range g.arcs {
		n += len(as)
	}

	return n
}

// Connections is an astar.Connections over the vertices of g.
func (g *Graph) Connections(v int) []astar.Edge[int, int64] {
	as := g.Arcs(v)
	out := make([]astar.Edge[int, int64], len(as))
	for i, a := range as {
		out[i] = astar.Edge[int, int64]{To: a.To, Cost: a.Cost}
	}

	return out
}

// LabelEdges is a dijkstra connection function where every vertex is its own label.
func (g *Graph) LabelEdges(v int) []dijkstra.LabelEdge[int, int64] {
	as := g.Arcs(v)
	out := make([]dijkstra.LabelEdge[int, int64], len(as))
	for i, a := range as {
		out[i] = dijkstra.LabelEdge[int, int64]{To: a.To, Cost: a.Cost}
	}

	return out
}

// PathCost sums the cheapest arc between consecutive vertices of path.
// ok is false if some step has no arc. An empty or single-vertex path costs 0.
func (g *Graph) PathCost(path []int) (cost int64, ok bool) {
	for i := 1; i < len(path); i++ {
		best, found := int64(0), false
		for _, a := range g.Arcs(path[i-1]) {
			if a.To == path[i] && (!found || a.Cost < best) {
				best, found = a.Cost, true
			}
		}
		if !found {
			return 0, false
		}
		cost += best
	}

	return cost, true
}
