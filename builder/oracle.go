// SPDX-License-Identifier: MIT
// Package: optpath/builder
//
// oracle.go — exhaustive reference searches for tests.

package builder

import (
	"math"
	"slices"
)

// BruteForceDistances enumerates every simple path leaving src by depth-first
// search and returns, per vertex, the cheapest one found (math.MaxInt64 when
// no path exists). With non-negative weights a cheapest walk is always a
// simple path, so the result is exact.
//
// Exponential in the worst case: meant as a test oracle on small graphs.
func (g *Graph) BruteForceDistances(src int) []int64 {
	dist := make([]int64, g.Order())
	for i := range dist {
		dist[i] = math.MaxInt64
	}
	if src < 0 || src >= g.Order() {
		return dist
	}

	onPath := make([]bool, g.Order())
	var walk func(u int, cost int64)
	walk = func(u int, cost int64) {
		if cost < dist[u] {
			dist[u] = cost
		}
		onPath[u] = true
		for _, a := range g.arcs[u] {
			if !onPath[a.To] {
				walk(a.To, cost+a.Cost)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return dist
}

// OptimalPaths enumerates every simple path from src to a vertex satisfying
// isGoal and keeps those of minimum cost. Paths are ordered lexicographically.
// found is false when no goal is reachable.
//
// Exponential in the worst case: meant as a test oracle on small graphs.
func (g *Graph) OptimalPaths(src int, isGoal func(int) bool) (cost int64, paths [][]int, found bool) {
	if src < 0 || src >= g.Order() {
		return 0, nil, false
	}

	best := int64(math.MaxInt64)
	seen := make(map[string]bool)
	onPath := make([]bool, g.Order())
	path := []int{src}

	var walk func(u int, c int64)
	walk = func(u int, c int64) {
		if c > best {
			return
		}
		if isGoal(u) {
			if c < best {
				best = c
				paths = paths[:0]
				seen = make(map[string]bool)
			}
			// Parallel arcs yield the same vertex sequence more than once.
			if key := pathKey(path); !seen[key] {
				seen[key] = true
				paths = append(paths, slices.Clone(path))
			}
		}
		onPath[u] = true
		for _, a := range g.arcs[u] {
			if onPath[a.To] {
				continue
			}
			path = append(path, a.To)
			walk(a.To, c+a.Cost)
			path = path[:len(path)-1]
		}
		onPath[u] = false
	}
	walk(src, 0)

	if len(paths) == 0 {
		return 0, nil, false
	}
	slices.SortFunc(paths, slices.Compare[[]int])

	return best, paths, true
}

func pathKey(path []int) string {
	b := make([]byte, 0, len(path)*4)
	for _, v := range path {
		b = append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}

	return string(b)
}
