package allstars_test

import (
	"math"
	"runtime"
	"slices"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optpath/allstars"
	"github.com/katalvlaran/optpath/astar"
	"github.com/katalvlaran/optpath/builder"
)

// directed builds a directed graph from (u, v, w) triples over n vertices.
func directed(t *testing.T, n int, arcs ...[3]int64) *builder.Graph {
	t.Helper()
	g := builder.NewGraph(true)
	g.AddVertices(n)
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(int(a[0]), int(a[1]), a[2]))
	}

	return g
}

func sorted(paths [][]int) [][]int {
	out := slices.Clone(paths)
	slices.SortFunc(out, slices.Compare[[]int])

	return out
}

// TestAllOptimalPaths_TwoRoutes: two distinct 2-edge routes both cost 4.
func TestAllOptimalPaths_TwoRoutes(t *testing.T) {
	g := directed(t, 4,
		[3]int64{0, 1, 2}, [3]int64{1, 3, 2},
		[3]int64{0, 2, 1}, [3]int64{2, 3, 3},
	)
	paths, err := allstars.AllOptimalPaths(0, g.Connections, astar.Zero[int, int64](), astar.Target(3))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, [][]int{{0, 1, 3}, {0, 2, 3}}, sorted(paths))
	for _, p := range paths {
		c, ok := g.PathCost(p)
		require.True(t, ok)
		assert.EqualValues(t, 4, c)
	}
}

// TestAllOptimalPaths_Unreachable: no goal gives an empty result, not an error.
func TestAllOptimalPaths_Unreachable(t *testing.T) {
	g := directed(t, 3, [3]int64{0, 1, 1})
	paths, err := allstars.AllOptimalPaths(0, g.Connections, astar.Zero[int, int64](), astar.Target(2))
	require.NoError(t, err)
	assert.Empty(t, paths)

	res, err := allstars.Search(0, g.Connections, astar.Zero[int, int64](), astar.Target(2))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.Cost)
}

func TestAllOptimalPaths_StartIsGoal(t *testing.T) {
	g := directed(t, 2, [3]int64{0, 1, 0}, [3]int64{1, 0, 0})
	res, err := allstars.Search(0, g.Connections, astar.Zero[int, int64](), astar.Target(0))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, [][]int{{0}}, res.Paths)
}

// TestAllOptimalPaths_MultipleGoals returns paths to every goal at the minimum.
func TestAllOptimalPaths_MultipleGoals(t *testing.T) {
	g := directed(t, 5,
		[3]int64{0, 1, 1}, [3]int64{0, 2, 1},
		[3]int64{1, 3, 2}, [3]int64{2, 4, 2}, [3]int64{2, 3, 5},
	)
	goal := func(v int) bool { return v == 3 || v == 4 }

	res, err := allstars.Search(0, g.Connections, astar.Zero[int, int64](), goal)
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Cost)
	assert.ElementsMatch(t, []int{3, 4}, res.Goals)
	assert.Equal(t, [][]int{{0, 1, 3}, {0, 2, 4}}, sorted(res.Paths))
}

// TestAllOptimalPaths_ZeroCostCycle keeps only simple paths through a zero-cost loop.
//
//	0 -1-> 1 <-0-> 2 -1-> 3
func TestAllOptimalPaths_ZeroCostCycle(t *testing.T) {
	g := directed(t, 4,
		[3]int64{0, 1, 1},
		[3]int64{1, 2, 0}, [3]int64{2, 1, 0},
		[3]int64{1, 3, 1}, [3]int64{2, 3, 1},
	)
	paths, err := allstars.AllOptimalPaths(0, g.Connections, astar.Zero[int, int64](), astar.Target(3))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {0, 1, 3}}, sorted(paths))
}

// TestAllOptimalPaths_DiamondChain: k diamonds in a row give 2^k optimal paths.
func TestAllOptimalPaths_DiamondChain(t *testing.T) {
	const k = 6
	g := builder.NewGraph(true)
	g.AddVertices(3*k + 1)
	for i := 0; i < k; i++ {
		a, top, bottom, b := 3*i, 3*i+1, 3*i+2, 3*i+3
		require.NoError(t, g.AddEdge(a, top, 1))
		require.NoError(t, g.AddEdge(a, bottom, 1))
		require.NoError(t, g.AddEdge(top, b, 1))
		require.NoError(t, g.AddEdge(bottom, b, 1))
	}

	paths, err := allstars.AllOptimalPaths(0, g.Connections, astar.Zero[int, int64](), astar.Target(3*k))
	require.NoError(t, err)
	assert.Len(t, paths, 1<<k)
}

// TestAllOptimalPaths_LongChain rebuilds a single 50k-state path without
// copying it once per state.
func TestAllOptimalPaths_LongChain(t *testing.T) {
	const n = 50_000
	chain := func(v int) []astar.Edge[int, int64] {
		if v+1 < n {
			return []astar.Edge[int, int64]{{To: v + 1, Cost: 1}}
		}
		return nil
	}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	paths, err := allstars.AllOptimalPaths(0, chain, astar.Zero[int, int64](), astar.Target(n-1))
	runtime.ReadMemStats(&after)

	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], n)
	assert.Equal(t, 0, paths[0][0])
	assert.Equal(t, n-1, paths[0][n-1])
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(128<<20))
}

func TestSearch_Errors(t *testing.T) {
	g := directed(t, 2, [3]int64{0, 1, 1})

	_, err := allstars.Search(0, g.Connections, nil, astar.Target(1))
	assert.ErrorIs(t, err, allstars.ErrNilFunc)

	_, err = allstars.Search(0, g.Connections, func(int) int64 { return -2 }, astar.Target(1))
	assert.ErrorIs(t, err, allstars.ErrNegativeHeuristic)

	neg := func(int) []astar.Edge[int, int] { return []astar.Edge[int, int]{{To: 1, Cost: -1}} }
	_, err = allstars.Search(0, neg, astar.Zero[int, int](), astar.Target(1))
	assert.ErrorIs(t, err, allstars.ErrNegativeWeight)

	endless := func(n int) []astar.Edge[int, int] { return []astar.Edge[int, int]{{To: n + 1, Cost: 1}} }
	_, err = allstars.Search(0, endless, astar.Zero[int, int](), func(int) bool { return false },
		allstars.WithMaxExpansions(50))
	assert.ErrorIs(t, err, allstars.ErrExpansionLimit)

	assert.Panics(t, func() { allstars.WithMaxExpansions(-1) })
}

// TestAllOptimalPaths_MatchesOracle compares against exhaustive enumeration
// and against astar on random graphs with many zero-cost ties.
func TestAllOptimalPaths_MatchesOracle(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0, 3)}
		if seed%2 == 0 {
			opts = append(opts, builder.WithDirected())
		}
		g, err := builder.BuildGraph(opts, builder.RandomSparse(8, 0.35))
		require.NoError(t, err)

		goal := func(v int) bool { return v >= 6 }
		res, err := allstars.Search(0, g.Connections, astar.Zero[int, int64](), goal,
			allstars.WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})))
		require.NoError(t, err)

		cost, want, found := g.OptimalPaths(0, goal)
		aCost, _, aErr := astar.Search(0, g.Connections, astar.Zero[int, int64](), goal)

		require.Equal(t, found, res.Found, "seed=%d", seed)
		require.Equal(t, found, aErr == nil, "seed=%d", seed)
		if !found {
			assert.Empty(t, res.Paths)
			continue
		}
		assert.Equal(t, cost, res.Cost, "seed=%d", seed)
		assert.Equal(t, aCost, res.Cost, "seed=%d", seed)
		assert.Equal(t, want, sorted(res.Paths), "seed=%d", seed)
		for _, p := range res.Paths {
			pc, ok := g.PathCost(p)
			require.True(t, ok)
			assert.Equal(t, res.Cost, pc, "seed=%d path=%v", seed, p)
		}
	}
}

// TestAllOptimalPaths_InformedHeuristic repeats the oracle comparison with
// admissible heuristics that are not zero, so priorities and costs differ
// when goals are pruned.
func TestAllOptimalPaths_InformedHeuristic(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0, 3)}
		if seed%2 == 1 {
			opts = append(opts, builder.WithDirected())
		}
		g, err := builder.BuildGraph(opts, builder.RandomSparse(8, 0.35))
		require.NoError(t, err)

		goal := func(v int) bool { return v >= 6 }
		// remaining[v] is the exact cost from v to the nearest goal, 0 when none is reachable.
		remaining := make([]int64, g.Order())
		for v := range remaining {
			d := g.BruteForceDistances(v)
			best := int64(-1)
			for u, c := range d {
				if goal(u) && c != math.MaxInt64 && (best < 0 || c < best) {
					best = c
				}
			}
			remaining[v] = max(best, 0)
		}
		cost, want, found := g.OptimalPaths(0, goal)

		for name, h := range map[string]astar.Heuristic[int, int64]{
			"exact": func(v int) int64 { return remaining[v] },
			"half":  func(v int) int64 { return remaining[v] / 2 },
		} {
			res, err := allstars.Search(0, g.Connections, h, goal)
			require.NoError(t, err)
			require.Equal(t, found, res.Found, "seed=%d h=%s", seed, name)
			if !found {
				continue
			}
			assert.Equal(t, cost, res.Cost, "seed=%d h=%s", seed, name)
			assert.Equal(t, want, sorted(res.Paths), "seed=%d h=%s", seed, name)
		}
	}
}

// TestAllOptimalPaths_ManhattanOnGrid: on a directed unit grid every
// monotone route is optimal, and the Manhattan bound is exact.
func TestAllOptimalPaths_ManhattanOnGrid(t *testing.T) {
	const rows, cols = 4, 5
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Grid(rows, cols))
	require.NoError(t, err)

	goal := rows*cols - 1
	manhattan := func(v int) int64 { return int64(rows-1-v/cols) + int64(cols-1-v%cols) }

	res, err := allstars.Search(0, g.Connections, manhattan, astar.Target(goal))
	require.NoError(t, err)
	assert.EqualValues(t, rows+cols-2, res.Cost)
	// C(7, 3) monotone routes from corner to corner.
	assert.Len(t, res.Paths, 35)

	_, want, found := g.OptimalPaths(0, astar.Target(goal))
	require.True(t, found)
	assert.Equal(t, want, sorted(res.Paths))
}
