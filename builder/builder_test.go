package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optpath/builder"
)

// TestConstructors_Shape checks order and arc counts of every constructor.
func TestConstructors_Shape(t *testing.T) {
	tests := []struct {
		name     string
		directed bool
		con      builder.Constructor
		order    int
		arcs     int
	}{
		{"Path5", false, builder.Path(5), 5, 8},
		{"Path5_directed", true, builder.Path(5), 5, 4},
		{"Cycle4", false, builder.Cycle(4), 4, 8},
		{"Cycle4_directed", true, builder.Cycle(4), 4, 4},
		{"Complete4", false, builder.Complete(4), 4, 12},
		{"Complete4_directed", true, builder.Complete(4), 4, 12},
		{"Complete1", false, builder.Complete(1), 1, 0},
		{"Grid2x3", false, builder.Grid(2, 3), 6, 14},
		{"Grid2x3_directed", true, builder.Grid(2, 3), 6, 7},
		{"RandomSparse_p0", false, builder.RandomSparse(6, 0), 6, 0},
		{"RandomSparse_p1", false, builder.RandomSparse(4, 1), 4, 12},
		{"RandomSparse_p1_directed", true, builder.RandomSparse(4, 1), 4, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var opts []builder.BuilderOption
			if tc.directed {
				opts = append(opts, builder.WithDirected())
			}
			g, err := builder.BuildGraph(opts, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.order, g.Order())
			assert.Equal(t, tc.arcs, g.Size())
			assert.Equal(t, tc.directed, g.Directed())
		})
	}
}

// TestConstructors_Errors checks the sentinel of every invalid parameter.
func TestConstructors_Errors(t *testing.T) {
	tests := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"Path1", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle2", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete0", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid0x3", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse0", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse_p", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse_rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuildGraph_Composes appends the vertices of later constructors.
func TestBuildGraph_Composes(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, []builder.Arc{{To: 4, Cost: 1}, {To: 5, Cost: 1}}, g.Arcs(3))

	// The two parts stay disconnected.
	dist := g.BruteForceDistances(0)
	assert.EqualValues(t, 2, dist[2])
	assert.Equal(t, int64(math.MaxInt64), dist[3])
}

// TestRandomSparse_Deterministic builds the same graph twice from one seed.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *builder.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0, 9), builder.WithDirected()},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	for _, v := range a.Vertices() {
		assert.Equal(t, a.Arcs(v), b.Arcs(v))
	}
}

// TestGraph_AddEdge covers range checks, self-loops and negative weights.
func TestGraph_AddEdge(t *testing.T) {
	g := builder.NewGraph(false)
	g.AddVertices(2)

	assert.ErrorIs(t, g.AddEdge(0, 2, 1), builder.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 1, -1), builder.ErrConstructFailed)

	require.NoError(t, g.AddEdge(0, 0, 0))
	assert.Equal(t, 1, g.Size(), "undirected self-loop stored once")
	assert.Nil(t, g.Arcs(5))
}

// TestGraph_PathCost uses the cheapest of parallel arcs.
func TestGraph_PathCost(t *testing.T) {
	g := builder.NewGraph(true)
	g.AddVertices(3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 1))

	cost, ok := g.PathCost([]int{0, 1, 2})
	assert.True(t, ok)
	assert.EqualValues(t, 3, cost)

	_, ok = g.PathCost([]int{2, 1})
	assert.False(t, ok)

	cost, ok = g.PathCost([]int{1})
	assert.True(t, ok)
	assert.Zero(t, cost)
}

// TestOptimalPaths_Square lists both routes around an undirected 4-cycle.
func TestOptimalPaths_Square(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	cost, paths, found := g.OptimalPaths(0, func(v int) bool { return v == 2 })
	require.True(t, found)
	assert.EqualValues(t, 2, cost)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 3, 2}}, paths)

	_, _, found = g.OptimalPaths(0, func(v int) bool { return v == 9 })
	assert.False(t, found)
}

// TestOptions_Panics checks option constructor validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithConstantWeight(-3) })
}
