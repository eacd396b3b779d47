package gridgraph

import (
	"github.com/katalvlaran/optpath/astar"
	"github.com/katalvlaran/optpath/dijkstra"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	minPass := int64(-1)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.PassThreshold && (minPass < 0 || int64(v) < minPass) {
				minPass = int64(v)
			}
		}
	}
	if minPass < 0 {
		minPass = 0
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		PassThreshold:   opts.PassThreshold,
		neighborOffsets: offsets,
		minPass:         minPass,
	}

	return gg, nil
}

// From2D is NewGridGraph with the default PassThreshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Passable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.PassThreshold
}

// At returns the cell at row-major index idx.
func (gg *GridGraph) At(idx int) Cell {
	x, y := gg.Coordinate(idx)

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}
}

// Cells returns every passable cell in row-major order.
// Together with Label and CellEdges it is the finite state set for dijkstra.Distances.
func (gg *GridGraph) Cells() []Cell {
	out := make([]Cell, 0, gg.Width*gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Passable(x, y) {
				out = append(out, Cell{X: x, Y: y, Value: gg.CellValues[y][x]})
			}
		}
	}

	return out
}

// Label returns the row-major index of c.
func (gg *GridGraph) Label(c Cell) int {
	return gg.Index(c.X, c.Y)
}

// CellEdges lists the passable neighbors of c, addressed by label.
// The cost of an edge is the value of the cell it enters.
func (gg *GridGraph) CellEdges(c Cell) []dijkstra.LabelEdge[int, int64] {
	var out []dijkstra.LabelEdge[int, int64]
	for _, d := range gg.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !gg.Passable(nx, ny) {
			continue
		}
		out = append(out, dijkstra.LabelEdge[int, int64]{
			To:   gg.Index(nx, ny),
			Cost: int64(gg.CellValues[ny][nx]),
		})
	}

	return out
}

// Steps is an astar.Connections over row-major cell indices.
// Walls have no outgoing or incoming steps.
func (gg *GridGraph) Steps(idx int) []astar.Edge[int, int64] {
	x, y := gg.Coordinate(idx)
	if !gg.Passable(x, y) {
		return nil
	}
	var out []astar.Edge[int, int64]
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.Passable(nx, ny) {
			continue
		}
		out = append(out, astar.Edge[int, int64]{
			To:   gg.Index(nx, ny),
			Cost: int64(gg.CellValues[ny][nx]),
		})
	}

	return out
}

// Heuristic returns an admissible estimate towards goal for Steps:
// the grid distance (Manhattan under Conn4, Chebyshev under Conn8) times the
// cheapest passable cell value.
func (gg *GridGraph) Heuristic(goal int) astar.Heuristic[int, int64] {
	gx, gy := gg.Coordinate(goal)

	return func(idx int) int64 {
		x, y := gg.Coordinate(idx)
		return gg.gridDistance(x, y, gx, gy) * gg.minPass
	}
}

// gridDistance is the minimum number of moves between two cells, ignoring walls.
func (gg *GridGraph) gridDistance(x1, y1, x2, y2 int) int64 {
	dx, dy := abs(x1-x2), abs(y1-y2)
	if gg.Conn == Conn8 {
		return int64(max(dx, dy))
	}

	return int64(dx + dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
