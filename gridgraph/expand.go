package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/optpath/astar"
)

// virtualSource is the state that fans out to every cell of the source component.
const virtualSource = -1

// ExpandIsland finds a minimum-conversion path of wall cells (value below
// PassThreshold) connecting any cell of component srcComp to any cell of
// component dstComp, as identified by ConnectedComponents(). Converting a
// wall cell costs 1; passing through passable cells is free.
// Returns the sequence of cell indices (row-major), from a srcComp cell to a
// dstComp cell inclusive, and the number of converted cells.
//
// Behavior:
//  1. Validate component indices.
//  2. Run astar.Search from a virtual source joined to every srcComp cell at cost 0,
//     with the zero heuristic, over Conn-connectivity steps costing 0 or 1.
//  3. Stop at the first dstComp cell popped.
//
// Complexity: O(W·H·d · log(W·H)), Memory: O(W·H).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	src := comps[srcComp]
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	conversions := func(u int) []astar.Edge[int, int64] {
		if u == virtualSource {
			out := make([]astar.Edge[int, int64], len(src))
			for k, i := range src {
				out[k] = astar.Edge[int, int64]{To: i, Cost: 0}
			}
			return out
		}
		ux, uy := gg.Coordinate(u)
		out := make([]astar.Edge[int, int64], 0, len(gg.neighborOffsets))
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			var step int64
			if !gg.Passable(vx, vy) {
				step = 1
			}
			out = append(out, astar.Edge[int, int64]{To: gg.Index(vx, vy), Cost: step})
		}
		return out
	}
	reached := func(u int) bool {
		_, ok := dstSet[u]
		return ok
	}

	total, states, err := astar.Search(virtualSource, conversions, astar.Zero[int, int64](), reached)
	if errors.Is(err, astar.ErrNoRoute) {
		return nil, 0, ErrNoPath
	}
	if err != nil {
		return nil, 0, fmt.Errorf("gridgraph: expand %d→%d: %w", srcComp, dstComp, err)
	}

	// Drop the virtual source.
	return states[1:], int(total), nil
}
