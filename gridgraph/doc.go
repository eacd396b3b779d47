// Package gridgraph turns a 2D grid of integer cell costs into state spaces
// for the searches of optpath.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. A cell's value is the cost of
//     entering it; cells below PassThreshold are walls.
//   - Plain cell space: states are row-major cell indices. Cells/Label/CellEdges
//     feed dijkstra.Distances; Steps/Heuristic feed astar and allstars.
//   - Heading space: Walker states carry a heading and the length of the
//     current straight run, for movement rules such as "at most maxRun steps
//     straight, turn only after minRun steps". Walk, WalkerGoal and
//     WalkerHeuristic feed astar and allstars over this unbounded-looking but
//     lazily generated space.
//   - ConnectedComponents finds islands of passable cells; ExpandIsland finds
//     the fewest wall conversions joining two islands.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d log(W×H)), Memory: O(W×H).
//   - Heading space:       4×maxRun states per cell at most.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - ErrBadRun: invalid run-length limits for Walk.
package gridgraph
