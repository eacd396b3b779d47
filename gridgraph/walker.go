package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/optpath/astar"
)

// Heading is one of the four orthogonal directions.
type Heading uint8

// Headings in clockwise order; a 90° turn is ±1 modulo 4.
const (
	North Heading = iota
	East
	South
	West
)

var headingOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// String returns the compass letter of h.
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}

	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// Walker is a position in the heading space: a cell, the direction of the
// last move and how many consecutive moves were made in that direction.
// Run == 0 marks a walker that has not moved yet; it may leave in any direction.
type Walker struct {
	Index   int
	Heading Heading
	Run     int
}

// Start returns the unmoved walker at (x,y).
func (gg *GridGraph) Start(x, y int) Walker {
	return Walker{Index: gg.Index(x, y)}
}

// Walk returns the connections of the heading space: a walker moves one cell
// at a time, never reverses, keeps straight for at most maxRun moves, and may
// turn only after at least minRun moves in its current direction. Entering a
// cell costs its value; walls cannot be entered. Connectivity is always Conn4.
//
// Returns ErrBadRun unless 0 ≤ minRun ≤ maxRun and maxRun ≥ 1.
func (gg *GridGraph) Walk(minRun, maxRun int) (astar.Connections[Walker, int64], error) {
	if minRun < 0 || maxRun < 1 || minRun > maxRun {
		return nil, fmt.Errorf("%w: minRun=%d maxRun=%d", ErrBadRun, minRun, maxRun)
	}

	return func(w Walker) []astar.Edge[Walker, int64] {
		x, y := gg.Coordinate(w.Index)
		out := make([]astar.Edge[Walker, int64], 0, 3)
		for h := North; h <= West; h++ {
			run := 1
			if w.Run > 0 {
				switch {
				case h == w.Heading:
					if w.Run >= maxRun {
						continue
					}
					run = w.Run + 1
				case h == (w.Heading+2)%4:
					continue // no reversing
				case w.Run < minRun:
					continue // must keep straight
				}
			}
			nx, ny := x+headingOffsets[h][0], y+headingOffsets[h][1]
			if !gg.Passable(nx, ny) {
				continue
			}
			out = append(out, astar.Edge[Walker, int64]{
				To:   Walker{Index: gg.Index(nx, ny), Heading: h, Run: run},
				Cost: int64(gg.CellValues[ny][nx]),
			})
		}

		return out
	}, nil
}

// WalkerGoal accepts walkers standing on goal that may stop there,
// i.e. whose current run is at least minRun.
func (gg *GridGraph) WalkerGoal(goal, minRun int) astar.Goal[Walker] {
	return func(w Walker) bool {
		return w.Index == goal && w.Run >= minRun
	}
}

// WalkerHeuristic is the Manhattan distance to goal times the cheapest
// passable cell value; admissible for Walk.
func (gg *GridGraph) WalkerHeuristic(goal int) astar.Heuristic[Walker, int64] {
	gx, gy := gg.Coordinate(goal)

	return func(w Walker) int64 {
		x, y := gg.Coordinate(w.Index)
		return int64(abs(x-gx)+abs(y-gy)) * gg.minPass
	}
}
