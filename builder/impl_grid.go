// SPDX-License-Identifier: MIT
// Package: optpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex (r,c) is b + r*cols + c (row-major).
//   - For each vertex in row-major order: the edge to its right neighbor,
//     then the edge to its lower neighbor. Directed grids point right and down.
//
// Complexity:
//   - Time: O(rows·cols).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols 4-connected lattice.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}

		b := g.AddVertices(rows * cols)
		at := func(r, c int) int { return b + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addWeighted(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addWeighted(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
