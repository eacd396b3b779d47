// SPDX-License-Identifier: MIT
// Package: optpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per unordered pair {i,j}, i<j, i asc then j asc.
//   - Directed:   one arc per ordered pair (i,j), i≠j, i asc then j asc.
//
// Complexity:
//   - Time: O(n²).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		b := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				if err := addWeighted(g, cfg, methodComplete, b+i, b+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
