// SPDX-License-Identifier: MIT
// Package: optpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n vertices b..b+n-1 where b = g.Order() before the call.
//   - Emits edges (b+i-1) -> (b+i) for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		b := g.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := addWeighted(g, cfg, methodPath, b+i-1, b+i); err != nil {
				return err
			}
		}

		return nil
	}
}
