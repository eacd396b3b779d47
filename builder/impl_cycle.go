// SPDX-License-Identifier: MIT
// Package: optpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path edges i -> i+1 in increasing order, then the closing edge (n-1) -> 0.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		b := g.AddVertices(n)
		for i := 0; i < n; i++ {
			if err := addWeighted(g, cfg, methodCycle, b+i, b+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
