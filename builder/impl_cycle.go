// SPDX-License-Identifier: MIT
// Package: topogen/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i—(i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topogen/core"
)

// Cycle returns a Constructor that appends an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, orderedPair(i, (i+1)%n))
		}

		return appendEdges(MethodCycle, g, n, edges)
	}
}
