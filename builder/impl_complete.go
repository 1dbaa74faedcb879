// SPDX-License-Identifier: MIT
// Package: topogen/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topogen/core"
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n*(n-1)/2)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				edges = append(edges, [2]int{u, v})
			}
		}

		return appendEdges(MethodComplete, g, n, edges)
	}
}
