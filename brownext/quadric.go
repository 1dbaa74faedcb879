// SPDX-License-Identifier: MIT
// Package: topogen/brownext
//
// quadric.go — quadric classifier.

package brownext

import (
	"fmt"

	"github.com/katalvlaran/topogen/core"
)

// IsQuadric reports whether a vertex with neighbour list adj is a quadric of
// ER_q: true for exactly q neighbours, false for more. Fewer than q
// neighbours means the base graph is malformed (ErrConstructionFault).
// Complexity: O(1).
func IsQuadric(adj []int, q int) (bool, error) {
	switch d := len(adj); {
	case d > q:
		return false, nil
	case d == q:
		return true, nil
	default:
		return false, faultf(methodIsQuadric, "degree %d < q=%d", d, q)
	}
}

// Quadrics lists the quadric vertices of g in id order.
// Complexity: O(V).
func Quadrics(g *core.Graph, q int) ([]int, error) {
	var out []int
	for v := 0; v < g.Order(); v++ {
		ok, err := IsQuadric(g.Neighbors(v), q)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", v, err)
		}
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}
