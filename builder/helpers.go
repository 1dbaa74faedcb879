// Package builder provides internal helpers shared by constructors.
package builder

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/topogen/core"
)

// appendEdges adds n fresh vertices to g and inserts the given local edges
// shifted by the old order. Edges are sorted first so that, for pairs with
// u < v, every neighbour list ends up ascending.
//
// Complexity: O(n + m log m).
func appendEdges(method string, g *core.Graph, n int, edges [][2]int) error {
	off, err := g.AddVertices(n)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	slices.SortFunc(edges, func(a, b [2]int) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	for _, e := range edges {
		if err = g.AddEdge(off+e[0], off+e[1]); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, off+e[0], off+e[1], err)
		}
	}

	return nil
}

// orderedPair returns (min, max).
func orderedPair(u, v int) [2]int {
	if u > v {
		return [2]int{v, u}
	}
	return [2]int{u, v}
}
