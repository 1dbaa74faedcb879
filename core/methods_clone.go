// File: methods_clone.go
// Role: deep copies and canonicalization.
// Determinism:
//   - Canonicalize sorts ascending; equal inputs give identical lists.

package core

import (
	"fmt"
	"slices"
)

// Clone returns a deep copy: no neighbour slice is shared with g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	return &Graph{adj: g.Adjacency()}
}

// Canonicalize sorts every neighbour list and removes duplicates and
// self-references in place. Applying it twice is a no-op.
//
// Complexity: O(Σ deg·log deg).
func (g *Graph) Canonicalize() {
	for v, nbrs := range g.adj {
		slices.Sort(nbrs)
		out := nbrs[:0]
		for _, w := range nbrs {
			if w == v || (len(out) > 0 && w == out[len(out)-1]) {
				continue
			}
			out = append(out, w)
		}
		g.adj[v] = out
	}
}

// IsCanonical reports whether every list is strictly increasing and free of
// self-references.
// Complexity: O(V+E).
func (g *Graph) IsCanonical() bool {
	for v, nbrs := range g.adj {
		for i, w := range nbrs {
			if w == v {
				return false
			}
			if i > 0 && nbrs[i-1] >= w {
				return false
			}
		}
	}

	return true
}

// CheckSymmetric verifies that every arc u→v has its mirror v→u.
// Returns ErrAsymmetric naming the first offending arc.
//
// Complexity: O(Σ deg(u)·deg(v)) worst case; O(E log Δ) when canonical.
func (g *Graph) CheckSymmetric() error {
	canonical := g.IsCanonical()
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if !g.HasVertex(v) {
				return fmt.Errorf("CheckSymmetric: %d→%d: %w", u, v, ErrVertexNotFound)
			}
			var found bool
			if canonical {
				_, found = slices.BinarySearch(g.adj[v], u)
			} else {
				found = g.HasEdge(v, u)
			}
			if !found {
				return fmt.Errorf("CheckSymmetric: %d→%d: %w", u, v, ErrAsymmetric)
			}
		}
	}

	return nil
}
