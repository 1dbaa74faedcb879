// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters over Graph.
// Policy:
//   - No mutation here; every getter is O(1) unless stated otherwise.

package core

// Order returns the number of vertices V.
func (g *Graph) Order() int { return len(g.adj) }

// HasVertex reports whether v is a valid id.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// Degree returns the number of entries in v's neighbour list
// (parallel entries counted), or 0 for an unknown id.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns v's neighbour list as a read-only view, or nil for an
// unknown id. Callers must not modify the returned slice; use Adjacency for
// an owned copy.
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Size returns the number of undirected edges, i.e. half the number of
// stored arcs. Exact only for symmetric graphs.
// Complexity: O(V).
func (g *Graph) Size() int {
	arcs := 0
	for _, nbrs := range g.adj {
		arcs += len(nbrs)
	}

	return arcs / 2
}

// Adjacency returns a deep copy of all neighbour lists.
// Complexity: O(V+E).
func (g *Graph) Adjacency() [][]int {
	out := make([][]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = append(make([]int, 0, len(nbrs)), nbrs...)
	}

	return out
}

// DegreeRange returns the minimum and maximum degree. Both are 0 for an
// empty graph.
// Complexity: O(V).
func (g *Graph) DegreeRange() (minDeg, maxDeg int) {
	if len(g.adj) == 0 {
		return 0, 0
	}
	minDeg, maxDeg = len(g.adj[0]), len(g.adj[0])
	for _, nbrs := range g.adj[1:] {
		if d := len(nbrs); d < minDeg {
			minDeg = d
		} else if d > maxDeg {
			maxDeg = d
		}
	}

	return minDeg, maxDeg
}

// Equal reports whether g and h have the same order and identical neighbour
// lists (order-sensitive; compare canonical graphs).
// Complexity: O(V+E).
func (g *Graph) Equal(h *Graph) bool {
	if g == nil || h == nil {
		return g == h
	}
	if len(g.adj) != len(h.adj) {
		return false
	}
	for v := range g.adj {
		if len(g.adj[v]) != len(h.adj[v]) {
			return false
		}
		for i, w := range g.adj[v] {
			if h.adj[v][i] != w {
				return false
			}
		}
	}

	return true
}
