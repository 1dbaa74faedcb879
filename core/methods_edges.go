// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: vertex and edge insertion.
// Determinism:
//   - Arcs are appended in call order; no implicit sorting until Canonicalize.

package core

import "fmt"

const (
	methodAddVertices = "AddVertices"
	methodAddArc      = "AddArc"
	methodAddEdge     = "AddEdge"
)

// AddVertex appends one isolated vertex and returns its id.
// Complexity: O(1) amortised.
func (g *Graph) AddVertex() int {
	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddVertices appends k isolated vertices and returns the id of the first
// one (== Order() before the call). k == 0 is a no-op.
// Complexity: O(k) amortised.
func (g *Graph) AddVertices(k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%s: k=%d: %w", methodAddVertices, k, ErrNegativeOrder)
	}
	first := len(g.adj)
	for i := 0; i < k; i++ {
		g.adj = append(g.adj, nil)
	}

	return first, nil
}

// AddArc appends v to u's list only. Parallel entries are allowed.
// Complexity: O(1) amortised.
func (g *Graph) AddArc(u, v int) error {
	if err := g.checkPair(methodAddArc, u, v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], v)

	return nil
}

// AddEdge appends v to u's list and u to v's list. Parallel entries are
// allowed.
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkPair(methodAddEdge, u, v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// HasEdge reports whether v appears in u's list.
// Complexity: O(deg u).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) {
		return false
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// checkPair validates both endpoints and rejects loops.
func (g *Graph) checkPair(method string, u, v int) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%s: %d: %w", method, u, ErrVertexNotFound)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%s: %d: %w", method, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("%s: %d: %w", method, u, ErrLoopNotAllowed)
	}

	return nil
}
