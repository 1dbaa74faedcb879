// SPDX-License-Identifier: MIT
// Package: topogen/core
//
// types.go — Graph type, sentinel errors and constructors.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced an id outside 0..V-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop insertion.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAsymmetric indicates an arc u→v whose mirror v→u is missing.
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: negative vertex count")
)

// Graph is a dense undirected graph over vertex ids 0..Order()-1.
//
// adj[v] is the neighbour list of v. In canonical form every list is sorted
// and free of duplicates and of v itself.
type Graph struct {
	adj [][]int
}

// NewGraph creates a Graph with n isolated vertices. A negative n yields an
// empty graph; use AddVertices to surface ErrNegativeOrder instead.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{adj: make([][]int, n)}
}

// FromAdjacency deep-copies raw neighbour lists into a new Graph.
// Every id must lie in 0..len(lists)-1; lists need not be sorted, symmetric
// or duplicate-free (see Canonicalize).
//
// Complexity: O(V+E).
func FromAdjacency(lists [][]int) (*Graph, error) {
	n := len(lists)
	g := &Graph{adj: make([][]int, n)}
	for v, nbrs := range lists {
		for _, w := range nbrs {
			if w < 0 || w >= n {
				return nil, fmt.Errorf("FromAdjacency: %d→%d: %w", v, w, ErrVertexNotFound)
			}
		}
		g.adj[v] = append(make([]int, 0, len(nbrs)), nbrs...)
	}

	return g, nil
}
