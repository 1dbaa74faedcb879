// Package core provides the dense, undirected adjacency-list Graph shared by
// every topogen package.
//
// The Graph G = (V,E) uses dense vertex ids 0..V-1. Each vertex owns an
// ordered slice of neighbour ids; an undirected edge {u,v} is stored as the
// two arcs u→v and v→u.
//
// Working form vs. canonical form
//
//   - While a topology is being constructed, a Graph may hold parallel
//     entries (the same neighbour twice). Construction code relies on this:
//     degree bookkeeping during replication counts entries, not distinct
//     neighbours.
//   - Canonicalize() sorts every list and drops duplicates and
//     self-references. It is idempotent; IsCanonical() reports the state.
//   - Self-loops are never inserted by AddEdge/AddArc (ErrLoopNotAllowed),
//     but FromAdjacency accepts raw lists that Canonicalize will clean.
//
// Why dense ids?
//
//   - Algebraic constructions index points 0..V-1 directly; vertex→cluster
//     and cluster→center maps become plain slices instead of hash maps.
//   - BFS state (depth, parent) is a slice, not a map.
//
// Core Methods:
//
//	NewGraph(n) *Graph                     // O(n)
//	FromAdjacency(lists) (*Graph, error)   // O(V+E), deep copy
//	AddVertex() int / AddVertices(k) int   // O(1) amortised
//	AddEdge(u,v) / AddArc(u,v) error       // O(1) amortised
//	HasEdge(u,v) bool                      // O(deg u)
//	Neighbors(v) []int                     // O(1), read-only view
//	Clone() *Graph                         // O(V+E)
//	Canonicalize() / IsCanonical()         // O(E log Δ) / O(E)
//	CheckSymmetric() error                 // O(E·Δ)
//	DegreeRange() (min,max int)            // O(V)
//
// Concurrency:
//
//	A Graph is owned by one goroutine while it is mutated. Concurrent readers
//	of an unchanging Graph are safe. Independent constructions never share
//	a Graph: Clone() before handing a topology to another owner.
//
// Errors:
//
//	ErrVertexNotFound  - id outside 0..V-1.
//	ErrLoopNotAllowed  - AddEdge/AddArc with u == v.
//	ErrAsymmetric      - CheckSymmetric found u→v without v→u.
//	ErrNegativeOrder   - NewGraph/AddVertices with a negative count.
package core
