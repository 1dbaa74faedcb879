// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  dense slice vertex → distance from start (-1 if unreached)
//   - Parent: dense slice vertex → predecessor in the BFS tree (-1 for the
//     start vertex and for unreached vertices)
//   - Supports an OnVisit hook that may abort the search with an error.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Diameter, eccentricity and average path length of an unweighted
//     topology are all-pairs BFS quantities (see package analysis).
//
// Determinism
//
//	Neighbors are enqueued in adjacency-list order; on a canonical graph
//	(sorted lists) the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - context errors on cancellation, and wrapped OnVisit errors.
package bfs
