// Package brownext partitions a Brown (polarity) graph ER_q into clusters and
// extends it by replicating clusters, reaching vertex counts between the
// q²+q+1 of successive prime powers while keeping the degree bounded and the
// diameter at 2 (3 when closed neighbourhoods are replicated).
//
// What
//
//   - Quadric classifier: IsQuadric / Quadrics separate the q+1 degree-q
//     vertices from the (q+1)-degree ones.
//   - Cluster layout: NewLayout builds the odd-q or even-q partition with
//     cluster centers and, for odd q, the intra-cluster partner map.
//   - Extension engine: Generator.Extend replicates cluster 0 for r0 rounds
//     (mode A) or the closed neighbourhood of the r-th quadric for r1 rounds
//     (mode B), then canonicalizes.
//   - Validator: Check / Validate test vertex count, connectivity, degree
//     bounds, diameter and average shortest-path length.
//
// Rounds
//
//	r1 > q is rejected before any work. By default r1 > 0 forces r0 = 0 and
//	an even q caps r0 at one round; WithStrictRounds rejects such tuples with
//	ErrConflictingRounds instead.
//
// Complexity (V = q²+q+1, R = r0 + r1)
//
//   - Layout:    O(V·q)
//   - Extension: O(R·q²·log R) plus the final canonicalization.
//   - Check:     O(V·(V+E)), one BFS per vertex.
//
// Usage
//
//	gen, err := brownext.NewGenerator(5)
//	g, err := gen.Make(2, 0)          // 43 vertices
//	ok := brownext.Validate(g, 5, 2, 0)
//
// Errors
//
//   - ErrConstructionFault  malformed base graph, r1 > q, negative rounds,
//     or a violated layout / replica-degree rule.
//   - ErrConflictingRounds  strict mode only.
//   - gf.ErrNotPrimePower   NewGenerator with an invalid q.
package brownext
