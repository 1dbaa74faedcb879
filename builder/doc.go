// Package builder provides deterministic graph constructors for topogen.
//
// What
//
//   - Constructor closures that append a topology to a *core.Graph.
//   - BuildGraph composes constructors as a disjoint union: each constructor
//     appends its vertices after the ones already present.
//   - Polarity(q) builds the Erdős–Rényi polarity graph ER_q of the projective
//     plane PG(2,q), the base graph of the Brown extension.
//   - Cycle, Complete and RandomRegular cover small fixtures.
//
// Why
//
//   - A single resolved builderConfig (functional options, no globals) keeps
//     every constructor reproducible for the same inputs and seed.
//
// Polarity graph
//
//	Points of PG(2,q) are enumerated as (0,0,1), (0,1,z), (1,y,z) for
//	y,z ∈ GF(q), giving q²+q+1 vertices. u ~ v iff u·v = 0 and u ≠ v.
//	Absolute points (u·u = 0, the "quadrics") have degree q; every other
//	vertex has degree q+1.
//
//	WithStarOrdering relabels vertices so that each quadric is followed by
//	its not-yet-labelled neighbours.
//
// Complexity
//
//   - Polarity: O(q⁴) dot products, O(q³) edges.
//   - Cycle / Complete: O(n) / O(n²).
//   - RandomRegular: O(n·d) per attempt, bounded attempts.
//
// Errors
//
//   - ErrTooFewVertices   parameter below the constructor minimum.
//   - ErrNotPrimePower    Polarity order is not a prime power.
//   - ErrNeedRandSource   stochastic constructor without WithSeed/WithRand.
//   - ErrConstructFailed  nil constructor, or retries exhausted.
package builder
