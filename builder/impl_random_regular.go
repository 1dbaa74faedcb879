// SPDX-License-Identifier: MIT
// Package: topogen/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Undirected d-regular simple graph via stub-matching with bounded retries.
//   • Pairs stubs after a deterministic shuffle (per seed). A pairing with a
//     loop or a repeated pair is rejected before touching the graph.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; (n*d) even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts invalid pairings.
//
// Complexity:
//   • Per attempt ~O(n·d) time and O(n·d) temporary space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topogen/core"
)

// RandomRegular returns a Constructor that appends an undirected d-regular
// simple graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		stubCount := n * d
		if stubCount == 0 {
			return appendEdges(MethodRandomRegular, g, n, nil)
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			edges := make([][2]int, 0, stubCount/2)
			seen := make(map[[2]int]struct{}, stubCount/2)
			valid := true
			for i := 0; i < stubCount; i += 2 {
				if stubs[i] == stubs[i+1] {
					valid = false
					break
				}
				key := orderedPair(stubs[i], stubs[i+1])
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
				edges = append(edges, key)
			}
			if valid {
				return appendEdges(MethodRandomRegular, g, n, edges)
			}
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
