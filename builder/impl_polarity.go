// SPDX-License-Identifier: MIT
// Package: topogen/builder
//
// impl_polarity.go — implementation of Polarity(q) constructor.
//
// Contract:
//   • q ≥ 2 (else ErrTooFewVertices) and q a prime power (else ErrNotPrimePower).
//   • Appends q²+q+1 vertices, one per normalised point of PG(2,q).
//   • u ~ v iff u·v = 0 over GF(q) and u ≠ v; absolute points get no loop.
//   • Without star ordering every appended neighbour list is ascending.
//
// Complexity:
//   • Time: O(q⁴) dot products; O(q³) edges.
//   • Space: O(q²) points + O(q³) edge buffer.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topogen/core"
	"github.com/katalvlaran/topogen/gf"
)

// Polarity returns a Constructor that appends the polarity graph ER_q.
func Polarity(q int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if q < MinPolarityOrder {
			return fmt.Errorf("%s: q=%d < min=%d: %w", MethodPolarity, q, MinPolarityOrder, ErrTooFewVertices)
		}
		f, err := gf.New(q)
		if err != nil {
			return fmt.Errorf("%s: q=%d: %w", MethodPolarity, q, err)
		}

		pts := ProjectivePoints(f)
		n := len(pts)
		var edges [][2]int
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if f.Dot(pts[u], pts[v]) == 0 {
					edges = append(edges, [2]int{u, v})
				}
			}
		}

		if cfg.starOrdering {
			label := starLabels(n, edges, func(v int) bool { return f.Dot(pts[v], pts[v]) == 0 })
			for i, e := range edges {
				edges[i] = orderedPair(label[e[0]], label[e[1]])
			}
		}

		return appendEdges(MethodPolarity, g, n, edges)
	}
}

// ProjectivePoints lists the q²+q+1 normalised points of PG(2,q) in
// enumeration order: (0,0,1), then (0,1,z), then (1,y,z), z and y ascending.
// Complexity: O(q²).
func ProjectivePoints(f *gf.Field) [][]int {
	q := f.Order()
	pts := make([][]int, 0, q*q+q+1)
	pts = append(pts, []int{0, 0, 1})
	for z := 0; z < q; z++ {
		pts = append(pts, []int{0, 1, z})
	}
	for y := 0; y < q; y++ {
		for z := 0; z < q; z++ {
			pts = append(pts, []int{1, y, z})
		}
	}

	return pts
}

// starLabels computes old id → new id: every absolute vertex in id order
// receives the next free label, followed by its unlabelled neighbours in id
// order; remaining vertices are labelled last in id order.
// Complexity: O(n + m).
func starLabels(n int, edges [][2]int, absolute func(int) bool) []int {
	nbrs := make([][]int, n)
	for _, e := range edges {
		nbrs[e[0]] = append(nbrs[e[0]], e[1])
		nbrs[e[1]] = append(nbrs[e[1]], e[0])
	}

	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	next := 0
	assign := func(v int) {
		if label[v] < 0 {
			label[v] = next
			next++
		}
	}
	for v := 0; v < n; v++ {
		if !absolute(v) || label[v] >= 0 {
			continue
		}
		assign(v)
		for _, w := range nbrs[v] {
			assign(w)
		}
	}
	for v := 0; v < n; v++ {
		assign(v)
	}

	return label
}
