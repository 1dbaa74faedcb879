// SPDX-License-Identifier: MIT
// Package: topogen/brownext
//
// layout.go — cluster layout engine.
//
// Odd q:
//   - cluster 0 = the q+1 quadrics;
//   - the first quadric's q neighbours are the centers of clusters 1..q, each
//     filled with the center's non-quadric neighbours (q members);
//   - every non-center member of clusters 1..q has exactly one same-cluster
//     neighbour besides the center (Partner).
//
// Even q:
//   - each quadric is the center of a singleton cluster 1..q+1;
//   - cluster 0 = the one vertex adjacent to all q+1 quadrics;
//   - every cluster is filled with the unassigned neighbours of its center.

package brownext

import (
	"github.com/katalvlaran/topogen/core"
)

// Layout is a partition of a base graph into clusters. All slices are dense.
type Layout struct {
	// Clusters[c] lists the members of cluster c; a center comes first.
	Clusters [][]int
	// ClusterOf[v] is the cluster of vertex v.
	ClusterOf []int
	// Centers[c] is the center of cluster c, -1 for cluster 0.
	Centers []int
	// Partner[v] is v's same-cluster non-center neighbour (odd q, clusters
	// 1..q, non-centers); -1 otherwise.
	Partner []int
}

// NewLayout partitions g, a polarity graph of order q. g should be canonical.
// Every violated size or assignment rule is an ErrConstructionFault.
// Complexity: O(V·q).
func NewLayout(g *core.Graph, q int) (*Layout, error) {
	if g == nil {
		return nil, faultf(methodNewLayout, "nil graph")
	}
	quads, err := Quadrics(g, q)
	if err != nil {
		return nil, faultf(methodNewLayout, "classify: %v", err)
	}
	if len(quads) != q+1 {
		return nil, faultf(methodNewLayout, "expected %d quadrics, found %d", q+1, len(quads))
	}

	n := g.Order()
	l := &Layout{
		ClusterOf: make([]int, n),
		Partner:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		l.ClusterOf[v] = -1
		l.Partner[v] = -1
	}
	isQuad := make([]bool, n)
	for _, v := range quads {
		isQuad[v] = true
	}

	if q%2 == 0 {
		err = l.even(g, q, quads, isQuad)
	} else {
		err = l.odd(g, q, quads, isQuad)
	}
	if err != nil {
		return nil, err
	}
	for v, c := range l.ClusterOf {
		if c < 0 {
			return nil, faultf(methodNewLayout, "vertex %d left unassigned", v)
		}
	}

	return l, nil
}

// assign puts v into cluster c, rejecting a second assignment.
func (l *Layout) assign(v, c int) error {
	if l.ClusterOf[v] >= 0 {
		return faultf(methodNewLayout, "vertex %d already in cluster %d, wanted %d", v, l.ClusterOf[v], c)
	}
	l.ClusterOf[v] = c
	l.Clusters[c] = append(l.Clusters[c], v)

	return nil
}

func (l *Layout) odd(g *core.Graph, q int, quads []int, isQuad []bool) error {
	l.Clusters = make([][]int, 1, q+1)
	l.Centers = []int{-1}
	for _, v := range quads {
		if err := l.assign(v, 0); err != nil {
			return err
		}
	}

	ref := quads[0]
	for _, center := range g.Neighbors(ref) {
		c := len(l.Clusters)
		l.Clusters = append(l.Clusters, nil)
		l.Centers = append(l.Centers, center)
		if err := l.assign(center, c); err != nil {
			return err
		}
		for _, w := range g.Neighbors(center) {
			if isQuad[w] {
				continue
			}
			if err := l.assign(w, c); err != nil {
				return err
			}
		}
		if len(l.Clusters[c]) != q {
			return faultf(methodNewLayout, "cluster %d has %d members, want %d", c, len(l.Clusters[c]), q)
		}
	}
	if len(l.Clusters) != q+1 {
		return faultf(methodNewLayout, "reference quadric %d yields %d clusters, want %d", ref, len(l.Clusters), q+1)
	}

	for v, c := range l.ClusterOf {
		if c <= 0 || v == l.Centers[c] {
			continue
		}
		for _, w := range g.Neighbors(v) {
			if w == l.Centers[c] || l.ClusterOf[w] != c {
				continue
			}
			if l.Partner[v] >= 0 {
				return faultf(methodNewLayout, "vertex %d has partners %d and %d in cluster %d", v, l.Partner[v], w, c)
			}
			l.Partner[v] = w
		}
		if l.Partner[v] < 0 {
			return faultf(methodNewLayout, "vertex %d has no partner in cluster %d", v, c)
		}
	}

	return nil
}

func (l *Layout) even(g *core.Graph, q int, quads []int, isQuad []bool) error {
	l.Clusters = make([][]int, q+2)
	l.Centers = make([]int, q+2)
	l.Centers[0] = -1
	for i, v := range quads {
		l.Centers[i+1] = v
		if err := l.assign(v, i+1); err != nil {
			return err
		}
	}

	for v := 0; v < g.Order(); v++ {
		k := 0
		for _, w := range g.Neighbors(v) {
			if isQuad[w] {
				k++
			}
		}
		if k <= 1 {
			continue
		}
		if k != q+1 {
			return faultf(methodNewLayout, "vertex %d touches %d quadrics, want 1 or %d", v, k, q+1)
		}
		if err := l.assign(v, 0); err != nil {
			return err
		}
	}
	if len(l.Clusters[0]) != 1 {
		return faultf(methodNewLayout, "cluster 0 has %d members, want 1", len(l.Clusters[0]))
	}

	for c := 1; c < len(l.Clusters); c++ {
		for _, w := range g.Neighbors(l.Centers[c]) {
			if l.ClusterOf[w] < 0 {
				if err := l.assign(w, c); err != nil {
					return err
				}
			}
		}
		if len(l.Clusters[c]) != q {
			return faultf(methodNewLayout, "cluster %d has %d members, want %d", c, len(l.Clusters[c]), q)
		}
	}

	return nil
}

// check re-derives the partition properties from scratch: totality,
// membership consistency and cluster sizes.
// Complexity: O(V).
func (l *Layout) check(q int) error {
	seen := make([]bool, len(l.ClusterOf))
	for c, members := range l.Clusters {
		want := q
		if c == 0 {
			want = 1
			if q%2 != 0 {
				want = q + 1
			}
		}
		if len(members) != want {
			return faultf(methodNewLayout, "cluster %d has %d members, want %d", c, len(members), want)
		}
		for _, v := range members {
			if seen[v] || l.ClusterOf[v] != c {
				return faultf(methodNewLayout, "vertex %d inconsistently assigned to cluster %d", v, c)
			}
			seen[v] = true
		}
	}
	for v, ok := range seen {
		if !ok {
			return faultf(methodNewLayout, "vertex %d missing from every cluster", v)
		}
	}

	return nil
}
