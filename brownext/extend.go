// SPDX-License-Identifier: MIT
// Package: topogen/brownext
//
// extend.go — Generator and the cluster-replication engine.
//
// Determinism:
//   - Rounds run in order; members of a replicated set are processed in set
//     order; replica sets iterate ascending. Equal inputs give equal graphs.

package brownext

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/topogen/builder"
	"github.com/katalvlaran/topogen/core"
	"github.com/katalvlaran/topogen/gf"
)

// Generator extends polarity graphs of a fixed prime-power order q.
// A Generator is immutable and safe for concurrent use.
type Generator struct {
	q    int
	opts Options
}

// NewGenerator returns a Generator for order q. q must be a prime power.
func NewGenerator(q int, opts ...Option) (*Generator, error) {
	if !gf.IsPrimePower(q) {
		return nil, fmt.Errorf("%s: q=%d: %w", methodNewGenerator, q, gf.ErrNotPrimePower)
	}

	return &Generator{q: q, opts: resolve(opts)}, nil
}

// Q returns the field order.
func (gen *Generator) Q() int { return gen.q }

// Make builds ER_q and extends it with r0 / r1 rounds.
func (gen *Generator) Make(r0, r1 int) (*core.Graph, error) {
	base, err := builder.BuildGraph(nil, builder.Polarity(gen.q))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMake, err)
	}

	return gen.Extend(base, r0, r1)
}

// EffectiveRounds applies the overriding round rules: r1 > 0 forces r0 = 0
// and an even q caps r0 at 1.
func EffectiveRounds(q, r0, r1 int) (int, int) {
	if r1 > 0 {
		r0 = 0
	}
	if q%2 == 0 && r0 > 1 {
		r0 = 1
	}

	return r0, r1
}

// Extend returns a canonical copy of g with r0 rounds of cluster-0
// replication or r1 rounds of closed-neighbourhood replication. g is never
// mutated. Out-of-range rounds fail before any work is done.
//
// Complexity: O(V·q) layout + O((r0+r1)·q²·log(r0+r1)) replication
// + O(Σ deg·log deg) canonicalization.
func (gen *Generator) Extend(g *core.Graph, r0, r1 int) (*core.Graph, error) {
	q := gen.q
	if g == nil {
		return nil, faultf(methodExtend, "nil graph")
	}
	if r0 < 0 || r1 < 0 {
		return nil, faultf(methodExtend, "negative rounds r0=%d r1=%d", r0, r1)
	}
	if r1 > q {
		return nil, faultf(methodExtend, "r1=%d exceeds q=%d", r1, q)
	}
	if gen.opts.Strict {
		if r0 > 0 && r1 > 0 {
			return nil, fmt.Errorf("%s: r0=%d with r1=%d: %w", methodExtend, r0, r1, ErrConflictingRounds)
		}
		if q%2 == 0 && r0 > 1 {
			return nil, fmt.Errorf("%s: even q=%d allows one r0 round, got %d: %w", methodExtend, q, r0, ErrConflictingRounds)
		}
	}
	er0, er1 := EffectiveRounds(q, r0, r1)
	if er0 != r0 {
		gen.opts.Logger.Debug("brownext: r0 overridden", "q", q, "r0", r0, "effective", er0, "r1", r1)
	}

	work := g.Clone()
	work.Canonicalize()
	layout, err := NewLayout(work, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExtend, err)
	}
	if gen.opts.InvariantChecks {
		if err = layout.check(q); err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtend, err)
		}
	}

	x := newExtension(gen, work, layout)
	if err = x.replicateClusterZero(er0); err != nil {
		return nil, err
	}
	if err = x.replicateNeighbourhoods(er1); err != nil {
		return nil, err
	}
	if want := x.baseOrder + x.added; work.Order() != want {
		return nil, faultf(methodExtend, "order %d, want %d", work.Order(), want)
	}

	work.Canonicalize()
	if gen.opts.InvariantChecks {
		if err = x.check(er0, er1); err != nil {
			return nil, err
		}
	}

	return work, nil
}

// extension is the per-call bookkeeping. It is created fresh by Extend and
// discarded afterwards.
type extension struct {
	q         int
	opts      Options
	g         *core.Graph
	cluster0  []int
	clusterOf []int // grows with every replica
	centers   []int // grows with every new cluster
	replicas  map[int]*treeset.Set
	original  map[int]int
	baseOrder int
	added     int
}

func newExtension(gen *Generator, g *core.Graph, l *Layout) *extension {
	return &extension{
		q:         gen.q,
		opts:      gen.opts,
		g:         g,
		cluster0:  l.Clusters[0],
		clusterOf: append([]int(nil), l.ClusterOf...),
		centers:   append([]int(nil), l.Centers...),
		replicas:  make(map[int]*treeset.Set),
		original:  make(map[int]int),
		baseOrder: g.Order(),
	}
}

// newCluster appends k fresh vertices forming one new cluster and returns
// the first id.
func (x *extension) newCluster(k, center int) (int, error) {
	first, err := x.g.AddVertices(k)
	if err != nil {
		return 0, faultf(methodExtend, "allocate %d vertices: %v", k, err)
	}
	c := len(x.centers)
	x.centers = append(x.centers, center)
	for i := 0; i < k; i++ {
		x.clusterOf = append(x.clusterOf, c)
	}
	x.added += k

	return first, nil
}

// record registers rep as a replica of v.
func (x *extension) record(v, rep int) {
	set, ok := x.replicas[v]
	if !ok {
		set = treeset.NewWithIntComparator()
		x.replicas[v] = set
	}
	set.Add(rep)
	x.original[rep] = v
}

// link adds an undirected edge, reporting failures as construction faults.
func (x *extension) link(u, v int) error {
	if err := x.g.AddEdge(u, v); err != nil {
		return faultf(methodExtend, "link %d-%d: %v", u, v, err)
	}
	return nil
}

// settle enforces the replica-degree law and notifies the observer.
func (x *extension) settle(round int, mode Mode, v, rep int) error {
	dv, dr := x.g.Degree(v), x.g.Degree(rep)
	if dv != dr {
		return faultf(methodExtend, "%s round %d: replica %d of %d has degree %d, origin %d",
			mode, round, rep, v, dr, dv)
	}
	x.opts.OnReplica(ReplicaEvent{
		Round: round, Mode: mode, Origin: v, Replica: rep,
		OriginDegree: dv, ReplicaDegree: dr,
	})

	return nil
}

// replicateClusterZero runs mode A: every round mirrors each member of
// cluster 0 onto a new vertex. For odd q the replica is also tied to its
// origin.
func (x *extension) replicateClusterZero(rounds int) error {
	odd := x.q%2 != 0
	for r := 0; r < rounds; r++ {
		k := len(x.cluster0)
		first, err := x.newCluster(k, -1)
		if err != nil {
			return err
		}
		for i, v := range x.cluster0 {
			rep := first + i
			x.record(v, rep)
			if odd {
				if err = x.link(v, rep); err != nil {
					return err
				}
			}
			for _, w := range x.g.Neighbors(v) {
				if w == rep {
					continue
				}
				if x.clusterOf[w] == 0 {
					return faultf(methodExtend, "cluster 0 members %d and %d are adjacent", v, w)
				}
				if err = x.link(rep, w); err != nil {
					return err
				}
			}
			if err = x.settle(r, ModeClusterZero, v, rep); err != nil {
				return err
			}
		}
		x.opts.Logger.Debug("brownext: round done", "mode", ModeClusterZero, "round", r, "order", x.g.Order())
	}

	return nil
}

// replicateNeighbourhoods runs mode B: round r copies the closed
// neighbourhood of the r-th quadric, keeping the copy's internal edges
// inside the copy and cross-linking to the clusters of earlier replicas.
func (x *extension) replicateNeighbourhoods(rounds int) error {
	if rounds == 0 {
		return nil
	}
	var quads []int
	for v := 0; v < x.baseOrder; v++ {
		if x.g.Degree(v) == x.q {
			quads = append(quads, v)
		}
	}
	if len(quads) != x.q+1 {
		return faultf(methodExtend, "expected %d quadrics, found %d", x.q+1, len(quads))
	}
	sets := make([][]int, len(quads))
	for i, c := range quads {
		sets[i] = append(append([]int(nil), x.g.Neighbors(c)...), c)
	}

	for r := 0; r < rounds; r++ {
		set, quad := sets[r], quads[r]
		k := len(set)
		first, err := x.newCluster(k, -1)
		if err != nil {
			return err
		}
		toRep := make(map[int]int, k)
		for i, v := range set {
			toRep[v] = first + i
		}
		x.centers[len(x.centers)-1] = toRep[quad]

		for i, v := range set {
			rep := first + i
			x.record(v, rep)
			if err = x.link(v, rep); err != nil {
				return err
			}
			for _, it := range x.replicas[v].Values() {
				old := it.(int)
				if old == rep {
					continue
				}
				if err = x.link(rep, x.centers[x.clusterOf[old]]); err != nil {
					return err
				}
				if err = x.link(old, quad); err != nil {
					return err
				}
			}
			own := x.replicas[v]
			for _, w := range x.g.Neighbors(v) {
				if own.Contains(w) {
					continue
				}
				if wr, in := toRep[w]; in {
					if err = x.g.AddArc(rep, wr); err != nil {
						return faultf(methodExtend, "arc %d→%d: %v", rep, wr, err)
					}
					continue
				}
				if err = x.link(rep, w); err != nil {
					return err
				}
			}
			if err = x.settle(r, ModeNeighbourhood, v, rep); err != nil {
				return err
			}
		}
		x.opts.Logger.Debug("brownext: round done", "mode", ModeNeighbourhood, "round", r, "quadric", quad, "order", x.g.Order())
	}

	return nil
}

// check is the debug oracle run after canonicalization: symmetry, closed-form
// order, and origin bookkeeping.
// Complexity: O(V+E).
func (x *extension) check(r0, r1 int) error {
	if err := x.g.CheckSymmetric(); err != nil {
		return faultf(methodExtend, "result: %v", err)
	}
	if want := ExpectedOrder(x.q, r0, r1); x.g.Order() != want {
		return faultf(methodExtend, "result order %d, closed form %d", x.g.Order(), want)
	}
	if len(x.original) != x.added {
		return faultf(methodExtend, "%d replicas recorded, %d vertices added", len(x.original), x.added)
	}
	for rep, v := range x.original {
		if v < 0 || v >= x.baseOrder || rep < x.baseOrder {
			return faultf(methodExtend, "replica %d has origin %d outside the base graph", rep, v)
		}
	}

	return nil
}
