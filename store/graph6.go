package store

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/topogen/core"
)

// ErrBadGraph6 is returned when a graph6 string cannot be decoded.
var ErrBadGraph6 = errors.New("store: invalid graph6 string")

// EncodeGraph6 returns the graph6 encoding of g. Vertex v maps to graph6
// node v; parallel entries collapse to one edge.
// Complexity: O(V²) (the format is a packed upper triangle).
func EncodeGraph6(g *core.Graph) string {
	u := simple.NewUndirectedGraph()
	for v := 0; v < g.Order(); v++ {
		u.AddNode(simple.Node(v))
	}
	for v := 0; v < g.Order(); v++ {
		for _, w := range g.Neighbors(v) {
			if w > v {
				u.SetEdge(simple.Edge{F: simple.Node(v), T: simple.Node(w)})
			}
		}
	}

	return string(graph6.Encode(u))
}

// DecodeGraph6 parses a graph6 string into a canonical core.Graph.
func DecodeGraph6(s string) (*core.Graph, error) {
	enc := graph6.Graph(s)
	if s == "" || !graph6.IsValid(enc) {
		return nil, fmt.Errorf("DecodeGraph6: %q: %w", s, ErrBadGraph6)
	}
	n := enc.Nodes().Len()
	g := core.NewGraph(n)
	for v := 0; v < n; v++ {
		it := enc.From(int64(v))
		for it.Next() {
			w := int(it.Node().ID())
			if w <= v {
				continue
			}
			if err := g.AddEdge(v, w); err != nil {
				return nil, fmt.Errorf("DecodeGraph6: %w", err)
			}
		}
	}
	g.Canonicalize()

	return g, nil
}
