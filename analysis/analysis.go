package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/topogen/bfs"
	"github.com/katalvlaran/topogen/core"
)

// ErrGraphNil is returned when Summarize receives a nil graph.
var ErrGraphNil = errors.New("analysis: graph is nil")

// Summary holds the metrics of one graph.
type Summary struct {
	Order         int
	Edges         int
	Connected     bool
	Diameter      int     // -1 when disconnected
	AvgPathLength float64 // +Inf when disconnected, 0 for a single vertex
	MinDegree     int
	MaxDegree     int
}

// Option configures Summarize.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext makes Summarize cancellable between and during traversals.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Summarize computes the Summary of g. An empty graph is reported as
// disconnected.
func Summarize(g *core.Graph, opts ...Option) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	s := Summary{Order: n, Edges: g.Size(), Diameter: -1, AvgPathLength: math.Inf(1)}
	s.MinDegree, s.MaxDegree = g.DegreeRange()
	if n == 0 {
		return s, nil
	}

	var total int
	for v := 0; v < n; v++ {
		res, err := bfs.BFS(g, v, bfs.WithContext(o.ctx))
		if err != nil {
			return s, fmt.Errorf("Summarize: source %d: %w", v, err)
		}
		if res.Reached() != n {
			return s, nil // Connected stays false
		}
		if ecc := res.Eccentricity(); ecc > s.Diameter {
			s.Diameter = ecc
		}
		total += res.DistanceSum()
	}

	s.Connected = true
	if n == 1 {
		s.AvgPathLength = 0
	} else {
		s.AvgPathLength = float64(total) / float64(n*(n-1))
	}

	return s, nil
}
