package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/topogen/brownext"
	"github.com/katalvlaran/topogen/core"
)

// Result is the outcome of one tuple.
type Result struct {
	Params
	Order   int
	Pass    bool
	Failure string // empty on success
	Elapsed time.Duration
}

// Sink receives every Result. Record calls are serialized by Run.
type Sink interface {
	Record(ctx context.Context, r Result) error
}

// GraphSink additionally receives every successfully built graph.
type GraphSink interface {
	Sink
	StoreGraph(ctx context.Context, p Params, g *core.Graph) error
}

// Report tallies a sweep. Results keep the input order.
type Report struct {
	Total   int
	Passed  int
	Failed  int
	Results []Result
}

// OK reports whether every tuple passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	sink    Sink
	logger  *slog.Logger
	genOpts []brownext.Option
}

// WithWorkers bounds concurrent tuple evaluation. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sweep: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithSink records every Result into s.
func WithSink(s Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithLogger sets the logger used for per-tuple records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithGeneratorOptions forwards options to every brownext.Generator.
func WithGeneratorOptions(opts ...brownext.Option) Option {
	return func(o *options) { o.genOpts = append(o.genOpts, opts...) }
}

// Run evaluates params concurrently and returns the tally.
func Run(ctx context.Context, params []Params, opts ...Option) (Report, error) {
	o := options{workers: 4, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]Result, len(params))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, p := range params {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, graph := Evaluate(p, o.genOpts...)
			results[i] = res
			if res.Pass {
				o.logger.Info("sweep: tuple passed", "params", p.String(), "order", res.Order, "elapsed", res.Elapsed)
			} else {
				o.logger.Warn("sweep: tuple failed", "params", p.String(), "failure", res.Failure)
			}
			if o.sink == nil {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			if err := o.sink.Record(gctx, res); err != nil {
				return fmt.Errorf("sweep: record %s: %w", p, err)
			}
			if gs, ok := o.sink.(GraphSink); ok && graph != nil {
				if err := gs.StoreGraph(gctx, p, graph); err != nil {
					return fmt.Errorf("sweep: store %s: %w", p, err)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{Total: len(results), Results: results}
	for _, r := range results {
		if r.Pass {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}

	return rep, nil
}

// Evaluate builds and validates one tuple. The graph is nil when
// construction failed.
func Evaluate(p Params, genOpts ...brownext.Option) (Result, *core.Graph) {
	start := time.Now()
	res := Result{Params: p}

	gen, err := brownext.NewGenerator(p.Q, genOpts...)
	if err != nil {
		res.Failure = err.Error()
		res.Elapsed = time.Since(start)
		return res, nil
	}
	g, err := gen.Make(p.R0, p.R1)
	if err != nil {
		res.Failure = err.Error()
		res.Elapsed = time.Since(start)
		return res, nil
	}
	res.Order = g.Order()
	if err = brownext.Check(g, p.Q, p.R0, p.R1); err != nil {
		res.Failure = err.Error()
	} else {
		res.Pass = true
	}
	res.Elapsed = time.Since(start)

	return res, g
}
