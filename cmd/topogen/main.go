// Command topogen builds Brown-graph extensions and validates them.
//
// Single tuple:
//
//	topogen -q 5 -r0 2 -out ./topologies
//
// Random validation sweep (parameters from the config file):
//
//	topogen -sweep -config topogen.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/topogen/analysis"
	"github.com/katalvlaran/topogen/brownext"
	"github.com/katalvlaran/topogen/config"
	"github.com/katalvlaran/topogen/store"
	"github.com/katalvlaran/topogen/sweep"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2

	msgPassed    = "VALIDATION PASSED"
	msgNotPassed = "VALIDATION NOT PASSED"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type cliFlags struct {
	configPath string
	q, r0, r1  int
	sweep      bool
	out        string
	graph6     bool
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("topogen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.IntVar(&f.q, "q", 0, "prime-power field order of the base graph")
	fs.IntVar(&f.r0, "r0", 0, "rounds of cluster-0 replication")
	fs.IntVar(&f.r1, "r1", 0, "rounds of quadric-neighbourhood replication (≤ q)")
	fs.BoolVar(&f.sweep, "sweep", false, "run a random validation sweep")
	fs.StringVar(&f.out, "out", "", "directory for adjacency files (overrides output.dir)")
	fs.BoolVar(&f.graph6, "graph6", false, "print the graph6 encoding of the built graph")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.sweep == (f.q > 0) {
		return f, errors.New("exactly one of -q or -sweep is required")
	}

	return f, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "topogen:", err)
		}
		return exitUsage
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintln(stderr, "topogen:", err)
		return exitUsage
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "topogen:", err)
		return exitUsage
	}
	if f.out != "" {
		cfg.Output.Dir = f.out
	}
	level, _ := cfg.SlogLevel()
	logger := newLogger(stderr, level)

	if f.sweep {
		return runSweep(ctx, cfg, logger, stdout)
	}

	return runOne(cfg, f, logger, stdout)
}

func runOne(cfg *config.Config, f cliFlags, logger *slog.Logger, stdout io.Writer) int {
	opts := append(cfg.GeneratorOptions(), brownext.WithLogger(logger))
	gen, err := brownext.NewGenerator(f.q, opts...)
	if err != nil {
		logger.Error("invalid order", "q", f.q, "err", err)
		return exitFailed
	}
	g, err := gen.Make(f.r0, f.r1)
	if err != nil {
		logger.Error("construction failed", "q", f.q, "r0", f.r0, "r1", f.r1, "err", err)
		return exitFailed
	}

	s, err := analysis.Summarize(g)
	if err != nil {
		logger.Error("analysis failed", "err", err)
		return exitFailed
	}
	fmt.Fprintf(stdout, "q=%d r0=%d r1=%d vertices=%d edges=%d degree=[%d,%d] diameter=%d apl=%.4f\n",
		f.q, f.r0, f.r1, s.Order, s.Edges, s.MinDegree, s.MaxDegree, s.Diameter, s.AvgPathLength)
	if f.graph6 {
		fmt.Fprintln(stdout, store.EncodeGraph6(g))
	}

	if cfg.Output.Dir != "" {
		dir, err := store.NewDir(cfg.Output.Dir)
		if err != nil {
			logger.Error("output directory", "err", err)
			return exitFailed
		}
		path, err := dir.Save(f.q, f.r0, f.r1, g)
		if err != nil {
			logger.Error("write adjacency", "err", err)
			return exitFailed
		}
		logger.Info("adjacency written", "path", path)
	}

	if brownext.Validate(g, f.q, f.r0, f.r1, brownext.WithLogger(logger)) != 1 {
		fmt.Fprintln(stdout, msgNotPassed)
		return exitFailed
	}
	fmt.Fprintln(stdout, msgPassed)

	return exitOK
}

func runSweep(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) int {
	rng := rand.New(rand.NewSource(cfg.Sweep.Seed))
	params, err := sweep.RandomParams(rng, cfg.Sweep.QMax, cfg.Sweep.Tests)
	if err != nil {
		logger.Error("parameter generation failed", "err", err)
		return exitFailed
	}

	var openOpts []store.OpenOption
	if cfg.Output.Dir != "" {
		dir, err := store.NewDir(cfg.Output.Dir)
		if err != nil {
			logger.Error("output directory", "err", err)
			return exitFailed
		}
		openOpts = append(openOpts, store.WithGraphDir(dir))
	}
	db, err := store.Open(ctx, cfg.Store.Path, openOpts...)
	if err != nil {
		logger.Error("open results store", "path", cfg.Store.Path, "err", err)
		return exitFailed
	}
	defer db.Close()

	logger.Info("sweep started", "tuples", len(params), "qmax", cfg.Sweep.QMax, "workers", cfg.Sweep.Workers)
	rep, err := sweep.Run(ctx, params,
		sweep.WithWorkers(cfg.Sweep.Workers),
		sweep.WithSink(db),
		sweep.WithLogger(logger),
		sweep.WithGeneratorOptions(cfg.GeneratorOptions()...),
	)
	if err != nil {
		logger.Error("sweep aborted", "err", err)
		return exitFailed
	}

	for _, r := range rep.Results {
		if !r.Pass {
			fmt.Fprintf(stdout, "FAILED %s: %s\n", r.Params, r.Failure)
		}
	}
	fmt.Fprintf(stdout, "%d/%d tuples passed\n", rep.Passed, rep.Total)
	if !rep.OK() {
		fmt.Fprintln(stdout, msgNotPassed)
		return exitFailed
	}
	fmt.Fprintln(stdout, msgPassed)

	return exitOK
}
