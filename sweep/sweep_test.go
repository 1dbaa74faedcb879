package sweep_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topogen/brownext"
	"github.com/katalvlaran/topogen/core"
	"github.com/katalvlaran/topogen/gf"
	"github.com/katalvlaran/topogen/sweep"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type memSink struct {
	mu      sync.Mutex
	results []sweep.Result
	graphs  map[sweep.Params]int
}

func (m *memSink) Record(_ context.Context, r sweep.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

func (m *memSink) StoreGraph(_ context.Context, p sweep.Params, g *core.Graph) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.graphs == nil {
		m.graphs = make(map[sweep.Params]int)
	}
	m.graphs[p] = g.Order()
	return nil
}

type failingSink struct{}

func (failingSink) Record(context.Context, sweep.Result) error { return errors.New("disk full") }

func TestNearestPrimePower(t *testing.T) {
	cases := map[int]int{1: 2, 2: 2, 6: 5, 10: 9, 12: 11, 15: 16, 24: 23, 26: 25, 32: 32, 33: 32}
	for in, want := range cases {
		assert.Equal(t, want, sweep.NearestPrimePower(in), "x=%d", in)
	}
}

func TestRandomParams(t *testing.T) {
	params, err := sweep.RandomParams(rand.New(rand.NewSource(1)), 32, 20)
	require.NoError(t, err)
	require.Len(t, params, 60)
	for i := 0; i < len(params); i += 3 {
		base, a, b := params[i], params[i+1], params[i+2]
		assert.True(t, gf.IsPrimePower(base.Q))
		assert.Equal(t, sweep.Params{Q: base.Q}, base)
		assert.Equal(t, base.Q, a.Q)
		assert.Zero(t, a.R1)
		assert.GreaterOrEqual(t, a.R0, 1)
		assert.LessOrEqual(t, a.R0, 4)
		assert.Equal(t, base.Q, b.Q)
		assert.Zero(t, b.R0)
		assert.GreaterOrEqual(t, b.R1, 0)
		assert.LessOrEqual(t, b.R1, b.Q)
	}

	again, err := sweep.RandomParams(rand.New(rand.NewSource(1)), 32, 20)
	require.NoError(t, err)
	assert.Equal(t, params, again)
}

func TestRandomParams_Errors(t *testing.T) {
	_, err := sweep.RandomParams(nil, 32, 1)
	assert.ErrorIs(t, err, sweep.ErrNeedRand)
	_, err = sweep.RandomParams(rand.New(rand.NewSource(1)), 1, 1)
	assert.ErrorIs(t, err, sweep.ErrBadRange)
}

func TestRun_Tally(t *testing.T) {
	params := []sweep.Params{
		{Q: 3},
		{Q: 3, R0: 1},
		{Q: 4, R1: 1},
		{Q: 6},        // not a prime power
		{Q: 3, R1: 4}, // r1 > q
	}
	sink := &memSink{}
	rep, err := sweep.Run(context.Background(), params,
		sweep.WithWorkers(2), sweep.WithSink(sink), sweep.WithLogger(quiet))
	require.NoError(t, err)

	assert.Equal(t, 5, rep.Total)
	assert.Equal(t, 3, rep.Passed)
	assert.Equal(t, 2, rep.Failed)
	assert.False(t, rep.OK())
	require.Len(t, rep.Results, 5)
	assert.Equal(t, 13, rep.Results[0].Order)
	assert.Equal(t, 17, rep.Results[1].Order)
	assert.Equal(t, 26, rep.Results[2].Order)
	assert.Contains(t, rep.Results[3].Failure, "prime power")
	assert.Contains(t, rep.Results[4].Failure, "construction fault")
	for i, r := range rep.Results {
		assert.Equal(t, params[i], r.Params)
	}

	assert.Len(t, sink.results, 5)
	assert.Equal(t, map[sweep.Params]int{{Q: 3}: 13, {Q: 3, R0: 1}: 17, {Q: 4, R1: 1}: 26}, sink.graphs)
}

func TestRun_StrictGeneratorOptions(t *testing.T) {
	rep, err := sweep.Run(context.Background(), []sweep.Params{{Q: 4, R0: 2}},
		sweep.WithLogger(quiet), sweep.WithGeneratorOptions(brownext.WithStrictRounds()))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Failed)
	assert.Contains(t, rep.Results[0].Failure, "conflicting")
}

func TestRun_SinkErrorAborts(t *testing.T) {
	_, err := sweep.Run(context.Background(), []sweep.Params{{Q: 2}},
		sweep.WithSink(failingSink{}), sweep.WithLogger(quiet))
	assert.ErrorContains(t, err, "disk full")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sweep.Run(ctx, []sweep.Params{{Q: 2}, {Q: 3}}, sweep.WithLogger(quiet))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	rep, err := sweep.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Zero(t, rep.Total)
}

func TestWithWorkers_Panics(t *testing.T) {
	assert.Panics(t, func() { sweep.WithWorkers(0) })
}
