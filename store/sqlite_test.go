package store_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topogen/store"
	"github.com/katalvlaran/topogen/sweep"
)

func openDB(t *testing.T, opts ...store.OpenOption) *store.SQLite {
	t.Helper()
	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "results.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLite_RecordAndResults(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	in := []sweep.Result{
		{Params: sweep.Params{Q: 3}, Order: 13, Pass: true, Elapsed: time.Millisecond},
		{Params: sweep.Params{Q: 3, R1: 4}, Failure: "r1 exceeds q"},
	}
	for _, r := range in {
		require.NoError(t, db.Record(ctx, r))
	}

	rows, err := db.Results(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		assert.Equal(t, in[i], row.Result)
		assert.Empty(t, row.Path)
	}
	assert.Less(t, rows[0].ID, rows[1].ID)

	total, passed, err := db.Tally(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, passed)
}

func TestSQLite_EmptyTally(t *testing.T) {
	total, passed, err := openDB(t).Tally(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, passed)
}

func TestSQLite_ReopenKeepsRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "results.db")
	db, err := store.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Record(ctx, sweep.Result{Params: sweep.Params{Q: 2}, Order: 7, Pass: true}))
	require.NoError(t, db.Close())

	db, err = store.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	rows, err := db.Results(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].Order)
}

func TestSQLite_SweepSinkWithGraphs(t *testing.T) {
	ctx := context.Background()
	dir, err := store.NewDir(t.TempDir())
	require.NoError(t, err)
	db := openDB(t, store.WithGraphDir(dir))

	params := []sweep.Params{{Q: 3}, {Q: 4, R0: 1}, {Q: 3, R1: 9}}
	rep, err := sweep.Run(ctx, params, sweep.WithSink(db), sweep.WithWorkers(1),
		sweep.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Passed)

	rows, err := db.Results(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	byParams := make(map[sweep.Params]store.Row)
	for _, r := range rows {
		byParams[r.Params] = r
	}

	ok := byParams[sweep.Params{Q: 4, R0: 1}]
	assert.True(t, ok.Pass)
	assert.Equal(t, filepath.Join(dir.Path(), "BrownExt.4.1.0.adj.txt"), ok.Path)
	_, err = os.Stat(ok.Path)
	require.NoError(t, err)

	g, err := dir.Load(4, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 22, g.Order())

	fromG6, err := store.DecodeGraph6(ok.Graph6)
	require.NoError(t, err)
	assert.True(t, g.Equal(fromG6))

	bad := byParams[sweep.Params{Q: 3, R1: 9}]
	assert.False(t, bad.Pass)
	assert.Empty(t, bad.Path)
	assert.Empty(t, bad.Graph6)
}

func TestDir_LoadMissing(t *testing.T) {
	dir, err := store.NewDir(t.TempDir())
	require.NoError(t, err)
	_, err = dir.Load(3, 0, 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSQLite_Graph6WithoutDir(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	_, err := sweep.Run(ctx, []sweep.Params{{Q: 2}}, sweep.WithSink(db),
		sweep.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	rows, err := db.Results(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Path)
	g, err := store.DecodeGraph6(rows[0].Graph6)
	require.NoError(t, err)
	assert.Equal(t, 7, g.Order())
	assert.Equal(t, 9, g.Size())
}
