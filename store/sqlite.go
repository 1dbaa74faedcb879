package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/topogen/core"
	"github.com/katalvlaran/topogen/sweep"
)

// Row is one stored sweep result.
type Row struct {
	ID int64
	sweep.Result
	Path      string
	Graph6    string
	CreatedAt time.Time
}

// SQLite records sweep results in a SQLite database.
type SQLite struct {
	db  *sql.DB
	dir *Dir
}

// OpenOption configures Open.
type OpenOption func(*SQLite)

// WithGraphDir makes StoreGraph write adjacency files into d.
func WithGraphDir(d *Dir) OpenOption {
	return func(s *SQLite) { s.dir = d }
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(ctx context.Context, path string, opts ...OpenOption) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer; sweep.Run serializes Record calls anyway
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	for _, opt := range opts {
		opt(s)
	}
	if err = s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *SQLite) migrate(ctx context.Context) error {
	schema := `
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		q INTEGER NOT NULL,
		r0 INTEGER NOT NULL,
		r1 INTEGER NOT NULL,
		vertices INTEGER NOT NULL,
		pass INTEGER NOT NULL,
		failure TEXT NOT NULL DEFAULT '',
		elapsed_ns INTEGER NOT NULL DEFAULT 0,
		path TEXT NOT NULL DEFAULT '',
		graph6 TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_results_params ON results(q, r0, r1);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }

// Record inserts one result.
func (s *SQLite) Record(ctx context.Context, r sweep.Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (q, r0, r1, vertices, pass, failure, elapsed_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.Q, r.R0, r.R1, r.Order, r.Pass, r.Failure, int64(r.Elapsed))
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}

	return nil
}

// StoreGraph attaches the graph6 encoding of g to the latest row for p. With
// WithGraphDir it also saves the adjacency file and records its path.
func (s *SQLite) StoreGraph(ctx context.Context, p sweep.Params, g *core.Graph) error {
	var path string
	if s.dir != nil {
		var err error
		if path, err = s.dir.Save(p.Q, p.R0, p.R1, g); err != nil {
			return err
		}
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE results SET path = ?, graph6 = ?
		WHERE id = (SELECT MAX(id) FROM results WHERE q = ? AND r0 = ? AND r1 = ?)
	`, path, EncodeGraph6(g), p.Q, p.R0, p.R1)
	if err != nil {
		return fmt.Errorf("failed to update graph: %w", err)
	}

	return nil
}

// Results loads every row in insertion order.
func (s *SQLite) Results(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, q, r0, r1, vertices, pass, failure, elapsed_ns, path, graph6, created_at
		FROM results ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			row     Row
			elapsed int64
			created any
		)
		if err := rows.Scan(&row.ID, &row.Q, &row.R0, &row.R1, &row.Order, &row.Pass,
			&row.Failure, &elapsed, &row.Path, &row.Graph6, &created); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		row.Elapsed = time.Duration(elapsed)
		row.CreatedAt = parseTimestamp(created)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}

	return out, nil
}

// Tally counts stored results.
func (s *SQLite) Tally(ctx context.Context) (total, passed int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(pass), 0) FROM results
	`).Scan(&total, &passed)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to tally results: %w", err)
	}

	return total, passed, nil
}

// parseTimestamp accepts the driver's time.Time or SQLite's text form.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		ts, _ := time.Parse(sqliteTime, t)
		return ts
	case []byte:
		ts, _ := time.Parse(sqliteTime, string(t))
		return ts
	default:
		return time.Time{}
	}
}

const sqliteTime = "2006-01-02 15:04:05"
