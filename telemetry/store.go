// Package telemetry persists session summaries and error reports to a
// local SQLite database for later inspection. The store is optional and
// nil-safe: a nil *Store accepts every call as a no-op, and nothing here
// runs on the frame path. Writes happen on Flush at teardown
package telemetry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/crystal-galaxy/fallback"
)

const schemaV1 = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id    TEXT PRIMARY KEY,
	started_at    INTEGER NOT NULL,
	ended_at      INTEGER NOT NULL DEFAULT 0,
	grade         TEXT NOT NULL DEFAULT '',
	score         INTEGER NOT NULL DEFAULT 0,
	geometry_tier TEXT NOT NULL DEFAULT '',
	perf_forced   INTEGER NOT NULL DEFAULT 0,
	bodies        INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS reports (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id       TEXT NOT NULL,
	kind             TEXT NOT NULL,
	severity         TEXT NOT NULL,
	message          TEXT NOT NULL DEFAULT '',
	fallback_applied INTEGER NOT NULL DEFAULT 0,
	created_at       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_session ON reports(session_id);
`

// Store is one session's telemetry sink
type Store struct {
	db      *sql.DB
	session string
	started time.Time
}

// Open creates or opens the telemetry database and starts a new session
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open telemetry database: %w", err)
	}
	// WAL allows concurrent reads but a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schemaV1); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate telemetry schema: %w", err)
	}

	return &Store{
		db:      db,
		session: uuid.NewString(),
		started: time.Now(),
	}, nil
}

// SessionID returns this session's key, empty for a nil store
func (s *Store) SessionID() string {
	if s == nil {
		return ""
	}
	return s.session
}

// Summary is the session row written at teardown
type Summary struct {
	Grade        string
	Score        int
	GeometryTier string
	PerfForced   bool
	Bodies       int
}

// Flush writes the session summary and the collected error reports in
// one transaction. No-op on a nil store
func (s *Store) Flush(ctx context.Context, sum Summary, reports []fallback.Report) error {
	if s == nil || s.db == nil {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("flush telemetry: %w", err)
	}
	defer tx.Rollback()

	const sessionQ = `INSERT OR REPLACE INTO sessions
(session_id, started_at, ended_at, grade, score, geometry_tier, perf_forced, bodies)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, sessionQ,
		s.session, s.started.Unix(), time.Now().Unix(),
		sum.Grade, sum.Score, sum.GeometryTier, boolInt(sum.PerfForced), sum.Bodies)
	if err != nil {
		return fmt.Errorf("write session row: %w", err)
	}

	const reportQ = `INSERT INTO reports
(session_id, kind, severity, message, fallback_applied, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	for _, r := range reports {
		_, err = tx.ExecContext(ctx, reportQ,
			s.session, string(r.Kind), r.Severity.String(), r.Message,
			boolInt(r.FallbackApplied), r.Timestamp.Unix())
		if err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}

	return tx.Commit()
}

// Close releases the database handle. No-op on a nil store
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
