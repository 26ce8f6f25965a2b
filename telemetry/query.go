package telemetry

import (
	"context"
	"fmt"
	"time"
)

// Session is one recorded run, newest-first from ListSessions
type Session struct {
	ID           string
	StartedAt    time.Time
	EndedAt      time.Time
	Grade        string
	Score        int
	GeometryTier string
	PerfForced   bool
	Bodies       int
}

// ReportRow is one persisted error report
type ReportRow struct {
	SessionID       string
	Kind            string
	Severity        string
	Message         string
	FallbackApplied bool
	CreatedAt       time.Time
}

// ListSessions returns up to limit sessions, newest first
func (s *Store) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}

	const q = `SELECT session_id, started_at, ended_at, grade, score, geometry_tier, perf_forced, bodies
FROM sessions ORDER BY started_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var (
			sess                   Session
			started, ended, forced int64
		)
		if err := rows.Scan(&sess.ID, &started, &ended, &sess.Grade, &sess.Score,
			&sess.GeometryTier, &forced, &sess.Bodies); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.StartedAt = time.Unix(started, 0)
		sess.EndedAt = time.Unix(ended, 0)
		sess.PerfForced = forced != 0
		out = append(out, sess)
	}
	return out, rows.Err()
}

// ListReports returns up to limit reports for a session, oldest first.
// An empty session id returns reports across all sessions, newest first
func (s *Store) ListReports(ctx context.Context, sessionID string, limit int) ([]ReportRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}

	q := `SELECT session_id, kind, severity, message, fallback_applied, created_at
FROM reports WHERE session_id = ? ORDER BY id ASC LIMIT ?`
	args := []any{sessionID, limit}
	if sessionID == "" {
		q = `SELECT session_id, kind, severity, message, fallback_applied, created_at
FROM reports ORDER BY id DESC LIMIT ?`
		args = []any{limit}
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []ReportRow
	for rows.Next() {
		var (
			r                ReportRow
			applied, created int64
		)
		if err := rows.Scan(&r.SessionID, &r.Kind, &r.Severity, &r.Message, &applied, &created); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		r.FallbackApplied = applied != 0
		r.CreatedAt = time.Unix(created, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}
