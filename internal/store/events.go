package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ReviewEvent records one graded review for the history/stats views.
// The scheduling core never reads these back; they are append-only.
type ReviewEvent struct {
	SessionID string
	ItemID    string
	Quality   int
	Correct   bool
	At        time.Time
}

// EventLog provides append and aggregate access to review events.
type EventLog struct {
	db *sql.DB
}

// Append stores a review event.
func (l *EventLog) Append(ctx context.Context, ev ReviewEvent) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO review_events (session_id, item_id, quality, correct, at) VALUES (?, ?, ?, ?, ?)`,
		ev.SessionID, ev.ItemID, ev.Quality, boolToInt(ev.Correct), ev.At.Unix(),
	)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

// CountSince returns the number of reviews recorded at or after t.
func (l *EventLog) CountSince(ctx context.Context, t time.Time) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM review_events WHERE at >= ?`, t.Unix(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count review events: %w", err)
	}
	return n, nil
}

// SessionCount returns the number of distinct study sessions on record.
func (l *EventLog) SessionCount(ctx context.Context) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT session_id) FROM review_events`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
