// Package eventlog keeps an append-only SQLite audit trail of engine
// activity. The JSON snapshot stays the source of truth for selection
// state; the log exists for the stats screen and for after-the-fact
// inspection, and a log failure never blocks a command.
package eventlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const timeLayout = time.RFC3339Nano

const (
	ActionAdded    = "added"
	ActionWatched  = "watched"
	ActionUndone   = "undone"
	ActionRecovery = "recovery"
)

var ErrInvalidEvent = errors.New("eventlog: invalid event")

type Event struct {
	ID         int64
	Show       string
	Action     string
	Detail     string
	OccurredAt time.Time
}

func (e Event) validate() error {
	if strings.TrimSpace(e.Action) == "" {
		return fmt.Errorf("%w: action is required", ErrInvalidEvent)
	}
	switch e.Action {
	case ActionAdded, ActionWatched, ActionUndone, ActionRecovery:
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidEvent, e.Action)
	}
	if e.Action != ActionRecovery && strings.TrimSpace(e.Show) == "" {
		return fmt.Errorf("%w: show is required for %s", ErrInvalidEvent, e.Action)
	}
	return nil
}

type Log struct {
	db *sql.DB
}

func NewLog(db *sql.DB) (*Log, error) {
	if db == nil {
		return nil, errors.New("eventlog: nil db")
	}
	return &Log{db: db}, nil
}

// Open opens (or creates) the event log database at path and brings the
// schema up to date.
func Open(path string) (*Log, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create event log dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	log, err := NewLog(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return log, nil
}

func (l *Log) Close() error {
	return l.db.Close()
}

// Append writes one event. A zero OccurredAt is stamped with the current
// time.
func (l *Log) Append(ctx context.Context, in Event) error {
	if err := in.validate(); err != nil {
		return err
	}
	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO events (show, action, detail, occurred_at)
		VALUES (?, ?, ?, ?)`,
		in.Show, in.Action, in.Detail, occurred.UTC().Format(timeLayout),
	)
	return err
}

// Recent returns up to limit events, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, show, action, detail, occurred_at
		FROM events
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Event, 0, limit)
	for rows.Next() {
		var ev Event
		var occurredRaw string
		if scanErr := rows.Scan(&ev.ID, &ev.Show, &ev.Action, &ev.Detail, &occurredRaw); scanErr != nil {
			return nil, scanErr
		}
		occurred, parseErr := time.Parse(timeLayout, occurredRaw)
		if parseErr != nil {
			return nil, fmt.Errorf("parse occurred_at %q: %w", occurredRaw, parseErr)
		}
		ev.OccurredAt = occurred
		out = append(out, ev)
	}
	return out, rows.Err()
}

// CountByAction returns how many events exist per action tag.
func (l *Log) CountByAction(ctx context.Context) (map[string]int, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT action, COUNT(*)
		FROM events
		GROUP BY action`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var action string
		var count int
		if scanErr := rows.Scan(&action, &count); scanErr != nil {
			return nil, scanErr
		}
		out[action] = count
	}
	return out, rows.Err()
}
