// Package ledger records contract attempts in a SQLite database so repeated
// runs can be audited and summarized.
package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/bitrunner/contracts"
)

// ErrClosed is returned when the ledger is used after Close.
var ErrClosed = errors.New("ledger: closed")

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	host       TEXT    NOT NULL,
	file       TEXT    NOT NULL,
	type       TEXT    NOT NULL,
	status     TEXT    NOT NULL,
	answer     TEXT    NOT NULL DEFAULT '',
	reward     TEXT    NOT NULL DEFAULT '',
	remaining  INTEGER NOT NULL DEFAULT 0,
	error      TEXT    NOT NULL DEFAULT '',
	created_at TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attempts_type ON attempts(type);
`

// Entry is one stored attempt.
type Entry struct {
	ID        int64
	Host      string
	File      string
	Type      string
	Status    string
	Answer    string
	Reward    string
	Remaining int
	Error     string
	CreatedAt time.Time
}

// TypeSummary aggregates outcomes for one puzzle type. Attempts counts only
// answers submitted to the host (solved or failed); Skipped counts instances
// with no solver or an invalid payload.
type TypeSummary struct {
	Type     string
	Attempts int
	Solved   int
	Skipped  int
}

// Ledger is a SQLite-backed contracts.Recorder.
type Ledger struct {
	db  *sql.DB
	now func() time.Time
}

var _ contracts.Recorder = (*Ledger)(nil)

// Open opens or creates the ledger at path. Use ":memory:" for a private
// in-memory database.
func Open(path string) (*Ledger, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("ledger: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: migrate: %w", err)
	}
	return &Ledger{db: db, now: time.Now}, nil
}

// Close releases the database.
func (l *Ledger) Close() error {
	if l.db == nil {
		return ErrClosed
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// Record implements contracts.Recorder.
func (l *Ledger) Record(ctx context.Context, o contracts.Outcome) error {
	if l.db == nil {
		return ErrClosed
	}
	var answer, errText string
	if o.Answer != nil {
		b, err := json.Marshal(o.Answer)
		if err != nil {
			return fmt.Errorf("ledger: encode answer: %w", err)
		}
		answer = string(b)
	}
	if o.Err != nil {
		errText = o.Err.Error()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO attempts (host, file, type, status, answer, reward, remaining, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.Instance.Host, o.Instance.File, o.Instance.Type, o.Status.String(),
		answer, o.Reward, o.Remaining, errText, l.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("ledger: insert: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if l.db == nil {
		return nil, ErrClosed
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, host, file, type, status, answer, reward, remaining, error, created_at
		 FROM attempts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("ledger: query: %w", err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Host, &e.File, &e.Type, &e.Status, &e.Answer,
			&e.Reward, &e.Remaining, &e.Error, &created); err != nil {
			return nil, fmt.Errorf("ledger: scan: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Summary returns per-type attempt and success counts sorted by type.
func (l *Ledger) Summary(ctx context.Context) ([]TypeSummary, error) {
	if l.db == nil {
		return nil, ErrClosed
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT type,
		        SUM(CASE WHEN status IN (?, ?) THEN 1 ELSE 0 END),
		        SUM(CASE WHEN status = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN status IN (?, ?) THEN 0 ELSE 1 END)
		 FROM attempts GROUP BY type ORDER BY type`,
		contracts.StatusSolved.String(), contracts.StatusFailed.String(),
		contracts.StatusSolved.String(),
		contracts.StatusSolved.String(), contracts.StatusFailed.String())
	if err != nil {
		return nil, fmt.Errorf("ledger: query: %w", err)
	}
	defer rows.Close()

	out := []TypeSummary{}
	for rows.Next() {
		var s TypeSummary
		if err := rows.Scan(&s.Type, &s.Attempts, &s.Solved, &s.Skipped); err != nil {
			return nil, fmt.Errorf("ledger: scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
