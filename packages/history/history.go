// Package history records request executions in a SQLite database.
//
// Only metadata is stored: names, outcome, size and a SHA-256 digest of the
// resolved text. Resolved requests often carry credentials, so the text
// itself never reaches the database.
package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS executions (
	id          TEXT PRIMARY KEY,
	request     TEXT NOT NULL,
	environment TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	bytes       INTEGER NOT NULL DEFAULT 0,
	digest      TEXT NOT NULL DEFAULT '',
	duration_us INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS executions_created_at ON executions (created_at);
CREATE INDEX IF NOT EXISTS executions_request ON executions (request);
`

type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Entry is one recorded execution
type Entry struct {
	ID          string
	Request     string
	Environment string
	Status      Status
	Error       string
	Bytes       int
	Digest      string
	Duration    time.Duration
	CreatedAt   time.Time
}

// NewEntry builds an entry from the outcome of an execution.
func NewEntry(requestName, envName, resolved string, err error, took time.Duration) Entry {
	e := Entry{
		Request:     requestName,
		Environment: envName,
		Status:      StatusOK,
		Duration:    took,
	}
	if err != nil {
		e.Status = StatusError
		e.Error = err.Error()
		return e
	}
	sum := sha256.Sum256([]byte(resolved))
	e.Bytes = len(resolved)
	e.Digest = hex.EncodeToString(sum[:])
	return e
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Request     string
	Environment string
	Limit       int
}

// Store is an open history database
type Store struct {
	db           *sql.DB
	path         string
	queryTimeout time.Duration
	now          func() time.Time
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return &Store{
		db:           db,
		path:         path,
		queryTimeout: 30 * time.Second,
		now:          time.Now,
	}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores e, assigning an ID and timestamp when missing.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO executions (id, request, environment, status, error, bytes, digest, duration_us, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Request, e.Environment, string(e.Status), e.Error, e.Bytes, e.Digest,
		e.Duration.Microseconds(), e.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("recording execution: %w", err)
	}
	return e, nil
}

// List returns entries newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := `SELECT id, request, environment, status, error, bytes, digest, duration_us, created_at
		FROM executions WHERE 1 = 1`
	var args []any
	if f.Request != "" {
		query += " AND request = ?"
		args = append(args, f.Request)
	}
	if f.Environment != "" {
		query += " AND environment = ?"
		args = append(args, f.Environment)
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			status     string
			durationUs int64
		)
		if err := rows.Scan(&e.ID, &e.Request, &e.Environment, &status, &e.Error,
			&e.Bytes, &e.Digest, &durationUs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		e.Status = Status(status)
		e.Duration = time.Duration(durationUs) * time.Microsecond
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM executions`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
