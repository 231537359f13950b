// Package storage handles entry persistence in SQLite and JSONL formats.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matsen/diary/internal/entry"
	_ "modernc.org/sqlite"
)

// ErrEntryNotFound is returned when an operation targets an ID that is not stored.
var ErrEntryNotFound = errors.New("entry not found")

// DB wraps a SQLite database connection holding the entries table.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a DB at open time.
type Option func(*DB)

// WithClock sets the clock used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(d *DB) {
		d.now = now
	}
}

// selectEntryFields contains the standard field list for SELECT queries.
const selectEntryFields = `id, content, timestamp, timestamp_nsec`

// OpenDB opens or creates a SQLite database at the given path.
// The parent directory and schema are created if missing, so calling it
// repeatedly on the same path is safe.
func OpenDB(path string, opts ...Option) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	d := &DB{db: db, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			timestamp_nsec INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON entries(timestamp, timestamp_nsec);
	`

	_, err := db.Exec(schema)
	return err
}

// Create stores a new entry stamped with the current time and returns it.
func (d *DB) Create(content string) (*entry.Entry, error) {
	return d.Insert(entry.Entry{Content: content})
}

// Insert stores an entry with its own timestamp, used when importing.
// A zero timestamp is replaced with the current time. Any ID on e is
// ignored; the store assigns a fresh one.
func (d *DB) Insert(e entry.Entry) (*entry.Entry, error) {
	if e.Timestamp.IsZero() {
		e.Timestamp = d.now()
	}

	sec, nsec := splitTimestamp(e.Timestamp)
	res, err := d.db.Exec(`INSERT INTO entries (content, timestamp, timestamp_nsec) VALUES (?, ?, ?)`,
		e.Content, sec, nsec)
	if err != nil {
		return nil, fmt.Errorf("inserting entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading entry id: %w", err)
	}

	return &entry.Entry{
		ID:        id,
		Content:   e.Content,
		Timestamp: time.Unix(sec, nsec),
	}, nil
}

// List returns entries newest first. A non-empty query keeps only entries
// whose content contains it; matching is ASCII case-insensitive, as with
// SQLite's LIKE, and wildcard characters in the query match literally.
func (d *DB) List(query string) ([]entry.Entry, error) {
	q := `SELECT ` + selectEntryFields + ` FROM entries`
	var args []any
	if query != "" {
		q += ` WHERE content LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(query)+"%")
	}
	q += ` ORDER BY timestamp DESC, timestamp_nsec DESC, id DESC`

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetByID retrieves an entry by its ID. Returns nil, nil if not found.
func (d *DB) GetByID(id int64) (*entry.Entry, error) {
	row := d.db.QueryRow(`SELECT `+selectEntryFields+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting entry %d: %w", id, err)
	}
	return e, nil
}

// Delete permanently removes the entry with the given ID.
func (d *DB) Delete(id int64) error {
	res, err := d.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("deleting entry %d: %w", id, ErrEntryNotFound)
	}
	return nil
}

// Count returns the total number of entries.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*entry.Entry, error) {
	var (
		e         entry.Entry
		sec, nsec int64
	)
	if err := s.Scan(&e.ID, &e.Content, &sec, &nsec); err != nil {
		return nil, err
	}
	e.Timestamp = time.Unix(sec, nsec)
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]entry.Entry, error) {
	var entries []entry.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// splitTimestamp returns whole Unix seconds and the nanosecond remainder.
// Unlike UnixNano, this covers every representable year.
func splitTimestamp(t time.Time) (int64, int64) {
	return t.Unix(), int64(t.Nanosecond())
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
