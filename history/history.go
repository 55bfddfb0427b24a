// Package history persists a record of module invocations in SQLite.
// Operation output itself stays in flat text files under the workspace; the
// history store is host-side bookkeeping so past invocations can be listed
// and inspected.
package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	id          TEXT PRIMARY KEY,
	operation   TEXT NOT NULL,
	query       TEXT NOT NULL,
	status      TEXT NOT NULL,
	message     TEXT NOT NULL DEFAULT '',
	output_file TEXT NOT NULL DEFAULT '',
	error       TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL
);
`

// Invocation is one recorded call to Module.Process.
type Invocation struct {
	ID         string
	Operation  string
	Query      string
	Status     string
	Message    string
	OutputFile string
	Error      string
	CreatedAt  time.Time
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Operation string
	Status    string
	Limit     int
	Offset    int
}

// Store persists invocations in a SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) a SQLite database at dbPath and ensures the
// invocations table exists. The caller is responsible for calling Close.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1) // prevent SQLITE_BUSY
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// Record persists a new invocation and sets its ID and CreatedAt.
func (s *Store) Record(inv *Invocation) (string, error) {
	inv.ID = uuid.New().String()
	inv.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO invocations
			(id, operation, query, status, message, output_file, error, created_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		inv.ID, inv.Operation, inv.Query, inv.Status,
		inv.Message, inv.OutputFile, inv.Error, inv.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert invocation: %w", err)
	}
	return inv.ID, nil
}

// Get retrieves an invocation by ID.
func (s *Store) Get(id string) (*Invocation, error) {
	row := s.db.QueryRow(`
		SELECT id, operation, query, status, message, output_file, error, created_at
		FROM invocations WHERE id = ?`, id)
	inv, err := scanInvocation(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invocation %s not found", id)
	}
	return inv, err
}

// List returns invocations matching the filter, newest first.
func (s *Store) List(filter Filter) ([]*Invocation, error) {
	q := strings.Builder{}
	q.WriteString(`SELECT id, operation, query, status, message, output_file, error, created_at
		FROM invocations WHERE 1=1`)
	args := []any{}

	if filter.Operation != "" {
		q.WriteString(" AND operation=?")
		args = append(args, filter.Operation)
	}
	if filter.Status != "" {
		q.WriteString(" AND status=?")
		args = append(args, filter.Status)
	}
	q.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		q.WriteString(fmt.Sprintf(" LIMIT %d", filter.Limit))
		if filter.Offset > 0 {
			q.WriteString(fmt.Sprintf(" OFFSET %d", filter.Offset))
		}
	}

	rows, err := s.db.Query(q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list invocations: %w", err)
	}
	defer rows.Close()

	var invs []*Invocation
	for rows.Next() {
		inv, err := scanInvocation(rows)
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

// Delete removes an invocation by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM invocations WHERE id=?", id)
	if err != nil {
		return fmt.Errorf("delete invocation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("invocation %s not found", id)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanInvocation.
type scanner interface {
	Scan(dest ...any) error
}

func scanInvocation(s scanner) (*Invocation, error) {
	var inv Invocation
	err := s.Scan(
		&inv.ID, &inv.Operation, &inv.Query, &inv.Status,
		&inv.Message, &inv.OutputFile, &inv.Error, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
