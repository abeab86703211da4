package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/jbweber/homelab/recordbook/internal/repository"
)

const (
	insertLineQuery = "INSERT INTO record_lines (kind, line) VALUES (?, ?)"
	selectLineQuery = "SELECT line FROM record_lines WHERE kind = ? ORDER BY id ASC"
	deleteKindQuery = "DELETE FROM record_lines WHERE kind = ?"
)

// Datastore wraps the SQLite database that holds record lines.
type Datastore struct {
	DB    *sql.DB
	stmts *StatementCache
}

// New wraps an already migrated database.
func New(db *sql.DB) *Datastore {
	return &Datastore{DB: db, stmts: NewStatementCache(db)}
}

// Close releases cached statements. The database itself is owned by the caller.
func (ds *Datastore) Close() error {
	return ds.stmts.Close()
}

// Lines returns a line store for one logical file, identified by kind.
func (ds *Datastore) Lines(kind string, mode Mode) (*SQLiteLines, error) {
	if strings.TrimSpace(kind) == "" {
		return nil, fmt.Errorf("record kind is not set: %w", repository.ErrInvalidArgument)
	}
	return &SQLiteLines{ds: ds, kind: kind, mode: mode}, nil
}

// SQLiteLines stores the lines of one kind as rows of record_lines.
type SQLiteLines struct {
	ds   *Datastore
	kind string
	mode Mode
}

// Kind returns the logical file name the lines are stored under
func (s *SQLiteLines) Kind() string {
	return s.kind
}

// AppendLines inserts lines in a single transaction. In ModeTruncate the
// kind's existing rows are deleted in the same transaction.
func (s *SQLiteLines) AppendLines(ctx context.Context, lines []string) error {
	stmt, err := s.ds.stmts.Get(ctx, insertLineQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}

	tx, err := s.ds.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("failed to roll back %s lines: %v", s.kind, rollbackErr)
		}
	}()

	if s.mode == ModeTruncate {
		if _, err := tx.ExecContext(ctx, deleteKindQuery, s.kind); err != nil {
			return fmt.Errorf("failed to clear %s lines: %w", s.kind, err)
		}
	}

	insert := tx.StmtContext(ctx, stmt)
	for _, line := range lines {
		if _, err := insert.ExecContext(ctx, s.kind, line); err != nil {
			return fmt.Errorf("failed to insert %s line: %w", s.kind, err)
		}
	}
	return tx.Commit()
}

// ReadLines returns the kind's lines in insertion order.
func (s *SQLiteLines) ReadLines(ctx context.Context) ([]string, error) {
	stmt, err := s.ds.stmts.Get(ctx, selectLineQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select: %w", err)
	}
	rows, err := stmt.QueryContext(ctx, s.kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s lines: %w", s.kind, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan %s line: %w", s.kind, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s lines: %w", s.kind, err)
	}
	return lines, nil
}

var (
	_ repository.LineStore = (*FileLines)(nil)
	_ repository.LineStore = (*SQLiteLines)(nil)
)
