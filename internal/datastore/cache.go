package datastore

import (
	"context"
	"database/sql"
	"errors"
)

// StatementCache prepares each query once and reuses the statement.
// It is not safe for concurrent use.
type StatementCache struct {
	statements map[string]*sql.Stmt
	db         *sql.DB
}

// NewStatementCache creates a new prepared statement cache
func NewStatementCache(db *sql.DB) *StatementCache {
	return &StatementCache{
		statements: make(map[string]*sql.Stmt),
		db:         db,
	}
}

// Get retrieves or prepares the statement for query
func (c *StatementCache) Get(ctx context.Context, query string) (*sql.Stmt, error) {
	if stmt, ok := c.statements[query]; ok {
		return stmt, nil
	}
	stmt, err := c.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	c.statements[query] = stmt
	return stmt, nil
}

// Close closes all prepared statements and clears the cache
func (c *StatementCache) Close() error {
	var errs []error
	for _, stmt := range c.statements {
		if err := stmt.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.statements = make(map[string]*sql.Stmt)
	return errors.Join(errs...)
}

// Len returns the number of cached statements
func (c *StatementCache) Len() int {
	return len(c.statements)
}
