package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jbweber/homelab/recordbook/internal/datastore"
	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// Storage hands out line stores for the configured backend
type Storage struct {
	cfg *Config
	db  *sql.DB
	ds  *datastore.Datastore
}

// OpenStorage validates the config and opens the backend. For the sqlite
// backend the database is created and migrated.
func (c *Config) OpenStorage(ctx context.Context) (*Storage, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := &Storage{cfg: c}
	if c.Backend == BackendSQLite {
		db, err := c.InitializeDatabase(ctx)
		if err != nil {
			return nil, err
		}
		s.db = db
		s.ds = datastore.New(db)
	}
	return s, nil
}

// Lines returns the line store for a logical file name
func (s *Storage) Lines(name string, mode datastore.Mode) (repository.LineStore, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("file path is not set: %w", repository.ErrInvalidArgument)
	}
	if s.ds != nil {
		return s.ds.Lines(filepath.Base(name), mode)
	}
	return datastore.NewFileLines(s.cfg.ResolvePath(name), mode)
}

// Describe returns where a logical file lives, for log messages
func (s *Storage) Describe(name string) string {
	if s.ds != nil {
		return fmt.Sprintf("%s (in %s)", filepath.Base(name), s.cfg.expandPath(s.cfg.DBPath))
	}
	return s.cfg.ResolvePath(name)
}

// Close releases the database, if any
func (s *Storage) Close() error {
	if s.ds == nil {
		return nil
	}
	return errors.Join(s.ds.Close(), s.db.Close())
}
