package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/jbweber/homelab/recordbook/internal/migrations"
	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// Supported storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Files names the line files each program reads or writes. Relative names
// are resolved against DataDir.
type Files struct {
	Transactions  string
	Students      string
	StudentReport string
	Inventory     string
	Patients      string
	Prescriptions string
	Electronics   string
	Groceries     string
}

// Config holds all configuration for recordbook
type Config struct {
	DataDir string
	Backend string
	DBPath  string
	Files   Files
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		DataDir: "~/recordbook/data",
		Backend: BackendFile,
		DBPath:  "~/recordbook/data/recordbook.db",
		Files: Files{
			Transactions:  "transactions.txt",
			Students:      "students.txt",
			StudentReport: "student_report.txt",
			Inventory:     "inventory_log.txt",
			Patients:      "patients.txt",
			Prescriptions: "prescriptions.txt",
			Electronics:   "electronics.txt",
			Groceries:     "groceries.txt",
		},
	}
}

// Validate checks that the backend is known and that required paths are set
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if strings.TrimSpace(c.DataDir) == "" {
			return fmt.Errorf("data dir is not set: %w", repository.ErrInvalidArgument)
		}
	case BackendSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("database path is not set: %w", repository.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s): %w", c.Backend, BackendFile, BackendSQLite, repository.ErrInvalidArgument)
	}
	return nil
}

// ResolvePath expands ~ and places relative names under DataDir
func (c *Config) ResolvePath(name string) string {
	path := c.expandPath(name)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.expandPath(c.DataDir), path)
}

// InitializeDatabase creates and configures the database connection
func (c *Config) InitializeDatabase(ctx context.Context) (*sql.DB, error) {
	dbPath := c.expandPath(c.DBPath)

	// Ensure database directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	OptimizeDatabaseConnection(db)

	if err := ApplyPragmaOptimizations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply performance optimizations: %w", err)
	}

	if err := c.runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// expandPath expands ~ to home directory
func (c *Config) expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Return original path if we can't get home dir
		return path
	}

	return filepath.Join(homeDir, path[2:])
}

// runMigrations runs all database migrations
func (c *Config) runMigrations(ctx context.Context, db *sql.DB) error {
	migrator := migrations.NewMigrator(db)
	for _, migration := range migrations.All() {
		migrator.AddMigration(migration)
	}
	return migrator.RunMigrations(ctx)
}
