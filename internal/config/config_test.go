package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jbweber/homelab/recordbook/internal/datastore"
	"github.com/jbweber/homelab/recordbook/internal/repository"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	if config == nil {
		t.Fatal("Expected non-nil config")
	}

	if config.DataDir != "~/recordbook/data" {
		t.Errorf("Expected DataDir '~/recordbook/data', got '%s'", config.DataDir)
	}

	if config.Backend != BackendFile {
		t.Errorf("Expected Backend '%s', got '%s'", BackendFile, config.Backend)
	}

	if config.Files.Students != "students.txt" {
		t.Errorf("Expected students file 'students.txt', got '%s'", config.Files.Students)
	}
}

func TestConfig_expandPath_WithTilde(t *testing.T) {
	config := NewConfig()

	expanded := config.expandPath("~/test/path")

	if strings.HasPrefix(expanded, "~/") {
		t.Errorf("Expected path to be expanded, got '%s'", expanded)
	}

	if !strings.HasSuffix(expanded, "test/path") {
		t.Errorf("Expected expanded path to end with 'test/path', got '%s'", expanded)
	}
}

func TestConfig_expandPath_WithoutTilde(t *testing.T) {
	config := NewConfig()

	path := "/absolute/path"
	if expanded := config.expandPath(path); expanded != path {
		t.Errorf("Expected path to remain unchanged, got '%s'", expanded)
	}
}

func TestConfig_ResolvePath(t *testing.T) {
	config := NewConfig()
	config.DataDir = "/srv/records"

	if got := config.ResolvePath("students.txt"); got != "/srv/records/students.txt" {
		t.Errorf("Expected relative name under data dir, got '%s'", got)
	}

	if got := config.ResolvePath("/tmp/other.txt"); got != "/tmp/other.txt" {
		t.Errorf("Expected absolute path unchanged, got '%s'", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	config := NewConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}

	config.Backend = "postgres"
	err := config.Validate()
	if !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for unknown backend, got %v", err)
	}

	config.Backend = BackendSQLite
	config.DBPath = ""
	if err := config.Validate(); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for empty db path, got %v", err)
	}
}

func TestConfig_InitializeDatabase_Success(t *testing.T) {
	config := NewConfig()
	config.DBPath = filepath.Join(t.TempDir(), "nested", "test.db")

	db, err := config.InitializeDatabase(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("Database ping failed: %v", err)
	}

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='record_lines'").Scan(&tableName)
	if err != nil {
		t.Errorf("Expected record_lines table to exist: %v", err)
	}

	if _, err := os.Stat(filepath.Dir(config.DBPath)); os.IsNotExist(err) {
		t.Errorf("Expected directory to be created: %s", filepath.Dir(config.DBPath))
	}
}

func TestConfig_InitializeDatabase_InvalidPath(t *testing.T) {
	config := NewConfig()

	// A regular file cannot act as a parent directory
	parent := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(parent, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	config.DBPath = filepath.Join(parent, "recordbook.db")

	db, err := config.InitializeDatabase(context.Background())
	if err == nil {
		db.Close()
		t.Fatal("Expected error for invalid path")
	}

	if !strings.Contains(err.Error(), "failed to create database directory") {
		t.Errorf("Expected directory creation error, got: %v", err)
	}
}

func TestStorage_FileBackend(t *testing.T) {
	config := NewConfig()
	config.DataDir = t.TempDir()
	ctx := context.Background()

	storage, err := config.OpenStorage(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer storage.Close()

	lines, err := storage.Lines("inventory_log.txt", datastore.ModeAppend)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := lines.AppendLines(ctx, []string{"1,Widget,3,2025-01-02T03:04:05Z"}); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}

	if _, err := os.Stat(filepath.Join(config.DataDir, "inventory_log.txt")); err != nil {
		t.Errorf("Expected file under data dir: %v", err)
	}

	if _, err := storage.Lines("", datastore.ModeAppend); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for empty name, got %v", err)
	}
}

func TestStorage_SQLiteBackend(t *testing.T) {
	config := NewConfig()
	config.Backend = BackendSQLite
	config.DBPath = filepath.Join(t.TempDir(), "recordbook.db")
	ctx := context.Background()

	storage, err := config.OpenStorage(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer storage.Close()

	lines, err := storage.Lines("students.txt", datastore.ModeAppend)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := lines.AppendLines(ctx, []string{"101,Alice Smith,84"}); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}

	got, err := lines.ReadLines(ctx)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if len(got) != 1 || got[0] != "101,Alice Smith,84" {
		t.Errorf("Unexpected lines: %v", got)
	}

	for _, name := range []string{"", "  "} {
		if _, err := storage.Lines(name, datastore.ModeAppend); !errors.Is(err, repository.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument for name %q, got %v", name, err)
		}
	}
}

func TestFromViper(t *testing.T) {
	t.Setenv("RECORDBOOK_BACKEND", "SQLite")
	t.Setenv("RECORDBOOK_STUDENTS_FILE", "/data/in.txt")

	config := FromViper(NewViper())

	if config.Backend != BackendSQLite {
		t.Errorf("Expected backend from env, got '%s'", config.Backend)
	}
	if config.Files.Students != "/data/in.txt" {
		t.Errorf("Expected students file from env, got '%s'", config.Files.Students)
	}
	if config.Files.Inventory != "inventory_log.txt" {
		t.Errorf("Expected default inventory file, got '%s'", config.Files.Inventory)
	}
	if config.Files.Groceries != "groceries.txt" {
		t.Errorf("Expected default groceries file, got '%s'", config.Files.Groceries)
	}
}
