package datastore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbweber/homelab/recordbook/internal/repository"
	"github.com/jbweber/homelab/recordbook/internal/testutil"
)

func TestNewFileLines_EmptyPath(t *testing.T) {
	_, err := NewFileLines("  ", ModeAppend)
	assert.ErrorIs(t, err, repository.ErrInvalidArgument)
}

func TestFileLines_AppendAndRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "inventory_log.txt")

	lines, err := NewFileLines(path, ModeAppend)
	require.NoError(t, err)

	require.NoError(t, lines.AppendLines(ctx, []string{"1,Milk,50"}))
	require.NoError(t, lines.AppendLines(ctx, []string{"2,Bread,30"}))

	got, err := lines.ReadLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1,Milk,50", "2,Bread,30"}, got)
}

func TestFileLines_Truncate(t *testing.T) {
	ctx := context.Background()
	path := testutil.WriteLines(t, "report.txt", "old,line")

	lines, err := NewFileLines(path, ModeTruncate)
	require.NoError(t, err)

	require.NoError(t, lines.AppendLines(ctx, []string{"101,Alice Smith,84,A"}))

	assert.Equal(t, []string{"101,Alice Smith,84,A"}, testutil.ReadLines(t, path))
}

func TestFileLines_ReadMissingFile(t *testing.T) {
	lines, err := NewFileLines(filepath.Join(t.TempDir(), "missing.txt"), ModeAppend)
	require.NoError(t, err)

	_, err = lines.ReadLines(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFileLines_TrimsCarriageReturn(t *testing.T) {
	path := testutil.WriteLines(t, "students.txt", "101,Alice Smith,84\r", "102,Bob Jones,42\r")

	lines, err := NewFileLines(path, ModeAppend)
	require.NoError(t, err)

	got, err := lines.ReadLines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"101,Alice Smith,84", "102,Bob Jones,42"}, got)
}

func TestFileLines_LongLine(t *testing.T) {
	long := "1," + strings.Repeat("x", 256*1024) + ",3"
	path := testutil.WriteLines(t, "inventory_log.txt", "0,Short,1", long, "2,After,5")

	lines, err := NewFileLines(path, ModeAppend)
	require.NoError(t, err)

	got, err := lines.ReadLines(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, long, got[1])
	assert.Equal(t, "2,After,5", got[2])
}

func TestFileLines_NoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.txt")
	require.NoError(t, os.WriteFile(path, []byte("101,Alice Smith,84\n\n102,Bob Jones,42"), 0o644))

	lines, err := NewFileLines(path, ModeAppend)
	require.NoError(t, err)

	got, err := lines.ReadLines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"101,Alice Smith,84", "", "102,Bob Jones,42"}, got)
}

func TestFileLines_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines, err := NewFileLines(filepath.Join(t.TempDir(), "x.txt"), ModeAppend)
	require.NoError(t, err)

	assert.ErrorIs(t, lines.AppendLines(ctx, []string{"1"}), context.Canceled)
}

func TestSQLiteLines_AppendAndRead(t *testing.T) {
	db, cleanup := testutil.SetupTestDBWithMigrations(t, "TestSQLiteLines_AppendAndRead")
	defer cleanup()

	ds := New(db)
	defer ds.Close()
	ctx := context.Background()

	students, err := ds.Lines("students.txt", ModeAppend)
	require.NoError(t, err)
	inventory, err := ds.Lines("inventory_log.txt", ModeAppend)
	require.NoError(t, err)

	require.NoError(t, students.AppendLines(ctx, []string{"101,Alice Smith,84", "102,Bob Jones,42"}))
	require.NoError(t, inventory.AppendLines(ctx, []string{"1,Widget,3,2025-01-02T03:04:05Z"}))
	require.NoError(t, students.AppendLines(ctx, []string{"103,Cara Diaz,71"}))

	got, err := students.ReadLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"101,Alice Smith,84", "102,Bob Jones,42", "103,Cara Diaz,71"}, got)

	got, err = inventory.ReadLines(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteLines_Truncate(t *testing.T) {
	db, cleanup := testutil.SetupTestDBWithMigrations(t, "TestSQLiteLines_Truncate")
	defer cleanup()

	ds := New(db)
	defer ds.Close()
	ctx := context.Background()

	appendLines, err := ds.Lines("report.txt", ModeAppend)
	require.NoError(t, err)
	require.NoError(t, appendLines.AppendLines(ctx, []string{"old"}))

	other, err := ds.Lines("other.txt", ModeAppend)
	require.NoError(t, err)
	require.NoError(t, other.AppendLines(ctx, []string{"keep"}))

	truncate, err := ds.Lines("report.txt", ModeTruncate)
	require.NoError(t, err)
	require.NoError(t, truncate.AppendLines(ctx, []string{"new"}))

	got, err := truncate.ReadLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)

	got, err = other.ReadLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, got)
}

func TestSQLiteLines_EmptyKind(t *testing.T) {
	db, cleanup := testutil.SetupTestDBWithMigrations(t, "TestSQLiteLines_EmptyKind")
	defer cleanup()

	_, err := New(db).Lines("", ModeAppend)
	assert.ErrorIs(t, err, repository.ErrInvalidArgument)
}

func TestSQLiteLines_ReadEmpty(t *testing.T) {
	db, cleanup := testutil.SetupTestDBWithMigrations(t, "TestSQLiteLines_ReadEmpty")
	defer cleanup()

	ds := New(db)
	defer ds.Close()

	lines, err := ds.Lines("nothing.txt", ModeAppend)
	require.NoError(t, err)

	got, err := lines.ReadLines(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStatementCache(t *testing.T) {
	db, cleanup := testutil.SetupTestDBWithMigrations(t, "TestStatementCache")
	defer cleanup()

	cache := NewStatementCache(db)
	ctx := context.Background()

	first, err := cache.Get(ctx, selectLineQuery)
	require.NoError(t, err)
	second, err := cache.Get(ctx, selectLineQuery)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Close())
	assert.Equal(t, 0, cache.Len())
}
