package testutil

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewTestDSN(t *testing.T) {
	dsn := NewTestDSN("TestName")
	if !strings.Contains(dsn, "file:TestName?mode=memory&cache=shared") {
		t.Errorf("NewTestDSN did not generate expected DSN, got: %s", dsn)
	}
}

func TestWriteLinesReadLines(t *testing.T) {
	path := WriteLines(t, "in.txt", "a,b", "c,d")

	got := ReadLines(t, path)
	if len(got) != 2 || got[0] != "a,b" || got[1] != "c,d" {
		t.Errorf("Unexpected lines: %v", got)
	}
}

func TestMemLines(t *testing.T) {
	ctx := context.Background()
	m := &MemLines{}

	if err := m.AppendLines(ctx, []string{"1", "2"}); err != nil {
		t.Fatalf("AppendLines failed: %v", err)
	}
	got, err := m.ReadLines(ctx)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 lines, got %d", len(got))
	}

	m.ReadErr = errors.New("disk gone")
	if _, err := m.ReadLines(ctx); err == nil {
		t.Error("Expected injected read error")
	}
}
