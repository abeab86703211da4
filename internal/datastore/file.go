package datastore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// Mode controls how writes treat existing content.
type Mode int

const (
	// ModeAppend adds lines after any existing content.
	ModeAppend Mode = iota
	// ModeTruncate replaces existing content on every write.
	ModeTruncate
)

// FileLines stores lines in a flat text file. The file is opened for each
// read or write and closed before the call returns.
type FileLines struct {
	path string
	mode Mode
}

// NewFileLines creates a line store backed by the file at path.
func NewFileLines(path string, mode Mode) (*FileLines, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("file path is not set: %w", repository.ErrInvalidArgument)
	}
	return &FileLines{path: path, mode: mode}, nil
}

// Path returns the backing file path
func (f *FileLines) Path() string {
	return f.path
}

// AppendLines writes lines to the file, creating it and its directory if needed.
func (f *FileLines) AppendLines(ctx context.Context, lines []string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", f.path, err)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if f.mode == ModeTruncate {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	file, err := os.OpenFile(f.path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", f.path, closeErr))
		}
	}()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", f.path, err)
	}
	return nil
}

// ReadLines returns every line of the file with trailing carriage returns
// removed. A missing file yields an error wrapping fs.ErrNotExist.
func (f *FileLines) ReadLines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close %s: %v", f.path, err)
		}
	}()

	// Lines have no length limit
	var lines []string
	r := bufio.NewReader(file)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
		}
	}
}
