// Package app holds the five console programs. Each program writes its
// user-facing output to Out and diagnostics to Logger. Domain errors are
// reported on Out and the program carries on. So are I/O failures of a
// line store; Run only returns errors for a program that was assembled
// without a store it requires.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// Program is a runnable console demonstration
type Program interface {
	Run(ctx context.Context) error
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func logger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}

func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}

// report prints a recovered domain error
func report(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}

// storeOptions builds the repository options shared by the programs. The
// persister is only bound when lines is set.
func storeOptions[T any](logger *log.Logger, lines repository.LineStore, c repository.Codec[T], policy repository.LoadPolicy, validate func(T) error) []repository.Option[T, int] {
	opts := []repository.Option[T, int]{repository.WithLogger[T, int](logger)}
	if validate != nil {
		opts = append(opts, repository.WithValidator[T, int](validate))
	}
	if lines != nil {
		opts = append(opts, repository.WithPersister[T, int](&repository.Persister[T]{
			Lines:  lines,
			Codec:  c,
			Policy: policy,
		}))
	}
	return opts
}

// saveAll saves each repository in turn, reporting failures on w. It
// reports whether every save succeeded.
func saveAll(ctx context.Context, w io.Writer, saves ...func(context.Context) error) bool {
	ok := true
	for _, save := range saves {
		if err := save(ctx); err != nil {
			fmt.Fprintf(w, "An error occurred while saving to file: %v\n", err)
			ok = false
		}
	}
	return ok
}
