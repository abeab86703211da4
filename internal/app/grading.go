package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/jbweber/homelab/recordbook/internal/codec"
	"github.com/jbweber/homelab/recordbook/internal/domain"
	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// Grading reads student scores and writes a graded report.
type Grading struct {
	Out    io.Writer
	Logger *log.Logger

	Input      repository.LineStore
	InputName  string
	Report     repository.LineStore
	ReportName string
}

// Run loads every student strictly and writes the report. A missing input,
// a malformed line, an out of range score or a failing store is reported
// and ends the run without an error.
func (g *Grading) Run(ctx context.Context) error {
	out := output(g.Out)
	if g.Input == nil {
		return fmt.Errorf("grading: no input store: %w", repository.ErrInvalidArgument)
	}

	fmt.Fprintf(out, "Reading student data from %s\n", g.InputName)
	students, err := ReadStudents(ctx, g.Input, g.Logger)
	if err != nil {
		if msg, ok := describeLoadError(err); ok {
			fmt.Fprintf(out, "Error: %s %v\n", msg, err)
			return nil
		}
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "Writing report to %s\n", g.ReportName)
	if err := WriteReport(ctx, g.Report, students); err != nil {
		if errors.Is(err, repository.ErrInvalidArgument) {
			fmt.Fprintf(out, "Error: %v\n", err)
			return nil
		}
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
		return nil
	}
	for _, s := range students {
		fmt.Fprintf(out, "%s (ID:%d): Score = %d, Grade = %s\n", s.FullName, s.ID, s.Score, s.Grade())
	}
	return nil
}

// ReadStudents loads every student from lines, failing on the first bad line.
func ReadStudents(ctx context.Context, lines repository.LineStore, logger *log.Logger) ([]domain.Student, error) {
	students := repository.NewMemoryRepository("student", domain.Student.Key,
		repository.WithPersister[domain.Student, int](&repository.Persister[domain.Student]{
			Lines:  lines,
			Codec:  codec.Student{},
			Policy: repository.LoadStrict,
		}),
		repository.WithLogger[domain.Student, int](logger),
	)
	if _, err := students.Load(ctx); err != nil {
		return nil, err
	}
	return students.FindAll(), nil
}

// WriteReport replaces the contents of lines with one graded line per student.
func WriteReport(ctx context.Context, lines repository.LineStore, students []domain.Student) error {
	if lines == nil {
		return fmt.Errorf("report store is not set: %w", repository.ErrInvalidArgument)
	}
	if len(students) == 0 {
		return fmt.Errorf("no students to report: %w", repository.ErrInvalidArgument)
	}
	report := repository.NewMemoryRepository("student", domain.Student.Key,
		repository.WithPersister[domain.Student, int](&repository.Persister[domain.Student]{
			Lines: lines,
			Codec: codec.StudentReport{},
		}),
	)
	for _, s := range students {
		if err := report.Insert(s); err != nil {
			return err
		}
	}
	return report.Save(ctx)
}

func describeLoadError(err error) (string, bool) {
	var fieldErr *repository.FieldError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "File not found.", true
	case errors.Is(err, repository.ErrMissingField):
		return "Missing field.", true
	case errors.As(err, &fieldErr) && fieldErr.Field == "score":
		return "Invalid score.", true
	case errors.Is(err, repository.ErrInvalidValue):
		return "Invalid value.", true
	case errors.Is(err, repository.ErrDuplicate):
		return "Duplicate student.", true
	}
	return "", false
}
