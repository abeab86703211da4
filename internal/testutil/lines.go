package testutil

import "context"

// MemLines is an in-memory line store. ReadErr and AppendErr, when set, are
// returned instead of touching Lines.
type MemLines struct {
	Lines     []string
	ReadErr   error
	AppendErr error
}

// AppendLines implements repository.LineStore
func (m *MemLines) AppendLines(ctx context.Context, lines []string) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Lines = append(m.Lines, lines...)
	return nil
}

// ReadLines implements repository.LineStore
func (m *MemLines) ReadLines(ctx context.Context) ([]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	out := make([]string, len(m.Lines))
	copy(out, m.Lines)
	return out, nil
}
