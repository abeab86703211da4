package repository

import (
	"context"
	"fmt"
	"strings"
)

// Delimiter separates fields within a persisted line. Field values must not
// contain it; there is no escaping.
const Delimiter = ","

// LoadPolicy decides what Load does with a line that cannot be decoded.
type LoadPolicy int

const (
	// LoadStrict aborts on the first bad line and leaves the repository unchanged.
	LoadStrict LoadPolicy = iota
	// LoadSkipMalformed logs and skips bad lines and loads the rest.
	LoadSkipMalformed
)

func (p LoadPolicy) String() string {
	switch p {
	case LoadStrict:
		return "strict"
	case LoadSkipMalformed:
		return "skip"
	default:
		return "unknown"
	}
}

// Persister binds a record type to a line store.
type Persister[T any] struct {
	Lines  LineStore
	Codec  Codec[T]
	Policy LoadPolicy
}

// LoadResult summarizes a Load call.
type LoadResult struct {
	Loaded  int
	Skipped []*LineError
}

// EncodeLine joins the encoded fields of entity into a single line.
func EncodeLine[T any](codec Codec[T], entity T) (string, error) {
	fields, err := codec.Encode(entity)
	if err != nil {
		return "", err
	}
	for i, f := range fields {
		if strings.Contains(f, Delimiter) || strings.ContainsAny(f, "\r\n") {
			return "", InvalidField(fmt.Sprintf("field %d", i+1), f, "value contains a delimiter")
		}
	}
	return strings.Join(fields, Delimiter), nil
}

// DecodeLine splits line and decodes it with codec.
func DecodeLine[T any](codec Codec[T], line string) (T, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) < codec.FieldCount() {
		var zero T
		return zero, &FieldError{
			Field:  "line",
			Reason: fmt.Sprintf("expected %d fields, got %d", codec.FieldCount(), len(fields)),
			Err:    ErrMissingField,
		}
	}
	return codec.Decode(fields)
}

// Save encodes every entity and appends the lines to the bound line store.
// Nothing is written if any entity fails to encode. Errors from the line
// store are returned wrapped and are not repository sentinels.
func (r *MemoryRepository[T, ID]) Save(ctx context.Context) error {
	if r.persist == nil {
		return fmt.Errorf("save %s: no line store configured: %w", r.name, ErrInvalidArgument)
	}
	lines := make([]string, 0, len(r.order))
	for _, entity := range r.FindAll() {
		line, err := EncodeLine(r.persist.Codec, entity)
		if err != nil {
			return fmt.Errorf("save %s with ID %v: %w", r.name, r.keyOf(entity), err)
		}
		lines = append(lines, line)
	}
	if err := r.persist.Lines.AppendLines(ctx, lines); err != nil {
		return fmt.Errorf("failed to save %s records: %w", r.name, err)
	}
	return nil
}

// Load reads the bound line store and inserts every decoded entity according
// to the persister's LoadPolicy. Blank lines are ignored. Duplicate keys,
// whether against stored entities or earlier lines, count as bad lines.
func (r *MemoryRepository[T, ID]) Load(ctx context.Context) (LoadResult, error) {
	if r.persist == nil {
		return LoadResult{}, fmt.Errorf("load %s: no line store configured: %w", r.name, ErrInvalidArgument)
	}
	lines, err := r.persist.Lines.ReadLines(ctx)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to read %s records: %w", r.name, err)
	}

	var result LoadResult
	accepted := make([]T, 0, len(lines))
	seen := make(map[ID]struct{}, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entity, err := r.admit(line, seen)
		if err != nil {
			lineErr := &LineError{Line: i + 1, Text: line, Err: err}
			if r.persist.Policy == LoadStrict {
				return LoadResult{}, fmt.Errorf("failed to load %s records: %w", r.name, lineErr)
			}
			r.logger.Printf("skipping %s record: %v", r.name, lineErr)
			result.Skipped = append(result.Skipped, lineErr)
			continue
		}
		seen[r.keyOf(entity)] = struct{}{}
		accepted = append(accepted, entity)
	}

	for _, entity := range accepted {
		r.put(entity)
	}
	result.Loaded = len(accepted)
	return result, nil
}

func (r *MemoryRepository[T, ID]) admit(line string, seen map[ID]struct{}) (T, error) {
	entity, err := DecodeLine(r.persist.Codec, line)
	if err != nil {
		return entity, err
	}
	id := r.keyOf(entity)
	if _, ok := r.items[id]; ok {
		return entity, fmt.Errorf("%s with ID %v: %w", r.name, id, ErrDuplicate)
	}
	if _, ok := seen[id]; ok {
		return entity, fmt.Errorf("%s with ID %v: %w", r.name, id, ErrDuplicate)
	}
	if err := r.check(entity); err != nil {
		return entity, err
	}
	return entity, nil
}
