package repository

import "context"

// Repository defines the basic keyed operations for any record type.
// This follows a similar pattern to Spring Data's Repository interface.
type Repository[T any, ID comparable] interface {
	// Insert adds an entity
	// Returns ErrDuplicate if an entity with the same key is already stored
	Insert(entity T) error

	// FindByID retrieves an entity by its ID
	// Returns ErrNotFound if the entity doesn't exist
	FindByID(id ID) (T, error)

	// FindAll retrieves all entities in insertion order
	FindAll() []T

	// Update replaces the entity stored under id with the result of mutate
	// Returns ErrNotFound if the entity doesn't exist
	Update(id ID, mutate func(T) (T, error)) error

	// DeleteByID deletes an entity by its ID
	// Returns ErrNotFound if the entity doesn't exist
	DeleteByID(id ID) error

	// ExistsByID checks if an entity exists by its ID
	ExistsByID(id ID) bool

	// Len returns the number of stored entities
	Len() int
}

// LineStore is a source and sink of text lines, one record per line.
type LineStore interface {
	AppendLines(ctx context.Context, lines []string) error
	ReadLines(ctx context.Context) ([]string, error)
}

// Codec converts a record to and from its ordered list of text fields.
type Codec[T any] interface {
	// FieldCount is the minimum number of fields a line must split into.
	FieldCount() int
	Encode(entity T) ([]string, error)
	Decode(fields []string) (T, error)
}
