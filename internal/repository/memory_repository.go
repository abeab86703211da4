package repository

import (
	"fmt"
	"log"
)

// MemoryRepository is an in-memory implementation of Repository keyed by ID.
// Records keep their insertion order. T should be a value type so that
// Update can work on a copy and commit it only on success.
//
// A MemoryRepository is not safe for concurrent use.
type MemoryRepository[T any, ID comparable] struct {
	name     string
	keyOf    func(T) ID
	items    map[ID]T
	order    []ID
	validate func(T) error
	persist  *Persister[T]
	logger   *log.Logger
}

// Option configures a MemoryRepository
type Option[T any, ID comparable] func(*MemoryRepository[T, ID])

// WithValidator sets a check run against every inserted or updated entity.
// A rejection should wrap ErrInvalidValue.
func WithValidator[T any, ID comparable](validate func(T) error) Option[T, ID] {
	return func(r *MemoryRepository[T, ID]) {
		r.validate = validate
	}
}

// WithPersister binds the repository to a line store for Save and Load.
func WithPersister[T any, ID comparable](p *Persister[T]) Option[T, ID] {
	return func(r *MemoryRepository[T, ID]) {
		r.persist = p
	}
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger[T any, ID comparable](logger *log.Logger) Option[T, ID] {
	return func(r *MemoryRepository[T, ID]) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewMemoryRepository creates an empty repository. name is used in error
// messages (e.g. "item", "student"); keyOf extracts the primary key.
func NewMemoryRepository[T any, ID comparable](name string, keyOf func(T) ID, opts ...Option[T, ID]) *MemoryRepository[T, ID] {
	r := &MemoryRepository[T, ID]{
		name:   name,
		keyOf:  keyOf,
		items:  make(map[ID]T),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Insert adds an entity, refusing to overwrite an existing key.
func (r *MemoryRepository[T, ID]) Insert(entity T) error {
	id := r.keyOf(entity)
	if _, ok := r.items[id]; ok {
		return fmt.Errorf("%s with ID %v: %w", r.name, id, ErrDuplicate)
	}
	if err := r.check(entity); err != nil {
		return fmt.Errorf("%s with ID %v: %w", r.name, id, err)
	}
	r.put(entity)
	return nil
}

// FindByID retrieves an entity by its ID
func (r *MemoryRepository[T, ID]) FindByID(id ID) (T, error) {
	entity, ok := r.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s with ID %v: %w", r.name, id, ErrNotFound)
	}
	return entity, nil
}

// FindAll returns a snapshot of every entity in insertion order. The result
// is never nil.
func (r *MemoryRepository[T, ID]) FindAll() []T {
	all := make([]T, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.items[id])
	}
	return all
}

// Update applies mutate to a copy of the stored entity and commits the result.
// The key must not change.
func (r *MemoryRepository[T, ID]) Update(id ID, mutate func(T) (T, error)) error {
	current, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%s with ID %v: %w", r.name, id, ErrNotFound)
	}
	updated, err := mutate(current)
	if err != nil {
		return fmt.Errorf("%s with ID %v: %w", r.name, id, err)
	}
	if newID := r.keyOf(updated); newID != id {
		return fmt.Errorf("%s with ID %v: %w", r.name, id, InvalidField("id", fmt.Sprint(newID), "key cannot change on update"))
	}
	if err := r.check(updated); err != nil {
		return fmt.Errorf("%s with ID %v: %w", r.name, id, err)
	}
	r.items[id] = updated
	return nil
}

// DeleteByID removes an entity by its ID
func (r *MemoryRepository[T, ID]) DeleteByID(id ID) error {
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%s with ID %v: %w", r.name, id, ErrNotFound)
	}
	delete(r.items, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ExistsByID checks if an entity exists by its ID
func (r *MemoryRepository[T, ID]) ExistsByID(id ID) bool {
	_, ok := r.items[id]
	return ok
}

// Len returns the number of stored entities
func (r *MemoryRepository[T, ID]) Len() int {
	return len(r.items)
}

// Name returns the entity name used in messages
func (r *MemoryRepository[T, ID]) Name() string {
	return r.name
}

func (r *MemoryRepository[T, ID]) put(entity T) {
	id := r.keyOf(entity)
	r.items[id] = entity
	r.order = append(r.order, id)
}

func (r *MemoryRepository[T, ID]) check(entity T) error {
	if r.validate == nil {
		return nil
	}
	return r.validate(entity)
}
