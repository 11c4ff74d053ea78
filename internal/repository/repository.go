// Package repository defines the storage contracts the use-case layer depends
// on. Implementations live in the memory and sqlite subpackages.
package repository

import (
	"context"

	"tasklist/internal/domain"
)

// TaskRepository is the persistence abstraction for the task collection.
// Implementations own the authoritative collection; callers never mutate
// storage except through these methods.
type TaskRepository interface {
	// Add inserts a task. It fails with a duplicate error if a task with the
	// same id is already present.
	Add(ctx context.Context, task domain.Task) error

	// Remove deletes the task with the given id. Removing an absent id is a
	// no-op, not an error.
	Remove(ctx context.Context, id string) error

	// Update replaces the task with a matching id. Updating an absent id is a
	// silent no-op.
	Update(ctx context.Context, task domain.Task) error

	// GetAll returns the full collection in stored order.
	GetAll(ctx context.Context) ([]domain.Task, error)

	// GetOne returns the task with the given id, or (nil, nil) if absent.
	GetOne(ctx context.Context, id string) (*domain.Task, error)

	// Close releases any resources held by the repository.
	Close() error
}

// BatchReplacer is an optional repository capability: replacing the entire
// collection in one atomic call. Callers detect it with a type assertion.
type BatchReplacer interface {
	// SetAll replaces the stored collection with the given tasks.
	SetAll(ctx context.Context, tasks []domain.Task) error
}

// Preferences is a small key-value store for user preferences such as the
// dark-mode flag and the accent color.
type Preferences interface {
	// Get returns the stored value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores the value under key, replacing any previous value.
	Put(ctx context.Context, key string, value string) error
}
