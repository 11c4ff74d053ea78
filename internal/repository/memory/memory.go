// Package memory provides process-lifetime implementations of the repository
// contracts. Contents are lost when the process exits.
package memory

import (
	"context"
	"sync"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// TaskRepository is an in-memory task store. Tasks keep insertion order.
// All methods are safe for concurrent use.
type TaskRepository struct {
	mu    sync.Mutex
	tasks []domain.Task
}

// New creates an empty in-memory task repository.
func New() *TaskRepository {
	return &TaskRepository{}
}

// Add inserts a task, rejecting duplicate ids.
func (r *TaskRepository) Add(ctx context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tasks {
		if existing.ID == task.ID {
			return errors.NewDuplicateError("task id", task.ID)
		}
	}
	r.tasks = append(r.tasks, task)
	return nil
}

// Remove deletes the task with the given id. Absent ids are a no-op.
func (r *TaskRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := r.tasks[:0]
	for _, task := range r.tasks {
		if task.ID != id {
			filtered = append(filtered, task)
		}
	}
	r.tasks = filtered
	return nil
}

// Update replaces the task with a matching id. Absent ids are a silent no-op.
func (r *TaskRepository) Update(ctx context.Context, updated domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, task := range r.tasks {
		if task.ID == updated.ID {
			r.tasks[i] = updated
			break
		}
	}
	return nil
}

// GetAll returns a copy of the collection in insertion order.
func (r *TaskRepository) GetAll(ctx context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]domain.Task, len(r.tasks))
	copy(snapshot, r.tasks)
	return snapshot, nil
}

// GetOne returns the task with the given id, or (nil, nil) if absent.
func (r *TaskRepository) GetOne(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, task := range r.tasks {
		if task.ID == id {
			found := task
			return &found, nil
		}
	}
	return nil, nil
}

// SetAll replaces the entire collection.
func (r *TaskRepository) SetAll(ctx context.Context, tasks []domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replacement := make([]domain.Task, len(tasks))
	copy(replacement, tasks)
	r.tasks = replacement
	return nil
}

// Close is a no-op for the in-memory repository.
func (r *TaskRepository) Close() error {
	return nil
}

// Preferences is an in-memory key-value preferences store.
type Preferences struct {
	mu     sync.Mutex
	values map[string]string
}

// NewPreferences creates an empty in-memory preferences store.
func NewPreferences() *Preferences {
	return &Preferences{values: make(map[string]string)}
}

// Get returns the stored value for key and whether it was present.
func (p *Preferences) Get(ctx context.Context, key string) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	value, ok := p.values[key]
	return value, ok, nil
}

// Put stores the value under key.
func (p *Preferences) Put(ctx context.Context, key string, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values[key] = value
	return nil
}
