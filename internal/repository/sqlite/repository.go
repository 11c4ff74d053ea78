package sqlite

import (
	"context"
	"encoding/json"
	"sync"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// tasksKey is the single key under which the whole task list is persisted,
// as a JSON array of task records.
const tasksKey = "tasks"

// TaskRepository is the durable task store. Every mutation is a full
// read-modify-write of the JSON document, so all cycles are serialized
// behind a mutex: interleaved callers cannot lose updates.
type TaskRepository struct {
	mu    sync.Mutex
	store *Store
}

// NewTaskRepository creates a task repository over the given store.
func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

// readAll loads and decodes the stored task list. An absent key decodes to
// an empty list. Callers must hold r.mu.
func (r *TaskRepository) readAll(ctx context.Context) ([]domain.Task, error) {
	raw, ok, err := r.store.Get(ctx, tasksKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, errors.NewStorageError("decode tasks", err)
	}
	return tasks, nil
}

// writeAll encodes and stores the full task list. Callers must hold r.mu.
func (r *TaskRepository) writeAll(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	return r.store.Put(ctx, tasksKey, string(raw))
}

// Add inserts a task, rejecting duplicate ids.
func (r *TaskRepository) Add(ctx context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for _, existing := range tasks {
		if existing.ID == task.ID {
			return errors.NewDuplicateError("task id", task.ID)
		}
	}
	return r.writeAll(ctx, append(tasks, task))
}

// Remove deletes the task with the given id. Absent ids are a no-op.
func (r *TaskRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	filtered := tasks[:0]
	for _, task := range tasks {
		if task.ID != id {
			filtered = append(filtered, task)
		}
	}
	return r.writeAll(ctx, filtered)
}

// Update replaces the task with a matching id. Absent ids are a silent no-op.
func (r *TaskRepository) Update(ctx context.Context, updated domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for i, task := range tasks {
		if task.ID == updated.ID {
			tasks[i] = updated
			break
		}
	}
	return r.writeAll(ctx, tasks)
}

// GetAll returns the full collection in stored order.
func (r *TaskRepository) GetAll(ctx context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.readAll(ctx)
}

// GetOne returns the task with the given id, or (nil, nil) if absent.
func (r *TaskRepository) GetOne(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if task.ID == id {
			found := task
			return &found, nil
		}
	}
	return nil, nil
}

// SetAll replaces the entire stored collection.
func (r *TaskRepository) SetAll(ctx context.Context, tasks []domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeAll(ctx, tasks)
}

// Close closes the underlying store.
func (r *TaskRepository) Close() error {
	return r.store.Close()
}
