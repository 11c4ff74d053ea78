package services

import (
	"context"

	"tasklist/internal/domain"
)

// AddOutcome tells callers why an Add succeeded or was rejected, so the UI
// can react differently (e.g. keep the input populated on rejection).
type AddOutcome int

const (
	// AddOutcomeAdded means the task was created and persisted.
	AddOutcomeAdded AddOutcome = iota
	// AddOutcomeInvalidTitle means the title was empty (or otherwise
	// invalid) after trimming; nothing was persisted.
	AddOutcomeInvalidTitle
	// AddOutcomeDuplicateTitle means another task already carries the same
	// trimmed, case-insensitive title; nothing was persisted.
	AddOutcomeDuplicateTitle
	// AddOutcomeFailed means the storage layer rejected the operation.
	AddOutcomeFailed
)

// String returns the string representation of the outcome
func (o AddOutcome) String() string {
	switch o {
	case AddOutcomeAdded:
		return "added"
	case AddOutcomeInvalidTitle:
		return "invalid_title"
	case AddOutcomeDuplicateTitle:
		return "duplicate_title"
	case AddOutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Celebration is the external side effect fired when every task is complete.
// The service only decides when to trigger it, not what it looks like.
type Celebration func()

// TaskService orchestrates the task list: it validates input, talks to the
// repository, and keeps a cached view of all tasks that is re-read from the
// repository after every mutation.
type TaskService interface {
	// Load replaces the cached view with the repository's current contents.
	Load(ctx context.Context) error

	// Tasks returns a copy of the cached view.
	Tasks() []domain.Task

	// Add creates a task from a raw title and optional due date.
	Add(ctx context.Context, title string, dueDate *domain.Date) (AddOutcome, error)

	// Edit updates the title (trimmed) and, when provided, the due date of
	// the task matching task.ID.
	Edit(ctx context.Context, task domain.Task, newTitle string, newDueDate *domain.Date) error

	// ToggleComplete flips the completion flag of the given task.
	ToggleComplete(ctx context.Context, task domain.Task) error

	// Remove deletes the given task. Only completed tasks may be removed.
	Remove(ctx context.Context, task domain.Task) error

	// RemoveCompleted deletes every completed task and returns how many
	// were removed. With nothing completed it is an informational no-op.
	RemoveCompleted(ctx context.Context) (int, error)

	// Reorder rewrites the stored order to match ids, which must be a
	// permutation of the current view's ids.
	Reorder(ctx context.Context, ids []string) error

	// Filtered returns the cached view narrowed by the filter. It never
	// reloads or mutates anything.
	Filtered(filter domain.Filter) []domain.Task
}

// ThemeService manages the persisted theme preferences.
type ThemeService interface {
	// DarkMode returns the stored dark-mode flag, defaulting to false.
	DarkMode(ctx context.Context) (bool, error)

	// SetDarkMode persists the dark-mode flag.
	SetDarkMode(ctx context.Context, enabled bool) error

	// AccentColor returns the stored accent color, defaulting to
	// DefaultAccentColor.
	AccentColor(ctx context.Context) (string, error)

	// SetAccentColor validates and persists a #RRGGBB accent color.
	SetAccentColor(ctx context.Context, color string) error

	// IsColorLight reports whether the color is light enough to need dark
	// foreground text.
	IsColorLight(color string) bool
}
