package services

import (
	"context"
	"strings"
	"sync"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/notify"
	"tasklist/internal/repository"
	"tasklist/internal/validation"

	"github.com/google/uuid"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.TaskRepository
	notifier      notify.Notifier
	celebrate     Celebration
	taskValidator *validation.TaskValidator

	// mu serializes mutations and guards the cached view. The view is
	// refreshed from the repository after every mutation; on a storage
	// error the last-known-good view is kept.
	mu          sync.Mutex
	view        []domain.Task
	allComplete bool
}

// NewTaskService creates a new TaskService instance. A nil celebrate hook
// disables the celebration side effect; a nil validator uses defaults.
func NewTaskService(repo repository.TaskRepository, notifier notify.Notifier, celebrate Celebration, validator *validation.TaskValidator) TaskService {
	if validator == nil {
		validator = validation.NewTaskValidator(0)
	}
	return &taskServiceImpl{
		repo:          repo,
		notifier:      notifier,
		celebrate:     celebrate,
		taskValidator: validator,
	}
}

func (s *taskServiceImpl) notify(message string, kind notify.Kind) {
	if s.notifier != nil {
		s.notifier.Show(message, kind)
	}
}

// refreshViewLocked re-reads the full collection from the repository and
// recomputes the all-complete latch. Callers must hold s.mu.
func (s *taskServiceImpl) refreshViewLocked(ctx context.Context) error {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	s.view = tasks
	s.allComplete = len(tasks) > 0
	for _, task := range tasks {
		if !task.Completed {
			s.allComplete = false
			break
		}
	}
	return nil
}

// findDuplicateLocked reports whether another task (ignoring excludeID)
// carries the same trimmed, case-insensitive title. Callers must hold s.mu.
func (s *taskServiceImpl) findDuplicateLocked(title string, excludeID string) bool {
	for _, task := range s.view {
		if task.ID != excludeID && task.TitleEquals(title) {
			return true
		}
	}
	return false
}

// Load replaces the cached view with the repository's current contents
func (s *taskServiceImpl) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshViewLocked(ctx); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}
	logging.Debugf("loaded %d tasks\n", len(s.view))
	return nil
}

// Tasks returns a copy of the cached view
func (s *taskServiceImpl) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.Task, len(s.view))
	copy(snapshot, s.view)
	return snapshot
}

// Add creates a task from a raw title and optional due date
func (s *taskServiceImpl) Add(ctx context.Context, title string, dueDate *domain.Date) (AddOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		s.notify("Task title cannot be empty", notify.KindError)
		return AddOutcomeInvalidTitle, errors.NewValidationError("task title cannot be empty", nil)
	}
	if err := s.taskValidator.ValidateTitle(trimmed); err != nil {
		s.notify("Task title is invalid", notify.KindError)
		return AddOutcomeInvalidTitle, errors.NewValidationError("invalid task title", err)
	}

	if s.findDuplicateLocked(trimmed, "") {
		s.notify("Task already exists", notify.KindError)
		return AddOutcomeDuplicateTitle, errors.NewDuplicateError("task title", trimmed)
	}

	task := domain.NewTask(uuid.NewString(), trimmed, dueDate)
	if err := s.repo.Add(ctx, task); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return AddOutcomeFailed, err
	}
	if err := s.refreshViewLocked(ctx); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return AddOutcomeFailed, err
	}

	s.notify("Task added", notify.KindSuccess)
	return AddOutcomeAdded, nil
}

// Edit updates the title and optionally the due date of an existing task
func (s *taskServiceImpl) Edit(ctx context.Context, task domain.Task, newTitle string, newDueDate *domain.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(newTitle)
	if trimmed == "" {
		s.notify("Task title cannot be empty", notify.KindError)
		return errors.NewValidationError("task title cannot be empty", nil)
	}
	if err := s.taskValidator.ValidateTitle(trimmed); err != nil {
		s.notify("Task title is invalid", notify.KindError)
		return errors.NewValidationError("invalid task title", err)
	}

	// Symmetric with Add: renaming onto another task's title is rejected,
	// renaming a task to itself stays legal.
	if s.findDuplicateLocked(trimmed, task.ID) {
		s.notify("Task already exists", notify.KindError)
		return errors.NewDuplicateError("task title", trimmed)
	}

	updated := task
	updated.Title = trimmed
	if newDueDate != nil {
		updated.DueDate = newDueDate
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}
	if err := s.refreshViewLocked(ctx); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}

	s.notify("Task edited", notify.KindSuccess)
	return nil
}

// ToggleComplete flips the completion flag of the given task
func (s *taskServiceImpl) ToggleComplete(ctx context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := task
	updated.Completed = !task.Completed

	if err := s.repo.Update(ctx, updated); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}

	wasAllComplete := s.allComplete
	if err := s.refreshViewLocked(ctx); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}

	if updated.Completed {
		s.notify("Task completed", notify.KindSuccess)
	} else {
		s.notify("Task marked incomplete", notify.KindError)
	}

	// Celebration is edge-triggered: it fires on the transition into the
	// all-complete state, not on every toggle while it holds.
	if s.allComplete && !wasAllComplete {
		s.notify("All tasks completed!", notify.KindSuccess)
		if s.celebrate != nil {
			s.celebrate()
		}
	}
	return nil
}

// Remove deletes the given task, enforcing the completion gate
func (s *taskServiceImpl) Remove(ctx context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !task.Completed {
		s.notify("You can only delete completed tasks", notify.KindError)
		return errors.NewPolicyError("only completed tasks can be deleted").WithContext("id", task.ID)
	}

	if err := s.repo.Remove(ctx, task.ID); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}
	if err := s.refreshViewLocked(ctx); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}

	s.notify("Task deleted", notify.KindSuccess)
	return nil
}

// RemoveCompleted deletes every completed task in one batch
func (s *taskServiceImpl) RemoveCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := make([]domain.Task, 0, len(s.view))
	var completed []domain.Task
	for _, task := range s.view {
		if task.Completed {
			completed = append(completed, task)
		} else {
			remaining = append(remaining, task)
		}
	}

	if len(completed) == 0 {
		s.notify("No completed tasks to remove", notify.KindDefault)
		return 0, nil
	}

	// The completion gate is implicit here: the set is pre-filtered to
	// completed tasks, so no per-task check is repeated.
	if batch, ok := s.repo.(repository.BatchReplacer); ok {
		if err := batch.SetAll(ctx, remaining); err != nil {
			s.notify(errors.GetUserMessage(err), notify.KindError)
			return 0, err
		}
	} else {
		for _, task := range completed {
			if err := s.repo.Remove(ctx, task.ID); err != nil {
				s.notify(errors.GetUserMessage(err), notify.KindError)
				return 0, err
			}
		}
	}

	if err := s.refreshViewLocked(ctx); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return 0, err
	}

	s.notify("Completed tasks removed", notify.KindSuccess)
	return len(completed), nil
}

// Reorder rewrites the stored order to match ids
func (s *taskServiceImpl) Reorder(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, ok := s.repo.(repository.BatchReplacer)
	if !ok {
		return errors.NewUnsupportedError("batch replace")
	}

	if len(ids) != len(s.view) {
		return errors.NewValidationError("reorder ids must be a permutation of the current tasks", nil)
	}
	byID := make(map[string]domain.Task, len(s.view))
	for _, task := range s.view {
		byID[task.ID] = task
	}
	reordered := make([]domain.Task, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		task, ok := byID[id]
		if !ok || seen[id] {
			return errors.NewValidationError("reorder ids must be a permutation of the current tasks", nil).WithContext("id", id)
		}
		seen[id] = true
		reordered = append(reordered, task)
	}

	if err := batch.SetAll(ctx, reordered); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}
	if err := s.refreshViewLocked(ctx); err != nil {
		s.notify(errors.GetUserMessage(err), notify.KindError)
		return err
	}
	return nil
}

// Filtered returns the cached view narrowed by the filter
func (s *taskServiceImpl) Filtered(filter domain.Filter) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filter.Apply(s.view)
}
