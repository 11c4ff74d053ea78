package domain

import "strings"

// Task represents a single to-do item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   *Date  `json:"dueDate,omitempty"`
}

// NewTask creates a new Task with the given id, title and optional due date.
// Tasks always start out incomplete.
func NewTask(id, title string, dueDate *Date) Task {
	return Task{
		ID:      id,
		Title:   title,
		DueDate: dueDate,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && strings.TrimSpace(t.Title) != ""
}

// TitleEquals reports whether the task's title matches other after trimming
// and case folding. This is the equality used for duplicate detection.
func (t Task) TitleEquals(other string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Title), strings.TrimSpace(other))
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
