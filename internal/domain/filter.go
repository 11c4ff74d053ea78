package domain

import "fmt"

// Filter selects a subset of tasks by completion state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter converts a user-supplied string to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterActive, FilterCompleted:
		return Filter(s), nil
	case "done":
		// CLI shorthand
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("unknown filter %q: expected all, active or completed", s)
	}
}

// Apply returns the tasks matching the filter. The input is not modified and
// the relative order of tasks is preserved.
func (f Filter) Apply(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		switch f {
		case FilterActive:
			if !task.Completed {
				result = append(result, task)
			}
		case FilterCompleted:
			if task.Completed {
				result = append(result, task)
			}
		default:
			result = append(result, task)
		}
	}
	return result
}
