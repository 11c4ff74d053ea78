package validation

// DefaultTitleMaxLength is the title length cap applied when no explicit
// limit is configured.
const DefaultTitleMaxLength = 255

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
	maxLength int
}

// NewTaskValidator creates a new task validator with the given title length
// limit. A non-positive limit falls back to DefaultTitleMaxLength.
func NewTaskValidator(titleMaxLength int) *TaskValidator {
	if titleMaxLength <= 0 {
		titleMaxLength = DefaultTitleMaxLength
	}
	return &TaskValidator{
		validator: NewValidator(),
		maxLength: titleMaxLength,
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, tv.maxLength) {
		validationError.AddInvalidLengthError("title", trimmed, 1, tv.maxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidTitle returns the trimmed title if valid
func (tv *TaskValidator) ValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimString(title), nil
}
