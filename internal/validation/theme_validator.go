package validation

// ThemeValidator provides validation for theme preference values
type ThemeValidator struct {
	validator *Validator
}

// NewThemeValidator creates a new theme validator
func NewThemeValidator() *ThemeValidator {
	return &ThemeValidator{
		validator: NewValidator(),
	}
}

// ValidateAccentColor validates a #RRGGBB accent color value
func (tv *ThemeValidator) ValidateAccentColor(color string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(color) {
		validationError.AddRequiredError("accent_color")
		return validationError
	}

	if !tv.validator.IsValidHexColor(color) {
		validationError.AddInvalidFormatError("accent_color", color, "#RRGGBB")
		return validationError
	}

	return nil
}
