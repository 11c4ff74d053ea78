package validation

import (
	"regexp"
	"strings"
)

// Validator provides common validation utilities
type Validator struct {
	hexColorRegex *regexp.Regexp
}

// NewValidator creates a new base validator
func NewValidator() *Validator {
	return &Validator{
		hexColorRegex: regexp.MustCompile(`^#[0-9a-fA-F]{6}$`),
	}
}

// TrimString trims surrounding whitespace from a string value
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// IsNonEmptyString reports whether the string has content after trimming
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength reports whether the string length is within bounds
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(s)
	return length >= min && length <= max
}

// IsValidHexColor reports whether the string is a #RRGGBB color value
func (v *Validator) IsValidHexColor(s string) bool {
	return v.hexColorRegex.MatchString(s)
}
