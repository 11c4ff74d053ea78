package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		maxLength   int
		expectError bool
	}{
		{
			name:  "valid title",
			title: "Buy milk",
		},
		{
			name:  "single character title",
			title: "T",
		},
		{
			name:  "title with surrounding whitespace",
			title: "  Buy milk  ",
		},
		{
			name:        "empty title",
			title:       "",
			expectError: true,
		},
		{
			name:        "whitespace-only title",
			title:       "   ",
			expectError: true,
		},
		{
			name:        "title over default limit",
			title:       strings.Repeat("a", 300),
			expectError: true,
		},
		{
			name:        "title over configured limit",
			title:       strings.Repeat("a", 20),
			maxLength:   10,
			expectError: true,
		},
		{
			name:      "title at configured limit",
			title:     strings.Repeat("a", 10),
			maxLength: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewTaskValidator(tt.maxLength)
			err := validator.ValidateTitle(tt.title)
			if tt.expectError {
				assert.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.NotEmpty(t, validationErr.GetUserFriendlyMessage())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskValidator_ValidTitle(t *testing.T) {
	validator := NewTaskValidator(0)

	trimmed, err := validator.ValidTitle("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", trimmed)

	_, err = validator.ValidTitle("   ")
	assert.Error(t, err)
}

func TestThemeValidator_ValidateAccentColor(t *testing.T) {
	tests := []struct {
		name        string
		color       string
		expectError bool
	}{
		{name: "valid lowercase", color: "#3b82f6"},
		{name: "valid uppercase", color: "#3B82F6"},
		{name: "missing hash", color: "3b82f6", expectError: true},
		{name: "short form", color: "#fff", expectError: true},
		{name: "invalid characters", color: "#zzzzzz", expectError: true},
		{name: "empty", color: "", expectError: true},
	}

	validator := NewThemeValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateAccentColor(tt.color)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
