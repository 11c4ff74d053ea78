package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Date
		expectError bool
	}{
		{
			name:     "valid date",
			input:    "2026-03-14",
			expected: NewDate(2026, time.March, 14),
		},
		{
			name:     "first of month",
			input:    "2025-01-01",
			expected: NewDate(2025, time.January, 1),
		},
		{
			name:        "rejects time component",
			input:       "2026-03-14T10:00:00Z",
			expectError: true,
		},
		{
			name:        "rejects invalid day",
			input:       "2026-02-30",
			expectError: true,
		},
		{
			name:        "rejects empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2026-03-14", NewDate(2026, time.March, 14).String())
	assert.Equal(t, "2025-01-02", NewDate(2025, time.January, 2).String())
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, NewDate(2026, time.March, 14).IsZero())
}

func TestDate_JSONRoundTrip(t *testing.T) {
	original := NewDate(2026, time.July, 4)

	data, err := original.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2026-07-04"`, string(data))

	var decoded Date
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, original, decoded)
}

func TestDate_UnmarshalJSONInvalid(t *testing.T) {
	var d Date
	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-date"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`42`)))
}
