package cli

import (
	"bytes"
	"testing"

	"tasklist/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestTerminalNotifier_Show(t *testing.T) {
	tests := []struct {
		name     string
		kind     notify.Kind
		expected string
	}{
		{name: "success", kind: notify.KindSuccess, expected: "✓ message\n"},
		{name: "error", kind: notify.KindError, expected: "✗ message\n"},
		{name: "loading", kind: notify.KindLoading, expected: "… message\n"},
		{name: "default", kind: notify.KindDefault, expected: "• message\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			notifier := NewTerminalNotifier(buf)

			handle := notifier.Show("message", tt.kind)

			assert.Equal(t, tt.expected, buf.String())
			assert.NotEmpty(t, handle)
		})
	}
}

func TestTerminalNotifier_HandlesAreUnique(t *testing.T) {
	notifier := NewTerminalNotifier(&bytes.Buffer{})

	first := notifier.Show("one", notify.KindDefault)
	second := notifier.Show("two", notify.KindDefault)

	assert.NotEqual(t, first, second)

	// dismiss is a no-op but must be safe to call
	notifier.Dismiss(first)
	notifier.Dismiss(notify.Handle("unknown"))
}
