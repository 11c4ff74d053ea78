package cli

import (
	stderrors "errors"
	"testing"

	"tasklist/internal/errors"
	"tasklist/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler_Handle(t *testing.T) {
	handler := NewErrorHandler()

	t.Run("validation error gets a friendly message", func(t *testing.T) {
		validationErr := validation.NewValidationError()
		validationErr.AddRequiredError("title")

		err := handler.Handle("add task", validationErr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add task")
		assert.Contains(t, err.Error(), "title is required")
	})

	t.Run("app error uses the user message", func(t *testing.T) {
		err := handler.Handle("delete task", errors.NewPolicyError("only completed tasks can be deleted"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only completed tasks can be deleted")
	})

	t.Run("storage errors are genericized", func(t *testing.T) {
		err := handler.Handle("add task", errors.NewStorageError("write tasks", stderrors.New("disk full")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage error")
		assert.NotContains(t, err.Error(), "disk full")
	})

	t.Run("unknown errors are wrapped", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := handler.Handle("do thing", cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
	})
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	handler := NewErrorHandler()

	validationErr := validation.NewValidationError()
	validationErr.AddRequiredError("accent_color")
	err := handler.HandleSimple(validationErr)
	require.Error(t, err)
	assert.Equal(t, "accent_color is required", err.Error())

	plain := stderrors.New("plain")
	assert.Equal(t, plain, handler.HandleSimple(plain))
}
