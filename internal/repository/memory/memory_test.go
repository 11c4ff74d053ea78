package memory

import (
	"context"
	"testing"

	"tasklist/internal/domain"
	"tasklist/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepository_Add(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Task{ID: "1", Title: "one"}))
	require.NoError(t, repo.Add(ctx, domain.Task{ID: "2", Title: "two"}))

	tasks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskRepository_AddDuplicateID(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Task{ID: "1", Title: "one"}))

	err := repo.Add(ctx, domain.Task{ID: "1", Title: "other"})
	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDuplicate))

	tasks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "one", tasks[0].Title)
}

func TestTaskRepository_Remove(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Task{ID: "1", Title: "one"}))
	require.NoError(t, repo.Add(ctx, domain.Task{ID: "2", Title: "two"}))

	require.NoError(t, repo.Remove(ctx, "1"))

	tasks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "2", tasks[0].ID)

	// removing an absent id is a no-op
	require.NoError(t, repo.Remove(ctx, "missing"))
	tasks, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskRepository_Update(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Task{ID: "1", Title: "one"}))

	require.NoError(t, repo.Update(ctx, domain.Task{ID: "1", Title: "renamed", Completed: true}))

	task, err := repo.GetOne(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "renamed", task.Title)
	assert.True(t, task.Completed)

	// updating an absent id is a silent no-op
	require.NoError(t, repo.Update(ctx, domain.Task{ID: "missing", Title: "ghost"}))
	tasks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskRepository_GetOne(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Task{ID: "1", Title: "one"}))

	task, err := repo.GetOne(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "one", task.Title)

	missing, err := repo.GetOne(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTaskRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	repo := New()
	ctx := context.Background()

	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		require.NoError(t, repo.Add(ctx, domain.Task{ID: id, Title: "task " + id}))
	}

	tasks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, id := range ids {
		assert.Equal(t, id, tasks[i].ID)
	}
}

func TestTaskRepository_GetAllReturnsCopy(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Task{ID: "1", Title: "one"}))

	tasks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	tasks[0].Title = "mutated"

	stored, err := repo.GetOne(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "one", stored.Title)
}

func TestTaskRepository_SetAll(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Task{ID: "1", Title: "one"}))

	replacement := []domain.Task{
		{ID: "2", Title: "two"},
		{ID: "3", Title: "three"},
	}
	require.NoError(t, repo.SetAll(ctx, replacement))

	tasks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, tasks)
}

func TestPreferences(t *testing.T) {
	prefs := NewPreferences()
	ctx := context.Background()

	_, ok, err := prefs.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, prefs.Put(ctx, "darkMode", "true"))

	value, ok, err := prefs.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}
