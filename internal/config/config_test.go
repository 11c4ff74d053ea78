package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "tasks.db", cfg.Storage.Filename)
	assert.Equal(t, 255, cfg.Validation.TitleMaxLength)
	assert.Equal(t, 2, cfg.Notifications.MaxVisible)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TL_STORAGE_BACKEND", "memory")
	t.Setenv("TL_STORAGE_DIR", "/tmp/tasklist-test")
	t.Setenv("TL_STORAGE_FILENAME", "other.db")
	t.Setenv("TL_VALIDATION_TITLE_MAX", "100")
	t.Setenv("TL_NOTIFY_MAX_VISIBLE", "5")
	t.Setenv("TL_APP_TIMEOUT", "30s")
	t.Setenv("TL_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/tasklist-test", cfg.Storage.Dir)
	assert.Equal(t, "other.db", cfg.Storage.Filename)
	assert.Equal(t, 100, cfg.Validation.TitleMaxLength)
	assert.Equal(t, 5, cfg.Notifications.MaxVisible)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironmentIgnoresInvalidValues(t *testing.T) {
	t.Setenv("TL_VALIDATION_TITLE_MAX", "not-a-number")
	t.Setenv("TL_APP_TIMEOUT", "not-a-duration")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 255, cfg.Validation.TitleMaxLength)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "memory backend does not need a path",
			mutate: func(c *Config) { c.Storage.Backend = BackendMemory; c.Storage.Dir = "" },
		},
		{
			name:        "unknown backend",
			mutate:      func(c *Config) { c.Storage.Backend = "redis" },
			expectError: true,
		},
		{
			name:        "sqlite without directory",
			mutate:      func(c *Config) { c.Storage.Dir = "" },
			expectError: true,
		},
		{
			name:        "sqlite without filename",
			mutate:      func(c *Config) { c.Storage.Filename = "" },
			expectError: true,
		},
		{
			name:        "non-positive title limit",
			mutate:      func(c *Config) { c.Validation.TitleMaxLength = 0 },
			expectError: true,
		},
		{
			name:        "non-positive notification cap",
			mutate:      func(c *Config) { c.Notifications.MaxVisible = 0 },
			expectError: true,
		},
		{
			name:        "non-positive timeout",
			mutate:      func(c *Config) { c.Application.Timeout = 0 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRepositories_Memory(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Backend = BackendMemory

	repo, prefs, err := CreateRepositories(cfg)
	require.NoError(t, err)
	require.NotNil(t, repo)
	require.NotNil(t, prefs)
	defer repo.Close()
}

func TestCreateRepositories_SQLite(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = t.TempDir()

	repo, prefs, err := CreateRepositories(cfg)
	require.NoError(t, err)
	require.NotNil(t, repo)
	require.NotNil(t, prefs)
	defer repo.Close()
}
