package config

import (
	"fmt"
	"os"

	"tasklist/internal/repository"
	"tasklist/internal/repository/memory"
	"tasklist/internal/repository/sqlite"
)

// CreateRepositories creates the task repository and preferences store for
// the configured backend. With the sqlite backend both share one store, so
// closing the task repository also closes the preferences.
func CreateRepositories(cfg *Config) (repository.TaskRepository, repository.Preferences, error) {
	switch cfg.Storage.Backend {
	case BackendMemory:
		return memory.New(), memory.NewPreferences(), nil
	case BackendSQLite:
		if err := os.MkdirAll(cfg.Storage.Dir, os.FileMode(cfg.Storage.DirPermissions)); err != nil {
			return nil, nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		store, err := sqlite.Open(cfg.GetStoragePath())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return sqlite.NewTaskRepository(store), store, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// CreateTestRepositories creates in-memory stores for testing
func CreateTestRepositories() (repository.TaskRepository, repository.Preferences) {
	return memory.New(), memory.NewPreferences()
}
