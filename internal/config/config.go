package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Storage backends selectable via configuration.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all configuration options for the task list application
type Config struct {
	Storage       StorageConfig
	Validation    ValidationConfig
	Notifications NotificationsConfig
	Application   ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Backend        string `env:"TL_STORAGE_BACKEND"`
	Dir            string `env:"TL_STORAGE_DIR"`
	Filename       string `env:"TL_STORAGE_FILENAME"`
	DirPermissions uint32 `env:"TL_STORAGE_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength int `env:"TL_VALIDATION_TITLE_MAX"`
}

// NotificationsConfig holds notification display configuration
type NotificationsConfig struct {
	MaxVisible int `env:"TL_NOTIFY_MAX_VISIBLE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TL_APP_TIMEOUT"`
	Verbose bool          `env:"TL_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".tasklist")

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            defaultDir,
			Filename:       "tasks.db",
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMaxLength: 255,
		},
		Notifications: NotificationsConfig{
			MaxVisible: 2,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStoragePath returns the full path to the database file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("TL_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("TL_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TL_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("TL_STORAGE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	if maxLen := os.Getenv("TL_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}

	if maxVisible := os.Getenv("TL_NOTIFY_MAX_VISIBLE"); maxVisible != "" {
		if n, err := strconv.Atoi(maxVisible); err == nil {
			c.Notifications.MaxVisible = n
		}
	}

	if timeout := os.Getenv("TL_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TL_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend %q: expected %s or %s", c.Storage.Backend, BackendSQLite, BackendMemory)
	}
	if c.Storage.Backend == BackendSQLite {
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage directory cannot be empty")
		}
		if c.Storage.Filename == "" {
			return fmt.Errorf("storage filename cannot be empty")
		}
	}
	if c.Validation.TitleMaxLength <= 0 {
		return fmt.Errorf("title max length must be positive, got %d", c.Validation.TitleMaxLength)
	}
	if c.Notifications.MaxVisible <= 0 {
		return fmt.Errorf("max visible notifications must be positive, got %d", c.Notifications.MaxVisible)
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive, got %v", c.Application.Timeout)
	}
	return nil
}

// Load creates a configuration from defaults and the environment
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
