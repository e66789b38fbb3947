// Package backend selects and constructs the persistence backend the
// ledgers write through.
package backend

import (
	"fmt"
	"log/slog"

	"hisab/internal/storage"
)

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function.
type Result struct {
	Store   storage.Store
	Cleanup CleanupFunc
}

// Type represents the kind of persistence backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	FileBackend   Type = "file"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, FileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{SQLiteBackend, FileBackend, MemoryBackend}
}

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// File backend specific
	DataDirectory string
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case FileBackend:
		if c.DataDirectory == "" {
			return fmt.Errorf("data directory is required for file backend")
		}
	case MemoryBackend:
		// Nothing to validate, state lives and dies with the process.
	}

	return nil
}

// New creates the store described by the config.
func New(logger *slog.Logger, config Config) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case FileBackend:
		store, err := storage.NewFileStore(config.DataDirectory)
		if err != nil {
			return nil, fmt.Errorf("initialize file store: %w", err)
		}
		logger.Info("Initialized file backend", "data_directory", config.DataDirectory)
		return &Result{Store: store, Cleanup: nil}, nil

	case MemoryBackend:
		logger.Info("Initialized memory backend")
		return &Result{Store: storage.NewMemoryStore(), Cleanup: nil}, nil
	}

	return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
}
