package config

import (
	"fmt"
	"os"

	"task-manager/internal/repository/sqlite"
)

// CreateRepository opens the workspace database named by the configuration,
// creating its directory when needed
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Workspace.Dir, os.FileMode(config.Workspace.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create workspace directory: %w", err)
	}

	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize workspace database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
