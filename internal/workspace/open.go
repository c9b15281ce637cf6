package workspace

import (
	"context"

	"task-manager/internal/config"
	"task-manager/internal/validation"
)

// OpenFromConfig creates the workspace database named by cfg and opens a
// session on it. The caller closes the session.
func OpenFromConfig(ctx context.Context, cfg *config.Config) (*Session, Startup, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, Startup{}, err
	}

	session := NewSession(repo, Options{
		ImportPath: cfg.Import.Path,
		Validator:  validation.NewTaskValidatorWith(validation.NewValidatorWithConfig(cfg)),
	})
	startup, err := session.Open(ctx)
	if err != nil {
		repo.Close()
		return nil, Startup{}, err
	}
	return session, startup, nil
}
