package cli

import (
	"context"
	"fmt"
	"strings"

	"task-manager/internal/errors"
)

// ImportCommand appends the tasks of a pipe-delimited or CSV file
type ImportCommand struct {
	app *App
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{app: app}
}

// Execute imports the file named by args
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	path := strings.TrimSpace(strings.Join(args, " "))
	if path == "" {
		return c.app.errorHandler.Handle("import tasks",
			errors.NewInvalidInputError("path", path, "a file to import is required"))
	}

	n, err := c.app.session.Import(ctx, path)
	if err != nil {
		return c.app.errorHandler.Handle("import tasks", err)
	}

	fmt.Fprintf(c.app.out, "Imported %d tasks from %s\n", n, path)
	return nil
}
