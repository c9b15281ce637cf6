package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"

	"task-manager/internal/persistence"
)

// ExportCommand handles "Save as": every task is written to one file
type ExportCommand struct {
	app    *App
	format string
}

// NewExportCommand creates a new export command handler. An empty format
// is inferred from the file extension.
func NewExportCommand(app *App, format string) *ExportCommand {
	return &ExportCommand{app: app, format: format}
}

// Execute writes the export to the path in args, asking for one when missing
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	path := strings.TrimSpace(strings.Join(args, " "))
	if path == "" {
		var err error
		path, err = c.app.prompter.PromptSavePath(c.app.config.Export.DefaultFilename)
		if stderrors.Is(err, ErrCancelled) {
			fmt.Fprintln(c.app.out, "Export cancelled.")
			return nil
		}
		if err != nil {
			return c.app.errorHandler.Handle("export tasks", err)
		}
	}

	format, err := c.resolveFormat(path)
	if err != nil {
		return c.app.errorHandler.Handle("export tasks", err)
	}
	if filepath.Ext(path) == "" {
		path += extensionFor(format)
	}

	if err := c.app.session.Export(path, format); err != nil {
		return c.app.errorHandler.Handle("export tasks", err)
	}

	fmt.Fprintf(c.app.out, "Exported %d tasks to %s\n", len(c.app.session.Tasks()), path)
	return nil
}

// resolveFormat prefers the explicit format, then the extension, then the
// configured default
func (c *ExportCommand) resolveFormat(path string) (persistence.Format, error) {
	if c.format != "" {
		return persistence.ParseFormat(c.format)
	}
	if filepath.Ext(path) != "" {
		return persistence.ExportFormatFromPath(path), nil
	}
	return persistence.ParseFormat(c.app.config.Export.DefaultFormat)
}

func extensionFor(format persistence.Format) string {
	switch format {
	case persistence.FormatPDF:
		return ".pdf"
	case persistence.FormatPipe:
		return ".txt"
	default:
		return ".csv"
	}
}
