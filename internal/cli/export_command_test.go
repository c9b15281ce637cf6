package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"task-manager/internal/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("writes csv to the given path", func(t *testing.T) {
		app, out := setupSeededApp(t, "")
		path := filepath.Join(t.TempDir(), "tasks.csv")

		require.NoError(t, NewExportCommand(app, "").Execute(ctx, []string{path}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, strings.Join(persistence.Columns, ","), strings.TrimRight(lines[0], "\r"))
		assert.Equal(t, "Exported 3 tasks to "+path+"\n", out.String())
	})

	t.Run("adds the extension of the default format", func(t *testing.T) {
		app, out := setupSeededApp(t, "")
		path := filepath.Join(t.TempDir(), "tasks")

		require.NoError(t, NewExportCommand(app, "").Execute(ctx, []string{path}))
		assert.FileExists(t, path+".csv")
		assert.Contains(t, out.String(), path+".csv")
	})

	t.Run("format flag wins over extension", func(t *testing.T) {
		app, _ := setupSeededApp(t, "")
		path := filepath.Join(t.TempDir(), "report.out")

		require.NoError(t, NewExportCommand(app, "pdf").Execute(ctx, []string{path}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	})

	t.Run("pipe export reads back", func(t *testing.T) {
		app, _ := setupSeededApp(t, "")
		path := filepath.Join(t.TempDir(), "Tareas.txt")

		require.NoError(t, NewExportCommand(app, "").Execute(ctx, []string{path}))

		records, err := persistence.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("asks for a path with the configured default", func(t *testing.T) {
		app, _ := setupSeededApp(t, "")
		path := filepath.Join(t.TempDir(), "chosen.csv")
		prompter := &stubPrompter{savePath: path}
		app.SetPrompter(prompter)

		require.NoError(t, NewExportCommand(app, "").Execute(ctx, nil))
		assert.Equal(t, "tareas export.csv", prompter.saveDefault)
		assert.FileExists(t, path)
	})

	t.Run("cancelled dialog writes nothing", func(t *testing.T) {
		app, out := setupSeededApp(t, "")
		app.SetPrompter(&stubPrompter{err: ErrCancelled})

		require.NoError(t, NewExportCommand(app, "").Execute(ctx, nil))
		assert.Equal(t, "Export cancelled.\n", out.String())
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		app, _ := setupSeededApp(t, "")
		path := filepath.Join(t.TempDir(), "tasks.csv")

		err := NewExportCommand(app, "xml").Execute(ctx, []string{path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
		assert.NoFileExists(t, path)
	})

	t.Run("reports unwritable path", func(t *testing.T) {
		app, _ := setupSeededApp(t, "")
		path := filepath.Join(t.TempDir(), "missing", "tasks.csv")

		err := NewExportCommand(app, "").Execute(ctx, []string{path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to export tasks")
	})
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".csv", extensionFor(persistence.FormatCSV))
	assert.Equal(t, ".pdf", extensionFor(persistence.FormatPDF))
	assert.Equal(t, ".txt", extensionFor(persistence.FormatPipe))
}
