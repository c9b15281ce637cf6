package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"task-manager/internal/config"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/validation"
	"task-manager/internal/workspace"

	"github.com/stretchr/testify/require"
)

const seedFile = "categoria|id|descripcion|fecha_vencimiento|prioridad|estado\n" +
	"Work|1|Finish report|2024/12/31|High|Pending\n" +
	"Home|2|Buy milk|2025/01/02|Low|Done\n" +
	"Work|3|Email Bob|2025/02/01|Medium|Pending\n"

// setupTestApp opens an empty in-memory workspace and returns an App that
// reads answers from input and writes everything to the returned buffer.
func setupTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	session := workspace.NewSession(repo, workspace.Options{})
	_, err = session.Open(context.Background())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return NewApp(session, config.DefaultConfig(), strings.NewReader(input), out), out
}

// setupSeededApp is setupTestApp with the tasks of seedFile already imported.
func setupSeededApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	app, out := setupTestApp(t, input)
	_, err := app.session.Import(context.Background(), writeFile(t, "Tareas.txt", seedFile))
	require.NoError(t, err)
	out.Reset()
	return app, out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// stubPrompter returns canned answers without reading input.
type stubPrompter struct {
	category string
	task     validation.TaskInput
	savePath string
	err      error

	taskDefaults validation.TaskInput
	saveDefault  string
}

func (p *stubPrompter) PromptCategory() (string, error) {
	return p.category, p.err
}

func (p *stubPrompter) PromptTask(categories []string, defaults validation.TaskInput) (validation.TaskInput, error) {
	p.taskDefaults = defaults
	return p.task, p.err
}

func (p *stubPrompter) PromptSavePath(defaultPath string) (string, error) {
	p.saveDefault = defaultPath
	return p.savePath, p.err
}
