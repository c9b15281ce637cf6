package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("appends tasks and selects the first category", func(t *testing.T) {
		app, out := setupTestApp(t, "")
		path := writeFile(t, "Tareas.txt", seedFile)

		require.NoError(t, NewImportCommand(app).Execute(ctx, []string{path}))

		assert.Equal(t, "Imported 3 tasks from "+path+"\n", out.String())
		assert.Equal(t, []string{"Work", "Home"}, app.session.Categories())
		assert.Equal(t, "Work", app.session.Selected())
	})

	t.Run("keeps existing categories and selection", func(t *testing.T) {
		app, _ := setupTestApp(t, "")
		require.NoError(t, app.session.AddCategory(ctx, "Home"))

		require.NoError(t, NewImportCommand(app).Execute(ctx, []string{writeFile(t, "Tareas.txt", seedFile)}))
		assert.Equal(t, []string{"Home", "Work"}, app.session.Categories())
		assert.Equal(t, "Home", app.session.Selected())
	})

	t.Run("reads csv exports", func(t *testing.T) {
		app, _ := setupTestApp(t, "")
		path := writeFile(t, "tasks.csv",
			"categoria,id,descripcion,fecha_vencimiento,prioridad,estado\n"+
				"Work,1,\"Report, final\",2024/12/31,High,Pending\n")

		require.NoError(t, NewImportCommand(app).Execute(ctx, []string{path}))
		require.Len(t, app.session.Tasks(), 1)
		assert.Equal(t, "Report, final", app.session.Tasks()[0].Description)
	})

	t.Run("malformed file changes nothing", func(t *testing.T) {
		app, _ := setupTestApp(t, "")
		path := writeFile(t, "Tareas.txt",
			"categoria|id|descripcion|fecha_vencimiento|prioridad|estado\n"+
				"Work|1|Finish report|2024/12/31|High|Pending\n"+
				"Work|x|Broken|2024/12/31|High|Pending\n")

		err := NewImportCommand(app).Execute(ctx, []string{path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
		assert.Empty(t, app.session.Tasks())
		assert.Empty(t, app.session.Categories())
	})

	t.Run("reports missing file", func(t *testing.T) {
		app, _ := setupTestApp(t, "")

		err := NewImportCommand(app).Execute(ctx, []string{filepath.Join(t.TempDir(), "none.txt")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file not found")
	})

	t.Run("requires a path", func(t *testing.T) {
		app, _ := setupTestApp(t, "")

		err := NewImportCommand(app).Execute(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a file to import is required")
	})
}
