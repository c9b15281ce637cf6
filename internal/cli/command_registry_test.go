package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommandRegistry(t *testing.T) {
	app, _ := setupTestApp(t, "")

	registry := NewCommandRegistry(app)

	assert.Equal(t, []string{
		"add-category",
		"add-task",
		"categories",
		"config",
		"export",
		"import",
		"list",
		"select",
	}, registry.Names())
}

func TestCommandRegistry_Execute(t *testing.T) {
	app, out := setupTestApp(t, "")
	registry := NewCommandRegistry(app)
	ctx := context.Background()

	t.Run("executes add-category command", func(t *testing.T) {
		err := registry.Execute(ctx, "add-category", []string{"Work"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Work"}, app.session.Categories())
	})

	t.Run("executes list command", func(t *testing.T) {
		out.Reset()
		err := registry.Execute(ctx, "list", nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Category: Work")
	})

	t.Run("executes config command", func(t *testing.T) {
		out.Reset()
		err := registry.Execute(ctx, "config", nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "default_format: csv")
	})

	t.Run("handles unknown command", func(t *testing.T) {
		err := registry.Execute(ctx, "unknown", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown command")
	})
}

func TestCommandRegistry_Register(t *testing.T) {
	app, _ := setupTestApp(t, "")
	registry := NewCommandRegistry(app)

	called := false
	registry.Register("ping", "ping", commandFunc(func(ctx context.Context, args []string) error {
		called = true
		return nil
	}))

	require.NoError(t, registry.Execute(context.Background(), "ping", nil))
	assert.True(t, called)
	assert.Contains(t, registry.GetUsage(), "  ping\n")
}

func TestCommandRegistry_GetUsage(t *testing.T) {
	app, _ := setupTestApp(t, "")
	usage := NewCommandRegistry(app).GetUsage()

	assert.Contains(t, usage, "  add-category [name]\n")
	assert.Contains(t, usage, "  select <category>\n")
	assert.Contains(t, usage, "  help\n  quit\n")
}

type commandFunc func(ctx context.Context, args []string) error

func (f commandFunc) Execute(ctx context.Context, args []string) error {
	return f(ctx, args)
}
