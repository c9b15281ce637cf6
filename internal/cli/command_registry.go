package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"task-manager/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

type registeredCommand struct {
	command Command
	usage   string
}

// CommandRegistry maps the shell's command words to handlers
type CommandRegistry struct {
	commands map[string]registeredCommand
}

// NewCommandRegistry creates a registry with every shell command
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]registeredCommand),
	}

	registry.Register("add-category", "add-category [name]", NewCategoryAddCommand(app, true))
	registry.Register("categories", "categories", NewCategoryListCommand(app))
	registry.Register("select", "select <category>", NewCategorySelectCommand(app))
	registry.Register("add-task", "add-task", NewTaskAddCommand(app, nil))
	registry.Register("list", "list [category]", NewListCommand(app, false))
	registry.Register("export", "export [path]", NewExportCommand(app, ""))
	registry.Register("import", "import <path>", NewImportCommand(app))
	registry.Register("config", "config", NewConfigShowCommand(app.config, app.out))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name, usage string, command Command) {
	r.commands[name] = registeredCommand{command: command, usage: usage}
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	entry, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command, type 'help' for the list")
	}
	return entry.command.Execute(ctx, args)
}

// Names returns the registered command words in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns one usage line per command
func (r *CommandRegistry) GetUsage() string {
	var b strings.Builder
	for _, name := range r.Names() {
		fmt.Fprintf(&b, "  %s\n", r.commands[name].usage)
	}
	b.WriteString("  help\n  quit\n")
	return b.String()
}
