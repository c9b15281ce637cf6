package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"task-manager/internal/logging"
)

// commands after which the task list is shown again
var refreshAfter = map[string]bool{
	"add-category": true,
	"add-task":     true,
	"select":       true,
	"import":       true,
}

// ShellCommand runs the interactive session: one command per line until
// quit or end of input. Errors are printed and the loop continues.
type ShellCommand struct {
	app *App
}

// NewShellCommand creates a new shell handler
func NewShellCommand(app *App) *ShellCommand {
	return &ShellCommand{app: app}
}

// Execute runs the loop
func (c *ShellCommand) Execute(ctx context.Context, args []string) error {
	fmt.Fprintln(c.app.out, "Task manager. Type 'help' for commands, 'quit' to leave.")
	c.refresh(ctx)

	for {
		fmt.Fprint(c.app.out, "tm> ")
		line, err := c.app.in.ReadString('\n')
		if err != nil && !stderrors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			fmt.Fprintln(c.app.out)
			return nil
		}

		name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch name {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprint(c.app.out, "Commands:\n"+c.app.registry.GetUsage())
			continue
		}

		var cmdArgs []string
		if rest = strings.TrimSpace(rest); rest != "" {
			cmdArgs = []string{rest}
		}
		if c.run(ctx, name, cmdArgs) && refreshAfter[name] {
			c.refresh(ctx)
		}
	}
}

func (c *ShellCommand) run(ctx context.Context, name string, args []string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.app.timeout())
	defer cancel()

	if err := c.app.registry.Execute(ctx, name, args); err != nil {
		logging.Debugf("shell: %s failed with %s\n", name, c.app.errorHandler.GetErrorCode(err))
		fmt.Fprintf(c.app.out, "Error: %s\n", c.app.errorHandler.HandleSimple(err))
		return false
	}
	return true
}

func (c *ShellCommand) refresh(ctx context.Context) {
	if c.app.session.Selected() == "" {
		return
	}
	c.run(ctx, "list", nil)
}
