package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"task-manager/internal/validation"
)

// TaskFlags holds task fields given on the command line
type TaskFlags struct {
	Description string
	DueDate     string
	Priority    string
	Status      string
	Category    string
}

// complete reports whether the flags are enough to skip the form
func (f *TaskFlags) complete() bool {
	return f != nil && f.Description != "" && f.DueDate != ""
}

// TaskAddCommand handles the task form
type TaskAddCommand struct {
	app   *App
	flags *TaskFlags
}

// NewTaskAddCommand creates a new task add handler. flags may be nil.
func NewTaskAddCommand(app *App, flags *TaskFlags) *TaskAddCommand {
	return &TaskAddCommand{app: app, flags: flags}
}

// Execute adds a task. Without a description and a due date on the command
// line the form is shown, pre-filled with whatever flags were given.
func (c *TaskAddCommand) Execute(ctx context.Context, args []string) error {
	input := validation.TaskInput{Category: c.app.session.Selected()}
	if c.flags != nil {
		input.Description = c.flags.Description
		input.DueDate = c.flags.DueDate
		input.Priority = c.flags.Priority
		input.Status = c.flags.Status
		if c.flags.Category != "" {
			input.Category = c.flags.Category
		}
	}

	if !c.flags.complete() {
		var err error
		input, err = c.app.prompter.PromptTask(c.app.session.Categories(), input)
		if stderrors.Is(err, ErrCancelled) {
			fmt.Fprintln(c.app.out, "Cancelled.")
			return nil
		}
		if err != nil {
			return c.app.errorHandler.Handle("add task", err)
		}
	}

	task, err := c.app.session.AddTask(ctx, input)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added %s\n", task)
	return nil
}
