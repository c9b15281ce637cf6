package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"task-manager/internal/errors"
)

// CategoryAddCommand handles adding a category
type CategoryAddCommand struct {
	app      *App
	taskForm bool
}

// NewCategoryAddCommand creates a new category add handler. With taskForm set
// the task form opens for the new category once it is added.
func NewCategoryAddCommand(app *App, taskForm bool) *CategoryAddCommand {
	return &CategoryAddCommand{app: app, taskForm: taskForm}
}

// Execute adds the category named by args, or asks for a name when none is
// given. Cancelling the follow-up task form keeps the category.
func (c *CategoryAddCommand) Execute(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		var err error
		name, err = c.app.prompter.PromptCategory()
		if stderrors.Is(err, ErrCancelled) {
			fmt.Fprintln(c.app.out, "Cancelled.")
			return nil
		}
		if err != nil {
			return c.app.errorHandler.Handle("read category name", err)
		}
	}

	if err := c.app.session.AddCategory(ctx, name); err != nil {
		return c.app.errorHandler.Handle("add category", err)
	}

	fmt.Fprintf(c.app.out, "Added category %q (selected)\n", c.app.session.Selected())
	if !c.taskForm {
		return nil
	}

	// The new category is selected, so the form defaults to it
	return NewTaskAddCommand(c.app, nil).Execute(ctx, nil)
}

// CategoryListCommand prints the category selector contents
type CategoryListCommand struct {
	app *App
}

// NewCategoryListCommand creates a new category list handler
func NewCategoryListCommand(app *App) *CategoryListCommand {
	return &CategoryListCommand{app: app}
}

// Execute lists categories in insertion order, marking the selected one
func (c *CategoryListCommand) Execute(ctx context.Context, args []string) error {
	categories := c.app.session.Categories()
	if len(categories) == 0 {
		fmt.Fprintln(c.app.out, "No categories. Add one with 'tm category add'.")
		return nil
	}

	selected := c.app.session.Selected()
	for _, name := range categories {
		marker := " "
		if name == selected {
			marker = "*"
		}
		count := 0
		for range c.app.session.TasksFor(name) {
			count++
		}
		fmt.Fprintf(c.app.out, "%s %s (%d)\n", marker, name, count)
	}
	return nil
}

// CategorySelectCommand changes the active category
type CategorySelectCommand struct {
	app *App
}

// NewCategorySelectCommand creates a new category select handler
func NewCategorySelectCommand(app *App) *CategorySelectCommand {
	return &CategorySelectCommand{app: app}
}

// Execute selects the category named by args
func (c *CategorySelectCommand) Execute(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return c.app.errorHandler.Handle("select category",
			errors.NewInvalidInputError("category", name, "a category name is required"))
	}

	if err := c.app.session.Select(ctx, name); err != nil {
		return c.app.errorHandler.Handle("select category", err)
	}

	fmt.Fprintf(c.app.out, "Selected category %q\n", name)
	return nil
}
