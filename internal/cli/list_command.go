package cli

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// ListCommand prints the task list view
type ListCommand struct {
	app *App
	all bool
}

// NewListCommand creates a new list command handler. With all set every task
// is printed regardless of category.
func NewListCommand(app *App, all bool) *ListCommand {
	return &ListCommand{app: app, all: all}
}

// Execute lists the tasks of the category in args, or of the selected one
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if c.all {
		return c.printTasks("All tasks", func(yield func(domain.Task) bool) {
			for _, task := range c.app.session.Tasks() {
				if !yield(task) {
					return
				}
			}
		})
	}

	category := strings.TrimSpace(strings.Join(args, " "))
	if category == "" {
		category = c.app.session.Selected()
	}
	if category == "" {
		fmt.Fprintln(c.app.out, "No categories. Add one with 'tm category add'.")
		return nil
	}
	if !slices.Contains(c.app.session.Categories(), category) {
		return c.app.errorHandler.Handle("list tasks", errors.NewNotFoundError("category", category))
	}

	return c.printTasks("Category: "+category, c.app.session.TasksFor(category))
}

func (c *ListCommand) printTasks(title string, tasks iter.Seq[domain.Task]) error {
	fmt.Fprintln(c.app.out, title)

	count := 0
	for task := range tasks {
		fmt.Fprintln(c.app.out, task.String())
		count++
	}
	if count == 0 {
		fmt.Fprintln(c.app.out, "No tasks.")
	}
	return nil
}
