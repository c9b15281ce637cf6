package domain

import (
	"fmt"
	"time"
)

// DueDateLayout is the format due dates are written in by every file format and view.
const DueDateLayout = "2006/01/02"

// dueDateInputLayout also accepts single-digit months and days, e.g. 2024/1/5.
const dueDateInputLayout = "2006/1/2"

// Task represents a single work item in the domain model.
// Tasks are never mutated after creation.
type Task struct {
	Category    string
	ID          int
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
}

// NewTask creates a Task, parsing dueDate with DueDateLayout.
func NewTask(category string, id int, description, dueDate, priority, status string) (Task, error) {
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return Task{}, err
	}
	return Task{
		Category:    category,
		ID:          id,
		Description: description,
		DueDate:     due,
		Priority:    priority,
		Status:      status,
	}, nil
}

// ParseDueDate parses a YYYY/MM/DD date; the month and day may have one digit.
// Out-of-range days and months are rejected.
func ParseDueDate(s string) (time.Time, error) {
	return time.Parse(dueDateInputLayout, s)
}

// FormatDueDate renders a due date back to YYYY/MM/DD.
func FormatDueDate(t time.Time) string {
	return t.Format(DueDateLayout)
}

// DueDateText returns the task's due date in YYYY/MM/DD form.
func (t Task) DueDateText() string {
	return FormatDueDate(t.DueDate)
}

// String returns the line shown in the task list view.
func (t Task) String() string {
	return fmt.Sprintf("ID: %d, Description: %s, Due Date: %s, Priority: %s, Status: %s, Category: %s",
		t.ID, t.Description, t.DueDateText(), t.Priority, t.Status, t.Category)
}
