package domain

import (
	"fmt"

	"task-manager/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task at the given position.
func (m *TaskMapper) ToDatabase(position int, task Task) sqlite.Task {
	return sqlite.Task{
		Position:    position,
		TaskID:      task.ID,
		Category:    task.Category,
		Description: task.Description,
		DueDate:     task.DueDateText(),
		Priority:    task.Priority,
		Status:      task.Status,
	}
}

// FromDatabase converts a database Task to a domain Task.
// The stored due date is parsed again so a corrupted row is reported, not loaded.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (Task, error) {
	task, err := NewTask(dbTask.Category, dbTask.TaskID, dbTask.Description, dbTask.DueDate, dbTask.Priority, dbTask.Status)
	if err != nil {
		return Task{}, fmt.Errorf("stored task at position %d: %w", dbTask.Position, err)
	}
	return task, nil
}

// ToDatabaseSlice converts a slice of domain Tasks to database Tasks.
func (m *TaskMapper) ToDatabaseSlice(tasks []Task) []sqlite.Task {
	dbTasks := make([]sqlite.Task, len(tasks))
	for i, task := range tasks {
		dbTasks[i] = m.ToDatabase(i, task)
	}
	return dbTasks
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []sqlite.Task) ([]Task, error) {
	tasks := make([]Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		task, err := m.FromDatabase(dbTask)
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}

// WorkspaceMapper converts whole store snapshots.
type WorkspaceMapper struct {
	Task *TaskMapper
}

// NewWorkspaceMapper creates a new WorkspaceMapper instance.
func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{Task: NewTaskMapper()}
}

// ToDatabase builds a database workspace from ordered categories and tasks.
func (m *WorkspaceMapper) ToDatabase(categories []string, tasks []Task) *sqlite.Workspace {
	ws := &sqlite.Workspace{
		Categories: make([]sqlite.Category, len(categories)),
		Tasks:      m.Task.ToDatabaseSlice(tasks),
	}
	for i, name := range categories {
		ws.Categories[i] = sqlite.Category{Position: i, Name: name}
	}
	return ws
}

// FromDatabase splits a database workspace into ordered categories and tasks.
func (m *WorkspaceMapper) FromDatabase(ws *sqlite.Workspace) ([]string, []Task, error) {
	if ws == nil {
		return nil, nil, nil
	}
	categories := make([]string, len(ws.Categories))
	for i, c := range ws.Categories {
		categories[i] = c.Name
	}
	tasks, err := m.Task.FromDatabaseSlice(ws.Tasks)
	if err != nil {
		return nil, nil, err
	}
	return categories, tasks, nil
}
