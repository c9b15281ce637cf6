// Package store holds the in-memory task list and the set of known
// categories. It has no knowledge of how forms are presented.
package store

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/persistence"
)

// Store is the ordered task sequence plus the ordered category set.
// Tasks are append-only and keep insertion order.
type Store struct {
	categories []string
	tasks      []domain.Task
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// AddCategory appends name to the category set. Names are compared exactly,
// so "Work" and "work" are different categories.
func (s *Store) AddCategory(name string) error {
	if s.HasCategory(name) {
		return apperrors.NewDuplicateError("category", name)
	}
	s.categories = append(s.categories, name)
	return nil
}

// AddTask appends a task with ID Len()+1. A due date that is not a valid
// YYYY/MM/DD calendar date is rejected and no ID is consumed.
func (s *Store) AddTask(category, description, dueDate, priority, status string) (domain.Task, error) {
	task, err := domain.NewTask(category, s.Len()+1, description, dueDate, priority, status)
	if err != nil {
		return domain.Task{}, apperrors.NewParseError("due date", dueDate, err)
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// TasksForCategory yields the tasks filed under name in insertion order.
// The sequence reads the store when ranged over and can be ranged again.
func (s *Store) TasksForCategory(name string) iter.Seq[domain.Task] {
	return func(yield func(domain.Task) bool) {
		for _, task := range s.tasks {
			if task.Category != name {
				continue
			}
			if !yield(task) {
				return
			}
		}
	}
}

// Tasks returns a copy of every task in insertion order.
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

// Categories returns a copy of the category set in insertion order.
func (s *Store) Categories() []string {
	return slices.Clone(s.categories)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// HasCategory reports whether name is a known category.
func (s *Store) HasCategory(name string) bool {
	return slices.Contains(s.categories, name)
}

// Restore replaces both collections, typically from a workspace snapshot.
func (s *Store) Restore(categories []string, tasks []domain.Task) {
	s.categories = slices.Clone(categories)
	s.tasks = slices.Clone(tasks)
}

// LoadFromFile appends the tasks of an import file and registers their
// categories in first-seen order. It returns the number of tasks loaded.
// On any error, including a missing file, the store is left unchanged.
func (s *Store) LoadFromFile(path string) (int, error) {
	records, err := persistence.ReadFile(path)
	if err != nil {
		return 0, err
	}
	n, err := s.Load(records)
	if err != nil {
		return 0, err
	}
	logging.Debugf("loaded %d tasks from %s\n", n, path)
	return n, nil
}

// Load converts every record before touching the store, so a bad line
// anywhere leaves it as it was. IDs are taken from the records as they are.
func (s *Store) Load(records []persistence.Record) (int, error) {
	tasks := make([]domain.Task, 0, len(records))
	for _, rec := range records {
		task, err := taskFromRecord(rec)
		if err != nil {
			return 0, err
		}
		tasks = append(tasks, task)
	}

	for _, task := range tasks {
		if !s.HasCategory(task.Category) {
			s.categories = append(s.categories, task.Category)
		}
	}
	s.tasks = append(s.tasks, tasks...)
	return len(tasks), nil
}

// ExportToFile writes every task to path as CSV, replacing any existing file.
func (s *Store) ExportToFile(path string) error {
	return s.ExportToFileAs(path, persistence.FormatCSV)
}

// ExportToFileAs writes every task to path in the given format.
func (s *Store) ExportToFileAs(path string, format persistence.Format) error {
	return persistence.WriteFile(path, format, s.tasks)
}

func taskFromRecord(rec persistence.Record) (domain.Task, error) {
	if rec.Category == "" {
		return domain.Task{}, apperrors.NewRecordError(rec.Line, persistence.FieldCategory, "empty value")
	}

	id, err := strconv.Atoi(strings.TrimSpace(rec.ID))
	if err != nil {
		recErr := apperrors.NewRecordError(rec.Line, persistence.FieldID, "not an integer: "+strconv.Quote(rec.ID))
		recErr.Cause = err
		return domain.Task{}, recErr
	}

	task, err := domain.NewTask(rec.Category, id, rec.Description, strings.TrimSpace(rec.DueDate), rec.Priority, rec.Status)
	if err != nil {
		recErr := apperrors.NewRecordError(rec.Line, persistence.FieldDueDate, "expected YYYY/MM/DD, got "+strconv.Quote(rec.DueDate))
		recErr.Cause = err
		return domain.Task{}, recErr
	}
	return task, nil
}
