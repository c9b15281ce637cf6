// Package workspace holds the application context shared by every command: the
// task store, the active category selection and the workspace snapshot that
// carries both between invocations.
package workspace

import (
	"context"
	"iter"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/persistence"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/store"
	"task-manager/internal/validation"
)

// SettingSelectedCategory is the settings key of the active category.
const SettingSelectedCategory = "selected_category"

// Options configures a Session.
type Options struct {
	// ImportPath is loaded into an empty workspace by Open. Empty disables it.
	ImportPath string
	Validator  *validation.TaskValidator
}

// Startup describes what Open did.
type Startup struct {
	Restored   int
	Imported   int
	ImportPath string
	// Warning is set when the startup import failed. The session is usable.
	Warning error
}

// Session is the application context: constructed once, then handed to
// whichever interactive layer drives it.
type Session struct {
	repo       sqlite.Repository
	store      *store.Store
	mapper     *domain.WorkspaceMapper
	validator  *validation.TaskValidator
	importPath string
	selected   string
}

// NewSession creates a session backed by repo. Call Open before use.
func NewSession(repo sqlite.Repository, opts Options) *Session {
	validator := opts.Validator
	if validator == nil {
		validator = validation.NewTaskValidator()
	}
	return &Session{
		repo:       repo,
		store:      store.New(),
		mapper:     domain.NewWorkspaceMapper(),
		validator:  validator,
		importPath: opts.ImportPath,
	}
}

// Open restores the last workspace. An empty workspace is seeded from the
// import file; failing to read it is reported as a warning, not an error.
// The first category is selected when nothing else is.
func (s *Session) Open(ctx context.Context) (Startup, error) {
	var startup Startup

	ws, err := s.repo.LoadWorkspace(ctx)
	if err != nil {
		return startup, err
	}
	categories, tasks, err := s.mapper.FromDatabase(ws)
	if err != nil {
		return startup, apperrors.WrapError(err, apperrors.ErrorTypeDatabase, "workspace snapshot is corrupted")
	}
	s.store.Restore(categories, tasks)
	startup.Restored = len(tasks)

	selected, err := s.repo.GetSetting(ctx, SettingSelectedCategory)
	if err != nil && !apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) {
		return startup, err
	}
	if s.store.HasCategory(selected) {
		s.selected = selected
	}

	dirty := false
	if ws.IsEmpty() && s.importPath != "" {
		startup.ImportPath = s.importPath
		n, err := s.store.LoadFromFile(s.importPath)
		if err != nil {
			logging.Debugf("startup import of %s failed: %v\n", s.importPath, err)
			startup.Warning = err
		} else {
			startup.Imported = n
			dirty = true
		}
	}

	if s.selectFirstIfNone() {
		dirty = true
	}
	if dirty {
		if err := s.Save(ctx); err != nil {
			return startup, err
		}
	}

	return startup, nil
}

// AddCategory registers a new category, makes it the active selection and
// saves the workspace.
func (s *Session) AddCategory(ctx context.Context, name string) error {
	if err := s.validator.ValidateCategoryName(name); err != nil {
		return err
	}
	if err := s.store.AddCategory(name); err != nil {
		return err
	}
	s.selected = name
	return s.Save(ctx)
}

// AddTask validates a submitted task form, appends the task and saves the
// workspace. The category must already exist.
func (s *Session) AddTask(ctx context.Context, input validation.TaskInput) (domain.Task, error) {
	input = s.validator.Normalize(input)
	if err := s.validator.ValidateTask(input, s.store.Categories()); err != nil {
		return domain.Task{}, err
	}

	task, err := s.store.AddTask(input.Category, input.Description, input.DueDate, input.Priority, input.Status)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.Save(ctx); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Select makes name the active category.
func (s *Session) Select(ctx context.Context, name string) error {
	if !s.store.HasCategory(name) {
		return apperrors.NewNotFoundError("category", name)
	}
	s.selected = name
	return s.repo.SetSetting(ctx, SettingSelectedCategory, name)
}

// Selected returns the active category, or "" when there are no categories.
func (s *Session) Selected() string {
	return s.selected
}

// Categories returns the known categories in insertion order.
func (s *Session) Categories() []string {
	return s.store.Categories()
}

// Tasks returns every task in insertion order.
func (s *Session) Tasks() []domain.Task {
	return s.store.Tasks()
}

// TasksFor returns the tasks of one category.
func (s *Session) TasksFor(category string) iter.Seq[domain.Task] {
	return s.store.TasksForCategory(category)
}

// VisibleTasks returns the tasks of the active category.
func (s *Session) VisibleTasks() iter.Seq[domain.Task] {
	return s.store.TasksForCategory(s.selected)
}

// TaskValidator exposes the validator used for forms.
func (s *Session) TaskValidator() *validation.TaskValidator {
	return s.validator
}

// Import appends the tasks of path and saves the workspace.
func (s *Session) Import(ctx context.Context, path string) (int, error) {
	n, err := s.store.LoadFromFile(path)
	if err != nil {
		return 0, err
	}
	s.selectFirstIfNone()
	if err := s.Save(ctx); err != nil {
		return 0, err
	}
	return n, nil
}

// Export writes every task to path in the given format, replacing the file.
func (s *Session) Export(path string, format persistence.Format) error {
	return s.store.ExportToFileAs(path, format)
}

// Save writes the workspace snapshot and the active selection.
func (s *Session) Save(ctx context.Context) error {
	ws := s.mapper.ToDatabase(s.store.Categories(), s.store.Tasks())
	if err := s.repo.SaveWorkspace(ctx, ws); err != nil {
		return err
	}
	if err := s.repo.SetSetting(ctx, SettingSelectedCategory, s.selected); err != nil {
		return err
	}
	logging.Debugln("saved workspace:", len(ws.Tasks), "tasks in", len(ws.Categories), "categories")
	return nil
}

func (s *Session) selectFirstIfNone() bool {
	if s.selected != "" {
		return false
	}
	categories := s.store.Categories()
	if len(categories) == 0 {
		return false
	}
	s.selected = categories[0]
	return true
}

// Close releases the workspace database.
func (s *Session) Close() error {
	return s.repo.Close()
}
