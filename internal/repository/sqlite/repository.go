package sqlite

import (
	"context"
	"database/sql"
	"time"

	apperrors "task-manager/internal/errors"
	"task-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const (
	defaultQueryTimeout = 10 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// Repository persists the workspace between command invocations
type Repository interface {
	// Workspace snapshot
	SaveWorkspace(ctx context.Context, ws *Workspace) error
	LoadWorkspace(ctx context.Context) (*Workspace, error)

	// Key/value settings such as the selected category
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// Utility
	Close() error
}

// Options tunes the repository timeouts. Zero values fall back to defaults.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance with default timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a new SQLite repository instance
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = defaultQueryTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewDatabaseError("open database", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SaveWorkspace replaces the stored workspace with ws in a single transaction
func (r *SQLiteRepository) SaveWorkspace(ctx context.Context, ws *Workspace) error {
	ctx, cancel := context.WithTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	if err := Execute(ctx, tx, "clear tasks", `DELETE FROM tasks`); err != nil {
		return err
	}
	if err := Execute(ctx, tx, "clear categories", `DELETE FROM categories`); err != nil {
		return err
	}

	for i, category := range ws.Categories {
		query := `INSERT INTO categories (position, name) VALUES (?, ?)`
		if err := Execute(ctx, tx, "insert category", query, i, category.Name); err != nil {
			return err
		}
	}

	for i, task := range ws.Tasks {
		query := `
		INSERT INTO tasks (position, task_id, category, description, due_date, priority, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
		err := Execute(ctx, tx, "insert task", query,
			i, task.TaskID, task.Category, task.Description, task.DueDate, task.Priority, task.Status)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit workspace", err)
	}
	return nil
}

// LoadWorkspace reads the stored workspace in insertion order
func (r *SQLiteRepository) LoadWorkspace(ctx context.Context) (*Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	categories, err := QueryMultiple(ctx, r.db,
		`SELECT position, name FROM categories ORDER BY position ASC`,
		ScanCategories, "categories")
	if err != nil {
		return nil, err
	}

	tasks, err := QueryMultiple(ctx, r.db, `
	SELECT position, task_id, category, description, due_date, priority, status
	FROM tasks
	ORDER BY position ASC`,
		ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	ws := &Workspace{
		Categories: make([]Category, 0, len(categories)),
		Tasks:      make([]Task, 0, len(tasks)),
	}
	for _, c := range categories {
		ws.Categories = append(ws.Categories, *c)
	}
	for _, t := range tasks {
		ws.Tasks = append(ws.Tasks, *t)
	}
	return ws, nil
}

// GetSetting returns the stored value for key or a not found error
func (r *SQLiteRepository) GetSetting(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	value, err := QuerySingle(ctx, r.db, `SELECT value FROM settings WHERE key = ?`,
		scanString, "setting", key, key)
	if err != nil {
		return "", err
	}
	return *value, nil
}

// SetSetting stores value under key, replacing any previous value
func (r *SQLiteRepository) SetSetting(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO settings (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	return Execute(ctx, r.db, "set setting", query, key, value)
}

func scanString(scanner Scanner) (*string, error) {
	var s string
	if err := scanner.Scan(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
