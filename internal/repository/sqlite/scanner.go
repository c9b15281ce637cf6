package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanCategory scans a single category from a database row
func ScanCategory(scanner Scanner) (*Category, error) {
	category := &Category{}
	if err := scanner.Scan(&category.Position, &category.Name); err != nil {
		return nil, err
	}
	return category, nil
}

// ScanCategories scans multiple categories from database rows
func ScanCategories(rows Rows) ([]*Category, error) {
	return scanAll(rows, ScanCategory)
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	err := scanner.Scan(
		&task.Position,
		&task.TaskID,
		&task.Category,
		&task.Description,
		&task.DueDate,
		&task.Priority,
		&task.Status,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return scanAll(rows, ScanTask)
}

func scanAll[T any](rows Rows, scanOne func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		item, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
