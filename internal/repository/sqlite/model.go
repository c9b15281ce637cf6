package sqlite

// Category is a stored category label. Position keeps the insertion order.
type Category struct {
	Position int
	Name     string
}

// Task is a stored task row. DueDate holds the YYYY/MM/DD text form.
type Task struct {
	Position    int
	TaskID      int
	Category    string
	Description string
	DueDate     string
	Priority    string
	Status      string
}

// Workspace is the full content of a task store at one point in time.
type Workspace struct {
	Categories []Category
	Tasks      []Task
}

// IsEmpty reports whether the workspace holds neither categories nor tasks.
func (w *Workspace) IsEmpty() bool {
	return w == nil || (len(w.Categories) == 0 && len(w.Tasks) == 0)
}
