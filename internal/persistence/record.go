// Package persistence reads and writes task lists in the flat-file formats:
// the pipe-delimited import format, CSV and a printable PDF report.
package persistence

import (
	"strings"

	apperrors "task-manager/internal/errors"
)

// Column names shared by the import and export formats.
const (
	FieldCategory    = "categoria"
	FieldID          = "id"
	FieldDescription = "descripcion"
	FieldDueDate     = "fecha_vencimiento"
	FieldPriority    = "prioridad"
	FieldStatus      = "estado"
)

// Columns is the fixed column order of the export format.
var Columns = []string{FieldCategory, FieldID, FieldDescription, FieldDueDate, FieldPriority, FieldStatus}

// Record is one data line of an imported file with every column present.
// Values are raw text; turning them into a task is the store's job.
type Record struct {
	Line        int
	Category    string
	ID          string
	Description string
	DueDate     string
	Priority    string
	Status      string
}

// header maps column names to their position in a data line.
type header map[string]int

func newHeader(line int, names []string) (header, error) {
	h := make(header, len(names))
	for i, name := range names {
		h[name] = i
	}
	for _, col := range Columns {
		if _, ok := h[col]; !ok {
			return nil, apperrors.NewRecordError(line, col, "missing column in header")
		}
	}
	return h, nil
}

func (h header) record(line int, fields []string) (Record, error) {
	values := make(map[string]string, len(Columns))
	for _, col := range Columns {
		i := h[col]
		if i >= len(fields) {
			return Record{}, apperrors.NewRecordError(line, col, "missing value")
		}
		values[col] = fields[i]
	}
	return Record{
		Line:        line,
		Category:    values[FieldCategory],
		ID:          values[FieldID],
		Description: values[FieldDescription],
		DueDate:     values[FieldDueDate],
		Priority:    values[FieldPriority],
		Status:      values[FieldStatus],
	}, nil
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
