package persistence

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPipe(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Record
	}{
		{
			name:  "canonical header and one line",
			input: "categoria|id|descripcion|fecha_vencimiento|prioridad|estado\nWork|1|Finish report|2024/12/31|High|Pending\n",
			expected: []Record{
				{Line: 2, Category: "Work", ID: "1", Description: "Finish report", DueDate: "2024/12/31", Priority: "High", Status: "Pending"},
			},
		},
		{
			name:  "columns in a different order",
			input: "id|estado|categoria|prioridad|fecha_vencimiento|descripcion\n7|Done|Home|Low|2025/01/02|Buy milk\n",
			expected: []Record{
				{Line: 2, Category: "Home", ID: "7", Description: "Buy milk", DueDate: "2025/01/02", Priority: "Low", Status: "Done"},
			},
		},
		{
			name:  "windows line endings, blank lines and byte order mark",
			input: "\ufeffcategoria|id|descripcion|fecha_vencimiento|prioridad|estado\r\n\r\nWork|1|A|2024/01/01|High|Pending\r\n\r\nHome|2|B|2024/01/02|Low|Done\r\n",
			expected: []Record{
				{Line: 3, Category: "Work", ID: "1", Description: "A", DueDate: "2024/01/01", Priority: "High", Status: "Pending"},
				{Line: 5, Category: "Home", ID: "2", Description: "B", DueDate: "2024/01/02", Priority: "Low", Status: "Done"},
			},
		},
		{
			name:  "extra columns are ignored",
			input: "categoria|id|descripcion|fecha_vencimiento|prioridad|estado|notas\nWork|1|A|2024/01/01|High|Pending|ignored\n",
			expected: []Record{
				{Line: 2, Category: "Work", ID: "1", Description: "A", DueDate: "2024/01/01", Priority: "High", Status: "Pending"},
			},
		},
		{
			name:  "fields keep inner whitespace",
			input: "categoria|id|descripcion|fecha_vencimiento|prioridad|estado\nWork | 1| Finish report |2024/12/31|High|Pending\n",
			expected: []Record{
				{Line: 2, Category: "Work ", ID: " 1", Description: " Finish report ", DueDate: "2024/12/31", Priority: "High", Status: "Pending"},
			},
		},
		{
			name:     "header only",
			input:    "categoria|id|descripcion|fecha_vencimiento|prioridad|estado\n",
			expected: nil,
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReadPipe(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, records)
		})
	}
}

func TestReadPipe_Errors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedLine  int
		expectedField string
	}{
		{
			name:          "header missing a column",
			input:         "categoria|id|descripcion|fecha_vencimiento|prioridad\nWork|1|A|2024/01/01|High\n",
			expectedLine:  1,
			expectedField: FieldStatus,
		},
		{
			name:          "misspelled header column",
			input:         "Categoria|id|descripcion|fecha_vencimiento|prioridad|estado\n",
			expectedLine:  1,
			expectedField: FieldCategory,
		},
		{
			name:          "data line shorter than header",
			input:         "categoria|id|descripcion|fecha_vencimiento|prioridad|estado\nWork|1|A|2024/01/01|High|Pending\nHome|2|B\n",
			expectedLine:  3,
			expectedField: FieldDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReadPipe(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, records)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrorTypeParse, appErr.Type)
			line, _ := appErr.GetContext("line")
			field, _ := appErr.GetContext("field")
			assert.Equal(t, tt.expectedLine, line)
			assert.Equal(t, tt.expectedField, field)
		})
	}
}

func TestWritePipe_RoundTrip(t *testing.T) {
	tasks := []domain.Task{
		{Category: "Work", ID: 1, Description: "Finish report", DueDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), Priority: "High", Status: "Pending"},
		{Category: "Home", ID: 2, Description: "Buy milk, eggs", DueDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Priority: "Low", Status: "Done"},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePipe(&buf, tasks))
	assert.Equal(t,
		"categoria|id|descripcion|fecha_vencimiento|prioridad|estado\n"+
			"Work|1|Finish report|2024/12/31|High|Pending\n"+
			"Home|2|Buy milk, eggs|2025/01/02|Low|Done\n",
		buf.String())

	records, err := ReadPipe(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Buy milk, eggs", records[1].Description)
}

func TestWritePipe_RejectsUnstorableValues(t *testing.T) {
	due := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		task  domain.Task
		field string
	}{
		{
			name:  "separator in description",
			task:  domain.Task{Category: "Work", ID: 1, Description: "a|b", DueDate: due},
			field: FieldDescription,
		},
		{
			name:  "line break in status",
			task:  domain.Task{Category: "Work", ID: 1, Description: "a", DueDate: due, Status: "open\nlater"},
			field: FieldStatus,
		},
		{
			name:  "carriage return in category",
			task:  domain.Task{Category: "Work\r", ID: 1, Description: "a", DueDate: due},
			field: FieldCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WritePipe(&buf, []domain.Task{tt.task})
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, appErr.Context["field"])
			assert.Empty(t, buf.String(), "nothing is written")
		})
	}
}
