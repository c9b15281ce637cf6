package cli

import (
	"errors"
	"testing"

	apperrors "task-manager/internal/errors"
	"task-manager/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	formErr := validation.NewValidationError()
	formErr.AddRequiredError(validation.FieldDescription)
	formErr.AddInvalidFormatError(validation.FieldDueDate, "2024-12-31", "YYYY/MM/DD")

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "add category",
			err:       apperrors.NewValidationError("invalid input", nil),
			expected:  "failed to add category: invalid input",
		},
		{
			name:      "Form error",
			operation: "add task",
			err:       formErr,
			expected: "failed to add task: Please correct the following:\n" +
				"- description is required\n" +
				"- due date must be in YYYY/MM/DD format",
		},
		{
			name:      "Not found error",
			operation: "select category",
			err:       apperrors.NewNotFoundError("category", "Garden"),
			expected:  "failed to select category: category not found: Garden",
		},
		{
			name:      "Database error",
			operation: "save workspace",
			err:       apperrors.NewDatabaseError("insert", errors.New("timeout")),
			expected:  "failed to save workspace: The workspace database could not be accessed. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}

	if eh.Handle("noop", nil) != nil {
		t.Error("ErrorHandler.Handle(nil) should return nil")
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Duplicate error",
			err:      apperrors.NewDuplicateError("category", "Work"),
			expected: "category already exists: Work",
		},
		{
			name:     "Parse error with cause",
			err:      apperrors.NewParseError("due date", "2024/13/45", errors.New("month out of range")),
			expected: `cannot parse due date: "2024/13/45" (month out of range)`,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandledErrorsKeepTheirCause(t *testing.T) {
	eh := NewErrorHandler()

	handled := eh.Handle("select category", apperrors.NewNotFoundError("category", "Garden"))
	if !apperrors.IsErrorType(handled, apperrors.ErrorTypeNotFound) {
		t.Error("handled error should unwrap to the not found error")
	}
	if simple := eh.HandleSimple(handled); simple.Error() != "failed to select category: category not found: Garden" {
		t.Errorf("HandleSimple() = %v, want the handled message unchanged", simple)
	}
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	eh := NewErrorHandler()

	formErr := validation.NewValidationError()
	formErr.AddRequiredError(validation.FieldCategory)

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"missing file", apperrors.NewFileNotFoundError("Tareas.txt", nil), "FILE_NOT_FOUND"},
		{"handled duplicate", eh.Handle("add category", apperrors.NewDuplicateError("category", "Work")), "ALREADY_EXISTS"},
		{"form error", formErr, "VALIDATION_FAILED"},
		{"handled form error", eh.Handle("add task", formErr), "VALIDATION_FAILED"},
		{"plain error", errors.New("plain"), "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := eh.GetErrorCode(tt.err); code != tt.expected {
				t.Errorf("GetErrorCode() = %s, want %s", code, tt.expected)
			}
		})
	}
}
