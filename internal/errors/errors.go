package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewDuplicateError reports an attempt to add a value that is already present
func NewDuplicateError(resource string, name string) *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicate,
		Message: fmt.Sprintf("%s already exists: %s", resource, name),
		Code:    "ALREADY_EXISTS",
		Context: map[string]interface{}{
			"resource": resource,
			"name":     name,
		},
	}
}

// NewParseError creates a new parse error for a value that does not match its expected format
func NewParseError(field string, value string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("cannot parse %s: %q", field, value),
		Code:    "PARSE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"field": field,
			"value": value,
		},
	}
}

// NewRecordError reports a malformed line in an imported file
func NewRecordError(line int, field string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("line %d: %s: %s", line, field, reason),
		Code:    "PARSE_ERROR",
		Context: map[string]interface{}{
			"line":   line,
			"field":  field,
			"reason": reason,
		},
	}
}

// NewFileNotFoundError creates a new error for a missing source file
func NewFileNotFoundError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("file not found: %s", path),
		Code:    "FILE_NOT_FOUND",
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewIOError creates a new file I/O error
func NewIOError(operation string, path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("%s failed: %s", operation, path),
		Code:    "IO_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
			"path":      path,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeDuplicate, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeParse:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s (%v)", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		case ErrorTypeIO:
			return fmt.Sprintf("%s. Check the path and permissions.", appErr.Message)
		case ErrorTypeDatabase:
			return "The workspace database could not be accessed. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeDuplicate, ErrorTypeParse, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return false // user errors
		default:
			return true
		}
	}
	return true
}
