package cli

import (
	"fmt"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// commandError is a handled error: its text is ready for the user and the
// original error stays reachable through Unwrap.
type commandError struct {
	message string
	cause   error
}

func (e *commandError) Error() string {
	return e.message
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.ShouldLogError(err) {
		logging.Debugf("%s: %v\n", operation, err)
	}

	if _, ok := validation.AsValidationError(err); ok {
		return &commandError{message: fmt.Sprintf("failed to %s: %s", operation, userMessage(err)), cause: err}
	}
	if _, ok := errors.AsAppError(err); ok {
		return &commandError{message: fmt.Sprintf("failed to %s: %s", operation, userMessage(err)), cause: err}
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*commandError); ok {
		return err
	}
	if _, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("%s", userMessage(err))
	}
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", userMessage(err))
	}
	return err
}

// GetErrorCode returns the error code for structured errors, looking through
// handled errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	if _, ok := validation.AsValidationError(err); ok {
		return "VALIDATION_FAILED"
	}
	return errors.GetErrorCode(err)
}

// userMessage is the text shown for err in a prompt or warning line
func userMessage(err error) string {
	if ve, ok := validation.AsValidationError(err); ok {
		return ve.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}
