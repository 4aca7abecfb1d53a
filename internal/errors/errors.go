// Package errors provides sentinel errors and structured error details for the
// magic-expo CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or an inconsistent configuration.
	ErrValidation = errors.New("validation error")

	// ErrExists indicates the target project directory already exists.
	ErrExists = errors.New("already exists")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a directory, file, or template was not found.
	ErrNotFound = errors.New("not found")

	// ErrIncomplete indicates required files are missing after scaffolding.
	ErrIncomplete = errors.New("incomplete scaffold")
)

// Exit codes for the CLI process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid flags, names or configuration.
	ExitValidationError = 2

	// ExitTargetExists indicates the project directory already exists.
	ExitTargetExists = 3

	// ExitPermissionDenied indicates the filesystem refused an operation.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a directory or template was not found.
	ExitNotFound = 5

	// ExitIncomplete indicates verification found missing required files.
	ExitIncomplete = 6
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	// Code is the exit code to use.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is true when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file or directory path (optional).
	Location string

	// Field is the option or config key involved (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewExistsError reports a target directory that must not exist yet.
func NewExistsError(location string) error {
	return &DetailError{
		Type:     "target exists",
		Message:  fmt.Sprintf("directory %s already exists", location),
		Location: location,
		Hint:     "Choose a different project name or remove the existing directory.",
		Cause:    ErrExists,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError reports a filesystem operation the user may not perform.
func NewPermissionError(message, location string) error {
	return &DetailError{
		Type:     "permission denied",
		Message:  message,
		Location: location,
		Hint:     "Check that you can write to the target directory.",
		Cause:    ErrPermission,
	}
}

// NewIncompleteError reports required files missing after a scaffold run.
func NewIncompleteError(location string, missing []string) error {
	return &DetailError{
		Type:     "verification failed",
		Message:  fmt.Sprintf("missing required files: %s", strings.Join(missing, ", ")),
		Location: location,
		Hint:     "Re-run with --overwrite or remove the directory and create the project again.",
		Cause:    ErrIncomplete,
	}
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrExists):
		return ExitTargetExists
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrIncomplete):
		return ExitIncomplete
	default:
		return ExitGeneralError
	}
}
