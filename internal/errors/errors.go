package errors

import (
	"fmt"
)

// LumenError is the structured error type for Lumen.
// It provides rich context for error handling, logging, and user presentation.
type LumenError struct {
	// Code is the unique error code (e.g., "ERR_601_SPAWN_FAILED").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Launch, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *LumenError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LumenError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with LumenError.
func (e *LumenError) Is(target error) bool {
	if t, ok := target.(*LumenError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *LumenError) WithDetail(key, value string) *LumenError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new LumenError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *LumenError {
	return &LumenError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a LumenError from an existing error.
// The error's message becomes the LumenError message.
func Wrap(code string, err error) *LumenError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *LumenError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates an I/O-related error.
func IOError(message string, cause error) *LumenError {
	return New(ErrCodeFileNotFound, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *LumenError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *LumenError {
	return New(ErrCodeInternal, message, cause)
}

// LaunchError creates a process-spawn error carrying the application name
// and the attempted command for diagnostics.
func LaunchError(message string, app, command string, cause error) *LumenError {
	return New(ErrCodeSpawnFailed, message, cause).
		WithDetail("application", app).
		WithDetail("command", command)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors should abort the current operation.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if le, ok := err.(*LumenError); ok {
		return le.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a LumenError.
// Returns empty string if not a LumenError.
func GetCode(err error) string {
	if le, ok := err.(*LumenError); ok {
		return le.Code
	}
	return ""
}

// GetCategory extracts the category from a LumenError.
// Returns empty string if not a LumenError.
func GetCategory(err error) Category {
	if le, ok := err.(*LumenError); ok {
		return le.Category
	}
	return ""
}
