// Package errors provides structured error handling for Lumen.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (file, disk, database)
//   - 4XX: Validation errors
//   - 5XX: Internal errors
//   - 6XX: Launch errors (process spawn)
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and database I/O errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
	// CategoryLaunch indicates process-spawn errors.
	CategoryLaunch Category = "LAUNCH"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeFileNotFound  = "ERR_201_FILE_NOT_FOUND"
	ErrCodeEntryCorrupt  = "ERR_202_ENTRY_CORRUPT"
	ErrCodeStoreFailed   = "ERR_203_STORE_FAILED"
	ErrCodeStoreLocked   = "ERR_204_STORE_LOCKED"
	ErrCodeWatcherFailed = "ERR_205_WATCHER_FAILED"

	// Validation errors (400-499)
	ErrCodeInvalidInput = "ERR_401_INVALID_INPUT"
	ErrCodeEmptyExec    = "ERR_402_EMPTY_EXEC"

	// Internal errors (500-599)
	ErrCodeInternal       = "ERR_501_INTERNAL"
	ErrCodeNotRegistered  = "ERR_502_NOT_REGISTERED"
	ErrCodeProviderFailed = "ERR_503_PROVIDER_FAILED"

	// Launch errors (600-699)
	ErrCodeSpawnFailed = "ERR_601_SPAWN_FAILED"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract the leading digit of the numeric portion
	// (e.g., '1' from "ERR_101_CONFIG_NOT_FOUND").
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	case '6':
		return CategoryLaunch
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeNotRegistered:
		// A provider missing a required collaborator cannot initialize at all.
		return SeverityFatal
	case ErrCodeEntryCorrupt, ErrCodeWatcherFailed:
		// Recovered locally: the offending entry is skipped, the watcher
		// degrades to scan-at-startup behavior.
		return SeverityWarning
	default:
		return SeverityError
	}
}
