package internal

import (
	"fmt"
	"strings"
)

// ErrorCategory represents the type of error encountered during generation
type ErrorCategory string

const (
	ErrorCategoryIO      ErrorCategory = "io_error"     // File system, permissions, disk space
	ErrorCategoryEncode  ErrorCategory = "encode_error" // JPEG or EXIF encoding failed
	ErrorCategoryUnknown ErrorCategory = "unknown_error"
)

// ErrorSeverity indicates how critical the error is
type ErrorSeverity string

const (
	ErrorSeverityCritical ErrorSeverity = "critical" // System-level issues (disk full, permissions)
	ErrorSeverityError    ErrorSeverity = "error"    // File-level issues
)

// ProcessError represents a categorized error during fixture generation
type ProcessError struct {
	FilePath    string
	Category    ErrorCategory
	Severity    ErrorSeverity
	OriginalErr error
	Suggestion  string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("[%s/%s] %s: %v", e.Severity, e.Category, e.FilePath, e.OriginalErr)
}

func (e *ProcessError) Unwrap() error {
	return e.OriginalErr
}

// CategorizeError analyzes an error and returns a ProcessError with category and severity
func CategorizeError(filePath string, err error) *ProcessError {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())
	procErr := &ProcessError{
		FilePath:    filePath,
		OriginalErr: err,
	}

	switch {
	case strings.Contains(errStr, "no space left"):
		procErr.Category = ErrorCategoryIO
		procErr.Severity = ErrorSeverityCritical
		procErr.Suggestion = "Free up disk space on the destination drive and rerun the generator"

	case strings.Contains(errStr, "permission denied"):
		procErr.Category = ErrorCategoryIO
		procErr.Severity = ErrorSeverityCritical
		procErr.Suggestion = "Check write permissions on the output directory"

	case strings.Contains(errStr, "read-only file system"):
		procErr.Category = ErrorCategoryIO
		procErr.Severity = ErrorSeverityCritical
		procErr.Suggestion = "Output filesystem is read-only - choose a different output directory"

	case strings.Contains(errStr, "no such file or directory"):
		procErr.Category = ErrorCategoryIO
		procErr.Severity = ErrorSeverityError
		procErr.Suggestion = "Output directory does not exist - run generate so it gets created first"

	case strings.Contains(errStr, "exif") || strings.Contains(errStr, "timestamp"):
		procErr.Category = ErrorCategoryEncode
		procErr.Severity = ErrorSeverityError
		procErr.Suggestion = "Check the configured date matches YYYY:MM:DD HH:MM:SS"

	case strings.Contains(errStr, "encode") || strings.Contains(errStr, "jpeg"):
		procErr.Category = ErrorCategoryEncode
		procErr.Severity = ErrorSeverityError
		procErr.Suggestion = "JPEG encoding failed - check the configured dimensions and quality"

	default:
		procErr.Category = ErrorCategoryUnknown
		procErr.Severity = ErrorSeverityError
		procErr.Suggestion = "Unexpected error - check the session manifest for details"
	}

	return procErr
}
