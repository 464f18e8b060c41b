package ormdoc

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := annotator.Run(ctx, worklist)
//	if errors.Is(err, ormdoc.ErrApprovalDenied) {
//	    // Handle user denying the write approval
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAnnotationsDisabled indicates the project configuration has
	// annotation generation switched off.
	ErrAnnotationsDisabled = errors.New("annotations disabled")

	// ErrManifestNotFound indicates the class manifest file was not found.
	ErrManifestNotFound = errors.New("class manifest not found")

	// ErrMarkerOrder indicates a file contains both block markers but the
	// end marker precedes the start marker. The file is left untouched.
	ErrMarkerOrder = errors.New("end marker precedes start marker")

	// ErrApprovalDenied indicates the user denied approval for writing
	// pending annotation changes.
	ErrApprovalDenied = errors.New("approval denied")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrAnnotationsDisabled):
		return ExitConfigError
	case errors.Is(err, ErrManifestNotFound):
		return ExitManifestError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	}

	// Flag and argument errors come from the CLI layer as plain errors
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}
