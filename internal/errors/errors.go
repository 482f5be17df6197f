// Package errors provides coded error types for crxskill operations.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for crxskill operations.
const (
	// Config errors
	CodeConfigInvalidValue = "CONFIG_001" // Invalid configuration value
	CodeConfigBadManifest  = "CONFIG_002" // Bundle manifest is invalid

	// Safety-gate errors. These abort the whole run; their purpose is
	// preventing destructive filesystem operations.
	CodeSafetyProtectedPath  = "SAFETY_001" // Target resolves to a protected location
	CodeSafetyUnexpectedLeaf = "SAFETY_002" // Path to be deleted has the wrong final segment

	// Source acquisition errors
	CodeGitCloneFailed = "GIT_001" // Clone of the bundle repository failed

	// IO errors
	CodeIONotFound   = "IO_001" // Expected file or directory missing
	CodeIOCopyFailed = "IO_002" // Copy operation failed
)

// Error is the structured error type for crxskill operations.
type Error struct {
	Code    string         // Error code (e.g., "SAFETY_001")
	Message string         // Human-readable message
	Details map[string]any // Context (path, platform, etc.)
	Cause   error          // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with an Error.
func Wrap(code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// --- Config Errors ---

// ConfigInvalidValue creates an error for an invalid config value.
func ConfigInvalidValue(field, reason string) *Error {
	return Newf(CodeConfigInvalidValue, "invalid config value for %s: %s", field, reason).
		WithDetail("field", field)
}

// BadManifest creates an error for an invalid bundle manifest.
func BadManifest(path string, err error) *Error {
	return Wrap(CodeConfigBadManifest, "invalid bundle manifest", err).
		WithDetail("path", path)
}

// --- Safety Errors ---

// SafetyProtectedPath creates an error for a target resolving to a
// protected location. Callers must treat this as fatal.
func SafetyProtectedPath(path, reason string) *Error {
	return Newf(CodeSafetyProtectedPath, "refusing to operate on %q: %s", path, reason).
		WithDetail("path", path)
}

// SafetyUnexpectedLeaf creates an error for a to-be-deleted path whose
// final segment does not match the expected name.
func SafetyUnexpectedLeaf(path, want, got string) *Error {
	return Newf(CodeSafetyUnexpectedLeaf, "refusing to delete %q: final path segment is %q, expected %q", path, got, want).
		WithDetail("path", path).
		WithDetail("expected", want)
}

// --- Source Errors ---

// GitCloneFailed creates an error for a failed clone, carrying the git
// output for diagnosis.
func GitCloneFailed(url string, err error, output string) *Error {
	e := Wrap(CodeGitCloneFailed, fmt.Sprintf("cloning %s failed", url), err).
		WithDetail("url", url)
	if output != "" {
		e = e.WithDetail("output", strings.TrimSpace(output))
	}
	return e
}

// --- IO Errors ---

// IONotFound creates an error for a missing file or directory.
func IONotFound(path string) *Error {
	return Newf(CodeIONotFound, "not found: %s", path).
		WithDetail("path", path)
}

// CopyFailed creates an error for a failed copy.
func CopyFailed(src, dst string, err error) *Error {
	return Wrap(CodeIOCopyFailed, fmt.Sprintf("copying %s to %s", src, dst), err).
		WithDetail("src", src).
		WithDetail("dst", dst)
}

// HasCode checks if an error is an Error with the given code.
// It handles wrapped errors by unwrapping to find an Error.
func HasCode(err error, code string) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}

// Code returns the error code if err is an Error, empty string otherwise.
func Code(err error) string {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ""
}

// IsSafety reports whether err is a safety-gate violation. Safety
// violations must never be downgraded to warnings.
func IsSafety(err error) bool {
	return strings.HasPrefix(Code(err), "SAFETY_")
}
