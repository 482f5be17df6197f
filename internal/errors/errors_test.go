package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		wantStr string
	}{
		{
			name: "simple error",
			err: &Error{
				Code:    "TEST_001",
				Message: "test error",
			},
			wantStr: "[TEST_001] test error",
		},
		{
			name: "error with cause",
			err: &Error{
				Code:    "TEST_002",
				Message: "wrapped error",
				Cause:   errors.New("underlying"),
			},
			wantStr: "[TEST_002] wrapped error: underlying",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := Wrap("TEST_001", "test", underlying)

	if !errors.Is(err, underlying) {
		t.Errorf("errors.Is should find the wrapped cause")
	}
	if got := err.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}
}

func TestError_WithDetail(t *testing.T) {
	err := New("TEST_001", "test").
		WithDetail("path", "/tmp/x").
		WithDetail("count", 42)

	if err.Details["path"] != "/tmp/x" {
		t.Errorf("Details[path] = %v, want /tmp/x", err.Details["path"])
	}
	if err.Details["count"] != 42 {
		t.Errorf("Details[count] = %v, want 42", err.Details["count"])
	}
}

func TestHasCode(t *testing.T) {
	err := SafetyProtectedPath("/", "filesystem root")

	if !HasCode(err, CodeSafetyProtectedPath) {
		t.Error("HasCode should match the error's own code")
	}
	if HasCode(err, CodeGitCloneFailed) {
		t.Error("HasCode should not match a different code")
	}

	// Wrapped in a plain fmt error, the code must still be found.
	wrapped := fmt.Errorf("installing: %w", err)
	if !HasCode(wrapped, CodeSafetyProtectedPath) {
		t.Error("HasCode should unwrap to find the coded error")
	}

	if HasCode(errors.New("plain"), CodeSafetyProtectedPath) {
		t.Error("HasCode should be false for non-coded errors")
	}
}

func TestCode(t *testing.T) {
	if got := Code(IONotFound("/missing")); got != CodeIONotFound {
		t.Errorf("Code() = %q, want %q", got, CodeIONotFound)
	}
	if got := Code(errors.New("plain")); got != "" {
		t.Errorf("Code() = %q, want empty for non-coded errors", got)
	}
}

func TestIsSafety(t *testing.T) {
	if !IsSafety(SafetyProtectedPath("/", "filesystem root")) {
		t.Error("SafetyProtectedPath should be a safety violation")
	}
	if !IsSafety(SafetyUnexpectedLeaf("/tmp/x", "want", "got")) {
		t.Error("SafetyUnexpectedLeaf should be a safety violation")
	}
	if IsSafety(IONotFound("/missing")) {
		t.Error("IO errors are not safety violations")
	}
}
