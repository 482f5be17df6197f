package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// namePattern matches lowercase alphanumeric with single hyphens between words
var namePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// requiredTrees are the documentation subtrees every complete bundle
// checkout carries.
var requiredTrees = []string{"references", "resources"}

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationResult holds validation errors.
type ValidationResult struct {
	Errors []ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error implements the error interface.
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var messages []string
	for _, err := range r.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("validation failed with %d error(s):\n  - %s",
		len(r.Errors), strings.Join(messages, "\n  - "))
}

// Add appends a validation error.
func (r *ValidationResult) Add(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate checks the manifest fields.
func (m *Manifest) Validate() *ValidationResult {
	result := &ValidationResult{}

	if m.Name == "" {
		result.Add("name", "is required")
	} else if !namePattern.MatchString(m.Name) {
		result.Add("name", "must be lowercase alphanumeric with hyphens")
	}

	if m.Description == "" {
		result.Add("description", "is required")
	} else if len(m.Description) > 1024 {
		result.Add("description", "must be 1024 characters or less")
	}

	// Version is optional, but must be strict semver if provided.
	if m.Version != "" {
		if _, err := semver.StrictNewVersion(m.Version); err != nil {
			result.Add("version", "must be semver format (X.Y.Z)")
		}
	}

	return result
}

// ValidateIdentity checks the manifest fields and additionally requires
// the manifest name to equal the fixed bundle name. Install refuses any
// bundle that fails this.
func (m *Manifest) ValidateIdentity() *ValidationResult {
	result := m.Validate()

	if m.Name != "" && m.Name != Name {
		result.Add("name", fmt.Sprintf("must be %q (got %q)", Name, m.Name))
	}

	return result
}

// ValidateLayout checks an on-disk bundle tree for the required
// documentation subtrees.
func ValidateLayout(dir string) *ValidationResult {
	result := &ValidationResult{}

	for _, name := range requiredTrees {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.IsDir() {
			result.Add(name+"/", "directory is required")
		}
	}

	return result
}
