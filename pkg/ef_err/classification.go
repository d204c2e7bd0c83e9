// pkg/ef_err/classification.go
//
// Error classification with remediation guidance. The CLI's exit surface is
// deliberately binary: zero for success (including user-expected outcomes
// handled upstream), one for every failure.

package ef_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies errors for reporting.
type ErrorCategory int

const (
	// CategorySystem - OS/filesystem issues
	CategorySystem ErrorCategory = iota
	// CategoryValidation - input validation failures
	CategoryValidation
	// CategoryGit - git-specific errors
	CategoryGit
	// CategoryDependency - missing external tools
	CategoryDependency
)

// ClassifiedError wraps an error with category and remediation info.
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

func (e *ClassifiedError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Message)

	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(fmt.Sprintf("\n\nCause: %v", e.Cause))
	}

	if len(e.Remediation) > 0 {
		sb.WriteString("\n\nHow to fix:")
		for i, step := range e.Remediation {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	return sb.String()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// GetExitCode maps any error to the process exit code: 0 for nil, 1 otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// NewValidationError creates an error for input validation failures.
func NewValidationError(message string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryValidation,
		Message:     message,
		Remediation: remediation,
	}
}

// NewGitError creates an error for git-specific issues.
func NewGitError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryGit,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

// NewDependencyError creates an error for missing external tools.
func NewDependencyError(dependency, operation string, remediation ...string) error {
	return &ClassifiedError{
		Category: CategoryDependency,
		Message: fmt.Sprintf("%s is required for %s but not found",
			dependency, operation),
		Remediation: remediation,
	}
}

// CategoryOf returns the category of a classified error, or CategorySystem
// for unclassified errors.
func CategoryOf(err error) ErrorCategory {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category
	}
	return CategorySystem
}
