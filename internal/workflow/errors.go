package workflow

import (
	"fmt"
	"strings"

	"github.com/jonathan/supercomponents/internal/types"
)

// AccessibilityError means the token set still fails WCAG contrast after
// correction and the run was not allowed to bypass the check.
type AccessibilityError struct {
	Violations []types.ContrastViolation
}

func (e *AccessibilityError) Error() string {
	details := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		details = append(details, v.Details)
	}
	return fmt.Sprintf("accessibility check failed: %d contrast violation(s): %s (use --bypass-a11y-fail to continue)",
		len(e.Violations), strings.Join(details, "; "))
}

// OutputError wraps a failure to assemble or persist the generated files.
type OutputError struct {
	Message string
	Cause   error
}

func (e *OutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("output failed: %s", e.Message)
}

func (e *OutputError) Unwrap() error {
	return e.Cause
}
