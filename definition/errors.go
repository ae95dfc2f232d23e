package definition

import (
	"fmt"
	"strings"
)

// OperationError records a helper call that the Builder could not apply.
type OperationError struct {
	// Operation is the qualified helper name, e.g. "add.components_schema".
	Operation string
	// Target is the key or path argument, if the helper takes one.
	Target string
	// Cause is the underlying error from the document or operation table.
	Cause error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	var sb strings.Builder
	sb.WriteString("definition")
	if e.Operation != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Operation)
	}
	if e.Target != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Target)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// BuildErrors is the collection of OperationErrors returned by Build.
type BuildErrors []*OperationError

// Error implements the error interface with a formatted multi-error message.
func (errs BuildErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "definition: %d errors:\n", len(errs))
	for _, e := range errs {
		sb.WriteString("  - ")
		sb.WriteString(strings.TrimPrefix(e.Error(), "definition: "))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the errors so errors.Is and errors.As see each of them.
func (errs BuildErrors) Unwrap() []error {
	result := make([]error, 0, len(errs))
	for _, e := range errs {
		result = append(result, e)
	}
	return result
}
