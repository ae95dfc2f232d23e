package recipe

import (
	"fmt"
	"strings"
)

// StepError reports a recipe step that could not be decoded or applied.
type StepError struct {
	// Index is the zero-based position of the step in the recipe.
	Index int
	// Line is the source line of the step (0 if unknown).
	Line int
	// Operation is the qualified helper name, when known.
	Operation string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "recipe: step %d", e.Index+1)
	if e.Operation != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Operation)
		sb.WriteString(")")
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, " at line %d", e.Line)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *StepError) Unwrap() error {
	return e.Cause
}
