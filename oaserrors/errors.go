// Package oaserrors provides structured error types for oasdoc.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between a bad argument, a
// path that cannot be walked, undecodable input and bad configuration.
//
// # Error Categories
//
//   - ArgumentError: a required document, path, key or value was missing
//   - PathError: a path walked through a node that is not an object
//   - ParseError: JSON/YAML/recipe decoding failures
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	err := doc.Set(oaspath.Info, nil)
//	if errors.Is(err, oaserrors.ErrInvalidArgument) {
//	    // caller bug: value was nil
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidArgument indicates a required argument was missing or empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPathConflict indicates a path could not be walked because an
	// intermediate node holds something other than an object.
	ErrPathConflict = errors.New("path conflict")

	// ErrParse indicates a decoding failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ArgumentError reports a missing or empty argument to a document operation.
type ArgumentError struct {
	// Op is the operation that rejected the argument (e.g., "set", "setKeyed")
	Op string
	// Arg names the offending argument: "document", "path", "key" or "value"
	Arg string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ArgumentError) Error() string {
	msg := "invalid argument"
	if e.Arg != "" {
		msg += " " + e.Arg
	}
	if e.Op != "" {
		msg += " to " + e.Op
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ArgumentError has no underlying cause.
func (e *ArgumentError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// PathError reports that a path could not be walked.
type PathError struct {
	// Path is the full dotted path of the operation
	Path string
	// At is the dotted prefix that resolved to a non-object node
	At string
	// Found names the kind of value found at At (e.g., "string", "array")
	Found string
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	msg := "path conflict"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.At != "" {
		msg += ": " + e.At + " is"
		if e.Found != "" {
			msg += " " + article(e.Found) + " " + e.Found
		}
		msg += ", not an object"
	}
	return msg
}

// Unwrap returns nil as PathError has no underlying cause.
func (e *PathError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *PathError) Is(target error) bool {
	return target == ErrPathConflict
}

// ParseError represents a failure to decode a document, value or recipe.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, unknown helper names and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func article(word string) string {
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
