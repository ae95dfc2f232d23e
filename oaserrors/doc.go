// Package oaserrors provides structured error types for the oasdoc library.
//
// Import path: github.com/erraggy/oasdoc/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between caller bugs (a missing argument), a
// document whose shape does not allow a path to be walked, input that cannot be
// decoded, and bad configuration.
//
// # Error Types
//
// The package provides four error types:
//
//   - [ArgumentError]: a required document, path, key or value was missing
//   - [PathError]: an intermediate path segment holds a non-object value
//   - [ParseError]: JSON/YAML/recipe decoding failures
//   - [ConfigError]: invalid configuration, flags or helper names
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidArgument]: Matches any [ArgumentError]
//   - [ErrPathConflict]: Matches any [PathError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	if err := doc.Set(path, value); errors.Is(err, oaserrors.ErrPathConflict) {
//	    // something other than an object is in the way
//	}
//
// Extract error details with errors.As():
//
//	var pathErr *oaserrors.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Printf("blocked at %s (%s)\n", pathErr.At, pathErr.Found)
//	}
//
// # What Is Not An Error
//
// Appending to a sequence that does not exist (or is not a sequence) is a
// silent no-op, not an error. Structurally invalid OpenAPI content is never
// detected: oasdoc assembles documents, it does not validate them.
package oaserrors
