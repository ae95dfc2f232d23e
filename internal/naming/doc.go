// Package naming turns OpenAPI field names and dotted paths into Go
// identifiers for generated code.
//
// Words are split on separators (underscore, hyphen, dot, slash, space) and
// on lower-to-upper case changes, so "termsOfService" yields
// "terms", "Of", "Service". Each word is title-cased with
// golang.org/x/text/cases, and a short list of initialisms ("url", "id",
// "openapi") keeps its conventional Go spelling.
package naming
