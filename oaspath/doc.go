// Package oaspath names every section of an OpenAPI 3.x document.
//
// The registry is a fixed, read-only table built once at package load. Each
// section is exported as a [Path] variable so callers address the document
// without spelling dotted strings by hand. The variables are read-only by
// contract and must not be reassigned:
//
//	doc.Set(oaspath.InfoContactEmail, document.String("api@example.com"))
//	doc.SetKeyed(oaspath.ComponentsSchemas, "User", userSchema)
//
// A Path is an ordered list of object keys computed once, not a string that
// is re-split on every access. [Path.Child] appends a key verbatim, so route
// keys such as "/v1.0/users" remain a single segment.
//
// # Lookup by name
//
// Tools that receive section names as text (the CLI, recipes, the MCP server)
// resolve them with [Lookup]:
//
//	entry, ok := oaspath.Lookup("components.schemas")
//	// entry.Path == oaspath.ComponentsSchemas, entry.Kind == oaspath.KindKeyed
//
// # References
//
// [Path.Pointer] renders a local JSON Pointer for "$ref" values:
//
//	oaspath.ComponentsSchemas.Child("Pet").Pointer() // "#/components/schemas/Pet"
package oaspath
