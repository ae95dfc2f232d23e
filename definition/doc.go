// Package definition provides named helpers for assembling an OpenAPI 3.x
// definition one section at a time.
//
// Helpers come in two groups. The "set" group overwrites a section:
// [SetOpenAPI], [SetInfo], [SetInfoContact], [SetInfoLicense],
// [SetExternalDocs] and the [SetOther] escape hatch. The "add" group either
// appends to a sequence ([AddServer], [AddSecurity], [AddTag]) or stores a
// value under a key ([AddPath] and the AddComponents* helpers).
//
// Sequence helpers never create their array. On an empty document
//
//	definition.AddServer(doc, document.Obj("url", "https://a"))
//
// does nothing and returns 0. Seed the document with "servers: []" or call
// [InitSequences] first.
//
// # Operation tables
//
// [SetOperations] and [AddOperations] list the helpers by stable name
// ("info_contact", "components_schema", ...). Recipes, the CLI and the MCP
// server resolve user input through [LookupOperation] and run it with
// [Operation.Apply].
//
// # Builder
//
// [Builder] wraps the helpers in a fluent API that collects errors and logs
// each mutation through a [Logger]. [WithDocument] starts from an existing
// document instead of an empty one:
//
//	b := definition.New(
//		definition.WithInitSequences(true),
//		definition.WithLogger(definition.NewSlogAdapter(slog.Default())),
//	)
//	data, err := b.SetOpenAPI("3.0.0").
//		AddServer(document.Obj("url", "https://api.example.com")).
//		BuildJSON()
package definition
