// Package oasdoc assembles OpenAPI 3.x definition documents programmatically.
//
// A definition is built one section at a time into an in-memory, order-keeping
// document and then serialized. Nothing is validated against the OpenAPI
// schema; the library only places values where the named helpers say they go.
//
// # Packages
//
//   - document: the JSON-shaped value tree with path-addressed Get, Set,
//     SetKeyed and AppendMany, and its JSON and YAML codecs
//   - oaspath: dotted paths and the registry of well-known OpenAPI sections
//   - definition: the named set/add helpers, the operation table and a fluent
//     Builder that accumulates errors
//   - recipe: YAML or JSON files listing helper invocations
//   - oaserrors: the sentinel and typed errors shared by all packages
//
// # Quick Start
//
//	doc := document.New()
//	_ = definition.SetOpenAPI(doc, "3.0.0")
//	_ = definition.SetInfo(doc, document.Obj("title", "T", "version", "1.0"))
//	_ = definition.AddComponentsSchema(doc, "User", document.Obj("type", "object"))
//	data, _ := doc.MarshalJSON()
//	// {"openapi":"3.0.0","info":{"title":"T","version":"1.0"},"components":{"schemas":{"User":{"type":"object"}}}}
//
// Or with the Builder:
//
//	b := definition.New(definition.WithInitSequences(true)).
//		SetOpenAPI("3.0.0").
//		SetInfo(document.Obj("title", "T", "version", "1.0")).
//		AddServer(document.Obj("url", "https://api.example.com"))
//	data, err := b.BuildYAML()
//
// # Sequences
//
// servers, security and tags are appended to, never created: adding to an
// absent sequence is a silent no-op. Initialize them with
// [definition.InitSequences] or the WithInitSequences option first.
//
// # Command Line
//
// The oasdoc command assembles recipes (oasdoc assemble), reads values out of
// documents (oasdoc get), lists the section registry (oasdoc paths) and serves
// the helpers over MCP (oasdoc mcp).
package oasdoc
