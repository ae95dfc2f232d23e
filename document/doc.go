// Package document holds an OpenAPI definition as a tree of JSON-shaped values
// and provides path-addressed access into it.
//
// # Values
//
// [Value] is a closed sum type over [*Object], [Array], [String], [Number],
// [Bool] and [Null]. Objects remember key insertion order, so a document
// serializes with its sections in the order they were added:
//
//	doc := document.New()
//	_ = doc.Set(oaspath.OpenAPI, document.String("3.0.0"))
//	_ = doc.Set(oaspath.Info, document.Obj("title", "T", "version", "1.0"))
//	data, _ := doc.MarshalJSON()
//	// {"openapi":"3.0.0","info":{"title":"T","version":"1.0"}}
//
// # Access
//
// [Document.Get], [Document.Set], [Document.SetKeyed] and
// [Document.AppendMany] take an [oaspath.Path]. Set creates missing
// intermediate objects; AppendMany never creates the target array and is a
// silent no-op when the array is absent. That asymmetry is deliberate:
// initialize sequence sections to an empty array before appending.
//
// # Encoding
//
// Documents encode to JSON through [Document.MarshalJSON] and to YAML through
// [Document.YAML]; [Parse] reads either format back while keeping key order.
package document
