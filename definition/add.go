package definition

import (
	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/oaspath"
	"github.com/erraggy/oasdoc/oaserrors"
)

// AddServer appends server objects to servers and returns how many were
// appended. Like every sequence helper it never creates the array: when
// servers is absent or not an array nothing happens and 0 is returned.
// Call [InitSequences] or seed the document with "servers: []" first.
func AddServer(doc *document.Document, servers ...document.Value) (int, error) {
	return doc.AppendMany(oaspath.Servers, servers...)
}

// AddSecurity appends security requirement objects to security.
// See [AddServer] for the no-op rule.
func AddSecurity(doc *document.Document, requirements ...document.Value) (int, error) {
	return doc.AppendMany(oaspath.Security, requirements...)
}

// AddTag appends tag objects to tags. See [AddServer] for the no-op rule.
func AddTag(doc *document.Document, tags ...document.Value) (int, error) {
	return doc.AppendMany(oaspath.Tags, tags...)
}

// AddPath stores a path item under paths. The route is used verbatim as one
// key, so "/v1.0/users" is not split on its dot.
func AddPath(doc *document.Document, route string, item document.Value) error {
	return doc.SetKeyed(oaspath.Paths, route, item)
}

// AddComponentsSchema stores a schema under components.schemas.
func AddComponentsSchema(doc *document.Document, name string, schema document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsSchemas, name, schema)
}

// AddComponentsParameter stores a parameter under components.parameters.
func AddComponentsParameter(doc *document.Document, name string, parameter document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsParameters, name, parameter)
}

// AddComponentsSecurityScheme stores a scheme under components.securitySchemes.
func AddComponentsSecurityScheme(doc *document.Document, name string, scheme document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsSecuritySchemes, name, scheme)
}

// AddComponentsRequestBody stores a request body under components.requestBodies.
func AddComponentsRequestBody(doc *document.Document, name string, body document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsRequestBodies, name, body)
}

// AddComponentsResponse stores a response under components.responses.
func AddComponentsResponse(doc *document.Document, name string, response document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsResponses, name, response)
}

// AddComponentsHeader stores a header under components.headers.
func AddComponentsHeader(doc *document.Document, name string, header document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsHeaders, name, header)
}

// AddComponentsExample stores an example under components.examples.
func AddComponentsExample(doc *document.Document, name string, example document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsExamples, name, example)
}

// AddComponentsLink stores a link under components.links.
func AddComponentsLink(doc *document.Document, name string, link document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsLinks, name, link)
}

// AddComponentsCallback stores a callback under components.callbacks.
func AddComponentsCallback(doc *document.Document, name string, callback document.Value) error {
	return doc.SetKeyed(oaspath.ComponentsCallbacks, name, callback)
}

// InitSequences sets every sequence section (servers, security, tags) that is
// absent to an empty array, so that later appends take effect. Sections that
// already exist are left alone, whatever they hold. It returns the paths it
// initialized.
func InitSequences(doc *document.Document) ([]oaspath.Path, error) {
	if doc == nil {
		return nil, &oaserrors.ArgumentError{Op: "initSequences", Arg: "document", Message: "nil document"}
	}
	var initialized []oaspath.Path
	for _, e := range oaspath.Sequences() {
		if _, ok := doc.Get(e.Path); ok {
			continue
		}
		if err := doc.Set(e.Path, document.Array{}); err != nil {
			return initialized, err
		}
		initialized = append(initialized, e.Path)
	}
	return initialized, nil
}
