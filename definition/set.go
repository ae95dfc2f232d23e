package definition

import (
	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/oaspath"
)

// SetOpenAPI stores the OpenAPI version string ("3.0.0") at openapi.
func SetOpenAPI(doc *document.Document, version string) error {
	return doc.Set(oaspath.OpenAPI, document.String(version))
}

// SetInfo replaces the info object.
func SetInfo(doc *document.Document, info document.Value) error {
	return doc.Set(oaspath.Info, info)
}

// SetInfoContact replaces info.contact, creating info if needed.
func SetInfoContact(doc *document.Document, contact document.Value) error {
	return doc.Set(oaspath.InfoContact, contact)
}

// SetInfoLicense replaces info.license, creating info if needed.
func SetInfoLicense(doc *document.Document, license document.Value) error {
	return doc.Set(oaspath.InfoLicense, license)
}

// SetExternalDocs replaces the top-level externalDocs object.
func SetExternalDocs(doc *document.Document, externalDocs document.Value) error {
	return doc.Set(oaspath.ExternalDocs, externalDocs)
}

// SetOther stores v at an arbitrary path. It is the escape hatch for
// locations that have no dedicated helper, such as extensions:
//
//	definition.SetOther(doc, oaspath.Info.Child("x-audience"), document.String("internal"))
func SetOther(doc *document.Document, p oaspath.Path, v document.Value) error {
	return doc.Set(p, v)
}
