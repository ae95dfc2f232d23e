// Package testutil provides OpenAPI fixtures and file helpers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasdoc/document"
)

// ScenarioJSON is the serialized document produced by setting openapi and
// info on an empty document and adding a User schema.
const ScenarioJSON = `{"openapi":"3.0.0","info":{"title":"T","version":"1.0"},"components":{"schemas":{"User":{"type":"object","properties":{"id":{"type":"integer"}}}}}}`

// UserSchema is the schema used by ScenarioJSON.
func UserSchema() *document.Object {
	return document.Obj(
		"type", "object",
		"properties", document.Obj("id", document.Obj("type", "integer")),
	)
}

// NewPetstoreDocument returns a small but complete OpenAPI 3.0 document with
// every sequence section initialized.
func NewPetstoreDocument() *document.Document {
	return document.FromObject(document.Obj(
		"openapi", "3.0.3",
		"info", document.Obj(
			"title", "Petstore",
			"version", "1.0.0",
			"license", document.Obj("name", "MIT"),
		),
		"servers", document.Arr(document.Obj("url", "https://petstore.example.com/v1")),
		"paths", document.Obj(
			"/pets", document.Obj(
				"get", document.Obj(
					"operationId", "listPets",
					"responses", document.Obj("200", document.Obj("description", "A list of pets")),
				),
			),
		),
		"components", document.Obj(
			"schemas", document.Obj(
				"Pet", document.Obj(
					"type", "object",
					"required", document.Arr("id", "name"),
					"properties", document.Obj(
						"id", document.Obj("type", "integer", "format", "int64"),
						"name", document.Obj("type", "string"),
					),
				),
			),
		),
		"security", document.Array{},
		"tags", document.Arr(document.Obj("name", "pets")),
	))
}

// WriteTempFile writes data to name inside a fresh temporary directory and
// returns the path. The directory is removed when the test completes.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteTempYAML writes doc as YAML to a temporary file and returns the path.
func WriteTempYAML(t *testing.T, doc *document.Document) string {
	t.Helper()

	data, err := doc.YAML()
	if err != nil {
		t.Fatalf("failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "openapi.yaml", data)
}

// WriteTempJSON writes doc as indented JSON to a temporary file and returns
// the path.
func WriteTempJSON(t *testing.T, doc *document.Document) string {
	t.Helper()

	data, err := doc.JSON("  ")
	if err != nil {
		t.Fatalf("failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "openapi.json", data)
}
