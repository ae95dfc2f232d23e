package definition

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/internal/fileutil"
	"github.com/erraggy/oasdoc/oaspath"
)

// Builder assembles a definition through a fluent API. Every method applies
// one named helper to the underlying document immediately; failures are
// collected and reported together by Build.
//
// Concurrency: Builder instances are not safe for concurrent use.
type Builder struct {
	doc     *document.Document
	logger  Logger
	errors  BuildErrors
	skipped []string
}

// New creates a Builder.
//
//	doc, err := definition.New().
//		SetOpenAPI("3.0.0").
//		SetInfo(document.Obj("title", "Pets", "version", "1.0")).
//		AddComponentsSchema("Pet", document.Obj("type", "object")).
//		Build()
func New(opts ...BuilderOption) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	doc := cfg.seed
	if doc == nil {
		doc = document.New()
	}
	b := &Builder{doc: doc, logger: cfg.logger}

	if cfg.initSequences {
		initialized, err := InitSequences(doc)
		for _, p := range initialized {
			b.logger.Debug("initialized sequence", "path", p.String())
		}
		if err != nil {
			b.errors = append(b.errors, &OperationError{Operation: "initSequences", Cause: err})
		}
	}
	return b
}

// Document returns the document being assembled, including any partial
// changes made before an error.
func (b *Builder) Document() *document.Document {
	return b.doc
}

// Errors returns the errors collected so far.
func (b *Builder) Errors() []error {
	return b.errors.Unwrap()
}

// Skipped returns the qualified names of append helpers that wrote nothing
// because their sequence was absent or not an array.
func (b *Builder) Skipped() []string {
	return append([]string(nil), b.skipped...)
}

// Do applies op and returns how many values it wrote. Unlike the chained
// methods it also returns the error, which is still recorded for Build.
func (b *Builder) Do(op Operation, target string, values ...document.Value) (int, error) {
	name := op.QualifiedName()
	n, err := op.Apply(b.doc, target, values...)
	if err != nil {
		b.logger.Error("operation failed", "operation", name, "target", target, "error", err)
		b.errors = append(b.errors, &OperationError{Operation: name, Target: target, Cause: err})
		return n, err
	}

	attrs := []any{"operation", name}
	if p, perr := op.Target(target); perr == nil {
		attrs = append(attrs, "path", p.String())
	}
	if op.Mode == ModeAppend && n == 0 && len(values) > 0 {
		b.skipped = append(b.skipped, name)
		b.logger.Warn("append skipped: sequence is absent or not an array", attrs...)
		return n, nil
	}
	b.logger.Debug("applied", append(attrs, "count", n)...)
	return n, nil
}

// Apply is the chaining form of Do.
func (b *Builder) Apply(op Operation, target string, values ...document.Value) *Builder {
	_, _ = b.Do(op, target, values...)
	return b
}

func (b *Builder) named(group Group, name, target string, values ...document.Value) *Builder {
	op, err := LookupOperation(group, name)
	if err != nil {
		b.errors = append(b.errors, &OperationError{Operation: string(group) + "." + name, Target: target, Cause: err})
		return b
	}
	return b.Apply(op, target, values...)
}

// SetOpenAPI sets the OpenAPI version string.
func (b *Builder) SetOpenAPI(version string) *Builder {
	return b.named(GroupSet, "openapi", "", document.String(version))
}

// SetInfo replaces the info object.
func (b *Builder) SetInfo(info document.Value) *Builder {
	return b.named(GroupSet, "info", "", info)
}

// SetInfoContact replaces info.contact.
func (b *Builder) SetInfoContact(contact document.Value) *Builder {
	return b.named(GroupSet, "info_contact", "", contact)
}

// SetInfoLicense replaces info.license.
func (b *Builder) SetInfoLicense(license document.Value) *Builder {
	return b.named(GroupSet, "info_license", "", license)
}

// SetExternalDocs replaces externalDocs.
func (b *Builder) SetExternalDocs(externalDocs document.Value) *Builder {
	return b.named(GroupSet, "externalDocs", "", externalDocs)
}

// SetOther stores v at an arbitrary path. The path is used as given, so
// segments containing dots stay whole.
func (b *Builder) SetOther(p oaspath.Path, v document.Value) *Builder {
	const name = "set.other"
	target := p.String()
	if err := SetOther(b.doc, p, v); err != nil {
		b.logger.Error("operation failed", "operation", name, "target", target, "error", err)
		b.errors = append(b.errors, &OperationError{Operation: name, Target: target, Cause: err})
		return b
	}
	b.logger.Debug("applied", "operation", name, "path", target, "count", 1)
	return b
}

// AddServer appends servers. It is a logged no-op until servers exists.
func (b *Builder) AddServer(servers ...document.Value) *Builder {
	return b.named(GroupAdd, "server", "", servers...)
}

// AddSecurity appends security requirements.
func (b *Builder) AddSecurity(requirements ...document.Value) *Builder {
	return b.named(GroupAdd, "security", "", requirements...)
}

// AddTag appends tags.
func (b *Builder) AddTag(tags ...document.Value) *Builder {
	return b.named(GroupAdd, "tag", "", tags...)
}

// AddPath stores a path item under paths.
func (b *Builder) AddPath(route string, item document.Value) *Builder {
	return b.named(GroupAdd, "path", route, item)
}

// AddComponentsSchema stores a schema under components.schemas.
func (b *Builder) AddComponentsSchema(name string, schema document.Value) *Builder {
	return b.named(GroupAdd, "components_schema", name, schema)
}

// AddComponentsParameter stores a parameter under components.parameters.
func (b *Builder) AddComponentsParameter(name string, parameter document.Value) *Builder {
	return b.named(GroupAdd, "components_parameter", name, parameter)
}

// AddComponentsSecurityScheme stores a scheme under components.securitySchemes.
func (b *Builder) AddComponentsSecurityScheme(name string, scheme document.Value) *Builder {
	return b.named(GroupAdd, "components_securityScheme", name, scheme)
}

// AddComponentsRequestBody stores a request body under components.requestBodies.
func (b *Builder) AddComponentsRequestBody(name string, body document.Value) *Builder {
	return b.named(GroupAdd, "components_requestBody", name, body)
}

// AddComponentsResponse stores a response under components.responses.
func (b *Builder) AddComponentsResponse(name string, response document.Value) *Builder {
	return b.named(GroupAdd, "components_response", name, response)
}

// AddComponentsHeader stores a header under components.headers.
func (b *Builder) AddComponentsHeader(name string, header document.Value) *Builder {
	return b.named(GroupAdd, "components_header", name, header)
}

// AddComponentsExample stores an example under components.examples.
func (b *Builder) AddComponentsExample(name string, example document.Value) *Builder {
	return b.named(GroupAdd, "components_example", name, example)
}

// AddComponentsLink stores a link under components.links.
func (b *Builder) AddComponentsLink(name string, link document.Value) *Builder {
	return b.named(GroupAdd, "components_link", name, link)
}

// AddComponentsCallback stores a callback under components.callbacks.
func (b *Builder) AddComponentsCallback(name string, callback document.Value) *Builder {
	return b.named(GroupAdd, "components_callback", name, callback)
}

// Build returns the assembled document, or a BuildErrors listing every
// helper call that failed.
func (b *Builder) Build() (*document.Document, error) {
	if len(b.errors) > 0 {
		return nil, b.errors
	}
	return b.doc, nil
}

// BuildJSON returns the document as indented JSON.
func (b *Builder) BuildJSON() ([]byte, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return doc.JSON("  ")
}

// BuildYAML returns the document as YAML.
func (b *Builder) BuildYAML() ([]byte, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return doc.YAML()
}

// WriteFile writes the document to a file.
// The format is inferred from the file extension (.json for JSON, .yaml/.yml for YAML).
func (b *Builder) WriteFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = b.BuildJSON()
	default:
		data, err = b.BuildYAML()
	}
	if err != nil {
		return fmt.Errorf("definition: failed to marshal document: %w", err)
	}

	if _, err := fileutil.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("definition: failed to write file: %w", err)
	}
	return nil
}
