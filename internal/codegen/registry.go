package codegen

import (
	"bytes"
	"go/token"
	"text/template"

	"github.com/erraggy/oasdoc/internal/naming"
	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/oaspath"
	"golang.org/x/tools/imports"
)

// DefaultPackage is the package name used when none is configured.
const DefaultPackage = "openapipaths"

// Option configures Registry output.
type Option func(*config)

type config struct {
	pkg       string
	generator string
}

func defaultConfig() *config {
	return &config{
		pkg:       DefaultPackage,
		generator: "oasdoc",
	}
}

// WithPackage sets the package clause of the generated file.
func WithPackage(name string) Option {
	return func(cfg *config) {
		cfg.pkg = name
	}
}

// WithGenerator sets the tool name recorded in the "Code generated" header.
func WithGenerator(name string) Option {
	return func(cfg *config) {
		cfg.generator = name
	}
}

type constant struct {
	Name    string
	Path    string
	Pointer string
	Kind    string
}

type fileData struct {
	Generator string
	Package   string
	Constants []constant
	Sequences []string
	Keyed     []string
}

var fileTemplate = template.Must(template.New("registry").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

// Package {{.Package}} names the sections of an OpenAPI 3.x definition.
package {{.Package}}

// Dotted paths of definition sections.
const (
{{- range .Constants}}
	{{.Name}} = {{printf "%q" .Path}} // {{.Kind}}
{{- end}}
)

// JSON Pointers of definition sections, usable as "$ref" values.
const (
{{- range .Constants}}
	{{.Name}}Pointer = {{printf "%q" .Pointer}}
{{- end}}
)

// Sequences lists the sections populated by appending.
var Sequences = []string{ {{- range $i, $s := .Sequences}}{{if $i}}, {{end}}{{$s}}{{end -}} }

// Keyed lists the sections populated by key.
var Keyed = []string{ {{- range $i, $s := .Keyed}}{{if $i}}, {{end}}{{$s}}{{end -}} }

// Segments splits a dotted section path into its keys.
func Segments(path string) []string {
	return strings.Split(path, ".")
}

// Ref returns the JSON Pointer of a named entry under a keyed section,
// escaping "~" and "/" in name.
func Ref(section, name string) string {
	r := strings.NewReplacer("~", "~0", "/", "~1")
	return "#/" + strings.ReplaceAll(section, ".", "/") + "/" + r.Replace(name)
}
`))

// Registry renders entries as a formatted Go source file.
func Registry(entries []oaspath.Entry, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if !token.IsIdentifier(cfg.pkg) {
		return nil, &oaserrors.ConfigError{Option: "package", Value: cfg.pkg, Message: "not a valid Go identifier"}
	}

	data := fileData{Generator: cfg.generator, Package: cfg.pkg}
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		name := naming.Exported(e.Path.Segments()...)
		if prev, dup := seen[name]; dup {
			return nil, &oaserrors.ConfigError{
				Option:  "entries",
				Value:   e.Name,
				Message: "identifier " + name + " already used by " + prev,
			}
		}
		seen[name] = e.Name

		data.Constants = append(data.Constants, constant{
			Name:    name,
			Path:    e.Path.String(),
			Pointer: e.Path.Pointer(),
			Kind:    e.Kind.String(),
		})
		switch e.Kind {
		case oaspath.KindSequence:
			data.Sequences = append(data.Sequences, name)
		case oaspath.KindKeyed:
			data.Keyed = append(data.Keyed, name)
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return formatAndFixImports(cfg.pkg+".go", buf.Bytes())
}

// formatAndFixImports formats src and adds the missing "strings" import.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
