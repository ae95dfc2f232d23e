package definition

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/oaspath"
)

// Group separates overwrite-style helpers from add-style helpers.
type Group string

const (
	// GroupSet holds helpers that overwrite one section.
	GroupSet Group = "set"
	// GroupAdd holds helpers that append to a sequence or store under a key.
	GroupAdd Group = "add"
)

// Mode describes how an [Operation] writes into the document.
type Mode int

const (
	// ModeSet overwrites the value at a fixed path.
	ModeSet Mode = iota
	// ModeSetPath overwrites the value at a caller-supplied dotted path.
	ModeSetPath
	// ModeKeyed stores one value under a key of a map section.
	ModeKeyed
	// ModeAppend appends values to a sequence section.
	ModeAppend
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSet:
		return "set"
	case ModeSetPath:
		return "set-path"
	case ModeKeyed:
		return "keyed"
	case ModeAppend:
		return "append"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Operation is one named helper. Names are stable identifiers used by recipe
// files, the CLI and the MCP server ("info_contact", "components_schema").
type Operation struct {
	Name  string
	Group Group
	Mode  Mode
	// Path is the section the operation writes to. It is zero for ModeSetPath.
	Path oaspath.Path
}

// QualifiedName returns "group.name", e.g. "add.server".
func (op Operation) QualifiedName() string {
	return string(op.Group) + "." + op.Name
}

// TakesTarget reports whether Apply needs a non-empty target: a key for
// ModeKeyed, a dotted path for ModeSetPath.
func (op Operation) TakesTarget() bool {
	return op.Mode == ModeKeyed || op.Mode == ModeSetPath
}

// Apply runs the operation against doc and returns how many values were
// written. target is the map key for ModeKeyed operations and the dotted
// path for ModeSetPath; it must be empty otherwise. Every mode except
// ModeAppend takes exactly one value.
//
// A ModeAppend operation whose sequence is absent writes nothing and returns
// 0 with a nil error.
func (op Operation) Apply(doc *document.Document, target string, values ...document.Value) (int, error) {
	name := op.QualifiedName()
	switch {
	case op.TakesTarget() && target == "":
		return 0, &oaserrors.ArgumentError{Op: name, Arg: "target", Message: "required"}
	case !op.TakesTarget() && target != "":
		return 0, &oaserrors.ArgumentError{Op: name, Arg: "target", Message: fmt.Sprintf("not accepted (got %q)", target)}
	case op.Mode != ModeAppend && len(values) != 1:
		return 0, &oaserrors.ArgumentError{Op: name, Arg: "value", Message: fmt.Sprintf("expected exactly one value, got %d", len(values))}
	}

	switch op.Mode {
	case ModeSet:
		if err := doc.Set(op.Path, values[0]); err != nil {
			return 0, err
		}
		return 1, nil
	case ModeSetPath:
		p, err := oaspath.Parse(target)
		if err != nil {
			return 0, err
		}
		if err := doc.Set(p, values[0]); err != nil {
			return 0, err
		}
		return 1, nil
	case ModeKeyed:
		if err := doc.SetKeyed(op.Path, target, values[0]); err != nil {
			return 0, err
		}
		return 1, nil
	case ModeAppend:
		return doc.AppendMany(op.Path, values...)
	default:
		return 0, &oaserrors.ConfigError{Option: "mode", Value: op.Mode, Message: "unknown operation mode"}
	}
}

// Target returns the path Apply would write to for the given target.
func (op Operation) Target(target string) (oaspath.Path, error) {
	switch op.Mode {
	case ModeSetPath:
		return oaspath.Parse(target)
	case ModeKeyed:
		if target == "" {
			return oaspath.Path{}, &oaserrors.ArgumentError{Op: op.QualifiedName(), Arg: "target", Message: "required"}
		}
		return op.Path.Child(target), nil
	default:
		return op.Path, nil
	}
}

var setOperations = []Operation{
	{Name: "openapi", Group: GroupSet, Mode: ModeSet, Path: oaspath.OpenAPI},
	{Name: "info", Group: GroupSet, Mode: ModeSet, Path: oaspath.Info},
	{Name: "info_contact", Group: GroupSet, Mode: ModeSet, Path: oaspath.InfoContact},
	{Name: "info_license", Group: GroupSet, Mode: ModeSet, Path: oaspath.InfoLicense},
	{Name: "externalDocs", Group: GroupSet, Mode: ModeSet, Path: oaspath.ExternalDocs},
	{Name: "other", Group: GroupSet, Mode: ModeSetPath},
}

var addOperations = []Operation{
	{Name: "server", Group: GroupAdd, Mode: ModeAppend, Path: oaspath.Servers},
	{Name: "security", Group: GroupAdd, Mode: ModeAppend, Path: oaspath.Security},
	{Name: "tag", Group: GroupAdd, Mode: ModeAppend, Path: oaspath.Tags},
	{Name: "path", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.Paths},
	{Name: "components_schema", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsSchemas},
	{Name: "components_parameter", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsParameters},
	{Name: "components_securityScheme", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsSecuritySchemes},
	{Name: "components_requestBody", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsRequestBodies},
	{Name: "components_response", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsResponses},
	{Name: "components_header", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsHeaders},
	{Name: "components_example", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsExamples},
	{Name: "components_link", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsLinks},
	{Name: "components_callback", Group: GroupAdd, Mode: ModeKeyed, Path: oaspath.ComponentsCallbacks},
}

// SetOperations returns a copy of the overwrite-style helpers.
func SetOperations() []Operation {
	return append([]Operation(nil), setOperations...)
}

// AddOperations returns a copy of the append and keyed helpers.
func AddOperations() []Operation {
	return append([]Operation(nil), addOperations...)
}

// LookupOperation finds a helper by group and name. Names match exactly
// first, then case-insensitively, so "externaldocs" resolves to
// "externalDocs".
func LookupOperation(group Group, name string) (Operation, error) {
	var ops []Operation
	switch group {
	case GroupSet:
		ops = setOperations
	case GroupAdd:
		ops = addOperations
	default:
		return Operation{}, &oaserrors.ConfigError{Option: "group", Value: string(group), Message: `must be "set" or "add"`}
	}

	for _, op := range ops {
		if op.Name == name {
			return op, nil
		}
	}
	for _, op := range ops {
		if strings.EqualFold(op.Name, name) {
			return op, nil
		}
	}

	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	return Operation{}, &oaserrors.ConfigError{
		Option:  string(group),
		Value:   name,
		Message: "unknown operation; valid: " + strings.Join(names, ", "),
	}
}
