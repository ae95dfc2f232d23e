package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/oasdoc/definition"
	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/oaspath"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type pathsInput struct {
	Kind string `json:"kind,omitempty" jsonschema:"Only list sections of this kind: scalar, object, sequence or keyed"`
}

type sectionInfo struct {
	Name    string `json:"name"`
	Pointer string `json:"pointer"`
	Kind    string `json:"kind"`
}

type operationInfo struct {
	Name        string `json:"name"`
	Mode        string `json:"mode"`
	Path        string `json:"path,omitempty"`
	TakesTarget bool   `json:"takes_target"`
}

type pathsOutput struct {
	Sections      []sectionInfo   `json:"sections"`
	SetOperations []operationInfo `json:"set_operations"`
	AddOperations []operationInfo `json:"add_operations"`
}

func handlePaths(_ context.Context, _ *mcp.CallToolRequest, input pathsInput) (*mcp.CallToolResult, pathsOutput, error) {
	kind := strings.ToLower(input.Kind)
	switch kind {
	case "", oaspath.KindScalar.String(), oaspath.KindObject.String(), oaspath.KindSequence.String(), oaspath.KindKeyed.String():
	default:
		return errResult(fmt.Errorf("invalid kind %q; valid values: scalar, object, sequence, keyed", input.Kind)), pathsOutput{}, nil
	}

	var output pathsOutput
	for _, e := range oaspath.Entries() {
		if kind != "" && e.Kind.String() != kind {
			continue
		}
		output.Sections = append(output.Sections, sectionInfo{
			Name:    e.Name,
			Pointer: e.Path.Pointer(),
			Kind:    e.Kind.String(),
		})
	}
	output.SetOperations = operationInfos(definition.SetOperations())
	output.AddOperations = operationInfos(definition.AddOperations())
	return nil, output, nil
}

func operationInfos(ops []definition.Operation) []operationInfo {
	out := make([]operationInfo, len(ops))
	for i, op := range ops {
		out[i] = operationInfo{
			Name:        op.Name,
			Mode:        op.Mode.String(),
			TakesTarget: op.TakesTarget(),
		}
		if !op.Path.IsZero() {
			out[i].Path = op.Path.String()
		}
	}
	return out
}

type getInput struct {
	Path   string `json:"path,omitempty"   jsonschema:"Dotted path into the document, e.g. info.title. Empty returns the whole document."`
	Format string `json:"format,omitempty" jsonschema:"Encoding of the returned value: json (default) or yaml"`
}

type getOutput struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
	Kind  string `json:"kind,omitempty"`
	Value string `json:"value,omitempty"`
}

func (ws *workspace) handleGet(_ context.Context, _ *mcp.CallToolRequest, input getInput) (*mcp.CallToolResult, getOutput, error) {
	format, err := parseFormat(input.Format, "json")
	if err != nil {
		return errResult(err), getOutput{}, nil
	}

	var p oaspath.Path
	if input.Path != "" {
		if p, err = oaspath.Parse(input.Path); err != nil {
			return errResult(err), getOutput{}, nil
		}
	}

	output := getOutput{Path: input.Path}
	err = ws.read(func(doc *document.Document) error {
		var v document.Value = doc.Root()
		if !p.IsZero() {
			var ok bool
			if v, ok = doc.Get(p); !ok {
				return nil
			}
		}
		output.Found = true
		output.Kind = v.Kind().String()
		data, err := encodeValue(v, format)
		if err != nil {
			return err
		}
		output.Value = string(data)
		return nil
	})
	if err != nil {
		return errResult(err), getOutput{}, nil
	}
	return nil, output, nil
}

// parseFormat normalizes a json|yaml format argument, applying fallback when
// it is empty.
func parseFormat(format, fallback string) (string, error) {
	if format == "" {
		format = fallback
	}
	switch f := strings.ToLower(format); f {
	case "json", "yaml":
		return f, nil
	case "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("invalid format %q; valid values: json, yaml", format)
	}
}

func encodeValue(v document.Value, format string) ([]byte, error) {
	if format == "yaml" {
		return document.MarshalYAML(v)
	}
	return document.MarshalJSON(v)
}
