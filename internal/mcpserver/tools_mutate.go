package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/erraggy/oasdoc/definition"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type setInput struct {
	Name      string `json:"name,omitempty"       jsonschema:"Set helper: openapi, info, info_contact, info_license, externalDocs or other (default other)"`
	Path      string `json:"path,omitempty"       jsonschema:"Dotted target path, required by the other helper (e.g. info.x-audience)"`
	Value     any    `json:"value,omitempty"      jsonschema:"The value to store"`
	ValueJSON string `json:"value_json,omitempty" jsonschema:"The value as JSON or YAML text; keeps object key order"`
}

type mutateOutput struct {
	Operation string `json:"operation"`
	Path      string `json:"path"`
	Written   int    `json:"written"`
	Skipped   bool   `json:"skipped,omitempty"`
}

func (ws *workspace) handleSet(_ context.Context, _ *mcp.CallToolRequest, input setInput) (*mcp.CallToolResult, mutateOutput, error) {
	name := input.Name
	if name == "" {
		name = "other"
	}
	op, err := definition.LookupOperation(definition.GroupSet, name)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}
	if !op.TakesTarget() && input.Path != "" {
		return errResult(fmt.Errorf("%s does not take a path; use name=other to set an arbitrary path", op.QualifiedName())), mutateOutput{}, nil
	}
	target, err := op.Target(input.Path)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}

	v, err := decodeValue(input.Value, input.ValueJSON)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}

	n, err := ws.apply(op, input.Path, v)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}
	slog.Debug("applied", "operation", op.QualifiedName(), "path", target.String())
	return nil, mutateOutput{Operation: op.QualifiedName(), Path: target.String(), Written: n}, nil
}

type addInput struct {
	Name      string `json:"name"                 jsonschema:"Add helper: server, security, tag, path or components_* (e.g. components_schema)"`
	Key       string `json:"key,omitempty"        jsonschema:"Map key for path and components_* helpers, e.g. /pets or User"`
	Value     any    `json:"value,omitempty"      jsonschema:"A single value to add"`
	Values    []any  `json:"values,omitempty"     jsonschema:"Several values to append in order (server, security and tag only)"`
	ValueJSON string `json:"value_json,omitempty" jsonschema:"A single value as JSON or YAML text; keeps object key order"`
}

func (ws *workspace) handleAdd(_ context.Context, _ *mcp.CallToolRequest, input addInput) (*mcp.CallToolResult, mutateOutput, error) {
	op, err := definition.LookupOperation(definition.GroupAdd, input.Name)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}
	target, err := op.Target(input.Key)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}

	values, err := decodeValues(input.Values, input.Value, input.ValueJSON)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}
	if op.Mode != definition.ModeAppend && len(values) != 1 {
		return errResult(fmt.Errorf("%s takes exactly one value, got %d", op.QualifiedName(), len(values))), mutateOutput{}, nil
	}

	n, err := ws.apply(op, input.Key, values...)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}

	output := mutateOutput{Operation: op.QualifiedName(), Path: target.String(), Written: n}
	if op.Mode == definition.ModeAppend && n == 0 {
		output.Skipped = true
		slog.Warn("append skipped: sequence is absent or not an array", "operation", op.QualifiedName(), "path", target.String())
	}
	return nil, output, nil
}
