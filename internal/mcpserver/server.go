// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes OpenAPI document assembly as MCP tools over stdio.
//
// The server holds one document per process. Tools read it (get, render),
// mutate it through the named helpers (set, add) and replace it (reset).
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasdoc MCP server: assembles an OpenAPI document one section at a time.

The server keeps a single working document. Start with reset (optionally from a seed file or inline content), then call set and add with helper names listed by the paths tool, inspect with get, and finish with render.

Sequence sections (servers, security, tags) are never created by add: appending to an absent sequence writes nothing and reports skipped=true. Call reset with init_sequences=true, or set the section to [] with set name=other, before adding to them.

Configuration: defaults are configurable via OASDOC_* environment variables set in your MCP client config.
- OASDOC_INIT_SEQUENCES (default: false): initialize sequence sections on every reset
- OASDOC_RENDER_FORMAT (default: json): default format of render
- OASDOC_MAX_INLINE_SIZE (default: 10485760): byte limit for inline seed content and values
- OASDOC_ALLOW_FILES (default: true): allow reset to read seed files and render to write output files`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdoc", Version: oasdoc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, newWorkspace())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server, ws *workspace) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "paths",
		Description: "List the OpenAPI sections the assembler knows (semantic name, JSON pointer, kind) and the helper names accepted by set and add. Call this first to discover valid names.",
	}, handlePaths)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get",
		Description: "Read a value from the working document by dotted path (e.g. info.title, components.schemas.User). An empty path returns the whole document. Returns found=false when nothing is stored there.",
	}, ws.handleGet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set",
		Description: "Overwrite a section of the working document with a set helper: openapi, info, info_contact, info_license, externalDocs, or other (requires path). Missing parent objects are created. Pass the value as JSON via value, or as JSON text via value_json.",
	}, ws.handleSet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add",
		Description: "Add to the working document with an add helper. server, security and tag append one or more values to an existing array and report skipped=true when the array is absent. path and components_* helpers require key and store exactly one value under it, replacing any previous value.",
	}, ws.handleAdd)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Serialize the working document as JSON or YAML with key order preserved. Use output to write to a file instead of returning the content inline.",
	}, ws.handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reset",
		Description: "Replace the working document. Without a seed it starts empty; file or content seeds it from an existing JSON or YAML document. init_sequences=true sets absent servers, security and tags to empty arrays so add can append to them.",
	}, ws.handleReset)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
