package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/erraggy/oasdoc/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair over a fresh
// workspace and returns the connected client session. The server is shut
// down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	withConfig(t, defaultTestConfig())

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdoc-test", Version: "test"},
		nil,
	)
	registerAllTools(server, newWorkspace())

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

// callTool calls a tool and requires a successful, non-error result.
func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.False(t, result.IsError, "%s failed: %v", name, result.Content)
	return unmarshalStructured(t, result)
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Tools, 6, "expected 6 registered tools")

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	for _, name := range []string{"paths", "get", "set", "add", "render", "reset"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}

	// Every tool should have a non-empty description.
	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
}

func TestIntegration_AssembleDocument(t *testing.T) {
	session := startTestSession(t)

	reset := callTool(t, session, "reset", map[string]any{"init_sequences": true})
	assert.Equal(t, []any{"servers", "security", "tags"}, reset["initialized"])

	callTool(t, session, "set", map[string]any{"name": "openapi", "value": "3.0.3"})
	callTool(t, session, "set", map[string]any{
		"name":       "info",
		"value_json": `{"title":"Pets","version":"1.0.0"}`,
	})
	callTool(t, session, "set", map[string]any{"path": "info.x-audience", "value": "internal"})

	added := callTool(t, session, "add", map[string]any{
		"name":   "server",
		"values": []any{map[string]any{"url": "https://a.example.com"}, map[string]any{"url": "https://b.example.com"}},
	})
	assert.Equal(t, float64(2), added["written"])
	assert.Nil(t, added["skipped"])

	callTool(t, session, "add", map[string]any{
		"name":       "components_schema",
		"key":        "Pet",
		"value_json": `{"type":"object","required":["name"]}`,
	})

	got := callTool(t, session, "get", map[string]any{"path": "info"})
	assert.Equal(t, true, got["found"])
	assert.Equal(t, `{"title":"Pets","version":"1.0.0","x-audience":"internal"}`, got["value"])

	rendered := callTool(t, session, "render", map[string]any{})
	content, ok := rendered["content"].(string)
	require.True(t, ok)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(content), &decoded))
	assert.Equal(t, "3.0.3", decoded["openapi"])
	assert.Len(t, decoded["servers"], 2)
	assert.Equal(t, []any{}, decoded["tags"])
	assert.Contains(t, decoded["components"].(map[string]any)["schemas"], "Pet")
}

func TestIntegration_AddToAbsentSequence(t *testing.T) {
	session := startTestSession(t)

	added := callTool(t, session, "add", map[string]any{
		"name":  "tag",
		"value": map[string]any{"name": "pets"},
	})
	assert.Equal(t, true, added["skipped"])
	assert.Equal(t, float64(0), added["written"])

	got := callTool(t, session, "get", map[string]any{"path": "tags"})
	assert.Equal(t, false, got["found"])
}

func TestIntegration_SeedAndGet(t *testing.T) {
	session := startTestSession(t)

	reset := callTool(t, session, "reset", map[string]any{
		"seed": map[string]any{"content": testutil.ScenarioJSON},
	})
	assert.Equal(t, []any{"openapi", "info", "components"}, reset["keys"])

	got := callTool(t, session, "get", map[string]any{"path": "components.schemas.User.properties.id.type"})
	assert.Equal(t, `"integer"`, got["value"])
	assert.Equal(t, "string", got["kind"])
}

func TestIntegration_ErrorResult(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "add",
		Arguments: map[string]any{"name": "components_schema", "value": map[string]any{}},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "components_schema")
}

// unmarshalStructured extracts the structured output from a CallToolResult
// as a map, handling both StructuredContent and TextContent fallback.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
