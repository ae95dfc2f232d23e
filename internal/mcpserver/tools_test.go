package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/erraggy/oasdoc/internal/testutil"
	"github.com/erraggy/oasdoc/oaspath"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig() *serverConfig {
	return &serverConfig{
		RenderFormat:  "json",
		MaxInlineSize: 1 << 20,
		AllowFiles:    true,
	}
}

// newTestWorkspace returns a workspace over an empty document with default
// configuration installed for the test.
func newTestWorkspace(t *testing.T) *workspace {
	t.Helper()
	withConfig(t, defaultTestConfig())
	return newWorkspace()
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return text.Text
}

func mustGet(t *testing.T, ws *workspace, path string) getOutput {
	t.Helper()
	res, out, err := ws.handleGet(context.Background(), nil, getInput{Path: path})
	require.NoError(t, err)
	require.Nil(t, res)
	return out
}

func TestHandlePaths(t *testing.T) {
	t.Run("all sections", func(t *testing.T) {
		res, out, err := handlePaths(context.Background(), nil, pathsInput{})
		require.NoError(t, err)
		assert.Nil(t, res)
		assert.Len(t, out.Sections, len(oaspath.Entries()))
		assert.Len(t, out.SetOperations, 6)
		assert.Len(t, out.AddOperations, 13)
		assert.Equal(t, sectionInfo{Name: "openapi", Pointer: "#/openapi", Kind: "scalar"}, out.Sections[0])
	})

	t.Run("kind filter", func(t *testing.T) {
		_, out, err := handlePaths(context.Background(), nil, pathsInput{Kind: "Sequence"})
		require.NoError(t, err)
		names := make([]string, len(out.Sections))
		for i, s := range out.Sections {
			names[i] = s.Name
		}
		assert.Equal(t, []string{"servers", "security", "tags"}, names)
	})

	t.Run("invalid kind", func(t *testing.T) {
		res, _, err := handlePaths(context.Background(), nil, pathsInput{Kind: "list"})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "invalid kind")
	})

	t.Run("operation info", func(t *testing.T) {
		_, out, err := handlePaths(context.Background(), nil, pathsInput{})
		require.NoError(t, err)
		assert.Equal(t, operationInfo{Name: "other", Mode: "set-path", TakesTarget: true}, out.SetOperations[5])
		assert.Equal(t, operationInfo{Name: "server", Mode: "append", Path: "servers"}, out.AddOperations[0])
		assert.Equal(t, operationInfo{Name: "components_schema", Mode: "keyed", Path: "components.schemas", TakesTarget: true}, out.AddOperations[4])
	})
}

func TestWorkspace_AssemblesScenarioDocument(t *testing.T) {
	ws := newTestWorkspace(t)
	ctx := context.Background()

	res, _, err := ws.handleSet(ctx, nil, setInput{Name: "openapi", Value: "3.0.0"})
	require.NoError(t, err)
	require.Nil(t, res)

	res, _, err = ws.handleSet(ctx, nil, setInput{Name: "info", ValueJSON: `{"title":"T","version":"1.0"}`})
	require.NoError(t, err)
	require.Nil(t, res)

	res, out, err := ws.handleAdd(ctx, nil, addInput{
		Name:      "components_schema",
		Key:       "User",
		ValueJSON: `{"type":"object","properties":{"id":{"type":"integer"}}}`,
	})
	require.NoError(t, err)
	require.Nil(t, res)
	assert.Equal(t, mutateOutput{Operation: "add.components_schema", Path: "components.schemas.User", Written: 1}, out)

	got := mustGet(t, ws, "")
	assert.True(t, got.Found)
	assert.Equal(t, "object", got.Kind)
	assert.Equal(t, testutil.ScenarioJSON, got.Value)
}

func TestHandleSet(t *testing.T) {
	ctx := context.Background()

	t.Run("other defaults and creates parents", func(t *testing.T) {
		ws := newTestWorkspace(t)
		res, out, err := ws.handleSet(ctx, nil, setInput{Path: "info.x-audience", Value: "internal"})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, "set.other", out.Operation)
		assert.Equal(t, "info.x-audience", out.Path)

		got := mustGet(t, ws, "info")
		assert.Equal(t, `{"x-audience":"internal"}`, got.Value)
	})

	t.Run("case-insensitive name", func(t *testing.T) {
		ws := newTestWorkspace(t)
		res, out, err := ws.handleSet(ctx, nil, setInput{Name: "externaldocs", Value: map[string]any{"url": "https://example.com"}})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, "set.externalDocs", out.Operation)
		assert.Equal(t, `"https://example.com"`, mustGet(t, ws, "externalDocs.url").Value)
	})

	errorCases := []struct {
		name  string
		input setInput
		want  string
	}{
		{"unknown helper", setInput{Name: "title", Value: "x"}, "unknown operation"},
		{"other without path", setInput{Value: "x"}, "empty path"},
		{"path on fixed helper", setInput{Name: "openapi", Path: "info", Value: "3.0.0"}, "does not take a path"},
		{"no value", setInput{Name: "openapi"}, "a value is required"},
		{"both values", setInput{Name: "openapi", Value: "3.0.0", ValueJSON: `"3.1.0"`}, "only one of"},
		{"bad path", setInput{Path: "info..title", Value: "x"}, "invalid argument"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ws := newTestWorkspace(t)
			res, _, err := ws.handleSet(ctx, nil, tc.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tc.want)
		})
	}

	t.Run("traversal through scalar leaves document unchanged", func(t *testing.T) {
		ws := newTestWorkspace(t)
		_, _, err := ws.handleSet(ctx, nil, setInput{Name: "openapi", Value: "3.0.0"})
		require.NoError(t, err)

		res, _, err := ws.handleSet(ctx, nil, setInput{Path: "openapi.major", Value: 3})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
		assert.Equal(t, `"3.0.0"`, mustGet(t, ws, "openapi").Value)
	})
}

func TestHandleAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("append to absent sequence is skipped", func(t *testing.T) {
		ws := newTestWorkspace(t)
		res, out, err := ws.handleAdd(ctx, nil, addInput{Name: "server", Value: map[string]any{"url": "https://a"}})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.True(t, out.Skipped)
		assert.Equal(t, 0, out.Written)
		assert.False(t, mustGet(t, ws, "servers").Found)
	})

	t.Run("append after init sequences", func(t *testing.T) {
		ws := newTestWorkspace(t)
		initSeq := true
		_, _, err := ws.handleReset(ctx, nil, resetInput{InitSequences: &initSeq})
		require.NoError(t, err)

		res, out, err := ws.handleAdd(ctx, nil, addInput{
			Name:   "server",
			Values: []any{map[string]any{"url": "https://a"}, map[string]any{"url": "https://b"}},
		})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.False(t, out.Skipped)
		assert.Equal(t, 2, out.Written)
		assert.Equal(t, `[{"url":"https://a"},{"url":"https://b"}]`, mustGet(t, ws, "servers").Value)
	})

	t.Run("keyed replaces previous value", func(t *testing.T) {
		ws := newTestWorkspace(t)
		for _, typ := range []string{"object", "string"} {
			res, _, err := ws.handleAdd(ctx, nil, addInput{Name: "components_schema", Key: "User", Value: map[string]any{"type": typ}})
			require.NoError(t, err)
			require.Nil(t, res)
		}
		assert.Equal(t, `{"type":"string"}`, mustGet(t, ws, "components.schemas.User").Value)
	})

	t.Run("route with dots is one key", func(t *testing.T) {
		ws := newTestWorkspace(t)
		res, out, err := ws.handleAdd(ctx, nil, addInput{Name: "path", Key: "/v1.0/pets", ValueJSON: `{"get":{}}`})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, 1, out.Written)

		got := mustGet(t, ws, "")
		assert.Equal(t, `{"paths":{"/v1.0/pets":{"get":{}}}}`, got.Value)
	})

	errorCases := []struct {
		name  string
		input addInput
		want  string
	}{
		{"unknown helper", addInput{Name: "operation", Value: "x"}, "unknown operation"},
		{"keyed without key", addInput{Name: "components_schema", Value: map[string]any{}}, "target"},
		{"keyed with several values", addInput{Name: "components_schema", Key: "A", Values: []any{"x", "y"}}, "exactly one value"},
		{"append with key", addInput{Name: "tag", Key: "pets", Value: map[string]any{"name": "pets"}}, "not accepted"},
		{"values and value", addInput{Name: "tag", Values: []any{"x"}, Value: "y"}, "not both"},
		{"null element", addInput{Name: "tag", Values: []any{"x", nil}}, "values[1]"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ws := newTestWorkspace(t)
			res, _, err := ws.handleAdd(ctx, nil, tc.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tc.want)
		})
	}
}

func TestHandleGet(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t)
	_, _, err := ws.handleReset(ctx, nil, resetInput{Seed: seedInput{Content: testutil.ScenarioJSON}})
	require.NoError(t, err)

	t.Run("scalar", func(t *testing.T) {
		got := mustGet(t, ws, "info.title")
		assert.Equal(t, getOutput{Path: "info.title", Found: true, Kind: "string", Value: `"T"`}, got)
	})

	t.Run("absent", func(t *testing.T) {
		got := mustGet(t, ws, "info.contact")
		assert.Equal(t, getOutput{Path: "info.contact"}, got)
	})

	t.Run("yaml", func(t *testing.T) {
		res, got, err := ws.handleGet(ctx, nil, getInput{Path: "info", Format: "yaml"})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Contains(t, got.Value, "title: T")
	})

	t.Run("invalid format", func(t *testing.T) {
		res, _, err := ws.handleGet(ctx, nil, getInput{Format: "xml"})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})
}

func TestHandleReset(t *testing.T) {
	ctx := context.Background()

	t.Run("from file", func(t *testing.T) {
		ws := newTestWorkspace(t)
		path := testutil.WriteTempJSON(t, testutil.NewPetstoreDocument())

		res, out, err := ws.handleReset(ctx, nil, resetInput{Seed: seedInput{File: path}})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, []string{"openapi", "info", "servers", "paths", "components", "security", "tags"}, out.Keys)
		assert.Empty(t, out.Initialized)
		assert.Equal(t, `"Petstore"`, mustGet(t, ws, "info.title").Value)
	})

	t.Run("init sequences reports only absent sections", func(t *testing.T) {
		ws := newTestWorkspace(t)
		initSeq := true
		res, out, err := ws.handleReset(ctx, nil, resetInput{
			Seed:          seedInput{Content: "openapi: 3.0.0\ntags:\n  - name: pets\n"},
			InitSequences: &initSeq,
		})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, []string{"servers", "security"}, out.Initialized)
		assert.Equal(t, `[{"name":"pets"}]`, mustGet(t, ws, "tags").Value)
	})

	t.Run("config default applies", func(t *testing.T) {
		c := defaultTestConfig()
		c.InitSequences = true
		withConfig(t, c)
		ws := newWorkspace()

		assert.Equal(t, `[]`, mustGet(t, ws, "servers").Value)

		res, out, err := ws.handleReset(ctx, nil, resetInput{})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, []string{"servers", "security", "tags"}, out.Keys)
	})

	t.Run("empty", func(t *testing.T) {
		ws := newTestWorkspace(t)
		_, _, err := ws.handleSet(ctx, nil, setInput{Name: "openapi", Value: "3.0.0"})
		require.NoError(t, err)

		res, out, err := ws.handleReset(ctx, nil, resetInput{})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, []string{}, out.Keys)
		assert.False(t, mustGet(t, ws, "openapi").Found)
	})

	t.Run("keys are read before concurrent writes", func(t *testing.T) {
		ws := newTestWorkspace(t)
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				res, out, err := ws.handleReset(ctx, nil, resetInput{Seed: seedInput{Content: "openapi: 3.0.0\n"}})
				assert.NoError(t, err)
				assert.Nil(t, res)
				assert.Equal(t, []string{"openapi"}, out.Keys)
			}()
			go func() {
				defer wg.Done()
				_, _, err := ws.handleAdd(ctx, nil, addInput{Name: "components_schema", Key: fmt.Sprintf("S%d", i), Value: map[string]any{}})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})

	t.Run("files disabled", func(t *testing.T) {
		ws := newTestWorkspace(t)
		cfg.AllowFiles = false
		res, _, err := ws.handleReset(ctx, nil, resetInput{Seed: seedInput{File: "/tmp/base.json"}})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "disabled")
	})

	errorCases := []struct {
		name string
		seed seedInput
		want string
	}{
		{"both", seedInput{File: "a.json", Content: "{}"}, "at most one"},
		{"missing file", seedInput{File: "/tmp/does-not-exist/base.json"}, "reading seed"},
		{"non-object root", seedInput{Content: "- a\n- b\n"}, "must be an object"},
		{"invalid json", seedInput{Content: `{"openapi":`}, "JSON"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ws := newTestWorkspace(t)
			res, _, err := ws.handleReset(ctx, nil, resetInput{Seed: tc.seed})
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tc.want)
		})
	}
}

func TestHandleRender(t *testing.T) {
	ctx := context.Background()

	seeded := func(t *testing.T) *workspace {
		ws := newTestWorkspace(t)
		_, _, err := ws.handleReset(ctx, nil, resetInput{Seed: seedInput{Content: testutil.ScenarioJSON}})
		require.NoError(t, err)
		return ws
	}

	t.Run("json inline", func(t *testing.T) {
		ws := seeded(t)
		res, out, err := ws.handleRender(ctx, nil, renderInput{})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, "json", out.Format)
		assert.Equal(t, len(out.Content), out.Bytes)
		assert.Contains(t, out.Content, "\n  \"openapi\": \"3.0.0\",\n")
	})

	t.Run("yaml inline", func(t *testing.T) {
		ws := seeded(t)
		res, out, err := ws.handleRender(ctx, nil, renderInput{Format: "YAML"})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, "yaml", out.Format)
		assert.Contains(t, out.Content, "openapi: 3.0.0")
	})

	t.Run("to file", func(t *testing.T) {
		ws := seeded(t)
		target := filepath.Join(t.TempDir(), "openapi.json")

		res, out, err := ws.handleRender(ctx, nil, renderInput{Output: target})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Empty(t, out.Content)
		assert.Equal(t, filepath.Base(target), filepath.Base(out.WrittenTo))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		assert.Equal(t, int64(out.Bytes), info.Size())
	})

	t.Run("inline limit", func(t *testing.T) {
		ws := seeded(t)
		cfg.MaxInlineSize = 16
		res, _, err := ws.handleRender(ctx, nil, renderInput{})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "use output")
	})

	t.Run("files disabled", func(t *testing.T) {
		ws := seeded(t)
		cfg.AllowFiles = false
		res, _, err := ws.handleRender(ctx, nil, renderInput{Output: filepath.Join(t.TempDir(), "x.json")})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", sanitizeError(nil))
	assert.Equal(t, "reading seed: open <path>: no such file or directory",
		sanitizeError(errors.New("reading seed: open /home/dev/specs/base.json: no such file or directory")))
	assert.Equal(t, "unknown operation", sanitizeError(errors.New("unknown operation")))
}
