package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/internal/fileutil"
	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type renderInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: json or yaml (default from OASDOC_RENDER_FORMAT)"`
	Output string `json:"output,omitempty" jsonschema:"File path to write the document to instead of returning it inline"`
}

type renderOutput struct {
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
	WrittenTo string `json:"written_to,omitempty"`
	Content   string `json:"content,omitempty"`
}

func (ws *workspace) handleRender(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	format, err := parseFormat(input.Format, cfg.RenderFormat)
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}
	if input.Output != "" && !cfg.AllowFiles {
		return errResult(&oaserrors.ConfigError{Option: "OASDOC_ALLOW_FILES", Value: false, Message: "writing output files is disabled"}), renderOutput{}, nil
	}

	var data []byte
	err = ws.read(func(doc *document.Document) error {
		var err error
		if format == "yaml" {
			data, err = doc.YAML()
		} else {
			data, err = doc.JSON("  ")
		}
		return err
	})
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	output := renderOutput{Format: format, Bytes: len(data)}
	if input.Output != "" {
		written, err := fileutil.WriteFile(input.Output, data, fileutil.OwnerReadWrite)
		if err != nil {
			return errResult(err), renderOutput{}, nil
		}
		output.WrittenTo = written
		return nil, output, nil
	}
	if len(data) > cfg.MaxInlineSize {
		return errResult(fmt.Errorf("rendered document (%d bytes) exceeds the inline maximum (%d bytes); use output to write it to a file", len(data), cfg.MaxInlineSize)), renderOutput{}, nil
	}
	output.Content = string(data)
	return nil, output, nil
}

type resetInput struct {
	Seed          seedInput `json:"seed,omitempty"           jsonschema:"Optional document to start from"`
	InitSequences *bool     `json:"init_sequences,omitempty" jsonschema:"Set absent servers, security and tags to empty arrays (default from OASDOC_INIT_SEQUENCES)"`
}

type resetOutput struct {
	Keys        []string `json:"keys"`
	Initialized []string `json:"initialized,omitempty"`
}

func (ws *workspace) handleReset(_ context.Context, _ *mcp.CallToolRequest, input resetInput) (*mcp.CallToolResult, resetOutput, error) {
	doc, err := input.Seed.load()
	if err != nil {
		return errResult(err), resetOutput{}, nil
	}

	initSequences := cfg.InitSequences
	if input.InitSequences != nil {
		initSequences = *input.InitSequences
	}
	keys, initialized, err := ws.reset(doc, initSequences)
	if err != nil {
		return errResult(err), resetOutput{}, nil
	}

	output := resetOutput{Keys: keys}
	if output.Keys == nil {
		output.Keys = []string{}
	}
	for _, p := range initialized {
		output.Initialized = append(output.Initialized, p.String())
	}
	return nil, output, nil
}
