package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/internal/options"
	"github.com/erraggy/oasdoc/oaserrors"
)

// seedInput represents the two ways a seed document can be provided to reset.
// At most one of File or Content may be set; neither means an empty document.
type seedInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML OpenAPI document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline JSON or YAML OpenAPI document content"`
}

// load returns the seed document, or an empty document when no seed is given.
func (s seedInput) load() (*document.Document, error) {
	if err := options.AtMostOne("provide at most one of file or content", s.File != "", s.Content != ""); err != nil {
		return nil, err
	}
	switch {
	case s.File != "":
		if !cfg.AllowFiles {
			return nil, &oaserrors.ConfigError{Option: "OASDOC_ALLOW_FILES", Value: false, Message: "reading seed files is disabled"}
		}
		data, err := os.ReadFile(filepath.Clean(s.File))
		if err != nil {
			return nil, fmt.Errorf("reading seed: %w", err)
		}
		return document.Parse(data)
	case s.Content != "":
		if len(s.Content) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size (%d bytes) exceeds maximum (%d bytes)", len(s.Content), cfg.MaxInlineSize)
		}
		return document.Parse([]byte(s.Content))
	default:
		return document.New(), nil
	}
}

// decodeValue converts a tool argument to a document value. Exactly one of
// raw (already-decoded JSON) or text (JSON or YAML source) must carry the
// value. Text keeps object key order; raw objects arrive as Go maps and are
// ordered by key.
func decodeValue(raw any, text string) (document.Value, error) {
	if err := options.ExactlyOne(
		"a value is required: set value or value_json",
		"provide only one of value or value_json",
		raw != nil, text != "",
	); err != nil {
		return nil, err
	}
	if text != "" {
		if len(text) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("value_json size (%d bytes) exceeds maximum (%d bytes)", len(text), cfg.MaxInlineSize)
		}
		return document.ParseYAML([]byte(text))
	}
	return document.FromAny(raw)
}

// decodeValues converts the list form of the add tool. A single value (raw
// or text) is accepted in place of the list.
func decodeValues(list []any, raw any, text string) ([]document.Value, error) {
	if len(list) == 0 {
		v, err := decodeValue(raw, text)
		if err != nil {
			return nil, err
		}
		return []document.Value{v}, nil
	}
	if err := options.AtMostOne("provide either values or a single value, not both", true, raw != nil || text != ""); err != nil {
		return nil, err
	}
	out := make([]document.Value, 0, len(list))
	for i, item := range list {
		if item == nil {
			return nil, fmt.Errorf("values[%d]: null is not a valid element", i)
		}
		v, err := document.FromAny(item)
		if err != nil {
			return nil, fmt.Errorf("values[%d]: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
