// Package commands provides CLI command handlers for oasdoc.
package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/oasdoc/definition"
	"github.com/erraggy/oasdoc/internal/cliutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatGo   = "go"
)

// ValidateOutputFormat returns an error unless format is one of valid.
func ValidateOutputFormat(format string, valid ...string) error {
	if slices.Contains(valid, format) {
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s", format, strings.Join(valid, ", "))
}

// FormatFromPath picks json or yaml from an output file extension, falling
// back to fallback when the path is empty or has another extension.
func FormatFromPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return fallback
	}
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.WriteData(os.Stdout, bytes)
	return nil
}

// NewLogger returns the logger for a command: debug-level slog text on
// stderr when verbose, otherwise a no-op logger. Warnings still reach
// stderr in non-verbose mode unless quiet is set.
func NewLogger(verbose, quiet bool) definition.Logger {
	switch {
	case verbose:
		return definition.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	case quiet:
		return definition.NopLogger{}
	default:
		return definition.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}
}
