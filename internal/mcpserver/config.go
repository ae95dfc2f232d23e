package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// InitSequences initializes servers, security and tags on every fresh
	// session document so add tools take effect immediately.
	InitSequences bool

	// RenderFormat is the default output format of the render tool.
	RenderFormat string

	// MaxInlineSize caps inline seed content and render output, in bytes.
	MaxInlineSize int

	// AllowFiles permits reset to read seeds from disk and render to write
	// output files.
	AllowFiles bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASDOC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		InitSequences: envBool("OASDOC_INIT_SEQUENCES", false),
		RenderFormat:  envString("OASDOC_RENDER_FORMAT", "json", "json", "yaml"),
		MaxInlineSize: envInt("OASDOC_MAX_INLINE_SIZE", 10*1024*1024),
		AllowFiles:    envBool("OASDOC_ALLOW_FILES", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envString(key, fallback string, valid ...string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	for _, choice := range valid {
		if v == choice {
			return v
		}
	}
	slog.Warn("invalid env var, using default", "key", key, "value", v, "valid", valid, "default", fallback)
	return fallback
}
