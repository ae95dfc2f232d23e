package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasdoc/internal/cliutil"
	"github.com/erraggy/oasdoc/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// the server is configured through OASDOC_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasdoc mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the document helpers as MCP tools over stdio.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  OASDOC_INIT_SEQUENCES   initialize servers, security and tags on reset (default false)\n")
		cliutil.Writef(fs.Output(), "  OASDOC_RENDER_FORMAT    default render format, json or yaml (default json)\n")
		cliutil.Writef(fs.Output(), "  OASDOC_MAX_INLINE_SIZE  byte limit for inline content (default 10485760)\n")
		cliutil.Writef(fs.Output(), "  OASDOC_ALLOW_FILES      allow reading seeds and writing output files (default true)\n")
	}

	return fs
}

// HandleMCP executes the mcp command and blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
