package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasdoc/definition"
	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/internal/cliutil"
	"github.com/erraggy/oasdoc/internal/fileutil"
	"github.com/erraggy/oasdoc/recipe"
)

// AssembleFlags contains flags for the assemble command
type AssembleFlags struct {
	Seed          string
	Output        string
	Format        string
	InitSequences bool
	Quiet         bool
	Verbose       bool
}

// SetupAssembleFlags creates and configures a FlagSet for the assemble command.
// Returns the FlagSet and an AssembleFlags struct with bound flag variables.
func SetupAssembleFlags() (*flag.FlagSet, *AssembleFlags) {
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	flags := &AssembleFlags{}

	fs.StringVar(&flags.Seed, "seed", "", "document to start from (overrides the recipe's seed)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: from -o extension, else json)")
	fs.BoolVar(&flags.InitSequences, "init-sequences", false, "initialize absent servers, security and tags to [] before the first step")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log every applied step to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasdoc assemble [flags] <recipe>\n\n")
		cliutil.Writef(fs.Output(), "Assemble an OpenAPI document by running the steps of a recipe file.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRecipe:\n")
		cliutil.Writef(fs.Output(), "  seed: base.json\n")
		cliutil.Writef(fs.Output(), "  initSequences: true\n")
		cliutil.Writef(fs.Output(), "  steps:\n")
		cliutil.Writef(fs.Output(), "    - set: openapi\n")
		cliutil.Writef(fs.Output(), "      value: 3.0.0\n")
		cliutil.Writef(fs.Output(), "    - add: components_schema\n")
		cliutil.Writef(fs.Output(), "      key: User\n")
		cliutil.Writef(fs.Output(), "      value: {type: object}\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasdoc assemble recipe.yaml\n")
		cliutil.Writef(fs.Output(), "  oasdoc assemble -o openapi.yaml recipe.yaml\n")
		cliutil.Writef(fs.Output(), "  oasdoc assemble -seed base.json -init-sequences -format yaml recipe.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - add server|security|tag never creates the array; an absent sequence is skipped with a warning\n")
		cliutil.Writef(fs.Output(), "  - Output files are written with mode 0600\n")
	}

	return fs, flags
}

// HandleAssemble executes the assemble command
func HandleAssemble(args []string) error {
	fs, flags := SetupAssembleFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("assemble command requires exactly one recipe file")
	}

	format := flags.Format
	if format == "" {
		format = FormatFromPath(flags.Output, FormatJSON)
	}
	if err := ValidateOutputFormat(format, FormatJSON, FormatYAML); err != nil {
		return err
	}

	recipePath := fs.Arg(0)
	r, err := recipe.Load(recipePath)
	if err != nil {
		return fmt.Errorf("loading recipe: %w", err)
	}

	var seed *document.Document
	if flags.Seed != "" {
		if seed, err = recipe.LoadDocument(flags.Seed); err != nil {
			return fmt.Errorf("loading seed: %w", err)
		}
	}
	opts := []definition.BuilderOption{definition.WithLogger(NewLogger(flags.Verbose, flags.Quiet))}
	if flags.InitSequences {
		opts = append(opts, definition.WithInitSequences(true))
	}

	b, err := r.Builder(seed, opts...)
	if err != nil {
		return fmt.Errorf("assembling %s: %w", recipePath, err)
	}

	var data []byte
	if format == FormatJSON {
		data, err = b.BuildJSON()
	} else {
		data, err = b.BuildYAML()
	}
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}

	if flags.Output == "" {
		cliutil.WriteData(os.Stdout, data)
	} else {
		written, err := fileutil.WriteFile(flags.Output, data, fileutil.OwnerReadWrite)
		if err != nil {
			return err
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "Wrote %d bytes to %s\n", len(data), written)
		}
	}

	if skipped := b.Skipped(); len(skipped) > 0 && !flags.Quiet {
		cliutil.Writef(os.Stderr, "Warning: %d append step(s) wrote nothing because the sequence was absent; use -init-sequences or initSequences: true\n", len(skipped))
	}
	return nil
}
