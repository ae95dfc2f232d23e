package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/internal/cliutil"
	"github.com/erraggy/oasdoc/oaspath"
	"github.com/erraggy/oasdoc/recipe"
)

// ErrNotFound is returned by HandleGet when nothing is stored at the path.
var ErrNotFound = errors.New("no value at path")

// RootPath selects the whole document in "oasdoc get".
const RootPath = "."

// GetFlags contains flags for the get command
type GetFlags struct {
	Format string
}

// SetupGetFlags creates and configures a FlagSet for the get command.
func SetupGetFlags() (*flag.FlagSet, *GetFlags) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	flags := &GetFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasdoc get [flags] <document> <path>\n\n")
		cliutil.Writef(fs.Output(), "Print the value stored at a dotted path of a JSON or YAML document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasdoc get openapi.json info.title\n")
		cliutil.Writef(fs.Output(), "  oasdoc get -format yaml openapi.yaml components.schemas.User\n")
		cliutil.Writef(fs.Output(), "  oasdoc get openapi.yaml .\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Value found and printed\n")
		cliutil.Writef(fs.Output(), "  1    Error, or nothing stored at the path\n")
	}

	return fs, flags
}

// HandleGet executes the get command
func HandleGet(args []string) error {
	fs, flags := SetupGetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("get command requires a document and a path")
	}
	if err := ValidateOutputFormat(flags.Format, FormatJSON, FormatYAML); err != nil {
		return err
	}

	doc, err := recipe.LoadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	var v document.Value = doc.Root()
	if dotted := fs.Arg(1); dotted != RootPath {
		p, err := oaspath.Parse(dotted)
		if err != nil {
			return err
		}
		var ok bool
		if v, ok = doc.Get(p); !ok {
			return fmt.Errorf("%w %s", ErrNotFound, dotted)
		}
	}

	var data []byte
	if flags.Format == FormatYAML {
		data, err = document.MarshalYAML(v)
	} else {
		data, err = document.MarshalJSON(v)
	}
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}
	cliutil.WriteData(os.Stdout, data)
	return nil
}
