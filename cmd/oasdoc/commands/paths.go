package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasdoc/definition"
	"github.com/erraggy/oasdoc/internal/cliutil"
	"github.com/erraggy/oasdoc/internal/codegen"
	"github.com/erraggy/oasdoc/internal/fileutil"
	"github.com/erraggy/oasdoc/oaspath"
)

// PathsFlags contains flags for the paths command
type PathsFlags struct {
	Format     string
	Package    string
	Output     string
	Operations bool
}

// SectionRow is one registry entry in json and yaml output.
type SectionRow struct {
	Name    string `json:"name"    yaml:"name"`
	Pointer string `json:"pointer" yaml:"pointer"`
	Kind    string `json:"kind"    yaml:"kind"`
}

// OperationRow is one helper in json and yaml output.
type OperationRow struct {
	Name string `json:"name"           yaml:"name"`
	Mode string `json:"mode"           yaml:"mode"`
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// SetupPathsFlags creates and configures a FlagSet for the paths command.
func SetupPathsFlags() (*flag.FlagSet, *PathsFlags) {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	flags := &PathsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml or go")
	fs.StringVar(&flags.Package, "package", codegen.DefaultPackage, "package name for -format go")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Operations, "operations", false, "list the set/add helper names instead of sections")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasdoc paths [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the well-known OpenAPI sections, or the helpers that write to them.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasdoc paths\n")
		cliutil.Writef(fs.Output(), "  oasdoc paths -operations\n")
		cliutil.Writef(fs.Output(), "  oasdoc paths -format go -package spec -o spec/paths.go\n")
	}

	return fs, flags
}

// HandlePaths executes the paths command
func HandlePaths(args []string) error {
	fs, flags := SetupPathsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("paths command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format, FormatText, FormatJSON, FormatYAML, FormatGo); err != nil {
		return err
	}
	if flags.Format == FormatGo && flags.Operations {
		return fmt.Errorf("-operations cannot be combined with -format go")
	}

	if flags.Format == FormatGo {
		src, err := codegen.Registry(oaspath.Entries(), codegen.WithPackage(flags.Package))
		if err != nil {
			return err
		}
		if flags.Output == "" {
			cliutil.WriteData(os.Stdout, src)
			return nil
		}
		written, err := fileutil.WriteFile(flags.Output, src, fileutil.ReadableByAll)
		if err != nil {
			return err
		}
		cliutil.Writef(os.Stderr, "Wrote %s\n", written)
		return nil
	}

	if flags.Output != "" {
		return fmt.Errorf("-o is only supported with -format go")
	}

	if flags.Operations {
		return outputOperations(flags.Format)
	}
	return outputSections(flags.Format)
}

func outputSections(format string) error {
	entries := oaspath.Entries()
	rows := make([]SectionRow, len(entries))
	for i, e := range entries {
		rows[i] = SectionRow{Name: e.Name, Pointer: e.Path.Pointer(), Kind: e.Kind.String()}
	}

	if format != FormatText {
		return OutputStructured(rows, format)
	}
	table := [][]string{{"NAME", "KIND", "POINTER"}}
	for _, r := range rows {
		table = append(table, []string{r.Name, r.Kind, r.Pointer})
	}
	cliutil.Table(os.Stdout, table)
	return nil
}

func outputOperations(format string) error {
	ops := append(definition.SetOperations(), definition.AddOperations()...)
	rows := make([]OperationRow, len(ops))
	for i, op := range ops {
		rows[i] = OperationRow{Name: op.QualifiedName(), Mode: op.Mode.String()}
		if !op.Path.IsZero() {
			rows[i].Path = op.Path.String()
		}
	}

	if format != FormatText {
		return OutputStructured(rows, format)
	}
	table := [][]string{{"HELPER", "MODE", "PATH"}}
	for _, r := range rows {
		path := r.Path
		if path == "" {
			path = "<path argument>"
		}
		table = append(table, []string{r.Name, r.Mode, path})
	}
	cliutil.Table(os.Stdout, table)
	return nil
}
