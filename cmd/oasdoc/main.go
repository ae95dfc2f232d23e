package main

import (
	"os"
	"strings"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/cmd/oasdoc/commands"
	"github.com/erraggy/oasdoc/internal/cliutil"
)

// commandNames lists every subcommand, in usage order, for typo suggestions.
var commandNames = []string{"assemble", "get", "paths", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "oasdoc %s\n", oasdoc.Version())
		if len(args) > 0 && args[0] == "-l" {
			cliutil.Writef(os.Stdout, "%s\n", oasdoc.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "assemble":
		exitOnError(commands.HandleAssemble(args))
	case "get":
		exitOnError(commands.HandleGet(args))
	case "paths":
		exitOnError(commands.HandlePaths(args))
	case "mcp":
		exitOnError(commands.HandleMCP(args))
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within edit distance 2.
func suggestCommand(input string) string {
	input = strings.ToLower(input)
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	usage := `oasdoc - Assemble OpenAPI definition documents

Usage:
  oasdoc <command> [options]

Commands:
  assemble    Build a document from a recipe of set/add steps
  get         Print the value at a dotted path of a document
  paths       List the well-known sections and helper names
  mcp         Serve the helpers as MCP tools over stdio
  version     Show version information (-l for build details)
  help        Show this help message

Examples:
  oasdoc assemble -o openapi.yaml recipe.yaml
  oasdoc get openapi.yaml info.title
  oasdoc paths -format go -package spec

Run 'oasdoc <command> --help' for more information on a command.
`
	cliutil.Writef(os.Stdout, "%s", usage)
}
