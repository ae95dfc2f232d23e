// Package cliutil provides output helpers shared by the oasdoc commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Writef writes formatted output to w. A failed write is reported on stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteData writes data to w, adding a trailing newline when data lacks one.
func WriteData(w io.Writer, data []byte) {
	Writef(w, "%s", data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		Writef(w, "\n")
	}
}

// Table writes rows as left-aligned columns separated by two spaces.
func Table(w io.Writer, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		Writef(tw, "%s\n", strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
