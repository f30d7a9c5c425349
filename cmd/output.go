package cmd

import (
	"fmt"
	"io"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
)

// printUsage prints the one-line usage shown when no keyword is given.
func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [command ...]\n", programName)
}

// printErr prints "fcmd: err" to w.
func printErr(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", programName, err)
}

// newLogger returns a human-readable logger on w. Debug entries are only
// emitted when verbose is set.
func newLogger(w io.Writer, verbose bool) slog.Logger {
	l := slog.Make(sloghuman.Sink(w)).Named(programName)
	if verbose {
		l = l.Leveled(slog.LevelDebug)
	}
	return l
}
