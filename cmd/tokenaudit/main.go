// Package main provides the tokenaudit CLI tool for auditing design-token sources.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Exit codes
const (
	exitOK       = 0 // no findings
	exitFindings = 1 // at least one finding
	exitFatal    = 2 // load failure or CLI misuse
)

// osExit is replaced in tests
var osExit = os.Exit

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(exitFatal)
	}
}

// setupLogger builds the stderr logger: warnings by default, debug when verbose
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
