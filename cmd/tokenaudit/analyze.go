package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/tokenaudit"
	"github.com/yacobolo/tokenaudit/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a design-token source and report findings",
	Long: `Extract colors, font sizes, spacing values and font weights from one file
and check them against the design heuristics.

Supported sources: *.json token files, *.css / *.scss stylesheets and
tailwind.config.js theme configs. Other files are scanned like stylesheets.

Exit codes: 0 no findings, 1 findings, 2 load error or invalid usage.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runAnalyzeCommand,
}

func init() {
	addAnalyzeFlags(analyzeCmd.Flags())
}

// addAnalyzeFlags registers the analyze flags. The root command carries the
// same set so `tokenaudit <file>` works without the subcommand.
func addAnalyzeFlags(f *pflag.FlagSet) {
	f.StringP("output", "o", "", "Write the report to this file instead of stdout")
	f.String("format", "markdown", "Output format: markdown|md|json|summary")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
}

// runAnalyzeCommand exits with the analysis verdict. Config must already be loaded.
func runAnalyzeCommand(cmd *cobra.Command, args []string) error {
	code, err := runAnalyze(cmd, args[0], buildAnalyzeOptions())
	if err != nil {
		return err
	}
	if code != exitOK {
		osExit(code)
	}
	return nil
}

// runAnalyze returns the process exit code. Errors are fatal.
func runAnalyze(cmd *cobra.Command, path string, opts analyzeOptions) (int, error) {
	format, err := tokenaudit.DetermineOutputFormat(opts.Format)
	if err != nil {
		return exitFatal, err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	logger := setupLogger(stderr, opts.Verbose)

	target, err := tokenaudit.Load(path)
	if err != nil {
		return exitFatal, err
	}

	// Keep stdout machine-readable for JSON
	progress := stdout
	if format == tokenaudit.OutputJSON {
		progress = stderr
	}
	if !opts.Quiet {
		fmt.Fprintf(progress, "Analyzing %s...\n", target.Name)
	}

	result := tokenaudit.AnalyzeTarget(target, tokenaudit.Config{Path: path, Logger: logger})

	switch {
	case opts.Output != "":
		writeReportFile(cmd, result, format, opts)
	case !opts.Quiet:
		useColors := report.ShouldUseColors(opts.Color)
		if err := tokenaudit.WriteOutput(stdout, result, format, useColors); err != nil {
			// Log error but don't change the exit code
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}

	if result.HasFindings() {
		return exitFindings, nil
	}
	return exitOK, nil
}

// writeReportFile renders the report without colors and writes it to opts.Output.
// Failures are printed to stderr and do not abort the run.
func writeReportFile(cmd *cobra.Command, result tokenaudit.Result, format tokenaudit.OutputFormat, opts analyzeOptions) {
	var buf bytes.Buffer
	if err := tokenaudit.WriteOutput(&buf, result, format, false); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if err := report.WriteFile(opts.Output, buf.String()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if !opts.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Report written to: %s\n", opts.Output)
	}
}
