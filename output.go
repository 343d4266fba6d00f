package tokenaudit

import (
	"fmt"
	"io"

	"github.com/yacobolo/tokenaudit/internal/report"
)

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputMarkdown is the full markdown report (default)
	OutputMarkdown OutputFormat = "markdown"
	// OutputJSON is a structured export for CI tooling
	OutputJSON OutputFormat = "json"
	// OutputSummary is a short colored terminal summary
	OutputSummary OutputFormat = "summary"
)

// DetermineOutputFormat maps a --format value to an OutputFormat.
// An empty value selects markdown.
func DetermineOutputFormat(formatFlag string) (OutputFormat, error) {
	switch formatFlag {
	case "", "markdown", "md":
		return OutputMarkdown, nil
	case "json":
		return OutputJSON, nil
	case "summary":
		return OutputSummary, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want markdown, json or summary)", formatFlag)
	}
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result Result, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		if err := report.WriteJSON(w, result.ReportInput()); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputSummary:
		report.NewTerminal(w, useColors).Print(result.ReportInput())

	default:
		if _, err := io.WriteString(w, result.Markdown()+"\n"); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}
	}
	return nil
}
