package report

import (
	"fmt"
	"io"
	"os"
)

// Terminal prints a short colored summary of an analysis
type Terminal struct {
	w         io.Writer
	useColors bool
}

// NewTerminal creates a terminal summary writer
func NewTerminal(w io.Writer, useColors bool) *Terminal {
	return &Terminal{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Print writes one line per finding followed by the count summary
func (t *Terminal) Print(in Input) {
	header := fmt.Sprintf("%s (%s)", in.FileName, in.Kind)
	fmt.Fprintln(t.w, RenderStyle(StyleCyan, header, t.useColors))

	for _, f := range in.Findings {
		label := fmt.Sprintf("[%s]", f.Severity)
		fmt.Fprintf(t.w, "  %s %s%s\n",
			RenderStyle(severityStyle(f.Severity), label, t.useColors),
			f.Title(),
			RenderStyle(StyleGray, fmt.Sprintf(" (%s)", f.Check), t.useColors))
	}

	fmt.Fprintln(t.w, "")
	fmt.Fprintf(t.w, "Metrics: %d colors, %d font sizes, %d spacing values, %d font weights\n",
		in.Counts.Colors, in.Counts.FontSizes, in.Counts.Spacing, in.Counts.FontWeights)

	if len(in.Findings) == 0 {
		fmt.Fprintln(t.w, RenderStyle(StyleGreen, "✅ No issues found", t.useColors))
		return
	}

	summary := buildJSONOutput(in).Summary
	fmt.Fprintf(t.w, "%s (%d high, %d medium, %d low):\n",
		pluralizeCount(summary.TotalFindings, "issue", "issues"),
		summary.High, summary.Medium, summary.Low)

	// Group by check, in the order checks first report
	var checks []string
	checkCounts := make(map[string]int)
	for _, f := range in.Findings {
		if checkCounts[f.Check] == 0 {
			checks = append(checks, f.Check)
		}
		checkCounts[f.Check]++
	}
	for _, check := range checks {
		fmt.Fprintf(t.w, "* %s: %d\n", check, checkCounts[check])
	}

	if len(in.Recommendations) > 0 {
		fmt.Fprintln(t.w, "")
		hint := fmt.Sprintf("Hint: %s available, run with --format markdown to read them",
			pluralizeCount(len(in.Recommendations), "recommendation", "recommendations"))
		fmt.Fprintln(t.w, RenderStyle(StyleGray, hint, t.useColors))
	}
}
