// Package tokenaudit scores a design-token source against four design
// heuristics and renders the result as a report.
//
// A single pass reads one file, extracts its raw design values (colors,
// font sizes, spacing values, font weights), checks them against fixed
// thresholds and renders the findings.
//
// # Analysis
//
//	result, err := tokenaudit.Analyze(tokenaudit.Config{
//		Path:   "web/tokens.json",
//		Logger: slog.Default(),
//	})
//	if err != nil {
//		return err // file could not be loaded
//	}
//	fmt.Println(result.Markdown())
//
// # Supported sources
//
//   - *.json: design token files (colors, spacing, fontSize, fontWeight keys)
//   - *.css, *.scss: stylesheets
//   - tailwind.config.js: theme configs
//   - anything else: scanned like a stylesheet
//
// # CLI Tool
//
// tokenaudit also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/tokenaudit/cmd/tokenaudit@latest
package tokenaudit

// Public API:
// - Load(path string) (model.Target, error)
// - Analyze(config Config) (Result, error)
// - AnalyzeTarget(target model.Target, config Config) Result
// - DetermineOutputFormat(requested string) OutputFormat
// - WriteOutput(w io.Writer, result Result, format OutputFormat, useColors bool)
