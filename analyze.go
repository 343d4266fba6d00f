package tokenaudit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/yacobolo/tokenaudit/internal/extract"
	"github.com/yacobolo/tokenaudit/internal/model"
	"github.com/yacobolo/tokenaudit/internal/report"
	"github.com/yacobolo/tokenaudit/internal/rules"
)

// ErrInvalidUTF8 is returned when the target file is not UTF-8 text
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Config holds analysis configuration
type Config struct {
	Path   string           // "web/tokens.json"
	Logger *slog.Logger     // nil discards logs
	Now    func() time.Time // nil uses time.Now
}

// Result is the outcome of one analysis
type Result struct {
	Target          model.Target
	Values          model.Values
	Counts          model.Counts
	Findings        []model.Finding
	Recommendations []model.Recommendation
	AnalyzedAt      time.Time
}

// HasFindings reports whether the analysis produced at least one finding
func (r Result) HasFindings() bool {
	return len(r.Findings) > 0
}

// ReportInput converts the result into renderer input
func (r Result) ReportInput() report.Input {
	return report.Input{
		FileName:        r.Target.Name,
		Kind:            r.Target.Kind,
		AnalyzedAt:      r.AnalyzedAt,
		Counts:          r.Counts,
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
	}
}

// Markdown renders the full markdown report
func (r Result) Markdown() string {
	return report.Markdown(r.ReportInput())
}

// Load reads path into a Target. Unreadable or non UTF-8 files are fatal.
func Load(path string) (model.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Target{}, fmt.Errorf("load %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return model.Target{}, fmt.Errorf("load %s: %w", path, ErrInvalidUTF8)
	}

	return model.Target{
		Path:    path,
		Name:    filepath.Base(path),
		Content: string(data),
		Kind:    extract.Detect(path),
	}, nil
}

// Analyze loads, extracts and evaluates the configured file.
// Only load failures are returned as errors; extraction problems are
// reported as findings.
func Analyze(config Config) (Result, error) {
	target, err := Load(config.Path)
	if err != nil {
		return Result{}, err
	}
	return AnalyzeTarget(target, config), nil
}

// AnalyzeTarget extracts and evaluates an already loaded target.
// config.Path is ignored.
func AnalyzeTarget(target model.Target, config Config) Result {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}

	logger.Debug("loaded target", "file", target.Name, "kind", target.Kind, "bytes", len(target.Content))

	extracted := extract.Extract(target)
	for _, f := range extracted.Findings {
		logger.Warn("extraction failed", "file", target.Name, "error", f.Message)
	}
	for _, token := range extracted.ColorTokens {
		logger.Debug("color token", "path", token.Path, "value", token.Value)
	}

	counts := extracted.Values.Counts()
	logger.Debug("extracted values",
		"colors", counts.Colors,
		"font_sizes", counts.FontSizes,
		"spacing", counts.Spacing,
		"font_weights", counts.FontWeights)

	outcome := model.Outcome{Findings: extracted.Findings}
	evaluated := rules.NewEngine().Evaluate(extracted.Values)
	outcome.Append(evaluated)
	logger.Debug("evaluated rules", "findings", len(outcome.Findings), "recommendations", len(outcome.Recommendations))

	return Result{
		Target:          target,
		Values:          extracted.Values,
		Counts:          counts,
		Findings:        outcome.Findings,
		Recommendations: outcome.Recommendations,
		AnalyzedAt:      now(),
	}
}
