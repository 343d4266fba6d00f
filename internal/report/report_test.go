package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/tokenaudit/internal/model"
)

var analyzedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func cleanInput() Input {
	return Input{
		FileName:   "tokens.json",
		Kind:       model.KindJSONTokens,
		AnalyzedAt: analyzedAt,
		Counts:     model.Counts{Colors: 8, FontSizes: 5, Spacing: 6, FontWeights: 3},
	}
}

func failingInput() Input {
	in := cleanInput()
	in.FileName = "styles.css"
	in.Kind = model.KindStylesheet
	in.Counts = model.Counts{Colors: 20, FontSizes: 9, Spacing: 3, FontWeights: 5}
	in.Findings = []model.Finding{
		{Check: "simplicity", Severity: model.SeverityHigh, Message: "Color Palette Complexity: 20 unique colors detected."},
		{Check: "detail", Severity: model.SeverityMedium, Message: "Typography Scale: 9 different font sizes."},
		{Check: "detail", Severity: model.SeverityLow, Message: "Font Weight Variety: 5 different font weights."},
	}
	in.Recommendations = []model.Recommendation{
		{Check: "simplicity", Text: "Simplify color palette: Reduce to 8-12 colors maximum."},
		{Check: "detail", Text: "no colon in this one"},
	}
	return in
}

func TestMarkdownHeader(t *testing.T) {
	doc := Markdown(cleanInput())

	assert.True(t, strings.HasPrefix(doc, "# Jony Ive Design Philosophy Analysis Report"))
	assert.Contains(t, doc, "**Analyzed File:** `tokens.json`")
	assert.Contains(t, doc, "**Analysis Date:** 2026-03-14 09:26:53 UTC")
}

func TestMarkdownClean(t *testing.T) {
	doc := Markdown(cleanInput())

	assert.Contains(t, doc, "✅ **Excellent alignment with Jony Ive's design principles.**")
	assert.Contains(t, doc, "Your design system demonstrates:")
	assert.Contains(t, doc, "'Less, but better' philosophy in overall complexity")
	assert.NotContains(t, doc, "Issues Identified")
	assert.NotContains(t, doc, "## Recommendations")
	assert.NotContains(t, doc, "⚠️")
}

func TestMarkdownWithFindings(t *testing.T) {
	doc := Markdown(failingInput())

	assert.Contains(t, doc, "⚠️  **3 issues identified** requiring attention to align with Ive's philosophy.")
	assert.NotContains(t, doc, "Excellent alignment")
	assert.Contains(t, doc, "### 1. Color Palette Complexity")
	assert.Contains(t, doc, "### 2. Typography Scale")
	assert.Contains(t, doc, "### 3. Font Weight Variety")
	assert.Contains(t, doc, "Typography Scale: 9 different font sizes.")

	assert.Contains(t, doc, "To align your design system with Jony Ive's philosophy:")
	assert.Contains(t, doc, "### 1. Simplify color palette")
	assert.Contains(t, doc, "### 2. Improvement")
	assert.Contains(t, doc, "no colon in this one")
}

func TestMarkdownSingleIssue(t *testing.T) {
	in := failingInput()
	in.Findings = in.Findings[:1]

	doc := Markdown(in)
	assert.Contains(t, doc, "**1 issue identified**")
}

func TestMarkdownMetrics(t *testing.T) {
	doc := Markdown(failingInput())

	assert.Contains(t, doc, "**Colors:** 20 unique colors")
	assert.Contains(t, doc, "**Font Sizes:** 9 unique sizes")
	assert.Contains(t, doc, "**Spacing Values:** 3 unique values")
	assert.Contains(t, doc, "**Font Weights:** 5 unique weights")
}

func TestMarkdownSectionOrder(t *testing.T) {
	doc := Markdown(failingInput())

	sections := []string{
		"# Jony Ive Design Philosophy Analysis Report",
		"## Executive Summary",
		"## Design System Metrics",
		"## Issues Identified",
		"## Recommendations",
		"## Jony Ive's Core Principles",
		"## Next Steps",
		`"We don't arbitrarily create form."`,
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(doc, section)
		require.NotEqual(t, -1, idx, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestMarkdownFixedSections(t *testing.T) {
	doc := Markdown(cleanInput())

	for _, principle := range corePrinciples {
		assert.Contains(t, doc, principle)
	}
	for _, step := range nextSteps {
		assert.Contains(t, doc, step)
	}
	assert.Contains(t, doc, "Question everything that doesn't serve the user.")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))

	require.NoError(t, WriteFile(path, "# new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# new", string(data))
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.md")

	err := WriteFile(path, "# report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing report")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, failingInput()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, "2026-03-14T09:26:53Z", out.Timestamp)
	assert.Equal(t, "styles.css", out.File)
	assert.Equal(t, "stylesheet", out.Kind)
	assert.Equal(t, 20, out.Metrics.Colors)
	assert.Equal(t, JSONSummary{TotalFindings: 3, High: 1, Medium: 1, Low: 1}, out.Summary)

	require.Len(t, out.Findings, 3)
	assert.Equal(t, "simplicity", out.Findings[0].Check)
	assert.Equal(t, "high", out.Findings[0].Severity)
	assert.Equal(t, "Color Palette Complexity", out.Findings[0].Title)
	assert.Equal(t, "Font Weight Variety", out.Findings[2].Title)

	require.Len(t, out.Recommendations, 2)
	assert.Equal(t, "Improvement", out.Recommendations[1].Title)
}

func TestWriteJSONEmptyListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, cleanInput()))

	assert.Contains(t, buf.String(), `"findings": []`)
	assert.Contains(t, buf.String(), `"recommendations": []`)
	assert.Contains(t, buf.String(), `"font_sizes": 5`)
}

func TestTerminalPrint(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf, false).Print(failingInput())
	out := buf.String()

	assert.Contains(t, out, "styles.css (stylesheet)")
	assert.Contains(t, out, "  [high] Color Palette Complexity (simplicity)")
	assert.Contains(t, out, "  [low] Font Weight Variety (detail)")
	assert.Contains(t, out, "3 issues (1 high, 1 medium, 1 low):")
	assert.Contains(t, out, "* simplicity: 1\n* detail: 2\n")
	assert.Contains(t, out, "Hint: 2 recommendations available")
	assert.NotContains(t, out, "\x1b[")
}

func TestTerminalPrintClean(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf, false).Print(cleanInput())
	out := buf.String()

	assert.Contains(t, out, "Metrics: 8 colors, 5 font sizes, 6 spacing values, 3 font weights")
	assert.Contains(t, out, "✅ No issues found")
	assert.NotContains(t, out, "Hint:")
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	assert.True(t, ShouldUseColors(true))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, ShouldUseColors(false))
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
}
