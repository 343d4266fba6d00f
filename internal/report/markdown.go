// Package report renders analysis results as a markdown document, a JSON
// export or a colored terminal summary.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/nao1215/markdown"
	"github.com/yacobolo/tokenaudit/internal/model"
)

// DateLayout is the format of the analysis timestamp in reports
const DateLayout = "2006-01-02 15:04:05 MST"

// Input is everything a report needs, already computed
type Input struct {
	FileName        string // "tokens.json"
	Kind            model.Kind
	AnalyzedAt      time.Time
	Counts          model.Counts
	Findings        []model.Finding
	Recommendations []model.Recommendation
}

var corePrinciples = []string{
	`**Simplicity as Complexity Resolved:** "True simplicity is derived from bringing order to complexity."`,
	`**Care and Craftsmanship:** "The most important thing is that you care."`,
	`**Material Authenticity:** "Form and the material and process are beautifully intertwined."`,
	`**User-Centric Design:** "The defining qualities are about use: ease and simplicity."`,
	`**Attention to Detail:** "Ease and simplicity of use are achieved by obsessing with details."`,
	`**Less, But Better:** "Minimalism is about clarity, about revealing what's essential and true."`,
}

var nextSteps = []string{
	"Review each identified issue",
	"Prioritize changes (High → Medium → Low)",
	"Implement recommendations systematically",
	"Re-run analysis to verify improvements",
	"Iterate until design system achieves Ive-level simplicity",
}

// Markdown renders the fixed-structure analysis report
func Markdown(in Input) string {
	md := markdown.NewMarkdown(io.Discard)

	writeHeader(md, in)
	writeExecutiveSummary(md, in)
	writeMetrics(md, in)
	writeIssues(md, in)
	writeRecommendations(md, in)
	writePrinciples(md)
	writeNextSteps(md)

	return md.String()
}

func writeHeader(md *markdown.Markdown, in Input) {
	md.H1("Jony Ive Design Philosophy Analysis Report")
	md.PlainText("")
	md.PlainTextf("**Analyzed File:** `%s`", in.FileName)
	md.PlainTextf("**Analysis Date:** %s", in.AnalyzedAt.Format(DateLayout))
	md.PlainText("")
	md.HorizontalRule()
	md.PlainText("")
}

func writeExecutiveSummary(md *markdown.Markdown, in Input) {
	md.H2("Executive Summary")
	md.PlainText("")

	if len(in.Findings) == 0 {
		md.PlainText("✅ **Excellent alignment with Jony Ive's design principles.**")
		md.PlainText("")
		md.PlainText("Your design system demonstrates:")
		md.BulletList(
			"Simplicity and clarity in design tokens",
			"Material authenticity through consistent patterns",
			"Attention to detail in typography and spacing",
			"'Less, but better' philosophy in overall complexity",
		)
		md.PlainText("")
		return
	}

	md.PlainTextf("⚠️  **%s identified** requiring attention to align with Ive's philosophy.",
		pluralizeCount(len(in.Findings), "issue", "issues"))
	md.PlainText("")
}

func writeMetrics(md *markdown.Markdown, in Input) {
	md.H2("Design System Metrics")
	md.PlainText("")
	md.BulletList(
		fmt.Sprintf("**Colors:** %d unique colors", in.Counts.Colors),
		fmt.Sprintf("**Font Sizes:** %d unique sizes", in.Counts.FontSizes),
		fmt.Sprintf("**Spacing Values:** %d unique values", in.Counts.Spacing),
		fmt.Sprintf("**Font Weights:** %d unique weights", in.Counts.FontWeights),
	)
	md.PlainText("")
	md.HorizontalRule()
	md.PlainText("")
}

func writeIssues(md *markdown.Markdown, in Input) {
	if len(in.Findings) == 0 {
		return
	}

	md.H2("Issues Identified")
	md.PlainText("")
	for i, finding := range in.Findings {
		md.H3(fmt.Sprintf("%d. %s", i+1, finding.Title()))
		md.PlainText("")
		md.PlainText(finding.Message)
		md.PlainText("")
	}
}

func writeRecommendations(md *markdown.Markdown, in Input) {
	if len(in.Recommendations) == 0 {
		return
	}

	md.HorizontalRule()
	md.PlainText("")
	md.H2("Recommendations")
	md.PlainText("")
	md.PlainText("To align your design system with Jony Ive's philosophy:")
	md.PlainText("")
	for i, rec := range in.Recommendations {
		md.H3(fmt.Sprintf("%d. %s", i+1, rec.Title()))
		md.PlainText("")
		md.PlainText(rec.Text)
		md.PlainText("")
	}
}

func writePrinciples(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.H2("Jony Ive's Core Principles")
	md.PlainText("")
	md.PlainText("**Remember:**")
	md.PlainText("")
	md.OrderedList(corePrinciples...)
	md.PlainText("")
}

func writeNextSteps(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.H2("Next Steps")
	md.PlainText("")
	md.OrderedList(nextSteps...)
	md.PlainText("")
	md.PlainText("**Quote to guide your work:**")
	md.PlainText("")
	md.PlainText(`> "We don't arbitrarily create form."`)
	md.PlainText("> — Jony Ive")
	md.PlainText("")
	md.PlainText("Every design token should have clear purpose. Question everything that doesn't serve the user.")
	md.PlainText("")
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
