package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/tokenaudit/internal/model"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version         string               `json:"version"`
	Timestamp       string               `json:"timestamp"`
	File            string               `json:"file"`
	Kind            string               `json:"kind"`
	Summary         JSONSummary          `json:"summary"`
	Metrics         model.Counts         `json:"metrics"`
	Findings        []JSONFinding        `json:"findings"`
	Recommendations []JSONRecommendation `json:"recommendations"`
}

// JSONSummary contains high-level finding counts
type JSONSummary struct {
	TotalFindings int `json:"total_findings"`
	High          int `json:"high"`
	Medium        int `json:"medium"`
	Low           int `json:"low"`
}

// JSONFinding represents a single finding
type JSONFinding struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// JSONRecommendation represents a single recommendation
type JSONRecommendation struct {
	Check string `json:"check"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// WriteJSON writes the analysis result as indented JSON
func WriteJSON(w io.Writer, in Input) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(in))
}

func buildJSONOutput(in Input) JSONOutput {
	var summary JSONSummary
	findings := make([]JSONFinding, len(in.Findings))
	for i, f := range in.Findings {
		switch f.Severity {
		case model.SeverityHigh:
			summary.High++
		case model.SeverityMedium:
			summary.Medium++
		case model.SeverityLow:
			summary.Low++
		}
		findings[i] = JSONFinding{
			Check:    f.Check,
			Severity: f.Severity.String(),
			Title:    f.Title(),
			Message:  f.Message,
		}
	}
	summary.TotalFindings = len(in.Findings)

	recs := make([]JSONRecommendation, len(in.Recommendations))
	for i, r := range in.Recommendations {
		recs[i] = JSONRecommendation{
			Check: r.Check,
			Title: r.Title(),
			Text:  r.Text,
		}
	}

	return JSONOutput{
		Version:         "1.0",
		Timestamp:       in.AnalyzedAt.Format(time.RFC3339),
		File:            in.FileName,
		Kind:            string(in.Kind),
		Summary:         summary,
		Metrics:         in.Counts,
		Findings:        findings,
		Recommendations: recs,
	}
}
