package model

import "strings"

// Severity ranks how far a finding deviates from the style rules
type Severity int

const (
	// SeverityLow marks findings worth a look but not urgent.
	SeverityLow Severity = iota
	// SeverityMedium marks findings that should be addressed.
	SeverityMedium
	// SeverityHigh marks findings that dominate the report.
	SeverityHigh
)

// String returns the lower-case severity label
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Finding is a reported deviation from a rule
type Finding struct {
	Check    string   // "simplicity"
	Severity Severity // SeverityHigh
	Message  string   // "Color Palette Complexity: 16 unique colors detected. ..."
}

// Title returns the message text before the first colon
func (f Finding) Title() string {
	title, _, _ := strings.Cut(f.Message, ":")
	return title
}

// Recommendation is remediation guidance, loosely paired with a Finding
type Recommendation struct {
	Check string // "simplicity"
	Text  string // "Simplify color palette:\n  - 1 primary brand color ..."
}

// Title returns the text before the first colon, or "Improvement" when the
// text has no colon
func (r Recommendation) Title() string {
	title, _, found := strings.Cut(r.Text, ":")
	if !found {
		return "Improvement"
	}
	return title
}

// Outcome collects what one or more rules produced, in order
type Outcome struct {
	Findings        []Finding
	Recommendations []Recommendation
}

// Append adds other's findings and recommendations after the current ones
func (o *Outcome) Append(other Outcome) {
	o.Findings = append(o.Findings, other.Findings...)
	o.Recommendations = append(o.Recommendations, other.Recommendations...)
}

// HasFindings reports whether at least one finding was produced
func (o Outcome) HasFindings() bool {
	return len(o.Findings) > 0
}
