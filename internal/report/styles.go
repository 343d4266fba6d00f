package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/tokenaudit/internal/model"
)

// Terminal styles shared by the summary output.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for file names and section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for high severity labels.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for medium severity labels.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for the clean-result banner.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for low severity labels, check names and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

func severityStyle(s model.Severity) lipgloss.Style {
	switch s {
	case model.SeverityHigh:
		return StyleRed
	case model.SeverityMedium:
		return StyleYellow
	default:
		return StyleGray
	}
}
