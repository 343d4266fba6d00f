package extract

import (
	"regexp"

	"github.com/yacobolo/tokenaudit/internal/model"
)

var (
	// Color patterns, concatenated in this order: hex, rgb(), hsl()
	hexColorPattern = regexp.MustCompile(`#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})\b`)
	rgbColorPattern = regexp.MustCompile(`rgb\([^)]+\)`)
	hslColorPattern = regexp.MustCompile(`hsl\([^)]+\)`)

	// Declaration patterns capture the value only
	fontSizePattern   = regexp.MustCompile(`font-size:\s*([0-9.]+(?:px|rem|em))`)
	spacingPattern    = regexp.MustCompile(`(?:margin|padding)(?:-(?:top|right|bottom|left))?:\s*([0-9.]+(?:px|rem|em))`)
	fontWeightPattern = regexp.MustCompile(`font-weight:\s*([0-9]+|normal|bold|lighter|bolder)`)
)

// extractStylesheet scans CSS/SCSS text with the declaration patterns.
// The scan is textual: values inside comments or strings are picked up too.
func extractStylesheet(content string) Result {
	var colors []string
	for _, hex := range submatches(hexColorPattern, content) {
		colors = append(colors, "#"+hex)
	}
	colors = append(colors, rgbColorPattern.FindAllString(content, -1)...)
	colors = append(colors, hslColorPattern.FindAllString(content, -1)...)

	return Result{
		Values: model.Values{
			Colors:      colors,
			FontSizes:   submatches(fontSizePattern, content),
			Spacing:     submatches(spacingPattern, content),
			FontWeights: submatches(fontWeightPattern, content),
		},
	}
}

// extractGeneric applies the stylesheet patterns to a file of unknown type
func extractGeneric(content string) Result {
	return extractStylesheet(content)
}

// submatches returns capture group 1 of every match
func submatches(pattern *regexp.Regexp, content string) []string {
	matches := pattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	result := make([]string, 0, len(matches))
	for _, match := range matches {
		result = append(result, match[1])
	}
	return result
}
