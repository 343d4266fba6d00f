package extract

import (
	"regexp"
	"strings"

	"github.com/yacobolo/tokenaudit/internal/model"
)

var (
	// 'primary': '#1a2b3c' (six-digit hex only)
	themeColorPattern = regexp.MustCompile(`'([^']*)':\s*'(#[A-Fa-f0-9]{6})'`)
	// '4': '1rem'
	themeSpacingPattern = regexp.MustCompile(`'(\d+)':\s*'([^']+)'`)
)

// extractThemeConfig pulls colors and spacing out of a tailwind.config.js.
// This is a textual scan of single-quoted pairs, not a JavaScript parser.
func extractThemeConfig(content string) Result {
	var values model.Values

	for _, match := range themeColorPattern.FindAllStringSubmatch(content, -1) {
		values.Colors = append(values.Colors, match[2])
	}

	for _, match := range themeSpacingPattern.FindAllStringSubmatch(content, -1) {
		value := match[2]
		if strings.Contains(value, "px") || strings.Contains(value, "rem") {
			values.Spacing = append(values.Spacing, value)
		}
	}

	return Result{Values: values}
}
