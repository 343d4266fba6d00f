// Package extract pulls raw design values out of a design-token source.
//
// Four strategies are selected from the file name (see Detect):
//
//   - *.json: JSON token tree (colors, spacing, fontSize, fontWeight)
//   - *.css, *.scss: stylesheet declarations
//   - tailwind.config.js: quoted key/value pairs in the theme
//   - anything else: the stylesheet patterns, best effort
//
// Stylesheet and theme-config extraction is pattern matching, not parsing.
// It does not understand comments, strings or nested braces, so values can
// be over- or under-counted. That looseness is part of the heuristics.
package extract

import (
	"github.com/yacobolo/tokenaudit/internal/model"
)

// CheckParse is the check name used for extraction failures
const CheckParse = "parse"

// Result is the output of one extraction pass
type Result struct {
	Values      model.Values
	ColorTokens []ColorToken    // JSON tokens only: flattened color paths
	Findings    []model.Finding // Advisory problems (e.g. malformed JSON)
}

type strategy func(content string) Result

var strategies = map[model.Kind]strategy{
	model.KindJSONTokens:  extractJSONTokens,
	model.KindStylesheet:  extractStylesheet,
	model.KindThemeConfig: extractThemeConfig,
	model.KindGeneric:     extractGeneric,
}

// Extract runs the strategy for the target's kind. Errors never escape:
// they come back as findings alongside whatever was extracted.
func Extract(target model.Target) Result {
	kind := target.Kind
	if kind == "" {
		kind = Detect(target.Path)
	}

	run, ok := strategies[kind]
	if !ok {
		run = extractGeneric
	}
	return run(target.Content)
}
