package extract

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yacobolo/tokenaudit/internal/model"
)

// kindPattern maps a base-name glob to a target kind
type kindPattern struct {
	pattern string
	kind    model.Kind
}

// kindPatterns is checked in order, first match wins. Matching is
// case-sensitive: "Tailwind.config.js" falls through to generic. Extension
// patterns need a stem, so a bare ".json" has no extension.
var kindPatterns = []kindPattern{
	{pattern: "?*.json", kind: model.KindJSONTokens},
	{pattern: "?*.{css,scss}", kind: model.KindStylesheet},
	{pattern: "tailwind.config.js", kind: model.KindThemeConfig},
}

// Detect returns the extraction kind for a file path based on its base name
func Detect(path string) model.Kind {
	name := filepath.Base(path)
	for _, kp := range kindPatterns {
		// Patterns are static and valid; an error only means no match
		if ok, err := doublestar.Match(kp.pattern, name); err == nil && ok {
			return kp.kind
		}
	}
	return model.KindGeneric
}
