// Package model holds the values that flow through the tokenaudit pipeline:
// the loaded target, the extracted design values and the findings produced
// by the heuristic rules.
package model

// Kind identifies which extraction strategy applies to a target
type Kind string

// Target kinds, selected from the file name
const (
	KindJSONTokens  Kind = "json-tokens"
	KindStylesheet  Kind = "stylesheet"
	KindThemeConfig Kind = "theme-config"
	KindGeneric     Kind = "generic"
)

// Target is a loaded design-token source. It is not modified after loading.
type Target struct {
	Path    string // "web/styles/tokens.json"
	Name    string // "tokens.json"
	Content string // Full file text
	Kind    Kind   // Detected strategy
}

// Values holds the raw design values in extraction order.
// Duplicates are kept: some rules count raw occurrences, others count
// distinct values.
type Values struct {
	Colors      []string // ["#fff", "rgb(0, 0, 0)"]
	FontSizes   []string // ["16px", "1.25rem"]
	Spacing     []string // ["8px", "1rem"]
	FontWeights []string // ["400", "bold"]
}

// Counts summarises Values as distinct counts per category
type Counts struct {
	Colors      int `json:"colors"`
	FontSizes   int `json:"font_sizes"`
	Spacing     int `json:"spacing"`
	FontWeights int `json:"font_weights"`
}

// Counts returns the number of distinct values in each category.
// Equality is exact string equality, so "#FFF" and "#ffffff" are distinct.
func (v Values) Counts() Counts {
	return Counts{
		Colors:      CountUnique(v.Colors),
		FontSizes:   CountUnique(v.FontSizes),
		Spacing:     CountUnique(v.Spacing),
		FontWeights: CountUnique(v.FontWeights),
	}
}

// Total returns the raw number of color, font size and spacing values.
// Font weights are not part of the total.
func (v Values) Total() int {
	return len(v.Colors) + len(v.FontSizes) + len(v.Spacing)
}

// IsEmpty reports whether nothing was extracted
func (v Values) IsEmpty() bool {
	return v.Total() == 0 && len(v.FontWeights) == 0
}

// CountUnique returns the number of distinct strings in values
func CountUnique(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		seen[value] = struct{}{}
	}
	return len(seen)
}
