// Package rules scores extracted design values against the four heuristic
// style rules: simplicity, material authenticity, attention to detail and
// less-but-better.
//
// Every rule is a pure function of the extracted values and returns its own
// findings and recommendations; the Engine concatenates them in rule order.
// Thresholds are fixed.
package rules

import "github.com/yacobolo/tokenaudit/internal/model"

// Rule IDs, also used as Finding.Check
const (
	CheckSimplicity   = "simplicity"
	CheckAuthenticity = "authenticity"
	CheckDetail       = "detail"
	CheckMinimalism   = "minimalism"
)

// Rule is one heuristic check
type Rule struct {
	ID          string
	Description string
	Check       func(model.Values) model.Outcome
}

// Engine runs rules in registration order
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the default rules
func NewEngine() *Engine {
	engine := &Engine{}
	engine.registerDefaultRules()
	return engine
}

// Rules returns the registered rules in evaluation order
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Evaluate runs every rule and concatenates the outcomes
func (e *Engine) Evaluate(values model.Values) model.Outcome {
	var outcome model.Outcome
	for _, rule := range e.rules {
		outcome.Append(rule.Check(values))
	}
	return outcome
}

func (e *Engine) registerDefaultRules() {
	e.rules = append(e.rules,
		Rule{
			ID:          CheckSimplicity,
			Description: "Color palette stays within 8-12 distinct colors",
			Check:       Simplicity,
		},
		Rule{
			ID:          CheckAuthenticity,
			Description: "Spacing values follow a 4/8 scale",
			Check:       Authenticity,
		},
		Rule{
			ID:          CheckDetail,
			Description: "Typography uses a limited set of sizes and weights",
			Check:       Detail,
		},
		Rule{
			ID:          CheckMinimalism,
			Description: "Total token volume stays small",
			Check:       Minimalism,
		},
	)
}
