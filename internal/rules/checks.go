package rules

import (
	"fmt"

	"github.com/yacobolo/tokenaudit/internal/model"
)

// Rule thresholds. Boundaries are strict (">").
const (
	maxColors          = 15  // above: high severity, with recommendation
	preferredMaxColors = 12  // above (up to maxColors): low severity only
	maxOffScaleRatio   = 0.3 // share of spacing values allowed off the scale
	maxFontSizes       = 8
	maxFontWeights     = 4
	maxTotalTokens     = 100
)

// Simplicity checks the number of distinct colors
func Simplicity(values model.Values) model.Outcome {
	var out model.Outcome

	count := model.CountUnique(values.Colors)
	switch {
	case count == 0:
		return out
	case count > maxColors:
		out.Findings = append(out.Findings, model.Finding{
			Check:    CheckSimplicity,
			Severity: model.SeverityHigh,
			Message: fmt.Sprintf("Color Palette Complexity: %d unique colors detected. "+
				"Ive's philosophy: 'Less, but better.' Reduce to ~8-12 colors maximum.", count),
		})
		out.Recommendations = append(out.Recommendations, model.Recommendation{
			Check: CheckSimplicity,
			Text: "Simplify color palette:\n" +
				"  - 1 primary brand color\n" +
				"  - Grayscale (3-5 shades: white, light gray, medium gray, dark gray, black)\n" +
				"  - Semantic colors (success/green, error/red, warning/yellow)\n" +
				"  - Optional: 1 accent color\n" +
				"  Eliminate decorative color variations.",
		})
	case count > preferredMaxColors:
		out.Findings = append(out.Findings, model.Finding{
			Check:    CheckSimplicity,
			Severity: model.SeverityLow,
			Message:  fmt.Sprintf("Color Palette: %d colors. Consider reducing to 8-12 for greater simplicity.", count),
		})
	}

	return out
}

// Authenticity checks how many spacing values fall off the 4/8 scale
func Authenticity(values model.Values) model.Outcome {
	var out model.Outcome

	total := len(values.Spacing)
	if total == 0 {
		return out
	}

	offScale := 0
	for _, value := range values.Spacing {
		if !IsScaleValue(value) {
			offScale++
		}
	}

	if float64(offScale) > float64(total)*maxOffScaleRatio {
		out.Findings = append(out.Findings, model.Finding{
			Check:    CheckAuthenticity,
			Severity: model.SeverityMedium,
			Message: fmt.Sprintf("Material Authenticity: %d arbitrary spacing values detected. "+
				"Ive's principle: Consistent design tokens create authentic, harmonious interfaces.", offScale),
		})
		out.Recommendations = append(out.Recommendations, model.Recommendation{
			Check: CheckAuthenticity,
			Text: "Establish consistent spacing scale:\n" +
				"  - Use multiples of 4 or 8 (e.g., 4, 8, 12, 16, 24, 32, 48, 64)\n" +
				"  - Replace arbitrary values with scale values\n" +
				"  - Apply scale consistently across all components",
		})
	}

	return out
}

// Detail checks typography granularity: distinct font sizes and weights
func Detail(values model.Values) model.Outcome {
	var out model.Outcome

	if len(values.FontSizes) > 0 {
		if sizes := model.CountUnique(values.FontSizes); sizes > maxFontSizes {
			out.Findings = append(out.Findings, model.Finding{
				Check:    CheckDetail,
				Severity: model.SeverityMedium,
				Message: fmt.Sprintf("Typography Scale: %d different font sizes detected. "+
					"Ive's obsession with detail requires harmonious, limited type scale (5-7 sizes ideal).", sizes),
			})
			out.Recommendations = append(out.Recommendations, model.Recommendation{
				Check: CheckDetail,
				Text: "Simplify typography scale:\n" +
					"  - Use modular scale (e.g., 1.25 or 1.333 ratio)\n" +
					"  - Limit to 5-7 sizes: xs, sm, base, lg, xl, 2xl, 3xl\n" +
					"  - Remove arbitrary size variations",
			})
		}
	}

	if len(values.FontWeights) > 0 {
		tally := make(map[string]int, len(values.FontWeights))
		for _, weight := range values.FontWeights {
			tally[weight]++
		}
		if len(tally) > maxFontWeights {
			out.Findings = append(out.Findings, model.Finding{
				Check:    CheckDetail,
				Severity: model.SeverityLow,
				Message: fmt.Sprintf("Font Weight Variety: %d different font weights. "+
					"Limit to 2-3 weights (e.g., 400/normal, 500/medium, 700/bold).", len(tally)),
			})
		}
	}

	return out
}

// Minimalism checks the raw volume of colors, font sizes and spacing values
func Minimalism(values model.Values) model.Outcome {
	var out model.Outcome

	total := values.Total()
	if total == 0 || total <= maxTotalTokens {
		return out
	}

	out.Findings = append(out.Findings, model.Finding{
		Check:    CheckMinimalism,
		Severity: model.SeverityMedium,
		Message: fmt.Sprintf("Design System Complexity: %d total design tokens. "+
			"Ive's 'Less, but better' principle suggests ruthless reduction. "+
			"Question every token: Does it serve the user's goal?", total),
	})
	out.Recommendations = append(out.Recommendations, model.Recommendation{
		Check: CheckMinimalism,
		Text: "Apply 'Less, but better' principle:\n" +
			"  1. List all design tokens\n" +
			"  2. For each token, ask: 'Is this essential?'\n" +
			"  3. Consolidate similar values\n" +
			"  4. Remove decorative variations\n" +
			"  5. Default to showing less, revealing more on demand",
	})

	return out
}
