package rules

import (
	"math"
	"regexp"
	"strconv"
)

// scaleTolerance absorbs near-multiples such as rounded rem conversions
const scaleTolerance = 0.5

// scaleSteps are the grid moduli a spacing value may sit on
var scaleSteps = []float64{4, 8}

var leadingNumber = regexp.MustCompile(`^[0-9.]+`)

// IsScaleValue reports whether the leading number of value sits on the 4/8
// grid within the tolerance. Units are ignored: "8px", "8rem" and "8" are
// all on-scale. Values without a parseable leading number are off-scale.
func IsScaleValue(value string) bool {
	numeric := leadingNumber.FindString(value)
	if numeric == "" {
		return false
	}

	n, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return false
	}

	for _, step := range scaleSteps {
		if math.Mod(n, step) < scaleTolerance {
			return true
		}
	}
	return false
}
