// Package format renders payoffs and probabilities for display.
package format

import (
	"strconv"

	"github.com/iwvelando/bimatrix-solver/pkg/constants"
)

// Number returns the shortest decimal representation of v (e.g. "3", "-0.5",
// "0.6666666666666666").
func Number(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Probability returns v rounded to constants.ProbabilityDecimals places.
func Probability(v float64) string {
	return strconv.FormatFloat(v, 'f', constants.ProbabilityDecimals, 64)
}

// Pair renders two values as a tuple, e.g. "(3, 5)".
func Pair(first, second float64) string {
	return "(" + Number(first) + ", " + Number(second) + ")"
}

// ProbabilityPair renders a two-strategy distribution with fixed precision,
// e.g. "(0.6667, 0.3333)".
func ProbabilityPair(first, second float64) string {
	return "(" + Probability(first) + ", " + Probability(second) + ")"
}
