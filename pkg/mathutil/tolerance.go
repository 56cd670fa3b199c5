// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/bimatrix-solver/pkg/constants"
)

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ProbabilitiesEqual checks if two probabilities agree within constants.ProbabilityTolerance
func ProbabilitiesEqual(val1, val2 float64) bool {
	return WithinTolerance(val1, val2, constants.ProbabilityTolerance)
}

// IsDistribution checks that a two-strategy distribution has non-negative
// entries summing to one.
func IsDistribution(dist [2]float64) bool {
	return dist[0] >= 0 && dist[1] >= 0 && ProbabilitiesEqual(dist[0]+dist[1], 1)
}
