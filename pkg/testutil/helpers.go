// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/bimatrix-solver/internal/solver"
	"github.com/iwvelando/bimatrix-solver/pkg/mathutil"
)

// FindSolution finds a game by name in the results slice.
// Returns a pointer to the solution if found, nil otherwise.
func FindSolution(results []solver.Solution, name string) *solver.Solution {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// WithinTolerance reports whether a computed probability matches the expected one.
func WithinTolerance(expected, actual float64) bool {
	return mathutil.ProbabilitiesEqual(expected, actual)
}
