package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePayoff converts a user-supplied payoff into a finite float64. The
// field name is only used in error messages.
func ParsePayoff(field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%s is required", field)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", field, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be finite, got %q", field, raw)
	}
	return v, nil
}

// ValidatePayoffs rejects NaN and infinite entries in an already numeric matrix.
func ValidatePayoffs(name string, m [][]float64) error {
	for i, row := range m {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s[%d][%d] must be finite, got %v", name, i, j, v)
			}
		}
	}
	return nil
}
