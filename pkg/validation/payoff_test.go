package validation

import (
	"math"
	"strings"
	"testing"
)

func TestParsePayoff(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expected  float64
		expectErr string
	}{
		{name: "Integer", raw: "3", expected: 3},
		{name: "Negative", raw: "-1", expected: -1},
		{name: "Decimal", raw: "2.5", expected: 2.5},
		{name: "Surrounding spaces", raw: "  4 ", expected: 4},
		{name: "Exponent", raw: "1e2", expected: 100},
		{name: "Empty", raw: "", expectErr: "is required"},
		{name: "Whitespace only", raw: "   ", expectErr: "is required"},
		{name: "Not a number", raw: "abc", expectErr: "must be a number"},
		{name: "NaN", raw: "NaN", expectErr: "must be finite"},
		{name: "Infinity", raw: "+Inf", expectErr: "must be finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePayoff("uA11", tt.raw)
			if tt.expectErr != "" {
				if err == nil {
					t.Fatalf("ParsePayoff(%q) expected error containing %q", tt.raw, tt.expectErr)
				}
				if !strings.Contains(err.Error(), tt.expectErr) {
					t.Fatalf("ParsePayoff(%q) error = %v, expected it to contain %q", tt.raw, err, tt.expectErr)
				}
				if !strings.Contains(err.Error(), "uA11") {
					t.Fatalf("ParsePayoff(%q) error = %v, expected field name", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePayoff(%q) unexpected error = %v", tt.raw, err)
			}
			if got != tt.expected {
				t.Errorf("ParsePayoff(%q) = %v, expected %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestValidatePayoffs(t *testing.T) {
	if err := ValidatePayoffs("playerA", [][]float64{{1, 2}, {3, 4}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidatePayoffs("playerB", [][]float64{{1, 2}, {math.Inf(1), 4}})
	if err == nil {
		t.Fatal("expected error for infinite payoff")
	}
	if !strings.Contains(err.Error(), "playerB[1][0]") {
		t.Fatalf("expected error to locate the entry, got %v", err)
	}

	if err := ValidatePayoffs("playerA", [][]float64{{math.NaN(), 0}, {0, 0}}); err == nil {
		t.Fatal("expected error for NaN payoff")
	}
}
