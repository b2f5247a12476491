package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Sub-cent positive", 0.001, 0.00},
		{"Exactly one cent", 0.01, 0.01},
		{"Nearly two cents", 0.019, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMax(t *testing.T) {
	if got := Max(1.5, 2.5); got != 2.5 {
		t.Errorf("Max(1.5, 2.5) = %v, expected 2.5", got)
	}
	if got := Max(-1.0, -2.0); got != -1.0 {
		t.Errorf("Max(-1.0, -2.0) = %v, expected -1.0", got)
	}
	if got := Max(0, -10.0); got != 0 {
		t.Errorf("Max(0, -10.0) = %v, expected 0", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Down payment", 400000, 20, 80000},
		{"Full rate", 1234.56, 100, 1234.56},
		{"Zero rate", 1234.56, 0, 0},
		{"Savings rate", 3000, 75, 2250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPercentage(tt.value, tt.percentage); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, got, tt.expected)
			}
		})
	}
}
