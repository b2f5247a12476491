package projection

import (
	"testing"
)

func TestYearsToGoal(t *testing.T) {
	tests := []struct {
		name                string
		startingAmount      float64
		monthlyContribution float64
		annualReturnPercent float64
		goalAmount          float64
		expectedYears       int
		expectedReachable   bool
	}{
		{
			name:                "Goal already met",
			startingAmount:      500000,
			monthlyContribution: 0,
			annualReturnPercent: 7.0,
			goalAmount:          500000,
			expectedYears:       0,
			expectedReachable:   true,
		},
		{
			name:                "Starting above goal",
			startingAmount:      600000,
			monthlyContribution: 1000,
			annualReturnPercent: 7.0,
			goalAmount:          500000,
			expectedYears:       0,
			expectedReachable:   true,
		},
		{
			name:                "No contribution and unmet goal",
			startingAmount:      100000,
			monthlyContribution: 0,
			annualReturnPercent: 7.0,
			goalAmount:          500000,
			expectedReachable:   false,
		},
		{
			name:                "Negative contribution",
			startingAmount:      100000,
			monthlyContribution: -500,
			annualReturnPercent: 7.0,
			goalAmount:          500000,
			expectedReachable:   false,
		},
		{
			name:                "Unreachable within cap",
			startingAmount:      0,
			monthlyContribution: 1,
			annualReturnPercent: 0,
			goalAmount:          10000000,
			expectedReachable:   false,
		},
		{
			name:                "Simple zero-return goal",
			startingAmount:      0,
			monthlyContribution: 1000,
			annualReturnPercent: 0,
			goalAmount:          12000,
			expectedYears:       1,
			expectedReachable:   true,
		},
		{
			name:                "Partial year rounds up",
			startingAmount:      0,
			monthlyContribution: 1000,
			annualReturnPercent: 0,
			goalAmount:          13000,
			expectedYears:       2,
			expectedReachable:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, reachable := YearsToGoal(tt.startingAmount, tt.monthlyContribution, tt.annualReturnPercent, tt.goalAmount)

			if reachable != tt.expectedReachable {
				t.Fatalf("YearsToGoal() reachable = %v, expected %v", reachable, tt.expectedReachable)
			}
			if reachable && years != tt.expectedYears {
				t.Errorf("YearsToGoal() = %d years, expected %d", years, tt.expectedYears)
			}
		})
	}
}

func TestYearsToGoalConsistentWithGrowth(t *testing.T) {
	// The solver must agree with the forward growth projection it inverts.
	years, reachable := YearsToGoal(50000, 2000, 7.0, 500000)
	if !reachable {
		t.Fatal("YearsToGoal() reported unreachable for a clearly reachable goal")
	}

	value := GrowMonthly(50000, 2000, 7.0, years*12)
	if value < 500000 {
		t.Errorf("balance after %d years = %.2f, expected >= goal 500000", years, value)
	}

	if years > 1 {
		previous := GrowMonthly(50000, 2000, 7.0, (years-2)*12)
		if previous >= 500000 {
			t.Errorf("goal met %d years early; YearsToGoal() = %d is not minimal", 1, years)
		}
	}
}
