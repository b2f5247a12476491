package projection

import (
	"github.com/homecast/homecast/pkg/constants"
)

// YearsToGoal simulates forward month-by-month until the balance reaches the
// goal, returning the number of years (rounded up) and whether the goal is
// reachable at all. A goal already met returns (0, true). With no positive
// contribution and an unmet goal the answer is (0, false) rather than an
// unbounded loop, as it is when the 1200-month cap is hit.
//
// This is a forward simulation, not a closed-form inverse: contributions are
// discrete monthly events, so no annuity formula applies exactly.
func YearsToGoal(startingAmount, monthlyContribution, annualReturnPercent, goalAmount float64) (int, bool) {
	if startingAmount >= goalAmount {
		return 0, true
	}
	if monthlyContribution <= 0 {
		return 0, false
	}

	monthlyRate := annualReturnPercent / constants.PercentageMultiplier / constants.MonthsPerYear
	balance := startingAmount
	for month := 1; month <= constants.GoalSeekMonthCap; month++ {
		balance += monthlyContribution
		balance *= 1 + monthlyRate
		if balance >= goalAmount {
			years := month / constants.MonthsPerYear
			if month%constants.MonthsPerYear != 0 {
				years++
			}
			return years, true
		}
	}

	return 0, false
}
