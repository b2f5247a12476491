package projection

import (
	"github.com/homecast/homecast/pkg/constants"
)

// InvestmentSnapshot captures an investment balance at the end of a given
// year.
type InvestmentSnapshot struct {
	Year     int     `json:"year"`
	Invested float64 `json:"invested"`
	Value    float64 `json:"value"`
	Gains    float64 `json:"gains"`
}

// ProjectInvestmentGrowth compounds a starting balance with fixed monthly
// contributions at a fixed annual return. Each month the contribution is
// added first, then growth is applied; contributions arrive at month start.
func ProjectInvestmentGrowth(initial, monthlyContribution, annualReturnPercent float64, years int) []InvestmentSnapshot {
	monthlyRate := annualReturnPercent / constants.PercentageMultiplier / constants.MonthsPerYear

	snapshots := make([]InvestmentSnapshot, 0, years)
	value := initial
	invested := initial
	for year := 1; year <= years; year++ {
		for month := 0; month < constants.MonthsPerYear; month++ {
			value += monthlyContribution
			value *= 1 + monthlyRate
		}
		invested += monthlyContribution * constants.MonthsPerYear
		snapshots = append(snapshots, InvestmentSnapshot{
			Year:     year,
			Invested: invested,
			Value:    value,
			Gains:    value - invested,
		})
	}

	return snapshots
}

// GrowMonthly advances a balance through a number of months of the same
// add-then-compound cycle used by ProjectInvestmentGrowth. It is the shared
// primitive for the year-by-year simulator and the goal-seek solver.
func GrowMonthly(balance, monthlyContribution, annualReturnPercent float64, months int) float64 {
	monthlyRate := annualReturnPercent / constants.PercentageMultiplier / constants.MonthsPerYear
	for month := 0; month < months; month++ {
		balance += monthlyContribution
		balance *= 1 + monthlyRate
	}
	return balance
}
