// Package projection provides deterministic year-over-year projections of
// home equity and investment growth, plus a goal-seek solver over the same
// compounding model.
package projection

import (
	"math"

	"github.com/homecast/homecast/pkg/constants"
	"github.com/homecast/homecast/pkg/mortgage"
)

// EquitySnapshot captures home equity at the end of a given year.
type EquitySnapshot struct {
	Year          int     `json:"year"`
	HomeValue     float64 `json:"homeValue"`
	LoanBalance   float64 `json:"loanBalance"`
	PrincipalPaid float64 `json:"principalPaid"`
	Equity        float64 `json:"equity"`
}

// ProjectEquity produces yearly equity snapshots by combining the loan's
// amortization schedule with annually compounding home appreciation. The
// projection stops at schedule exhaustion: asking for more years than the
// loan term yields snapshots only through the term. Equity is not clamped at
// zero; deeply negative appreciation legitimately produces negative equity.
func ProjectEquity(purchasePrice, initialLoan, annualRatePercent float64, termYears, years int, appreciationRatePercent float64) []EquitySnapshot {
	schedule := mortgage.Amortize(initialLoan, annualRatePercent, termYears)
	downPayment := purchasePrice - initialLoan

	snapshots := make([]EquitySnapshot, 0, years)
	for year := 1; year <= years; year++ {
		monthIndex := year*constants.MonthsPerYear - 1
		if monthIndex >= len(schedule) {
			break
		}

		homeValue := purchasePrice * math.Pow(1+appreciationRatePercent/constants.PercentageMultiplier, float64(year))
		balance := schedule[monthIndex].Balance
		principalPaid := initialLoan - balance
		snapshots = append(snapshots, EquitySnapshot{
			Year:          year,
			HomeValue:     homeValue,
			LoanBalance:   balance,
			PrincipalPaid: principalPaid,
			Equity:        downPayment + principalPaid + (homeValue - purchasePrice),
		})
	}

	return snapshots
}
