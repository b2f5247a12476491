// Package mortgage provides loan amortization, payment composition, and
// affordability calculations for home purchase analysis.
package mortgage

import (
	"math"

	"github.com/homecast/homecast/pkg/constants"
	"github.com/homecast/homecast/pkg/mathutil"
)

// Row holds the values for a single month of an amortization schedule.
type Row struct {
	// Month is 1-based.
	Month     int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// MonthlyPayment calculates the monthly payment for a loan using the standard
// amortization formula. A zero interest rate degrades to a straight-line
// division of the principal across the term.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}

	termMonths := termYears * constants.MonthsPerYear
	if annualRatePercent == 0 {
		return principal / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// MonthlyInterest calculates the interest portion of a payment against the
// remaining balance.
func MonthlyInterest(balance, annualRatePercent float64) float64 {
	return balance * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Amortize produces the complete month-by-month schedule for a loan. The
// schedule is empty for non-positive principal or term. The final row's
// balance is forced to exactly zero to absorb floating-point drift.
func Amortize(principal, annualRatePercent float64, termYears int) []Row {
	if principal <= 0 || termYears <= 0 {
		return nil
	}

	termMonths := termYears * constants.MonthsPerYear
	payment := MonthlyPayment(principal, annualRatePercent, termYears)

	schedule := make([]Row, 0, termMonths)
	balance := principal
	for month := 1; month <= termMonths; month++ {
		interest := MonthlyInterest(balance, annualRatePercent)
		principalPortion := payment - interest
		balance -= principalPortion
		if month == termMonths {
			// Machine error would otherwise leave a residual balance.
			balance = 0.00
		}
		schedule = append(schedule, Row{
			Month:     month,
			Payment:   payment,
			Principal: principalPortion,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule
}

// TotalPrincipalPaid sums the principal portions across a schedule. Within
// floating tolerance this recovers the original loan amount for a complete
// schedule.
func TotalPrincipalPaid(schedule []Row) float64 {
	total := 0.0
	for _, row := range schedule {
		total += row.Principal
	}
	return mathutil.Round(total)
}
