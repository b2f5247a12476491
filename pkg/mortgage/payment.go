package mortgage

import (
	"github.com/homecast/homecast/pkg/constants"
)

// Breakdown itemizes a total monthly housing payment. It is derived once from
// the loan terms and never mutated.
type Breakdown struct {
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	PMI                  float64 `json:"pmi"`
	PropertyTax          float64 `json:"propertyTax"`
	Insurance            float64 `json:"insurance"`
	HOA                  float64 `json:"hoa"`
	TotalPayment         float64 `json:"totalPayment"`
}

// ComposePayment combines the amortized principal-and-interest payment with
// the fixed monthly carrying costs into a Breakdown.
func ComposePayment(loanAmount, annualRatePercent float64, termYears int, propertyTax, insurance, hoa, pmi float64) Breakdown {
	pAndI := MonthlyPayment(loanAmount, annualRatePercent, termYears)
	return Breakdown{
		PrincipalAndInterest: pAndI,
		PMI:                  pmi,
		PropertyTax:          propertyTax,
		Insurance:            insurance,
		HOA:                  hoa,
		TotalPayment:         pAndI + pmi + propertyTax + insurance + hoa,
	}
}

// PMI returns the monthly private mortgage insurance premium. PMI applies
// only below the 20% down payment cutoff at a fixed 0.75% of the loan amount
// per year. There is no cancellation once equity crosses the cutoff; the
// premium runs for the life of the schedule.
func PMI(loanAmount, purchasePrice, downPaymentPercent float64) float64 {
	if downPaymentPercent >= constants.PMIDownPaymentCutoffPercent {
		return 0
	}
	if loanAmount <= 0 || purchasePrice <= 0 {
		return 0
	}
	annualPremium := loanAmount * constants.PMIAnnualRatePercent / constants.PercentageMultiplier
	return annualPremium / constants.MonthsPerYear
}
