package mortgage

import (
	"github.com/homecast/homecast/pkg/constants"
)

// Affordability status labels, ordered from worst to best.
const (
	StatusWarning   = "warning"
	StatusCaution   = "caution"
	StatusGood      = "good"
	StatusExcellent = "excellent"
)

// Ratios holds the housing and debt-to-income ratios for a proposed payment
// along with a qualitative status label.
type Ratios struct {
	HousingRatio float64 `json:"housingRatio"`
	DTIRatio     float64 `json:"dtiRatio"`
	Status       string  `json:"status"`
}

// AffordabilityRatios derives the housing ratio (payment over income) and the
// debt-to-income ratio (payment plus other debt over income), both as
// percentages, and classifies them. A zero or negative income produces
// infinite or NaN ratios; callers must treat those as not computable rather
// than meaningful.
func AffordabilityRatios(totalMonthlyPayment, monthlyIncome, otherMonthlyDebt float64) Ratios {
	housing := totalMonthlyPayment / monthlyIncome * constants.PercentageMultiplier
	dti := (totalMonthlyPayment + otherMonthlyDebt) / monthlyIncome * constants.PercentageMultiplier
	return Ratios{
		HousingRatio: housing,
		DTIRatio:     dti,
		Status:       classifyRatios(housing, dti),
	}
}

// classifyRatios applies the status thresholds in priority order; the first
// band that either ratio exceeds wins.
func classifyRatios(housingRatio, dtiRatio float64) string {
	switch {
	case housingRatio > constants.HousingRatioWarning || dtiRatio > constants.DTIRatioWarning:
		return StatusWarning
	case housingRatio > constants.HousingRatioCaution || dtiRatio > constants.DTIRatioCaution:
		return StatusCaution
	case housingRatio > constants.HousingRatioGood || dtiRatio > constants.DTIRatioGood:
		return StatusGood
	default:
		return StatusExcellent
	}
}
