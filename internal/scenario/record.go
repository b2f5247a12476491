// Package scenario defines the stored home-purchase scenario records and the
// stores that persist them.
package scenario

import (
	"time"

	"github.com/google/uuid"
	"github.com/homecast/homecast/pkg/constants"
	"github.com/homecast/homecast/pkg/mortgage"
)

// PropertyTerms holds the purchase and carrying-cost parameters for a
// property. All currency fields are monthly amounts unless noted.
type PropertyTerms struct {
	PurchasePrice      float64 `json:"purchasePrice" yaml:"purchasePrice"`
	DownPaymentPercent float64 `json:"downPaymentPercent" yaml:"downPaymentPercent"`
	InterestRate       float64 `json:"interestRate" yaml:"interestRate"`
	LoanTermYears      int     `json:"loanTermYears" yaml:"loanTermYears"`
	PropertyTax        float64 `json:"propertyTax" yaml:"propertyTax"`
	Insurance          float64 `json:"insurance" yaml:"insurance"`
	HOA                float64 `json:"hoa" yaml:"hoa"`
	Utilities          float64 `json:"utilities" yaml:"utilities"`
	Maintenance        float64 `json:"maintenance" yaml:"maintenance"`
}

// DownPaymentAmount derives the down payment from the price and percentage.
func (p PropertyTerms) DownPaymentAmount() float64 {
	return p.PurchasePrice * p.DownPaymentPercent / constants.PercentageMultiplier
}

// LoanAmount derives the financed amount; never negative for a valid record.
func (p PropertyTerms) LoanAmount() float64 {
	return p.PurchasePrice - p.DownPaymentAmount()
}

// HouseholdFinancials holds the income and investment posture of the buying
// household.
type HouseholdFinancials struct {
	AnnualIncome     float64 `json:"annualIncome" yaml:"annualIncome"`
	MonthlyDebts     float64 `json:"monthlyDebts" yaml:"monthlyDebts"`
	InvestmentReturn float64 `json:"investmentReturn" yaml:"investmentReturn"`
	CurrentPortfolio float64 `json:"currentPortfolio" yaml:"currentPortfolio"`
}

// Record is a persisted scenario: the property terms and household
// financials, plus the last payment breakdown computed for them.
type Record struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	Property   PropertyTerms       `json:"property"`
	Financials HouseholdFinancials `json:"financials"`
	Payment    *mortgage.Breakdown `json:"payment,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}
