package scenario

import (
	"fmt"
	"strings"
)

// Validate checks a record against the rules the projection engine relies on
// and returns human-readable errors. An empty slice means the record is safe
// to hand to the engine; invalid records must be rejected before any
// computation happens.
func Validate(record Record) []string {
	var errs []string

	if strings.TrimSpace(record.Name) == "" {
		errs = append(errs, "scenario name must not be blank")
	}
	if record.Property.PurchasePrice <= 0 {
		errs = append(errs, fmt.Sprintf("purchase price must be positive, got %.2f", record.Property.PurchasePrice))
	}
	if record.Property.DownPaymentPercent < 0 || record.Property.DownPaymentPercent > 100 {
		errs = append(errs, fmt.Sprintf("down payment percent must be within [0, 100], got %.2f", record.Property.DownPaymentPercent))
	}
	if record.Property.InterestRate < 0 {
		errs = append(errs, fmt.Sprintf("interest rate must not be negative, got %.2f", record.Property.InterestRate))
	}
	if record.Property.LoanTermYears <= 0 {
		errs = append(errs, fmt.Sprintf("loan term must be positive, got %d years", record.Property.LoanTermYears))
	}
	if record.Financials.AnnualIncome <= 0 {
		errs = append(errs, fmt.Sprintf("annual income must be positive, got %.2f", record.Financials.AnnualIncome))
	}

	return errs
}
