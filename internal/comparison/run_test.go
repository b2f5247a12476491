package comparison

import (
	"strings"
	"testing"

	"github.com/homecast/homecast/internal/config"
)

const runConfigYAML = `
scenarios:
  - name: craftsman
    active: true
    property:
      purchasePrice: 400000
      downPaymentPercent: 20
      interestRate: 6.5
      loanTermYears: 30
      propertyTax: 350
      insurance: 120
      utilities: 250
      maintenance: 200
    financials:
      annualIncome: 120000
      monthlyDebts: 400
      investmentReturn: 7
      currentPortfolio: 150000
    rent:
      monthlyRent: 2200
      annualIncreasePercent: 3
  - name: townhouse
    active: true
    property:
      purchasePrice: 300000
      downPaymentPercent: 20
      interestRate: 6.5
      loanTermYears: 30
      propertyTax: 250
      insurance: 100
      hoa: 200
      utilities: 200
      maintenance: 100
    financials:
      annualIncome: 120000
      monthlyDebts: 400
      investmentReturn: 7
      currentPortfolio: 150000
assumptions:
  years: 15
  annualRaisePercent: 3
  baseMonthlyExpenses: 3000
  savingsRatePercent: 100
  appreciationRatePercent: 3
`

func loadRunConfig(t *testing.T, mode string) config.Configuration {
	t.Helper()
	conf, err := config.LoadConfigurationFromReader(strings.NewReader(runConfigYAML))
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}
	conf.Comparison.Mode = mode
	if problems := conf.ValidateConfiguration(); len(problems) > 0 {
		t.Fatalf("configuration failed validation: %v", problems)
	}
	return *conf
}

func TestRunBuyVsRent(t *testing.T) {
	conf := loadRunConfig(t, config.ModeBuyVsRent)

	result, err := Run(nil, conf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.A.Label != "craftsman (buy)" || result.B.Label != "craftsman (rent)" {
		t.Errorf("labels = %q vs %q, expected craftsman buy/rent pair", result.A.Label, result.B.Label)
	}
	if len(result.A.YearlyData) != 15 || len(result.B.YearlyData) != 15 {
		t.Fatalf("series lengths = %d and %d, expected 15 each", len(result.A.YearlyData), len(result.B.YearlyData))
	}

	// Both sides consume identical income assumptions.
	for i := range result.A.YearlyData {
		if result.A.YearlyData[i].AnnualIncome != result.B.YearlyData[i].AnnualIncome {
			t.Fatalf("year %d incomes diverge: %.2f vs %.2f",
				i+1, result.A.YearlyData[i].AnnualIncome, result.B.YearlyData[i].AnnualIncome)
		}
	}

	// The rent side carries no equity; the buy side always does.
	for _, record := range result.B.YearlyData {
		if record.Equity != 0 {
			t.Fatalf("rent year %d has equity %.2f, expected 0", record.Year, record.Equity)
		}
	}
	for _, record := range result.A.YearlyData {
		if record.Equity <= 0 {
			t.Fatalf("buy year %d has equity %.2f, expected positive", record.Year, record.Equity)
		}
	}

	if result.Winner.Label != result.A.Label && result.Winner.Label != result.B.Label {
		t.Errorf("winner label %q is neither scenario", result.Winner.Label)
	}
	if result.Winner.DifferenceAmount < 0 {
		t.Errorf("winner difference = %.2f, expected non-negative", result.Winner.DifferenceAmount)
	}
}

func TestRunBuyVsBuy(t *testing.T) {
	conf := loadRunConfig(t, config.ModeBuyVsBuy)

	result, err := Run(nil, conf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.A.Label != "craftsman" || result.B.Label != "townhouse" {
		t.Errorf("labels = %q vs %q, expected the two active scenario names", result.A.Label, result.B.Label)
	}

	// The cheaper townhouse frees up more savings every year.
	for i := range result.A.YearlyData {
		if result.B.YearlyData[i].MonthlySavings <= result.A.YearlyData[i].MonthlySavings {
			t.Fatalf("year %d: townhouse savings %.2f not above craftsman %.2f",
				i+1, result.B.YearlyData[i].MonthlySavings, result.A.YearlyData[i].MonthlySavings)
		}
	}
}

func TestRunRejectsMissingRentTerms(t *testing.T) {
	conf := loadRunConfig(t, config.ModeBuyVsRent)
	conf.Scenarios[0].Rent = nil

	if _, err := Run(nil, conf); err == nil {
		t.Error("Run() succeeded without rent terms, expected error")
	}
}

func TestRunRejectsUnknownMode(t *testing.T) {
	conf := loadRunConfig(t, config.ModeBuyVsRent)
	conf.Comparison.Mode = "coin-flip"

	if _, err := Run(nil, conf); err == nil {
		t.Error("Run() succeeded with unknown mode, expected error")
	}
}
