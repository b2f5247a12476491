package config

import (
	"strings"
	"testing"

	"github.com/homecast/homecast/internal/simulate"
	"github.com/homecast/homecast/pkg/constants"
)

const sampleConfigYAML = `
scenarios:
  - name: bungalow
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
  - name: dormant
    active: false
    property:
      purchasePrice: 600000
      downPaymentPercent: 10
      interestRate: 6.5
      loanTermYears: 30
    financials:
      annualIncome: 120000
assumptions:
  years: 10
  annualRaisePercent: 3
  baseMonthlyExpenses: 3000
  savingsRatePercent: 100
  appreciationRatePercent: 3
  lifeEvents:
    - year: 4
      description: new roof
      type: one-time
      amount: 18000
logging:
  level: debug
  format: console
output:
  format: csv
`

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if len(conf.Scenarios) != 2 {
		t.Fatalf("loaded %d scenarios, expected 2", len(conf.Scenarios))
	}
	sc := conf.Scenarios[0]
	if sc.Name != "bungalow" || !sc.Active {
		t.Errorf("first scenario = %s active=%v, expected active bungalow", sc.Name, sc.Active)
	}
	if sc.Property.PurchasePrice != 400000 || sc.Property.LoanTermYears != 30 {
		t.Errorf("property terms not decoded: %+v", sc.Property)
	}
	if sc.Rent == nil || sc.Rent.MonthlyRent != 2200 {
		t.Errorf("rent terms not decoded: %+v", sc.Rent)
	}
	if conf.Assumptions.Years != 10 {
		t.Errorf("assumptions.years = %d, expected 10", conf.Assumptions.Years)
	}
	if len(conf.Assumptions.LifeEvents) != 1 || conf.Assumptions.LifeEvents[0].Type != simulate.EventOneTime {
		t.Errorf("life events not decoded: %+v", conf.Assumptions.LifeEvents)
	}
	if conf.Logging.Level != "debug" || conf.Output.Format != "csv" {
		t.Errorf("logging/output not decoded: %+v %+v", conf.Logging, conf.Output)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Comparison.Mode != ModeBuyVsRent {
		t.Errorf("default mode = %s, expected %s", conf.Comparison.Mode, ModeBuyVsRent)
	}
	if conf.Comparison.TimeframeYears != conf.Assumptions.Years {
		t.Errorf("default timeframe = %d, expected simulation years %d",
			conf.Comparison.TimeframeYears, conf.Assumptions.Years)
	}
	if conf.Comparison.MilestoneAmount != constants.DefaultMilestoneAmount {
		t.Errorf("default milestone = %.2f, expected %.2f",
			conf.Comparison.MilestoneAmount, constants.DefaultMilestoneAmount)
	}
}

func TestLoadConfigurationMalformed(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader("scenarios: [unterminated")); err == nil {
		t.Error("LoadConfigurationFromReader() succeeded on malformed YAML, expected error")
	}
}

func TestActiveScenarios(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	active := conf.ActiveScenarios()
	if len(active) != 1 || active[0].Name != "bungalow" {
		t.Errorf("ActiveScenarios() = %+v, expected just bungalow", active)
	}
}

func TestValidateConfiguration(t *testing.T) {
	base := func() *Configuration {
		conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfigYAML))
		if err != nil {
			t.Fatalf("LoadConfigurationFromReader() error = %v", err)
		}
		return conf
	}

	tests := []struct {
		name    string
		mutate  func(*Configuration)
		problem string
	}{
		{
			name:   "valid configuration",
			mutate: func(conf *Configuration) {},
		},
		{
			name:    "no horizon",
			mutate:  func(conf *Configuration) { conf.Assumptions.Years = 0 },
			problem: "assumptions.years",
		},
		{
			name: "no active scenarios",
			mutate: func(conf *Configuration) {
				for i := range conf.Scenarios {
					conf.Scenarios[i].Active = false
				}
			},
			problem: "no active scenarios",
		},
		{
			name:    "rent block missing in buy-vs-rent mode",
			mutate:  func(conf *Configuration) { conf.Scenarios[0].Rent = nil },
			problem: "needs a rent block",
		},
		{
			name:    "buy-vs-buy needs two active",
			mutate:  func(conf *Configuration) { conf.Comparison.Mode = ModeBuyVsBuy },
			problem: "two active scenarios",
		},
		{
			name:    "unknown mode",
			mutate:  func(conf *Configuration) { conf.Comparison.Mode = "coin-flip" },
			problem: "unknown comparison mode",
		},
		{
			name:    "negative purchase price",
			mutate:  func(conf *Configuration) { conf.Scenarios[0].Property.PurchasePrice = -1 },
			problem: "purchase price",
		},
		{
			name:    "zero rent",
			mutate:  func(conf *Configuration) { conf.Scenarios[0].Rent.MonthlyRent = 0 },
			problem: "monthly rent",
		},
		{
			name:    "life event beyond horizon",
			mutate:  func(conf *Configuration) { conf.Assumptions.LifeEvents[0].Year = 40 },
			problem: "outside the 10-year horizon",
		},
		{
			name:    "unknown life event type",
			mutate:  func(conf *Configuration) { conf.Assumptions.LifeEvents[0].Type = "windfall" },
			problem: "unknown type",
		},
		{
			name: "income adjustment beyond horizon",
			mutate: func(conf *Configuration) {
				conf.Assumptions.IncomeAdjustments = []simulate.IncomeAdjustment{{Year: 12, Income: 150000}}
			},
			problem: "income adjustment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := base()
			tt.mutate(conf)
			problems := conf.ValidateConfiguration()

			if tt.problem == "" {
				if len(problems) != 0 {
					t.Errorf("ValidateConfiguration() = %v, expected none", problems)
				}
				return
			}

			found := false
			for _, problem := range problems {
				if strings.Contains(problem, tt.problem) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("ValidateConfiguration() = %v, expected a problem containing %q", problems, tt.problem)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv", "Pretty", "CSV"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) error = %v", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(\"xml\") succeeded, expected error")
	}
}
