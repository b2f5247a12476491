// Package simulate advances a household's income, expenses, savings, and
// portfolio year by year (month by month internally) for buy and rent
// scenarios, producing the net-worth series the comparator consumes.
package simulate

import (
	"fmt"
	"math"

	"github.com/homecast/homecast/internal/scenario"
	"github.com/homecast/homecast/pkg/constants"
	"github.com/homecast/homecast/pkg/mathutil"
	"github.com/homecast/homecast/pkg/mortgage"
	"github.com/homecast/homecast/pkg/projection"
	"go.uber.org/zap"
)

// Assumptions holds the shared year-by-year simulation parameters. Both the
// buy and rent variants consume the same assumptions so comparisons stay
// apples-to-apples.
type Assumptions struct {
	Years                   int                `json:"years" yaml:"years"`
	AnnualRaisePercent      float64            `json:"annualRaisePercent" yaml:"annualRaisePercent"`
	BaseMonthlyExpenses     float64            `json:"baseMonthlyExpenses" yaml:"baseMonthlyExpenses"`
	SavingsRatePercent      float64            `json:"savingsRatePercent" yaml:"savingsRatePercent"`
	AppreciationRatePercent float64            `json:"appreciationRatePercent" yaml:"appreciationRatePercent"`
	IncomeAdjustments       []IncomeAdjustment `json:"incomeAdjustments,omitempty" yaml:"incomeAdjustments,omitempty"`
	LifeEvents              []LifeEvent        `json:"lifeEvents,omitempty" yaml:"lifeEvents,omitempty"`
}

// RentTerms holds the housing-cost parameters for the rent variant.
type RentTerms struct {
	MonthlyRent           float64 `json:"monthlyRent" yaml:"monthlyRent"`
	AnnualIncreasePercent float64 `json:"annualIncreasePercent" yaml:"annualIncreasePercent"`
}

// YearRecord is one year of simulated household finances.
type YearRecord struct {
	Year                 int     `json:"year"`
	AnnualIncome         float64 `json:"annualIncome"`
	MonthlyIncome        float64 `json:"monthlyIncome"`
	MonthlyExpenses      float64 `json:"monthlyExpenses"`
	MonthlyDiscretionary float64 `json:"monthlyDiscretionary"`
	MonthlySavings       float64 `json:"monthlySavings"`
	OneTimeExpense       float64 `json:"oneTimeExpense"`
	Portfolio            float64 `json:"portfolio"`
	Equity               float64 `json:"equity"`
	NetWorth             float64 `json:"netWorth"`
}

// Projection is the full output of one simulation run.
type Projection struct {
	YearlyData []YearRecord                `json:"yearlyData"`
	EquityData []projection.EquitySnapshot `json:"equityData,omitempty"`
}

// FinalNetWorth returns the last year's net worth, or 0 for an empty run.
func (p Projection) FinalNetWorth() float64 {
	if len(p.YearlyData) == 0 {
		return 0
	}
	return p.YearlyData[len(p.YearlyData)-1].NetWorth
}

// Simulator runs year-by-year financial simulations.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a Simulator.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// SimulateBuy runs the purchase scenario: the down payment leaves the
// portfolio up front, the monthly housing cost is the composed mortgage
// payment plus utilities and maintenance, and net worth includes home equity.
func (s *Simulator) SimulateBuy(terms scenario.PropertyTerms, fin scenario.HouseholdFinancials, assume Assumptions) Projection {
	loanAmount := terms.LoanAmount()
	pmi := mortgage.PMI(loanAmount, terms.PurchasePrice, terms.DownPaymentPercent)
	breakdown := mortgage.ComposePayment(loanAmount, terms.InterestRate, terms.LoanTermYears,
		terms.PropertyTax, terms.Insurance, terms.HOA, pmi)
	housingCost := breakdown.TotalPayment + terms.Utilities + terms.Maintenance

	equityData := projection.ProjectEquity(terms.PurchasePrice, loanAmount, terms.InterestRate,
		terms.LoanTermYears, assume.Years, assume.AppreciationRatePercent)

	s.logger.Debug(fmt.Sprintf("buy simulation: %.2f/month housing over %d years", housingCost, assume.Years),
		zap.String("op", "simulate.SimulateBuy"),
	)

	startingPortfolio := mathutil.Max(0, fin.CurrentPortfolio-terms.DownPaymentAmount())
	result := s.run(fin, assume, startingPortfolio,
		func(year int) float64 { return housingCost },
		func(year int) float64 { return s.equityForYear(terms, equityData, assume, year) },
	)
	result.EquityData = equityData
	return result
}

// SimulateRent runs the rent scenario: the full portfolio stays invested, the
// housing cost is rent compounding at its own annual rate, and net worth is
// the portfolio alone.
func (s *Simulator) SimulateRent(fin scenario.HouseholdFinancials, rent RentTerms, assume Assumptions) Projection {
	s.logger.Debug(fmt.Sprintf("rent simulation: %.2f/month initial rent over %d years", rent.MonthlyRent, assume.Years),
		zap.String("op", "simulate.SimulateRent"),
	)

	return s.run(fin, assume, fin.CurrentPortfolio,
		func(year int) float64 {
			return rent.MonthlyRent * math.Pow(1+rent.AnnualIncreasePercent/constants.PercentageMultiplier, float64(year-1))
		},
		func(year int) float64 { return 0 },
	)
}

// run is the shared year loop. Per year: apply the annual raise, apply any
// income adjustment override, apply life events, derive monthly cash flow,
// grow the portfolio through twelve add-then-compound months, settle one-time
// expenses, and record net worth.
func (s *Simulator) run(fin scenario.HouseholdFinancials, assume Assumptions, startingPortfolio float64,
	housingCost func(year int) float64, equityFor func(year int) float64) Projection {

	currentIncome := fin.AnnualIncome
	portfolio := startingPortfolio
	ongoingExpenseAdjustment := 0.0

	yearly := make([]YearRecord, 0, assume.Years)
	for year := 1; year <= assume.Years; year++ {
		currentIncome *= 1 + assume.AnnualRaisePercent/constants.PercentageMultiplier

		for _, adjustment := range assume.IncomeAdjustments {
			if adjustment.Year == year {
				// An adjustment overrides the raised income outright.
				currentIncome = adjustment.Income
			}
		}

		oneTimeExpense := 0.0
		for _, event := range assume.LifeEvents {
			if event.Year != year {
				continue
			}
			switch event.Type {
			case EventOneTime:
				oneTimeExpense += event.Amount
			case EventOngoing:
				ongoingExpenseAdjustment += event.Amount / constants.MonthsPerYear
			case EventIncome:
				currentIncome += event.Amount
			default:
				s.logger.Warn("skipping life event with unknown type",
					zap.String("op", "simulate.run"),
					zap.String("type", event.Type),
					zap.String("description", event.Description),
				)
			}
		}

		monthlyExpenses := housingCost(year) + assume.BaseMonthlyExpenses + ongoingExpenseAdjustment
		monthlyIncome := currentIncome / constants.MonthsPerYear
		monthlyDiscretionary := monthlyIncome - monthlyExpenses
		monthlySavings := 0.0
		if monthlyDiscretionary > 0 {
			monthlySavings = mathutil.ApplyPercentage(monthlyDiscretionary, assume.SavingsRatePercent)
		}

		portfolio = projection.GrowMonthly(portfolio, monthlySavings, fin.InvestmentReturn, constants.MonthsPerYear)
		portfolio = mathutil.Max(0, portfolio-oneTimeExpense)

		equity := equityFor(year)
		yearly = append(yearly, YearRecord{
			Year:                 year,
			AnnualIncome:         currentIncome,
			MonthlyIncome:        monthlyIncome,
			MonthlyExpenses:      monthlyExpenses,
			MonthlyDiscretionary: monthlyDiscretionary,
			MonthlySavings:       monthlySavings,
			OneTimeExpense:       oneTimeExpense,
			Portfolio:            portfolio,
			Equity:               equity,
			NetWorth:             portfolio + equity,
		})
	}

	return Projection{YearlyData: yearly}
}

// equityForYear reads the equity series, extending past loan maturity with a
// paid-off snapshot: once the balance hits zero, equity is simply the
// appreciated home value.
func (s *Simulator) equityForYear(terms scenario.PropertyTerms, equityData []projection.EquitySnapshot, assume Assumptions, year int) float64 {
	if year <= len(equityData) {
		return equityData[year-1].Equity
	}
	return terms.PurchasePrice * math.Pow(1+assume.AppreciationRatePercent/constants.PercentageMultiplier, float64(year))
}
