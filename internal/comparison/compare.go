// Package comparison derives comparative metrics from two simulated net-worth
// series: per-year differences, the break-even crossover year, and a winner.
package comparison

import (
	"fmt"

	"github.com/homecast/homecast/internal/simulate"
	"github.com/homecast/homecast/pkg/constants"
	"github.com/homecast/homecast/pkg/projection"
	"go.uber.org/zap"
)

// Options tunes the derived metrics.
type Options struct {
	// MilestoneAmount is the portfolio milestone target; zero selects the
	// default.
	MilestoneAmount float64

	// AnnualReturnPercent is the investment return used by the goal-seek
	// metrics (years to FI, years to milestone).
	AnnualReturnPercent float64
}

// ScenarioSummary names one side of a comparison and carries its series plus
// per-scenario goal metrics. A nil YearsToFI or YearsToMilestone means the
// goal is never reached.
type ScenarioSummary struct {
	Label            string                `json:"label"`
	YearlyData       []simulate.YearRecord `json:"yearlyData"`
	FinalNetWorth    float64               `json:"finalNetWorth"`
	YearsToFI        *int                  `json:"yearsToFI"`
	YearsToMilestone *int                  `json:"yearsToMilestone"`
}

// Differences holds scenario-A-minus-scenario-B deltas at the end of the
// comparison timeframe.
type Differences struct {
	AnnualCost          float64 `json:"annualCost"`
	Discretionary       float64 `json:"discretionary"`
	Investments         float64 `json:"investments"`
	NetWorth            float64 `json:"netWorth"`
	RetirementPortfolio float64 `json:"retirementPortfolio"`
	YearsToFI           *int    `json:"yearsToFI,omitempty"`
	YearsToMilestone    *int    `json:"yearsToMilestone,omitempty"`
}

// Winner declares the scenario with the larger final net worth.
type Winner struct {
	Label            string  `json:"label"`
	DifferenceAmount float64 `json:"differenceAmount"`
	BreakEvenYear    *int    `json:"breakEvenYear"`
}

// Result is the full output of a comparison run.
type Result struct {
	A           ScenarioSummary `json:"a"`
	B           ScenarioSummary `json:"b"`
	Differences Differences     `json:"differences"`
	Winner      Winner          `json:"winner"`
}

// Comparator compares simulated projections.
type Comparator struct {
	logger *zap.Logger
}

// NewComparator creates a Comparator.
func NewComparator(logger *zap.Logger) *Comparator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Comparator{logger: logger}
}

// Compare evaluates two projections over the first timeframe years. Labels
// identify the scenarios in the result; ties on final net worth go to A.
func (c *Comparator) Compare(labelA string, a simulate.Projection, labelB string, b simulate.Projection, timeframe int, opts Options) Result {
	if timeframe <= 0 {
		timeframe = constants.DefaultTimeframeYears
	}
	milestone := opts.MilestoneAmount
	if milestone <= 0 {
		milestone = constants.DefaultMilestoneAmount
	}

	yearsA := truncateYears(a.YearlyData, timeframe)
	yearsB := truncateYears(b.YearlyData, timeframe)

	summaryA := c.summarize(labelA, yearsA, milestone, opts.AnnualReturnPercent)
	summaryB := c.summarize(labelB, yearsB, milestone, opts.AnnualReturnPercent)

	winner := Winner{
		Label:            summaryA.Label,
		DifferenceAmount: summaryA.FinalNetWorth - summaryB.FinalNetWorth,
		BreakEvenYear:    breakEvenYear(yearsA, yearsB),
	}
	if summaryB.FinalNetWorth > summaryA.FinalNetWorth {
		winner.Label = summaryB.Label
		winner.DifferenceAmount = summaryB.FinalNetWorth - summaryA.FinalNetWorth
	}

	c.logger.Debug(fmt.Sprintf("comparison winner: %s by %.2f", winner.Label, winner.DifferenceAmount),
		zap.String("op", "comparison.Compare"),
	)

	return Result{
		A:           summaryA,
		B:           summaryB,
		Differences: differences(summaryA, summaryB, yearsA, yearsB),
		Winner:      winner,
	}
}

func truncateYears(years []simulate.YearRecord, timeframe int) []simulate.YearRecord {
	if len(years) > timeframe {
		return years[:timeframe]
	}
	return years
}

func (c *Comparator) summarize(label string, years []simulate.YearRecord, milestone, annualReturnPercent float64) ScenarioSummary {
	summary := ScenarioSummary{Label: label, YearlyData: years}
	if len(years) == 0 {
		return summary
	}

	final := years[len(years)-1]
	summary.FinalNetWorth = final.NetWorth

	// Goal metrics seed from the scenario's first simulated year: its
	// post-down-payment portfolio and its sustained monthly contribution.
	first := years[0]
	fiTarget := first.MonthlyExpenses * constants.MonthsPerYear * constants.FIExpenseMultiplier
	if fiYears, ok := projection.YearsToGoal(first.Portfolio, first.MonthlySavings, annualReturnPercent, fiTarget); ok {
		summary.YearsToFI = &fiYears
	}
	if milestoneYears, ok := projection.YearsToGoal(first.Portfolio, first.MonthlySavings, annualReturnPercent, milestone); ok {
		summary.YearsToMilestone = &milestoneYears
	}

	return summary
}

func differences(summaryA, summaryB ScenarioSummary, yearsA, yearsB []simulate.YearRecord) Differences {
	diff := Differences{
		NetWorth: summaryA.FinalNetWorth - summaryB.FinalNetWorth,
	}

	if len(yearsA) > 0 && len(yearsB) > 0 {
		finalA := yearsA[len(yearsA)-1]
		finalB := yearsB[len(yearsB)-1]
		diff.AnnualCost = (finalA.MonthlyExpenses - finalB.MonthlyExpenses) * constants.MonthsPerYear
		diff.Discretionary = finalA.MonthlyDiscretionary - finalB.MonthlyDiscretionary
		diff.Investments = finalA.MonthlySavings - finalB.MonthlySavings
		diff.RetirementPortfolio = finalA.Portfolio - finalB.Portfolio
	}

	if summaryA.YearsToFI != nil && summaryB.YearsToFI != nil {
		delta := *summaryA.YearsToFI - *summaryB.YearsToFI
		diff.YearsToFI = &delta
	}
	if summaryA.YearsToMilestone != nil && summaryB.YearsToMilestone != nil {
		delta := *summaryA.YearsToMilestone - *summaryB.YearsToMilestone
		diff.YearsToMilestone = &delta
	}

	return diff
}

// breakEvenYear scans consecutive year pairs for the first sign flip of the
// net-worth difference. An exact tie counts as a flip. Only the first
// crossover is reported; nil means the series never cross.
func breakEvenYear(yearsA, yearsB []simulate.YearRecord) *int {
	n := len(yearsA)
	if len(yearsB) < n {
		n = len(yearsB)
	}
	if n < 2 {
		return nil
	}

	previous := yearsA[0].NetWorth - yearsB[0].NetWorth
	for i := 1; i < n; i++ {
		current := yearsA[i].NetWorth - yearsB[i].NetWorth
		if (previous > 0 && current <= 0) || (previous < 0 && current >= 0) {
			year := yearsA[i].Year
			return &year
		}
		previous = current
	}
	return nil
}
