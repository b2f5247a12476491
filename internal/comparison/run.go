package comparison

import (
	"fmt"

	"github.com/homecast/homecast/internal/config"
	"github.com/homecast/homecast/internal/simulate"
	"go.uber.org/zap"
)

// Run simulates the configured scenarios and compares them according to the
// configured mode. It is the single entry point the CLI and the HTTP server
// share.
func Run(logger *zap.Logger, conf config.Configuration) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	active := conf.ActiveScenarios()
	simulator := simulate.NewSimulator(logger)
	comparator := NewComparator(logger)

	switch conf.Comparison.Mode {
	case config.ModeBuyVsRent:
		if len(active) == 0 {
			return Result{}, fmt.Errorf("no active scenarios configured")
		}
		sc := active[0]
		if sc.Rent == nil {
			return Result{}, fmt.Errorf("scenario %q has no rent terms for %s mode", sc.Name, config.ModeBuyVsRent)
		}

		buy := simulator.SimulateBuy(sc.Property, sc.Financials, conf.Assumptions)
		rent := simulator.SimulateRent(sc.Financials, *sc.Rent, conf.Assumptions)

		logger.Debug(fmt.Sprintf("comparing buy vs rent for scenario %s", sc.Name),
			zap.String("op", "comparison.Run"),
		)
		return comparator.Compare(
			fmt.Sprintf("%s (buy)", sc.Name), buy,
			fmt.Sprintf("%s (rent)", sc.Name), rent,
			conf.Comparison.TimeframeYears,
			Options{
				MilestoneAmount:     conf.Comparison.MilestoneAmount,
				AnnualReturnPercent: sc.Financials.InvestmentReturn,
			},
		), nil

	case config.ModeBuyVsBuy:
		if len(active) < 2 {
			return Result{}, fmt.Errorf("%s mode needs two active scenarios, found %d", config.ModeBuyVsBuy, len(active))
		}
		first, second := active[0], active[1]

		buyA := simulator.SimulateBuy(first.Property, first.Financials, conf.Assumptions)
		buyB := simulator.SimulateBuy(second.Property, second.Financials, conf.Assumptions)

		logger.Debug(fmt.Sprintf("comparing purchases %s vs %s", first.Name, second.Name),
			zap.String("op", "comparison.Run"),
		)
		return comparator.Compare(
			first.Name, buyA,
			second.Name, buyB,
			conf.Comparison.TimeframeYears,
			Options{
				MilestoneAmount:     conf.Comparison.MilestoneAmount,
				AnnualReturnPercent: first.Financials.InvestmentReturn,
			},
		), nil

	default:
		return Result{}, fmt.Errorf("unknown comparison mode %q", conf.Comparison.Mode)
	}
}
