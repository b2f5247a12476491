package output

import (
	"strings"
	"testing"

	"github.com/homecast/homecast/internal/comparison"
	"github.com/homecast/homecast/internal/simulate"
)

func sampleResult() comparison.Result {
	breakEven := 2
	fiYears := 18
	return comparison.Result{
		A: comparison.ScenarioSummary{
			Label: "buy",
			YearlyData: []simulate.YearRecord{
				{Year: 1, NetWorth: 100000},
				{Year: 2, NetWorth: 150000},
			},
			FinalNetWorth: 150000,
			YearsToFI:     &fiYears,
		},
		B: comparison.ScenarioSummary{
			Label: "rent",
			YearlyData: []simulate.YearRecord{
				{Year: 1, NetWorth: 120000},
				{Year: 2, NetWorth: 140000},
			},
			FinalNetWorth: 140000,
		},
		Winner: comparison.Winner{
			Label:            "buy",
			DifferenceAmount: 10000,
			BreakEvenYear:    &breakEven,
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	var builder strings.Builder
	PrettyFormat(&builder, sampleResult())
	rendered := builder.String()

	for _, expected := range []string{
		"buy vs rent",
		"Winner: buy",
		"Break-even: year 2",
		"18 years",
		"never",
	} {
		if !strings.Contains(rendered, expected) {
			t.Errorf("PrettyFormat() output missing %q:\n%s", expected, rendered)
		}
	}
}

func TestPrettyFormatNoBreakEven(t *testing.T) {
	result := sampleResult()
	result.Winner.BreakEvenYear = nil

	var builder strings.Builder
	PrettyFormat(&builder, result)

	if !strings.Contains(builder.String(), "Break-even: never") {
		t.Errorf("PrettyFormat() output missing never break-even:\n%s", builder.String())
	}
}

func TestCsvFormat(t *testing.T) {
	rendered := CsvString(sampleResult())

	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvString() produced %d lines, expected header plus 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], `"net worth (buy)"`) {
		t.Errorf("CSV header missing scenario column: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"100000.00"`) {
		t.Errorf("CSV row missing year 1 net worth: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"10000.00"`) {
		t.Errorf("CSV row missing year 2 difference: %s", lines[2])
	}
}
