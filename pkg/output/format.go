// Package output provides utilities for formatting and displaying comparison
// results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/homecast/homecast/internal/comparison"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result comparison.Result) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- %s vs %s ---\n", result.A.Label, result.B.Label)
	_, _ = p.Fprintf(w, "Winner: %s by $%.2f\n", result.Winner.Label, result.Winner.DifferenceAmount)
	if result.Winner.BreakEvenYear != nil {
		fmt.Fprintf(w, "Break-even: year %d\n", *result.Winner.BreakEvenYear)
	} else {
		fmt.Fprintf(w, "Break-even: never\n")
	}
	fmt.Fprintf(w, "Years to FI: %s (%s) | %s (%s)\n",
		result.A.Label, goalYears(result.A.YearsToFI),
		result.B.Label, goalYears(result.B.YearsToFI))
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "Year | Net worth (%s) | Net worth (%s) | Difference\n", result.A.Label, result.B.Label)
	fmt.Fprintf(w, "____ | %s | %s | __________\n",
		strings.Repeat("_", len("Net worth ()")+len(result.A.Label)),
		strings.Repeat("_", len("Net worth ()")+len(result.B.Label)))

	for i := range result.A.YearlyData {
		recordA := result.A.YearlyData[i]
		if i >= len(result.B.YearlyData) {
			break
		}
		recordB := result.B.YearlyData[i]
		_, _ = p.Fprintf(w, "%4d | $%.2f | $%.2f | $%.2f\n",
			recordA.Year, recordA.NetWorth, recordB.NetWorth, recordA.NetWorth-recordB.NetWorth)
	}
}

// CsvFormat writes in comma-separated value format.
func CsvFormat(w io.Writer, result comparison.Result) {
	fmt.Fprintf(w, `"year","net worth (%s)","net worth (%s)","difference"`, result.A.Label, result.B.Label)
	fmt.Fprintf(w, "\n")
	for i := range result.A.YearlyData {
		recordA := result.A.YearlyData[i]
		if i >= len(result.B.YearlyData) {
			break
		}
		recordB := result.B.YearlyData[i]
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f"`, recordA.Year, recordA.NetWorth, recordB.NetWorth,
			recordA.NetWorth-recordB.NetWorth)
		fmt.Fprintf(w, "\n")
	}
}

// CsvString renders the CSV output as a string for embedding in API
// responses.
func CsvString(result comparison.Result) string {
	var builder strings.Builder
	CsvFormat(&builder, result)
	return builder.String()
}

func goalYears(years *int) string {
	if years == nil {
		return "never"
	}
	return fmt.Sprintf("%d years", *years)
}
