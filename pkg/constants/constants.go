// Package constants provides shared constants for the homecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Mortgage constants
const (
	// PMIAnnualRatePercent is the annual private mortgage insurance rate as a
	// percent of the loan amount
	PMIAnnualRatePercent = 0.75

	// PMIDownPaymentCutoffPercent is the down payment percentage at or above
	// which PMI no longer applies
	PMIDownPaymentCutoffPercent = 20.0
)

// Affordability thresholds, applied in priority order: warning, caution, good.
const (
	HousingRatioWarning = 40.0
	DTIRatioWarning     = 43.0

	HousingRatioCaution = 33.0
	DTIRatioCaution     = 36.0

	HousingRatioGood = 28.0
	DTIRatioGood     = 30.0
)

// Goal-seek constants
const (
	// GoalSeekMonthCap bounds the forward goal-seek simulation (100 years)
	GoalSeekMonthCap = 1200

	// FIExpenseMultiplier is the 4%-rule multiplier applied to annual
	// expenses to form the financial independence target
	FIExpenseMultiplier = 25.0
)

// Comparison defaults
const (
	// DefaultMilestoneAmount is the portfolio milestone target used when the
	// configuration does not provide one
	DefaultMilestoneAmount = 1000000.0

	// DefaultTimeframeYears is the comparison horizon used when the
	// configuration does not provide one
	DefaultTimeframeYears = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// JSON payloads (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
