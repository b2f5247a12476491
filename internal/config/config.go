// Package config defines the application configuration for homecast and the
// functions for loading and validating it.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/homecast/homecast/internal/scenario"
	"github.com/homecast/homecast/internal/simulate"
	"github.com/homecast/homecast/pkg/constants"
	"github.com/spf13/viper"
)

// Comparison modes.
const (
	ModeBuyVsRent = "buy-vs-rent"
	ModeBuyVsBuy  = "buy-vs-buy"
)

// Configuration holds all configuration for homecast.
type Configuration struct {
	Scenarios   []ScenarioConfig     `yaml:"scenarios"`
	Assumptions simulate.Assumptions `yaml:"assumptions"`
	Comparison  ComparisonConfig     `yaml:"comparison,omitempty"`
	Logging     LoggingConfig        `yaml:"logging,omitempty"`
	Output      OutputConfig         `yaml:"output,omitempty"`
}

// ScenarioConfig is one named scenario: a purchase, and optionally the rent
// terms used when it anchors a buy-vs-rent comparison.
type ScenarioConfig struct {
	Name       string                       `yaml:"name"`
	Active     bool                         `yaml:"active"`
	Property   scenario.PropertyTerms       `yaml:"property"`
	Financials scenario.HouseholdFinancials `yaml:"financials"`
	Rent       *simulate.RentTerms          `yaml:"rent,omitempty"`
}

// ComparisonConfig selects what gets compared and over what horizon.
type ComparisonConfig struct {
	Mode            string  `yaml:"mode,omitempty"`            // buy-vs-rent, buy-vs-buy
	TimeframeYears  int     `yaml:"timeframeYears,omitempty"`  // defaults to the simulation years
	MilestoneAmount float64 `yaml:"milestoneAmount,omitempty"` // defaults to $1,000,000
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads YAML configuration from an in-memory
// source, e.g. an HTTP upload.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Comparison.Mode == "" {
		conf.Comparison.Mode = ModeBuyVsRent
	}
	if conf.Comparison.TimeframeYears <= 0 {
		conf.Comparison.TimeframeYears = conf.Assumptions.Years
	}
	if conf.Comparison.MilestoneAmount <= 0 {
		conf.Comparison.MilestoneAmount = constants.DefaultMilestoneAmount
	}
}

// ActiveScenarios returns the scenarios marked active, in declaration order.
func (conf *Configuration) ActiveScenarios() []ScenarioConfig {
	var active []ScenarioConfig
	for _, sc := range conf.Scenarios {
		if sc.Active {
			active = append(active, sc)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and
// returns human-readable problems. Scenario-level rules reuse the record
// validation the store applies.
func (conf *Configuration) ValidateConfiguration() []string {
	var problems []string

	if conf.Assumptions.Years <= 0 {
		problems = append(problems, "assumptions.years must be positive")
	}

	active := conf.ActiveScenarios()
	if len(active) == 0 {
		problems = append(problems, "no active scenarios configured")
	}

	switch conf.Comparison.Mode {
	case ModeBuyVsRent:
		if len(active) > 0 && active[0].Rent == nil {
			problems = append(problems, fmt.Sprintf("scenario '%s' needs a rent block for %s mode", active[0].Name, ModeBuyVsRent))
		}
	case ModeBuyVsBuy:
		if len(active) < 2 {
			problems = append(problems, fmt.Sprintf("%s mode needs two active scenarios, found %d", ModeBuyVsBuy, len(active)))
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown comparison mode '%s'", conf.Comparison.Mode))
	}

	for _, sc := range conf.Scenarios {
		record := scenario.Record{
			Name:       sc.Name,
			Property:   sc.Property,
			Financials: sc.Financials,
		}
		for _, problem := range scenario.Validate(record) {
			problems = append(problems, fmt.Sprintf("scenario '%s': %s", sc.Name, problem))
		}
		if sc.Rent != nil && sc.Rent.MonthlyRent <= 0 {
			problems = append(problems, fmt.Sprintf("scenario '%s': monthly rent must be positive", sc.Name))
		}
	}

	for _, event := range conf.Assumptions.LifeEvents {
		switch event.Type {
		case simulate.EventOneTime, simulate.EventOngoing, simulate.EventIncome:
		default:
			problems = append(problems, fmt.Sprintf("life event '%s': unknown type '%s'", event.Description, event.Type))
		}
		if event.Year < 1 || event.Year > conf.Assumptions.Years {
			problems = append(problems, fmt.Sprintf("life event '%s': year %d outside the %d-year horizon",
				event.Description, event.Year, conf.Assumptions.Years))
		}
	}

	for _, adjustment := range conf.Assumptions.IncomeAdjustments {
		if adjustment.Year < 1 || adjustment.Year > conf.Assumptions.Years {
			problems = append(problems, fmt.Sprintf("income adjustment for year %d is outside the %d-year horizon",
				adjustment.Year, conf.Assumptions.Years))
		}
	}

	return problems
}

// ValidateOutputFormat checks an output format selection.
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format %s, must be one of: %s, %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}
