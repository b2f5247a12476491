package simulate

// Life event types. One-time events deduct from the portfolio once, ongoing
// events permanently raise the monthly expense baseline, and income events
// permanently raise annual income.
const (
	EventOneTime = "one-time"
	EventOngoing = "ongoing"
	EventIncome  = "income"
)

// IncomeAdjustment overrides the projected income for one exact year. It
// replaces the raised income rather than adding to it.
type IncomeAdjustment struct {
	Year   int     `json:"year" yaml:"year"`
	Income float64 `json:"income" yaml:"income"`
}

// LifeEvent is a discrete financial perturbation scheduled for a given year.
type LifeEvent struct {
	Year        int     `json:"year" yaml:"year"`
	Description string  `json:"description" yaml:"description"`
	Type        string  `json:"type" yaml:"type"`
	Amount      float64 `json:"amount" yaml:"amount"`
}
