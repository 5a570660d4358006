package configs

// Optimizer tunes the portfolio optimizer and budget allocator. The
// defaults reproduce the thresholds the control loop was tuned with:
// campaigns under 0.8 ROAS are flagged for pause, above 2.5 for a budget
// increase, and every active campaign keeps at least 5% of the customer's
// total daily budget.
type Optimizer struct {
	// PauseBelow is the ROAS threshold under which a pause is recommended.
	PauseBelow float64 `env:"PAUSE_BELOW" envDefault:"0.8"`
	// ScaleAbove is the ROAS threshold over which a budget increase is
	// recommended.
	ScaleAbove float64 `env:"SCALE_ABOVE" envDefault:"2.5"`
	// IncreasePct is the budget increase a scale recommendation proposes,
	// in percent.
	IncreasePct int `env:"INCREASE_PCT" envDefault:"20"`
	// RevenueMultiple estimates revenue per conversion as a multiple of
	// the strategy's CPA target.
	RevenueMultiple float64 `env:"REVENUE_MULTIPLE" envDefault:"2.0"`
	// BudgetFloorPct is the fraction of total daily budget guaranteed to
	// every active campaign.
	BudgetFloorPct float64 `env:"BUDGET_FLOOR_PCT" envDefault:"0.05"`
}
