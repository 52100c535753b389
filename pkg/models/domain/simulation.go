package domain

// SimulationInput carries every knob of a single simulation run. Zero-valued
// optional fields are filled in from Defaults by the simulation controller.
type SimulationInput struct {
	Streams StreamState
	Rates   RateModel

	GrowthPct  float64 // compound monthly growth, percent
	LinearAdds LinearGrowth

	Months       int
	TargetIncome float64
}

// RevenueSummary is the current (month-1) revenue picture.
type RevenueSummary struct {
	SpotifyMonthly float64
	YouTubeMonthly float64
	MonthlyTotal   float64
	YearlyTotal    float64
}

// GrowthAdvice is the required-growth-rate answer. When Err is non-nil the
// rate could not be solved for and Rate is meaningless.
type GrowthAdvice struct {
	Rate float64
	Err  error
}

// SimulationReport is the full outcome of one simulation run.
type SimulationReport struct {
	Artist *Artist // nil when the run was seeded manually

	Input   SimulationInput
	Summary RevenueSummary

	Compound RevenueSeries
	Linear   RevenueSeries

	// ReachMonth is the first month the compound series meets the target.
	// ReachMonth == 0 means the target is not reached within the horizon.
	ReachMonth int

	RequiredGrowth GrowthAdvice
	Requirement    *ReverseRequirement // nil when no stream volume can reach the target
}
