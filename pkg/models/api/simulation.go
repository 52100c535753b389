package api

// SimulationRequest carries the raw simulation knobs. Zero-valued rates,
// months, and target fall back to server-side defaults.
type SimulationRequest struct {
	SpotifyStreams float64 `json:"spotify_streams"`
	YouTubeStreams float64 `json:"youtube_streams"`

	SpotifyRate float64 `json:"spotify_rate"`
	YouTubeRate float64 `json:"youtube_rate"`

	GrowthPct        float64 `json:"growth_pct"`
	LinearAddSpotify float64 `json:"linear_add_spotify"`
	LinearAddYouTube float64 `json:"linear_add_youtube"`

	Months       int     `json:"months"`
	TargetIncome float64 `json:"target_income"`
}

type RevenuePoint struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

type RevenueSummary struct {
	SpotifyMonthly float64 `json:"spotify_monthly"`
	YouTubeMonthly float64 `json:"youtube_monthly"`
	MonthlyTotal   float64 `json:"monthly_total"`
	YearlyTotal    float64 `json:"yearly_total"`
}

type ReverseRequirement struct {
	SpotifyRatio   float64 `json:"spotify_ratio"`
	YouTubeRatio   float64 `json:"youtube_ratio"`
	WeightedRate   float64 `json:"weighted_rate"`
	TotalStreams   float64 `json:"required_total_streams"`
	SpotifyStreams float64 `json:"required_spotify_streams"`
	YouTubeStreams float64 `json:"required_youtube_streams"`
}

type SimulationResponse struct {
	ID      string         `json:"id"`
	Summary RevenueSummary `json:"summary"`

	Compound []RevenuePoint `json:"compound"`
	Linear   []RevenuePoint `json:"linear"`

	// ReachMonth is null when the compound series never meets the target;
	// FinalRevenue then gives the last projected value for context.
	ReachMonth   *int    `json:"reach_month"`
	FinalRevenue float64 `json:"final_revenue"`

	// RequiredGrowthPct is null when the rate cannot be solved for;
	// RequiredGrowthNote carries the reason.
	RequiredGrowthPct  *float64 `json:"required_growth_pct"`
	RequiredGrowthNote string   `json:"required_growth_note,omitempty"`

	// Requirement is null when no stream volume can produce revenue.
	Requirement *ReverseRequirement `json:"requirement"`
}
