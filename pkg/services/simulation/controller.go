package simulation

import (
	"context"
	"math"

	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/muse-tools/streamcast/pkg/services/forecast"
	"github.com/rs/zerolog"
)

// Defaults fill in simulation knobs the caller left at their zero value.
type Defaults struct {
	SpotifyRate  float64
	YouTubeRate  float64
	Months       int
	TargetIncome float64
}

// StandardDefaults match the simulator's built-in suggestions: JPY payout
// rates, a one year horizon, and a 100k monthly target.
func StandardDefaults() Defaults {
	return Defaults{
		SpotifyRate:  0.30,
		YouTubeRate:  0.20,
		Months:       12,
		TargetIncome: 100000,
	}
}

// Controller runs complete simulations: current revenue summary, forward
// projections under both growth policies, reach analysis, and the two
// reverse solvers.
type Controller struct {
	defaults Defaults
}

// NewController creates a Controller with the standard defaults.
func NewController() *Controller {
	return &Controller{defaults: StandardDefaults()}
}

// NewControllerWithDefaults creates a Controller with caller-supplied defaults,
// e.g. loaded from a profile file.
func NewControllerWithDefaults(defaults Defaults) *Controller {
	return &Controller{defaults: defaults}
}

// Run executes one simulation. Zero-valued rates, months, and target are
// replaced by the controller defaults; everything else is taken as given.
func (c *Controller) Run(ctx context.Context, input domain.SimulationInput) *domain.SimulationReport {
	input = c.applyDefaults(input)

	summary := summarize(input)
	compound := forecast.Project(
		input.Streams, input.Rates,
		domain.CompoundGrowth{MonthlyPct: input.GrowthPct},
		input.Months,
	)
	linear := forecast.Project(input.Streams, input.Rates, input.LinearAdds, input.Months)

	report := &domain.SimulationReport{
		Input:    input,
		Summary:  summary,
		Compound: compound,
		Linear:   linear,
	}

	if month, ok := forecast.ReachMonth(compound, input.TargetIncome); ok {
		report.ReachMonth = month
	}

	rate, err := forecast.RequiredGrowthRate(summary.MonthlyTotal, input.TargetIncome, input.Months)
	report.RequiredGrowth = domain.GrowthAdvice{Rate: rate, Err: err}

	req, err := forecast.RequiredStreams(input.Streams, input.Rates, input.TargetIncome)
	if err == nil {
		report.Requirement = req
	}

	zerolog.Ctx(ctx).Debug().
		Float64("monthly_total", summary.MonthlyTotal).
		Int("months", input.Months).
		Int("reach_month", report.ReachMonth).
		Msg("simulation complete")

	return report
}

// RunForArtist seeds a simulation from artist metadata: stream counts from
// the estimator when none are given, and a default growth rate derived from
// popularity (popularity/10, clamped to [0,50]).
func (c *Controller) RunForArtist(
	ctx context.Context,
	artist domain.Artist,
	input domain.SimulationInput,
) *domain.SimulationReport {
	if input.Streams.Total() == 0 {
		input.Streams = forecast.EstimateStreams(artist.Popularity, artist.Followers)
	}
	if input.GrowthPct == 0 {
		input.GrowthPct = defaultGrowthPct(artist.Popularity)
	}

	report := c.Run(ctx, input)
	report.Artist = &artist
	return report
}

func (c *Controller) applyDefaults(input domain.SimulationInput) domain.SimulationInput {
	if input.Rates.Spotify == 0 && input.Rates.YouTube == 0 {
		input.Rates = domain.RateModel{
			Spotify: c.defaults.SpotifyRate,
			YouTube: c.defaults.YouTubeRate,
		}
	}
	if input.Months <= 0 {
		input.Months = c.defaults.Months
	}
	if input.TargetIncome <= 0 {
		input.TargetIncome = c.defaults.TargetIncome
	}
	return input
}

func summarize(input domain.SimulationInput) domain.RevenueSummary {
	spotify := input.Streams.Spotify * input.Rates.Spotify
	youtube := input.Streams.YouTube * input.Rates.YouTube
	return domain.RevenueSummary{
		SpotifyMonthly: spotify,
		YouTubeMonthly: youtube,
		MonthlyTotal:   spotify + youtube,
		YearlyTotal:    (spotify + youtube) * 12,
	}
}

func defaultGrowthPct(popularity int) float64 {
	pct := math.Round(float64(popularity) / 10.0)
	return math.Min(50, math.Max(0, pct))
}
