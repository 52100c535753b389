package domain

// StreamState holds monthly play counts for the two revenue channels.
// Both fields are non-negative.
type StreamState struct {
	Spotify float64
	YouTube float64
}

// Total returns the combined monthly stream volume across both channels.
func (s StreamState) Total() float64 {
	return s.Spotify + s.YouTube
}

// RateModel holds the payout per stream for each channel, in the
// configured currency unit. Both fields are non-negative.
type RateModel struct {
	Spotify float64 // e.g. 0.30 JPY / stream
	YouTube float64 // e.g. 0.20 JPY / stream
}

// Revenue returns the monthly revenue produced by the given stream state
// under this rate model.
func (r RateModel) Revenue(s StreamState) float64 {
	return s.Spotify*r.Spotify + s.YouTube*r.YouTube
}

// GrowthPolicy describes how channel stream counts evolve month over month.
// Exactly one variant is active per projection: CompoundGrowth or LinearGrowth.
type GrowthPolicy interface {
	// Step advances the stream state by one month.
	Step(s StreamState) StreamState
}

// CompoundGrowth multiplies both channels by (1 + MonthlyPct/100) each month.
type CompoundGrowth struct {
	MonthlyPct float64
}

func (g CompoundGrowth) Step(s StreamState) StreamState {
	factor := 1.0 + g.MonthlyPct/100.0
	return StreamState{
		Spotify: s.Spotify * factor,
		YouTube: s.YouTube * factor,
	}
}

// LinearGrowth adds a fixed stream count to each channel every month.
type LinearGrowth struct {
	SpotifyAdd float64
	YouTubeAdd float64
}

func (g LinearGrowth) Step(s StreamState) StreamState {
	return StreamState{
		Spotify: s.Spotify + g.SpotifyAdd,
		YouTube: s.YouTube + g.YouTubeAdd,
	}
}

// RevenuePoint is one entry of a projected series. Month starts at 1,
// where month 1 is the current (not yet grown) state.
type RevenuePoint struct {
	Month   int
	Revenue float64
}

// RevenueSeries is an ordered revenue projection, one point per month,
// months increasing from 1.
type RevenueSeries []RevenuePoint

// Last returns the final point of the series. ok is false for an empty series.
func (s RevenueSeries) Last() (RevenuePoint, bool) {
	if len(s) == 0 {
		return RevenuePoint{}, false
	}
	return s[len(s)-1], true
}

// ReverseRequirement describes the stream volumes needed to hit a target
// monthly revenue while keeping the current channel mix fixed.
type ReverseRequirement struct {
	SpotifyRatio   float64 // share of current total streams, [0,1]
	YouTubeRatio   float64 // 1 - SpotifyRatio
	WeightedRate   float64 // revenue per stream across the current mix
	TotalStreams   float64
	SpotifyStreams float64
	YouTubeStreams float64
}
