package forecast

import (
	"math"

	"github.com/muse-tools/streamcast/pkg/models/domain"
)

const (
	// spotifyFloor keeps the baseline non-degenerate for unknown or
	// zero-follower artists.
	spotifyFloor = 5000
)

// EstimateStreams derives baseline per-channel monthly stream counts from
// artist popularity and follower count. Inputs are clamped, never rejected:
// popularity to [0,100], followers to >= 0.
//
// The mapping is a heuristic: a popularity-scaled fraction of followers
// streams on Spotify each month (8%..18%), and YouTube volume follows
// Spotify at a popularity-scaled ratio (40%..80%).
func EstimateStreams(popularity, followers int) domain.StreamState {
	if followers < 0 {
		followers = 0
	}
	if popularity < 0 {
		popularity = 0
	}
	if popularity > 100 {
		popularity = 100
	}

	baseRatio := 0.08 + (float64(popularity)/100.0)*0.10
	spotify := math.Max(spotifyFloor, math.Round(float64(followers)*baseRatio))

	ytRatio := 0.40 + (float64(popularity)/100.0)*0.40
	youtube := math.Max(0, math.Round(spotify*ytRatio))

	return domain.StreamState{Spotify: spotify, YouTube: youtube}
}
