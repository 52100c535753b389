package forecast

import (
	"errors"
	"math"

	"github.com/muse-tools/streamcast/pkg/models/domain"
)

// Solver failures are sentinel errors so callers can distinguish "input
// invalid" from "no solution exists" without parsing messages.
var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrZeroTarget      = errors.New("target is zero")
	ErrZeroBaseline    = errors.New("current revenue is zero")
	ErrSinglePeriod    = errors.New("duration is 1 month")
)

// RequiredGrowthRate solves for the constant compound monthly growth (in
// percent) that takes currentRevenue to target exactly at the final month.
// Month 1 carries the current revenue with zero elapsed growth periods, so
// the target is reached after months-1 compounding steps. This anchoring
// matches Project's month-1-is-current convention and must not be re-derived.
//
// Conditions are checked in order; the first match wins:
// non-positive duration, non-positive target, non-positive current revenue,
// target already met (rate 0), single-period window (unsolvable).
func RequiredGrowthRate(currentRevenue, target float64, months int) (float64, error) {
	if months <= 0 {
		return 0, ErrInvalidDuration
	}
	if target <= 0 {
		return 0, ErrZeroTarget
	}
	if currentRevenue <= 0 {
		return 0, ErrZeroBaseline
	}
	if currentRevenue >= target {
		return 0, nil
	}
	if months == 1 {
		return 0, ErrSinglePeriod
	}

	g := math.Pow(target/currentRevenue, 1.0/float64(months-1)) - 1.0
	return math.Max(0, g*100.0), nil
}

// RequiredStreams computes the stream volumes needed to earn target revenue
// per month at the current per-stream rates, holding the channel mix at its
// current proportion. With zero current volume the mix defaults to 50/50.
// Returns ErrZeroBaseline when the weighted rate is non-positive, i.e. no
// volume of streams can produce revenue.
func RequiredStreams(
	current domain.StreamState,
	rates domain.RateModel,
	target float64,
) (*domain.ReverseRequirement, error) {
	spotifyRatio, youtubeRatio := 0.5, 0.5
	if total := current.Total(); total > 0 {
		spotifyRatio = current.Spotify / total
		youtubeRatio = current.YouTube / total
	}

	weightedRate := spotifyRatio*rates.Spotify + youtubeRatio*rates.YouTube
	if weightedRate <= 0 {
		return nil, ErrZeroBaseline
	}

	totalStreams := target / weightedRate
	return &domain.ReverseRequirement{
		SpotifyRatio:   spotifyRatio,
		YouTubeRatio:   youtubeRatio,
		WeightedRate:   weightedRate,
		TotalStreams:   totalStreams,
		SpotifyStreams: totalStreams * spotifyRatio,
		YouTubeStreams: totalStreams * youtubeRatio,
	}, nil
}
