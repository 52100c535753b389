package forecast

import (
	"testing"

	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateStreams(t *testing.T) {
	tests := []struct {
		name       string
		popularity int
		followers  int
		expected   domain.StreamState
	}{
		{
			name:       "mid popularity artist",
			popularity: 60,
			followers:  200000,
			// base ratio 0.14, yt ratio 0.64
			expected: domain.StreamState{Spotify: 28000, YouTube: 17920},
		},
		{
			name:       "zero followers hits the floor",
			popularity: 0,
			followers:  0,
			expected:   domain.StreamState{Spotify: 5000, YouTube: 2000},
		},
		{
			name:       "popularity clamped to 100",
			popularity: 250,
			followers:  100000,
			expected:   domain.StreamState{Spotify: 18000, YouTube: 14400},
		},
		{
			name:       "negative inputs clamped",
			popularity: -5,
			followers:  -10,
			expected:   domain.StreamState{Spotify: 5000, YouTube: 2000},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateStreams(tc.popularity, tc.followers)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestProject_CompoundLiteral(t *testing.T) {
	initial := domain.StreamState{Spotify: 100000, YouTube: 50000}
	rates := domain.RateModel{Spotify: 0.30, YouTube: 0.20}

	series := Project(initial, rates, domain.CompoundGrowth{MonthlyPct: 5}, 3)

	require.Len(t, series, 3)
	assert.Equal(t, domain.RevenuePoint{Month: 1, Revenue: 40000}, series[0])
	assert.Equal(t, 2, series[1].Month)
	assert.InDelta(t, 41750, series[1].Revenue, 1e-9)
	assert.Equal(t, 3, series[2].Month)
	assert.InDelta(t, 43537.5, series[2].Revenue, 1e-9)
}

func TestProject_MonthOneIsCurrentState(t *testing.T) {
	initial := domain.StreamState{Spotify: 12345, YouTube: 678}
	rates := domain.RateModel{Spotify: 0.25, YouTube: 0.15}
	want := rates.Revenue(initial)

	policies := map[string]domain.GrowthPolicy{
		"compound": domain.CompoundGrowth{MonthlyPct: 42},
		"linear":   domain.LinearGrowth{SpotifyAdd: 9999, YouTubeAdd: 1},
	}
	for name, policy := range policies {
		t.Run(name, func(t *testing.T) {
			series := Project(initial, rates, policy, 6)
			require.NotEmpty(t, series)
			assert.Equal(t, want, series[0].Revenue)
		})
	}
}

func TestProject_CompoundIsMonotonic(t *testing.T) {
	series := Project(
		domain.StreamState{Spotify: 80000, YouTube: 30000},
		domain.RateModel{Spotify: 0.30, YouTube: 0.20},
		domain.CompoundGrowth{MonthlyPct: 3},
		24,
	)

	require.Len(t, series, 24)
	for i := 1; i < len(series); i++ {
		assert.GreaterOrEqual(t, series[i].Revenue, series[i-1].Revenue,
			"revenue decreased at month %d", series[i].Month)
	}
}

func TestProject_LinearHasConstantStep(t *testing.T) {
	rates := domain.RateModel{Spotify: 0.30, YouTube: 0.20}
	policy := domain.LinearGrowth{SpotifyAdd: 1000, YouTubeAdd: 500}
	series := Project(domain.StreamState{Spotify: 50000, YouTube: 20000}, rates, policy, 12)

	wantStep := policy.SpotifyAdd*rates.Spotify + policy.YouTubeAdd*rates.YouTube
	require.Len(t, series, 12)
	for i := 1; i < len(series); i++ {
		assert.InDelta(t, wantStep, series[i].Revenue-series[i-1].Revenue, 1e-9)
	}
}

func TestProject_IsDeterministic(t *testing.T) {
	initial := domain.StreamState{Spotify: 77777, YouTube: 33333}
	rates := domain.RateModel{Spotify: 0.31, YouTube: 0.19}
	policy := domain.CompoundGrowth{MonthlyPct: 7.5}

	first := Project(initial, rates, policy, 18)
	second := Project(initial, rates, policy, 18)
	assert.Equal(t, first, second)
}

func TestProject_DurationBounds(t *testing.T) {
	initial := domain.StreamState{Spotify: 1000, YouTube: 1000}
	rates := domain.RateModel{Spotify: 0.1, YouTube: 0.1}
	policy := domain.CompoundGrowth{MonthlyPct: 1}

	assert.Empty(t, Project(initial, rates, policy, 0))
	assert.Empty(t, Project(initial, rates, policy, -3))
	assert.Len(t, Project(initial, rates, policy, 5000), maxProjectionMonths)
}

func TestReachMonth(t *testing.T) {
	series := domain.RevenueSeries{
		{Month: 1, Revenue: 100},
		{Month: 2, Revenue: 150},
		{Month: 3, Revenue: 225},
	}

	tests := []struct {
		name      string
		target    float64
		wantMonth int
		wantOK    bool
	}{
		{name: "already met at month 1", target: 100, wantMonth: 1, wantOK: true},
		{name: "exact tie counts as reached", target: 150, wantMonth: 2, wantOK: true},
		{name: "reached mid series", target: 160, wantMonth: 3, wantOK: true},
		{name: "never reached", target: 226, wantMonth: 0, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			month, ok := ReachMonth(series, tc.target)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantMonth, month)

			if ok {
				// first-reach property: no earlier point meets the target
				for _, p := range series {
					if p.Month < month {
						assert.Less(t, p.Revenue, tc.target)
					}
				}
			}
		})
	}

	t.Run("empty series", func(t *testing.T) {
		_, ok := ReachMonth(domain.RevenueSeries{}, 1)
		assert.False(t, ok)
	})
}

func TestRequiredGrowthRate(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		months  int
		want    float64
		wantErr error
	}{
		{name: "non-positive duration", current: 1000, target: 2000, months: 0, wantErr: ErrInvalidDuration},
		{name: "zero target", current: 1000, target: 0, months: 12, wantErr: ErrZeroTarget},
		{name: "zero current revenue", current: 0, target: 1000, months: 12, wantErr: ErrZeroBaseline},
		{name: "already at target", current: 1000, target: 1000, months: 12, want: 0},
		{name: "above target", current: 5000, target: 1000, months: 12, want: 0},
		{name: "single period has no room to grow", current: 500, target: 1000, months: 1, wantErr: ErrSinglePeriod},
		// 2^(1/11) - 1, eleven compounding periods across a 12 month window
		{name: "doubling over 12 months", current: 1000, target: 2000, months: 12, want: 6.5041096},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RequiredGrowthRate(tc.current, tc.target, tc.months)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-6)
		})
	}
}

func TestRequiredGrowthRate_InvertsProjection(t *testing.T) {
	const (
		current = 40000.0
		target  = 100000.0
		months  = 12
	)

	rate, err := RequiredGrowthRate(current, target, months)
	require.NoError(t, err)

	// Re-project with the solved rate: month 1 is the current revenue, the
	// final month must land on the target.
	revenue := current
	for i := 0; i < months-1; i++ {
		revenue *= 1.0 + rate/100.0
	}
	assert.InDelta(t, target, revenue, 1e-6)
}

func TestRequiredStreams(t *testing.T) {
	rates := domain.RateModel{Spotify: 0.30, YouTube: 0.20}

	t.Run("holds the current channel mix", func(t *testing.T) {
		current := domain.StreamState{Spotify: 75000, YouTube: 25000}
		req, err := RequiredStreams(current, rates, 100000)
		require.NoError(t, err)

		assert.InDelta(t, 0.75, req.SpotifyRatio, 1e-9)
		assert.InDelta(t, 0.25, req.YouTubeRatio, 1e-9)
		assert.InDelta(t, 0.275, req.WeightedRate, 1e-9)
		assert.InDelta(t, req.TotalStreams*0.75, req.SpotifyStreams, 1e-9)
		assert.InDelta(t, req.TotalStreams*0.25, req.YouTubeStreams, 1e-9)

		// inversion: the required volumes earn the target at the given rates
		got := req.SpotifyStreams*rates.Spotify + req.YouTubeStreams*rates.YouTube
		assert.InDelta(t, 100000, got, 1e-6)
	})

	t.Run("zero current volume splits 50/50", func(t *testing.T) {
		req, err := RequiredStreams(domain.StreamState{}, rates, 50000)
		require.NoError(t, err)

		assert.Equal(t, 0.5, req.SpotifyRatio)
		assert.Equal(t, 0.5, req.YouTubeRatio)
		assert.InDelta(t, 0.25, req.WeightedRate, 1e-9)
		assert.InDelta(t, 200000, req.TotalStreams, 1e-9)
	})

	t.Run("zero weighted rate is unsolvable", func(t *testing.T) {
		req, err := RequiredStreams(
			domain.StreamState{Spotify: 1000, YouTube: 1000},
			domain.RateModel{},
			50000,
		)
		assert.Nil(t, req)
		assert.ErrorIs(t, err, ErrZeroBaseline)
	})
}
