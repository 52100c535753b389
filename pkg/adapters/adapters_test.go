package adapters

import (
	"bytes"
	"testing"

	"github.com/muse-tools/streamcast/pkg/models/api"
	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/muse-tools/streamcast/pkg/services/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSeriesCSV(t *testing.T) {
	series := domain.RevenueSeries{
		{Month: 1, Revenue: 40000},
		{Month: 2, Revenue: 41750},
		{Month: 3, Revenue: 43537.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSeriesCSV(&buf, series))

	assert.Equal(t, "month,revenue\n1,40000\n2,41750\n3,43537.5\n", buf.String())
}

func TestWriteSeriesCSV_EmptySeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeriesCSV(&buf, nil))
	assert.Equal(t, "month,revenue\n", buf.String())
}

func TestReportToAPI(t *testing.T) {
	report := &domain.SimulationReport{
		Summary: domain.RevenueSummary{MonthlyTotal: 40000, YearlyTotal: 480000},
		Compound: domain.RevenueSeries{
			{Month: 1, Revenue: 40000},
			{Month: 2, Revenue: 41750},
		},
		Linear:         domain.RevenueSeries{{Month: 1, Revenue: 40000}},
		ReachMonth:     2,
		RequiredGrowth: domain.GrowthAdvice{Rate: 4.4},
		Requirement:    &domain.ReverseRequirement{WeightedRate: 0.25, TotalStreams: 160000},
	}

	resp := ReportToAPI("run-1", report)

	assert.Equal(t, "run-1", resp.ID)
	require.NotNil(t, resp.ReachMonth)
	assert.Equal(t, 2, *resp.ReachMonth)
	assert.Equal(t, 41750.0, resp.FinalRevenue)
	require.NotNil(t, resp.RequiredGrowthPct)
	assert.Equal(t, 4.4, *resp.RequiredGrowthPct)
	assert.Empty(t, resp.RequiredGrowthNote)
	require.NotNil(t, resp.Requirement)
	assert.Equal(t, 160000.0, resp.Requirement.TotalStreams)
	assert.Len(t, resp.Compound, 2)
	assert.Len(t, resp.Linear, 1)
}

func TestReportToAPI_NegativeOutcomes(t *testing.T) {
	report := &domain.SimulationReport{
		Compound:       domain.RevenueSeries{{Month: 1, Revenue: 10}},
		RequiredGrowth: domain.GrowthAdvice{Err: forecast.ErrZeroBaseline},
	}

	resp := ReportToAPI("run-2", report)

	assert.Nil(t, resp.ReachMonth)
	assert.Nil(t, resp.RequiredGrowthPct)
	assert.Equal(t, "current revenue is zero", resp.RequiredGrowthNote)
	assert.Nil(t, resp.Requirement)
}

func TestSimulationInputFromAPI(t *testing.T) {
	input := SimulationInputFromAPI(api.SimulationRequest{
		SpotifyStreams:   100000,
		YouTubeStreams:   50000,
		SpotifyRate:      0.30,
		YouTubeRate:      0.20,
		GrowthPct:        5,
		LinearAddSpotify: 1000,
		LinearAddYouTube: 500,
		Months:           12,
		TargetIncome:     100000,
	})

	assert.Equal(t, domain.SimulationInput{
		Streams:      domain.StreamState{Spotify: 100000, YouTube: 50000},
		Rates:        domain.RateModel{Spotify: 0.30, YouTube: 0.20},
		GrowthPct:    5,
		LinearAdds:   domain.LinearGrowth{SpotifyAdd: 1000, YouTubeAdd: 500},
		Months:       12,
		TargetIncome: 100000,
	}, input)
}
