package adapters

import (
	"github.com/muse-tools/streamcast/pkg/models/api"
	"github.com/muse-tools/streamcast/pkg/models/domain"
)

func SimulationInputFromAPI(req api.SimulationRequest) domain.SimulationInput {
	return domain.SimulationInput{
		Streams: domain.StreamState{
			Spotify: req.SpotifyStreams,
			YouTube: req.YouTubeStreams,
		},
		Rates: domain.RateModel{
			Spotify: req.SpotifyRate,
			YouTube: req.YouTubeRate,
		},
		GrowthPct: req.GrowthPct,
		LinearAdds: domain.LinearGrowth{
			SpotifyAdd: req.LinearAddSpotify,
			YouTubeAdd: req.LinearAddYouTube,
		},
		Months:       req.Months,
		TargetIncome: req.TargetIncome,
	}
}

func SeriesToAPI(series domain.RevenueSeries) []api.RevenuePoint {
	points := make([]api.RevenuePoint, 0, len(series))
	for _, p := range series {
		points = append(points, api.RevenuePoint{Month: p.Month, Revenue: p.Revenue})
	}
	return points
}

func ReportToAPI(id string, report *domain.SimulationReport) api.SimulationResponse {
	resp := api.SimulationResponse{
		ID: id,
		Summary: api.RevenueSummary{
			SpotifyMonthly: report.Summary.SpotifyMonthly,
			YouTubeMonthly: report.Summary.YouTubeMonthly,
			MonthlyTotal:   report.Summary.MonthlyTotal,
			YearlyTotal:    report.Summary.YearlyTotal,
		},
		Compound: SeriesToAPI(report.Compound),
		Linear:   SeriesToAPI(report.Linear),
	}

	if report.ReachMonth > 0 {
		month := report.ReachMonth
		resp.ReachMonth = &month
	}
	if last, ok := report.Compound.Last(); ok {
		resp.FinalRevenue = last.Revenue
	}

	if report.RequiredGrowth.Err != nil {
		resp.RequiredGrowthNote = report.RequiredGrowth.Err.Error()
	} else {
		rate := report.RequiredGrowth.Rate
		resp.RequiredGrowthPct = &rate
	}

	if report.Requirement != nil {
		resp.Requirement = &api.ReverseRequirement{
			SpotifyRatio:   report.Requirement.SpotifyRatio,
			YouTubeRatio:   report.Requirement.YouTubeRatio,
			WeightedRate:   report.Requirement.WeightedRate,
			TotalStreams:   report.Requirement.TotalStreams,
			SpotifyStreams: report.Requirement.SpotifyStreams,
			YouTubeStreams: report.Requirement.YouTubeStreams,
		}
	}

	return resp
}
