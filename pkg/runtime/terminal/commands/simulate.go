package commands

import (
	"fmt"
	"os"

	"github.com/muse-tools/streamcast/pkg/adapters"
	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/muse-tools/streamcast/pkg/runtime/terminal/export"
	"github.com/muse-tools/streamcast/pkg/services/config"
	"github.com/muse-tools/streamcast/pkg/services/simulation"
	"github.com/spf13/cobra"
)

type SimulateCmd struct {
	spotifyStreams float64
	youtubeStreams float64
	spotifyRate    float64
	youtubeRate    float64
	growthPct      float64
	linearSpotify  float64
	linearYouTube  float64
	months         int
	target         float64

	profilePath string
	csvPath     string

	reporter *export.Reporter
}

func NewSimulateCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SimulateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project streaming revenue under compound and linear growth",
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.spotifyStreams, "spotify-streams", 0, "Current Spotify monthly streams")
	cmd.Flags().Float64Var(&sc.youtubeStreams, "youtube-streams", 0, "Current YouTube monthly streams")
	cmd.Flags().Float64Var(&sc.spotifyRate, "spotify-rate", 0, "Spotify payout per stream")
	cmd.Flags().Float64Var(&sc.youtubeRate, "youtube-rate", 0, "YouTube payout per stream")
	cmd.Flags().Float64Var(&sc.growthPct, "growth", 0, "Compound monthly growth in percent")
	cmd.Flags().Float64Var(&sc.linearSpotify, "linear-add-spotify", 0, "Linear Spotify streams added per month")
	cmd.Flags().Float64Var(&sc.linearYouTube, "linear-add-youtube", 0, "Linear YouTube streams added per month")
	cmd.Flags().IntVar(&sc.months, "months", 0, "Projection duration in months")
	cmd.Flags().Float64Var(&sc.target, "target", 0, "Target monthly revenue")
	cmd.Flags().StringVar(&sc.profilePath, "profile", "", "Path to a simulation defaults profile")
	cmd.Flags().StringVar(&sc.csvPath, "csv", "", "Write the compound forecast to a CSV file")

	_ = cmd.MarkFlagRequired("spotify-streams")

	return cmd
}

func (sc *SimulateCmd) run(cmd *cobra.Command, _ []string) error {
	ctrl := simulation.NewController()
	if sc.profilePath != "" {
		defaults, err := config.LoadDefaults(sc.profilePath)
		if err != nil {
			return fmt.Errorf("failed to load defaults profile: %w", err)
		}
		ctrl = simulation.NewControllerWithDefaults(defaults)
	}

	report := ctrl.Run(cmd.Context(), domain.SimulationInput{
		Streams:   domain.StreamState{Spotify: sc.spotifyStreams, YouTube: sc.youtubeStreams},
		Rates:     domain.RateModel{Spotify: sc.spotifyRate, YouTube: sc.youtubeRate},
		GrowthPct: sc.growthPct,
		LinearAdds: domain.LinearGrowth{
			SpotifyAdd: sc.linearSpotify,
			YouTubeAdd: sc.linearYouTube,
		},
		Months:       sc.months,
		TargetIncome: sc.target,
	})

	if sc.csvPath != "" {
		if err := writeCSVFile(sc.csvPath, report.Compound); err != nil {
			return err
		}
	}

	return sc.reporter.Handle(report)
}

func writeCSVFile(path string, series domain.RevenueSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	if err := adapters.WriteSeriesCSV(f, series); err != nil {
		return err
	}
	return f.Close()
}
