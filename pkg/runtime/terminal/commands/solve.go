package commands

import (
	"fmt"

	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/muse-tools/streamcast/pkg/services/forecast"
	"github.com/spf13/cobra"
)

// NewSolveCmd groups the two reverse solvers: required growth rate and
// required stream volumes.
func NewSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Answer reverse questions about a revenue target",
	}

	cmd.AddCommand(newSolveRateCmd())
	cmd.AddCommand(newSolveStreamsCmd())

	return cmd
}

func newSolveRateCmd() *cobra.Command {
	var (
		current float64
		target  float64
		months  int
	)

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Required monthly growth to reach a target by a given month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rate, err := forecast.RequiredGrowthRate(current, target, months)
			if err != nil {
				return fmt.Errorf("cannot solve for growth rate: %w", err)
			}
			cmd.Printf("Required growth: %.2f%% per month to reach %.0f by month %d\n",
				rate, target, months)
			return nil
		},
	}

	cmd.Flags().Float64Var(&current, "current", 0, "Current monthly revenue")
	cmd.Flags().Float64Var(&target, "target", 0, "Target monthly revenue")
	cmd.Flags().IntVar(&months, "months", 12, "Month by which the target must be reached")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newSolveStreamsCmd() *cobra.Command {
	var (
		spotifyStreams float64
		youtubeStreams float64
		spotifyRate    float64
		youtubeRate    float64
		target         float64
	)

	cmd := &cobra.Command{
		Use:   "streams",
		Short: "Required stream volumes to earn a target at current rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := forecast.RequiredStreams(
				domain.StreamState{Spotify: spotifyStreams, YouTube: youtubeStreams},
				domain.RateModel{Spotify: spotifyRate, YouTube: youtubeRate},
				target,
			)
			if err != nil {
				return fmt.Errorf("cannot solve for streams: %w", err)
			}
			cmd.Printf("Weighted rate: %.3f / stream\n", req.WeightedRate)
			cmd.Printf("Required: %.0f total streams / month (Spotify %.0f, YouTube %.0f)\n",
				req.TotalStreams, req.SpotifyStreams, req.YouTubeStreams)
			return nil
		},
	}

	cmd.Flags().Float64Var(&spotifyStreams, "spotify-streams", 0, "Current Spotify monthly streams")
	cmd.Flags().Float64Var(&youtubeStreams, "youtube-streams", 0, "Current YouTube monthly streams")
	cmd.Flags().Float64Var(&spotifyRate, "spotify-rate", 0.30, "Spotify payout per stream")
	cmd.Flags().Float64Var(&youtubeRate, "youtube-rate", 0.20, "YouTube payout per stream")
	cmd.Flags().Float64Var(&target, "target", 0, "Target monthly revenue")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
