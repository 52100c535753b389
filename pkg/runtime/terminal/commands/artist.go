package commands

import (
	"context"
	"fmt"
	"os/user"
	"time"

	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/muse-tools/streamcast/pkg/runtime/terminal/export"
	"github.com/muse-tools/streamcast/pkg/services/insights"
	"github.com/muse-tools/streamcast/pkg/services/metadata"
	"github.com/muse-tools/streamcast/pkg/services/simulation"
	"github.com/spf13/cobra"
)

type ArtistCmd struct {
	market     string
	source     string
	configPath string
	simulate   bool

	registry metadata.Registry
	reporter *export.Reporter
}

func NewArtistCmd(registry metadata.Registry, reporter *export.Reporter) *cobra.Command {
	ac := &ArtistCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "artist <name>",
		Short: "Show artist metadata and the relative track table",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}

	defaultConfig := ""
	if usr, err := user.Current(); err == nil {
		defaultConfig = usr.HomeDir + "/.streamcastcfg"
	}

	cmd.Flags().StringVar(&ac.market, "market", "JP", "Market to search in (e.g. JP, US, GB, KR)")
	cmd.Flags().StringVar(&ac.source, "source", "spotify", "Metadata source (spotify or demo)")
	cmd.Flags().StringVar(&ac.configPath, "config", defaultConfig, "Path to the credentials profile file")
	cmd.Flags().BoolVar(&ac.simulate, "simulate", false, "Run a revenue simulation seeded from the artist")

	return cmd
}

func (ac *ArtistCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	provider, err := ac.registry.Create(ctx, ac.source, ac.configPath)
	if err != nil {
		return fmt.Errorf("failed to create a provider for source %q: %w", ac.source, err)
	}

	profile, err := insights.NewExplorer(provider).Lookup(ctx, args[0], ac.market)
	if err != nil {
		return err
	}

	if err := ac.reporter.HandleProfile(profile); err != nil {
		return err
	}

	if !ac.simulate {
		return nil
	}

	report := simulation.NewController().
		RunForArtist(ctx, profile.Artist, domain.SimulationInput{})
	return ac.reporter.Handle(report)
}
