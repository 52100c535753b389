package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/muse-tools/streamcast/pkg/runtime/terminal"
	"github.com/muse-tools/streamcast/pkg/services/config"
	"github.com/muse-tools/streamcast/pkg/services/metadata"
	"github.com/muse-tools/streamcast/pkg/services/spotify"
)

func main() {
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Registry: metadata.NewRegistry(map[string]metadata.ProviderFactory{
			"spotify": spotifyFactory,
			"demo":    metadata.DemoFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func spotifyFactory(ctx context.Context, profilePath string) (metadata.Provider, error) {
	if creds, ok := config.CredentialsFromEnv(); ok {
		return spotify.NewClient(creds), nil
	}

	registry, err := config.NewRegistry(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials file: %w", err)
	}
	creds, err := registry.GetCredentials(ctx, "default")
	if err != nil {
		return nil, err
	}
	return spotify.NewClient(creds), nil
}
