package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/muse-tools/streamcast/pkg/server"
	"github.com/muse-tools/streamcast/pkg/services/config"
	"github.com/muse-tools/streamcast/pkg/services/insights"
	"github.com/muse-tools/streamcast/pkg/services/metadata"
	"github.com/muse-tools/streamcast/pkg/services/simulation"
	"github.com/muse-tools/streamcast/pkg/services/spotify"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Streamcast",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.streamcastcfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the credentials profile file (default is $HOME/.streamcastcfg)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	creds, err := loadCredentials(ctx)
	if err != nil {
		return err
	}
	logger.Info().Msg("Spotify credentials loaded")

	// Degrade to demo data when Spotify is unreachable, same as the
	// simulator UI does.
	provider := metadata.WithFallback(spotify.NewClient(creds), metadata.NewDemoProvider())
	explorer := insights.NewExplorer(provider)
	simulator := simulation.NewController()

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Explorer:  explorer,
			Simulator: simulator,
			Logger:    logger,
		},
	})

	return webAPI.Start()
}

func loadCredentials(ctx context.Context) (spotify.Credentials, error) {
	if creds, ok := config.CredentialsFromEnv(); ok {
		return creds, nil
	}

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return spotify.Credentials{}, fmt.Errorf("failed to load credentials file: %w", err)
	}

	creds, err := registry.GetCredentials(ctx, "default")
	if err != nil {
		return spotify.Credentials{}, fmt.Errorf("failed to read default profile: %w", err)
	}
	return creds, nil
}
