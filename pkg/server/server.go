package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/muse-tools/streamcast/pkg/handlers/artist"
	streamcastmiddleware "github.com/muse-tools/streamcast/pkg/server/middleware"
	"github.com/muse-tools/streamcast/pkg/services/insights"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Explorer  insights.Explorer
	Simulator handlers.Simulator
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the API router with logging and panic recovery.
func ConfigureRouter(config Config) *chi.Mux {
	artistHandler := handlers.NewHandler(
		config.Dependencies.Explorer,
		config.Dependencies.Simulator,
	)

	router := chi.NewRouter()

	router.Use(streamcastmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/artists", artistHandler.SearchArtists)
		r.Get("/artists/{id}", artistHandler.GetArtistProfile)
		r.Get("/artists/{id}/estimate", artistHandler.EstimateStreams)
		r.Post("/simulations", artistHandler.Simulate)
		r.Post("/simulations/export", artistHandler.ExportForecast)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
