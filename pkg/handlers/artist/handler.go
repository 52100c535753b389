package artist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/muse-tools/streamcast/pkg/adapters"
	"github.com/muse-tools/streamcast/pkg/models/api"
	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/muse-tools/streamcast/pkg/services/forecast"
	"github.com/muse-tools/streamcast/pkg/services/insights"
	"github.com/rs/zerolog"
)

const (
	defaultMarket      = "JP"
	defaultSearchLimit = 5
)

// Simulator runs complete revenue simulations.
type Simulator interface {
	Run(ctx context.Context, input domain.SimulationInput) *domain.SimulationReport
}

type Handler struct {
	explorer insights.Explorer
	sim      Simulator
}

func NewHandler(explorer insights.Explorer, sim Simulator) *Handler {
	return &Handler{
		explorer: explorer,
		sim:      sim,
	}
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing 'q' query parameter", http.StatusBadRequest)
		return
	}
	market := marketParam(r)

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid 'limit' query parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	artists, err := h.explorer.Search(ctx, query, market, limit)
	if err != nil {
		logger.Error().Err(err).Str("query", query).Msg("artist search failed")
		http.Error(w, "metadata provider unavailable", http.StatusBadGateway)
		return
	}

	response := make([]api.Artist, 0, len(artists))
	for _, a := range artists {
		response = append(response, adapters.ArtistToAPI(a))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetArtistProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	profile, err := h.explorer.Profile(ctx, id, marketParam(r))
	if err != nil {
		if errors.Is(err, insights.ErrArtistNotFound) {
			http.Error(w, "artist not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("artist_id", id).Msg("failed to load artist profile")
		http.Error(w, "metadata provider unavailable", http.StatusBadGateway)
		return
	}

	writeJSON(w, logger, adapters.ProfileToAPI(*profile))
}

func (h *Handler) EstimateStreams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	profile, err := h.explorer.Profile(ctx, id, marketParam(r))
	if err != nil {
		if errors.Is(err, insights.ErrArtistNotFound) {
			http.Error(w, "artist not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("artist_id", id).Msg("failed to load artist for estimate")
		http.Error(w, "metadata provider unavailable", http.StatusBadGateway)
		return
	}

	estimate := forecast.EstimateStreams(profile.Artist.Popularity, profile.Artist.Followers)
	writeJSON(w, logger, adapters.EstimateToAPI(estimate))
}

func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	input, ok := decodeSimulationRequest(w, r)
	if !ok {
		return
	}

	report := h.sim.Run(ctx, input)
	writeJSON(w, logger, adapters.ReportToAPI(uuid.NewString(), report))
}

func (h *Handler) ExportForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	input, ok := decodeSimulationRequest(w, r)
	if !ok {
		return
	}

	report := h.sim.Run(ctx, input)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="revenue_forecast.csv"`)
	if err := adapters.WriteSeriesCSV(w, report.Compound); err != nil {
		logger.Error().Err(err).Msg("failed to write forecast CSV")
	}
}

func decodeSimulationRequest(w http.ResponseWriter, r *http.Request) (domain.SimulationInput, bool) {
	var req api.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid simulation request body", http.StatusBadRequest)
		return domain.SimulationInput{}, false
	}

	if req.SpotifyStreams < 0 || req.YouTubeStreams < 0 ||
		req.SpotifyRate < 0 || req.YouTubeRate < 0 ||
		req.LinearAddSpotify < 0 || req.LinearAddYouTube < 0 {
		http.Error(w, "stream counts, rates, and linear adds must be non-negative", http.StatusBadRequest)
		return domain.SimulationInput{}, false
	}

	return adapters.SimulationInputFromAPI(req), true
}

func marketParam(r *http.Request) string {
	if market := r.URL.Query().Get("market"); market != "" {
		return market
	}
	return defaultMarket
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
