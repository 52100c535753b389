package metadata

import (
	"context"

	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/rs/zerolog"
)

// fallbackProvider delegates to primary and switches to secondary when the
// primary fails, logging the upstream error. This mirrors the UI behavior of
// degrading to demo data when the Spotify API is unavailable.
type fallbackProvider struct {
	primary   Provider
	secondary Provider
}

// WithFallback wraps primary so that any provider error is retried against
// secondary instead of surfacing to the caller.
func WithFallback(primary, secondary Provider) Provider {
	return &fallbackProvider{primary: primary, secondary: secondary}
}

func (f *fallbackProvider) SearchArtists(
	ctx context.Context,
	query, market string,
	limit int,
) ([]domain.Artist, error) {
	artists, err := f.primary.SearchArtists(ctx, query, market, limit)
	if err != nil {
		f.warn(ctx, err)
		return f.secondary.SearchArtists(ctx, query, market, limit)
	}
	return artists, nil
}

func (f *fallbackProvider) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := f.primary.GetArtist(ctx, id)
	if err != nil {
		f.warn(ctx, err)
		return f.secondary.GetArtist(ctx, id)
	}
	return artist, nil
}

func (f *fallbackProvider) SearchTracks(
	ctx context.Context,
	artistName, market string,
	limit int,
) ([]domain.Track, error) {
	tracks, err := f.primary.SearchTracks(ctx, artistName, market, limit)
	if err != nil {
		f.warn(ctx, err)
		return f.secondary.SearchTracks(ctx, artistName, market, limit)
	}
	return tracks, nil
}

func (f *fallbackProvider) warn(ctx context.Context, err error) {
	zerolog.Ctx(ctx).Warn().
		Err(err).
		Msg("metadata source unavailable, switching to fallback")
}
