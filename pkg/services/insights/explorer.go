package insights

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/muse-tools/streamcast/pkg/services/metadata"
	"golang.org/x/sync/errgroup"
)

const (
	// defaults for the relative streams index of the track table
	indexTop   = 100
	indexFloor = 45

	defaultTrackLimit = 10
)

// ErrArtistNotFound reports a search with no candidates.
var ErrArtistNotFound = errors.New("artist not found")

// Explorer turns raw provider metadata into artist profiles ready for
// presentation: full artist record plus a ranked track table.
type Explorer interface {
	Search(ctx context.Context, query, market string, limit int) ([]domain.Artist, error)
	// Profile loads the artist by id, then its track table.
	Profile(ctx context.Context, id, market string) (*domain.ArtistProfile, error)
	// Lookup searches by name and loads the profile of the best candidate.
	Lookup(ctx context.Context, query, market string) (*domain.ArtistProfile, error)
}

type explorer struct {
	provider metadata.Provider
}

// NewExplorer creates an Explorer backed by the given metadata provider.
func NewExplorer(provider metadata.Provider) Explorer {
	return &explorer{provider: provider}
}

func (e *explorer) Search(
	ctx context.Context,
	query, market string,
	limit int,
) ([]domain.Artist, error) {
	return e.provider.SearchArtists(ctx, query, market, limit)
}

func (e *explorer) Profile(ctx context.Context, id, market string) (*domain.ArtistProfile, error) {
	artist, err := e.provider.GetArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist %q: %w", id, err)
	}

	tracks, err := e.provider.SearchTracks(ctx, artist.Name, market, defaultTrackLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search tracks for %q: %w", artist.Name, err)
	}

	return &domain.ArtistProfile{Artist: *artist, Tracks: TrackTable(tracks)}, nil
}

func (e *explorer) Lookup(ctx context.Context, query, market string) (*domain.ArtistProfile, error) {
	candidates, err := e.provider.SearchArtists(ctx, query, market, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrArtistNotFound, query)
	}

	// The candidate already carries the artist name, so the detail record
	// and the track search can be fetched in parallel.
	best := candidates[0]
	var (
		artist *domain.Artist
		tracks []domain.Track
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artist, err = e.provider.GetArtist(gctx, best.ID)
		return err
	})
	g.Go(func() error {
		var err error
		tracks, err = e.provider.SearchTracks(gctx, best.Name, market, defaultTrackLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load artist profile: %w", err)
	}

	if artist.ImageURL == "" {
		artist.ImageURL = best.ImageURL
	}
	return &domain.ArtistProfile{Artist: *artist, Tracks: TrackTable(tracks)}, nil
}

// RankIndex produces n relative index values descending linearly from top to
// floor. A single entry gets the top value.
func RankIndex(n, top, floor int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{top}
	}

	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out = append(out, int(math.Round(float64(top)-float64(top-floor)*t)))
	}
	return out
}

// TrackTable derives the presentation rows from raw track metadata, ranked
// in result order.
func TrackTable(tracks []domain.Track) []domain.TrackInsight {
	idx := RankIndex(len(tracks), indexTop, indexFloor)
	rows := make([]domain.TrackInsight, 0, len(tracks))
	for i, track := range tracks {
		rows = append(rows, domain.TrackInsight{
			Track:        track.Name,
			StreamsIndex: idx[i],
			DurationSec:  track.DurationMS / 1000,
		})
	}
	return rows
}
