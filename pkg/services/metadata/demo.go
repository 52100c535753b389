package metadata

import (
	"context"

	"github.com/muse-tools/streamcast/pkg/models/domain"
)

// demoProvider serves deterministic sample data so the simulator stays
// usable without Spotify credentials or network access.
type demoProvider struct{}

// NewDemoProvider returns a Provider backed by fixed sample data.
func NewDemoProvider() Provider {
	return demoProvider{}
}

// DemoFactory adapts NewDemoProvider to the registry factory signature.
func DemoFactory(_ context.Context, _ string) (Provider, error) {
	return NewDemoProvider(), nil
}

func demoArtist(name string) domain.Artist {
	if name == "" {
		name = "Sample Artist"
	}
	return domain.Artist{
		ID:         "demo",
		Name:       name,
		Popularity: 72,
		Followers:  1234567,
		Genres:     []string{"electronic", "hip hop", "experimental"},
	}
}

func (demoProvider) SearchArtists(_ context.Context, query, _ string, _ int) ([]domain.Artist, error) {
	return []domain.Artist{demoArtist(query)}, nil
}

func (demoProvider) GetArtist(_ context.Context, _ string) (*domain.Artist, error) {
	a := demoArtist("")
	return &a, nil
}

func (demoProvider) SearchTracks(_ context.Context, _, _ string, limit int) ([]domain.Track, error) {
	tracks := []domain.Track{
		{Name: "Track A", DurationMS: 188000},
		{Name: "Track B", DurationMS: 201000},
		{Name: "Track C", DurationMS: 214000},
		{Name: "Track D", DurationMS: 179000},
		{Name: "Track E", DurationMS: 232000},
	}
	if limit > 0 && limit < len(tracks) {
		tracks = tracks[:limit]
	}
	return tracks, nil
}
