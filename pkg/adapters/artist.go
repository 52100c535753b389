package adapters

import (
	"github.com/muse-tools/streamcast/pkg/models/api"
	"github.com/muse-tools/streamcast/pkg/models/domain"
)

func ArtistToAPI(a domain.Artist) api.Artist {
	return api.Artist{
		ID:         a.ID,
		Name:       a.Name,
		Popularity: a.Popularity,
		Followers:  a.Followers,
		Genres:     a.Genres,
		ImageURL:   a.ImageURL,
	}
}

func ProfileToAPI(p domain.ArtistProfile) api.ArtistProfile {
	tracks := make([]api.TrackInsight, 0, len(p.Tracks))
	for _, t := range p.Tracks {
		tracks = append(tracks, api.TrackInsight{
			Track:        t.Track,
			StreamsIndex: t.StreamsIndex,
			DurationSec:  t.DurationSec,
		})
	}
	return api.ArtistProfile{
		Artist: ArtistToAPI(p.Artist),
		Tracks: tracks,
	}
}

func EstimateToAPI(s domain.StreamState) api.StreamEstimate {
	return api.StreamEstimate{
		SpotifyStreams: s.Spotify,
		YouTubeStreams: s.YouTube,
	}
}
