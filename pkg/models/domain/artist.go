package domain

// Artist is the metadata the simulator needs about a single artist.
// Popularity is in [0,100], Followers is non-negative; both are sanitized
// by the metadata provider before they reach the forecast engine.
type Artist struct {
	ID         string
	Name       string
	Popularity int
	Followers  int
	Genres     []string
	ImageURL   string
}

// Track is raw track metadata as returned by a provider.
type Track struct {
	Name       string
	DurationMS int
}

// TrackInsight is one row of the relative track table. The Spotify Web API
// does not expose stream counts, so StreamsIndex is a relative rank index.
type TrackInsight struct {
	Track        string
	StreamsIndex int
	DurationSec  int
}

// ArtistProfile bundles an artist with its derived track table.
type ArtistProfile struct {
	Artist Artist
	Tracks []TrackInsight
}
