package api

type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Popularity int      `json:"popularity"`
	Followers  int      `json:"followers"`
	Genres     []string `json:"genres"`
	ImageURL   string   `json:"image_url,omitempty"`
}

type TrackInsight struct {
	Track        string `json:"track"`
	StreamsIndex int    `json:"streams_index"`
	DurationSec  int    `json:"duration_sec"`
}

type ArtistProfile struct {
	Artist Artist         `json:"artist"`
	Tracks []TrackInsight `json:"tracks"`
}

type StreamEstimate struct {
	SpotifyStreams float64 `json:"spotify_streams"`
	YouTubeStreams float64 `json:"youtube_streams"`
}
