package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muse-tools/streamcast/pkg/models/domain"
)

const (
	defaultTokenURL = "https://accounts.spotify.com/api/token"
	defaultAPIBase  = "https://api.spotify.com/v1"

	// Spotify caps track search page size at 50; the simulator never needs
	// more than a short ranking table.
	maxTrackLimit = 20
)

// Client talks to the Spotify Web API using the client-credentials flow.
// Only stable public endpoints are used: /search and /artists/{id}.
type Client struct {
	httpClient *http.Client
	apiBase    string
	tokens     *tokenSource
}

// NewClient creates a Spotify metadata client for the given credentials.
func NewClient(creds Credentials) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	return &Client{
		httpClient: httpClient,
		apiBase:    defaultAPIBase,
		tokens: &tokenSource{
			creds:      creds,
			httpClient: httpClient,
			tokenURL:   defaultTokenURL,
		},
	}
}

type artistObject struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
	Followers  struct {
		Total int `json:"total"`
	} `json:"followers"`
	Genres []string `json:"genres"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

type trackObject struct {
	Name       string `json:"name"`
	DurationMS int    `json:"duration_ms"`
}

// SearchArtists looks up artist candidates by name in the given market.
func (c *Client) SearchArtists(
	ctx context.Context,
	query, market string,
	limit int,
) ([]domain.Artist, error) {
	if limit <= 0 {
		limit = 5
	}

	var payload struct {
		Artists struct {
			Items []artistObject `json:"items"`
		} `json:"artists"`
	}
	params := url.Values{
		"q":      {query},
		"type":   {"artist"},
		"limit":  {fmt.Sprint(limit)},
		"market": {market},
	}
	if err := c.get(ctx, "/search", params, &payload); err != nil {
		return nil, err
	}

	artists := make([]domain.Artist, 0, len(payload.Artists.Items))
	for _, item := range payload.Artists.Items {
		artists = append(artists, toArtist(item))
	}
	return artists, nil
}

// GetArtist fetches full metadata for a single artist id.
func (c *Client) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	var payload artistObject
	if err := c.get(ctx, "/artists/"+url.PathEscape(id), nil, &payload); err != nil {
		return nil, err
	}
	artist := toArtist(payload)
	return &artist, nil
}

// SearchTracks finds tracks attributed to the named artist. The limit is
// clamped to [1, 20]. Stream counts are not available from the Web API; the
// caller derives a relative index from result order.
func (c *Client) SearchTracks(
	ctx context.Context,
	artistName, market string,
	limit int,
) ([]domain.Track, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxTrackLimit {
		limit = maxTrackLimit
	}

	var payload struct {
		Tracks struct {
			Items []trackObject `json:"items"`
		} `json:"tracks"`
	}
	params := url.Values{
		"q":      {fmt.Sprintf("artist:%q", artistName)},
		"type":   {"track"},
		"limit":  {fmt.Sprint(limit)},
		"market": {market},
	}
	if err := c.get(ctx, "/search", params, &payload); err != nil {
		return nil, err
	}

	tracks := make([]domain.Track, 0, len(payload.Tracks.Items))
	for _, item := range payload.Tracks.Items {
		tracks = append(tracks, domain.Track{
			Name:       item.Name,
			DurationMS: item.DurationMS,
		})
	}
	return tracks, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	endpoint := c.apiBase + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("spotify API error %d on %s: %s", resp.StatusCode, path, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func toArtist(obj artistObject) domain.Artist {
	artist := domain.Artist{
		ID:         obj.ID,
		Name:       obj.Name,
		Popularity: obj.Popularity,
		Followers:  obj.Followers.Total,
		Genres:     obj.Genres,
	}
	if artist.Popularity < 0 {
		artist.Popularity = 0
	}
	if artist.Popularity > 100 {
		artist.Popularity = 100
	}
	if artist.Followers < 0 {
		artist.Followers = 0
	}
	if len(obj.Images) > 0 {
		artist.ImageURL = obj.Images[0].URL
	}
	return artist
}
