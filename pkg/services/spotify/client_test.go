package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/muse-tools/streamcast/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(apiBase, tokenURL string) *Client {
	httpClient := &http.Client{}
	return &Client{
		httpClient: httpClient,
		apiBase:    apiBase,
		tokens: &tokenSource{
			creds:      Credentials{ClientID: "id", ClientSecret: "secret"},
			httpClient: httpClient,
			tokenURL:   tokenURL,
		},
	}
}

func newTokenServer(t *testing.T, tokenRequests *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenRequests.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"expires_in":   3600,
		})
	}))
}

func TestClient_SearchArtists(t *testing.T) {
	var tokenRequests atomic.Int64
	tokenSrv := newTokenServer(t, &tokenRequests)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "artist", r.URL.Query().Get("type"))
		assert.Equal(t, "JP", r.URL.Query().Get("market"))

		_, _ = w.Write([]byte(`{
			"artists": {"items": [{
				"id": "a1",
				"name": "Sample",
				"popularity": 133,
				"followers": {"total": 1234567},
				"genres": ["electronic"],
				"images": [{"url": "https://img.example/a1.jpg"}]
			}]}
		}`))
	}))
	defer apiSrv.Close()

	client := newTestClient(apiSrv.URL, tokenSrv.URL)

	artists, err := client.SearchArtists(context.Background(), "sample", "JP", 5)
	require.NoError(t, err)
	require.Len(t, artists, 1)

	// popularity above the documented range is clamped
	assert.Equal(t, domain.Artist{
		ID:         "a1",
		Name:       "Sample",
		Popularity: 100,
		Followers:  1234567,
		Genres:     []string{"electronic"},
		ImageURL:   "https://img.example/a1.jpg",
	}, artists[0])
}

func TestClient_TokenIsCached(t *testing.T) {
	var tokenRequests atomic.Int64
	tokenSrv := newTokenServer(t, &tokenRequests)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"artists": {"items": []}}`))
	}))
	defer apiSrv.Close()

	client := newTestClient(apiSrv.URL, tokenSrv.URL)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := client.SearchArtists(ctx, "q", "US", 1)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), tokenRequests.Load())
}

func TestClient_SearchTracksClampsLimit(t *testing.T) {
	var tokenRequests atomic.Int64
	tokenSrv := newTokenServer(t, &tokenRequests)
	defer tokenSrv.Close()

	var gotLimit string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{
			"tracks": {"items": [{"name": "Track A", "duration_ms": 188000}]}
		}`))
	}))
	defer apiSrv.Close()

	client := newTestClient(apiSrv.URL, tokenSrv.URL)

	tracks, err := client.SearchTracks(context.Background(), "Sample", "US", 500)
	require.NoError(t, err)
	assert.Equal(t, "20", gotLimit)
	assert.Equal(t, []domain.Track{{Name: "Track A", DurationMS: 188000}}, tracks)

	_, err = client.SearchTracks(context.Background(), "Sample", "US", -1)
	require.NoError(t, err)
	assert.Equal(t, "1", gotLimit)
}

func TestClient_SurfacesAPIErrors(t *testing.T) {
	var tokenRequests atomic.Int64
	tokenSrv := newTokenServer(t, &tokenRequests)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer apiSrv.Close()

	client := newTestClient(apiSrv.URL, tokenSrv.URL)

	_, err := client.GetArtist(context.Background(), "a1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestTokenSource_MissingCredentials(t *testing.T) {
	ts := &tokenSource{httpClient: &http.Client{}, tokenURL: "http://unused"}
	_, err := ts.Token(context.Background())
	assert.Error(t, err)
}
