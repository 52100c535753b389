package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Credentials is a Spotify client-credentials pair. No user login is
// involved; the pair only grants access to public catalog endpoints.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// tokenSource fetches and caches an app access token. The token is held on
// the source itself, never in process-global state, and is refreshed with a
// safety margin before the advertised expiry.
type tokenSource struct {
	creds      Credentials
	httpClient *http.Client
	tokenURL   string

	mu     sync.Mutex
	token  string
	expiry time.Time
}

const tokenExpiryMargin = 5 * time.Minute

func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Before(ts.expiry) {
		return ts.token, nil
	}

	if ts.creds.ClientID == "" || ts.creds.ClientSecret == "" {
		return "", fmt.Errorf("spotify client credentials are missing")
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}

	basic := base64.StdEncoding.EncodeToString(
		[]byte(ts.creds.ClientID + ":" + ts.creds.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token error %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	ts.token = payload.AccessToken
	ts.expiry = time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenExpiryMargin)
	return ts.token, nil
}
