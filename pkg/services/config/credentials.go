package config

import (
	"context"
	"fmt"
	"os"

	"github.com/muse-tools/streamcast/pkg/services/spotify"
	"gopkg.in/ini.v1"
)

// Registry reads Spotify API credentials from an ini profile file
// (~/.streamcastcfg by default). Each section is a named profile with
// client_id and client_secret keys.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetCredentials(ctx context.Context, profile string) (spotify.Credentials, error)
}

type credRegistry struct {
	cfg *ini.File
}

// NewRegistry loads the credentials file at path.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &credRegistry{cfg: cfg}, nil
}

func (cr *credRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *credRegistry) GetCredentials(_ context.Context, profile string) (spotify.Credentials, error) {
	section := cr.cfg.Section(profile)
	if section == nil || len(section.Keys()) == 0 {
		return spotify.Credentials{}, fmt.Errorf("profile %s not found", profile)
	}

	creds := spotify.Credentials{
		ClientID:     section.Key("client_id").String(),
		ClientSecret: section.Key("client_secret").String(),
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return spotify.Credentials{}, fmt.Errorf("profile %s is missing client_id or client_secret", profile)
	}
	return creds, nil
}

// CredentialsFromEnv reads SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET.
// ok is false when either variable is unset, in which case the caller falls
// back to the profile file.
func CredentialsFromEnv() (spotify.Credentials, bool) {
	creds := spotify.Credentials{
		ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
	}
	return creds, creds.ClientID != "" && creds.ClientSecret != ""
}
