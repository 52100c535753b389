package config

import (
	"fmt"

	"github.com/muse-tools/streamcast/pkg/services/simulation"
	"github.com/spf13/viper"
)

type defaultsProfile struct {
	SpotifyRate  float64 `mapstructure:"spotify_rate"`
	YouTubeRate  float64 `mapstructure:"youtube_rate"`
	Months       int     `mapstructure:"months"`
	TargetIncome float64 `mapstructure:"target_income"`
}

// LoadDefaults reads a simulation defaults profile (YAML, TOML, or JSON,
// picked by file extension). Keys left out of the file keep the standard
// defaults.
func LoadDefaults(profilePath string) (simulation.Defaults, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	std := simulation.StandardDefaults()
	v.SetDefault("spotify_rate", std.SpotifyRate)
	v.SetDefault("youtube_rate", std.YouTubeRate)
	v.SetDefault("months", std.Months)
	v.SetDefault("target_income", std.TargetIncome)

	if err := v.ReadInConfig(); err != nil {
		return simulation.Defaults{}, fmt.Errorf("failed to read defaults profile: %w", err)
	}

	var profile defaultsProfile
	if err := v.Unmarshal(&profile); err != nil {
		return simulation.Defaults{}, fmt.Errorf("failed to parse defaults profile: %w", err)
	}

	return simulation.Defaults{
		SpotifyRate:  profile.SpotifyRate,
		YouTubeRate:  profile.YouTubeRate,
		Months:       profile.Months,
		TargetIncome: profile.TargetIncome,
	}, nil
}
