package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:8985", cfg.Server.Addr)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, 15, cfg.Search.CandidateLimit)
	assert.Equal(t, 7.5, cfg.Search.FeaturedRating)
	assert.Empty(t, cfg.TMDB.APIKey)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	path := filepath.Join(t.TempDir(), "cineverse.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
addr = "0.0.0.0:9000"
log_file = "/var/log/cineverse.log"

[tmdb]
api_key = "file-key"

[search]
candidate_limit = 5
trending_popularity = 80.0
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, "/var/log/cineverse.log", cfg.Server.LogFile)
	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.Equal(t, 5, cfg.Search.CandidateLimit)
	assert.Equal(t, 80.0, cfg.Search.TrendingPopularity)

	// Untouched keys keep their defaults.
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, 7.5, cfg.Search.FeaturedRating)
}

func TestLoadEnvKeyWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cineverse.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tmdb]\napi_key = \"file-key\"\n"), 0o644))

	t.Setenv("TMDB_API_KEY", "env-key")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\naddr ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = " " }},
		{"empty base url", func(c *Config) { c.TMDB.BaseURL = "" }},
		{"empty image base url", func(c *Config) { c.TMDB.ImageBaseURL = "" }},
		{"zero candidate limit", func(c *Config) { c.Search.CandidateLimit = 0 }},
		{"featured rating out of range", func(c *Config) { c.Search.FeaturedRating = 10.5 }},
		{"negative trending popularity", func(c *Config) { c.Search.TrendingPopularity = -1 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		assert.Error(t, cfg.Validate(), tc.name)
	}
}
