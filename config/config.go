package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultAddr               = "127.0.0.1:8985"
	defaultTMDBBaseURL        = "https://api.themoviedb.org/3"
	defaultImageBaseURL       = "https://image.tmdb.org/t/p/w500"
	defaultCandidateLimit     = 15
	defaultFeaturedRating     = 7.5
	defaultTrendingPopularity = 50
)

// apiKeyEnv overrides the configured TMDB API key so deployments can
// keep the key out of the config file.
const apiKeyEnv = "TMDB_API_KEY"

// Server holds the HTTP bind address and optional log destination.
type Server struct {
	Addr    string `toml:"addr"`
	LogFile string `toml:"log_file"`
}

// TMDB holds the remote metadata service parameters.
type TMDB struct {
	APIKey       string `toml:"api_key"`
	BaseURL      string `toml:"base_url"`
	ImageBaseURL string `toml:"image_base_url"`
}

// Search tunes the discovery pipeline. The featured/trending thresholds
// are heuristic classification constants; they have no derivation
// beyond matching the catalog's conventions.
type Search struct {
	CandidateLimit     int     `toml:"candidate_limit"`
	FeaturedRating     float64 `toml:"featured_rating"`
	TrendingPopularity float64 `toml:"trending_popularity"`
}

type Config struct {
	Server Server `toml:"server"`
	TMDB   TMDB   `toml:"tmdb"`
	Search Search `toml:"search"`
}

// Default returns a configuration with every tunable at its default.
func Default() *Config {
	return &Config{
		Server: Server{Addr: defaultAddr},
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultImageBaseURL,
		},
		Search: Search{
			CandidateLimit:     defaultCandidateLimit,
			FeaturedRating:     defaultFeaturedRating,
			TrendingPopularity: defaultTrendingPopularity,
		},
	}
}

// Load reads the TOML file at path over the defaults, then applies the
// TMDB_API_KEY environment override. A missing file is not an error:
// the defaults plus environment are a complete configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if key := strings.TrimSpace(os.Getenv(apiKeyEnv)); key != "" {
		cfg.TMDB.APIKey = key
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr must not be empty")
	}
	if strings.TrimSpace(c.TMDB.BaseURL) == "" {
		return errors.New("tmdb.base_url must not be empty")
	}
	if strings.TrimSpace(c.TMDB.ImageBaseURL) == "" {
		return errors.New("tmdb.image_base_url must not be empty")
	}
	if c.Search.CandidateLimit <= 0 {
		return fmt.Errorf("search.candidate_limit must be positive, got %d", c.Search.CandidateLimit)
	}
	if c.Search.FeaturedRating < 0 || c.Search.FeaturedRating > 10 {
		return fmt.Errorf("search.featured_rating must be within 0..10, got %v", c.Search.FeaturedRating)
	}
	if c.Search.TrendingPopularity < 0 {
		return fmt.Errorf("search.trending_popularity must not be negative, got %v", c.Search.TrendingPopularity)
	}
	return nil
}
