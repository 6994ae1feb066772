package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"cineverse/models"
)

//go:embed movies.json
var rawMovies []byte

//go:embed tmdb_ids.json
var rawTMDBIDs []byte

// Catalog is the bundled, load-time-fixed set of pre-formatted movie
// records plus the local-id to TMDB-id mapping table. It is loaded once
// at startup and never mutated; all accessors return copies.
type Catalog struct {
	movies  []models.Movie
	byID    map[string]int
	tmdbIDs map[string]int64
}

// Load parses the embedded catalog and mapping table and validates both.
func Load() (*Catalog, error) {
	var movies []models.Movie
	if err := json.Unmarshal(rawMovies, &movies); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	var tmdbIDs map[string]int64
	if err := json.Unmarshal(rawTMDBIDs, &tmdbIDs); err != nil {
		return nil, fmt.Errorf("parse tmdb id map: %w", err)
	}

	return New(movies, tmdbIDs)
}

// New validates a record set and mapping table and wraps them in a
// Catalog. Records must carry unique, non-empty ids.
func New(movies []models.Movie, tmdbIDs map[string]int64) (*Catalog, error) {
	byID := make(map[string]int, len(movies))
	for i, m := range movies {
		if strings.TrimSpace(m.ID) == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q appears twice", m.ID)
		}
		byID[m.ID] = i
	}
	for localID, tmdbID := range tmdbIDs {
		if tmdbID <= 0 {
			return nil, fmt.Errorf("tmdb id map entry %q has invalid id %d", localID, tmdbID)
		}
	}

	return &Catalog{movies: movies, byID: byID, tmdbIDs: tmdbIDs}, nil
}

// IsPosterValid reports whether a record carries a real poster. The
// check recognizes the two placeholder substrings the catalog and the
// normalizer emit; other broken-image URL patterns are not caught,
// which is the stated policy.
func IsPosterValid(m models.Movie) bool {
	return m.PosterURL != "" &&
		!strings.Contains(m.PosterURL, "placeholder") &&
		!strings.Contains(m.PosterURL, "No+Poster")
}

// All returns every poster-valid record in catalog order.
func (c *Catalog) All() []models.Movie {
	out := make([]models.Movie, 0, len(c.movies))
	for _, m := range c.movies {
		if IsPosterValid(m) {
			out = append(out, m)
		}
	}
	return out
}

// ByID returns the record with the given local id, poster-valid or not.
func (c *Catalog) ByID(id string) (models.Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return c.movies[i], true
}

// TMDBID resolves a locally-assigned id to its remote TMDB id.
func (c *Catalog) TMDBID(localID string) (int64, bool) {
	id, ok := c.tmdbIDs[localID]
	return id, ok
}

// Filter returns poster-valid records whose title, director, actor list
// or genre string contains the query, case-insensitively. An empty
// query matches nothing: browse-all data comes from All instead.
func (c *Catalog) Filter(query string) []models.Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []models.Movie
	for _, m := range c.movies {
		if !IsPosterValid(m) {
			continue
		}
		if strings.Contains(strings.ToLower(m.Title), query) ||
			strings.Contains(strings.ToLower(m.Director), query) ||
			strings.Contains(strings.ToLower(m.Actors), query) ||
			strings.Contains(strings.ToLower(m.Genre), query) {
			out = append(out, m)
		}
	}
	return out
}

// Featured returns poster-valid records flagged as featured.
func (c *Catalog) Featured() []models.Movie {
	return c.filter(func(m models.Movie) bool { return m.Featured })
}

// Trending returns poster-valid records flagged as trending.
func (c *Catalog) Trending() []models.Movie {
	return c.filter(func(m models.Movie) bool { return m.Trending })
}

// Upcoming returns poster-valid records flagged as upcoming.
func (c *Catalog) Upcoming() []models.Movie {
	return c.filter(func(m models.Movie) bool { return m.Upcoming })
}

// PopularThisYear returns poster-valid records flagged popular or
// released in the given year.
func (c *Catalog) PopularThisYear(year string) []models.Movie {
	return c.filter(func(m models.Movie) bool {
		return m.PopularNow || (year != "" && m.Year == year)
	})
}

// ByLanguage returns poster-valid records in the given language,
// excluding upcoming titles. Matching is case-insensitive.
func (c *Catalog) ByLanguage(language string) []models.Movie {
	language = strings.ToLower(strings.TrimSpace(language))
	return c.filter(func(m models.Movie) bool {
		return !m.Upcoming && strings.ToLower(m.Language) == language
	})
}

// Languages returns the distinct catalog languages in first-seen order.
func (c *Catalog) Languages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range c.movies {
		if m.Language == "" || seen[m.Language] {
			continue
		}
		seen[m.Language] = true
		out = append(out, m.Language)
	}
	return out
}

func (c *Catalog) filter(keep func(models.Movie) bool) []models.Movie {
	var out []models.Movie
	for _, m := range c.movies {
		if IsPosterValid(m) && keep(m) {
			out = append(out, m)
		}
	}
	return out
}
