package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"cineverse/models"
)

// placeholderPosterURL marks records with no real poster art. Records
// carrying it are filtered out before results reach callers.
const placeholderPosterURL = "https://via.placeholder.com/300x450/333/fff?text=No+Poster"

const defaultPlot = "No description available"

// normalizeOptions carries the configured image base and the
// classification thresholds. The thresholds are heuristics fixed at
// configuration time, not authoritative upstream flags.
type normalizeOptions struct {
	imageBaseURL       string
	featuredRating     float64
	trendingPopularity float64
}

// isSeriesType folds the known episodic type hints into one branch;
// "anime" is an upstream alias for series.
func isSeriesType(mediaType string) bool {
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "tv", "series", "anime":
		return true
	default:
		return false
	}
}

// normalizeDetails converts a raw TMDB record into the unified schema.
// It is total: any missing field degrades to "N/A" or its stated
// default, never to a failure. Credits and trailer fields start at
// their defaults and are filled in by the extractor afterwards.
func normalizeDetails(d *tmdbDetails, opts normalizeOptions) models.Movie {
	if d == nil {
		d = &tmdbDetails{}
	}

	series := isSeriesType(d.MediaType)

	title := d.Title
	releaseDate := d.ReleaseDate
	if series {
		title = d.Name
		releaseDate = d.FirstAirDate
	}
	if title == "" {
		title = "N/A"
	}

	runtime := "N/A"
	if series {
		if len(d.EpisodeRunTime) > 0 {
			runtime = fmt.Sprintf("%d min/ep", d.EpisodeRunTime[0])
		}
	} else if d.Runtime > 0 {
		runtime = fmt.Sprintf("%d min", d.Runtime)
	}

	year := "N/A"
	if len(releaseDate) >= 4 {
		year = releaseDate[:4]
	}
	released := releaseDate
	if released == "" {
		released = "N/A"
	}

	genre := "Drama"
	if len(d.Genres) > 0 {
		names := make([]string, 0, len(d.Genres))
		for _, g := range d.Genres {
			names = append(names, g.Name)
		}
		genre = strings.Join(names, ", ")
	}

	poster := placeholderPosterURL
	if d.PosterPath != "" {
		poster = opts.imageBaseURL + d.PosterPath
	}

	rating := "N/A"
	if d.VoteAverage > 0 {
		rating = strconv.FormatFloat(d.VoteAverage, 'f', 1, 64)
	}

	plot := d.Overview
	if plot == "" {
		plot = defaultPlot
	}

	// Static-catalog convention: unknown source language reads as Tamil.
	language := "Tamil"
	if d.OriginalLanguage != "" {
		language = strings.ToUpper(d.OriginalLanguage)
	}

	rated := "UA"
	if d.Adult {
		rated = "A"
	}

	production := "N/A"
	if len(d.ProductionCompanies) > 0 {
		production = d.ProductionCompanies[0].Name
	}

	kind := models.MediaMovie
	if series {
		kind = models.MediaSeries
	}

	return models.Movie{
		ID:         strconv.FormatInt(d.ID, 10),
		Title:      title,
		Year:       year,
		Released:   released,
		Rated:      rated,
		Runtime:    runtime,
		Genre:      genre,
		Director:   "N/A",
		Writer:     "N/A",
		Actors:     "N/A",
		Plot:       plot,
		Language:   language,
		PosterURL:  poster,
		Rating:     rating,
		VoteCount:  strconv.FormatInt(d.VoteCount, 10),
		MediaKind:  kind,
		Production: production,
		Featured:   d.VoteAverage > opts.featuredRating,
		Trending:   d.Popularity > opts.trendingPopularity,
	}
}
