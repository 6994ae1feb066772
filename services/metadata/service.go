package metadata

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"cineverse/config"
	"cineverse/models"
	"cineverse/services/catalog"
)

// Service merges the static catalog with live TMDB results: it filters
// the catalog locally, fetches and normalizes remote candidates one at
// a time, de-duplicates by id with the catalog winning, and falls back
// to catalog-only results when the remote side is down. Every call
// works on request-scoped data; nothing is cached between calls.
type Service struct {
	tmdb    *tmdbClient
	catalog *catalog.Catalog
	opts    normalizeOptions

	// Per-search cap on remote candidates put through the detail
	// fetch, a pagination/performance bound.
	candidateLimit int
}

func NewService(cfg *config.Config, cat *catalog.Catalog) *Service {
	return &Service{
		tmdb:           newTMDBClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.ImageBaseURL, &http.Client{}),
		catalog:        cat,
		candidateLimit: cfg.Search.CandidateLimit,
		opts: normalizeOptions{
			imageBaseURL:       cfg.TMDB.ImageBaseURL,
			featuredRating:     cfg.Search.FeaturedRating,
			trendingPopularity: cfg.Search.TrendingPopularity,
		},
	}
}

// Search runs the full discovery pipeline for one query. The returned
// page always places catalog matches before remote matches, contains
// no duplicate ids and no placeholder posters, and degrades to
// catalog-only results on total remote failure. It never fails.
func (s *Service) Search(ctx context.Context, query string, page int) models.SearchPage {
	if page < 1 {
		page = 1
	}

	local := s.catalog.Filter(query)
	localIDs := make(map[string]struct{}, len(local))
	for _, m := range local {
		localIDs[m.ID] = struct{}{}
	}
	movies := append([]models.Movie(nil), local...)

	listing, err := s.fetchListing(ctx, query, page)
	if err != nil {
		log.Printf("[metadata] search %q: remote listing failed, catalog-only results: %v", query, err)
		return models.SearchPage{Movies: movies, TotalResults: len(movies)}
	}

	processed := 0
	for _, item := range listing.Results {
		if item.MediaType != endpointMovie && item.MediaType != endpointTV {
			continue
		}
		if processed == s.candidateLimit {
			break
		}
		processed++

		if _, taken := localIDs[strconv.FormatInt(item.ID, 10)]; taken {
			// Catalog record wins; the remote duplicate is dropped.
			continue
		}
		movie, ok := s.enrichCandidate(ctx, item)
		if !ok {
			continue
		}
		movies = append(movies, movie)
	}

	return models.SearchPage{
		Movies:       movies,
		TotalResults: len(movies),
		HasMore:      listing.TotalPages > page,
	}
}

// fetchListing picks the remote listing for a query: the daily trending
// window when browsing without a query, multi search otherwise.
func (s *Service) fetchListing(ctx context.Context, query string, page int) (*tmdbListing, error) {
	if query == "" {
		return s.tmdb.trending(ctx, page)
	}
	return s.tmdb.searchMulti(ctx, query)
}

// enrichCandidate resolves one listing entry into a unified record.
// Any failure drops only this candidate: the error is logged and the
// batch continues.
func (s *Service) enrichCandidate(ctx context.Context, item tmdbItem) (models.Movie, bool) {
	details, err := s.tmdb.details(ctx, item.ID, item.MediaType)
	if err != nil {
		log.Printf("[metadata] skipping candidate %s/%d: %v", item.MediaType, item.ID, err)
		return models.Movie{}, false
	}

	movie := normalizeDetails(details, s.opts)
	if !catalog.IsPosterValid(movie) {
		return models.Movie{}, false
	}
	extractCredits(details.Credits, s.opts.imageBaseURL).apply(&movie)
	movie.TrailerURL = selectTrailerURL(details.Videos)
	return movie, true
}

// MovieDetails resolves a single record by local or TMDB id. A fetched
// record is merged over the catalog entry when one exists: the remote
// side wins for the people, trailer and rating fields while
// catalog-only fields (plot, poster, upcoming and popularity flags)
// are preserved. Returns nil only when nothing local or remote matched.
func (s *Service) MovieDetails(ctx context.Context, id string) *models.Movie {
	local, hasLocal := s.catalog.ByID(id)

	tmdbID, ok := s.resolveTMDBID(id)
	if !ok {
		if hasLocal {
			m := local
			return &m
		}
		return nil
	}

	details, err := s.fetchDetailsEitherKind(ctx, tmdbID, s.guessEndpoint(local, hasLocal))
	if err != nil {
		log.Printf("[metadata] details %s (tmdb %d) unavailable: %v", id, tmdbID, err)
		if hasLocal {
			m := local
			return &m
		}
		return nil
	}

	fetched := normalizeDetails(details, s.opts)
	credits := extractCredits(details.Credits, s.opts.imageBaseURL)
	credits.apply(&fetched)
	fetched.TrailerURL = selectTrailerURL(details.Videos)

	if !hasLocal {
		return &fetched
	}

	merged := local
	credits.apply(&merged)
	merged.TrailerURL = fetched.TrailerURL
	merged.Title = fetched.Title
	merged.Year = fetched.Year
	merged.Language = fetched.Language
	merged.Rating = fetched.Rating
	merged.VoteCount = fetched.VoteCount
	merged.MediaKind = fetched.MediaKind
	merged.Production = fetched.Production
	return &merged
}

// MovieTrailer is the trailer-only shortcut: same id resolution and
// media-kind fallback as MovieDetails, against the cheaper videos
// endpoint. Returns the empty string when no trailer can be found.
func (s *Service) MovieTrailer(ctx context.Context, id string) string {
	local, hasLocal := s.catalog.ByID(id)

	tmdbID, ok := s.resolveTMDBID(id)
	if !ok {
		return ""
	}

	endpoint := s.guessEndpoint(local, hasLocal)
	trailer := s.fetchTrailer(ctx, tmdbID, endpoint)
	if trailer == "" {
		trailer = s.fetchTrailer(ctx, tmdbID, swapEndpoint(endpoint))
	}
	return trailer
}

func (s *Service) fetchTrailer(ctx context.Context, tmdbID int64, endpoint string) string {
	videos, err := s.tmdb.videos(ctx, tmdbID, endpoint)
	if err != nil {
		log.Printf("[metadata] trailer lookup %s/%d failed: %v", endpoint, tmdbID, err)
		return ""
	}
	return selectTrailerURL(videos)
}

// resolveTMDBID maps an id to its remote numeric id: numeric ids pass
// through, locally-assigned ids go through the mapping table.
func (s *Service) resolveTMDBID(id string) (int64, bool) {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > 0 {
		return n, true
	}
	return s.catalog.TMDBID(id)
}

// guessEndpoint picks the first media kind to try, from the catalog
// record's kind when one exists, defaulting to movie.
func (s *Service) guessEndpoint(local models.Movie, hasLocal bool) string {
	if hasLocal && local.MediaKind == models.MediaSeries {
		return endpointTV
	}
	return endpointMovie
}

func swapEndpoint(endpoint string) string {
	if endpoint == endpointMovie {
		return endpointTV
	}
	return endpointMovie
}

// fetchDetailsEitherKind tries the guessed media kind, then the
// opposite one. A single swap, not an open-ended search: a wrong
// guess (a movie indexed as TV or vice versa) is the only case it
// recovers from.
func (s *Service) fetchDetailsEitherKind(ctx context.Context, tmdbID int64, endpoint string) (*tmdbDetails, error) {
	details, err := s.tmdb.details(ctx, tmdbID, endpoint)
	if err == nil {
		return details, nil
	}
	log.Printf("[metadata] details %s/%d failed, retrying as %s: %v", endpoint, tmdbID, swapEndpoint(endpoint), err)
	return s.tmdb.details(ctx, tmdbID, swapEndpoint(endpoint))
}
