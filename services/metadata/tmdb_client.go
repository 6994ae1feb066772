package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Minimal TMDB v3 client covering the endpoints the discovery pipeline
// needs: trending, multi search, per-title details with credits+videos
// appended, and a videos-only lookup. Pure I/O: one attempt per call,
// errors returned to the caller, no retries and no caching.

const (
	endpointMovie = "movie"
	endpointTV    = "tv"
)

type tmdbClient struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpc        *http.Client
}

func newTMDBClient(apiKey, baseURL, imageBaseURL string, httpc *http.Client) *tmdbClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &tmdbClient{
		apiKey:       apiKey,
		baseURL:      baseURL,
		imageBaseURL: imageBaseURL,
		httpc:        httpc,
	}
}

func (c *tmdbClient) isConfigured() bool {
	return c.apiKey != "" && c.baseURL != ""
}

// trending fetches the mixed movie/TV trending listing for the day window.
func (c *tmdbClient) trending(ctx context.Context, page int) (*tmdbListing, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	var listing tmdbListing
	if err := c.doGET(ctx, "/trending/all/day", params, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// searchMulti runs a free-text search across movies and TV shows.
func (c *tmdbClient) searchMulti(ctx context.Context, query string) (*tmdbListing, error) {
	params := url.Values{}
	params.Set("query", query)
	var listing tmdbListing
	if err := c.doGET(ctx, "/search/multi", params, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// details fetches one title with credits and videos appended. endpoint
// must be "movie" or "tv"; the resolved value is stamped onto the
// result so the normalizer does not have to re-guess the shape.
func (c *tmdbClient) details(ctx context.Context, id int64, endpoint string) (*tmdbDetails, error) {
	if endpoint != endpointTV {
		endpoint = endpointMovie
	}
	params := url.Values{}
	params.Set("append_to_response", "credits,videos")
	var d tmdbDetails
	if err := c.doGET(ctx, fmt.Sprintf("/%s/%d", endpoint, id), params, &d); err != nil {
		return nil, err
	}
	d.MediaType = endpoint
	return &d, nil
}

// videos fetches only the video list for a title, for trailer-only needs.
func (c *tmdbClient) videos(ctx context.Context, id int64, endpoint string) (*tmdbVideoList, error) {
	if endpoint != endpointTV {
		endpoint = endpointMovie
	}
	var v tmdbVideoList
	if err := c.doGET(ctx, fmt.Sprintf("/%s/%d/videos", endpoint, id), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *tmdbClient) doGET(ctx context.Context, path string, params url.Values, v any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb get %s returned %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}

// tmdbListing models the paginated envelope shared by trending and search.
type tmdbListing struct {
	Page         int        `json:"page"`
	Results      []tmdbItem `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// tmdbItem is one listing entry; movie and TV shapes are overlaid, with
// media_type telling them apart ("person" entries are dropped upstream).
type tmdbItem struct {
	ID         int64   `json:"id"`
	MediaType  string  `json:"media_type"`
	Title      string  `json:"title"`
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
}

type tmdbGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type tmdbCompany struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type tmdbCastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type tmdbCrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type tmdbCredits struct {
	Cast []tmdbCastMember `json:"cast"`
	Crew []tmdbCrewMember `json:"crew"`
}

type tmdbVideo struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type tmdbVideoList struct {
	Results []tmdbVideo `json:"results"`
}

// tmdbDetails is the full per-title payload. Movie fields
// (title/release_date/runtime) and TV fields
// (name/first_air_date/episode_run_time) coexist; MediaType is set by
// the client from the endpoint that produced the record.
type tmdbDetails struct {
	ID                  int64          `json:"id"`
	MediaType           string         `json:"media_type"`
	Title               string         `json:"title"`
	Name                string         `json:"name"`
	ReleaseDate         string         `json:"release_date"`
	FirstAirDate        string         `json:"first_air_date"`
	Runtime             int            `json:"runtime"`
	EpisodeRunTime      []int          `json:"episode_run_time"`
	Genres              []tmdbGenre    `json:"genres"`
	Overview            string         `json:"overview"`
	OriginalLanguage    string         `json:"original_language"`
	PosterPath          string         `json:"poster_path"`
	Adult               bool           `json:"adult"`
	VoteAverage         float64        `json:"vote_average"`
	VoteCount           int64          `json:"vote_count"`
	Popularity          float64        `json:"popularity"`
	ProductionCompanies []tmdbCompany  `json:"production_companies"`
	Credits             *tmdbCredits   `json:"credits"`
	Videos              *tmdbVideoList `json:"videos"`
}
