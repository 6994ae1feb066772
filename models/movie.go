package models

// MediaKind classifies a title as a standalone movie or an episodic series.
// Source type hints of "anime" fold into MediaSeries at the normalization
// boundary, so downstream code only ever sees these two values.
type MediaKind string

const (
	MediaMovie  MediaKind = "movie"
	MediaSeries MediaKind = "series"
)

// CastMember is one credited actor with a known portrait image.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	PortraitURL string `json:"portraitUrl"`
}

// Movie is the unified record every data source is normalized into.
// Catalog entries are authored directly in this shape; remote TMDB
// records are converted by the metadata service. Missing upstream data
// degrades to "N/A" or a stated default, never to an empty record.
type Movie struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Year       string       `json:"year"`                 // "2024" or "N/A"
	Released   string       `json:"released,omitempty"`   // full date when known
	Rated      string       `json:"rated,omitempty"`      // "A" | "UA"
	Runtime    string       `json:"runtime"`              // "142 min", "42 min/ep", "N/A"
	Genre      string       `json:"genre"`                // comma-joined, default "Drama"
	Director   string       `json:"director"`
	Writer     string       `json:"writer"`
	Actors     string       `json:"actors"`
	FullCast   []CastMember `json:"fullCast,omitempty"`
	Plot       string       `json:"plot"`
	Language   string       `json:"language"`
	PosterURL  string       `json:"posterUrl"`
	Rating     string       `json:"rating"`    // vote average to 1 decimal, or "N/A"
	VoteCount  string       `json:"voteCount"`
	MediaKind  MediaKind    `json:"mediaKind"`
	Production string       `json:"production,omitempty"`
	TrailerURL string       `json:"trailerUrl,omitempty"` // embeddable URL, empty when none found
	Featured   bool         `json:"featured"`
	Trending   bool         `json:"trending"`
	Upcoming   bool         `json:"upcoming,omitempty"`        // catalog-only flag
	PopularNow bool         `json:"popularThisYear,omitempty"` // catalog-only flag
}

// SearchPage is the result of one search pipeline run: catalog matches
// first, remote matches after, deduplicated by ID.
type SearchPage struct {
	Movies       []Movie `json:"movies"`
	TotalResults int     `json:"totalResults"`
	HasMore      bool    `json:"hasMore"`
}
