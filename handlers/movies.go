package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"cineverse/models"
	"cineverse/services/catalog"
	metadatapkg "cineverse/services/metadata"
)

// movieService is the slice of the metadata service the handlers need.
type movieService interface {
	Search(ctx context.Context, query string, page int) models.SearchPage
	MovieDetails(ctx context.Context, id string) *models.Movie
	MovieTrailer(ctx context.Context, id string) string
}

var _ movieService = (*metadatapkg.Service)(nil)

type MovieHandler struct {
	Service movieService
	Catalog *catalog.Catalog
}

func NewMovieHandler(s movieService, cat *catalog.Catalog) *MovieHandler {
	return &MovieHandler{Service: s, Catalog: cat}
}

// Register attaches the movie routes to the router.
func (h *MovieHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/search", h.Search).Methods(http.MethodGet)
	r.HandleFunc("/api/movies/{id}", h.Details).Methods(http.MethodGet)
	r.HandleFunc("/api/movies/{id}/trailer", h.Trailer).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog", h.CatalogSection).Methods(http.MethodGet)
}

// Search handles GET /api/search?q=&page=. The pipeline never fails:
// a remote outage surfaces as a shorter (possibly empty) result list,
// so this endpoint never answers 5xx for upstream trouble.
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	page := 1
	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		page = parsed
	}

	writeJSON(w, http.StatusOK, h.Service.Search(r.Context(), q, page))
}

// Details handles GET /api/movies/{id}.
func (h *MovieHandler) Details(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	movie := h.Service.MovieDetails(r.Context(), id)
	if movie == nil {
		writeError(w, http.StatusNotFound, "movie not found")
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// Trailer handles GET /api/movies/{id}/trailer.
func (h *MovieHandler) Trailer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	trailer := h.Service.MovieTrailer(r.Context(), id)
	if trailer == "" {
		writeError(w, http.StatusNotFound, "no trailer available")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"trailerUrl": trailer})
}

// CatalogSection handles GET /api/catalog?section=&language=&year=.
// Sections mirror the catalog shelves; the language filter accepts a
// display name ("Tamil") or an ISO code ("ta").
func (h *MovieHandler) CatalogSection(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	section := strings.ToLower(strings.TrimSpace(query.Get("section")))
	if lang := strings.TrimSpace(query.Get("language")); lang != "" {
		writeJSON(w, http.StatusOK, h.Catalog.ByLanguage(languageName(lang)))
		return
	}

	switch section {
	case "", "all":
		writeJSON(w, http.StatusOK, h.Catalog.All())
	case "featured":
		writeJSON(w, http.StatusOK, h.Catalog.Featured())
	case "trending":
		writeJSON(w, http.StatusOK, h.Catalog.Trending())
	case "upcoming":
		writeJSON(w, http.StatusOK, h.Catalog.Upcoming())
	case "popular":
		writeJSON(w, http.StatusOK, h.Catalog.PopularThisYear(strings.TrimSpace(query.Get("year"))))
	default:
		writeError(w, http.StatusBadRequest, "unknown section "+strconv.Quote(section))
	}
}

// languageName canonicalizes a language filter value: full names pass
// through, ISO codes resolve to their English display name so "ta"
// and "Tamil" select the same shelf.
func languageName(value string) string {
	if len(value) > 3 {
		return value
	}
	tag, err := language.Parse(value)
	if err != nil {
		return value
	}
	return display.English.Languages().Name(tag)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[handlers] write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
