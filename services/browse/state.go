// Package browse holds the presentation-layer browsing state as a pure
// reducer: one immutable state record advanced by explicit actions,
// with no knowledge of how result pages are produced. Callers run the
// search pipeline themselves and feed the resulting page into an
// action.
package browse

import (
	"cineverse/models"
	"cineverse/services/catalog"
)

// Section names the active browsing view.
type Section string

const (
	SectionTrending Section = "trending"
	SectionFeatured Section = "featured"
	SectionAll      Section = "all"
	SectionPopular  Section = "popular"
	SectionUpcoming Section = "upcoming"
	SectionLanguage Section = "language"
	SectionSearch   Section = "search"
)

// State is the single browsing state record.
type State struct {
	Section  Section
	Language string
	Query    string
	Page     int
	HasMore  bool
	Movies   []models.Movie
}

// Initial returns the state the UI starts in.
func Initial() State {
	return State{Section: SectionTrending, Page: 1}
}

// Action is one browsing state transition.
type Action interface {
	isAction()
}

// Search replaces the movie list with the first page for a query.
type Search struct {
	Query  string
	Result models.SearchPage
}

// LoadMore appends the next result page for the current query.
type LoadMore struct {
	Result models.SearchPage
}

// SelectCategory swaps in a catalog section.
type SelectCategory struct {
	Section Section
	Movies  []models.Movie
}

// SelectLanguage swaps in one catalog language shelf.
type SelectLanguage struct {
	Language string
	Movies   []models.Movie
}

func (Search) isAction()         {}
func (LoadMore) isAction()       {}
func (SelectCategory) isAction() {}
func (SelectLanguage) isAction() {}

// Apply advances the state by one action. It never mutates its input:
// movie slices are copied before being filtered or extended.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case Search:
		s.Query = a.Query
		s.Page = 1
		s.Movies = posterValid(a.Result.Movies)
		s.HasMore = a.Result.HasMore
		s.Language = ""
		if a.Query == "" {
			s.Section = SectionTrending
		} else {
			s.Section = SectionSearch
		}
	case LoadMore:
		s.Page++
		s.Movies = appendNew(s.Movies, posterValid(a.Result.Movies))
		s.HasMore = a.Result.HasMore
	case SelectCategory:
		s.Section = a.Section
		s.Movies = posterValid(a.Movies)
		s.Query = ""
		s.Language = ""
		s.Page = 1
		s.HasMore = false
	case SelectLanguage:
		s.Section = SectionLanguage
		s.Language = a.Language
		s.Movies = posterValid(a.Movies)
		s.Query = ""
		s.Page = 1
		s.HasMore = false
	}
	return s
}

func posterValid(in []models.Movie) []models.Movie {
	out := make([]models.Movie, 0, len(in))
	for _, m := range in {
		if catalog.IsPosterValid(m) {
			out = append(out, m)
		}
	}
	return out
}

// appendNew extends the current list, skipping ids already shown so a
// re-delivered page cannot duplicate cards.
func appendNew(current, more []models.Movie) []models.Movie {
	seen := make(map[string]struct{}, len(current))
	for _, m := range current {
		seen[m.ID] = struct{}{}
	}
	out := append([]models.Movie(nil), current...)
	for _, m := range more {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
