package metadata

import (
	"strings"

	"cineverse/models"
)

const youtubeEmbedBase = "https://www.youtube.com/embed/"

const (
	maxFullCast   = 10
	maxActorNames = 5
	maxWriters    = 3
)

// creditSummary is the extracted people data for one title.
type creditSummary struct {
	Director string
	Writer   string
	Actors   string
	FullCast []models.CastMember
}

// extractCredits pulls director, writers and cast out of a raw credits
// block. Only cast with a known portrait image is kept, capped at ten
// in source order; Actors is the shorter name-only projection used in
// compact display contexts.
func extractCredits(credits *tmdbCredits, imageBaseURL string) creditSummary {
	out := creditSummary{Director: "N/A", Writer: "N/A", Actors: "N/A"}
	if credits == nil {
		return out
	}

	for _, person := range credits.Crew {
		if person.Job == "Director" {
			out.Director = person.Name
			break
		}
	}

	var writers []string
	for _, person := range credits.Crew {
		if person.Job == "Screenplay" || person.Job == "Writer" {
			writers = append(writers, person.Name)
			if len(writers) == maxWriters {
				break
			}
		}
	}
	if len(writers) > 0 {
		out.Writer = strings.Join(writers, ", ")
	}

	for _, actor := range credits.Cast {
		if actor.ProfilePath == "" {
			continue
		}
		out.FullCast = append(out.FullCast, models.CastMember{
			ID:          actor.ID,
			Name:        actor.Name,
			Character:   actor.Character,
			PortraitURL: imageBaseURL + actor.ProfilePath,
		})
		if len(out.FullCast) == maxFullCast {
			break
		}
	}
	if len(out.FullCast) > 0 {
		names := make([]string, 0, maxActorNames)
		for _, member := range out.FullCast {
			names = append(names, member.Name)
			if len(names) == maxActorNames {
				break
			}
		}
		out.Actors = strings.Join(names, ", ")
	}

	return out
}

// apply copies the extracted credit fields onto a normalized record.
func (c creditSummary) apply(m *models.Movie) {
	m.Director = c.Director
	m.Writer = c.Writer
	m.Actors = c.Actors
	m.FullCast = c.FullCast
}

// selectTrailerURL picks one embeddable trailer from a video list.
// Priority, first match wins: official YouTube trailer, any YouTube
// trailer, YouTube teaser, first YouTube video of any kind. No match
// returns the empty string.
func selectTrailerURL(videos *tmdbVideoList) string {
	if videos == nil || len(videos.Results) == 0 {
		return ""
	}

	pick := func(match func(tmdbVideo) bool) *tmdbVideo {
		for i := range videos.Results {
			if match(videos.Results[i]) {
				return &videos.Results[i]
			}
		}
		return nil
	}

	selected := pick(func(v tmdbVideo) bool { return v.Site == "YouTube" && v.Type == "Trailer" && v.Official })
	if selected == nil {
		selected = pick(func(v tmdbVideo) bool { return v.Site == "YouTube" && v.Type == "Trailer" })
	}
	if selected == nil {
		selected = pick(func(v tmdbVideo) bool { return v.Site == "YouTube" && v.Type == "Teaser" })
	}
	if selected == nil {
		selected = pick(func(v tmdbVideo) bool { return v.Site == "YouTube" })
	}
	if selected == nil {
		return ""
	}
	return youtubeEmbedBase + selected.Key
}
