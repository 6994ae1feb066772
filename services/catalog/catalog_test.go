package catalog

import (
	"testing"

	"cineverse/models"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}

	all := cat.All()
	if len(all) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, m := range all {
		if !IsPosterValid(m) {
			t.Errorf("All returned %q with poster %q", m.ID, m.PosterURL)
		}
	}

	// Placeholder-poster records stay reachable by id even though every
	// listing accessor hides them.
	broken, ok := cat.ByID("tt99")
	if !ok {
		t.Fatal("expected tt99 in the catalog")
	}
	if IsPosterValid(broken) {
		t.Fatalf("tt99 should carry a placeholder poster, got %q", broken.PosterURL)
	}
	for _, m := range all {
		if m.ID == "tt99" {
			t.Error("placeholder-poster record leaked into All")
		}
	}

	if id, ok := cat.TMDBID("tt1"); !ok || id != 593743 {
		t.Errorf("TMDBID(tt1) = %d, %v", id, ok)
	}
	if _, ok := cat.TMDBID("no-such-id"); ok {
		t.Error("TMDBID returned a mapping for an unknown id")
	}

	languages := cat.Languages()
	want := map[string]bool{"Tamil": false, "Telugu": false, "English": false}
	for _, l := range languages {
		if _, tracked := want[l]; tracked {
			want[l] = true
		}
	}
	for l, seen := range want {
		if !seen {
			t.Errorf("Languages missing %q: %v", l, languages)
		}
	}
}

func TestFilterMatchesAcrossFields(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}

	cases := []struct {
		name   string
		query  string
		wantID string
	}{
		{"by title", "vikram", "tt1"},
		{"by title case-insensitive", "VIKRAM", "tt1"},
		{"by director", "lokesh", "tt1"},
		{"by actor", "kamal haasan", "tt1"},
		{"by genre", "thriller", "tt1"},
	}
	for _, tc := range cases {
		got := cat.Filter(tc.query)
		found := false
		for _, m := range got {
			if m.ID == tc.wantID {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: Filter(%q) missing %s: %+v", tc.name, tc.query, tc.wantID, got)
		}
	}

	if got := cat.Filter(""); got != nil {
		t.Errorf("empty query should match nothing, got %d records", len(got))
	}
	if got := cat.Filter("   "); got != nil {
		t.Errorf("blank query should match nothing, got %d records", len(got))
	}
	if got := cat.Filter("xyzzy-no-match"); len(got) != 0 {
		t.Errorf("unmatched query returned %d records", len(got))
	}
}

func TestSectionAccessors(t *testing.T) {
	cat, err := New([]models.Movie{
		{ID: "a", Title: "A", Language: "Tamil", Year: "2023", PosterURL: "https://x/a.jpg", Featured: true},
		{ID: "b", Title: "B", Language: "Tamil", Year: "2022", PosterURL: "https://x/b.jpg", Trending: true},
		{ID: "c", Title: "C", Language: "English", Year: "2025", PosterURL: "https://x/c.jpg", Upcoming: true},
		{ID: "d", Title: "D", Language: "English", Year: "2022", PosterURL: "https://x/d.jpg", PopularNow: true},
		{ID: "e", Title: "E", Language: "Telugu", Year: "2023", PosterURL: "https://via.placeholder.com/300", Featured: true, Trending: true},
	}, nil)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	assertIDs := func(label string, got []models.Movie, want ...string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("%s: got %+v, want ids %v", label, got, want)
		}
		for i := range want {
			if got[i].ID != want[i] {
				t.Errorf("%s[%d] = %q, want %q", label, i, got[i].ID, want[i])
			}
		}
	}

	assertIDs("Featured", cat.Featured(), "a")
	assertIDs("Trending", cat.Trending(), "b")
	assertIDs("Upcoming", cat.Upcoming(), "c")
	assertIDs("PopularThisYear", cat.PopularThisYear("2023"), "a", "d")
	assertIDs("PopularThisYear no year", cat.PopularThisYear(""), "d")

	// Upcoming titles never show in language rows.
	assertIDs("ByLanguage english", cat.ByLanguage("english"), "d")
	assertIDs("ByLanguage tamil", cat.ByLanguage("Tamil"), "a", "b")
}

func TestNewValidation(t *testing.T) {
	valid := models.Movie{ID: "a", Title: "A", PosterURL: "https://x/a.jpg"}

	if _, err := New([]models.Movie{valid, {ID: "a", Title: "Dup"}}, nil); err == nil {
		t.Error("duplicate id accepted")
	}
	if _, err := New([]models.Movie{{ID: "  ", Title: "Blank"}}, nil); err == nil {
		t.Error("blank id accepted")
	}
	if _, err := New([]models.Movie{valid}, map[string]int64{"a": 0}); err == nil {
		t.Error("non-positive tmdb id accepted")
	}
	if _, err := New([]models.Movie{valid}, map[string]int64{"a": 42}); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}

func TestIsPosterValid(t *testing.T) {
	for url, want := range map[string]bool{
		"https://image.tmdb.org/t/p/w500/x.jpg":                     true,
		"":                                                          false,
		"https://via.placeholder.com/300x450/333/fff?text=No+Poster": false,
		"https://cdn.example/no-poster-placeholder.png":             false,
		"https://cdn.example/art/No+Poster.jpg":                     false,
	} {
		if got := IsPosterValid(models.Movie{PosterURL: url}); got != want {
			t.Errorf("IsPosterValid(%q) = %v, want %v", url, got, want)
		}
	}
}
