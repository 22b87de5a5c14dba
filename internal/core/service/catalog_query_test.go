package service

import (
	"strings"
	"testing"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

func sampleCatalog() []domain.Movie {
	return []domain.Movie{
		{ID: "m1", Title: "The Long Road", Description: "A drama about distance", Genre: "Drama"},
		{ID: "m2", Title: "Laugh Track", Description: "Stand-up special", Genre: "Comedy"},
		{ID: "m3", Title: "Quiet Rooms", Description: "Slow-burn family drama", Genre: "Drama"},
		{ID: "m4", Title: "Deep Space Echo", Description: "A crew lost beyond Neptune", Genre: "Sci-Fi"},
	}
}

func TestQueryMovies_GenreFilterCaseInsensitive(t *testing.T) {
	res := queryMovies(sampleCatalog(), ports.ListMoviesInput{Genre: "drama", Page: 1, Limit: 10})

	if res.TotalMovies != 2 {
		t.Fatalf("expected 2 matches, got %d", res.TotalMovies)
	}
	for _, m := range res.Movies {
		if !strings.EqualFold(m.Genre, "drama") {
			t.Fatalf("unexpected genre %q in result", m.Genre)
		}
	}
}

func TestQueryMovies_SearchMatchesTitleOrDescription(t *testing.T) {
	res := queryMovies(sampleCatalog(), ports.ListMoviesInput{Search: "DRAMA", Page: 1, Limit: 10})

	if res.TotalMovies != 2 {
		t.Fatalf("expected 2 matches, got %d", res.TotalMovies)
	}
	// m1 matches on description only, m3 on description; title matches count too.
	if res.Movies[0].ID != "m1" || res.Movies[1].ID != "m3" {
		t.Fatalf("expected [m1 m3] in insertion order, got %v", res.Movies)
	}
}

func TestQueryMovies_EmptySearchEqualsNoFilter(t *testing.T) {
	res := queryMovies(sampleCatalog(), ports.ListMoviesInput{Search: "", Page: 1, Limit: 10})
	if res.TotalMovies != 4 {
		t.Fatalf("expected full catalog, got %d items", res.TotalMovies)
	}
}

func TestQueryMovies_PreservesInsertionOrder(t *testing.T) {
	res := queryMovies(sampleCatalog(), ports.ListMoviesInput{Page: 1, Limit: 10})
	want := []string{"m1", "m2", "m3", "m4"}
	for i, m := range res.Movies {
		if m.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], m.ID)
		}
	}
}

func TestQueryMovies_Pagination(t *testing.T) {
	items := sampleCatalog()

	res := queryMovies(items, ports.ListMoviesInput{Page: 2, Limit: 3})
	if res.TotalPages != 2 || res.TotalMovies != 4 {
		t.Fatalf("expected 2 pages of 4 items, got %d/%d", res.TotalPages, res.TotalMovies)
	}
	if len(res.Movies) != 1 || res.Movies[0].ID != "m4" {
		t.Fatalf("expected last page [m4], got %v", res.Movies)
	}
	if res.CurrentPage != 2 {
		t.Fatalf("expected currentPage 2, got %d", res.CurrentPage)
	}
}

func TestQueryMovies_PageBeyondRangeIsEmptyNotError(t *testing.T) {
	res := queryMovies(sampleCatalog(), ports.ListMoviesInput{Page: 9, Limit: 2})
	if len(res.Movies) != 0 {
		t.Fatalf("expected empty page, got %d items", len(res.Movies))
	}
	if res.CurrentPage != 9 {
		t.Fatalf("expected currentPage to echo the request, got %d", res.CurrentPage)
	}
	if res.TotalPages != 2 || res.TotalMovies != 4 {
		t.Fatalf("pagination metadata wrong: %+v", res)
	}
}

func TestQueryMovies_EmptyCatalog(t *testing.T) {
	res := queryMovies(nil, ports.ListMoviesInput{Page: 1, Limit: 5})
	if res.TotalPages != 0 || res.TotalMovies != 0 || len(res.Movies) != 0 {
		t.Fatalf("expected zeroed result, got %+v", res)
	}
}

func TestQueryMovies_ClampsPageAndLimit(t *testing.T) {
	res := queryMovies(sampleCatalog(), ports.ListMoviesInput{Page: 0, Limit: -3})
	if res.CurrentPage != 1 {
		t.Fatalf("expected page clamped to 1, got %d", res.CurrentPage)
	}
	if res.Limit != 1 {
		t.Fatalf("expected limit clamped to 1, got %d", res.Limit)
	}
	if len(res.Movies) != 1 {
		t.Fatalf("expected a single item with limit 1, got %d", len(res.Movies))
	}

	res = queryMovies(sampleCatalog(), ports.ListMoviesInput{Page: 1, Limit: 5000})
	if res.Limit != 100 {
		t.Fatalf("expected limit capped at 100, got %d", res.Limit)
	}
}

func TestQueryMovies_GenreThenPagination(t *testing.T) {
	items := []domain.Movie{
		{ID: "m0", Genre: "Drama"},
		{ID: "m1", Genre: "Comedy"},
		{ID: "m2", Genre: "Drama"},
	}

	res := queryMovies(items, ports.ListMoviesInput{Genre: "drama", Page: 1, Limit: 1})
	if len(res.Movies) != 1 || res.Movies[0].ID != "m0" {
		t.Fatalf("expected page [m0], got %v", res.Movies)
	}
	if res.TotalMovies != 2 || res.TotalPages != 2 {
		t.Fatalf("expected totals 2/2, got %d/%d", res.TotalMovies, res.TotalPages)
	}
}
