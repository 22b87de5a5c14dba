package service

import (
	"strings"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

const (
	// DefaultPageSize applies when the caller omits the limit parameter.
	DefaultPageSize = 10
	maxPageSize     = 100
)

// queryMovies filters and paginates the catalog. The genre filter is a
// case-insensitive equality check applied first; the search term then
// matches case-insensitively against title or description. The relative
// order of the filtered set is the collection's insertion order; the engine
// never re-sorts.
//
// An out-of-range page yields an empty page, not an error, with CurrentPage
// echoing the request.
func queryMovies(items []domain.Movie, input ports.ListMoviesInput) *ports.ListMoviesResult {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filtered := items
	if input.Genre != "" {
		filtered = filterMovies(filtered, func(m domain.Movie) bool {
			return strings.EqualFold(m.Genre, input.Genre)
		})
	}
	if term := strings.ToLower(input.Search); term != "" {
		filtered = filterMovies(filtered, func(m domain.Movie) bool {
			return strings.Contains(strings.ToLower(m.Title), term) ||
				strings.Contains(strings.ToLower(m.Description), term)
		})
	}

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ports.ListMoviesResult{
		Movies:      filtered[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalMovies: total,
		Limit:       limit,
	}
}

func filterMovies(items []domain.Movie, keep func(domain.Movie) bool) []domain.Movie {
	out := make([]domain.Movie, 0, len(items))
	for _, m := range items {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
