package ports

import (
	"context"
	"time"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// ListMoviesInput carries all query parameters for the catalog list endpoint.
type ListMoviesInput struct {
	Search string // optional: case-insensitive substring on title or description
	Genre  string // optional: case-insensitive equality; empty = no filter
	Page   int    // 1-based; values < 1 are treated as 1
	Limit  int    // page size; values < 1 are clamped to 1, capped at 100
}

// ListMoviesResult is the page returned by List plus pagination metadata.
// TotalPages is ceil(TotalMovies/Limit), 0 when the filtered set is empty.
type ListMoviesResult struct {
	Movies      []domain.Movie
	CurrentPage int
	TotalPages  int
	TotalMovies int
	Limit       int
}

// CreateMovieInput carries all data needed to create a catalog item.
type CreateMovieInput struct {
	Title       string
	Description string
	ReleaseDate time.Time
	Genre       string
	Director    string
	ImageURL    string
	TrailerURL  string
}

// UpdateMovieInput carries a partial update: nil fields are left unchanged.
type UpdateMovieInput struct {
	Title       *string
	Description *string
	ReleaseDate *time.Time
	Genre       *string
	Director    *string
	ImageURL    *string
	TrailerURL  *string
}

// MovieService defines use-case operations for the movie catalog.
type MovieService interface {
	List(ctx context.Context, input ListMoviesInput) (*ListMoviesResult, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id string, input UpdateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
}
