package handler

import "github.com/cinelog/catalog-api/internal/core/domain"

type createMovieRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	ReleaseDate string `json:"releaseDate" validate:"required"`
	Genre       string `json:"genre"       validate:"required"`
	Director    string `json:"director"    validate:"required"`
	ImageURL    string `json:"imageUrl"    validate:"omitempty,url"`
	TrailerURL  string `json:"trailerUrl"  validate:"omitempty,url"`
}

// updateMovieRequest carries a partial update: absent fields stay unchanged.
type updateMovieRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ReleaseDate *string `json:"releaseDate"`
	Genre       *string `json:"genre"`
	Director    *string `json:"director"`
	ImageURL    *string `json:"imageUrl"    validate:"omitempty,url"`
	TrailerURL  *string `json:"trailerUrl"  validate:"omitempty,url"`
}

// listMoviesResponse is the catalog page plus pagination metadata. The field
// names are part of the public contract consumed by the SPA.
type listMoviesResponse struct {
	Movies      []domain.Movie `json:"movies"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalMovies int            `json:"totalMovies"`
	Limit       int            `json:"limit"`
}
