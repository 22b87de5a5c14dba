package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
	"github.com/cinelog/catalog-api/internal/core/service"
)

// --- Query string → Service input ---

func toListInput(c echo.Context) ports.ListMoviesInput {
	return ports.ListMoviesInput{
		Search: c.QueryParam("search"),
		Genre:  c.QueryParam("genre"),
		Page:   intQueryParam(c, "page", 1),
		Limit:  intQueryParam(c, "limit", service.DefaultPageSize),
	}
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// --- Request → Service input ---

func toCreateInput(req createMovieRequest) (ports.CreateMovieInput, error) {
	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return ports.CreateMovieInput{}, err
	}
	return ports.CreateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: releaseDate,
		Genre:       req.Genre,
		Director:    req.Director,
		ImageURL:    req.ImageURL,
		TrailerURL:  req.TrailerURL,
	}, nil
}

func toUpdateInput(req updateMovieRequest) (ports.UpdateMovieInput, error) {
	input := ports.UpdateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Director:    req.Director,
		ImageURL:    req.ImageURL,
		TrailerURL:  req.TrailerURL,
	}
	if req.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(*req.ReleaseDate)
		if err != nil {
			return ports.UpdateMovieInput{}, err
		}
		input.ReleaseDate = &releaseDate
	}
	return input, nil
}

// parseReleaseDate accepts a plain date or a full RFC 3339 timestamp.
func parseReleaseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: releaseDate must be YYYY-MM-DD or RFC 3339", domain.ErrValidation)
}

// --- Service result → HTTP response ---

func toListResponse(r *ports.ListMoviesResult) listMoviesResponse {
	movies := r.Movies
	if movies == nil {
		movies = []domain.Movie{}
	}
	return listMoviesResponse{
		Movies:      movies,
		CurrentPage: r.CurrentPage,
		TotalPages:  r.TotalPages,
		TotalMovies: r.TotalMovies,
		Limit:       r.Limit,
	}
}
