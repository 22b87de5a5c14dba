package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

// MovieService implements catalog use cases on top of MovieRepository.
type MovieService struct {
	movies ports.MovieRepository
	logger zerolog.Logger
}

func NewMovieService(movies ports.MovieRepository, logger zerolog.Logger) *MovieService {
	return &MovieService{movies: movies, logger: logger}
}

// List runs the query engine over the full collection.
func (s *MovieService) List(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
	items, err := s.movies.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read movie collection")
		return nil, err
	}
	return queryMovies(items, input), nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	if input.Title == "" || input.Description == "" || input.Genre == "" ||
		input.Director == "" || input.ReleaseDate.IsZero() {
		return nil, domain.ErrValidation
	}

	movie := &domain.Movie{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		ReleaseDate: input.ReleaseDate,
		Genre:       input.Genre,
		Director:    input.Director,
		ImageURL:    input.ImageURL,
		TrailerURL:  input.TrailerURL,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		s.logger.Error().Err(err).Msg("failed to create movie")
		return nil, err
	}

	s.logger.Info().Str("movie_id", movie.ID).Str("title", movie.Title).Msg("movie created")
	return movie, nil
}

// Update applies a partial update: only non-nil input fields change.
func (s *MovieService) Update(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&movie.Title, input.Title)
	applyString(&movie.Description, input.Description)
	applyString(&movie.Genre, input.Genre)
	applyString(&movie.Director, input.Director)
	applyString(&movie.ImageURL, input.ImageURL)
	applyString(&movie.TrailerURL, input.TrailerURL)
	if input.ReleaseDate != nil {
		movie.ReleaseDate = *input.ReleaseDate
	}

	if err := s.movies.Update(ctx, movie); err != nil {
		s.logger.Error().Err(err).Str("movie_id", id).Msg("failed to update movie")
		return nil, err
	}

	s.logger.Info().Str("movie_id", id).Msg("movie updated")
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	deleted, err := s.movies.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("movie_id", id).Msg("movie deleted")
	return deleted, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
