package repository

import (
	"context"
	"sync"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

type MovieRepository struct {
	store ports.CollectionStore
	mu    sync.Mutex
}

func NewMovieRepository(store ports.CollectionStore) *MovieRepository {
	return &MovieRepository{store: store}
}

// All returns the catalog in insertion order.
func (r *MovieRepository) All(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	if err := r.store.ReadAll(ctx, ports.CollectionMovies, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	movies, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range movies {
		if m.ID == id {
			clone := m
			return &clone, nil
		}
	}
	return nil, domain.ErrMovieNotFound
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movies, err := r.All(ctx)
	if err != nil {
		return err
	}
	movies = append(movies, *movie)
	return r.store.WriteAll(ctx, ports.CollectionMovies, movies)
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movies, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i, m := range movies {
		if m.ID == movie.ID {
			movies[i] = *movie
			return r.store.WriteAll(ctx, ports.CollectionMovies, movies)
		}
	}
	return domain.ErrMovieNotFound
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movies, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i, m := range movies {
		if m.ID == id {
			deleted := m
			movies = append(movies[:i], movies[i+1:]...)
			if err := r.store.WriteAll(ctx, ports.CollectionMovies, movies); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, domain.ErrMovieNotFound
}
