package ports

import (
	"context"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// MovieRepository defines persistence operations for catalog items.
// All reports items in insertion order; the query engine relies on that
// order being stable.
type MovieRepository interface {
	All(ctx context.Context) ([]domain.Movie, error)
	// FindByID returns domain.ErrMovieNotFound when the id is absent.
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) error
	// Update replaces the stored movie with the same ID.
	Update(ctx context.Context, movie *domain.Movie) error
	// Delete removes the movie and returns the deleted record.
	Delete(ctx context.Context, id string) (*domain.Movie, error)
}
