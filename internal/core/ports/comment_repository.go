package ports

import (
	"context"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comment threads.
type CommentRepository interface {
	FindByMovie(ctx context.Context, movieID string) ([]domain.Comment, error)
	// FindByID returns domain.ErrCommentNotFound when the id is absent.
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	// Delete removes the comment and returns the deleted record.
	Delete(ctx context.Context, id string) (*domain.Comment, error)
}
