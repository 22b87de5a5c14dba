package ports

import (
	"context"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// CreateCommentInput carries the payload plus the author identity taken
// from the verified token claims.
type CreateCommentInput struct {
	MovieID    string
	Text       string
	AuthorID   string
	AuthorName string
}

// DeleteCommentInput identifies the comment and the actor requesting the
// deletion. The service enforces owner-or-admin.
type DeleteCommentInput struct {
	CommentID string
	ActorID   string
	ActorRole string
}

// CommentService defines use-case operations for comment threads.
type CommentService interface {
	ListByMovie(ctx context.Context, movieID string) ([]domain.Comment, error)
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, input DeleteCommentInput) (*domain.Comment, error)
}
