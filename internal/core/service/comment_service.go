package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

// CommentService implements comment-thread use cases.
type CommentService struct {
	comments ports.CommentRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, logger: logger}
}

func (s *CommentService) ListByMovie(ctx context.Context, movieID string) ([]domain.Comment, error) {
	return s.comments.FindByMovie(ctx, movieID)
}

func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	if input.MovieID == "" || input.Text == "" {
		return nil, domain.ErrValidation
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		UserID:    input.AuthorID,
		Username:  input.AuthorName,
		MovieID:   input.MovieID,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		s.logger.Error().Err(err).Msg("failed to create comment")
		return nil, err
	}

	s.logger.Info().Str("comment_id", comment.ID).Str("movie_id", comment.MovieID).Msg("comment created")
	return comment, nil
}

// Delete removes a comment when the actor is its author or an admin.
func (s *CommentService) Delete(ctx context.Context, input ports.DeleteCommentInput) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, input.CommentID)
	if err != nil {
		return nil, err
	}

	if !comment.CanBeDeletedBy(input.ActorID, input.ActorRole) {
		return nil, domain.ErrForbidden
	}

	deleted, err := s.comments.Delete(ctx, input.CommentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("comment_id", input.CommentID).Str("actor_id", input.ActorID).Msg("comment deleted")
	return deleted, nil
}
