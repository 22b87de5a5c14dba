package repository

import (
	"context"
	"sync"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

type CommentRepository struct {
	store ports.CollectionStore
	mu    sync.Mutex
}

func NewCommentRepository(store ports.CollectionStore) *CommentRepository {
	return &CommentRepository{store: store}
}

func (r *CommentRepository) FindByMovie(ctx context.Context, movieID string) ([]domain.Comment, error) {
	comments, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	thread := []domain.Comment{}
	for _, c := range comments {
		if c.MovieID == movieID {
			thread = append(thread, c)
		}
	}
	return thread, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	comments, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCommentNotFound
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	comments = append(comments, *comment)
	return r.store.WriteAll(ctx, ports.CollectionComments, comments)
}

func (r *CommentRepository) Delete(ctx context.Context, id string) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i, c := range comments {
		if c.ID == id {
			deleted := c
			comments = append(comments[:i], comments[i+1:]...)
			if err := r.store.WriteAll(ctx, ports.CollectionComments, comments); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, domain.ErrCommentNotFound
}

func (r *CommentRepository) readAll(ctx context.Context) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := r.store.ReadAll(ctx, ports.CollectionComments, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
