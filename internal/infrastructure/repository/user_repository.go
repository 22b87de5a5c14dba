// Package repository implements the core repository ports on top of the
// CollectionStore contract, so the same code runs against the jsonfile and
// mongo drivers. Each repository guards its read-modify-write cycle with a
// mutex: concurrent writers to one collection serialize instead of racing.
package repository

import (
	"context"
	"sync"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

type UserRepository struct {
	store ports.CollectionStore
	mu    sync.Mutex
}

func NewUserRepository(store ports.CollectionStore) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends the user unless the email or username is already taken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}

	users = append(users, *user)
	if err := r.store.WriteAll(ctx, ports.CollectionUsers, users); err != nil {
		return nil, err
	}

	created := *user
	return &created, nil
}

func (r *UserRepository) readAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.store.ReadAll(ctx, ports.CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}
