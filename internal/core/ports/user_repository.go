package ports

import (
	"context"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new account. It returns domain.ErrUserExists when
	// the email or username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
