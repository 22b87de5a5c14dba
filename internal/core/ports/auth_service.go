package ports

import (
	"context"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginLimiter throttles repeated failed logins per account. Implementations
// may be nil-free no-ops; the auth service treats a nil limiter as disabled.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
