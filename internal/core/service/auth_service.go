package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenIssuer
	limiter ports.LoginLimiter // nil = throttling disabled
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, logger: logger}
}

// Register creates a new account. The role is always RoleUser; callers
// cannot choose their own privilege level.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// email and wrong password both surface as ErrInvalidCredentials so the
// response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyFailures(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if blocked {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}
