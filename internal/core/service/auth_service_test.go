package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.Email] = cloneUser(user)
	return cloneUser(user), nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	tokens, _ := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, nil, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass"); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", "pass"); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bobby", "bob@example.com", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other@example.com", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	verifier, _ := NewTokenService("secret", time.Hour)
	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Username != "carol" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), "dave", "dave@example.com", "goodpass")
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailNotDistinguished(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	// Unknown account must look identical to a wrong password.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

type stubLimiter struct {
	failures map[string]int
	limit    int
}

func (l *stubLimiter) TooManyFailures(_ context.Context, email string) (bool, error) {
	return l.failures[email] >= l.limit, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	delete(l.failures, email)
	return nil
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	tokens, _ := NewTokenService("secret", time.Hour)
	limiter := &stubLimiter{failures: make(map[string]int), limit: 2}
	svc := NewAuthService(repo, tokens, limiter, zerolog.Nop())

	_, _ = svc.Register(context.Background(), "eve", "eve@example.com", "rightpass")

	for i := 0; i < 2; i++ {
		if _, err := svc.Login(context.Background(), "eve@example.com", "wrong"); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Limit reached: even the correct password is rejected now.
	if _, err := svc.Login(context.Background(), "eve@example.com", "rightpass"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
