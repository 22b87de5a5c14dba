package ports

import "github.com/cinelog/catalog-api/internal/core/domain"

// TokenIssuer mints access tokens for verified identities.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier validates a raw token and returns its claims. Rejections are
// one of domain.ErrTokenMalformed, domain.ErrTokenExpired or
// domain.ErrTokenSignatureInvalid; the HTTP layer collapses all three to 401.
type TokenVerifier interface {
	Verify(raw string) (*domain.TokenClaims, error)
}
