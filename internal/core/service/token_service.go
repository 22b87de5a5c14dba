package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// ErrNoSigningSecret is returned by NewTokenService when no secret is
// configured. The process must refuse to start rather than sign tokens with
// a default secret.
var ErrNoSigningSecret = errors.New("token signing secret is not configured")

const defaultTokenTTL = time.Hour

// tokenClaims is the wire shape of the JWT payload. The user id travels in
// the registered Subject claim.
type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed access tokens. Tokens are
// self-contained and stateless: the role claim reflects the account's role
// at issuance time and is trusted until expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrNoSigningSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a token embedding the user's id, username and role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify decodes and validates a raw token. Rejections are reported as
// domain.ErrTokenExpired, domain.ErrTokenSignatureInvalid or
// domain.ErrTokenMalformed.
func (s *TokenService) Verify(raw string) (*domain.TokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenMalformed
	}

	decoded := &domain.TokenClaims{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}
	return decoded, nil
}
