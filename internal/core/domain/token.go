package domain

import (
	"errors"
	"time"
)

var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")

// TokenClaims is the decoded content of an access token. Tokens are
// stateless: there is no revocation list, so a leaked token stays valid
// until ExpiresAt.
type TokenClaims struct {
	UserID    string
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
