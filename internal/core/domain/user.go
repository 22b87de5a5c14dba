package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many failed login attempts")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account. Registration always assigns RoleUser;
// promoting an account to admin is an out-of-band operation, and tokens
// issued before a role change keep the old role until they expire.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}
