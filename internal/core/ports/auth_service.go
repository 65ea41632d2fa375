package ports

import (
	"context"

	"github.com/inkworks/contentforge/internal/core/domain"
)

// AuthService implements account registration and login.
type AuthService interface {
	// Signup creates an account and returns the stored user plus a freshly
	// issued bearer token.
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns the user plus a bearer token.
	// A wrong password and an unknown email are indistinguishable: both fail
	// with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// TokenService issues and verifies signed, time-limited identity tokens.
// Verification is purely local: signature plus expiry, no storage access.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns the embedded identity, or domain.ErrInvalidToken when
	// the signature does not match, the payload is malformed, or the token
	// has expired. The three cases are indistinguishable to the caller.
	Verify(token string) (*domain.Identity, error)
}
