package domain

import "errors"

// Sentinel errors raised by the core services. The API layer maps each of
// these to exactly one HTTP status; anything else is treated as an internal
// error and never surfaced verbatim to clients.
var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidPostID      = errors.New("invalid post ID")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrPostNotFound       = errors.New("post not found")
	ErrGenerationFailed   = errors.New("content generation failed")
)
