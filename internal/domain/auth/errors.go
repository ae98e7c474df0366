package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrSessionMissing     = errors.New("authenticated session is missing")
	ErrForbidden          = errors.New("you are not allowed to act on this resource")
)
