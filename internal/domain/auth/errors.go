package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrSessionRevoked     = errors.New("session has been revoked")
)
