package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrInvalidCredentials = goerr.New("invalid username or password")
	ErrUnauthorized       = goerr.New("could not validate credentials")
	ErrTokenRevoked       = goerr.New("token has been revoked")
	ErrUserNotFound       = goerr.New("user not found")
	ErrInvalidDateRange   = goerr.New("invalid date range")
	ErrDigestDisabled     = goerr.New("slack digest is not configured")
	ErrForbidden          = goerr.New("operation not permitted for this role")
	ErrRateLimited        = goerr.New("too many requests")
)
